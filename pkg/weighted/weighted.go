// Package weighted implements RFC 2782-style weighted random ordering
// for records sharing a priority tier. The probability of a record
// appearing earlier is proportional to its weight relative to the
// remaining pool (draw without replacement weighted by remaining
// weight sum). Zero-weight records are only drawn once no positive
// weight remains, but are never dropped.
package weighted

import (
	"math/rand/v2"

	"github.com/cuemby/burrow/pkg/types"
)

// Shuffler orders records by weight. It carries its own rand source so
// tests can construct a deterministic one; the default is seeded from
// the runtime and non-deterministic across invocations, which callers
// rely on for basic load distribution.
type Shuffler struct {
	rnd *rand.Rand
}

// New returns a Shuffler backed by a runtime-seeded source
func New() *Shuffler {
	return &Shuffler{rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewWithSource returns a Shuffler backed by the given source
func NewWithSource(src rand.Source) *Shuffler {
	return &Shuffler{rnd: rand.New(src)}
}

// Order returns a permutation of records where earlier positions favor
// higher values of weightField. Records without the field, or with a
// non-positive value, count as weight zero and sort last among peers in
// input order. The input slice is not modified.
func (s *Shuffler) Order(records []types.Record, weightField string) []types.Record {
	if len(records) <= 1 {
		out := make([]types.Record, len(records))
		copy(out, records)
		return out
	}

	pool := make([]types.Record, len(records))
	copy(pool, records)
	out := make([]types.Record, 0, len(pool))

	for len(pool) > 0 {
		total := 0
		for _, r := range pool {
			total += weightOf(r, weightField)
		}
		if total == 0 {
			// only zero-weight records remain; keep input order
			out = append(out, pool...)
			break
		}
		n := s.rnd.IntN(total)
		acc := 0
		for i, r := range pool {
			acc += weightOf(r, weightField)
			if n < acc {
				out = append(out, r)
				pool = append(pool[:i], pool[i+1:]...)
				break
			}
		}
	}
	return out
}

// Shuffle returns a uniform random permutation of records, used for
// tiers whose record type carries no weight field (MX preferences).
func (s *Shuffler) Shuffle(records []types.Record) []types.Record {
	out := make([]types.Record, len(records))
	for i, j := range s.rnd.Perm(len(records)) {
		out[i] = records[j]
	}
	return out
}

func weightOf(r types.Record, field string) int {
	w, ok := r.Int(field)
	if !ok || w < 0 {
		return 0
	}
	return w
}
