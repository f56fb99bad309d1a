package resolver

import (
	"fmt"
	"sort"

	"github.com/cuemby/burrow/pkg/schema"
	"github.com/cuemby/burrow/pkg/types"
	"github.com/cuemby/burrow/pkg/weighted"
)

// Grouped is an ordered mapping of key -> records sharing that key.
// Key order is first-seen; record order within a key is input order.
type Grouped struct {
	keys    []any
	buckets [][]types.Record
	index   map[string]int
}

// Group buckets flat records by a numeric or string key field. The
// key value is passed through the generic schema caster before
// comparison, so "10" and 10 land in the same bucket.
func Group(records []types.Record, keyField string) (*Grouped, error) {
	g := &Grouped{index: map[string]int{}}
	for _, r := range records {
		raw, ok := r.Get(keyField)
		if !ok {
			return nil, fmt.Errorf("%w: record has no %q field", types.ErrBadInput, keyField)
		}
		key := normalizeKey(keyField, raw)
		id := fmt.Sprint(key)
		if pos, seen := g.index[id]; seen {
			g.buckets[pos] = append(g.buckets[pos], r)
			continue
		}
		g.index[id] = len(g.keys)
		g.keys = append(g.keys, key)
		g.buckets = append(g.buckets, []types.Record{r})
	}
	return g, nil
}

// Keys returns the distinct keys in first-seen order
func (g *Grouped) Keys() []any {
	out := make([]any, len(g.keys))
	copy(out, g.keys)
	return out
}

// Get returns the records bucketed under a key. "10" and 10 address
// the same bucket.
func (g *Grouped) Get(key any) []types.Record {
	if s, ok := key.(string); ok {
		key = schema.Cast("", s, false)
	}
	pos, ok := g.index[fmt.Sprint(key)]
	if !ok {
		return nil
	}
	return g.buckets[pos]
}

// Len returns the number of distinct keys
func (g *Grouped) Len() int {
	return len(g.keys)
}

func normalizeKey(field string, v any) any {
	if s, ok := v.(string); ok {
		return schema.Cast(field, s, false)
	}
	return v
}

// OrderedByPriority returns records tier by tier in ascending key
// order, each tier permuted by the shuffler: weighted when a weight
// field is named, uniformly otherwise.
func OrderedByPriority(s *weighted.Shuffler, records []types.Record, priorityField, weightField string) ([]types.Record, error) {
	g, err := Group(records, priorityField)
	if err != nil {
		return nil, err
	}
	keys := g.Keys()
	sort.Slice(keys, func(i, j int) bool {
		a, aok := keys[i].(int)
		b, bok := keys[j].(int)
		if aok && bok {
			return a < b
		}
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})

	out := make([]types.Record, 0, len(records))
	for _, k := range keys {
		tier := g.Get(k)
		if weightField != "" {
			out = append(out, s.Order(tier, weightField)...)
		} else {
			out = append(out, s.Shuffle(tier)...)
		}
	}
	return out, nil
}

// OrderedSRV returns SRV records in RFC 2782 selection order: by
// ascending priority, weighted-random within each priority tier
func (d *Dispatcher) OrderedSRV(records []types.Record) ([]types.Record, error) {
	return OrderedByPriority(d.shuffler, records, "priority", "weight")
}

// OrderedMX returns MX records by ascending preference, uniformly
// shuffled within each preference tier
func (d *Dispatcher) OrderedMX(records []types.Record) ([]types.Record, error) {
	return OrderedByPriority(d.shuffler, records, "preference", "")
}
