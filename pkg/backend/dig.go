package backend

import (
	"context"
	"fmt"
	"strings"

	"github.com/miekg/dns"

	"github.com/cuemby/burrow/pkg/executil"
	"github.com/cuemby/burrow/pkg/schema"
	"github.com/cuemby/burrow/pkg/types"
)

// Dig adapts the bind-utils dig tool. It is the preferred external
// backend: answer-only output, one RR presentation line per record.
type Dig struct {
	Runner executil.Runner
}

func (Dig) Name() string { return "dig" }

func (Dig) Supports(t types.RecordType) bool { return true }

func (Dig) SupportsSecure() bool { return true }

// Lookup runs dig with answer-only output and parses each RR line
// through the schema layer. In secure mode +dnssec is requested and
// answers are only returned when a type-matching RRSIG accompanies
// them; unsigned answers under a secure request become a transient
// failure, never a silent downgrade.
func (d Dig) Lookup(ctx context.Context, q types.Query) ([]types.Record, error) {
	args := []string{"+search", "+fail", "+noall", "+answer", "+noclass", "+nottl"}
	if q.Secure {
		args = append(args, "+dnssec")
	}
	for _, server := range q.Servers {
		args = append(args, "@"+server)
	}
	args = append(args, "-t", string(q.Type), q.Name)

	res := d.Runner.Run(ctx, "dig", args...)
	if res.Retcode != 0 {
		return nil, classifyToolFailure("dig", res)
	}

	records := []types.Record{}
	signed := map[string]bool{}

	for line := range strings.Lines(res.Stdout) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		tokens := strings.Fields(line)

		if idx := typeTokenIndex(tokens, "RRSIG"); idx >= 0 && idx+1 < len(tokens) {
			if covered := tokens[idx+1]; dns.StringToType[covered] != 0 {
				signed[covered] = true
			}
			continue
		}

		idx := typeTokenIndex(tokens, string(q.Type))
		if idx < 0 {
			// dig can interleave CNAME hops in the answer section;
			// anything that is not the requested type is skipped
			continue
		}
		rec, err := schema.RecordFromTokens(q.Type, tokens[idx+1:])
		if err != nil {
			return nil, fmt.Errorf("dig output line %q: %w", line, err)
		}
		records = append(records, rec)
	}

	if q.Secure && len(records) > 0 && !signed[string(q.Type)] {
		return nil, fmt.Errorf("%w: dig returned unsigned %s answers under a secure request",
			types.ErrUnavailable, q.Type)
	}
	return records, nil
}
