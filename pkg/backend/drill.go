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

// Drill adapts the ldns drill tool. Output is a full response dump, so
// parsing is scoped to the answer section.
type Drill struct {
	Runner executil.Runner
}

func (Drill) Name() string { return "drill" }

func (Drill) Supports(t types.RecordType) bool { return true }

func (Drill) SupportsSecure() bool { return true }

func (d Drill) Lookup(ctx context.Context, q types.Query) ([]types.Record, error) {
	var args []string
	if q.Secure {
		args = append(args, "-D")
	}
	args = append(args, q.Name)
	for _, server := range q.Servers {
		args = append(args, "@"+server)
	}
	args = append(args, string(q.Type))

	res := d.Runner.Run(ctx, "drill", args...)
	if res.Retcode != 0 {
		return nil, classifyToolFailure("drill", res)
	}

	records := []types.Record{}
	signed := map[string]bool{}
	inAnswer := false

	for line := range strings.Lines(res.Stdout) {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, ";; ANSWER SECTION"):
			inAnswer = true
			continue
		case strings.HasPrefix(line, ";;"):
			inAnswer = false
			continue
		case line == "" || strings.HasPrefix(line, ";"):
			continue
		}
		if !inAnswer {
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
			continue
		}
		rec, err := schema.RecordFromTokens(q.Type, tokens[idx+1:])
		if err != nil {
			return nil, fmt.Errorf("drill output line %q: %w", line, err)
		}
		records = append(records, rec)
	}

	if q.Secure && len(records) > 0 && !signed[string(q.Type)] {
		return nil, fmt.Errorf("%w: drill returned unsigned %s answers under a secure request",
			types.ErrUnavailable, q.Type)
	}
	return records, nil
}
