package backend

import (
	"context"
	"fmt"
	"strings"

	"github.com/cuemby/burrow/pkg/executil"
	"github.com/cuemby/burrow/pkg/schema"
	"github.com/cuemby/burrow/pkg/types"
)

// Nslookup adapts the nslookup tool: a preamble naming the server used,
// then an answer block under a "Non-authoritative answer:" header.
// Address answers arrive as Name:/Address: pairs, everything else as
// "key = rdata" lines.
type Nslookup struct {
	Runner executil.Runner
}

func (Nslookup) Name() string { return "nslookup" }

func (Nslookup) Supports(t types.RecordType) bool {
	// nslookup renders SOA as a multi-line block this adapter's
	// line grammar cannot tokenize
	return t != types.TypeSOA
}

func (Nslookup) SupportsSecure() bool { return false }

func (n Nslookup) Lookup(ctx context.Context, q types.Query) ([]types.Record, error) {
	if q.Secure {
		return nil, fmt.Errorf("%w: nslookup cannot validate DNSSEC", types.ErrBadInput)
	}
	args := []string{"-query=" + string(q.Type), q.Name}
	if len(q.Servers) > 0 {
		args = append(args, q.Servers[0])
	}

	res := n.Runner.Run(ctx, "nslookup", args...)

	// "Can't find <name>: No answer" is a valid negative answer;
	// platforms disagree on whether it exits 0 or 1
	lower := strings.ToLower(res.Stdout + "\n" + res.Stderr)
	if strings.Contains(lower, "no answer") && strings.Contains(lower, "can't find") {
		return []types.Record{}, nil
	}
	if res.Retcode != 0 {
		return nil, classifyToolFailure("nslookup", res)
	}

	records := []types.Record{}
	inAnswer := false
	sawName := false

	for line := range strings.Lines(res.Stdout) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasSuffix(line, "answer:") {
			inAnswer = true
			continue
		}
		if strings.HasPrefix(line, "Authoritative answers") {
			inAnswer = false
			continue
		}
		if !inAnswer {
			continue
		}

		switch q.Type {
		case types.TypeA, types.TypeAAAA:
			if strings.HasPrefix(line, "Name:") {
				sawName = true
				continue
			}
			if sawName && strings.HasPrefix(line, "Address:") {
				addr := strings.TrimSpace(strings.TrimPrefix(line, "Address:"))
				rec, err := schema.RecordFromTokens(q.Type, []string{addr})
				if err != nil {
					return nil, fmt.Errorf("nslookup output line %q: %w", line, err)
				}
				records = append(records, rec)
			}
		default:
			eq := strings.Index(line, "=")
			if eq < 0 {
				continue
			}
			rdata := strings.TrimSpace(line[eq+1:])
			rec, err := schema.RecordFromTokens(q.Type, strings.Fields(rdata))
			if err != nil {
				return nil, fmt.Errorf("nslookup output line %q: %w", line, err)
			}
			records = append(records, rec)
		}
	}
	return records, nil
}
