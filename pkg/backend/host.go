package backend

import (
	"context"
	"fmt"
	"strings"

	"github.com/cuemby/burrow/pkg/executil"
	"github.com/cuemby/burrow/pkg/schema"
	"github.com/cuemby/burrow/pkg/types"
)

// Host adapts the bind-utils host tool, whose output is prose
// ("mocksrvr.example.com has address 10.1.1.1") rather than RR
// presentation lines.
type Host struct {
	Runner executil.Runner
}

// phrase host prints between the owner name and the record data,
// per record type
var hostPhrases = map[types.RecordType]string{
	types.TypeA:     "has address",
	types.TypeAAAA:  "has IPv6 address",
	types.TypeCAA:   "has CAA record",
	types.TypeCNAME: "is an alias for",
	types.TypeMX:    "mail is handled by",
	types.TypeNS:    "name server",
	types.TypePTR:   "domain name pointer",
	types.TypeSOA:   "has SOA record",
	types.TypeSPF:   "has SPF record",
	types.TypeSRV:   "has SRV record",
	types.TypeSSHFP: "has SSHFP record",
	types.TypeTXT:   "descriptive text",
}

func (Host) Name() string { return "host" }

func (Host) Supports(t types.RecordType) bool {
	_, ok := hostPhrases[t]
	return ok
}

func (Host) SupportsSecure() bool { return false }

func (h Host) Lookup(ctx context.Context, q types.Query) ([]types.Record, error) {
	if q.Secure {
		return nil, fmt.Errorf("%w: host cannot validate DNSSEC", types.ErrBadInput)
	}
	args := []string{"-t", string(q.Type), q.Name}
	if len(q.Servers) > 0 {
		// host accepts a single server argument
		args = append(args, q.Servers[0])
	}

	res := h.Runner.Run(ctx, "host", args...)
	if res.Retcode != 0 {
		return nil, classifyToolFailure("host", res)
	}

	phrase := hostPhrases[q.Type]
	noRecord := "has no " + string(q.Type) + " record"

	records := []types.Record{}
	for line := range strings.Lines(res.Stdout) {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, noRecord) {
			continue
		}
		idx := strings.Index(line, phrase)
		if idx < 0 {
			continue
		}
		rdata := strings.TrimSpace(line[idx+len(phrase):])
		rec, err := schema.RecordFromTokens(q.Type, strings.Fields(rdata))
		if err != nil {
			return nil, fmt.Errorf("host output line %q: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
