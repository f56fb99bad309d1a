package backend

import (
	"context"
	"fmt"
	"strings"

	"github.com/cuemby/burrow/pkg/executil"
	"github.com/cuemby/burrow/pkg/types"
)

// Backend is one concrete lookup strategy. The set is closed: the
// native resolver plus the four external tools. Adapters translate a
// query into their tool's invocation, parse the tool's output grammar,
// and report the three-way outcome defined in pkg/types.
type Backend interface {
	// Name is the backend identifier used in config, CLI flags, logs
	// and metrics labels.
	Name() string

	// Supports reports whether this backend can answer queries for
	// the record type.
	Supports(t types.RecordType) bool

	// SupportsSecure reports whether this backend can request
	// DNSSEC-validated answers.
	SupportsSecure() bool

	// Lookup resolves name/type into records. An empty non-nil slice
	// is the negative answer; errors wrap the pkg/types classes.
	Lookup(ctx context.Context, q types.Query) ([]types.Record, error)
}

// markers the external tools print when rejecting the query type
// itself, as opposed to failing operationally
var unknownTypeMarkers = []string{
	"unknown query type",
	"unknown type",
	"invalid type",
	"unknown rr type",
}

// classifyToolFailure maps a non-zero tool exit to an error class:
// a recognizable type rejection becomes a usage error so the dispatcher
// can validate types lazily through the backend, anything else is a
// transient failure the caller may retry.
func classifyToolFailure(tool string, res executil.Result) error {
	combined := strings.ToLower(res.Stdout + "\n" + res.Stderr)
	for _, marker := range unknownTypeMarkers {
		if strings.Contains(combined, marker) {
			return fmt.Errorf("%w: %s rejected the query type", types.ErrUnsupportedType, tool)
		}
	}
	return fmt.Errorf("%w: %s exited %d: %s",
		types.ErrUnavailable, tool, res.Retcode, failureDetail(res))
}

func failureDetail(res executil.Result) string {
	for _, out := range []string{res.Stderr, res.Stdout} {
		for line := range strings.Lines(out) {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				return trimmed
			}
		}
	}
	return "no output"
}

// typeTokenIndex finds the record-type token in an RR presentation
// line. The owner name is token 0; TTL and class may or may not be
// present depending on the tool and its flags, so the type mnemonic is
// searched within the next three positions only, never inside rdata.
func typeTokenIndex(tokens []string, want string) int {
	limit := 4
	if len(tokens) < limit {
		limit = len(tokens)
	}
	for i := 1; i < limit; i++ {
		if tokens[i] == want {
			return i
		}
	}
	return -1
}
