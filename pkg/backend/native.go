package backend

import (
	"context"
	"fmt"
	"net"

	"github.com/cuemby/burrow/pkg/schema"
	"github.com/cuemby/burrow/pkg/types"
)

// Native adapts the platform resolver (getaddrinfo through
// net.Resolver). It is the fallback when no external tool is installed
// and answers address queries only.
type Native struct {
	lookupIP func(ctx context.Context, network, host string) ([]net.IP, error)
}

// NewNative returns a Native backend over the default resolver
func NewNative() *Native {
	return &Native{lookupIP: net.DefaultResolver.LookupIP}
}

func (*Native) Name() string { return "native" }

func (*Native) Supports(t types.RecordType) bool {
	return t == types.TypeA || t == types.TypeAAAA
}

func (*Native) SupportsSecure() bool { return false }

// Lookup resolves addresses through the platform resolver. Resolver
// errors (name not found, network unreachable) are converted to the
// transient failure class; the resolver's own error types never cross
// this boundary. Explicit server lists cannot be honored here and are
// ignored, matching the platform resolver's own behavior.
func (b *Native) Lookup(ctx context.Context, q types.Query) ([]types.Record, error) {
	if q.Secure {
		return nil, fmt.Errorf("%w: the native resolver cannot validate DNSSEC", types.ErrBadInput)
	}
	if !b.Supports(q.Type) {
		return nil, fmt.Errorf("%w: native resolver answers A and AAAA only, not %s",
			types.ErrUnsupportedType, q.Type)
	}

	network := "ip4"
	if q.Type == types.TypeAAAA {
		network = "ip6"
	}
	ips, err := b.lookupIP(ctx, network, q.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrUnavailable, err)
	}

	records := []types.Record{}
	for _, ip := range ips {
		rec, rerr := schema.RecordFromTokens(q.Type, []string{ip.String()})
		if rerr != nil {
			return nil, fmt.Errorf("resolver returned address %q: %w", ip, rerr)
		}
		records = append(records, rec)
	}
	return records, nil
}
