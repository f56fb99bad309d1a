package backend

import (
	"fmt"
	"sync"

	"github.com/cuemby/burrow/pkg/executil"
	"github.com/cuemby/burrow/pkg/types"
)

// probeOrder is the fixed preference order for auto-detection. The
// native resolver is the fallback when none of the tools is installed.
var probeOrder = []string{"dig", "drill", "host", "nslookup"}

// secureCapable lists the tools usable under secure=true
var secureCapable = []string{"dig", "drill"}

// Prober detects which resolver tools are installed and builds the
// corresponding backend. The probe result is cached per instance,
// since external binaries do not appear or disappear mid-run in the
// common case; Reset discards the cache so tests can re-probe.
type Prober struct {
	finder executil.Finder
	runner executil.Runner

	mu     sync.Mutex
	cached map[string]bool
}

// NewProber builds a prober over the given binary finder and runner
func NewProber(finder executil.Finder, runner executil.Runner) *Prober {
	return &Prober{finder: finder, runner: runner}
}

// Detect returns the preferred available backend
func (p *Prober) Detect() Backend {
	avail := p.available()
	for _, name := range probeOrder {
		if avail[name] {
			b, _ := p.ByName(name)
			return b
		}
	}
	return NewNative()
}

// DetectSecure returns the preferred available DNSSEC-capable backend.
// Only dig and drill qualify; with neither installed the lookup cannot
// be served securely at all.
func (p *Prober) DetectSecure() (Backend, error) {
	avail := p.available()
	for _, name := range secureCapable {
		if avail[name] {
			return p.ByName(name)
		}
	}
	return nil, fmt.Errorf("%w: no DNSSEC-capable resolver tool installed (need dig or drill)",
		types.ErrUnavailable)
}

// ByName builds an explicitly chosen backend
func (p *Prober) ByName(name string) (Backend, error) {
	switch name {
	case "native":
		return NewNative(), nil
	case "dig":
		return Dig{Runner: p.runner}, nil
	case "drill":
		return Drill{Runner: p.runner}, nil
	case "host":
		return Host{Runner: p.runner}, nil
	case "nslookup":
		return Nslookup{Runner: p.runner}, nil
	}
	return nil, fmt.Errorf("%w: unknown backend %q", types.ErrBadInput, name)
}

// Available reports which external tools the probe found, keyed by
// backend name. The native backend is always available and not listed.
func (p *Prober) Available() map[string]bool {
	src := p.available()
	out := make(map[string]bool, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Reset discards the cached probe result
func (p *Prober) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cached = nil
}

func (p *Prober) available() map[string]bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cached == nil {
		p.cached = make(map[string]bool, len(probeOrder))
		for _, name := range probeOrder {
			_, found := p.finder.Find(name)
			p.cached[name] = found
		}
	}
	return p.cached
}
