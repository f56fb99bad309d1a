package resolver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cuemby/burrow/pkg/backend"
	"github.com/cuemby/burrow/pkg/config"
	"github.com/cuemby/burrow/pkg/dnsname"
	"github.com/cuemby/burrow/pkg/executil"
	"github.com/cuemby/burrow/pkg/log"
	"github.com/cuemby/burrow/pkg/metrics"
	"github.com/cuemby/burrow/pkg/types"
	"github.com/cuemby/burrow/pkg/weighted"
)

// Options tunes one lookup
type Options struct {
	// Backend names an explicit backend, or "auto" (the default) to
	// probe for the preferred installed tool
	Backend string

	// Servers overrides the configured default resolver addresses
	Servers []string

	// Secure requires DNSSEC-validated answers
	Secure bool

	// Walk enables domain-tree fallback: suffixes of the name are
	// tried most-specific first until one answers
	Walk bool
}

// Dispatcher is the single entry point for lookups: it validates the
// query, selects a backend, drives the optional domain-tree walk, and
// reports metrics. Each Lookup call is independent; the only state a
// Dispatcher holds is its binary-availability probe cache.
type Dispatcher struct {
	cfg      *config.Config
	prober   *backend.Prober
	shuffler *weighted.Shuffler
	logger   zerolog.Logger
}

// New builds a production dispatcher over the real command runner and
// PATH probe
func New(cfg *config.Config) *Dispatcher {
	return NewWithProber(cfg, backend.NewProber(executil.PathFinder{}, executil.ExecRunner{}))
}

// NewWithProber builds a dispatcher over a caller-supplied prober,
// used by tests to control which tools appear installed
func NewWithProber(cfg *config.Config, prober *backend.Prober) *Dispatcher {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Dispatcher{
		cfg:      cfg,
		prober:   prober,
		shuffler: weighted.New(),
		logger:   log.WithComponent("resolver"),
	}
}

// Prober exposes the availability probe (for `burrow backends` and
// probe metrics)
func (d *Dispatcher) Prober() *backend.Prober {
	return d.prober
}

// Lookup resolves name/recordType with the selected backend. The
// returned slice is empty (and non-nil) for a valid negative answer;
// errors carry the pkg/types classes.
func (d *Dispatcher) Lookup(ctx context.Context, name string, rtype types.RecordType, opts Options) ([]types.Record, error) {
	b, err := d.selectBackend(opts)
	if err != nil {
		return nil, err
	}
	return d.LookupWith(ctx, b, name, rtype, opts)
}

// LookupWith resolves with an explicit backend instance
func (d *Dispatcher) LookupWith(ctx context.Context, b backend.Backend, name string, rtype types.RecordType, opts Options) ([]types.Record, error) {
	start := time.Now()
	records, err := d.lookupWith(ctx, b, name, rtype, opts)
	metrics.ObserveLookup(b.Name(), string(rtype), outcomeOf(records, err), time.Since(start))
	return records, err
}

func (d *Dispatcher) lookupWith(ctx context.Context, b backend.Backend, name string, rtype types.RecordType, opts Options) ([]types.Record, error) {
	name = dnsname.Normalize(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty domain name", types.ErrBadInput)
	}
	if !b.Supports(rtype) {
		return nil, fmt.Errorf("%w: backend %s does not answer %s queries",
			types.ErrUnsupportedType, b.Name(), rtype)
	}

	servers := opts.Servers
	if len(servers) == 0 {
		servers = d.cfg.Servers
	}
	for _, s := range servers {
		if err := config.ValidateServer(s); err != nil {
			return nil, err
		}
	}

	qlog := d.logger.With().
		Str("query_id", uuid.NewString()).
		Str("backend", b.Name()).
		Str("name", name).
		Str("type", string(rtype)).
		Logger()

	names := []string{name}
	if opts.Walk {
		names = dnsname.Tree(name)
	}

	var (
		lastErr  error
		sawEmpty bool
	)
	attempts := 0
	for _, n := range names {
		attempts++
		q := types.Query{Name: n, Type: rtype, Servers: servers, Secure: opts.Secure}

		qctx, cancel := context.WithTimeout(ctx, d.cfg.Timeout())
		records, err := b.Lookup(qctx, q)
		cancel()

		if err != nil {
			// a single unreachable server must not abort the walk;
			// anything other than a transient failure is fatal
			if !errors.Is(err, types.ErrUnavailable) {
				return nil, err
			}
			qlog.Warn().Err(err).Str("suffix", n).Msg("suffix attempt failed")
			lastErr = err
			continue
		}
		if len(records) > 0 {
			qlog.Debug().Str("suffix", n).Int("records", len(records)).Msg("lookup answered")
			d.observeWalk(opts, attempts)
			return records, nil
		}
		sawEmpty = true
	}
	d.observeWalk(opts, attempts)

	if sawEmpty {
		// at least one suffix answered with a clean negative
		return []types.Record{}, nil
	}
	qlog.Error().Err(lastErr).Msg("every attempt failed")
	return nil, lastErr
}

func (d *Dispatcher) observeWalk(opts Options, attempts int) {
	if opts.Walk {
		metrics.WalkAttempts.Observe(float64(attempts))
	}
}

func (d *Dispatcher) selectBackend(opts Options) (backend.Backend, error) {
	name := opts.Backend
	if name == "" {
		name, _ = d.cfg.Get("backend", "auto").(string)
	}
	if name == "" || name == "auto" {
		if opts.Secure {
			return d.prober.DetectSecure()
		}
		return d.prober.Detect(), nil
	}
	b, err := d.prober.ByName(name)
	if err != nil {
		return nil, err
	}
	if opts.Secure && !b.SupportsSecure() {
		return nil, fmt.Errorf("%w: backend %s cannot validate DNSSEC", types.ErrBadInput, name)
	}
	return b, nil
}

func outcomeOf(records []types.Record, err error) string {
	switch {
	case err == nil && len(records) > 0:
		return metrics.OutcomeOK
	case err == nil:
		return metrics.OutcomeEmpty
	case errors.Is(err, types.ErrUnavailable):
		return metrics.OutcomeUnavailable
	case errors.Is(err, types.ErrParse):
		return metrics.OutcomeParse
	default:
		return metrics.OutcomeUsage
	}
}
