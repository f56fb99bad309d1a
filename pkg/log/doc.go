/*
Package log provides structured logging for burrow using zerolog.

The log package wraps the zerolog library to provide JSON-structured
logging with component-specific child loggers, configurable log levels,
and helper functions for common logging patterns.

# Usage

Initializing the logger:

	import "github.com/cuemby/burrow/pkg/log"

	// JSON output (agents, services)
	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: true,
		Output:     os.Stderr,
	})

	// Console output (interactive CLI)
	log.Init(log.Config{
		Level:      log.DebugLevel,
		JSONOutput: false,
	})

Context loggers:

	resolverLog := log.WithComponent("resolver")
	resolverLog.Debug().
		Str("name", "example.com").
		Str("type", "MX").
		Msg("dispatching lookup")

	queryLog := log.WithQueryID(id)
	queryLog.Warn().Err(err).Msg("suffix attempt failed, walking on")

The CLI logs to stderr so that record output on stdout stays pipeable.

# Integration Points

This package is used by:

  - pkg/resolver: lookup dispatch, walk progress, outcome classification
  - cmd/burrow: startup configuration, serve-mode request logs
*/
package log
