package types

import "errors"

// Error classes for the three-way lookup outcome. A lookup returns
// either records (possibly an empty slice, the valid negative answer)
// or an error wrapping one of these sentinels:
//
//   - ErrUnavailable: transient communication failure (timeout, no
//     server reachable, resolver error). Callers may retry.
//   - ErrUnsupportedType / ErrBadInput: usage errors. Never retried;
//     the call itself must be fixed.
//   - ErrParse: the backend produced output its grammar cannot
//     tokenize, which signals a tool version mismatch rather than a
//     DNS-layer condition.
//
// Classify with errors.Is.
var (
	ErrUnavailable     = errors.New("resolver unavailable")
	ErrUnsupportedType = errors.New("unsupported record type")
	ErrBadInput        = errors.New("invalid input")
	ErrParse           = errors.New("unparseable resolver output")
)
