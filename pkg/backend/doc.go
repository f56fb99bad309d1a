/*
Package backend implements the interchangeable lookup strategies behind
the dispatcher: the platform resolver plus the four external tools
(dig, drill, host, nslookup), and the availability probe that picks one
at runtime.

# Architecture

	┌───────────────────── BACKEND LAYER ─────────────────────┐
	│                                                          │
	│  ┌───────────────┐     probes PATH, fixed preference     │
	│  │    Prober      │────► dig > drill > host > nslookup   │
	│  │  (cached,      │      └─ fallback: native resolver    │
	│  │   resettable)  │                                      │
	│  └───────┬───────┘                                       │
	│          │ builds                                        │
	│  ┌───────▼───────────────────────────────────────┐      │
	│  │          Backend (closed variant set)          │      │
	│  │  native │ dig │ drill │ host │ nslookup        │      │
	│  └───────┬───────────────────────────────────────┘      │
	│          │ invokes via executil.Runner                   │
	│  ┌───────▼───────┐      ┌──────────────────┐            │
	│  │ tool process   │─────►│ output grammar    │──► Records│
	│  └───────────────┘      │ (tool-specific)   │   (schema)│
	│                          └──────────────────┘            │
	└──────────────────────────────────────────────────────────┘

# Outcome mapping

Every adapter maps its tool's behavior onto the shared contract:

  - Non-zero exit with a recognizable type-rejection string: usage
    error (ErrUnsupportedType), so the dispatcher can validate types
    lazily through the backend itself
  - Non-zero exit for operational reasons (timeout, no server
    reachable): ErrUnavailable
  - Zero exit with the tool's negative-answer phrasing ("has no MX
    record", "No answer"): empty record slice, not an error
  - Zero exit with answer lines: tokenized per the tool's grammar and
    cast through pkg/schema, so identical underlying DNS data parses
    identically across backends

# Secure mode

dig and drill request DNSSEC and return records only when the response
carries a type-matching RRSIG; unsigned answers under secure=true are
reported as ErrUnavailable rather than silently degraded. host,
nslookup and the native resolver cannot validate and reject secure
queries as usage errors.

# Tool grammars

dig/drill emit RR presentation lines (owner [TTL] [class] TYPE rdata);
the type mnemonic is located within the leading tokens, never inside
rdata. host emits prose sentences with a per-type phrase between owner
and data. nslookup emits Name:/Address: pairs for address queries and
"key = rdata" lines for everything else, under a "Non-authoritative
answer:" header.
*/
package backend
