/*
Package resolver is the lookup dispatcher: the single entry point that
validates a query, selects a backend, drives the optional domain-tree
walk, and shapes results for priority-tiered callers.

# Architecture

	┌────────────────────── DISPATCHER ───────────────────────┐
	│                                                          │
	│  Lookup(name, type, opts)                                │
	│      │                                                   │
	│      ├─ validate type against the backend's support set  │
	│      ├─ validate server addresses                        │
	│      │                                                   │
	│      ├─ select backend                                   │
	│      │    explicit name ──► prober.ByName                │
	│      │    auto ───────────► prober.Detect (cached)       │
	│      │    auto + secure ──► prober.DetectSecure          │
	│      │                                                   │
	│      └─ drive attempts                                   │
	│           walk=false: the name itself                    │
	│           walk=true:  dnsname.Tree, most-specific first  │
	│                                                          │
	│  Group / OrderedSRV / OrderedMX                          │
	│      priority-tiered views over flat records             │
	└──────────────────────────────────────────────────────────┘

# Walk semantics

With walk enabled the suffixes of the name are tried strictly
sequentially. The first non-empty answer wins. A transient failure at
one suffix does not abort the walk, since a single unreachable server
must not hide records living at a shorter suffix; the failure is only
propagated when every suffix failed. If at least one suffix answered
cleanly with no records, the result is the negative answer.

Usage and parse errors are fatal immediately: they describe the call or
the tooling, not the DNS data, and retrying other suffixes cannot fix
them.

# Aggregation

Group buckets records by a key field (MX preference, SRV priority)
into an ordered mapping: first-seen key order, input order within each
key, keys cast through the schema layer so "10" and 10 collapse.
OrderedSRV and OrderedMX flatten those tiers back into the RFC 2782
selection order, delegating intra-tier permutation to pkg/weighted.

Every lookup is assigned a query_id (uuid) so the log lines of one
walk correlate, and reports outcome-labelled metrics via pkg/metrics.
*/
package resolver
