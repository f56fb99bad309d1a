/*
Package schema declares the per-record-type field schemas and the
value-casting routines that turn raw resolver-output tokens into typed
values.

# Core Components

Schemas:
  - One immutable ordered field list per record type
  - Scalar types (A, AAAA, CNAME, NS, PTR, SPF, TXT) have one field
  - Structured types (CAA, MX, SOA, SRV, SSHFP) define the field set
    and order every backend must produce

Casters:
  - Strict address parsing (netip): malformed input fails the record,
    it is never silently truncated
  - Port casting enforces 1..65535 on numeric or numeric-string input
  - Hex casting normalizes fingerprints (lowercase, whitespace removed)
    so SSHFP output is byte-identical across backends
  - Text casting strips resolver-tool quoting and rejoins chunked
    character strings

Generic Cast:
  - Comma-separated values become trimmed string lists
  - Integer-looking values become ints unless the field name matches
    serial|part|asset|product (identifiers stay strings)
  - Used by the group aggregator to cast grouping keys before
    comparison

# Usage

	rec, err := schema.RecordFromTokens(types.TypeMX,
		[]string{"10", "mx1.example.com."})
	// rec.Get("preference") == 10
	// rec.Get("name") == "mx1.example.com."

Every backend adapter builds its records through RecordFromTokens, which
is what makes cross-backend parser equivalence testable.
*/
package schema
