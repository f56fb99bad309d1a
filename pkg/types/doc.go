/*
Package types defines the shared data model for burrow: record types,
the polymorphic Record value, the Query input, and the error classes
every other package reports through.

# Core Components

RecordType:
  - String enum over the record categories burrow can parse
  - Validated against the miekg/dns wire-type table via ParseRecordType
  - Qtype() maps back to the numeric wire type

Record:
  - Ordered field list; scalar records carry one value, structured
    records carry the field set their schema defines
  - Accessors: Scalar, Get, Int, Fields
  - JSON form: bare value for scalars, field-ordered object otherwise

Outcome contract:
  - Non-empty record slice: answer
  - Empty (non-nil) record slice: negative answer, meaning the query
    succeeded but the name holds no records of the requested type
  - Error wrapping ErrUnavailable / ErrUnsupportedType / ErrBadInput /
    ErrParse: failure, classified for the caller

Collapsing the negative answer into the failure class would be a
correctness bug; callers distinguish the two with errors.Is and a nil
check, never by len() alone.

# Integration Points

This package is imported by:

  - pkg/schema: builds Records from parsed tokens
  - pkg/backend: returns Records and error classes from adapters
  - pkg/resolver: validates RecordTypes and groups Records
  - cmd/burrow: renders Records as text or JSON
*/
package types
