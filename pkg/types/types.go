package types

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/miekg/dns"
)

// RecordType identifies a DNS resource record category
type RecordType string

const (
	TypeA     RecordType = "A"
	TypeAAAA  RecordType = "AAAA"
	TypeCAA   RecordType = "CAA"
	TypeCNAME RecordType = "CNAME"
	TypeMX    RecordType = "MX"
	TypeNS    RecordType = "NS"
	TypePTR   RecordType = "PTR"
	TypeSOA   RecordType = "SOA"
	TypeSPF   RecordType = "SPF"
	TypeSRV   RecordType = "SRV"
	TypeSSHFP RecordType = "SSHFP"
	TypeTXT   RecordType = "TXT"
)

// AllTypes lists every record type burrow can parse, in presentation order
var AllTypes = []RecordType{
	TypeA, TypeAAAA, TypeCAA, TypeCNAME, TypeMX, TypeNS,
	TypePTR, TypeSOA, TypeSPF, TypeSRV, TypeSSHFP, TypeTXT,
}

// ParseRecordType normalizes and validates a record type string.
// The type must be known to the DNS wire protocol (per the miekg/dns
// type table) and supported by burrow's schema layer.
func ParseRecordType(s string) (RecordType, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	if up == "" {
		return "", fmt.Errorf("%w: empty record type", ErrUnsupportedType)
	}
	// SPF has no wire type of its own anymore; it travels as TXT
	if up != string(TypeSPF) {
		if _, ok := dns.StringToType[up]; !ok {
			return "", fmt.Errorf("%w: %q is not a DNS record type", ErrUnsupportedType, s)
		}
	}
	rt := RecordType(up)
	for _, t := range AllTypes {
		if t == rt {
			return rt, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedType, up)
}

// Qtype returns the wire query type for the record type, 0 if it has none
func (t RecordType) Qtype() uint16 {
	return dns.StringToType[string(t)]
}

func (t RecordType) String() string {
	return string(t)
}

// Field is one named, typed value inside a structured record
type Field struct {
	Name  string
	Value any
}

// Record is the result of resolving one name for one type.
//
// Scalar types (A, AAAA, CNAME, TXT, ...) carry a single value reachable
// through Scalar. Structured types (MX, SRV, CAA, SSHFP, SOA) carry the
// ordered field set their schema defines. All records returned by one
// query share the same shape because they come from the same schema.
type Record struct {
	rtype  RecordType
	fields []Field
}

// NewRecord builds a structured record from an ordered field list
func NewRecord(t RecordType, fields []Field) Record {
	return Record{rtype: t, fields: fields}
}

// NewScalar builds a single-value record
func NewScalar(t RecordType, name string, value any) Record {
	return Record{rtype: t, fields: []Field{{Name: name, Value: value}}}
}

// Type returns the record type this record was parsed as
func (r Record) Type() RecordType {
	return r.rtype
}

// Fields returns a copy of the ordered field list
func (r Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Get returns the value of a named field
func (r Record) Get(name string) (any, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Scalar returns the single value of a scalar record. For structured
// records it returns the first field value.
func (r Record) Scalar() any {
	if len(r.fields) == 0 {
		return nil
	}
	return r.fields[0].Value
}

// Int returns a named field as an int. Missing or non-integer fields
// return 0 with ok=false.
func (r Record) Int(name string) (int, bool) {
	v, ok := r.Get(name)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case uint16:
		return int(n), true
	case int64:
		return int(n), true
	}
	return 0, false
}

// Equal reports whether two records have the same type and the same
// ordered fields. Values are compared through their string form so that
// typed addresses and plain strings representing the same data match.
func (r Record) Equal(o Record) bool {
	if r.rtype != o.rtype || len(r.fields) != len(o.fields) {
		return false
	}
	for i := range r.fields {
		if r.fields[i].Name != o.fields[i].Name {
			return false
		}
		if fmt.Sprint(r.fields[i].Value) != fmt.Sprint(o.fields[i].Value) {
			return false
		}
	}
	return true
}

func (r Record) String() string {
	if len(r.fields) == 1 {
		return fmt.Sprintf("%v", r.fields[0].Value)
	}
	parts := make([]string, 0, len(r.fields))
	for _, f := range r.fields {
		parts = append(parts, fmt.Sprintf("%s=%v", f.Name, f.Value))
	}
	return strings.Join(parts, " ")
}

// MarshalJSON renders scalar records as their bare value and structured
// records as an object preserving schema field order.
func (r Record) MarshalJSON() ([]byte, error) {
	if len(r.fields) == 1 {
		return json.Marshal(fmt.Sprint(r.fields[0].Value))
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		val, err := json.Marshal(f.Value)
		if err != nil {
			// typed values like netip.Addr marshal fine; anything
			// exotic falls back to its string form
			val, err = json.Marshal(fmt.Sprint(f.Value))
			if err != nil {
				return nil, err
			}
		}
		b.Write(val)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

// Query is the ephemeral input to one backend lookup
type Query struct {
	Name    string
	Type    RecordType
	Servers []string // optional explicit resolver addresses
	Secure  bool     // require DNSSEC-validated answers
}
