package schema

import (
	"fmt"

	"github.com/cuemby/burrow/pkg/types"
)

// Field pairs a record field name with its casting function
type Field struct {
	Name string
	Cast CastFunc
}

// Schema is the ordered field list for one record type. Defined once,
// immutable, applied identically by every backend adapter so that
// cross-backend output equivalence holds.
type Schema struct {
	Type   types.RecordType
	Fields []Field
}

// Scalar reports whether records of this type carry a single value
func (s Schema) Scalar() bool {
	return len(s.Fields) == 1
}

var schemas = map[types.RecordType]Schema{
	types.TypeA: {types.TypeA, []Field{
		{"address", castIPv4},
	}},
	types.TypeAAAA: {types.TypeAAAA, []Field{
		{"address", castIPv6},
	}},
	types.TypeCAA: {types.TypeCAA, []Field{
		{"flags", castInt},
		{"tag", castString},
		{"value", castText},
	}},
	types.TypeCNAME: {types.TypeCNAME, []Field{
		{"name", castString},
	}},
	types.TypeMX: {types.TypeMX, []Field{
		{"preference", castInt},
		{"name", castString},
	}},
	types.TypeNS: {types.TypeNS, []Field{
		{"name", castString},
	}},
	types.TypePTR: {types.TypePTR, []Field{
		{"name", castString},
	}},
	types.TypeSOA: {types.TypeSOA, []Field{
		{"mname", castString},
		{"rname", castString},
		{"serial", castInt},
		{"refresh", castInt},
		{"retry", castInt},
		{"expire", castInt},
		{"minimum", castInt},
	}},
	types.TypeSPF: {types.TypeSPF, []Field{
		{"text", castText},
	}},
	types.TypeSRV: {types.TypeSRV, []Field{
		{"priority", castInt},
		{"weight", castInt},
		{"port", castPort},
		{"target", castString},
	}},
	types.TypeSSHFP: {types.TypeSSHFP, []Field{
		{"algorithm", castInt},
		{"fingerprint_type", castInt},
		{"fingerprint", castHex},
	}},
	types.TypeTXT: {types.TypeTXT, []Field{
		{"text", castText},
	}},
}

// For returns the schema for a record type
func For(t types.RecordType) (Schema, bool) {
	s, ok := schemas[t]
	return s, ok
}

// RecordFromTokens builds a record by consuming raw tokens left-to-right
// against the schema's ordered field list. The final field absorbs all
// remaining tokens, joined by a single space, so multi-token trailing
// data (TXT text, CAA values, chunked fingerprints) survives.
//
// Too few tokens or a failing cast fail the whole record: the caller
// must treat that as a parse failure, never as a valid empty record.
func RecordFromTokens(t types.RecordType, tokens []string) (types.Record, error) {
	sch, ok := For(t)
	if !ok {
		return types.Record{}, fmt.Errorf("%w: %s", types.ErrUnsupportedType, t)
	}
	if len(tokens) < len(sch.Fields) {
		return types.Record{}, fmt.Errorf("%w: %s record needs %d fields, got %d tokens",
			types.ErrParse, t, len(sch.Fields), len(tokens))
	}
	fields := make([]types.Field, 0, len(sch.Fields))
	for i, f := range sch.Fields {
		token := tokens[i]
		if i == len(sch.Fields)-1 {
			token = joinTokens(tokens[i:])
		}
		v, err := f.Cast(token)
		if err != nil {
			return types.Record{}, fmt.Errorf("%w: %s field %s: %v", types.ErrParse, t, f.Name, err)
		}
		fields = append(fields, types.Field{Name: f.Name, Value: v})
	}
	return types.NewRecord(t, fields), nil
}

func joinTokens(tokens []string) string {
	if len(tokens) == 1 {
		return tokens[0]
	}
	out := tokens[0]
	for _, t := range tokens[1:] {
		out += " " + t
	}
	return out
}
