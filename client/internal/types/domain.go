package types

import (
	"fmt"
	"sort"
)

// Field names a recognised request field. The same names are used as CLI
// flags and as keys of the JSON body sent to the registry.
type Field string

const (
	FieldNAAN       Field = "naan"
	FieldShoulder   Field = "shoulder"
	FieldURL        Field = "url"
	FieldMetadata   Field = "metadata"
	FieldTitle      Field = "title"
	FieldType       Field = "type"
	FieldCommitment Field = "commitment"
	FieldIdentifier Field = "identifier"
	FieldFormat     Field = "format"
	FieldRelation   Field = "relation"
	FieldSource     Field = "source"
	FieldCSV        Field = "csv"
	FieldARK        Field = "ark"
)

// AllFields lists every recognised field in flag order.
var AllFields = []Field{
	FieldNAAN,
	FieldShoulder,
	FieldURL,
	FieldMetadata,
	FieldTitle,
	FieldType,
	FieldCommitment,
	FieldIdentifier,
	FieldFormat,
	FieldRelation,
	FieldSource,
	FieldCSV,
	FieldARK,
}

// ParseField maps a field name to its Field, rejecting unknown names.
func ParseField(name string) (Field, error) {
	for _, f := range AllFields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown field %q", name)
}

// ActionRequest holds the fields a caller supplied for one action.
// A key that is present counts as supplied even when its value is empty.
type ActionRequest map[Field]string

// Has reports whether f was supplied at all.
func (r ActionRequest) Has(f Field) bool {
	_, ok := r[f]
	return ok
}

// Value returns the value of f, or "" when it was not supplied.
func (r ActionRequest) Value(f Field) string { return r[f] }

// Set returns the supplied fields in flag order, followed by any
// unrecognised keys in lexical order.
func (r ActionRequest) Set() []Field {
	out := make([]Field, 0, len(r))
	known := make(map[Field]bool, len(AllFields))
	for _, f := range AllFields {
		known[f] = true
		if r.Has(f) {
			out = append(out, f)
		}
	}
	var unknown []Field
	for f := range r {
		if !known[f] {
			unknown = append(unknown, f)
		}
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })
	return append(out, unknown...)
}

// Clone returns a copy that can be handed to an encoder without aliasing r.
func (r ActionRequest) Clone() ActionRequest {
	out := make(ActionRequest, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// BatchRecord is one CSV data row keyed by column header.
type BatchRecord map[string]string
