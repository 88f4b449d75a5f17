package client

import "github.com/ffoerster/ee-ark/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	Field         = types.Field
	ActionRequest = types.ActionRequest
	BatchRecord   = types.BatchRecord
	Response      = types.Response

	// Transport seam, for callers supplying their own HTTP layer or fakes.
	Transport = types.Transport
	Request   = types.Request
)

// Recognised fields.
const (
	FieldNAAN       = types.FieldNAAN
	FieldShoulder   = types.FieldShoulder
	FieldURL        = types.FieldURL
	FieldMetadata   = types.FieldMetadata
	FieldTitle      = types.FieldTitle
	FieldType       = types.FieldType
	FieldCommitment = types.FieldCommitment
	FieldIdentifier = types.FieldIdentifier
	FieldFormat     = types.FieldFormat
	FieldRelation   = types.FieldRelation
	FieldSource     = types.FieldSource
	FieldCSV        = types.FieldCSV
	FieldARK        = types.FieldARK
)

// AllFields lists every recognised field in flag order.
func AllFields() []Field { return append([]Field(nil), types.AllFields...) }

// ParseField maps a field name to its Field.
func ParseField(name string) (Field, error) { return types.ParseField(name) }
