package errors

import (
	"fmt"
	"strings"
)

// MissingField builds the error for an absent required field.
func MissingField(action, field string) *ValidationError {
	return &ValidationError{
		Action: action,
		Field:  field,
		Reason: fmt.Sprintf("must include --%s argument", field),
	}
}

// UnexpectedField builds the error for a field outside a bulk action's
// allow-list.
func UnexpectedField(action, field string, allowed []string) *ValidationError {
	return &ValidationError{
		Action: action,
		Field:  field,
		Reason: fmt.Sprintf("--%s is not accepted; only %s may be supplied", field, flagList(allowed)),
	}
}

// MissingColumn builds the error for a CSV record without the named column.
// row is the 1-based data row, or 0 when the table has no rows at all.
func MissingColumn(action, column string, row int) *ValidationError {
	return &ValidationError{
		Action: action,
		Field:  column,
		Row:    row,
		Reason: fmt.Sprintf("CSV must include %q column", column),
	}
}

// NewHTTPError builds the error for a non-200 response.
func NewHTTPError(statusCode int, body string) *APIError {
	return &APIError{StatusCode: statusCode, Body: body}
}

func flagList(fields []string) string {
	flags := make([]string, len(fields))
	for i, f := range fields {
		flags[i] = "--" + f
	}
	if len(flags) < 2 {
		return strings.Join(flags, "")
	}
	return strings.Join(flags[:len(flags)-1], ", ") + " and " + flags[len(flags)-1]
}
