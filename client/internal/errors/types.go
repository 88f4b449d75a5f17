// Package errors defines the error kinds surfaced by the ARK client SDK.
package errors

import (
	"errors"
	"fmt"
)

// ValidationError reports a request rejected locally, before any network
// I/O took place.
type ValidationError struct {
	Action string // action name, e.g. "update_csv"
	Field  string // offending field or CSV column
	Row    int    // 1-based CSV data row; 0 when not row specific
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := e.Reason
	if e.Row > 0 {
		msg = fmt.Sprintf("%s (row %d)", msg, e.Row)
	}
	if e.Action != "" {
		return e.Action + ": " + msg
	}
	return msg
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// APIError reports a registry response whose status was not 200.
type APIError struct {
	StatusCode int
	Body       string // raw response body text
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("request failed: %d, %s", e.StatusCode, e.Body)
}

// AsAPIError extracts an *APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
