package types

import "context"

// ------------------------------
// Shared Interfaces
// ------------------------------

// Transport performs one HTTP exchange with the registry.
//
// Implementations return *errors.APIError for any status other than 200 and
// pass connection failures and timeouts through unchanged.
type Transport interface {
	Call(ctx context.Context, req Request) (Response, error)
}

// ------------------------------
// Field-set checks
// ------------------------------

// FirstMissing returns the first field in required that is absent or empty.
func FirstMissing(r ActionRequest, required ...Field) (Field, bool) {
	for _, f := range required {
		if r.Value(f) == "" {
			return f, true
		}
	}
	return "", false
}

// FirstExtra returns the first supplied field that is not in allowed.
func FirstExtra(r ActionRequest, allowed ...Field) (Field, bool) {
	ok := make(map[Field]bool, len(allowed))
	for _, f := range allowed {
		ok[f] = true
	}
	for _, f := range r.Set() {
		if !ok[f] {
			return f, true
		}
	}
	return "", false
}
