package client

import (
	clienterrors "github.com/ffoerster/ee-ark/client/internal/errors"
)

// ValidationError reports a request rejected before any network I/O.
type ValidationError = clienterrors.ValidationError

// APIError reports a registry response with a status other than 200.
type APIError = clienterrors.APIError

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return clienterrors.IsValidation(err) }

// AsAPIError extracts an *APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) { return clienterrors.AsAPIError(err) }
