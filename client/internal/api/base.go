package api

import (
	"context"

	clienterrors "github.com/ffoerster/ee-ark/client/internal/errors"
	"github.com/ffoerster/ee-ark/client/internal/types"
)

// Relative paths on the registry.
const (
	pathRoot       = ""
	pathUpdate     = "update"
	pathMint       = "mint"
	pathBulkQuery  = "bulk_query"
	pathBulkUpdate = "bulk_update"
	pathBulkMint   = "bulk_mint"
)

// anonymous sends req without a credential.
func anonymous(ctx context.Context, t types.Transport, method, path string, body any) (types.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return t.Call(ctx, types.Request{Method: method, Path: path, Body: body})
}

// authorized sends body as JSON with the credential attached verbatim.
func authorized(ctx context.Context, t types.Transport, credential, method, path string, body any) (types.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return t.Call(ctx, types.Request{
		Method:        method,
		Path:          path,
		Authorization: credential,
		Body:          body,
	})
}

func requireFields(action string, req types.ActionRequest, fields ...types.Field) error {
	if f, missing := types.FirstMissing(req, fields...); missing {
		return clienterrors.MissingField(action, string(f))
	}
	return nil
}

// allowOnly rejects any supplied field outside allowed.
func allowOnly(action string, req types.ActionRequest, allowed ...types.Field) error {
	if f, extra := types.FirstExtra(req, allowed...); extra {
		names := make([]string, len(allowed))
		for i, a := range allowed {
			names[i] = string(a)
		}
		return clienterrors.UnexpectedField(action, string(f), names)
	}
	return nil
}
