package api

import (
	"context"
	"net/http"

	"github.com/ffoerster/ee-ark/client/internal/types"
)

// Update replaces the metadata of an existing ARK. Every supplied field,
// including ark itself, is sent as the body.
func Update(ctx context.Context, t types.Transport, credential string, req types.ActionRequest) (types.Response, error) {
	if err := requireFields("update", req, types.FieldARK); err != nil {
		return nil, err
	}
	return authorized(ctx, t, credential, http.MethodPut, pathUpdate, req.Clone())
}
