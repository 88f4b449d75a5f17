package api

import (
	"context"
	"net/http"

	"github.com/ffoerster/ee-ark/client/internal/types"
)

// Mint asks the registry for a new ARK under naan/shoulder.
func Mint(ctx context.Context, t types.Transport, credential string, req types.ActionRequest) (types.Response, error) {
	if err := requireFields("mint", req, types.FieldNAAN, types.FieldShoulder); err != nil {
		return nil, err
	}
	return authorized(ctx, t, credential, http.MethodPost, pathMint, req.Clone())
}
