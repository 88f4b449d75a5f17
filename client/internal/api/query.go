package api

import (
	"context"
	"net/http"

	"github.com/ffoerster/ee-ark/client/internal/types"
)

// Query resolves a single ARK. The registry answers "<ark>?json" with the
// identifier's record.
func Query(ctx context.Context, t types.Transport, req types.ActionRequest) (types.Response, error) {
	if err := requireFields("query", req, types.FieldARK); err != nil {
		return nil, err
	}
	return anonymous(ctx, t, http.MethodGet, req.Value(types.FieldARK)+"?json", nil)
}

// Status fetches the registry root.
func Status(ctx context.Context, t types.Transport, _ types.ActionRequest) (types.Response, error) {
	return anonymous(ctx, t, http.MethodGet, pathRoot, nil)
}
