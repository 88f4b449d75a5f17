package api

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ffoerster/ee-ark/client/internal/types"
)

// fakeTransport records calls and answers with "{}".
type fakeTransport struct {
	calls []types.Request
}

func (f *fakeTransport) Call(_ context.Context, req types.Request) (types.Response, error) {
	f.calls = append(f.calls, req)
	return types.Response(`{}`), nil
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
