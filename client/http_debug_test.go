package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestDebugTransport_RedactsCredentialAndKeepsBody(t *testing.T) {
	var buf bytes.Buffer
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	var gotAuth, gotBody string
	dt := &debugTransport{base: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		gotAuth = r.Header.Get("Authorization")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"ok":true}`)),
			Header:     make(http.Header),
		}, nil
	})}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, "http://registry.invalid/mint", strings.NewReader(`{"naan":"99999"}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "super-secret")

	resp, err := dt.RoundTrip(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, "super-secret", gotAuth)
	assert.Equal(t, `{"naan":"99999"}`, gotBody)
	assert.NotContains(t, buf.String(), "super-secret")
	assert.Contains(t, buf.String(), redacted)
	assert.Contains(t, buf.String(), `HTTP response`)
}

func TestDebugLoggingRequested(t *testing.T) {
	t.Setenv("ARK_DEBUG", "")
	t.Setenv("DEBUG", "")
	assert.False(t, debugLoggingRequested())
	t.Setenv("ARK_DEBUG", "true")
	assert.True(t, debugLoggingRequested())
}

func TestWithDebugLogging_InstallsDebugTransport(t *testing.T) {
	c, err := New("http://registry.invalid", testCredential, WithDebugLogging(true))
	require.NoError(t, err)
	assert.True(t, c.debug)
	assert.NotNil(t, c.transport)
}
