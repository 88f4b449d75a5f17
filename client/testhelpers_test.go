package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const testCredential = "test-credential"

// writeCSV stores content in a temp file and returns its path.
func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// recordingTransport captures every call and answers with a canned body.
type recordingTransport struct {
	mu    sync.Mutex
	calls []Request
	body  string
}

func (m *recordingTransport) Call(_ context.Context, req Request) (Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, req)
	body := m.body
	if body == "" {
		body = "{}"
	}
	return Response(body), nil
}

func (m *recordingTransport) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func newMockClient(t *testing.T, body string) (*Client, *recordingTransport) {
	t.Helper()
	rt := &recordingTransport{body: body}
	c, err := New("http://registry.invalid", testCredential, WithTransport(rt))
	require.NoError(t, err)
	return c, rt
}

// capturedRequest is what the stub registry saw for one call.
type capturedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Auth     []string
	Body     []byte
}

// stubRegistry answers every request with status/body and records it.
type stubRegistry struct {
	*httptest.Server
	mu   sync.Mutex
	seen []capturedRequest
}

func newStubRegistry(t *testing.T, status int, body string) *stubRegistry {
	t.Helper()
	s := &stubRegistry{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.seen = append(s.seen, capturedRequest{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
			Auth:     r.Header.Values("Authorization"),
			Body:     b,
		})
		s.mu.Unlock()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *stubRegistry) requests() []capturedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]capturedRequest(nil), s.seen...)
}

func newHTTPClient(t *testing.T, baseURL string, opts ...Option) *Client {
	t.Helper()
	c, err := New(baseURL, testCredential, opts...)
	require.NoError(t, err)
	return c
}

// validRequests returns inputs that pass local validation for every action.
func validRequests(t *testing.T) map[Action]ActionRequest {
	t.Helper()
	queryCSV := writeCSV(t, "ark,title\nark:/99999/fk4a,A\n")
	mintCSV := writeCSV(t, "title,url\nA,https://example.org/a\n")
	return map[Action]ActionRequest{
		ActionQuery:     {FieldARK: "ark:/99999/fk4test"},
		ActionStatus:    {},
		ActionUpdate:    {FieldARK: "ark:/99999/fk4test", FieldTitle: "New title"},
		ActionMint:      {FieldNAAN: "99999", FieldShoulder: "fk4"},
		ActionQueryCSV:  {FieldCSV: queryCSV},
		ActionUpdateCSV: {FieldCSV: queryCSV},
		ActionMintCSV:   {FieldCSV: mintCSV, FieldNAAN: "99999"},
	}
}

func allActions() []Action {
	return []Action{ActionQuery, ActionUpdate, ActionMint, ActionQueryCSV, ActionUpdateCSV, ActionMintCSV, ActionStatus}
}
