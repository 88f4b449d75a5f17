// Package transport executes registry requests over HTTP.
package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	clienterrors "github.com/ffoerster/ee-ark/client/internal/errors"
	"github.com/ffoerster/ee-ark/client/internal/types"
)

// DefaultTimeout bounds a single exchange, from dial to last body byte.
const DefaultTimeout = 5 * time.Second

// HTTP is a types.Transport backed by a resty client.
type HTTP struct {
	client  *resty.Client
	baseURL string
}

// New builds an HTTP transport rooted at baseURL. A nil rt keeps the default
// round tripper; timeout <= 0 selects DefaultTimeout.
func New(baseURL string, timeout time.Duration, rt http.RoundTripper) *HTTP {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := resty.New().
		SetTimeout(timeout).
		SetLogger(zerologAdapter{})
	if rt != nil {
		c.SetTransport(rt)
	}
	return &HTTP{client: c, baseURL: strings.TrimRight(baseURL, "/")}
}

// URL joins path onto the base URL. The path is not escaped, so ARKs such as
// "ark:/99999/fk4x?json" keep their query suffix.
func (h *HTTP) URL(path string) string {
	return h.baseURL + "/" + path
}

// Call implements types.Transport. Only 200 counts as success.
func (h *HTTP) Call(ctx context.Context, req types.Request) (types.Response, error) {
	r := h.client.R().SetContext(ctx)
	if req.Authenticated() {
		r.SetHeader("Authorization", req.Authorization)
	}
	if req.Body != nil {
		r.SetHeader("Content-Type", "application/json").SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, h.URL(req.Path))
	if err != nil {
		return nil, err
	}

	body := resp.Body()
	if resp.StatusCode() != http.StatusOK {
		return nil, clienterrors.NewHTTPError(resp.StatusCode(), string(body))
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("decode response: body of %d bytes is not valid JSON", len(body))
	}
	return types.Response(body), nil
}
