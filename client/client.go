package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ffoerster/ee-ark/client/internal/transport"
	"github.com/ffoerster/ee-ark/client/internal/types"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client dispatches actions against one ARK registry.
type Client struct {
	baseURL    string
	credential string // sent verbatim as Authorization on authenticated actions
	timeout    time.Duration
	debug      bool
	transport  types.Transport
}

// New constructs a Client for the registry at baseURL using credential for
// authenticated actions. Additional options can be provided via functional
// arguments.
func New(baseURL, credential string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL cannot be empty")
	}
	if credential == "" {
		return nil, fmt.Errorf("credential cannot be empty")
	}

	c := &Client{
		baseURL:    baseURL,
		credential: credential,
		timeout:    transport.DefaultTimeout,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.transport == nil {
		var rt http.RoundTripper
		if c.debug {
			rt = &debugTransport{base: http.DefaultTransport}
		}
		c.transport = transport.New(c.baseURL, c.timeout, rt)
	}
	return c, nil
}

// Do runs action with the supplied fields and returns the registry's JSON
// response. Validation failures are reported before any request is sent.
func (c *Client) Do(ctx context.Context, action Action, req ActionRequest) (Response, error) {
	if !action.valid() {
		return nil, fmt.Errorf("unsupported action %s", action)
	}
	if req == nil {
		req = ActionRequest{}
	}

	requestID := uuid.NewString()
	log.Debug().
		Str("request_id", requestID).
		Str("action", action.String()).
		Bool("authenticated", action.Authenticated()).
		Int("fields", len(req)).
		Msg("dispatching action")

	start := time.Now()
	resp, err := actionTable[action].run(ctx, c.transport, c.credentialFor(action), req)
	elapsed := time.Since(start)
	outcome := observe(action, err)

	if err != nil {
		log.Debug().
			Err(err).
			Str("request_id", requestID).
			Str("action", action.String()).
			Str("outcome", outcome).
			Dur("elapsed", elapsed).
			Msg("action failed")
		return nil, err
	}
	log.Debug().
		Str("request_id", requestID).
		Str("action", action.String()).
		Int("response_bytes", len(resp)).
		Dur("elapsed", elapsed).
		Msg("action completed")
	return resp, nil
}

// --------------------------------------------------------------------
// Single-identifier operations
// --------------------------------------------------------------------

// Query resolves one ARK. Requires ark.
func (c *Client) Query(ctx context.Context, req ActionRequest) (Response, error) {
	return c.Do(ctx, ActionQuery, req)
}

// Status fetches the registry root document.
func (c *Client) Status(ctx context.Context) (Response, error) {
	return c.Do(ctx, ActionStatus, nil)
}

// Update replaces an ARK's metadata. Requires ark.
func (c *Client) Update(ctx context.Context, req ActionRequest) (Response, error) {
	return c.Do(ctx, ActionUpdate, req)
}

// Mint creates a new ARK. Requires naan and shoulder.
func (c *Client) Mint(ctx context.Context, req ActionRequest) (Response, error) {
	return c.Do(ctx, ActionMint, req)
}

// --------------------------------------------------------------------
// Bulk operations
// --------------------------------------------------------------------

// QueryCSV resolves every ARK listed in the csv file. Only csv may be set.
func (c *Client) QueryCSV(ctx context.Context, req ActionRequest) (Response, error) {
	return c.Do(ctx, ActionQueryCSV, req)
}

// UpdateCSV updates one ARK per csv row. Only csv may be set.
func (c *Client) UpdateCSV(ctx context.Context, req ActionRequest) (Response, error) {
	return c.Do(ctx, ActionUpdateCSV, req)
}

// MintCSV mints one ARK per csv row. Exactly csv and naan must be set.
func (c *Client) MintCSV(ctx context.Context, req ActionRequest) (Response, error) {
	return c.Do(ctx, ActionMintCSV, req)
}
