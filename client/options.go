package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"time"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithHTTPTimeout sets the per-request timeout. It bounds the total time
// spent on one exchange, including connection setup and reading the body.
// The default is five seconds. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.timeout = d
		return nil
	}
}

// WithDebugLogging installs a transport that dumps every request and
// response at debug level when enabled is true. The credential is redacted
// from dumps, but bodies are logged in full.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.debug = true
		}
		return nil
	}
}

// WithTransport replaces the HTTP transport, typically with a test double.
// Timeout and debug options have no effect on a supplied transport.
func WithTransport(t Transport) Option {
	return func(c *Client) error {
		if t == nil {
			return fmt.Errorf("transport cannot be nil")
		}
		c.transport = t
		return nil
	}
}
