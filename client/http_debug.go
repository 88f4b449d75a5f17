package client

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

const redacted = "[REDACTED]"

// debugTransport logs full request/response dumps at debug level.
//
// Enable with ARK_DEBUG=true, DEBUG=true or WithDebugLogging(true). Bodies
// are logged verbatim; the Authorization value is replaced before dumping.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := dumpRequest(req); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// dumpRequest dumps a redacted copy of req without consuming req.Body.
func dumpRequest(req *http.Request) ([]byte, error) {
	clone := req.Clone(req.Context())
	if clone.Header.Get("Authorization") != "" {
		clone.Header.Set("Authorization", redacted)
	}
	withBody := false
	if req.Body != nil && req.Body != http.NoBody && req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		clone.Body = body
		withBody = true
	} else {
		clone.Body = nil
	}
	return httputil.DumpRequestOut(clone, withBody)
}

// debugLoggingRequested reports whether ARK_DEBUG or DEBUG is "true".
func debugLoggingRequested() bool {
	return os.Getenv("ARK_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
