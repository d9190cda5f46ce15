package utils

import (
	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries a per-request correlation id to the backend.
const RequestIDHeader = "X-Request-ID"

// IDGenerator produces correlation ids.
type IDGenerator interface {
	Generate() string
}

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// and stamps every outgoing request with an X-Request-ID header.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.NewUUIDGenerator())
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with its own resty.Client.
// A nil ids disables the correlation header. A request that already carries
// the header keeps it.
func NewHTTPClient(ids IDGenerator) *HTTPClient {
	c := resty.New()
	if ids != nil {
		c.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if r.Header.Get(RequestIDHeader) == "" {
				r.SetHeader(RequestIDHeader, ids.Generate())
			}
			return nil
		})
	}
	return &HTTPClient{Client: c}
}
