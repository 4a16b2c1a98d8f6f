package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://127.0.0.1:8080", 3*time.Second)
//	resp, err := client.R().Get("/healthz")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient bound to baseURL. A zero timeout
// leaves resty's default (no timeout) in place.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
