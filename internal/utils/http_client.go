package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent identifies the client to the drive API.
const UserAgent = "go-cloud-keeper"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance with its own
// connection pool. The client never follows more than a few redirects and
// identifies itself with [UserAgent].
func NewHTTPClient() *HTTPClient {
	c := resty.New().
		SetHeader("User-Agent", UserAgent).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5))
	return &HTTPClient{Client: c}
}
