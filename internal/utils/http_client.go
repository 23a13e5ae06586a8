// Package utils holds small helpers shared by the client-side packages.
package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every request issued by [HTTPClient].
const UserAgent = "go-file-drop-client"

// HTTPClient wraps resty.Client. The embedded client exposes all resty
// methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent HTTPClient with its own connection
// pool. Requests carry the [UserAgent] header and are never retried.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", UserAgent).
		SetRetryCount(0)

	return &HTTPClient{Client: client}
}
