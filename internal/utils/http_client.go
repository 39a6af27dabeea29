package utils

import (
	"github.com/go-resty/resty/v2"
)

const userAgent = "go-vocab-trainer"

// HTTPClient embeds *resty.Client so the whole resty API is available to the
// transport adapter.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
// Retries are disabled; every action maps to at most one request.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetRetryCount(0).
		SetHeader("User-Agent", userAgent)

	return &HTTPClient{Client: client}
}
