package client

import (
	"net/http"
	"net/url"
)

// Client is a thin wrapper around the brief HTTP API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string
}

func New(funcs ...OptionFunc) *Client {
	opts := NewOptions(funcs...)
	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
		userAgent:  opts.UserAgent,
	}
}
