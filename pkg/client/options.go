package client

import (
	"net/http"
	"net/url"
	"time"

	"github.com/bornholm/brief/internal/build"
)

type Options struct {
	BaseURL    *url.URL
	HTTPClient *http.Client
	UserAgent  string
}

type OptionFunc func(opts *Options)

func WithBaseURL(baseURL *url.URL) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) OptionFunc {
	return func(opts *Options) {
		opts.HTTPClient = httpClient
	}
}

func WithUserAgent(userAgent string) OptionFunc {
	return func(opts *Options) {
		opts.UserAgent = userAgent
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		BaseURL: &url.URL{
			Scheme: "http",
			Host:   "localhost:3002",
		},
		HTTPClient: &http.Client{
			// Summarizing long documents takes a while
			Timeout: 10 * time.Minute,
			Transport: &RetryAfterTransport{
				Base:        http.DefaultTransport,
				MaxRetries:  5,
				DefaultWait: 10 * time.Second,
			},
		},
		UserAgent: "brief-client/" + build.ShortVersion,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}
