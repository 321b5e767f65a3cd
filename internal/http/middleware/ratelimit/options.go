package ratelimit

import (
	"net/http"
	"time"
)

type Options struct {
	// Trust the X-Forwarded-For and X-Real-Ip headers to identify clients
	TrustHeaders bool
	Interval     time.Duration
	MaxBurst     int
	CacheSize    int
	CacheTTL     time.Duration
	// Requests with these methods are never limited
	ExemptMethods []string
}

type OptionFunc func(opts *Options)

func WithTrustHeaders(trust bool) OptionFunc {
	return func(opts *Options) {
		opts.TrustHeaders = trust
	}
}

func WithRate(interval time.Duration, maxBurst int) OptionFunc {
	return func(opts *Options) {
		opts.Interval = interval
		opts.MaxBurst = maxBurst
	}
}

func WithCache(size int, ttl time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.CacheSize = size
		opts.CacheTTL = ttl
	}
}

func WithExemptMethods(methods ...string) OptionFunc {
	return func(opts *Options) {
		opts.ExemptMethods = methods
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Interval:      10 * time.Second,
		MaxBurst:      5,
		CacheSize:     1024,
		CacheTTL:      time.Hour,
		ExemptMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}
