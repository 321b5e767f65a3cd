package extractor

import (
	"context"
	"io"
	"time"

	"github.com/bornholm/brief/internal/core/port"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

type RateLimitedTextExtractor struct {
	limiter   *rate.Limiter
	extractor port.TextExtractor
}

// Extract implements [port.TextExtractor].
func (e *RateLimitedTextExtractor) Extract(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return "", errors.WithStack(err)
	}

	return e.extractor.Extract(ctx, filename, r)
}

// SupportedExtensions implements [port.TextExtractor].
func (e *RateLimitedTextExtractor) SupportedExtensions() []string {
	return e.extractor.SupportedExtensions()
}

func NewRateLimitedTextExtractor(extractor port.TextExtractor, interval time.Duration, maxBurst int) *RateLimitedTextExtractor {
	return &RateLimitedTextExtractor{
		limiter:   rate.NewLimiter(rate.Every(interval), maxBurst),
		extractor: extractor,
	}
}

var _ port.TextExtractor = &RateLimitedTextExtractor{}
