package summarizer

import (
	"context"
	"log/slog"
	"time"

	"github.com/bornholm/brief/internal/core/port"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

type RateLimitedSummarizer struct {
	limiter    *rate.Limiter
	summarizer port.Summarizer
}

// Summarize implements port.Summarizer.
func (s *RateLimitedSummarizer) Summarize(ctx context.Context, text string, funcs ...port.SummarizeOptionFunc) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", errors.WithStack(err)
	}

	slog.DebugContext(ctx, "rate limiter released summarization")

	return s.summarizer.Summarize(ctx, text, funcs...)
}

func NewRateLimitedSummarizer(summarizer port.Summarizer, minInterval time.Duration, maxBurst int) *RateLimitedSummarizer {
	return &RateLimitedSummarizer{
		limiter:    rate.NewLimiter(rate.Every(minInterval), maxBurst),
		summarizer: summarizer,
	}
}

var _ port.Summarizer = &RateLimitedSummarizer{}
