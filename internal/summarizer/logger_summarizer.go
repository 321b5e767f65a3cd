package summarizer

import (
	"context"
	"log/slog"
	"time"

	"github.com/bornholm/brief/internal/core/port"
	"github.com/bornholm/brief/internal/text"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

type LoggerSummarizer struct {
	summarizer port.Summarizer
}

// Summarize implements port.Summarizer.
func (s *LoggerSummarizer) Summarize(ctx context.Context, input string, funcs ...port.SummarizeOptionFunc) (string, error) {
	ctx = slogx.WithAttrs(ctx, slog.String("llm_request", "summarize"))

	before := time.Now()
	defer func() {
		slog.DebugContext(ctx, "summarization completed", slog.Duration("duration", time.Since(before)))
	}()

	slog.DebugContext(ctx, "summarization started",
		slog.Int("input_length", len(input)),
		slog.String("input_preview", text.MiddleOut(input, 40, " [...] ")),
	)

	summary, err := s.summarizer.Summarize(ctx, input, funcs...)
	if err != nil {
		slog.ErrorContext(ctx, "summarization failed", slog.Any("error", errors.WithStack(err)))
		return "", errors.WithStack(err)
	}

	return summary, nil
}

func NewLoggerSummarizer(summarizer port.Summarizer) *LoggerSummarizer {
	return &LoggerSummarizer{
		summarizer: summarizer,
	}
}

var _ port.Summarizer = &LoggerSummarizer{}
