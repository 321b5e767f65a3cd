package summarizer

import (
	"context"
	"time"

	"github.com/bornholm/brief/internal/core/port"
	"github.com/bornholm/brief/internal/metrics"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

type InstrumentedSummarizer struct {
	summarizer port.Summarizer
}

// Summarize implements port.Summarizer.
func (s *InstrumentedSummarizer) Summarize(ctx context.Context, text string, funcs ...port.SummarizeOptionFunc) (string, error) {
	before := time.Now()

	summary, err := s.summarizer.Summarize(ctx, text, funcs...)

	status := "success"
	if err != nil {
		status = "failure"
	}

	metrics.SummarizationDuration.With(prometheus.Labels{
		metrics.LabelStatus: status,
	}).Observe(time.Since(before).Seconds())

	if err != nil {
		return "", errors.WithStack(err)
	}

	return summary, nil
}

func NewInstrumentedSummarizer(summarizer port.Summarizer) *InstrumentedSummarizer {
	return &InstrumentedSummarizer{
		summarizer: summarizer,
	}
}

var _ port.Summarizer = &InstrumentedSummarizer{}
