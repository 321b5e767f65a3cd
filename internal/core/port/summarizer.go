package port

import (
	"context"
)

type SummarizeOptions struct {
	// Upper bound of the summary length, in words
	MaxLength int
	// Lower bound of the summary length, in words
	MinLength int
	// Use greedy decoding: identical inputs produce identical outputs
	Deterministic bool
}

type SummarizeOptionFunc func(opts *SummarizeOptions)

func WithSummarizeMaxLength(maxLength int) SummarizeOptionFunc {
	return func(opts *SummarizeOptions) {
		opts.MaxLength = maxLength
	}
}

func WithSummarizeMinLength(minLength int) SummarizeOptionFunc {
	return func(opts *SummarizeOptions) {
		opts.MinLength = minLength
	}
}

func WithSummarizeDeterministic(deterministic bool) SummarizeOptionFunc {
	return func(opts *SummarizeOptions) {
		opts.Deterministic = deterministic
	}
}

const (
	DefaultSummaryMaxLength = 150
	DefaultSummaryMinLength = 40
)

func NewSummarizeOptions(funcs ...SummarizeOptionFunc) *SummarizeOptions {
	opts := &SummarizeOptions{
		MaxLength:     DefaultSummaryMaxLength,
		MinLength:     DefaultSummaryMinLength,
		Deterministic: true,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

type Summarizer interface {
	Summarize(ctx context.Context, text string, funcs ...SummarizeOptionFunc) (string, error)
}
