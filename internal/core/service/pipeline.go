package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/bornholm/brief/internal/core/model"
	"github.com/bornholm/brief/internal/core/port"
	"github.com/bornholm/brief/internal/extractor"
	"github.com/bornholm/brief/internal/metrics"
	"github.com/bornholm/brief/internal/text"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const SummarySeparator = "\n\n"

type PipelineOptions struct {
	ChunkSize     int
	MaxLength     int
	MinLength     int
	Deterministic bool
}

type PipelineOptionFunc func(opts *PipelineOptions)

func WithPipelineChunkSize(chunkSize int) PipelineOptionFunc {
	return func(opts *PipelineOptions) {
		opts.ChunkSize = chunkSize
	}
}

func WithPipelineSummaryLength(minLength, maxLength int) PipelineOptionFunc {
	return func(opts *PipelineOptions) {
		opts.MinLength = minLength
		opts.MaxLength = maxLength
	}
}

func WithPipelineDeterministic(deterministic bool) PipelineOptionFunc {
	return func(opts *PipelineOptions) {
		opts.Deterministic = deterministic
	}
}

func NewPipelineOptions(funcs ...PipelineOptionFunc) *PipelineOptions {
	opts := &PipelineOptions{
		ChunkSize:     text.DefaultChunkSize,
		MaxLength:     port.DefaultSummaryMaxLength,
		MinLength:     port.DefaultSummaryMinLength,
		Deterministic: true,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// Pipeline runs the extract, chunk, summarize and reassemble steps of a
// summarization request, synchronously and in that order.
type Pipeline struct {
	extractor  port.TextExtractor
	summarizer port.Summarizer

	chunkSize     int
	maxLength     int
	minLength     int
	deterministic bool
}

type RunOptions struct {
	// Media type declared by the uploader. Informational only, the filename
	// extension drives extraction.
	MediaType string
}

type RunOptionFunc func(opts *RunOptions)

func WithRunMediaType(mediaType string) RunOptionFunc {
	return func(opts *RunOptions) {
		opts.MediaType = mediaType
	}
}

func NewRunOptions(funcs ...RunOptionFunc) *RunOptions {
	opts := &RunOptions{}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// Run processes the given document and always returns a result describing
// the outcome. On failure the returned error wraps one of
// port.ErrNotSupported, port.ErrUnreadable or port.ErrSummarization.
func (p *Pipeline) Run(ctx context.Context, filename string, r io.Reader, funcs ...RunOptionFunc) (*model.Result, error) {
	opts := NewRunOptions(funcs...)

	ext := extractor.Extension(filename)

	ctx = slogx.WithAttrs(ctx, slog.String("filename", filename), slog.String("extension", ext))

	slog.DebugContext(ctx, "extracting text", slog.String("media_type", opts.MediaType))

	extracted, err := p.extractor.Extract(ctx, filename, r)
	if err != nil {
		if errors.Is(err, port.ErrNotSupported) {
			p.record(model.StatusUnsupported, ext)
			return model.NewUnsupportedResult(filename), errors.WithStack(err)
		}

		p.record(model.StatusExtractionFailed, ext)

		if !errors.Is(err, port.ErrUnreadable) {
			err = fmt.Errorf("%w: %w", port.ErrUnreadable, err)
		}

		return model.NewExtractionFailedResult(filename), errors.WithStack(err)
	}

	extractedLength := utf8.RuneCountInString(extracted)

	metrics.ExtractedCharacters.With(prometheus.Labels{
		metrics.LabelExtension: ext,
	}).Add(float64(extractedLength))

	chunks := text.Chunk(extracted, p.chunkSize)

	ctx = slogx.WithAttrs(ctx, slog.Int("extracted_length", extractedLength), slog.Int("chunks", len(chunks)))

	slog.DebugContext(ctx, "text extracted")

	summary, err := p.summarize(ctx, chunks)
	if err != nil {
		p.record(model.StatusSummarizationFailed, ext)
		return model.NewSummarizationFailedResult(filename, extractedLength), errors.WithStack(err)
	}

	p.record(model.StatusDone, ext)

	slog.InfoContext(ctx, "document summarized", slog.Int("summary_length", utf8.RuneCountInString(summary)))

	return &model.Result{
		Status:          model.StatusDone,
		Filename:        filename,
		ExtractedLength: extractedLength,
		Chunks:          len(chunks),
		Summary:         summary,
	}, nil
}

func (p *Pipeline) summarize(ctx context.Context, chunks []string) (string, error) {
	summaries := make([]string, 0, len(chunks))

	for idx, chunk := range chunks {
		chunkCtx := slogx.WithAttrs(ctx, slog.Int("chunk", idx+1))

		slog.DebugContext(chunkCtx, "summarizing chunk")

		summary, err := p.summarizer.Summarize(
			chunkCtx, chunk,
			port.WithSummarizeMaxLength(p.maxLength),
			port.WithSummarizeMinLength(p.minLength),
			port.WithSummarizeDeterministic(p.deterministic),
		)
		if err != nil {
			if errors.Is(err, port.ErrSummarization) {
				return "", errors.WithStack(err)
			}

			return "", errors.WithStack(fmt.Errorf("%w: chunk %d/%d: %w", port.ErrSummarization, idx+1, len(chunks), err))
		}

		metrics.Chunks.Inc()

		summaries = append(summaries, summary)
	}

	return strings.Join(summaries, SummarySeparator), nil
}

func (p *Pipeline) record(status model.Status, ext string) {
	metrics.Summaries.With(prometheus.Labels{
		metrics.LabelStatus:    string(status),
		metrics.LabelExtension: ext,
	}).Inc()
}

// SupportedExtensions returns the extensions accepted by the pipeline.
func (p *Pipeline) SupportedExtensions() []string {
	return p.extractor.SupportedExtensions()
}

func NewPipeline(extractor port.TextExtractor, summarizer port.Summarizer, funcs ...PipelineOptionFunc) *Pipeline {
	opts := NewPipelineOptions(funcs...)

	return &Pipeline{
		extractor:     extractor,
		summarizer:    summarizer,
		chunkSize:     opts.ChunkSize,
		maxLength:     opts.MaxLength,
		minLength:     opts.MinLength,
		deterministic: opts.Deterministic,
	}
}
