package setup

import (
	"context"

	"github.com/bornholm/brief/internal/config"
	"github.com/bornholm/brief/internal/core/port"
	"github.com/bornholm/brief/internal/core/service"
	"github.com/bornholm/brief/internal/summarizer"
	"github.com/pkg/errors"
)

var getPipelineFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.Pipeline, error) {
	textExtractor, err := getTextExtractorFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create text extractor from config")
	}

	// The model client is only built when the first document needs it
	lazySummarizer := summarizer.NewLazySummarizer(func(ctx context.Context) (port.Summarizer, error) {
		return getSummarizerFromConfig(ctx, conf)
	})

	pipeline := service.NewPipeline(
		textExtractor, lazySummarizer,
		service.WithPipelineChunkSize(conf.Summarizer.ChunkSize),
		service.WithPipelineSummaryLength(conf.Summarizer.MinLength, conf.Summarizer.MaxLength),
		service.WithPipelineDeterministic(conf.Summarizer.Deterministic),
	)

	return pipeline, nil
})

func NewPipelineFromConfig(ctx context.Context, conf *config.Config) (*service.Pipeline, error) {
	pipeline, err := getPipelineFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return pipeline, nil
}
