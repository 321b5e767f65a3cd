package setup

import (
	"context"

	"github.com/bornholm/brief/internal/adapter/completion"
	"github.com/bornholm/brief/internal/config"
	"github.com/bornholm/brief/internal/core/port"
	"github.com/bornholm/brief/internal/summarizer"
	"github.com/pkg/errors"
)

var getSummarizerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.Summarizer, error) {
	client, err := getLLMClientFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create llm client from config")
	}

	var s port.Summarizer = completion.NewSummarizer(client, conf.LLM.Provider.ChatCompletionModel)

	if conf.LLM.Provider.RateLimit.Enabled {
		s = summarizer.NewRateLimitedSummarizer(s, conf.LLM.Provider.RateLimit.MinInterval, conf.LLM.Provider.RateLimit.MaxBurst)
	}

	s = summarizer.NewInstrumentedSummarizer(s)
	s = summarizer.NewLoggerSummarizer(s)

	return s, nil
})
