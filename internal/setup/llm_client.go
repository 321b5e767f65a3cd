package setup

import (
	"context"

	"github.com/bornholm/brief/internal/config"
	"github.com/bornholm/genai/llm"
	"github.com/bornholm/genai/llm/provider"
	"github.com/bornholm/genai/llm/provider/mistral"
	"github.com/bornholm/genai/llm/provider/openai"
	"github.com/bornholm/genai/llm/provider/openrouter"
	"github.com/pkg/errors"
)

var getLLMClientFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (llm.Client, error) {
	chatCompletion, err := getChatCompletionOption(conf.LLM.Provider)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	client, err := provider.Create(ctx, chatCompletion)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return client, nil
})

func getChatCompletionOption(conf config.LLMProvider) (provider.OptionFunc, error) {
	common := provider.CommonOptions{
		BaseURL: conf.BaseURL,
		APIKey:  conf.Key,
		Model:   conf.ChatCompletionModel,
	}

	switch name := provider.Name(conf.Name); name {
	case openai.Name:
		return provider.WithChatCompletion(name, openai.Options{CommonOptions: common}), nil
	case mistral.Name:
		return provider.WithChatCompletion(name, mistral.Options{CommonOptions: common}), nil
	case openrouter.Name:
		return provider.WithChatCompletion(name, openrouter.Options{CommonOptions: common}), nil
	default:
		return nil, errors.Errorf("unsupported llm provider '%s'", conf.Name)
	}
}
