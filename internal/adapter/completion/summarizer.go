package completion

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bornholm/brief/internal/core/port"
	"github.com/bornholm/brief/internal/metrics"
	"github.com/bornholm/brief/internal/text"
	"github.com/bornholm/genai/llm"
	"github.com/bornholm/genai/llm/prompt"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

const defaultSystemPromptTemplate = `You are a summarization engine.

Write an abstractive summary of the text given by the user.

Rules:
- The summary must contain between {{ .MinLength }} and {{ .MaxLength }} words.
- Write the summary in the language of the text.
- Only use information present in the text.
- Output the summary only, without any title, preamble or commentary.`

// Summarizer produces abstractive summaries with a chat completion model.
type Summarizer struct {
	client llm.ChatCompletionClient
	model  string
}

// Summarize implements port.Summarizer.
func (s *Summarizer) Summarize(ctx context.Context, input string, funcs ...port.SummarizeOptionFunc) (string, error) {
	opts := port.NewSummarizeOptions(funcs...)

	req, err := newCompletionRequest(input, opts)
	if err != nil {
		return "", errors.WithStack(err)
	}

	completionOptions := []llm.ChatCompletionOptionFunc{
		llm.WithMessages(
			llm.NewMessage(llm.RoleSystem, req.SystemPrompt),
			llm.NewMessage(llm.RoleUser, req.UserPrompt),
		),
	}

	if opts.Deterministic {
		ctx = slogx.WithAttrs(ctx, slog.Int("seed", req.Seed))

		completionOptions = append(completionOptions,
			llm.WithTemperature(0),
			llm.WithSeed(req.Seed),
		)
	}

	res, err := s.client.ChatCompletion(ctx, completionOptions...)
	if err != nil {
		return "", errors.WithStack(err)
	}

	if usage := res.Usage(); usage != nil {
		metrics.RecordTokenUsage(s.model, int64(usage.PromptTokens()), int64(usage.CompletionTokens()))
	}

	summary := strings.TrimSpace(res.Message().Content())
	if summary == "" {
		return "", errors.New("model returned an empty summary")
	}

	return summary, nil
}

func NewSummarizer(client llm.ChatCompletionClient, model string) *Summarizer {
	return &Summarizer{
		client: client,
		model:  model,
	}
}

var _ port.Summarizer = &Summarizer{}

type completionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Seed         int
}

func newCompletionRequest(input string, opts *port.SummarizeOptions) (*completionRequest, error) {
	systemPrompt, err := prompt.Template(defaultSystemPromptTemplate, struct {
		MinLength int
		MaxLength int
	}{
		MinLength: opts.MinLength,
		MaxLength: opts.MaxLength,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	seed, err := text.IntHash(systemPrompt + input)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &completionRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   input,
		Seed:         seed,
	}, nil
}
