package completion

import (
	"context"
	"strings"
	"testing"

	"github.com/bornholm/brief/internal/core/port"
	"github.com/bornholm/genai/llm"
	"github.com/pkg/errors"
)

func TestNewCompletionRequest(t *testing.T) {
	opts := port.NewSummarizeOptions()

	first, err := newCompletionRequest("the quick brown fox", opts)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	second, err := newCompletionRequest("the quick brown fox", opts)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if first.Seed != second.Seed {
		t.Errorf("expected identical seeds, got %d and %d", first.Seed, second.Seed)
	}

	if first.SystemPrompt != second.SystemPrompt {
		t.Errorf("expected identical system prompts")
	}

	if e, g := "the quick brown fox", first.UserPrompt; e != g {
		t.Errorf("first.UserPrompt: expected '%s', got '%s'", e, g)
	}

	if !strings.Contains(first.SystemPrompt, "between 40 and 150 words") {
		t.Errorf("expected system prompt to carry length bounds, got '%s'", first.SystemPrompt)
	}
}

type fakeChatCompletionClient struct {
	reply   string
	err     error
	options []*llm.ChatCompletionOptions
}

func (c *fakeChatCompletionClient) ChatCompletion(ctx context.Context, funcs ...llm.ChatCompletionOptionFunc) (llm.ChatCompletionResponse, error) {
	c.options = append(c.options, llm.NewChatCompletionOptions(funcs...))

	if c.err != nil {
		return nil, c.err
	}

	return llm.NewChatCompletionResponse(
		llm.NewMessage(llm.RoleAssistant, c.reply),
		llm.NewChatCompletionUsage(10, 5, 15),
	), nil
}

func TestSummarize(t *testing.T) {
	type testCase struct {
		Name          string
		Deterministic bool
		Reply         string
		ClientErr     error
		ExpectError   bool
		Expected      string
	}

	errModel := errors.New("model unavailable")

	testCases := []testCase{
		{
			Name:          "deterministic",
			Deterministic: true,
			Reply:         "  a short summary\n",
			Expected:      "a short summary",
		},
		{
			Name:          "sampled",
			Deterministic: false,
			Reply:         "another summary",
			Expected:      "another summary",
		},
		{
			Name:          "blank reply",
			Deterministic: true,
			Reply:         " \n\t",
			ExpectError:   true,
		},
		{
			Name:          "client failure",
			Deterministic: true,
			ClientErr:     errModel,
			ExpectError:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			client := &fakeChatCompletionClient{reply: tc.Reply, err: tc.ClientErr}
			summarizer := NewSummarizer(client, "test-model")

			input := "the quick brown fox jumps over the lazy dog"

			summary, err := summarizer.Summarize(context.Background(), input, port.WithSummarizeDeterministic(tc.Deterministic))

			if tc.ExpectError {
				if err == nil {
					t.Fatalf("expected an error, got summary '%s'", summary)
				}

				if tc.ClientErr != nil && !errors.Is(err, tc.ClientErr) {
					t.Errorf("expected error '%v', got '%v'", tc.ClientErr, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.Expected, summary; e != g {
				t.Errorf("summary: expected '%s', got '%s'", e, g)
			}

			if e, g := 1, len(client.options); e != g {
				t.Fatalf("len(client.options): expected %d, got %d", e, g)
			}

			opts := client.options[0]

			if e, g := 2, len(opts.Messages); e != g {
				t.Fatalf("len(opts.Messages): expected %d, got %d", e, g)
			}

			if e, g := input, opts.Messages[1].Content(); e != g {
				t.Errorf("user message: expected '%s', got '%s'", e, g)
			}

			defaults := llm.NewChatCompletionOptions()

			if !tc.Deterministic {
				if opts.Seed != nil {
					t.Errorf("expected no seed, got %d", *opts.Seed)
				}

				if e, g := defaults.Temperature, opts.Temperature; e != g {
					t.Errorf("opts.Temperature: expected default %v, got %v", e, g)
				}

				return
			}

			if e, g := 0.0, opts.Temperature; e != g {
				t.Errorf("opts.Temperature: expected %v, got %v", e, g)
			}

			req, err := newCompletionRequest(input, port.NewSummarizeOptions())
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if opts.Seed == nil {
				t.Fatalf("expected a seed")
			}

			if e, g := req.Seed, *opts.Seed; e != g {
				t.Errorf("opts.Seed: expected %d, got %d", e, g)
			}
		})
	}
}
