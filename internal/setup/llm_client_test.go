package setup

import (
	"testing"

	"github.com/bornholm/brief/internal/config"
	"github.com/bornholm/genai/llm/provider"
	"github.com/bornholm/genai/llm/provider/mistral"
	"github.com/bornholm/genai/llm/provider/openai"
	"github.com/bornholm/genai/llm/provider/openrouter"
	"github.com/pkg/errors"
)

func TestGetChatCompletionOption(t *testing.T) {
	type testCase struct {
		Name     string
		Common   func(specific any) (provider.CommonOptions, bool)
		Provider provider.Name
	}

	testCases := []testCase{
		{
			Name:     "openai",
			Provider: openai.Name,
			Common: func(specific any) (provider.CommonOptions, bool) {
				opts, ok := specific.(*openai.Options)
				if !ok {
					return provider.CommonOptions{}, false
				}
				return opts.CommonOptions, true
			},
		},
		{
			Name:     "mistral",
			Provider: mistral.Name,
			Common: func(specific any) (provider.CommonOptions, bool) {
				opts, ok := specific.(*mistral.Options)
				if !ok {
					return provider.CommonOptions{}, false
				}
				return opts.CommonOptions, true
			},
		},
		{
			Name:     "openrouter",
			Provider: openrouter.Name,
			Common: func(specific any) (provider.CommonOptions, bool) {
				opts, ok := specific.(*openrouter.Options)
				if !ok {
					return provider.CommonOptions{}, false
				}
				return opts.CommonOptions, true
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			fn, err := getChatCompletionOption(config.LLMProvider{
				Name:                string(tc.Provider),
				BaseURL:             "http://localhost:8080/v1",
				Key:                 "secret",
				ChatCompletionModel: "small",
			})
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			opts, err := provider.NewOptions(fn)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if opts.ChatCompletion == nil {
				t.Fatalf("expected chat completion options to be set")
			}

			if e, g := tc.Provider, opts.ChatCompletion.Provider; e != g {
				t.Errorf("opts.ChatCompletion.Provider: expected '%s', got '%s'", e, g)
			}

			common, ok := tc.Common(opts.ChatCompletion.Specific)
			if !ok {
				t.Fatalf("unexpected options type %T", opts.ChatCompletion.Specific)
			}

			expected := provider.CommonOptions{
				BaseURL: "http://localhost:8080/v1",
				APIKey:  "secret",
				Model:   "small",
			}

			if expected != common {
				t.Errorf("common options: expected '%+v', got '%+v'", expected, common)
			}
		})
	}
}

func TestGetChatCompletionOptionUnknownProvider(t *testing.T) {
	if _, err := getChatCompletionOption(config.LLMProvider{Name: "unknown"}); err == nil {
		t.Errorf("expected an error for an unknown provider")
	}
}
