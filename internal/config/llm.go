package config

import "time"

type LLM struct {
	Provider LLMProvider `envPrefix:"PROVIDER_"`
}

type LLMProvider struct {
	Name                string `env:"NAME,expand" envDefault:"openai"`
	BaseURL             string `env:"BASE_URL,expand" envDefault:"https://api.mistral.ai/v1/"`
	Key                 string `env:"KEY,expand"`
	ChatCompletionModel string `env:"CHAT_COMPLETION_MODEL,expand" envDefault:"mistral-small-latest"`

	RateLimit LLMRateLimit `envPrefix:"RATE_LIMIT_"`
}

type LLMRateLimit struct {
	Enabled     bool          `env:"ENABLED,expand" envDefault:"true"`
	MinInterval time.Duration `env:"MIN_INTERVAL,expand" envDefault:"1s"`
	MaxBurst    int           `env:"MAX_BURST,expand" envDefault:"2"`
}
