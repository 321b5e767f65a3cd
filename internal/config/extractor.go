package config

import "time"

type Extractor struct {
	URI       []string           `env:"URI" envDefault:"text://,pdf://,docx://" envSeparator:","`
	RateLimit ExtractorRateLimit `envPrefix:"RATE_LIMIT_"`
}

type ExtractorRateLimit struct {
	Enabled         bool          `env:"ENABLED,expand" envDefault:"false"`
	RequestInterval time.Duration `env:"REQUEST_INTERVAL,expand" envDefault:"1s"`
	RequestMaxBurst int           `env:"REQUEST_MAX_BURST,expand" envDefault:"5"`
}
