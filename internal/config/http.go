package config

import "time"

type HTTP struct {
	BaseURL       string        `env:"BASE_URL,expand" envDefault:"/"`
	Address       string        `env:"ADDRESS,expand" envDefault:":3002"`
	MaxUploadSize int64         `env:"MAX_UPLOAD_SIZE,expand" envDefault:"33554432"`
	RateLimit     HTTPRateLimit `envPrefix:"RATE_LIMIT_"`
	CORS          CORS          `envPrefix:"CORS_"`
	MCP           MCP           `envPrefix:"MCP_"`
}

type HTTPRateLimit struct {
	Enabled      bool          `env:"ENABLED,expand" envDefault:"true"`
	TrustHeaders bool          `env:"TRUST_HEADERS,expand" envDefault:"false"`
	Interval     time.Duration `env:"INTERVAL,expand" envDefault:"10s"`
	MaxBurst     int           `env:"MAX_BURST,expand" envDefault:"5"`
	CacheSize    int           `env:"CACHE_SIZE,expand" envDefault:"1024"`
	CacheTTL     time.Duration `env:"CACHE_TTL,expand" envDefault:"1h"`
}

type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS,expand" envDefault:"*" envSeparator:","`
}

type MCP struct {
	Enabled bool `env:"ENABLED,expand" envDefault:"true"`
}
