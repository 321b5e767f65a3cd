package config

import "github.com/pkg/errors"

type Summarizer struct {
	ChunkSize     int  `env:"CHUNK_SIZE,expand" envDefault:"500"`
	MaxLength     int  `env:"MAX_LENGTH,expand" envDefault:"150"`
	MinLength     int  `env:"MIN_LENGTH,expand" envDefault:"40"`
	Deterministic bool `env:"DETERMINISTIC,expand" envDefault:"true"`
}

func (s Summarizer) Validate() error {
	if s.ChunkSize <= 0 {
		return errors.Errorf("chunk size must be positive, got %d", s.ChunkSize)
	}

	if s.MinLength <= 0 || s.MinLength > s.MaxLength {
		return errors.Errorf("summary length bounds must satisfy 0 < min <= max, got min=%d max=%d", s.MinLength, s.MaxLength)
	}

	return nil
}
