package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	Logger     Logger     `envPrefix:"LOGGER_"`
	HTTP       HTTP       `envPrefix:"HTTP_"`
	Extractor  Extractor  `envPrefix:"EXTRACTOR_"`
	Summarizer Summarizer `envPrefix:"SUMMARIZER_"`
	LLM        LLM        `envPrefix:"LLM_"`
}

func Parse() (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix: "BRIEF_",
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := conf.Summarizer.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid summarizer configuration")
	}

	return &conf, nil
}
