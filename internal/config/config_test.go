package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestParseDefaults(t *testing.T) {
	conf, err := Parse()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := slog.LevelInfo, conf.Logger.Level; e != g {
		t.Errorf("conf.Logger.Level: expected '%v', got '%v'", e, g)
	}

	if e, g := 500, conf.Summarizer.ChunkSize; e != g {
		t.Errorf("conf.Summarizer.ChunkSize: expected %d, got %d", e, g)
	}

	if e, g := 150, conf.Summarizer.MaxLength; e != g {
		t.Errorf("conf.Summarizer.MaxLength: expected %d, got %d", e, g)
	}

	if e, g := 40, conf.Summarizer.MinLength; e != g {
		t.Errorf("conf.Summarizer.MinLength: expected %d, got %d", e, g)
	}

	if !conf.Summarizer.Deterministic {
		t.Errorf("conf.Summarizer.Deterministic: expected true")
	}

	expectedURIs := []string{"text://", "pdf://", "docx://"}
	if e, g := len(expectedURIs), len(conf.Extractor.URI); e != g {
		t.Fatalf("len(conf.Extractor.URI): expected %d, got %d", e, g)
	}

	for i := range expectedURIs {
		if e, g := expectedURIs[i], conf.Extractor.URI[i]; e != g {
			t.Errorf("conf.Extractor.URI[%d]: expected '%s', got '%s'", i, e, g)
		}
	}
}

func TestParseFromEnv(t *testing.T) {
	t.Setenv("BRIEF_LOGGER_LEVEL", "debug")
	t.Setenv("BRIEF_HTTP_ADDRESS", ":8080")
	t.Setenv("BRIEF_EXTRACTOR_URI", "text://,pandoc://?extensions=.odt")
	t.Setenv("BRIEF_SUMMARIZER_CHUNK_SIZE", "200")
	t.Setenv("BRIEF_LLM_PROVIDER_RATE_LIMIT_MIN_INTERVAL", "250ms")

	conf, err := Parse()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := slog.LevelDebug, conf.Logger.Level; e != g {
		t.Errorf("conf.Logger.Level: expected '%v', got '%v'", e, g)
	}

	if e, g := ":8080", conf.HTTP.Address; e != g {
		t.Errorf("conf.HTTP.Address: expected '%s', got '%s'", e, g)
	}

	if e, g := 2, len(conf.Extractor.URI); e != g {
		t.Errorf("len(conf.Extractor.URI): expected %d, got %d", e, g)
	}

	if e, g := 200, conf.Summarizer.ChunkSize; e != g {
		t.Errorf("conf.Summarizer.ChunkSize: expected %d, got %d", e, g)
	}

	if e, g := 250*time.Millisecond, conf.LLM.Provider.RateLimit.MinInterval; e != g {
		t.Errorf("conf.LLM.Provider.RateLimit.MinInterval: expected '%v', got '%v'", e, g)
	}
}

func TestParseInvalidSummarizer(t *testing.T) {
	t.Setenv("BRIEF_SUMMARIZER_MIN_LENGTH", "200")

	if _, err := Parse(); err == nil {
		t.Errorf("expected an error when min length exceeds max length")
	}
}
