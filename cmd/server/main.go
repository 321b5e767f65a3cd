package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/bornholm/brief/internal/config"
	"github.com/bornholm/brief/internal/setup"
	"github.com/bornholm/brief/internal/util"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"

	// Text extractors
	_ "github.com/bornholm/brief/internal/adapter/docx"
	_ "github.com/bornholm/brief/internal/adapter/genai"
	_ "github.com/bornholm/brief/internal/adapter/pandoc"
	_ "github.com/bornholm/brief/internal/adapter/pdf"
	_ "github.com/bornholm/brief/internal/adapter/plaintext"

	// GenAI text extractors
	_ "github.com/bornholm/genai/extract/provider/marker"
	_ "github.com/bornholm/genai/extract/provider/mistral"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf, err := config.Parse()
	if err != nil {
		slog.ErrorContext(ctx, "could not parse config", slog.Any("error", errors.WithStack(err)))
		os.Exit(1)
	}

	logger := slog.New(slogx.ContextHandler{
		Handler: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     slog.Level(conf.Logger.Level),
			AddSource: true,
		}),
	})

	slog.SetDefault(logger)

	slog.DebugContext(ctx, "using configuration", slog.Any("config", conf))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	go func() {
		slog.InfoContext(ctx, "use ctrl+c to interrupt")
		<-sig
		cancel()
	}()

	server, err := setup.NewHTTPServerFromConfig(ctx, conf)
	if err != nil {
		slog.ErrorContext(ctx, "could not setup http server", slog.Any("error", errors.WithStack(err)))
		os.Exit(1)
	}

	slog.InfoContext(ctx, "starting server", slog.Any("address", conf.HTTP.Address))

	err = server.Run(ctx)

	if err := util.RemoveTempDir(); err != nil {
		slog.Error("could not remove temporary directory", slog.Any("error", errors.WithStack(err)))
	}

	if err != nil {
		slog.Error("could not run server", slog.Any("error", errors.WithStack(err)))
		os.Exit(1)
	}
}
