package summarize

import (
	"context"
	"io"
	"log/slog"

	"github.com/bornholm/brief/internal/command/common"
	"github.com/bornholm/brief/internal/config"
	"github.com/bornholm/brief/internal/core/model"
	"github.com/bornholm/brief/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	flags := common.WithOutputFlags()

	return &cli.Command{
		Name:      "summarize",
		Usage:     "Summarize documents locally, using the BRIEF_* environment variables to configure extraction and the language model",
		ArgsUsage: "[file...]",
		Flags:     flags,
		Before:    common.LoadConfigFile(flags),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			conf, err := config.Parse()
			if err != nil {
				return errors.Wrap(err, "could not parse config")
			}

			pipeline, err := setup.NewPipelineFromConfig(ctx, conf)
			if err != nil {
				return errors.Wrap(err, "could not create pipeline")
			}

			extensions := func(ctx context.Context) ([]string, error) {
				return pipeline.SupportedExtensions(), nil
			}

			summaries := make([]*model.Summary, 0)

			err = common.ForEachDocument(cCtx, extensions, func(ctx context.Context, filename string, r io.Reader) error {
				slog.InfoContext(ctx, "summarizing document", slog.String("filename", filename))

				result, err := pipeline.Run(ctx, filename, r)
				if err != nil {
					return errors.Wrap(err, result.Message)
				}

				summaries = append(summaries, model.NewSummary(result))

				return nil
			})
			if err != nil {
				return errors.WithStack(err)
			}

			if err := common.WriteSummaries(cCtx, summaries); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
