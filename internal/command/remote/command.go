package remote

import (
	"context"
	"io"
	"log/slog"

	"github.com/bornholm/brief/internal/command/common"
	"github.com/bornholm/brief/internal/core/model"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	flags := common.WithClientFlags()
	formatsFlags := common.WithServerFlag()

	return &cli.Command{
		Name:  "remote",
		Usage: "Interact with a running brief server",
		Subcommands: []*cli.Command{
			{
				Name:      "summarize",
				Usage:     "Upload documents to the server and print their summaries",
				ArgsUsage: "[file...]",
				Flags:     flags,
				Before:    common.LoadConfigFile(flags),
				Action: func(cCtx *cli.Context) error {
					briefClient, err := common.GetBriefClient(cCtx)
					if err != nil {
						return errors.Wrap(err, "could not create brief client")
					}

					summaries := make([]*model.Summary, 0)

					err = common.ForEachDocument(cCtx, briefClient.ListFormats, func(ctx context.Context, filename string, r io.Reader) error {
						slog.InfoContext(ctx, "uploading document", slog.String("filename", filename))

						res, err := briefClient.Summarize(ctx, filename, r)
						if err != nil {
							return errors.WithStack(err)
						}

						summaries = append(summaries, res)

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
			},
			{
				Name:   "formats",
				Usage:  "List the file extensions accepted by the server",
				Flags:  formatsFlags,
				Before: common.LoadConfigFile(formatsFlags),
				Action: func(cCtx *cli.Context) error {
					briefClient, err := common.GetBriefClient(cCtx)
					if err != nil {
						return errors.Wrap(err, "could not create brief client")
					}

					extensions, err := briefClient.ListFormats(cCtx.Context)
					if err != nil {
						return errors.WithStack(err)
					}

					for _, ext := range extensions {
						if _, err := cCtx.App.Writer.Write([]byte(ext + "\n")); err != nil {
							return errors.WithStack(err)
						}
					}

					return nil
				},
			},
		},
	}
}
