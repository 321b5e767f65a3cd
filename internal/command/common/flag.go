package common

import (
	"net/url"

	"github.com/bornholm/brief/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	ParamServer = "server"
	ParamFormat = "format"
	ParamOutput = "output"

	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	flagServer = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    ParamServer,
		Aliases: []string{"s"},
		Value:   "http://localhost:3002",
		EnvVars: []string{"BRIEF_CLI_SERVER"},
		Usage:   "Brief server base url",
	})
	flagFormat = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    ParamFormat,
		Aliases: []string{"f"},
		Value:   FormatText,
		EnvVars: []string{"BRIEF_CLI_FORMAT"},
		Usage:   "Output format ('text', 'json' or 'yaml')",
	})
	flagOutput = &cli.StringFlag{
		Name:    ParamOutput,
		Aliases: []string{"o"},
		Usage:   "Write the summary to this file instead of stdout ('.docx' files are exported as Word documents)",
	}
)

func WithOutputFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagFormat,
		flagOutput,
		flagSource,
		flagInclude,
	}, flags...)
}

func WithServerFlag(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagServer,
	}, flags...)
}

func WithClientFlags(flags ...cli.Flag) []cli.Flag {
	return WithServerFlag(WithOutputFlags(flags...)...)
}

// LoadConfigFile populates flags declared with altsrc from the yaml file
// given with the global --config flag.
func LoadConfigFile(flags []cli.Flag) cli.BeforeFunc {
	return func(cCtx *cli.Context) error {
		if cCtx.String("config") == "" {
			return nil
		}

		return altsrc.InitInputSourceWithContext(flags, altsrc.NewYamlSourceFromFlagFunc("config"))(cCtx)
	}
}

func GetBriefClient(ctx *cli.Context) (*client.Client, error) {
	rawServerURL := ctx.String(ParamServer)

	serverURL, err := url.Parse(rawServerURL)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse server url '%s'", rawServerURL)
	}

	return client.New(
		client.WithBaseURL(serverURL),
	), nil
}
