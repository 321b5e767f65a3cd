package common

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/bornholm/brief/internal/extractor"
	"github.com/bornholm/brief/internal/source"
	"github.com/pkg/errors"
	"github.com/redmatter/go-globre/v2"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	ParamSource  = "source"
	ParamInclude = "include"
)

var (
	flagSource = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    ParamSource,
		EnvVars: []string{"BRIEF_CLI_SOURCE"},
		Usage:   "Read documents from this source url (local://, sftp://, smb://, ftp://, webdav://, s3://, git://) instead of the local filesystem. Without arguments, every supported document of the source is summarized",
	})
	flagInclude = altsrc.NewStringSliceFlag(&cli.StringSliceFlag{
		Name:    ParamInclude,
		EnvVars: []string{"BRIEF_CLI_INCLUDE"},
		Usage:   "Only summarize the walked source files matching one of these glob patterns (ex: 'reports/**/*.pdf')",
	})
)

// DocumentFunc is called for each document to summarize. The reader is only
// valid for the duration of the call.
type DocumentFunc func(ctx context.Context, filename string, r io.Reader) error

// ExtensionsFunc lists the extensions that should be picked when walking a
// whole source.
type ExtensionsFunc func(ctx context.Context) ([]string, error)

// ForEachDocument calls fn for each document designated by the command
// arguments and the --source flag.
func ForEachDocument(cCtx *cli.Context, extensions ExtensionsFunc, fn DocumentFunc) error {
	ctx := cCtx.Context
	paths := cCtx.Args().Slice()
	dsn := cCtx.String(ParamSource)

	if dsn == "" {
		if len(paths) == 0 {
			return errors.New("at least one file must be given")
		}

		for _, path := range paths {
			if err := openLocal(ctx, path, fn); err != nil {
				return errors.WithStack(err)
			}
		}

		return nil
	}

	backend, err := source.New(dsn)
	if err != nil {
		return errors.Wrap(err, "could not create source")
	}

	err = backend.Mount(ctx, func(ctx context.Context, r source.Reader) error {
		if len(paths) > 0 {
			for _, path := range paths {
				if err := openFromSource(ctx, r, path, fn); err != nil {
					return errors.WithStack(err)
				}
			}

			return nil
		}

		supported, err := extensions(ctx)
		if err != nil {
			return errors.Wrap(err, "could not retrieve supported extensions")
		}

		filters, err := compileFilters(cCtx.StringSlice(ParamInclude))
		if err != nil {
			return errors.WithStack(err)
		}

		return r.Walk(ctx, func(ctx context.Context, path string) error {
			if !slices.Contains(supported, extractor.Extension(path)) {
				slog.DebugContext(ctx, "ignoring unsupported file", slog.String("path", path))
				return nil
			}

			if !matchFilters(filters, path) {
				slog.DebugContext(ctx, "ignoring filtered file", slog.String("path", path))
				return nil
			}

			return openFromSource(ctx, r, path, fn)
		})
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func compileFilters(patterns []string) ([]*regexp.Regexp, error) {
	filters := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		pathRegExp := globre.RegexFromGlob(
			pattern,
			globre.ExtendedSyntaxEnabled(true),
			globre.GlobStarEnabled(true),
			globre.WithDelimiter('/'),
		)

		filter, err := regexp.Compile(pathRegExp)
		if err != nil {
			return nil, errors.Wrapf(err, "could not parse include pattern '%s'", pattern)
		}

		filters = append(filters, filter)
	}

	return filters, nil
}

// Walked paths are matched relative to the source root.
func matchFilters(filters []*regexp.Regexp, path string) bool {
	if len(filters) == 0 {
		return true
	}

	path = strings.TrimPrefix(filepath.ToSlash(path), "/")

	for _, f := range filters {
		if f.MatchString(path) {
			return true
		}
	}

	return false
}

func openLocal(ctx context.Context, path string, fn DocumentFunc) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.WithStack(err)
	}

	defer file.Close()

	if err := fn(ctx, filepath.Base(path), file); err != nil {
		return errors.Wrapf(err, "could not process '%s'", path)
	}

	return nil
}

func openFromSource(ctx context.Context, r source.Reader, path string, fn DocumentFunc) error {
	file, err := r.Open(ctx, path)
	if err != nil {
		return errors.Wrapf(err, "could not open '%s'", path)
	}

	defer file.Close()

	if err := fn(ctx, filepath.Base(path), file); err != nil {
		return errors.Wrapf(err, "could not process '%s'", path)
	}

	return nil
}
