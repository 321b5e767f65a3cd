package common

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bornholm/brief/internal/core/model"
	"github.com/bornholm/brief/internal/export"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// WriteSummaries prints the given summaries according to the output flags.
func WriteSummaries(cCtx *cli.Context, summaries []*model.Summary) (err error) {
	output := cCtx.String(ParamOutput)

	if output != "" && strings.EqualFold(filepath.Ext(output), ".docx") {
		if len(summaries) != 1 {
			return errors.New("a docx output accepts a single document")
		}

		if err := writeDocx(output, summaries[0]); err != nil {
			return errors.WithStack(err)
		}

		return nil
	}

	var w io.Writer = cCtx.App.Writer

	if output != "" {
		var file *os.File

		file, err = os.Create(output)
		if err != nil {
			return errors.WithStack(err)
		}

		defer closeFile(file, &err)

		w = file
	}

	switch format := cCtx.String(ParamFormat); format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		var payload any = summaries
		if len(summaries) == 1 {
			payload = summaries[0]
		}

		if err := encoder.Encode(payload); err != nil {
			return errors.WithStack(err)
		}

	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(summaries); err != nil {
			return errors.WithStack(err)
		}

		if err := encoder.Close(); err != nil {
			return errors.WithStack(err)
		}

	case FormatText:
		for idx, s := range summaries {
			if idx > 0 {
				fmt.Fprintln(w)
			}

			if err := writeText(w, s); err != nil {
				return errors.WithStack(err)
			}
		}

	default:
		return errors.Errorf("unknown output format '%s'", format)
	}

	return nil
}

func writeText(w io.Writer, s *model.Summary) error {
	_, err := fmt.Fprintf(w, "# %s\n\nExtracted text length: %s\n\n%s\n", s.Filename, humanize.Comma(int64(s.ExtractedLength)), s.Summary)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func writeDocx(path string, s *model.Summary) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}

	defer closeFile(file, &err)

	if err := export.WriteDocx(file, s.Filename, s.Summary); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// closeFile closes a written file and reports its error unless an earlier
// one is already set.
func closeFile(file *os.File, err *error) {
	if closeErr := file.Close(); closeErr != nil && *err == nil {
		*err = errors.Wrapf(closeErr, "could not close '%s'", file.Name())
	}
}
