package pandoc

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bornholm/brief/internal/core/port"
	"github.com/bornholm/brief/internal/util"
	"github.com/pkg/errors"
)

var DefaultExtensions = []string{".odt", ".rtf", ".epub", ".html", ".rst", ".tex"}

// TextExtractor delegates conversion to the pandoc binary.
type TextExtractor struct {
	binary     string
	extensions []string
}

// Extract implements port.TextExtractor.
func (e *TextExtractor) Extract(ctx context.Context, filename string, r io.Reader) (string, error) {
	tempDir, cleanup, err := util.ScopedTempDir(ctx, "pandoc-*")
	if err != nil {
		return "", errors.WithStack(err)
	}

	defer cleanup()

	ext := strings.ToLower(filepath.Ext(filename))

	source := filepath.Join(tempDir, "file"+ext)
	target := filepath.Join(tempDir, "file.txt")

	if err := writeFile(source, r); err != nil {
		return "", errors.WithStack(err)
	}

	var stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, e.binary, "--to", "plain", "--wrap", "none", "--output", target, source)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", errors.Wrapf(port.ErrUnreadable, "pandoc could not convert '%s': %s", filename, strings.TrimSpace(stderr.String()))
		}

		return "", errors.WithStack(err)
	}

	text, err := os.ReadFile(target)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(text), nil
}

// SupportedExtensions implements port.TextExtractor.
func (e *TextExtractor) SupportedExtensions() []string {
	return e.extensions
}

func NewTextExtractor(binary string, extensions ...string) *TextExtractor {
	if binary == "" {
		binary = "pandoc"
	}

	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	return &TextExtractor{binary: binary, extensions: extensions}
}

var _ port.TextExtractor = &TextExtractor{}

func writeFile(path string, r io.Reader) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}

	defer file.Close()

	if _, err := io.Copy(file, r); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(file.Close())
}
