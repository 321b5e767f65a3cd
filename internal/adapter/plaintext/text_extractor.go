package plaintext

import (
	"context"
	"io"
	"unicode/utf8"

	"github.com/bornholm/brief/internal/core/port"
	"github.com/pkg/errors"
)

var DefaultExtensions = []string{".txt", ".md"}

// TextExtractor returns UTF-8 documents verbatim.
type TextExtractor struct {
	extensions []string
}

// Extract implements port.TextExtractor.
func (e *TextExtractor) Extract(ctx context.Context, filename string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.WithStack(err)
	}

	if !utf8.Valid(data) {
		return "", errors.Wrapf(port.ErrUnreadable, "file '%s' is not valid utf-8", filename)
	}

	return string(data), nil
}

// SupportedExtensions implements port.TextExtractor.
func (e *TextExtractor) SupportedExtensions() []string {
	return e.extensions
}

func NewTextExtractor(extensions ...string) *TextExtractor {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	return &TextExtractor{extensions: extensions}
}

var _ port.TextExtractor = &TextExtractor{}
