package genai

import (
	"context"
	"io"

	"github.com/bornholm/brief/internal/core/port"
	"github.com/bornholm/genai/extract"
	"github.com/pkg/errors"
)

// TextExtractor delegates extraction to a remote document understanding
// provider, for scanned documents without a text layer.
type TextExtractor struct {
	extract    extract.TextClient
	extensions []string
}

// Extract implements port.TextExtractor.
func (e *TextExtractor) Extract(ctx context.Context, filename string, r io.Reader) (string, error) {
	res, err := e.extract.Text(ctx, extract.WithReader(r), extract.WithFilename(filename))
	if err != nil {
		return "", errors.WithStack(err)
	}

	text, err := io.ReadAll(res.Output())
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(text), nil
}

// SupportedExtensions implements port.TextExtractor.
func (e *TextExtractor) SupportedExtensions() []string {
	return e.extensions
}

func NewTextExtractor(extract extract.TextClient, extensions ...string) *TextExtractor {
	return &TextExtractor{extract: extract, extensions: extensions}
}

var _ port.TextExtractor = &TextExtractor{}
