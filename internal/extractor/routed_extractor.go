package extractor

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bornholm/brief/internal/core/port"
	"github.com/pkg/errors"
)

// RoutedTextExtractor dispatches documents to the first extractor declaring
// support for the lower-cased filename extension.
type RoutedTextExtractor struct {
	supportedExtensions []string
	extractors          []port.TextExtractor
}

// Extract implements port.TextExtractor.
func (e *RoutedTextExtractor) Extract(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext := Extension(filename)

	for _, extractor := range e.extractors {
		if !slices.Contains(extractor.SupportedExtensions(), ext) {
			continue
		}

		text, err := extractor.Extract(ctx, filename, r)
		if err != nil {
			return "", errors.WithStack(err)
		}

		return text, nil
	}

	slog.DebugContext(ctx, "no extractor found", slog.String("extension", ext))

	return "", errors.WithStack(port.ErrNotSupported)
}

// SupportedExtensions implements port.TextExtractor.
func (e *RoutedTextExtractor) SupportedExtensions() []string {
	return e.supportedExtensions
}

func NewRoutedTextExtractor(extractors ...port.TextExtractor) *RoutedTextExtractor {
	supportedExtensions := make([]string, 0)
	for _, e := range extractors {
		for _, ext := range e.SupportedExtensions() {
			if slices.Contains(supportedExtensions, ext) {
				continue
			}

			supportedExtensions = append(supportedExtensions, ext)
		}
	}

	return &RoutedTextExtractor{
		supportedExtensions: supportedExtensions,
		extractors:          extractors,
	}
}

var _ port.TextExtractor = &RoutedTextExtractor{}

// Extension returns the canonical dispatch key of the given filename.
func Extension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// NormalizeExtensions lower-cases the given extensions and ensures they
// start with a dot.
func NormalizeExtensions(extensions ...string) []string {
	normalized := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		normalized = append(normalized, ext)
	}
	return normalized
}

// ParseExtensionsParam parses a comma separated list of extensions, as found
// in extractor URIs.
func ParseExtensionsParam(raw string) []string {
	if raw == "" {
		return nil
	}

	return NormalizeExtensions(strings.Split(raw, ",")...)
}
