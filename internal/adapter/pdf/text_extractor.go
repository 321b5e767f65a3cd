package pdf

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/bornholm/brief/internal/core/port"
	"github.com/ledongthuc/pdf"
	"github.com/pkg/errors"
)

var DefaultExtensions = []string{".pdf"}

// TextExtractor reads the text layer of PDF documents, page by page.
type TextExtractor struct {
	extensions []string
}

// Extract implements port.TextExtractor.
func (e *TextExtractor) Extract(ctx context.Context, filename string, r io.Reader) (text string, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.WithStack(err)
	}

	// The parser panics on some malformed documents
	defer func() {
		if recovered := recover(); recovered != nil {
			text = ""
			err = errors.Wrapf(port.ErrUnreadable, "could not parse pdf '%s': %v", filename, recovered)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.Wrapf(port.ErrUnreadable, "could not open pdf '%s': %s", filename, err)
	}

	totalPages := reader.NumPage()
	pages := make([]string, 0, totalPages)

	for pageIndex := 1; pageIndex <= totalPages; pageIndex++ {
		if err := ctx.Err(); err != nil {
			return "", errors.WithStack(err)
		}

		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		// Font names are local to the page resources
		fonts := make(map[string]*pdf.Font)
		for _, name := range page.Fonts() {
			font := page.Font(name)
			fonts[name] = &font
		}

		pageText, err := page.GetPlainText(fonts)
		if err != nil {
			return "", errors.Wrapf(port.ErrUnreadable, "could not extract text from page %d of pdf '%s': %s", pageIndex, filename, err)
		}

		pages = append(pages, pageText)
	}

	slog.DebugContext(ctx, "pdf text extracted", slog.Int("pages", totalPages))

	return joinPages(pages), nil
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

// joinPages concatenates the pages text in order, each non empty page
// followed by a newline. Pages without text contribute nothing.
func joinPages(pages []string) string {
	var sb strings.Builder

	for _, p := range pages {
		if p == "" {
			continue
		}

		sb.WriteString(p)
		sb.WriteString("\n")
	}

	return sb.String()
}
