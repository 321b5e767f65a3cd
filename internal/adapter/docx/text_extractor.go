package docx

import (
	"context"
	"io"
	"strings"

	"github.com/bornholm/brief/internal/core/port"
	"github.com/gomutex/godocx/packager"
	"github.com/gomutex/godocx/wml/ctypes"
	"github.com/gomutex/godocx/wml/stypes"
	"github.com/pkg/errors"
)

var DefaultExtensions = []string{".docx"}

// TextExtractor reads the body paragraphs of Office Open XML documents.
type TextExtractor struct {
	extensions []string
}

// Extract implements port.TextExtractor.
func (e *TextExtractor) Extract(ctx context.Context, filename string, r io.Reader) (text string, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.WithStack(err)
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			err = errors.Wrapf(port.ErrUnreadable, "could not parse docx '%s': %v", filename, recovered)
		}
	}()

	doc, err := packager.Unpack(&data)
	if err != nil {
		return "", errors.Wrapf(port.ErrUnreadable, "could not open docx '%s': %s", filename, err)
	}

	if doc.Document == nil || doc.Document.Body == nil {
		return "", errors.Wrapf(port.ErrUnreadable, "could not find body of docx '%s'", filename)
	}

	paragraphs := make([]string, 0, len(doc.Document.Body.Children))

	// Tables are skipped, only top level paragraphs are read
	for _, child := range doc.Document.Body.Children {
		if child.Para == nil {
			continue
		}

		var sb strings.Builder
		writeParagraphChildren(&sb, child.Para.GetCT().Children)
		paragraphs = append(paragraphs, sb.String())
	}

	return strings.Join(paragraphs, "\n"), nil
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

func writeParagraphChildren(sb *strings.Builder, children []ctypes.ParagraphChild) {
	for _, child := range children {
		if child.Run != nil {
			writeRun(sb, child.Run)
		}

		if child.Link != nil {
			if child.Link.Run != nil {
				writeRun(sb, child.Link.Run)
			}
			writeParagraphChildren(sb, child.Link.Children)
		}
	}
}

func writeRun(sb *strings.Builder, run *ctypes.Run) {
	for _, child := range run.Children {
		switch {
		case child.Text != nil:
			sb.WriteString(child.Text.Text)
		case child.Tab != nil:
			sb.WriteString("\t")
		case child.Break != nil && isLineBreak(child.Break):
			sb.WriteString("\n")
		}
	}
}

// isLineBreak reports whether the break ends a line. Page and column breaks
// carry no text.
func isLineBreak(br *ctypes.Break) bool {
	if br.BreakType == nil {
		return true
	}

	switch *br.BreakType {
	case stypes.BreakTypeTextWrapping, stypes.BreakTypeInvalid:
		return true
	default:
		return false
	}
}
