package export

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/pkg/errors"
)

const (
	titleSize = 16
	textSize  = 11
)

// WriteDocx writes the given summary as an Office Open XML document, one
// paragraph per summary paragraph.
func WriteDocx(w io.Writer, title string, summary string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return errors.WithStack(err)
	}

	doc.AddParagraph("").AddText(title).Bold(true).Size(titleSize)

	for _, paragraph := range Paragraphs(summary) {
		doc.AddParagraph("").AddText(paragraph).Size(textSize)
	}

	if err := doc.Write(w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Paragraphs splits a summary on blank lines, dropping empty paragraphs.
func Paragraphs(summary string) []string {
	paragraphs := make([]string, 0)

	for _, p := range strings.Split(summary, "\n\n") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		paragraphs = append(paragraphs, p)
	}

	return paragraphs
}

// Filename returns the name of the exported document for the given source
// filename.
func Filename(source string) string {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	if base == "" || base == "." || base == "/" {
		base = "document"
	}

	return base + ".summary.docx"
}
