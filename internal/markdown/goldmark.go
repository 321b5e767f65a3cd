package markdown

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

func New() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)
}

var defaultMarkdown = New()

// ToHTML renders the given markdown source. Raw HTML embedded in the source
// is omitted from the output.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer

	if err := defaultMarkdown.Convert([]byte(source), &buf); err != nil {
		return "", errors.WithStack(err)
	}

	return buf.String(), nil
}
