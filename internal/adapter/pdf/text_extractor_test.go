package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/bornholm/brief/internal/core/port"
	"github.com/pkg/errors"
)

// encryptTrailer declares standard RC4 encryption whose user password is
// not empty, so the document cannot be opened without one.
var encryptTrailer = fmt.Sprintf(
	"/Encrypt << /Filter /Standard /V 1 /R 2 /O <%s> /U <%s> /P -4 >> /ID [<%s> <%s>] ",
	strings.Repeat("ab", 32), strings.Repeat("00", 32), strings.Repeat("01", 16), strings.Repeat("01", 16),
)

func TestJoinPages(t *testing.T) {
	type testCase struct {
		Name     string
		Pages    []string
		Expected string
	}

	testCases := []testCase{
		{Name: "no pages", Pages: []string{}, Expected: ""},
		{Name: "single page", Pages: []string{"first"}, Expected: "first\n"},
		{Name: "empty pages skipped", Pages: []string{"first", "", "third"}, Expected: "first\nthird\n"},
		{Name: "only empty pages", Pages: []string{"", ""}, Expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if e, g := tc.Expected, joinPages(tc.Pages); e != g {
				t.Errorf("expected '%s', got '%s'", e, g)
			}
		})
	}
}

func TestTextExtractor(t *testing.T) {
	extractor := NewTextExtractor()

	data := generatePDF("Hello")

	text, err := extractor.Extract(context.Background(), "report.pdf", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !strings.Contains(text, "Hello") {
		t.Errorf("expected extracted text to contain 'Hello', got '%s'", text)
	}

	if !strings.HasSuffix(text, "\n") {
		t.Errorf("expected extracted text to end with a newline, got '%s'", text)
	}
}

func TestTextExtractorPages(t *testing.T) {
	type testCase struct {
		Name         string
		Pages        []string
		ExpectedText string
	}

	testCases := []testCase{
		{
			Name:         "trailing empty page",
			Pages:        []string{"First", ""},
			ExpectedText: "First\n",
		},
		{
			Name:         "empty page between pages",
			Pages:        []string{"First", "", "Third"},
			ExpectedText: "First\nThird\n",
		},
		{
			Name:         "only empty pages",
			Pages:        []string{"", ""},
			ExpectedText: "",
		},
	}

	extractor := NewTextExtractor()

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			data := buildPDF(tc.Pages, "")

			text, err := extractor.Extract(context.Background(), "report.pdf", bytes.NewReader(data))
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.ExpectedText, text; e != g {
				t.Errorf("expected '%q', got '%q'", e, g)
			}
		})
	}
}

func TestTextExtractorUnreadable(t *testing.T) {
	extractor := NewTextExtractor()

	testCases := map[string][]byte{
		"empty":     {},
		"garbage":   []byte("this is definitely not a pdf document"),
		"truncated": generatePDF("Hello")[:64],
		"encrypted": buildPDF([]string{"Secret"}, encryptTrailer),
	}

	for name, data := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := extractor.Extract(context.Background(), "report.pdf", bytes.NewReader(data))
			if !errors.Is(err, port.ErrUnreadable) {
				t.Errorf("expected error '%v', got '%v'", port.ErrUnreadable, err)
			}
		})
	}
}

// generatePDF builds a minimal single page document with a valid cross
// reference table.
func generatePDF(content string) []byte {
	return buildPDF([]string{content}, "")
}

// buildPDF builds a document with one page per given content, an empty
// content giving a page without text. The extra entries are appended to the
// trailer dictionary.
func buildPDF(pages []string, trailerExtra string) []byte {
	kids := make([]string, 0, len(pages))
	for i := range pages {
		kids = append(kids, fmt.Sprintf("%d 0 R", 4+2*i))
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}

	for i, content := range pages {
		stream := "BT ET"
		if content != "" {
			stream = fmt.Sprintf("BT /F1 12 Tf 72 712 Td (%s) Tj ET", content)
		}

		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents %d 0 R /Resources << /Font << /F1 3 0 R >> >> >>", 5+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		)
	}

	var buf bytes.Buffer

	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefOffset := buf.Len()

	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, offset := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offset)
	}

	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R %s>>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, trailerExtra, xrefOffset)

	return buf.Bytes()
}
