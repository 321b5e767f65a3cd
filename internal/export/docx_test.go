package export_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/bornholm/brief/internal/adapter/docx"
	"github.com/bornholm/brief/internal/export"
	"github.com/pkg/errors"
)

func TestWriteDocx(t *testing.T) {
	var buf bytes.Buffer

	summary := "first summary\n\nsecond summary"

	if err := export.WriteDocx(&buf, "report.pdf", summary); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if buf.Len() == 0 {
		t.Fatal("expected non empty document")
	}

	text, err := docx.NewTextExtractor().Extract(context.Background(), "summary.docx", bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	for _, expected := range []string{"report.pdf", "first summary", "second summary"} {
		if !strings.Contains(text, expected) {
			t.Errorf("expected exported document to contain '%s', got '%s'", expected, text)
		}
	}
}

func TestParagraphs(t *testing.T) {
	paragraphs := export.Paragraphs("a\n\n\n\nb\n\n  \n\nc")

	expected := []string{"a", "b", "c"}

	if e, g := len(expected), len(paragraphs); e != g {
		t.Fatalf("len(paragraphs): expected %d, got %d", e, g)
	}

	for i := range expected {
		if e, g := expected[i], paragraphs[i]; e != g {
			t.Errorf("paragraphs[%d]: expected '%s', got '%s'", i, e, g)
		}
	}
}

func TestFilename(t *testing.T) {
	testCases := map[string]string{
		"report.pdf":          "report.summary.docx",
		"notes":               "notes.summary.docx",
		"dir/archive.tar.txt": "archive.tar.summary.docx",
		"":                    "document.summary.docx",
	}

	for source, expected := range testCases {
		if e, g := expected, export.Filename(source); e != g {
			t.Errorf("Filename('%s'): expected '%s', got '%s'", source, e, g)
		}
	}
}
