package extractor

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/bornholm/brief/internal/core/port"
	"github.com/pkg/errors"
)

type fakeExtractor struct {
	name       string
	extensions []string
	calls      int
}

func (e *fakeExtractor) SupportedExtensions() []string {
	return e.extensions
}

func (e *fakeExtractor) Extract(ctx context.Context, filename string, r io.Reader) (string, error) {
	e.calls++
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return e.name + ":" + string(data), nil
}

func TestRoutedTextExtractor(t *testing.T) {
	text := &fakeExtractor{name: "text", extensions: []string{".txt", ".md"}}
	pdf := &fakeExtractor{name: "pdf", extensions: []string{".pdf"}}
	other := &fakeExtractor{name: "other", extensions: []string{".pdf", ".odt"}}

	routed := NewRoutedTextExtractor(text, pdf, other)

	type testCase struct {
		Filename      string
		ExpectedText  string
		ExpectedError error
	}

	testCases := []testCase{
		{Filename: "notes.txt", ExpectedText: "text:content"},
		{Filename: "NOTES.TXT", ExpectedText: "text:content"},
		{Filename: "readme.Md", ExpectedText: "text:content"},
		{Filename: "report.pdf", ExpectedText: "pdf:content"},
		{Filename: "letter.odt", ExpectedText: "other:content"},
		{Filename: "report.xlsx", ExpectedError: port.ErrNotSupported},
		{Filename: "noextension", ExpectedError: port.ErrNotSupported},
	}

	for _, tc := range testCases {
		t.Run(tc.Filename, func(t *testing.T) {
			extracted, err := routed.Extract(context.Background(), tc.Filename, strings.NewReader("content"))

			if tc.ExpectedError != nil {
				if !errors.Is(err, tc.ExpectedError) {
					t.Fatalf("expected error '%v', got '%v'", tc.ExpectedError, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.ExpectedText, extracted; e != g {
				t.Errorf("expected '%s', got '%s'", e, g)
			}
		})
	}

	if other.calls != 1 {
		t.Errorf("expected shadowed extractor to be called once, got %d", other.calls)
	}

	if e, g := 4, len(routed.SupportedExtensions()); e != g {
		t.Errorf("len(routed.SupportedExtensions()): expected %d, got %d", e, g)
	}
}

func TestNormalizeExtensions(t *testing.T) {
	normalized := NormalizeExtensions("ODT", " .rtf ", "", ".Epub")

	expected := []string{".odt", ".rtf", ".epub"}

	if e, g := len(expected), len(normalized); e != g {
		t.Fatalf("len(normalized): expected %d, got %d", e, g)
	}

	for i := range expected {
		if e, g := expected[i], normalized[i]; e != g {
			t.Errorf("normalized[%d]: expected '%s', got '%s'", i, e, g)
		}
	}
}
