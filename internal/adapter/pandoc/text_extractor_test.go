package pandoc

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bornholm/brief/internal/core/port"
	"github.com/bornholm/brief/internal/util"
	"github.com/pkg/errors"
)

func TestTextExtractor(t *testing.T) {
	if _, err := exec.LookPath("pandoc"); err != nil {
		t.Skip("pandoc binary not available")
	}

	extractor := NewTextExtractor("", ".html")

	text, err := extractor.Extract(context.Background(), "page.html", strings.NewReader("<html><body><p>Hello world</p></body></html>"))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Hello world", strings.TrimSpace(text); e != g {
		t.Errorf("expected '%s', got '%s'", e, g)
	}

	assertNoLeftovers(t)
}

func TestTextExtractorFailure(t *testing.T) {
	// "false" exits with a non zero status without producing any output
	binary, err := exec.LookPath("false")
	if err != nil {
		t.Skip("false binary not available")
	}

	extractor := NewTextExtractor(binary)

	_, err = extractor.Extract(context.Background(), "letter.odt", strings.NewReader("content"))
	if !errors.Is(err, port.ErrUnreadable) {
		t.Errorf("expected error '%v', got '%v'", port.ErrUnreadable, err)
	}

	assertNoLeftovers(t)
}

func assertNoLeftovers(t *testing.T) {
	baseDir, err := util.TempDir()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	leftovers, err := filepath.Glob(filepath.Join(baseDir, "pandoc-*"))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if len(leftovers) != 0 {
		t.Errorf("expected temporary directories to be removed, found %v", leftovers)
	}

	if _, err := os.Stat(baseDir); err != nil {
		t.Errorf("expected base temporary directory to exist: %v", err)
	}
}
