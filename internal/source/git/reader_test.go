package git

import (
	"context"
	"os"
	"slices"
	"testing"

	"github.com/bornholm/brief/internal/source"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

func TestReader(t *testing.T) {
	fs := afero.NewMemMapFs()

	files := map[string]string{
		"/README.md":      "# readme",
		"/docs/guide.txt": "guide",
		"/.git/HEAD":      "ref: refs/heads/main",
	}

	for path, content := range files {
		if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	reader := &Reader{Reader: source.NewAferoReader(fs, "/")}
	ctx := context.Background()

	walked := make([]string, 0)

	err := reader.Walk(ctx, func(ctx context.Context, path string) error {
		walked = append(walked, path)
		return nil
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	slices.Sort(walked)

	expected := []string{"/README.md", "/docs/guide.txt"}
	if !slices.Equal(expected, walked) {
		t.Errorf("walked: expected %v, got %v", expected, walked)
	}

	if _, err := reader.Open(ctx, ".git/HEAD"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected error '%v', got '%v'", os.ErrNotExist, err)
	}
}
