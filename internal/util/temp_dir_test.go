package util

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestScopedTempDir(t *testing.T) {
	t.Cleanup(func() {
		if err := RemoveTempDir(); err != nil {
			t.Errorf("%+v", errors.WithStack(err))
		}
	})

	dir, cleanup, err := ScopedTempDir(context.Background(), "test-*")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	baseDir, err := TempDir()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := baseDir, filepath.Dir(dir); e != g {
		t.Errorf("expected scoped directory in '%s', got '%s'", e, g)
	}

	if err := os.WriteFile(filepath.Join(dir, "artifact"), []byte("data"), 0o600); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	cleanup()

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("expected '%s' to be removed, got '%v'", dir, err)
	}

	if err := RemoveTempDir(); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := os.Stat(baseDir); !os.IsNotExist(err) {
		t.Errorf("expected '%s' to be removed, got '%v'", baseDir, err)
	}

	// A removed directory is recreated on demand
	if _, cleanup, err := ScopedTempDir(context.Background(), "test-*"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	} else {
		cleanup()
	}
}
