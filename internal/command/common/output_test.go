package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestCloseFile(t *testing.T) {
	t.Run("close error is reported", func(t *testing.T) {
		file, err := os.Create(filepath.Join(t.TempDir(), "summary.txt"))
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if err := file.Close(); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		var closeErr error
		closeFile(file, &closeErr)

		if !errors.Is(closeErr, os.ErrClosed) {
			t.Errorf("expected error '%v', got '%v'", os.ErrClosed, closeErr)
		}
	})

	t.Run("earlier error is kept", func(t *testing.T) {
		file, err := os.Create(filepath.Join(t.TempDir(), "summary.txt"))
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if err := file.Close(); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		errWrite := errors.New("write failed")

		writeErr := errWrite
		closeFile(file, &writeErr)

		if e, g := errWrite, writeErr; e != g {
			t.Errorf("expected error '%v', got '%v'", e, g)
		}
	})
}
