package util

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/pkg/errors"
)

var (
	tempDirMutex sync.Mutex
	tempDir      string
)

// TempDir returns the process wide directory holding request scoped
// temporary artifacts, creating it if needed.
func TempDir() (string, error) {
	tempDirMutex.Lock()
	defer tempDirMutex.Unlock()

	if tempDir != "" {
		if _, err := os.Stat(tempDir); err == nil {
			return tempDir, nil
		}
	}

	dir, err := os.MkdirTemp("", "brief-*")
	if err != nil {
		return "", errors.WithStack(err)
	}

	tempDir = dir

	return tempDir, nil
}

// ScopedTempDir creates a new directory under TempDir. The returned function
// removes it and must be called on every exit path.
func ScopedTempDir(ctx context.Context, pattern string) (string, func(), error) {
	baseDir, err := TempDir()
	if err != nil {
		return "", nil, errors.WithStack(err)
	}

	dir, err := os.MkdirTemp(baseDir, pattern)
	if err != nil {
		return "", nil, errors.WithStack(err)
	}

	cleanup := func() {
		if err := os.RemoveAll(dir); err != nil {
			slog.ErrorContext(ctx, "could not remove temporary directory", slog.String("path", dir), slog.Any("error", errors.WithStack(err)))
		}
	}

	return dir, cleanup, nil
}

// RemoveTempDir deletes the process wide directory and everything left in it.
func RemoveTempDir() error {
	tempDirMutex.Lock()
	defer tempDirMutex.Unlock()

	if tempDir == "" {
		return nil
	}

	if err := os.RemoveAll(tempDir); err != nil {
		return errors.WithStack(err)
	}

	tempDir = ""

	return nil
}
