package source

import (
	"context"
	"io"
)

// Reader gives read access to the files of a mounted source.
type Reader interface {
	// Walk calls fn with the path of every regular file of the source.
	Walk(ctx context.Context, fn func(ctx context.Context, path string) error) error
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// Backend is a remote or local storage holding documents. Connections only
// live for the duration of the Mount callback.
type Backend interface {
	Mount(ctx context.Context, fn func(ctx context.Context, r Reader) error) error
}
