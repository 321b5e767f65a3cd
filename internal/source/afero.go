package source

import (
	"context"
	"io"
	"io/fs"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

type AferoReader struct {
	fs   afero.Fs
	root string
}

// Open implements Reader.
func (r *AferoReader) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	file, err := r.fs.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return file, nil
}

// Walk implements Reader.
func (r *AferoReader) Walk(ctx context.Context, fn func(ctx context.Context, path string) error) error {
	err := afero.Walk(r.fs, r.root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return errors.WithStack(err)
		}

		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		return fn(ctx, path)
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// NewAferoReader returns a reader walking the given filesystem from root.
func NewAferoReader(fs afero.Fs, root string) *AferoReader {
	return &AferoReader{
		fs:   fs,
		root: root,
	}
}

var _ Reader = &AferoReader{}
