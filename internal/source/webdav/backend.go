package webdav

import (
	"context"
	"io"
	"path"
	"time"

	"github.com/bornholm/brief/internal/source"
	"github.com/pkg/errors"
	"github.com/studio-b12/gowebdav"
)

type Backend struct {
	url      string
	username string
	password string
	timeout  time.Duration
}

// Mount implements source.Backend.
func (b *Backend) Mount(ctx context.Context, fn func(ctx context.Context, r source.Reader) error) error {
	client := gowebdav.NewAuthClient(b.url, gowebdav.NewAutoAuth(b.username, b.password))
	client.SetTimeout(b.timeout)

	if err := client.Connect(); err != nil {
		return errors.Wrapf(err, "could not connect to '%s'", b.url)
	}

	if err := fn(ctx, &Reader{client: client}); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func New(url string, username, password string, timeout time.Duration) *Backend {
	return &Backend{
		url:      url,
		username: username,
		password: password,
		timeout:  timeout,
	}
}

var _ source.Backend = &Backend{}

type Reader struct {
	client *gowebdav.Client
}

// Open implements source.Reader.
func (r *Reader) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	stream, err := r.client.ReadStream(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return stream, nil
}

// Walk implements source.Reader.
func (r *Reader) Walk(ctx context.Context, fn func(ctx context.Context, path string) error) error {
	if err := r.walk(ctx, "/", fn); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (r *Reader) walk(ctx context.Context, dir string, fn func(ctx context.Context, path string) error) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	entries, err := r.client.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, "could not read directory '%s'", dir)
	}

	for _, entry := range entries {
		p := path.Join(dir, entry.Name())

		if entry.IsDir() {
			if err := r.walk(ctx, p, fn); err != nil {
				return errors.WithStack(err)
			}

			continue
		}

		if err := fn(ctx, p); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

var _ source.Reader = &Reader{}
