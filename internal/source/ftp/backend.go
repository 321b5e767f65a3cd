package ftp

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/bornholm/brief/internal/source"
	"github.com/jlaffaye/ftp"
	"github.com/pkg/errors"
)

type Backend struct {
	addr     string
	basePath string
	username string
	password string
	options  []ftp.DialOption
}

// Mount implements source.Backend.
func (b *Backend) Mount(ctx context.Context, fn func(ctx context.Context, r source.Reader) error) error {
	options := append([]ftp.DialOption{
		ftp.DialWithContext(ctx),
	}, b.options...)

	conn, err := ftp.Dial(b.addr, options...)
	if err != nil {
		return errors.Wrapf(err, "could not connect to '%s'", b.addr)
	}

	defer func() {
		if err := conn.Quit(); err != nil {
			slog.ErrorContext(ctx, "could not quit ftp server", slog.Any("error", errors.WithStack(err)))
		}
	}()

	if b.username != "" {
		if err := conn.Login(b.username, b.password); err != nil {
			return errors.WithStack(err)
		}
	}

	reader := &Reader{
		conn:     conn,
		basePath: "/" + strings.Trim(b.basePath, "/"),
	}

	if err := fn(ctx, reader); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func New(addr string, basePath string, username, password string, options ...ftp.DialOption) *Backend {
	return &Backend{
		addr:     addr,
		basePath: basePath,
		username: username,
		password: password,
		options:  options,
	}
}

var _ source.Backend = &Backend{}

// Reader reads files over a single ftp connection. A file returned by Open
// must be closed before the next call to the reader.
type Reader struct {
	conn     *ftp.ServerConn
	basePath string
}

// Open implements source.Reader.
func (r *Reader) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	res, err := r.conn.Retr(path.Join(r.basePath, name))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return res, nil
}

// Walk implements source.Reader.
func (r *Reader) Walk(ctx context.Context, fn func(ctx context.Context, path string) error) error {
	// Entries are collected first as the connection can not transfer files
	// while listing directories.
	files := make([]string, 0)

	walker := r.conn.Walk(r.basePath)
	for walker.Next() {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}

		if walker.Stat().Type != ftp.EntryTypeFile {
			continue
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(walker.Path(), r.basePath), "/")
		files = append(files, rel)
	}

	if err := walker.Err(); err != nil {
		return errors.WithStack(err)
	}

	for _, f := range files {
		if err := fn(ctx, f); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

var _ source.Reader = &Reader{}
