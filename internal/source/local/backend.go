package local

import (
	"context"
	"net/url"
	"os"
	"strings"

	"github.com/bornholm/brief/internal/source"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

func init() {
	source.Register("local", FromDSN)
}

type Backend struct {
	basePath string
}

// Mount implements source.Backend.
func (b *Backend) Mount(ctx context.Context, fn func(ctx context.Context, r source.Reader) error) error {
	if _, err := os.Stat(b.basePath); err != nil {
		return errors.WithStack(err)
	}

	fs := afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), b.basePath))

	if err := fn(ctx, source.NewAferoReader(fs, "/")); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func New(basePath string) *Backend {
	return &Backend{
		basePath: basePath,
	}
}

// FromDSN creates a backend from an url like local://relative/dir or
// local:///absolute/dir.
func FromDSN(dsn *url.URL) (source.Backend, error) {
	basePath := dsn.Host + "/" + strings.TrimPrefix(dsn.Path, "/")
	if dsn.Host == "" {
		basePath = dsn.Path
	}

	if basePath == "" {
		basePath = "."
	}

	return New(basePath), nil
}

var _ source.Backend = &Backend{}
