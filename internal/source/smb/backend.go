package smb

import (
	"context"
	"log/slog"
	"net"

	"github.com/bornholm/brief/internal/source"
	"github.com/hirochachacha/go-smb2"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

type Backend struct {
	addr      string
	basePath  string
	shareName string
	initiator smb2.Initiator
}

// Mount implements source.Backend.
func (b *Backend) Mount(ctx context.Context, fn func(ctx context.Context, r source.Reader) error) error {
	var dialer net.Dialer

	conn, err := dialer.DialContext(ctx, "tcp", b.addr)
	if err != nil {
		return errors.Wrapf(err, "could not connect to '%s'", b.addr)
	}

	defer func() {
		if err := conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			slog.ErrorContext(ctx, "could not close smb connection", slog.Any("error", errors.WithStack(err)))
		}
	}()

	smbDialer := &smb2.Dialer{
		Initiator: b.initiator,
	}

	session, err := smbDialer.DialContext(ctx, conn)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := session.Logoff(); err != nil {
			var contextErr *smb2.ContextError
			if errors.As(err, &contextErr) {
				return
			}

			slog.ErrorContext(ctx, "could not logoff smb session", slog.Any("error", errors.WithStack(err)))
		}
	}()

	share, err := session.WithContext(ctx).Mount(b.shareName)
	if err != nil {
		return errors.Wrapf(err, "could not mount share '%s'", b.shareName)
	}

	defer func() {
		if err := share.Umount(); err != nil {
			slog.ErrorContext(ctx, "could not unmount smb share", slog.Any("error", errors.WithStack(err)))
		}
	}()

	basePath := b.basePath
	if basePath == "" {
		basePath = "."
	}

	fs := afero.FromIOFS{FS: share.DirFS(basePath)}

	if err := fn(ctx, source.NewAferoReader(fs, ".")); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func New(addr string, basePath string, shareName string, initiator smb2.Initiator) *Backend {
	return &Backend{
		addr:      addr,
		basePath:  basePath,
		shareName: shareName,
		initiator: initiator,
	}
}

var _ source.Backend = &Backend{}
