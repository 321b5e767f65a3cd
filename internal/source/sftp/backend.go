package sftp

import (
	"context"
	"log/slog"
	"net"

	"github.com/bornholm/brief/internal/source"
	"github.com/pkg/errors"
	"github.com/pkg/sftp"
	"github.com/spf13/afero"
	"github.com/spf13/afero/sftpfs"
	"golang.org/x/crypto/ssh"
)

type Backend struct {
	addr     string
	basePath string
	config   *ssh.ClientConfig
}

// Mount implements source.Backend.
func (b *Backend) Mount(ctx context.Context, fn func(ctx context.Context, r source.Reader) error) error {
	sshClient, err := ssh.Dial("tcp", b.addr, b.config)
	if err != nil {
		return errors.Wrapf(err, "could not connect to '%s'", b.addr)
	}

	defer func() {
		if err := sshClient.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			slog.ErrorContext(ctx, "could not close ssh connection", slog.Any("error", errors.WithStack(err)))
		}
	}()

	sftpClient, err := sftp.NewClient(sshClient)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := sftpClient.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			slog.ErrorContext(ctx, "could not close sftp connection", slog.Any("error", errors.WithStack(err)))
		}
	}()

	fs := sftpfs.New(sftpClient)

	if b.basePath != "" {
		fs = afero.NewBasePathFs(fs, b.basePath)
	}

	if err := fn(ctx, source.NewAferoReader(afero.NewReadOnlyFs(fs), "/")); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func New(addr string, basePath string, config *ssh.ClientConfig) *Backend {
	return &Backend{
		addr:     addr,
		config:   config,
		basePath: basePath,
	}
}

var _ source.Backend = &Backend{}
