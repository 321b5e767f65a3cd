package git

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bornholm/brief/internal/source"
	"github.com/bornholm/brief/internal/util"
	"github.com/bornholm/go-x/slogx"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Backend makes a shallow clone of a repository and exposes its worktree.
type Backend struct {
	repoURL string
	branch  string
	subPath string
}

// Mount implements source.Backend.
func (b *Backend) Mount(ctx context.Context, fn func(ctx context.Context, r source.Reader) error) error {
	ref := plumbing.HEAD
	if b.branch != "" {
		ref = plumbing.NewBranchReferenceName(b.branch)
	}

	ctx = slogx.WithAttrs(ctx, slog.String("repository", b.repoURL), slog.String("ref", ref.String()))

	dir, cleanup, err := util.ScopedTempDir(ctx, "git-*")
	if err != nil {
		return errors.WithStack(err)
	}

	defer cleanup()

	slog.DebugContext(ctx, "cloning repository", slog.String("local_path", dir))

	_, err = git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:           b.repoURL,
		SingleBranch:  true,
		ReferenceName: ref,
		Depth:         1,
	})
	if err != nil {
		return errors.Wrapf(err, "could not clone repository '%s'", b.repoURL)
	}

	fs := afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), filepath.Join(dir, b.subPath)))

	reader := &Reader{
		Reader: source.NewAferoReader(fs, "/"),
	}

	if err := fn(ctx, reader); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func New(repoURL string, branch string, subPath string) *Backend {
	return &Backend{
		repoURL: repoURL,
		branch:  branch,
		subPath: subPath,
	}
}

var _ source.Backend = &Backend{}

// Reader hides the repository metadata from the walked files.
type Reader struct {
	source.Reader
}

// Open implements source.Reader.
func (r *Reader) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if isMetadata(path) {
		return nil, errors.WithStack(os.ErrNotExist)
	}

	return r.Reader.Open(ctx, path)
}

// Walk implements source.Reader.
func (r *Reader) Walk(ctx context.Context, fn func(ctx context.Context, path string) error) error {
	return r.Reader.Walk(ctx, func(ctx context.Context, path string) error {
		if isMetadata(path) {
			return nil
		}

		return fn(ctx, path)
	})
}

func isMetadata(path string) bool {
	path = filepath.ToSlash(strings.TrimPrefix(filepath.Clean(path), string(filepath.Separator)))
	return path == ".git" || strings.HasPrefix(path, ".git/")
}

var _ source.Reader = &Reader{}
