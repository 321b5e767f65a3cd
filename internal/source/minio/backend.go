package minio

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/bornholm/brief/internal/source"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

type Backend struct {
	client *minio.Client
	bucket string
	prefix string
}

// Mount implements source.Backend.
func (b *Backend) Mount(ctx context.Context, fn func(ctx context.Context, r source.Reader) error) error {
	exists, err := b.client.BucketExists(ctx, b.bucket)
	if err != nil {
		return errors.WithStack(err)
	}

	if !exists {
		return errors.Errorf("bucket '%s' does not exist", b.bucket)
	}

	if err := fn(ctx, b); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Open implements source.Reader.
func (b *Backend) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	object, err := b.client.GetObject(ctx, b.bucket, path.Join(b.prefix, name), minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return object, nil
}

// Walk implements source.Reader.
func (b *Backend) Walk(ctx context.Context, fn func(ctx context.Context, path string) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	prefix := b.prefix
	if prefix != "" {
		prefix += "/"
	}

	objects := b.client.ListObjects(ctx, b.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	for obj := range objects {
		if obj.Err != nil {
			return errors.WithStack(obj.Err)
		}

		// Directory markers
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}

		if err := fn(ctx, strings.TrimPrefix(obj.Key, prefix)); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

func New(client *minio.Client, bucket string, prefix string) *Backend {
	return &Backend{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

var (
	_ source.Backend = &Backend{}
	_ source.Reader  = &Backend{}
)
