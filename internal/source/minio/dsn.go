package minio

import (
	"net/url"

	"github.com/bornholm/brief/internal/source"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

func init() {
	source.Register("minio", FromDSN)
	source.Register("s3", FromDSN)
}

const (
	paramBucket = "bucket"
	paramRegion = "region"
	paramSecure = "secure"
	paramToken  = "token"
)

// FromDSN creates a backend from an url like
// s3://key:secret@endpoint/prefix?bucket=documents&region=us-east-1&secure=true
func FromDSN(dsn *url.URL) (source.Backend, error) {
	query := dsn.Query()

	bucket := query.Get(paramBucket)
	if bucket == "" {
		return nil, errors.Errorf("url parameter '%s' is required", paramBucket)
	}

	options := &minio.Options{
		Region: query.Get(paramRegion),
		Secure: query.Get(paramSecure) == "true",
	}

	if options.Region == "" {
		options.Region = "us-east-1"
	}

	if dsn.User != nil {
		secret, _ := dsn.User.Password()
		options.Creds = credentials.NewStaticV4(dsn.User.Username(), secret, query.Get(paramToken))
	}

	client, err := minio.New(dsn.Host, options)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return New(client, bucket, dsn.Path), nil
}
