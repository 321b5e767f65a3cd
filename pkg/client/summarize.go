package client

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/bornholm/brief/internal/core/model"
	"github.com/bornholm/brief/internal/http/handler/api"
	"github.com/pkg/errors"
)

func (c *Client) Summarize(ctx context.Context, filename string, r io.Reader) (*model.Summary, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	fileWriter, err := form.CreateFormFile("file", filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if _, err := io.Copy(fileWriter, r); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := form.Close(); err != nil {
		return nil, errors.WithStack(err)
	}

	header := http.Header{}
	header.Set("Content-Type", form.FormDataContentType())

	var res model.Summary

	// bytes.Reader bodies can be replayed by the retry transport
	if err := c.jsonRequest(ctx, http.MethodPost, "/summarize", header, bytes.NewReader(body.Bytes()), &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

func (c *Client) SummarizeFile(ctx context.Context, path string) (*model.Summary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer file.Close()

	res, err := c.Summarize(ctx, filepath.Base(path), file)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return res, nil
}

func (c *Client) ListFormats(ctx context.Context) ([]string, error) {
	var res api.ListFormatsResponse

	if err := c.jsonRequest(ctx, http.MethodGet, "/formats", nil, nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Extensions, nil
}
