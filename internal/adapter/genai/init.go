package genai

import (
	"context"
	"net/url"

	"github.com/bornholm/brief/internal/core/port"
	"github.com/bornholm/brief/internal/extractor"
	"github.com/bornholm/brief/internal/setup"
	"github.com/bornholm/genai/extract/provider"
	"github.com/bornholm/genai/extract/provider/marker"
	"github.com/bornholm/genai/extract/provider/mistral"
	"github.com/pkg/errors"
)

const (
	ParamExtensions = "extensions"
)

func init() {
	setup.TextExtractor.Register(string(marker.Name), createTextExtractor)
	setup.TextExtractor.Register(string(mistral.Name), createTextExtractor)
}

func createTextExtractor(u *url.URL) (port.TextExtractor, error) {
	dsn := *u

	query := dsn.Query()

	extensions := []string{".pdf"}
	if rawExtensions := query.Get(ParamExtensions); rawExtensions != "" {
		extensions = extractor.ParseExtensionsParam(rawExtensions)
		query.Del(ParamExtensions)
		dsn.RawQuery = query.Encode()
	}

	client, _, err := provider.Create(
		context.Background(),
		provider.WithTextClientDSN(dsn.String()),
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return NewTextExtractor(client, extensions...), nil
}
