package pdf

import (
	"net/url"

	"github.com/bornholm/brief/internal/core/port"
	"github.com/bornholm/brief/internal/extractor"
	"github.com/bornholm/brief/internal/setup"
)

const (
	Scheme          = "pdf"
	ParamExtensions = "extensions"
)

func init() {
	setup.TextExtractor.Register(Scheme, func(u *url.URL) (port.TextExtractor, error) {
		extensions := extractor.ParseExtensionsParam(u.Query().Get(ParamExtensions))
		return NewTextExtractor(extensions...), nil
	})
}
