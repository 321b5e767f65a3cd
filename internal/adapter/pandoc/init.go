package pandoc

import (
	"net/url"

	"github.com/bornholm/brief/internal/core/port"
	"github.com/bornholm/brief/internal/extractor"
	"github.com/bornholm/brief/internal/setup"
)

const (
	Scheme          = "pandoc"
	ParamExtensions = "extensions"
	ParamBinary     = "binary"
)

func init() {
	setup.TextExtractor.Register(Scheme, func(u *url.URL) (port.TextExtractor, error) {
		query := u.Query()
		extensions := extractor.ParseExtensionsParam(query.Get(ParamExtensions))
		return NewTextExtractor(query.Get(ParamBinary), extensions...), nil
	})
}
