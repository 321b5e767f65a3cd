package setup

import (
	"context"

	"github.com/bornholm/brief/internal/config"
	"github.com/bornholm/brief/internal/core/port"
	"github.com/bornholm/brief/internal/extractor"
	"github.com/pkg/errors"
)

var TextExtractor = NewRegistry[port.TextExtractor]()

var getTextExtractorFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.TextExtractor, error) {
	extractors := make([]port.TextExtractor, 0)
	for _, uri := range conf.Extractor.URI {
		e, err := TextExtractor.From(uri)
		if err != nil {
			return nil, errors.Wrapf(err, "could not retrieve text extractor for uri '%s'", uri)
		}

		extractors = append(extractors, e)
	}

	var textExtractor port.TextExtractor = extractor.NewRoutedTextExtractor(extractors...)

	if conf.Extractor.RateLimit.Enabled {
		textExtractor = extractor.NewRateLimitedTextExtractor(textExtractor, conf.Extractor.RateLimit.RequestInterval, conf.Extractor.RateLimit.RequestMaxBurst)
	}

	return textExtractor, nil
})
