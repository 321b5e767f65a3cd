package setup

import (
	"context"
	"net/http"

	"github.com/bornholm/brief/internal/config"
	bhttp "github.com/bornholm/brief/internal/http"
	"github.com/bornholm/brief/internal/http/handler/api"
	"github.com/bornholm/brief/internal/http/handler/mcp"
	"github.com/bornholm/brief/internal/http/handler/metrics"
	"github.com/bornholm/brief/internal/http/handler/webui"
	"github.com/bornholm/brief/internal/http/middleware/ratelimit"
	"github.com/pkg/errors"
	"github.com/rs/cors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*bhttp.Server, error) {
	pipeline, err := getPipelineFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create pipeline from config")
	}

	maxUploadSize := conf.HTTP.MaxUploadSize

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: conf.HTTP.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})

	options := []bhttp.OptionFunc{
		bhttp.WithAddress(conf.HTTP.Address),
		bhttp.WithBaseURL(conf.HTTP.BaseURL),
		bhttp.WithMount("/api/v1/", corsMiddleware.Handler(api.NewHandler(pipeline, maxUploadSize))),
		bhttp.WithMount("/metrics/", metrics.NewHandler()),
		bhttp.WithMount("/", webui.NewHandler(pipeline, maxUploadSize)),
	}

	if conf.HTTP.MCP.Enabled {
		options = append(options, bhttp.WithMount("/mcp/", mcp.NewHandler(conf.HTTP.BaseURL, "/mcp", pipeline, maxUploadSize)))
	}

	if rateLimit := conf.HTTP.RateLimit; rateLimit.Enabled {
		options = append(options, bhttp.WithMiddlewares(
			ratelimit.Middleware(
				ratelimit.WithTrustHeaders(rateLimit.TrustHeaders),
				ratelimit.WithRate(rateLimit.Interval, rateLimit.MaxBurst),
				ratelimit.WithCache(rateLimit.CacheSize, rateLimit.CacheTTL),
			),
		))
	}

	server := bhttp.NewServer(options...)

	return server, nil
}
