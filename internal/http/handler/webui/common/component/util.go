package component

import (
	"context"

	"github.com/a-h/templ"
	httpCtx "github.com/bornholm/brief/internal/http/context"
)

func BaseURL(ctx context.Context, paths ...string) templ.SafeURL {
	baseURL := httpCtx.BaseURL(ctx)
	return templ.SafeURL(baseURL.JoinPath(paths...).String())
}

func MatchPath(ctx context.Context, path string) bool {
	currentURL := httpCtx.CurrentURL(ctx)
	return currentURL.Path == path
}
