package client

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// RetryAfterTransport replays requests rejected with a 429 status once the
// delay announced by the server has elapsed.
type RetryAfterTransport struct {
	Base        http.RoundTripper
	MaxRetries  int
	DefaultWait time.Duration
}

// RoundTrip implements http.RoundTripper. The caller's request is never
// modified, retries are sent on clones with a body obtained from GetBody.
func (t *RetryAfterTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Base
	if transport == nil {
		transport = http.DefaultTransport
	}

	ctx := req.Context()
	attemptReq := req

	for attempt := 0; ; attempt++ {
		res, err := transport.RoundTrip(attemptReq)
		if err != nil {
			return nil, err
		}

		if res.StatusCode != http.StatusTooManyRequests || attempt >= t.MaxRetries {
			return res, nil
		}

		if req.Body != nil && req.Body != http.NoBody && req.GetBody == nil {
			return res, nil
		}

		wait := t.waitTime(res)

		if _, err := io.Copy(io.Discard, res.Body); err != nil {
			slog.DebugContext(ctx, "could not drain rate limited response", slog.Any("error", errors.WithStack(err)))
		}

		if err := res.Body.Close(); err != nil {
			slog.DebugContext(ctx, "could not close rate limited response", slog.Any("error", errors.WithStack(err)))
		}

		slog.WarnContext(ctx, "request rate limited, waiting before retry",
			slog.Duration("wait", wait),
			slog.Int("attempt", attempt+1),
			slog.Int("max_retries", t.MaxRetries),
		)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		attemptReq = req.Clone(ctx)

		if req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, errors.Wrap(err, "could not rewind request body")
			}
			attemptReq.Body = body
		}
	}
}

func (t *RetryAfterTransport) waitTime(res *http.Response) time.Duration {
	if retryAfter := res.Header.Get("Retry-After"); retryAfter != "" {
		if seconds, err := strconv.Atoi(retryAfter); err == nil {
			return time.Duration(seconds) * time.Second
		}

		if date, err := http.ParseTime(retryAfter); err == nil {
			if wait := time.Until(date); wait > 0 {
				return wait
			}
		}
	}

	return t.DefaultWait
}

var _ http.RoundTripper = &RetryAfterTransport{}
