package ratelimit

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// Middleware limits the number of requests each client can issue. Only
// methods not listed in Options.ExemptMethods consume tokens, so browsing
// pages stays free while uploads are throttled.
func Middleware(funcs ...OptionFunc) func(http.Handler) http.Handler {
	opts := NewOptions(funcs...)

	limiters := newLimiterStore(opts)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if slices.Contains(opts.ExemptMethods, r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			client := clientAddr(r, opts.TrustHeaders)
			limiter := limiters.Get(client)

			reservation := limiter.Reserve()
			if !reservation.OK() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			if delay := reservation.Delay(); delay > 0 {
				reservation.Cancel()

				slog.WarnContext(r.Context(), "request rate limited", slog.String("client", client), slog.Duration("delay", delay))

				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			tokens := limiter.Tokens()

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(opts.MaxBurst))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(int(math.Max(0, math.Floor(tokens)))))

			// Time needed to refill the bucket
			reset := time.Now()
			if missing := float64(opts.MaxBurst) - tokens; missing > 0 {
				reset = reset.Add(time.Duration(missing * float64(opts.Interval)))
			}

			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

			next.ServeHTTP(w, r)
		})
	}
}

// limiterStore hands out one limiter per client. The lookup and the
// insertion happen under the same lock so concurrent first requests of a
// client share a single bucket.
type limiterStore struct {
	mutex    sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	interval time.Duration
	burst    int
}

func (s *limiterStore) Get(client string) *rate.Limiter {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	limiter, exists := s.limiters.Get(client)
	if !exists {
		limiter = rate.NewLimiter(rate.Every(s.interval), s.burst)
		s.limiters.Add(client, limiter)
	}

	return limiter
}

func newLimiterStore(opts *Options) *limiterStore {
	return &limiterStore{
		limiters: expirable.NewLRU[string, *rate.Limiter](opts.CacheSize, nil, opts.CacheTTL),
		interval: opts.Interval,
		burst:    opts.MaxBurst,
	}
}

func clientAddr(r *http.Request, trustHeaders bool) string {
	if trustHeaders {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			return strings.TrimSpace(first)
		}

		if xri := r.Header.Get("X-Real-Ip"); xri != "" {
			return xri
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}
