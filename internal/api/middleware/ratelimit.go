package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/sells-group/learning-loop/internal/metrics"
)

// staleClientAge is how long an idle client's bucket survives before the
// next acquisition prunes it.
const staleClientAge = 3 * time.Minute

// RateLimiter bounds request rates per client using token buckets, one
// bucket per client IP. Marketplace webhook senders retry on 429, so
// rejected events are not lost.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientBucket
	rps     rate.Limit
	burst   int
	nowFunc func() time.Time
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// NewRateLimiter creates a rate limiter with the given per-second rate and
// burst size per client.
func NewRateLimiter(perSecond float64, burst int, opts ...RateLimiterOption) *RateLimiter {
	r := &RateLimiter{
		clients: make(map[string]*clientBucket),
		rps:     rate.Limit(perSecond),
		burst:   burst,
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Allow reports whether the client identified by key may proceed.
func (r *RateLimiter) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.nowFunc()
	r.pruneLocked(now)

	b, ok := r.clients[key]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(r.rps, r.burst)}
		r.clients[key] = b
	}
	b.lastSeen = now

	return b.limiter.Allow()
}

func (r *RateLimiter) pruneLocked(now time.Time) {
	for key, b := range r.clients {
		if now.Sub(b.lastSeen) > staleClientAge {
			delete(r.clients, key)
		}
	}
}

// Middleware returns Echo middleware that rejects over-limit requests with
// 429 Too Many Requests. When path prefixes are given, only matching
// requests are limited.
func (r *RateLimiter) Middleware(prefixes ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !pathMatches(c.Request().URL.Path, prefixes) {
				return next(c)
			}
			if !r.Allow(c.RealIP()) {
				metrics.RateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}

func pathMatches(path string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
