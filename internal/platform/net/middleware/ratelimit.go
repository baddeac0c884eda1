package middleware

import (
	"net"
	stdhttp "net/http"
	"sync"
	"time"

	perr "staffdir/internal/platform/errors"
	pnet "staffdir/internal/platform/net"
	phttp "staffdir/internal/platform/net/http"

	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client key with lazy expiry of idle entries
type RateLimiter struct {
	limit  rate.Limit
	burst  int
	mu     sync.Mutex
	store  map[string]*limiterEntry
	maxAge time.Duration
}

type limiterEntry struct {
	limiter *rate.Limiter
	updated time.Time
}

// NewRateLimiter builds a per-key limiter allowing reqPerSec sustained with the given burst
func NewRateLimiter(reqPerSec float64, burst int) *RateLimiter {
	return &RateLimiter{
		limit:  rate.Limit(reqPerSec),
		burst:  burst,
		store:  make(map[string]*limiterEntry),
		maxAge: 10 * time.Minute,
	}
}

func (rl *RateLimiter) get(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if entry, ok := rl.store[key]; ok {
		entry.updated = time.Now()
		return entry.limiter
	}

	lim := rate.NewLimiter(rl.limit, rl.burst)
	rl.store[key] = &limiterEntry{limiter: lim, updated: time.Now()}

	for k, entry := range rl.store {
		if time.Since(entry.updated) > rl.maxAge {
			delete(rl.store, k)
		}
	}

	return lim
}

// ByIP limits by remote address and writes the standard JSON envelope on rejection
func (rl *RateLimiter) ByIP() func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}
			if !rl.get(host).Allow() {
				status, wire := perr.HTTP(perr.Newf(perr.ErrorCodeTooManyRequests, "rate limit exceeded"))
				phttp.JSON(w, status, phttp.Envelope{
					StatusCode: status,
					Status:     stdhttp.StatusText(status),
					Code:       wire.Code,
					Error:      wire.Message,
					RequestID:  pnet.RequestID(r.Context()),
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
