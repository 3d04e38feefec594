package middleware

import (
	"net/http"
	"net/netip"
	"strconv"
	"sync"
	"time"

	apperrors "gallery/pkg/errors"
	httputil "gallery/pkg/http"
	"gallery/pkg/logger"
)

// RouteMatcher selects the requests a limiter applies to.
type RouteMatcher func(r *http.Request) bool

// ClientRateLimiter is a sliding-window limiter keyed by client IP.
type ClientRateLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	limit    int
	window   time.Duration
	match    RouteMatcher
	trusted  []netip.Prefix
	log      *logger.Logger
	now      func() time.Time
	stopCh   chan struct{}
	once     sync.Once
}

// NewClientRateLimiter keys requests by client IP. Forwarding headers count
// only when sent by one of the trusted proxies.
func NewClientRateLimiter(limit int, window time.Duration, match RouteMatcher, trusted []netip.Prefix, log *logger.Logger) *ClientRateLimiter {
	rl := &ClientRateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		match:    match,
		trusted:  trusted,
		log:      log,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

func (rl *ClientRateLimiter) cleanup() {
	ticker := time.NewTicker(cleanupInterval(rl.window))
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			now := rl.now()
			for client, timestamps := range rl.requests {
				if len(timestamps) == 0 || now.Sub(timestamps[len(timestamps)-1]) >= rl.window {
					delete(rl.requests, client)
				}
			}
			rl.mu.Unlock()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *ClientRateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stopCh) })
}

// Allow records a request for client and reports whether it fits the window.
// The second value is how long until the oldest request leaves the window.
func (rl *ClientRateLimiter) Allow(client string) (bool, time.Duration) {
	if client == "" {
		return true, 0
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	valid := rl.requests[client][:0]
	for _, ts := range rl.requests[client] {
		if now.Sub(ts) < rl.window {
			valid = append(valid, ts)
		}
	}

	if len(valid) >= rl.limit {
		rl.requests[client] = valid
		return false, rl.window - now.Sub(valid[0])
	}
	rl.requests[client] = append(valid, now)
	return true, 0
}

func ClientRateLimit(limiter *ClientRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.match != nil && !limiter.match(r) {
				next.ServeHTTP(w, r)
				return
			}

			client := httputil.ClientIP(r, limiter.trusted)
			if ok, retryAfter := limiter.Allow(client); !ok {
				limiter.log.Warn("Rate limit exceeded",
					"request_id", RequestIDFromContext(r.Context()),
					"client_ip", client,
					"path", r.URL.Path,
				)
				w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
				_ = httputil.WriteError(w, apperrors.RateLimited("Too many requests, please try again later"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// MethodPath matches one method on one exact path.
func MethodPath(method, path string) RouteMatcher {
	return func(r *http.Request) bool {
		return r.Method == method && r.URL.Path == path
	}
}
