// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ClientIdleTTL is how long a client's bucket is kept after its last request
const ClientIdleTTL = 10 * time.Minute

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter keeps one token bucket per client IP, so one caller cannot
// spend the budget of everyone else.
type ClientLimiter struct {
	limit rate.Limit
	burst int

	mu        sync.Mutex
	clients   map[string]*clientBucket
	lastSweep time.Time
}

// NewLimiter returns a per-client limiter allowing perSecond requests with an
// equal burst, or nil when perSecond is not positive
func NewLimiter(perSecond float64) *ClientLimiter {
	if perSecond <= 0 {
		return nil
	}
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	return &ClientLimiter{
		limit:     rate.Limit(perSecond),
		burst:     burst,
		clients:   make(map[string]*clientBucket),
		lastSweep: time.Now(),
	}
}

// Allow reports whether client may make a request now.
func (l *ClientLimiter) Allow(client string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > ClientIdleTTL {
		l.sweep(now)
	}

	b, ok := l.clients[client]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[client] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1)
}

func (l *ClientLimiter) sweep(now time.Time) {
	for client, b := range l.clients {
		if now.Sub(b.lastSeen) > ClientIdleTTL {
			delete(l.clients, client)
		}
	}
	l.lastSweep = now
}

// Limit returns the per-client rate
func (l *ClientLimiter) Limit() rate.Limit { return l.limit }

// Burst returns the per-client burst
func (l *ClientLimiter) Burst() int { return l.burst }

// Clients returns the number of tracked clients
func (l *ClientLimiter) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// WithRateLimit rejects requests with 429 once the caller's bucket runs dry.
// Callers are told apart by GetClientIP. A nil limiter disables limiting.
func WithRateLimit(limiter *ClientLimiter, next http.HandlerFunc) http.HandlerFunc {
	if limiter == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		client := GetClientIP(r)
		if !limiter.Allow(client) {
			slog.Warn("rate limit exceeded", "path", r.URL.Path, "remote", client)
			ErrorResponse(w, http.StatusTooManyRequests, "Too many simulations, slow down")
			return
		}
		next(w, r)
	}
}
