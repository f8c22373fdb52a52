// Package upstream holds the shared HTTP plumbing of the outbound API clients.
package upstream

import (
	"context"
	"strconv"
	"sync"
	"time"

	"leadforge/internal/errors"

	"golang.org/x/time/rate"
)

// ErrBackoff is returned by Wait while a 429 backoff window is open.
var ErrBackoff = errors.New("upstream backoff window open")

// defaultBackoff applies when a 429 carries no usable Retry-After.
const defaultBackoff = 60 * time.Second

// RateLimiter is a token bucket with a backoff window set by 429 responses.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	retryAt time.Time
}

// NewRateLimiter allows requestsPerSecond sustained with the given burst.
// A non-positive rate disables limiting.
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	if burst < 1 {
		burst = 1
	}

	return &RateLimiter{limiter: rate.NewLimiter(limit, burst)}
}

// Wait blocks until the token bucket admits a request or ctx is done.
// It fails immediately with ErrBackoff while a backoff window is open.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if until := time.Until(retryAt); until > 0 {
		return errors.Wrapf(ErrBackoff, "retry in %s", until.Round(time.Second))
	}

	return r.limiter.Wait(ctx)
}

// RecordRateLimited starts a backoff window from a Retry-After header value in seconds.
func (r *RateLimiter) RecordRateLimited(retryAfter string) {
	backoff := defaultBackoff
	if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds > 0 {
		backoff = time.Duration(seconds) * time.Second
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.retryAt = time.Now().Add(backoff)
}
