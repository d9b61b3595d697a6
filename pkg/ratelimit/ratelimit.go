package ratelimit

import (
	"context"
	"time"

	"go-contact-backend/pkg/logger"
)

// Decision is the outcome of one admission attempt.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
	ResetAt    time.Time
}

// Store counts admissions per key within a fixed window. Incr must be atomic:
// concurrent calls for the same key may never both observe a stale
// under-limit count.
type Store interface {
	// Incr increments the counter for key, opening a new window when none is
	// active, and returns the post-increment count and the window reset time.
	Incr(ctx context.Context, key string, window time.Duration) (int, time.Time, error)
}

// Limiter bounds how many admissions a key gets per window. A primary store
// (Redis) is consulted first when present; on error the in-memory fallback
// takes over so the API stays available (fail-open).
type Limiter struct {
	primary  Store
	fallback *MemoryStore
	limit    int
	window   time.Duration
}

// New creates a limiter allowing limit admissions per window per key.
// primary may be nil, in which case only the in-memory store is used.
func New(limit int, window time.Duration, primary Store) *Limiter {
	return &Limiter{
		primary:  primary,
		fallback: NewMemoryStore(time.Now),
		limit:    limit,
		window:   window,
	}
}

// Admit records one admission attempt for key and decides whether it is
// within the limit.
func (l *Limiter) Admit(ctx context.Context, key string) Decision {
	var (
		count   int
		resetAt time.Time
		err     error
	)

	if l.primary != nil {
		count, resetAt, err = l.primary.Incr(ctx, key, l.window)
		if err != nil {
			if logger.Log != nil {
				logger.Log.Warn("rate limit store unavailable, using in-memory fallback", "error", err)
			}
			count, resetAt, _ = l.fallback.Incr(ctx, key, l.window)
		}
	} else {
		count, resetAt, _ = l.fallback.Incr(ctx, key, l.window)
	}

	if count > l.limit {
		retryAfter := time.Until(resetAt)
		if retryAfter < time.Second {
			retryAfter = time.Second
		}
		return Decision{Allowed: false, Remaining: 0, RetryAfter: retryAfter, ResetAt: resetAt}
	}

	remaining := l.limit - count
	if remaining < 0 {
		remaining = 0
	}
	return Decision{Allowed: true, Remaining: remaining, ResetAt: resetAt}
}

// Limit returns the configured maximum admissions per window.
func (l *Limiter) Limit() int {
	return l.limit
}

// Close releases the limiter's background resources.
func (l *Limiter) Close() {
	l.fallback.Close()
}
