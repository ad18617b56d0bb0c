package security

import (
	"sync"
	"time"
)

// ActionKind distinguishes rate limit buckets; bulk operations carry a
// tighter limit than single decisions.
type ActionKind string

const (
	ActionApprove     ActionKind = "approve"
	ActionReject      ActionKind = "reject"
	ActionBulkApprove ActionKind = "bulk_approve"
)

// RateLimiter caps actions per admin per kind within a fixed window. The
// in-memory implementation is single-instance only; multi-instance
// deployments should back this interface with an atomically-updated shared
// store.
type RateLimiter interface {
	// Allow consumes one slot and reports whether the caller is within the
	// limit. A denied call consumes nothing.
	Allow(adminID int32, kind ActionKind, now time.Time) bool
}

// Limits maps action kinds to their per-window cap.
type Limits map[ActionKind]int

type windowCounter struct {
	windowStart time.Time
	count       int
}

type memoryRateLimiter struct {
	mu      sync.Mutex
	window  time.Duration
	limits  Limits
	buckets map[rateKey]*windowCounter
}

type rateKey struct {
	adminID int32
	kind    ActionKind
}

func NewMemoryRateLimiter(window time.Duration, limits Limits) RateLimiter {
	return &memoryRateLimiter{
		window:  window,
		limits:  limits,
		buckets: map[rateKey]*windowCounter{},
	}
}

func (l *memoryRateLimiter) Allow(adminID int32, kind ActionKind, now time.Time) bool {
	limit, ok := l.limits[kind]
	if !ok || limit <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	key := rateKey{adminID: adminID, kind: kind}
	bucket := l.buckets[key]
	if bucket == nil || now.Sub(bucket.windowStart) >= l.window {
		bucket = &windowCounter{windowStart: now}
		l.buckets[key] = bucket
	}
	if bucket.count >= limit {
		return false
	}
	bucket.count++
	return true
}
