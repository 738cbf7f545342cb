package ratelimit

import (
	"sync"
	"time"
)

// Limiter enforces a per-identifier submission cooldown. An identifier is
// the submitter email joined with the client IP, so the same person on a
// different network (or a different person behind the same NAT) gets an
// independent window.
type Limiter struct {
	mu       sync.Mutex
	entries  map[string]time.Time
	cooldown time.Duration
	ttl      time.Duration
	now      func() time.Time
}

// NewLimiter creates a limiter with the given cooldown window and entry TTL.
func NewLimiter(cooldown, ttl time.Duration) *Limiter {
	return &Limiter{
		entries:  make(map[string]time.Time),
		cooldown: cooldown,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Allow reports whether a submission for identifier may proceed and, if so,
// records it. The check-and-record is atomic: two near-simultaneous requests
// for the same identifier cannot both be allowed. A denied request does not
// refresh the window.
func (l *Limiter) Allow(identifier string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.purge(now)

	if last, ok := l.entries[identifier]; ok && now.Sub(last) < l.cooldown {
		return false
	}

	l.entries[identifier] = now
	return true
}

// purge drops entries older than the TTL. Caller must hold the mutex.
func (l *Limiter) purge(now time.Time) {
	for id, ts := range l.entries {
		if now.Sub(ts) >= l.ttl {
			delete(l.entries, id)
		}
	}
}

// Reset clears all recorded entries.
func (l *Limiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = make(map[string]time.Time)
}

// Len returns the number of live entries.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// SetClock overrides the time source. Intended for tests.
func (l *Limiter) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}
