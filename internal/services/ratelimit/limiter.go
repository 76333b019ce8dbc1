package ratelimit

import (
	"sync"
	"time"

	"github.com/breakthecode/server/internal/dependencies/clock"
)

// Window is the sliding window over which actions are counted
const Window = 60 * time.Second

// Default per-window action budgets
const (
	MaxCreatesPerMinute = 5
	MaxJoinsPerMinute   = 10
	MaxGuessesPerMinute = 10
)

// Limiter is an advisory per-connection sliding-window action counter.
// Entries older than the window are pruned lazily on each check; it protects
// against floods but is not a correctness mechanism.
type Limiter struct {
	mu      sync.Mutex
	clock   clock.Clock
	actions map[string][]time.Time
}

// New creates a Limiter using the given clock
func New(clock clock.Clock) *Limiter {
	return &Limiter{
		clock:   clock,
		actions: make(map[string][]time.Time),
	}
}

// Allow records one occurrence of action for key and reports whether the
// count within the window stays at or under max
func (l *Limiter) Allow(key, action string, max int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	cutoff := now.Add(-Window)
	bucket := key + "|" + action

	kept := l.actions[bucket][:0]
	for _, t := range l.actions[bucket] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	kept = append(kept, now)
	l.actions[bucket] = kept

	return len(kept) <= max
}

// Forget drops all state for a key, called when a connection goes away
func (l *Limiter) Forget(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for bucket := range l.actions {
		if len(bucket) > len(key) && bucket[:len(key)] == key && bucket[len(key)] == '|' {
			delete(l.actions, bucket)
		}
	}
}
