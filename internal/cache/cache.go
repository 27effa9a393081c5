// Package cache provides time-boxed storage for search results, keyed by a
// hash of the query. Entries are created on miss and lazily overwritten on
// the next miss for the same key; nothing is ever explicitly invalidated
// before TTL staleness.
package cache

import (
	"context"
	"time"

	"github.com/lexbr/precedentes/internal/scoring"
)

// DefaultTTL is how long a cached result set stays fresh.
const DefaultTTL = 5 * time.Minute

// Entry is one cached result set with its storage timestamp.
type Entry struct {
	Results  []scoring.RankedPrecedent `json:"results"`
	StoredAt time.Time                 `json:"storedAt"`
}

// Cache is the injectable result cache. Get reports a miss for absent or
// stale entries; Set unconditionally overwrites.
type Cache interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Set(ctx context.Context, key string, entry Entry) error
}

// Clock abstracts time for deterministic TTL tests.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock is the wall-clock Clock used outside tests.
var SystemClock Clock = ClockFunc(time.Now)
