package cache

import (
	"context"
	"sync"
	"time"
)

// Memory is the in-process cache backend: a mutex-guarded map, unbounded in
// entry count, alive for the host process lifetime. Stale entries are not
// reaped; they stay until the next Set for their key overwrites them.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]Entry
	ttl     time.Duration
	clock   Clock
}

// MemoryOption is a functional option for configuring Memory.
type MemoryOption func(*Memory)

// WithClock injects a Clock, used by tests to control TTL expiry.
func WithClock(clock Clock) MemoryOption {
	return func(m *Memory) {
		m.clock = clock
	}
}

// NewMemory creates an in-memory cache with the given TTL. A zero or
// negative ttl falls back to DefaultTTL.
func NewMemory(ttl time.Duration, opts ...MemoryOption) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m := &Memory{
		entries: make(map[string]Entry),
		ttl:     ttl,
		clock:   SystemClock,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get returns the entry for key if it exists and is younger than the TTL.
func (m *Memory) Get(ctx context.Context, key string) (Entry, bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return Entry{}, false, nil
	}
	if m.clock.Now().Sub(entry.StoredAt) >= m.ttl {
		return Entry{}, false, nil
	}
	return entry, true, nil
}

// Set stores the entry, overwriting any previous value. Concurrent writers
// for the same key are not deduplicated; last writer wins.
func (m *Memory) Set(ctx context.Context, key string, entry Entry) error {
	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()
	return nil
}

var _ Cache = (*Memory)(nil)
