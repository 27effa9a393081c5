package cache

import (
	"context"
	"testing"
	"time"

	"github.com/lexbr/precedentes/internal/scoring"
)

func TestMemory_HitBeforeTTL(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	clock := ClockFunc(func() time.Time { return now })

	m := NewMemory(5*time.Minute, WithClock(clock))
	ctx := context.Background()

	entry := Entry{
		Results:  []scoring.RankedPrecedent{{Similarity: 0.5}},
		StoredAt: now,
	}
	if err := m.Set(ctx, "k", entry); err != nil {
		t.Fatalf("Set: %v", err)
	}

	now = now.Add(4*time.Minute + 59*time.Second)
	got, ok, err := m.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit at t=4m59s")
	}
	if len(got.Results) != 1 || got.Results[0].Similarity != 0.5 {
		t.Errorf("cached entry mutated: %+v", got)
	}
}

func TestMemory_MissAfterTTL(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	clock := ClockFunc(func() time.Time { return now })

	m := NewMemory(5*time.Minute, WithClock(clock))
	ctx := context.Background()

	if err := m.Set(ctx, "k", Entry{StoredAt: now}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	now = now.Add(5*time.Minute + time.Second)
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Error("expected a miss at t=5m01s")
	}
}

func TestMemory_MissForUnknownKey(t *testing.T) {
	m := NewMemory(5 * time.Minute)
	if _, ok, _ := m.Get(context.Background(), "absent"); ok {
		t.Error("expected a miss for an unknown key")
	}
}

func TestMemory_SetOverwrites(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	clock := ClockFunc(func() time.Time { return now })

	m := NewMemory(5*time.Minute, WithClock(clock))
	ctx := context.Background()

	m.Set(ctx, "k", Entry{Results: []scoring.RankedPrecedent{{Similarity: 0.1}}, StoredAt: now})
	m.Set(ctx, "k", Entry{Results: []scoring.RankedPrecedent{{Similarity: 0.9}}, StoredAt: now})

	got, ok, _ := m.Get(ctx, "k")
	if !ok || got.Results[0].Similarity != 0.9 {
		t.Errorf("expected last write to win, got %+v ok=%v", got, ok)
	}
}

func TestMemory_ZeroTTLFallsBackToDefault(t *testing.T) {
	m := NewMemory(0)
	if m.ttl != DefaultTTL {
		t.Errorf("ttl = %v, want %v", m.ttl, DefaultTTL)
	}
}
