package clock

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestManual(t *testing.T) {
	start := time.Date(2026, time.January, 1, 10, 0, 0, 0, time.UTC)
	m := NewManual(start)

	if err := m.Sleep(context.Background(), 1500*time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.Now(); !got.Equal(start.Add(1500 * time.Millisecond)) {
		t.Fatalf("unexpected now %s", got)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := m.Sleep(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if got := m.Now(); !got.Equal(start.Add(1500 * time.Millisecond)) {
		t.Fatalf("cancelled sleep must not advance the clock, now %s", got)
	}
}

func TestSystemSleepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := (System{}).Sleep(ctx, time.Minute); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
