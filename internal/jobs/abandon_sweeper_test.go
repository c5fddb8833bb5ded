package jobs

import (
	"errors"
	"testing"
	"time"
)

type mockSweeperStore struct {
	markFn func(cutoff time.Time) (int64, error)
	calls  int
	cutoff time.Time
}

func (m *mockSweeperStore) MarkAbandonedBefore(cutoff time.Time) (int64, error) {
	m.calls++
	m.cutoff = cutoff
	if m.markFn == nil {
		return 0, nil
	}
	return m.markFn(cutoff)
}

func TestRunSweep(t *testing.T) {
	store := &mockSweeperStore{
		markFn: func(time.Time) (int64, error) { return 3, nil },
	}
	sweeper := NewAbandonSweeper(store, &SweeperConfig{
		Schedule: "*/15 * * * *",
		IdleTTL:  2 * time.Hour,
		Enabled:  true,
	})

	if err := sweeper.RunSweep(); err != nil {
		t.Fatalf("RunSweep failed: %v", err)
	}
	if store.calls != 1 {
		t.Fatalf("expected one store call, got %d", store.calls)
	}

	// cutoff must sit roughly one idle TTL in the past
	expected := time.Now().Add(-2 * time.Hour)
	if diff := store.cutoff.Sub(expected); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("unexpected cutoff: %v", store.cutoff)
	}
}

func TestRunSweepPropagatesStoreError(t *testing.T) {
	store := &mockSweeperStore{
		markFn: func(time.Time) (int64, error) { return 0, errors.New("db down") },
	}
	sweeper := NewAbandonSweeper(store, &SweeperConfig{IdleTTL: time.Hour, Enabled: true})

	if err := sweeper.RunSweep(); err == nil {
		t.Fatal("expected error from failing store")
	}
}

func TestStartDisabled(t *testing.T) {
	store := &mockSweeperStore{}
	sweeper := NewAbandonSweeper(store, &SweeperConfig{Enabled: false})

	if err := sweeper.Start(); err != nil {
		t.Fatalf("disabled sweeper must start cleanly: %v", err)
	}
	sweeper.Stop()

	if store.calls != 0 {
		t.Fatalf("disabled sweeper must not sweep, got %d calls", store.calls)
	}
}

func TestStartInvalidSchedule(t *testing.T) {
	sweeper := NewAbandonSweeper(&mockSweeperStore{}, &SweeperConfig{
		Schedule: "not a schedule",
		IdleTTL:  time.Hour,
		Enabled:  true,
	})

	if err := sweeper.Start(); err == nil {
		t.Fatal("expected error for invalid schedule")
	}
}
