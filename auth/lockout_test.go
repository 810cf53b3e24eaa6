package auth

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreLocksAfterMaxFailures(t *testing.T) {
	store := NewMemoryAttemptStore()
	ctx := context.Background()

	for i := 0; i < MaxLoginAttempts-1; i++ {
		if _, err := store.RecordFailure(ctx, "1.2.3.4"); err != nil {
			t.Fatalf("RecordFailure returned error: %v", err)
		}
		remaining, err := store.LockedFor(ctx, "1.2.3.4")
		if err != nil {
			t.Fatalf("LockedFor returned error: %v", err)
		}
		if remaining != 0 {
			t.Fatalf("client locked after %d failures, want lock only at %d", i+1, MaxLoginAttempts)
		}
	}

	count, err := store.RecordFailure(ctx, "1.2.3.4")
	if err != nil {
		t.Fatalf("RecordFailure returned error: %v", err)
	}
	if count != MaxLoginAttempts {
		t.Fatalf("expected streak %d, got %d", MaxLoginAttempts, count)
	}

	remaining, err := store.LockedFor(ctx, "1.2.3.4")
	if err != nil {
		t.Fatalf("LockedFor returned error: %v", err)
	}
	if remaining <= 0 || remaining > LockoutWindow {
		t.Fatalf("expected remaining lockout in (0, %s], got %s", LockoutWindow, remaining)
	}
}

func TestMemoryStoreKeysClientsIndependently(t *testing.T) {
	store := NewMemoryAttemptStore()
	ctx := context.Background()

	for i := 0; i < MaxLoginAttempts; i++ {
		store.RecordFailure(ctx, "1.1.1.1")
	}
	if remaining, _ := store.LockedFor(ctx, "2.2.2.2"); remaining != 0 {
		t.Fatal("an unrelated client must not be locked")
	}
}

func TestMemoryStoreResetClearsStreak(t *testing.T) {
	store := NewMemoryAttemptStore()
	ctx := context.Background()

	for i := 0; i < MaxLoginAttempts; i++ {
		store.RecordFailure(ctx, "1.2.3.4")
	}
	if err := store.Reset(ctx, "1.2.3.4"); err != nil {
		t.Fatalf("Reset returned error: %v", err)
	}
	if remaining, _ := store.LockedFor(ctx, "1.2.3.4"); remaining != 0 {
		t.Fatal("reset client must not be locked")
	}
	if count, _ := store.RecordFailure(ctx, "1.2.3.4"); count != 1 {
		t.Fatalf("streak should restart at 1 after reset, got %d", count)
	}
}

func TestMemoryStoreEvictsExpiredEntries(t *testing.T) {
	store := NewMemoryAttemptStore()
	ctx := context.Background()

	now := time.Now()
	store.now = func() time.Time { return now }

	for i := 0; i < MaxLoginAttempts; i++ {
		store.RecordFailure(ctx, "1.2.3.4")
	}
	if remaining, _ := store.LockedFor(ctx, "1.2.3.4"); remaining == 0 {
		t.Fatal("client should be locked before the window elapses")
	}

	store.now = func() time.Time { return now.Add(LockoutWindow + time.Second) }
	if remaining, _ := store.LockedFor(ctx, "1.2.3.4"); remaining != 0 {
		t.Fatal("lock should expire after the window")
	}
	if count, _ := store.RecordFailure(ctx, "1.2.3.4"); count != 1 {
		t.Fatalf("expired streak should restart at 1, got %d", count)
	}
}
