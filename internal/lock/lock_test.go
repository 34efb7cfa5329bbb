package lock

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// fakeFlocker records lock activity for assertions.
type fakeFlocker struct {
	locked   bool
	lockErr  error
	unlocked bool
}

func (f *fakeFlocker) TryLock() (bool, error) {
	return f.locked, f.lockErr
}

func (f *fakeFlocker) Unlock() error {
	f.unlocked = true
	return nil
}

func TestGuard_Do_RunsWorkAndUnlocks(t *testing.T) {
	flocker := &fakeFlocker{locked: true}
	guard := New(flocker)

	ran := false
	err := guard.Do(context.Background(), func() error {
		ran = true
		return nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ran {
		t.Error("work function did not run")
	}
	if !flocker.unlocked {
		t.Error("lock was not released")
	}
}

func TestGuard_Do_BusyLock(t *testing.T) {
	guard := New(&fakeFlocker{locked: false})

	err := guard.Do(context.Background(), func() error {
		t.Error("work function must not run when the lock is busy")
		return nil
	})

	if !errors.Is(err, ErrBusy) {
		t.Errorf("want ErrBusy, got %v", err)
	}
}

func TestGuard_Do_LockError(t *testing.T) {
	cause := fmt.Errorf("flock failed")
	guard := New(&fakeFlocker{lockErr: cause})

	err := guard.Do(context.Background(), func() error { return nil })

	if !errors.Is(err, cause) {
		t.Errorf("want wrapped cause, got %v", err)
	}
}

func TestGuard_Do_WorkErrorPropagatesAndUnlocks(t *testing.T) {
	flocker := &fakeFlocker{locked: true}
	guard := New(flocker)

	cause := fmt.Errorf("write failed")
	err := guard.Do(context.Background(), func() error { return cause })

	if !errors.Is(err, cause) {
		t.Errorf("want work error, got %v", err)
	}
	if !flocker.unlocked {
		t.Error("lock was not released after a work error")
	}
}

func TestGuard_Do_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	guard := New(&fakeFlocker{locked: true})
	err := guard.Do(ctx, func() error {
		t.Error("work function must not run with a cancelled context")
		return nil
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
