// Package lock provides advisory file locking for commands that write
// files, so two concurrent memocheck processes cannot clobber each other's
// output.
package lock

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/flock"
)

// ErrBusy is returned when another memocheck process holds the lock.
var ErrBusy = errors.New("another memocheck command is already running")

// Flocker abstracts the subset of flock.Flock used for advisory locking.
type Flocker interface {
	TryLock() (bool, error)
	Unlock() error
}

// Guard serializes file-writing work behind an advisory lock.
type Guard struct {
	flocker Flocker
}

// New creates a Guard from the given Flocker.
func New(f Flocker) *Guard {
	return &Guard{flocker: f}
}

// NewFromPath creates a Guard backed by a lock file at the given path.
func NewFromPath(path string) *Guard {
	return New(flock.New(path))
}

// Do acquires the lock, runs fn, and releases the lock. Acquisition is
// non-blocking: if another process holds the lock, Do fails fast with
// ErrBusy instead of waiting.
func (g *Guard) Do(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ok, err := g.flocker.TryLock()
	if err != nil {
		return fmt.Errorf("acquiring lock: %w", err)
	}
	if !ok {
		return ErrBusy
	}
	defer g.flocker.Unlock()

	return fn()
}
