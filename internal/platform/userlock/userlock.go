package userlock

import (
	"context"
	"sync"
)

// Manager serializes mutating work per user id. The economy's check-then-append
// purchase and the session commit both run inside Within so no two writers for
// the same user can interleave; different users never contend.
type Manager interface {
	Within(ctx context.Context, userID string, fn func(context.Context) error) error
}

type Keyed struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewKeyed() *Keyed {
	return &Keyed{locks: make(map[string]*sync.Mutex)}
}

func (k *Keyed) Within(ctx context.Context, userID string, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	k.mu.Lock()
	lock, ok := k.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		k.locks[userID] = lock
	}
	k.mu.Unlock()

	lock.Lock()
	defer lock.Unlock()
	return fn(ctx)
}

// Noop runs fn without serialization; used by tests that exercise a single
// caller.
type Noop struct{}

func (Noop) Within(ctx context.Context, _ string, fn func(context.Context) error) error {
	return fn(ctx)
}
