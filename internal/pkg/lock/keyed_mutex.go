// Package lock provides a keyed mutual-exclusion primitive used to
// serialize ledger postings per branch.
package lock

import (
	"context"
	"sync"
)

// KeyedMutex serializes critical sections per int64 key. Each key owns an
// independent lock; acquisitions on distinct keys never contend. Keys are
// retained for the lifetime of the mutex, which is acceptable here because
// the key space (branch ids) is small and stable.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[int64]chan struct{}
}

// NewKeyedMutex creates an empty KeyedMutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[int64]chan struct{}),
	}
}

func (m *KeyedMutex) lockChan(key int64) chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch, ok := m.locks[key]
	if !ok {
		ch = make(chan struct{}, 1)
		m.locks[key] = ch
	}
	return ch
}

// Lock acquires the lock for key, waiting until it is free or the context
// is done. On success it returns the unlock function; the caller must
// invoke it exactly once. On context expiry it returns the context error
// and no unlock function.
func (m *KeyedMutex) Lock(ctx context.Context, key int64) (func(), error) {
	ch := m.lockChan(key)

	select {
	case ch <- struct{}{}:
		return func() { <-ch }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
