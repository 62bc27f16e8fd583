package lock_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"pawnops/internal/pkg/lock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedMutex_Lock_SerializesSameKey(t *testing.T) {
	m := lock.NewKeyedMutex()
	ctx := context.Background()

	var counter int
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := m.Lock(ctx, 1)
			require.NoError(t, err)
			defer unlock()

			// Read-modify-write without further synchronization; the keyed
			// mutex is the only guard.
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestKeyedMutex_Lock_IndependentKeys(t *testing.T) {
	m := lock.NewKeyedMutex()
	ctx := context.Background()

	unlock1, err := m.Lock(ctx, 1)
	require.NoError(t, err)
	defer unlock1()

	// A different key must not block even while key 1 is held.
	ctx2, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	unlock2, err := m.Lock(ctx2, 2)
	require.NoError(t, err)
	unlock2()
}

func TestKeyedMutex_Lock_ContextExpiry(t *testing.T) {
	m := lock.NewKeyedMutex()

	unlock, err := m.Lock(context.Background(), 7)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = m.Lock(ctx, 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()

	// Lock is acquirable again after release.
	unlock2, err := m.Lock(context.Background(), 7)
	require.NoError(t, err)
	unlock2()
}
