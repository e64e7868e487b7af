package auction

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (l *keyedLocker) waiting(key uuid.UUID) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if entry, ok := l.entries[key]; ok {
		return len(entry.waiters)
	}
	return 0
}

func (l *keyedLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}

func TestKeyedLocker_MutualExclusion(t *testing.T) {
	locker := newKeyedLocker()
	key := uuid.New()

	var (
		wg      sync.WaitGroup
		inside  int
		maxSeen int
		mu      sync.Mutex
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			unlock, err := locker.Lock(context.Background(), key)
			if !assert.NoError(t, err) {
				return
			}
			defer unlock()

			mu.Lock()
			inside++
			if inside > maxSeen {
				maxSeen = inside
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
	assert.Zero(t, locker.size())
}

func TestKeyedLocker_FIFO(t *testing.T) {
	locker := newKeyedLocker()
	key := uuid.New()

	hold, err := locker.Lock(context.Background(), key)
	require.NoError(t, err)

	const n = 20
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		order []int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			unlock, err := locker.Lock(context.Background(), key)
			if !assert.NoError(t, err) {
				return
			}

			mu.Lock()
			order = append(order, i)
			mu.Unlock()

			unlock()
		}(i)

		require.Eventually(t, func() bool {
			return locker.waiting(key) == i+1
		}, time.Second, time.Millisecond)
	}

	hold()
	wg.Wait()

	require.Len(t, order, n)
	for i := range order {
		assert.Equal(t, i, order[i])
	}
	assert.Zero(t, locker.size())
}

func TestKeyedLocker_KeysAreIndependent(t *testing.T) {
	locker := newKeyedLocker()

	holdA, err := locker.Lock(context.Background(), uuid.New())
	require.NoError(t, err)
	defer holdA()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	unlockB, err := locker.Lock(ctx, uuid.New())
	require.NoError(t, err)
	unlockB()

	assert.Equal(t, 1, locker.size())
}

func TestKeyedLocker_CancelWhileWaiting(t *testing.T) {
	locker := newKeyedLocker()
	key := uuid.New()

	hold, err := locker.Lock(context.Background(), key)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := locker.Lock(ctx, key)
		errCh <- err
	}()

	require.Eventually(t, func() bool { return locker.waiting(key) == 1 }, time.Second, time.Millisecond)
	cancel()

	require.ErrorIs(t, <-errCh, context.Canceled)
	assert.Zero(t, locker.waiting(key))

	hold()
	hold()
	assert.Zero(t, locker.size())

	unlock, err := locker.Lock(context.Background(), key)
	require.NoError(t, err)
	unlock()
}

func TestKeyedLocker_CancelRacingWithRelease(t *testing.T) {
	locker := newKeyedLocker()
	key := uuid.New()

	for i := 0; i < 200; i++ {
		hold, err := locker.Lock(context.Background(), key)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			defer close(done)
			if unlock, err := locker.Lock(ctx, key); err == nil {
				unlock()
			}
		}()

		require.Eventually(t, func() bool { return locker.waiting(key) == 1 }, time.Second, time.Millisecond)

		go cancel()
		hold()
		<-done

		// Whatever the interleaving, the lock must be free again.
		ctx2, cancel2 := context.WithTimeout(context.Background(), time.Second)
		unlock, err := locker.Lock(ctx2, key)
		cancel2()
		require.NoError(t, err)
		unlock()
	}

	assert.Zero(t, locker.size())
}
