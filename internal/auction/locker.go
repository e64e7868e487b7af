package auction

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// keyedLocker is a table of FIFO mutexes keyed by auction ID.
// Waiters on one key are granted the lock in arrival order; keys never block each other.
// An entry lives only while someone holds or waits for its key.
type keyedLocker struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*lockEntry
}

type lockEntry struct {
	held    bool
	waiters []chan struct{}
	refs    int
}

func newKeyedLocker() *keyedLocker {
	return &keyedLocker{
		entries: make(map[uuid.UUID]*lockEntry),
	}
}

// Lock blocks until key is held by the caller or ctx is done.
// The returned unlock func is safe to call more than once.
func (l *keyedLocker) Lock(ctx context.Context, key uuid.UUID) (func(), error) {
	l.mu.Lock()
	entry, ok := l.entries[key]
	if !ok {
		entry = &lockEntry{}
		l.entries[key] = entry
	}
	entry.refs++

	if !entry.held {
		entry.held = true
		l.mu.Unlock()
		return l.unlocker(key, entry), nil
	}

	ready := make(chan struct{})
	entry.waiters = append(entry.waiters, ready)
	l.mu.Unlock()

	select {
	case <-ready:
		return l.unlocker(key, entry), nil
	case <-ctx.Done():
	}

	l.mu.Lock()
	select {
	case <-ready:
		// Granted while giving up: pass the lock on to the next waiter.
		l.mu.Unlock()
		l.release(key, entry)
		return nil, ctx.Err()
	default:
	}

	for i, w := range entry.waiters {
		if w == ready {
			entry.waiters = append(entry.waiters[:i], entry.waiters[i+1:]...)
			break
		}
	}
	entry.refs--
	l.mu.Unlock()

	return nil, ctx.Err()
}

func (l *keyedLocker) unlocker(key uuid.UUID, entry *lockEntry) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			l.release(key, entry)
		})
	}
}

func (l *keyedLocker) release(key uuid.UUID, entry *lockEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry.refs--

	if len(entry.waiters) > 0 {
		next := entry.waiters[0]
		entry.waiters = entry.waiters[1:]
		close(next)
		return
	}

	entry.held = false
	if entry.refs == 0 {
		delete(l.entries, key)
	}
}
