package store

import (
	"errors"
	"sync"
	"time"
)

// ErrLockTimeout is returned when a store call cannot acquire its per-user
// lock in time. An unresolved in-flight call then fails the next caller
// instead of blocking it forever.
var ErrLockTimeout = errors.New("store: timed out waiting for in-flight operation")

// KeyedLock serializes operations per key. Each key owns a one-slot channel
// acting as a mutex with timed acquisition.
type KeyedLock struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

// NewKeyedLock creates an empty keyed lock.
func NewKeyedLock() *KeyedLock {
	return &KeyedLock{slots: make(map[string]chan struct{})}
}

func (l *KeyedLock) slot(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.slots[key]
	if !ok {
		s = make(chan struct{}, 1)
		l.slots[key] = s
	}
	return s
}

// Acquire takes the lock for key, waiting up to timeout. On success it
// returns a release function that must be called exactly once.
func (l *KeyedLock) Acquire(key string, timeout time.Duration) (func(), error) {
	s := l.slot(key)
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case s <- struct{}{}:
		return func() { <-s }, nil
	case <-timer.C:
		return nil, ErrLockTimeout
	}
}
