package lock

import (
	"context"
	"sync"
	"time"

	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/shared"
)

// MemoryLocker is a keyed mutex for a single process. Entries are dropped
// once nobody holds or waits on them.
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	// Buffered with capacity 1; a send acquires, a receive releases.
	sem  chan struct{}
	refs int
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{locks: make(map[string]*keyedLock)}
}

func (l *MemoryLocker) Acquire(ctx context.Context, key string, timeout time.Duration) (func(), error) {
	kl := l.ref(key)

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	select {
	case kl.sem <- struct{}{}:
	case <-ctx.Done():
		l.unref(key, kl)
		return nil, errs.Mark(errs.Wrap(ctx.Err(), "wait for lock "+key), shared.ErrLockNotAcquired)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-kl.sem
			l.unref(key, kl)
		})
	}, nil
}

func (l *MemoryLocker) ref(key string) *keyedLock {
	l.mu.Lock()
	defer l.mu.Unlock()
	kl, ok := l.locks[key]
	if !ok {
		kl = &keyedLock{sem: make(chan struct{}, 1)}
		l.locks[key] = kl
	}
	kl.refs++
	return kl
}

func (l *MemoryLocker) unref(key string, kl *keyedLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kl.refs--
	if kl.refs == 0 {
		delete(l.locks, key)
	}
}

// held is for tests.
func (l *MemoryLocker) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
