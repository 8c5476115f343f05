package repository

import (
	"context"
	"sync"

	"github.com/AzielCF/az-access/access/domain"
)

type keyLock struct {
	ch   chan struct{}
	refs int
}

// MemoryKeyLocker serializes callers per grant key inside one process.
// Entries are dropped once nobody holds or waits on them.
type MemoryKeyLocker struct {
	mu    sync.Mutex
	locks map[domain.GrantKey]*keyLock
}

func NewMemoryKeyLocker() *MemoryKeyLocker {
	return &MemoryKeyLocker{locks: make(map[domain.GrantKey]*keyLock)}
}

func (l *MemoryKeyLocker) Lock(ctx context.Context, key domain.GrantKey) (func(), error) {
	l.mu.Lock()
	kl, ok := l.locks[key]
	if !ok {
		kl = &keyLock{ch: make(chan struct{}, 1)}
		l.locks[key] = kl
	}
	kl.refs++
	l.mu.Unlock()

	select {
	case kl.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(key, kl)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-kl.ch
			l.release(key, kl)
		})
	}, nil
}

func (l *MemoryKeyLocker) release(key domain.GrantKey, kl *keyLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kl.refs--
	if kl.refs == 0 {
		delete(l.locks, key)
	}
}

// Size returns the number of keys currently tracked.
func (l *MemoryKeyLocker) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
