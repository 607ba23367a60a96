package rwlock

import (
	"sync/atomic"
)

// ReadGuard grants shared access to the protected value for as long as
// it is live. It is returned by RWLock.Read and must be released
// exactly once, typically with defer:
//
//	g, _ := l.Read()
//	defer g.Release()
//	v := g.Value()
//
// A second Release panics, as does any access through a released
// guard. Guards are not meant to be shared between goroutines.
type ReadGuard[T any] struct {
	lock     *RWLock[T]
	released atomic.Bool
}

// Value returns a snapshot of the protected value. No writer can be
// active while the guard is live, so the copy is consistent.
func (g *ReadGuard[T]) Value() T {
	if g.released.Load() {
		panic("rwlock: use of released read guard")
	}
	return g.lock.value
}

// Release ends shared access and runs wake-selection on the lock.
func (g *ReadGuard[T]) Release() {
	if !g.released.CompareAndSwap(false, true) {
		panic("rwlock: read guard released twice")
	}
	g.lock.releaseRead()
}

// WriteGuard grants exclusive access to the protected value for as
// long as it is live. It is returned by RWLock.Write and must be
// released exactly once, typically with defer.
//
// A second Release panics, as does any access through a released
// guard.
type WriteGuard[T any] struct {
	lock     *RWLock[T]
	released atomic.Bool
}

// Value returns a copy of the protected value.
func (g *WriteGuard[T]) Value() T {
	if g.released.Load() {
		panic("rwlock: use of released write guard")
	}
	return g.lock.value
}

// Set replaces the protected value.
func (g *WriteGuard[T]) Set(v T) {
	if g.released.Load() {
		panic("rwlock: use of released write guard")
	}
	g.lock.value = v
}

// Ptr returns the address of the protected value for in-place
// mutation. The pointer is valid only while the guard is live;
// touching it after Release races with later acquirers.
func (g *WriteGuard[T]) Ptr() *T {
	if g.released.Load() {
		panic("rwlock: use of released write guard")
	}
	return &g.lock.value
}

// Release ends exclusive access and runs wake-selection on the lock.
func (g *WriteGuard[T]) Release() {
	if !g.released.CompareAndSwap(false, true) {
		panic("rwlock: write guard released twice")
	}
	g.lock.releaseWrite()
}
