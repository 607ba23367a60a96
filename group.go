package rwlock

import (
	"github.com/llxisdsh/pb"
)

// Group manages an unbounded family of independent RWLocks addressed
// by key, all sharing one Preference and WakeOrder. Locks are created
// lazily on first use of a key and live for the lifetime of the group.
//
// Usage:
//
//	g := NewGroup[string, int](PreferWriters, FIFO, nil)
//
//	w, _ := g.Write("counter")
//	*w.Ptr()++
//	w.Release()
//
//	r, _ := g.Read("counter")
//	_ = r.Value()
//	r.Release()
//
// Operations on different keys never contend beyond the map lookup.
type Group[K comparable, T any] struct {
	_     noCopy
	pref  Preference
	order WakeOrder
	init  func(K) T
	m     pb.MapOf[K, *RWLock[T]]
}

// NewGroup constructs a Group. init, when non-nil, supplies the
// initial protected value the first time a key is used; otherwise a
// key's lock starts with the zero value of T.
func NewGroup[K comparable, T any](pref Preference, order WakeOrder, init func(K) T) *Group[K, T] {
	return &Group[K, T]{
		pref:  pref,
		order: order,
		init:  init,
	}
}

// Read acquires shared access to the value stored under key.
func (g *Group[K, T]) Read(key K) (*ReadGuard[T], error) {
	return g.lockFor(key).Read()
}

// Write acquires exclusive access to the value stored under key.
func (g *Group[K, T]) Write(key K) (*WriteGuard[T], error) {
	return g.lockFor(key).Write()
}

// lockFor returns the lock for key, creating it on first use.
func (g *Group[K, T]) lockFor(key K) *RWLock[T] {
	var l *RWLock[T]
	g.m.ProcessEntry(
		key,
		func(e *pb.EntryOf[K, *RWLock[T]]) (*pb.EntryOf[K, *RWLock[T]], *RWLock[T], bool) {
			if e != nil {
				l = e.Value
				return e, l, true
			}
			var v T
			if g.init != nil {
				v = g.init(key)
			}
			l = New(v, g.pref, g.order)
			return &pb.EntryOf[K, *RWLock[T]]{Value: l}, l, false
		},
	)
	return l
}
