// Package rwlock provides a reader-writer lock whose fairness is
// configurable along two independent axes: which waiter class is
// favored when readers and writers contend (Preference), and in which
// order same-class waiters are released (WakeOrder).
//
// The lock owns the value it protects. Access is granted through
// scoped guards returned by Read and Write; releasing the guard
// (typically with defer) is the only way to unlock.
package rwlock

import (
	"sync"
)

// Preference selects which waiter class is favored when both readers
// and writers are contending for the lock.
//
// Fairness is policy-driven, not automatic: either setting can starve
// the disfavored class indefinitely under continuous pressure from the
// favored one. That is the declared trade-off, chosen by the caller.
type Preference int

const (
	// PreferReaders favors shared access:
	//   - Readers wait only while a writer is active.
	//   - Writers wait while a writer is active, a reader is active,
	//     or a reader is waiting.
	PreferReaders Preference = iota

	// PreferWriters favors exclusive access:
	//   - Readers wait while a writer is active or a writer is waiting.
	//   - Writers wait while a writer is active or a reader is active.
	PreferWriters
)

// WakeOrder selects the order in which waiters of the same class are
// released.
type WakeOrder int

const (
	// FIFO releases the longest-waiting ticket first.
	FIFO WakeOrder = iota

	// LIFO releases the most recently queued ticket first.
	LIFO
)

// RWLock protects a value of type T with shared/exclusive semantics.
//
// All bookkeeping (active counters and the two wait queues) forms a
// classic monitor: a single internal mutex serializes every state
// transition, and blocked requests park on per-ticket semaphores,
// re-checking their admission predicate after each wakeup.
//
// Properties:
//   - At most one writer, never concurrent with any reader.
//   - Readers admitted together scale to the full queue depth.
//   - Preference and WakeOrder are fixed at construction.
//
// Recursive acquisition is not supported and will deadlock, exactly as
// with sync.RWMutex. There is no try-acquire and no timed acquire; a
// blocked request cannot be abandoned.
type RWLock[T any] struct {
	_     noCopy
	pref  Preference
	order WakeOrder

	// mu is the monitor mutex. Every field below is read and written
	// only while holding it; the protected value additionally requires
	// a live guard.
	mu      sync.Mutex
	value   T
	readers int  // goroutines currently holding shared access
	writer  bool // whether exclusive access is currently held
	readerQ waitList
	writerQ waitList
}

// New constructs an RWLock that takes ownership of value and applies
// the given preference and wake order for its whole lifetime.
func New[T any](value T, pref Preference, order WakeOrder) *RWLock[T] {
	return &RWLock[T]{
		pref:  pref,
		order: order,
		value: value,
	}
}

// readMustWait reports whether a shared request must keep waiting.
// Caller holds mu.
func (l *RWLock[T]) readMustWait() bool {
	if l.pref == PreferWriters {
		return l.writer || !l.writerQ.empty()
	}
	return l.writer
}

// writeMustWait reports whether an exclusive request must keep waiting.
// Caller holds mu.
func (l *RWLock[T]) writeMustWait() bool {
	if l.pref == PreferWriters {
		return l.writer || l.readers > 0
	}
	return l.writer || l.readers > 0 || !l.readerQ.empty()
}

// Read acquires shared access, blocking while the admission predicate
// for the configured preference holds.
//
// The error is always nil; the result shape exists for uniformity with
// conventional lock APIs. Release the guard exactly once.
func (l *RWLock[T]) Read() (*ReadGuard[T], error) {
	t := &ticket{}
	l.mu.Lock()
	l.readerQ.append(t)
	for l.readMustWait() {
		l.mu.Unlock()
		t.sema.acquire()
		l.mu.Lock()
	}
	l.readerQ.remove(t)
	l.readers++
	l.mu.Unlock()
	return &ReadGuard[T]{lock: l}, nil
}

// Write acquires exclusive access, blocking while the admission
// predicate for the configured preference holds.
//
// The error is always nil; the result shape exists for uniformity with
// conventional lock APIs. Release the guard exactly once.
func (l *RWLock[T]) Write() (*WriteGuard[T], error) {
	t := &ticket{}
	l.mu.Lock()
	l.writerQ.append(t)
	for l.writeMustWait() {
		l.mu.Unlock()
		t.sema.acquire()
		l.mu.Lock()
	}
	l.writerQ.remove(t)
	l.writer = true
	l.mu.Unlock()
	return &WriteGuard[T]{lock: l}, nil
}

func (l *RWLock[T]) releaseRead() {
	l.mu.Lock()
	if l.readers == 0 {
		l.mu.Unlock()
		panic("rwlock: reader count underflow")
	}
	l.readers--
	l.wake()
	l.mu.Unlock()
}

func (l *RWLock[T]) releaseWrite() {
	l.mu.Lock()
	if !l.writer {
		l.mu.Unlock()
		panic("rwlock: release without active writer")
	}
	l.writer = false
	l.wake()
	l.mu.Unlock()
}

// wake runs wake-selection after a release. It consults only the
// preference and the queues, never which guard kind triggered it:
// the favored class goes first, waiting readers are signaled as a
// batch, and writers one at a time (queue head for FIFO, tail for
// LIFO) to keep the single-writer invariant cheap.
//
// A signaled waiter re-checks its predicate under mu before admitting
// itself, so signaling a ticket that ends up waiting again is safe;
// the ticket stays queued and is signaled again on a later release.
// Caller holds mu.
func (l *RWLock[T]) wake() {
	if l.pref == PreferWriters {
		if !l.writerQ.empty() {
			l.signalWriter()
		} else {
			l.readerQ.signalAll(l.order)
		}
		return
	}
	if !l.readerQ.empty() {
		l.readerQ.signalAll(l.order)
	} else if !l.writerQ.empty() {
		l.signalWriter()
	}
}

// signalWriter raises exactly one waiting writer ticket.
// Caller holds mu and has checked that writerQ is non-empty.
func (l *RWLock[T]) signalWriter() {
	if l.order == LIFO {
		l.writerQ.last().sema.release()
		return
	}
	l.writerQ.first().sema.release()
}
