package rwlock

import (
	_ "unsafe" // for linkname
)

// sema is a zero-allocation counting semaphore backed directly by the
// runtime's sleep/wakeup primitive (the same one sync.Mutex parks on).
//
// Counting semantics matter here: a release that arrives before the
// matching acquire leaves a credit behind instead of being lost, so a
// waiter that is signaled between two park episodes simply runs one
// extra predicate check.
type sema uint32

func (s *sema) acquire() {
	runtime_semacquire((*uint32)(s))
}

func (s *sema) release() {
	runtime_semrelease((*uint32)(s), false, 0)
}

// nolint:all
//
//go:linkname runtime_semacquire sync.runtime_Semacquire
func runtime_semacquire(s *uint32)

// nolint:all
//
//go:linkname runtime_semrelease sync.runtime_Semrelease
func runtime_semrelease(s *uint32, handoff bool, skipframes int)

// noCopy may be added to structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
//
// Note that it must not be embedded, due to the Lock and Unlock methods.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
