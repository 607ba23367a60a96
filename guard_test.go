package rwlock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type boxed struct {
	a, b int
}

func TestWriteGuard_SetAndPtr(t *testing.T) {
	l := New(boxed{a: 1, b: 2}, PreferWriters, FIFO)

	w, err := l.Write()
	require.NoError(t, err)
	require.Equal(t, boxed{a: 1, b: 2}, w.Value())

	w.Set(boxed{a: 3, b: 4})
	require.Equal(t, boxed{a: 3, b: 4}, w.Value())

	w.Ptr().a = 5
	require.Equal(t, boxed{a: 5, b: 4}, w.Value())
	w.Release()

	r, err := l.Read()
	require.NoError(t, err)
	require.Equal(t, boxed{a: 5, b: 4}, r.Value())
	r.Release()
}

func TestReadGuard_SnapshotIsCopy(t *testing.T) {
	l := New([2]int{7, 8}, PreferReaders, FIFO)

	r, _ := l.Read()
	v := r.Value()
	v[0] = 99
	require.Equal(t, [2]int{7, 8}, r.Value())
	r.Release()
}

func TestReadGuard_ReleaseTwicePanics(t *testing.T) {
	l := New(0, PreferReaders, FIFO)
	g, _ := l.Read()
	g.Release()
	require.PanicsWithValue(t, "rwlock: read guard released twice", g.Release)
}

func TestWriteGuard_ReleaseTwicePanics(t *testing.T) {
	l := New(0, PreferWriters, LIFO)
	g, _ := l.Write()
	g.Release()
	require.PanicsWithValue(t, "rwlock: write guard released twice", g.Release)
}

func TestGuard_UseAfterReleasePanics(t *testing.T) {
	l := New(0, PreferReaders, FIFO)

	r, _ := l.Read()
	r.Release()
	require.Panics(t, func() { r.Value() })

	w, _ := l.Write()
	w.Release()
	require.Panics(t, func() { w.Value() })
	require.Panics(t, func() { w.Set(1) })
	require.Panics(t, func() { w.Ptr() })
}

func TestGuard_ReleaseFromOtherGoroutine(t *testing.T) {
	// Guards are not goroutine-bound: one goroutine may acquire and
	// another release, as with sync.RWMutex.
	l := New(0, PreferWriters, FIFO)
	w, _ := l.Write()

	done := make(chan struct{})
	go func() {
		w.Release()
		close(done)
	}()
	<-done

	r, _ := l.Read()
	r.Release()
}
