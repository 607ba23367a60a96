package rwlock

// ticket represents one blocked request's pending admission.
// Each Read/Write call that has to wait owns exactly one ticket with its
// own semaphore; tickets are created per request and never reused, so a
// stale credit left on a discarded ticket is harmless.
type ticket struct {
	sema sema
}

// waitList is an ordered sequence of tickets, arrival order first.
// Every access happens under the owning lock's monitor mutex.
type waitList struct {
	tickets []*ticket
}

func (l *waitList) append(t *ticket) {
	l.tickets = append(l.tickets, t)
}

func (l *waitList) empty() bool {
	return len(l.tickets) == 0
}

func (l *waitList) first() *ticket {
	return l.tickets[0]
}

func (l *waitList) last() *ticket {
	return l.tickets[len(l.tickets)-1]
}

// remove deletes t by identity, wherever it sits.
//
// The admitted waiter removes its own ticket, so the slot leaving the
// queue is always the slot whose semaphore was raised. Removing by
// queue position instead would let a wake race desynchronize the queue
// from the set of goroutines actually blocked.
func (l *waitList) remove(t *ticket) {
	for i, c := range l.tickets {
		if c == t {
			l.tickets = append(l.tickets[:i], l.tickets[i+1:]...)
			return
		}
	}
	panic("rwlock: ticket not in wait list")
}

// signalAll raises every waiting ticket, front to back for FIFO and
// back to front for LIFO. All signaled waiters are admitted together,
// so the order only mirrors the configured wake order; it has no
// semantic effect.
func (l *waitList) signalAll(order WakeOrder) {
	if order == FIFO {
		for _, t := range l.tickets {
			t.sema.release()
		}
		return
	}
	for i := len(l.tickets) - 1; i >= 0; i-- {
		l.tickets[i].sema.release()
	}
}
