package domain

import (
	"sync"
	"time"
)

// Listeners counts the listener calls still running for emitted events. Listeners run on their own goroutines,
// so a process that exits right after a command waits on it first.
var Listeners = new(ListenerTracker)

// ListenerTracker pairs every delivery of an emitted event with the listener call that handles it
type ListenerTracker struct {
	mu        sync.Mutex
	listeners int
	pending   sync.WaitGroup
}

// Register records one more listener. Every tracked event is delivered to each registered listener.
func (t *ListenerTracker) Register() {
	t.mu.Lock()
	t.listeners++
	t.mu.Unlock()
}

// Expect marks the deliveries of one event as pending. Call the returned func if the event is not sent.
func (t *ListenerTracker) Expect() (cancel func()) {
	t.mu.Lock()
	n := t.listeners
	t.mu.Unlock()

	t.pending.Add(n)
	return func() { t.pending.Add(-n) }
}

// Done marks one delivery as handled
func (t *ListenerTracker) Done() {
	t.pending.Done()
}

// Wait blocks until every pending delivery is handled or the timeout passes. It reports whether all of them were
// handled.
func (t *ListenerTracker) Wait(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		t.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}
