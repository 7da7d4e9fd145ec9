// Package feed serves the realtime event log to clients: bounded long polls,
// self-terminating streams and snapshots, all driven by a cursor.
//
// Waiting flows repoll the log on a short interval and also wake early when
// the Broadcaster is notified of an append.
package feed

import "sync"

// Broadcaster wakes every waiter at once. It carries no data; a woken waiter
// rereads the log from its own cursor.
//
// Example:
//
//	b := feed.NewBroadcaster()
//	select {
//	case <-b.Wait():
//	    // something was appended
//	case <-time.After(time.Second):
//	}
type Broadcaster struct {
	mu sync.Mutex
	ch chan struct{}
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{ch: make(chan struct{})}
}

// Wait returns a channel closed by the next Notify.
func (b *Broadcaster) Wait() <-chan struct{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ch
}

// Notify releases everyone blocked on a channel from Wait.
func (b *Broadcaster) Notify() {
	b.mu.Lock()
	defer b.mu.Unlock()
	close(b.ch)
	b.ch = make(chan struct{})
}
