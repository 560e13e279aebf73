package player

import "sync"

// Scheduler runs callbacks on the single event loop that owns all playback
// state. Audio backends use it to report events raised on their own
// goroutines.
type Scheduler interface {
	Post(fn func())
}

// Loop is a FIFO scheduler that runs callbacks only when drained.
// It stands in for the UI event loop in tests and tools.
type Loop struct {
	mu      sync.Mutex
	pending []func()
}

// NewLoop creates an empty loop.
func NewLoop() *Loop {
	return &Loop{}
}

// Post implements Scheduler.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.pending = append(l.pending, fn)
	l.mu.Unlock()
}

// Drain runs queued callbacks, including ones posted while draining, until
// the queue is empty. Returns the number of callbacks run.
func (l *Loop) Drain() int {
	n := 0
	for {
		l.mu.Lock()
		if len(l.pending) == 0 {
			l.mu.Unlock()
			return n
		}
		fn := l.pending[0]
		l.pending = l.pending[1:]
		l.mu.Unlock()

		fn()
		n++
	}
}

// Pending returns the number of queued callbacks.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}
