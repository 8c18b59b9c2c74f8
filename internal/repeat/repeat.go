// Package repeat fires a callback repeatedly while a button is held.
package repeat

import (
	"sync"
	"time"
)

const (
	DefaultDelay    = 200 * time.Millisecond
	DefaultInterval = 100 * time.Millisecond
)

// Repeater calls a function once after Delay and then every Interval until
// stopped. The function runs on the repeater's own goroutine; callers that
// need single-threaded access post an event back to their loop from it.
type Repeater struct {
	Delay    time.Duration
	Interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// New returns a repeater with the given timings. Non-positive values fall
// back to the defaults.
func New(delay, interval time.Duration) *Repeater {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Repeater{Delay: delay, Interval: interval}
}

// Start begins firing fn. A run already in progress is stopped first.
func (r *Repeater) Start(fn func()) {
	r.Stop()

	r.mu.Lock()
	defer r.mu.Unlock()
	stop := make(chan struct{})
	done := make(chan struct{})
	r.stop, r.done = stop, done
	go run(fn, r.Delay, r.Interval, stop, done)
}

// Stop halts the current run and waits for it to exit. After Stop returns fn
// will not be called again.
func (r *Repeater) Stop() {
	r.mu.Lock()
	stop, done := r.stop, r.done
	r.stop, r.done = nil, nil
	r.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// Running reports whether a run is in progress.
func (r *Repeater) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stop != nil
}

func run(fn func(), delay, interval time.Duration, stop, done chan struct{}) {
	defer close(done)
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-stop:
		return
	case <-timer.C:
	}
	fn()

	tick := time.NewTicker(interval)
	defer tick.Stop()
	for {
		select {
		case <-stop:
			return
		case <-tick.C:
			fn()
		}
	}
}
