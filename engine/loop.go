package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// Loop invokes a callback at a fixed wall-clock interval. The interval is
// wall time, not game time: pausing is the callback's concern, the cadence
// never stops.
type Loop struct {
	interval time.Duration
	tick     func()

	running  atomic.Bool
	stop     chan struct{}
	stopOnce sync.Once
}

// NewLoop creates a loop; Run starts it
func NewLoop(interval time.Duration, tick func()) *Loop {
	return &Loop{
		interval: interval,
		tick:     tick,
		stop:     make(chan struct{}),
	}
}

// Run blocks, firing the callback every interval until Stop. Drift from a
// slow callback is absorbed by shortening the following waits; a callback
// that overruns a whole interval rebaselines instead of bursting to catch
// up. A second concurrent Run returns immediately.
func (l *Loop) Run() {
	if !l.running.CompareAndSwap(false, true) {
		return
	}
	defer l.running.Store(false)

	next := time.Now().Add(l.interval)
	timer := time.NewTimer(l.interval)
	defer timer.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-timer.C:
			l.tick()

			// A Stop issued inside the callback must win over a timer
			// that is already due
			select {
			case <-l.stop:
				return
			default:
			}

			next = next.Add(l.interval)
			wait := time.Until(next)
			if wait <= 0 {
				next = time.Now().Add(l.interval)
				wait = l.interval
			}
			timer.Reset(wait)
		}
	}
}

// Stop ends Run. Idempotent and safe from inside the tick callback; the
// loop exits before the next tick fires.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// Running reports whether Run is active
func (l *Loop) Running() bool {
	return l.running.Load()
}
