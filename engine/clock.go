package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock provides pausable game time. While paused, Now is frozen at the
// pause point; scheduled effects keyed to game time therefore stop counting
// during a pause and resume where they left off.
type Clock struct {
	mu sync.RWMutex

	epoch       time.Time // real time the clock was created
	paused      atomic.Bool
	pauseStart  time.Time     // real time the current pause began
	totalPaused time.Duration // cumulative pause duration
}

// NewClock creates a running clock
func NewClock() *Clock {
	return &Clock{epoch: time.Now()}
}

// Now returns the current game time
func (c *Clock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.paused.Load() {
		// Frozen at the pause point
		return c.pauseStart.Add(-c.totalPaused)
	}
	return time.Now().Add(-c.totalPaused)
}

// Pause stops game time advancement; no-op if already paused
func (c *Clock) Pause() {
	if c.paused.CompareAndSwap(false, true) {
		c.mu.Lock()
		c.pauseStart = time.Now()
		c.mu.Unlock()
	}
}

// Resume continues game time advancement; no-op if not paused
func (c *Clock) Resume() {
	if c.paused.CompareAndSwap(true, false) {
		c.mu.Lock()
		c.totalPaused += time.Since(c.pauseStart)
		c.pauseStart = time.Time{}
		c.mu.Unlock()
	}
}

// IsPaused returns the current pause state
func (c *Clock) IsPaused() bool {
	return c.paused.Load()
}

// TotalPaused returns cumulative pause time, including a pause in progress
func (c *Clock) TotalPaused() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.totalPaused
	if c.paused.Load() && !c.pauseStart.IsZero() {
		total += time.Since(c.pauseStart)
	}
	return total
}
