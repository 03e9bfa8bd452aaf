package engine

import (
	"container/heap"
	"sync/atomic"
	"time"
)

// Task is a handle to a deferred callback. Cancelling a task prevents it
// from firing; a fired or cancelled task never fires again.
type Task struct {
	deadline  time.Time
	fn        func()
	cancelled atomic.Bool
	seq       uint64 // insertion order, stabilizes equal deadlines
}

// Cancel marks the task so it will not run
func (t *Task) Cancel() {
	t.cancelled.Store(true)
}

// Cancelled reports whether Cancel was called before the task fired
func (t *Task) Cancelled() bool {
	return t.cancelled.Load()
}

// Scheduler runs deferred callbacks on the tick loop, ordered by game-time
// deadline. All methods are called from the single tick goroutine; there is
// no locking discipline beyond the task cancel flag, which input-side code
// may flip.
//
// Deadlines are taken from a pausable Clock, so pending tasks do not burn
// down while the game is paused.
type Scheduler struct {
	clock *Clock
	tasks taskHeap
	seq   uint64
}

// NewScheduler creates a scheduler driven by the given clock
func NewScheduler(clock *Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// After schedules fn to run once the clock has advanced by d
func (s *Scheduler) After(d time.Duration, fn func()) *Task {
	s.seq++
	t := &Task{
		deadline: s.clock.Now().Add(d),
		fn:       fn,
		seq:      s.seq,
	}
	heap.Push(&s.tasks, t)
	return t
}

// RunDue fires every non-cancelled task whose deadline has passed, in
// deadline order. Called once per tick; callbacks may schedule new tasks.
func (s *Scheduler) RunDue() {
	now := s.clock.Now()
	for len(s.tasks) > 0 {
		next := s.tasks[0]
		if next.deadline.After(now) {
			return
		}
		heap.Pop(&s.tasks)
		if !next.cancelled.Load() {
			next.fn()
		}
	}
}

// Pending returns the number of queued tasks, cancelled ones included
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// taskHeap orders tasks by deadline, then insertion order
type taskHeap []*Task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}

func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *taskHeap) Push(x any) { *h = append(*h, x.(*Task)) }

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}
