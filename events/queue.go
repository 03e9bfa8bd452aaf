package events

import "sync/atomic"

const (
	// queueSize must be a power of two for mask arithmetic
	queueSize = 256
	queueMask = queueSize - 1
)

// Queue is a lock-free MPSC ring buffer for game events
// Thread-Safety:
//   - Push: lock-free CAS, multiple producers OK
//   - Consume: single consumer (the tick loop)
//   - Published flags prevent reading partial writes
//
// Overflow: oldest events are overwritten when full
type Queue struct {
	events    [queueSize]GameEvent
	published [queueSize]atomic.Bool // true = slot fully written
	head      atomic.Uint64          // read index
	tail      atomic.Uint64          // write index
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push adds an event using CAS with published flags, O(1) amortized
func (q *Queue) Push(event GameEvent) {
	for {
		tail := q.tail.Load()
		if !q.tail.CompareAndSwap(tail, tail+1) {
			continue
		}
		idx := tail & queueMask

		q.events[idx] = event
		q.published[idx].Store(true) // must follow the write

		// Advance head if overwriting unread events
		head := q.head.Load()
		if tail+1-head > queueSize {
			q.head.CompareAndSwap(head, tail+1-queueSize)
		}
		return
	}
}

// Consume returns all pending events in FIFO order and advances head.
// Single-consumer design; published flags guard incomplete writers.
func (q *Queue) Consume() []GameEvent {
	for {
		head := q.head.Load()
		tail := q.tail.Load()

		if tail == head {
			return nil
		}

		available := tail - head
		if available > queueSize {
			available = queueSize
			head = tail - queueSize
		}

		out := make([]GameEvent, 0, available)
		for i := uint64(0); i < available; i++ {
			idx := (head + i) & queueMask
			if !q.published[idx].Load() {
				break // writer incomplete
			}
			out = append(out, q.events[idx])
			q.published[idx].Store(false)
		}

		if q.head.CompareAndSwap(head, head+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}
