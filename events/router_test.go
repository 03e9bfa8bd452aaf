package events

import "testing"

// recordingHandler collects the events routed to it
type recordingHandler struct {
	types    []EventType
	received []GameEvent
}

func (h *recordingHandler) HandleEvent(ev GameEvent) {
	h.received = append(h.received, ev)
}

func (h *recordingHandler) EventTypes() []EventType {
	return h.types
}

func TestRouterDispatch(t *testing.T) {
	q := NewQueue()
	r := NewRouter(q)

	audio := &recordingHandler{types: []EventType{EventPaddleHit, EventBlockHit}}
	logOnly := &recordingHandler{types: []EventType{EventGameOver}}
	r.Register(audio)
	r.Register(logOnly)

	if got := r.HandlerCount(EventPaddleHit); got != 1 {
		t.Errorf("paddle-hit handlers = %d, want 1", got)
	}
	if got := r.HandlerCount(EventLifeLost); got != 0 {
		t.Errorf("life-lost handlers = %d, want 0", got)
	}

	q.Push(GameEvent{Type: EventPaddleHit})
	q.Push(GameEvent{Type: EventGameOver})
	q.Push(GameEvent{Type: EventLifeLost}) // no subscriber, dropped
	q.Push(GameEvent{Type: EventBlockHit})
	r.DispatchAll()

	if len(audio.received) != 2 {
		t.Fatalf("audio handler received %d events, want 2", len(audio.received))
	}
	if audio.received[0].Type != EventPaddleHit || audio.received[1].Type != EventBlockHit {
		t.Error("events delivered out of order")
	}
	if len(logOnly.received) != 1 || logOnly.received[0].Type != EventGameOver {
		t.Errorf("log handler received %v", logOnly.received)
	}

	// Queue drained; a second dispatch delivers nothing new
	r.DispatchAll()
	if len(audio.received) != 2 {
		t.Error("dispatch redelivered consumed events")
	}
}

func TestRouterMultipleHandlersSameType(t *testing.T) {
	q := NewQueue()
	r := NewRouter(q)

	first := &recordingHandler{types: []EventType{EventLifeLost}}
	second := &recordingHandler{types: []EventType{EventLifeLost}}
	r.Register(first)
	r.Register(second)

	q.Push(GameEvent{Type: EventLifeLost})
	r.DispatchAll()

	if len(first.received) != 1 || len(second.received) != 1 {
		t.Errorf("delivery counts = %d, %d, want 1 each", len(first.received), len(second.received))
	}
}
