package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/breakout/core"
)

const sampleRate = beep.SampleRate(48000)

// Player is the minimal audio interface the game consumes. Fire-and-forget;
// the return value only reports whether a sound was actually started.
type Player interface {
	Play(core.SoundType) bool
	ToggleMute() bool
}

// Engine synthesizes sound effects through the speaker. A failed backend
// leaves the engine disabled and every Play a silent no-op; audio is never
// fatal to the game.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	disabled    atomic.Bool
	muted       atomic.Bool
}

// NewEngine creates an engine; call Initialize before playing
func NewEngine() *Engine {
	return &Engine{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and attaches the mixer. On failure the
// engine flips to disabled and the error is returned for logging only.
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		e.disabled.Store(true)
		return err
	}

	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Close silences the mixer; beep has no speaker teardown beyond this
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	e.mixer.Clear()
	e.initialized = false
}

// Disabled reports whether the backend is unavailable
func (e *Engine) Disabled() bool {
	return e.disabled.Load()
}

// ToggleMute flips the mute flag and returns the new state
func (e *Engine) ToggleMute() bool {
	muted := !e.muted.Load()
	e.muted.Store(muted)
	return muted
}

// Play mixes in the streamer for the given sound id. Unknown ids and a
// disabled or muted engine drop the request.
func (e *Engine) Play(s core.SoundType) bool {
	if e.disabled.Load() || e.muted.Load() {
		return false
	}

	streamer := effectFor(s)
	if streamer == nil {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return false
	}
	speaker.Lock()
	e.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// effectFor builds the synthesized streamer for a sound id
func effectFor(s core.SoundType) beep.Streamer {
	switch s {
	case core.SoundBounce:
		return newTone(sampleRate, 880, 40*time.Millisecond)
	case core.SoundHitBlock:
		return newTone(sampleRate, 1320, 50*time.Millisecond)
	case core.SoundPowerUp:
		return newSweep(sampleRate, 440, 880, 200*time.Millisecond)
	case core.SoundPowerDown:
		return newSweep(sampleRate, 440, 220, 250*time.Millisecond)
	case core.SoundLifeLost:
		return newBuzz(sampleRate, 120, 300*time.Millisecond)
	case core.SoundNextLevel:
		return newSweep(sampleRate, 523, 1046, 350*time.Millisecond)
	case core.SoundGameOver:
		return newSweep(sampleRate, 660, 110, 700*time.Millisecond)
	default:
		return nil
	}
}
