package input

import (
	"time"

	"github.com/lixenwraith/breakout/game"
)

// DefaultHoldWindow covers the gap between terminal auto-repeat events so
// a held key reads as continuous motion
const DefaultHoldWindow = 150 * time.Millisecond

// Repeater converts press-only terminal input into the paddle's
// edge-triggered start/stop intent API. Terminals deliver no key-release
// events; a press arms a hold window that auto-repeat keeps refreshing,
// and expiry is what calls the stop methods.
type Repeater struct {
	paddle *game.Paddle
	hold   time.Duration

	leftUntil  time.Time
	rightUntil time.Time
}

// NewRepeater wires a repeater to the paddle. A non-positive hold falls
// back to the default window.
func NewRepeater(paddle *game.Paddle, hold time.Duration) *Repeater {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &Repeater{paddle: paddle, hold: hold}
}

// Press starts (or extends) motion in the pressed direction. Wall-clock
// time, not game time: key repeat keeps arriving while paused.
func (r *Repeater) Press(a Action, now time.Time) {
	switch a {
	case ActionMoveLeft:
		r.paddle.StartMoveLeft()
		r.leftUntil = now.Add(r.hold)
	case ActionMoveRight:
		r.paddle.StartMoveRight()
		r.rightUntil = now.Add(r.hold)
	}
}

// Tick expires lapsed hold windows, releasing the paddle intent flags
func (r *Repeater) Tick(now time.Time) {
	if r.paddle.MovingLeft() && now.After(r.leftUntil) {
		r.paddle.StopMoveLeft()
	}
	if r.paddle.MovingRight() && now.After(r.rightUntil) {
		r.paddle.StopMoveRight()
	}
}
