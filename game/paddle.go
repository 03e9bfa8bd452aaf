package game

import (
	"sync/atomic"

	"github.com/lixenwraith/breakout/config"
	"github.com/lixenwraith/breakout/vmath"
)

// Paddle owns position, size and the horizontal move-intent flags. The
// flags are atomic because the input side sets them while the tick loop
// reads them; everything else is touched only from the tick.
type Paddle struct {
	X, Y   float64
	Width  float64
	Height float64

	movingLeft  atomic.Bool
	movingRight atomic.Bool

	// Power-down restore bookkeeping. effectGen versions shrink effects so
	// a superseded restore can recognize itself as stale; preEffectWidth is
	// captured once per overlapping run of power-downs.
	restorePending bool
	preEffectWidth float64
	effectGen      uint64

	cfg *config.Config
}

// NewPaddle creates the paddle at its rest position with the initial width
func NewPaddle(cfg *config.Config) *Paddle {
	return &Paddle{
		X:      0,
		Y:      cfg.PaddleRestY(),
		Width:  cfg.ScreenWidth * cfg.PaddleWidthRatio,
		Height: cfg.ScreenHeight * cfg.PaddleHeightRatio,
		cfg:    cfg,
	}
}

// StartMoveLeft sets the left intent flag; motion happens on the next tick
func (p *Paddle) StartMoveLeft() { p.movingLeft.Store(true) }

// StopMoveLeft clears the left intent flag
func (p *Paddle) StopMoveLeft() { p.movingLeft.Store(false) }

// StartMoveRight sets the right intent flag
func (p *Paddle) StartMoveRight() { p.movingRight.Store(true) }

// StopMoveRight clears the right intent flag
func (p *Paddle) StopMoveRight() { p.movingRight.Store(false) }

// MovingLeft reports the left intent flag
func (p *Paddle) MovingLeft() bool { return p.movingLeft.Load() }

// MovingRight reports the right intent flag
func (p *Paddle) MovingRight() bool { return p.movingRight.Load() }

// Tick applies one fixed step per held direction, clamped so the paddle
// edge never crosses a wall
func (p *Paddle) Tick() {
	if p.movingRight.Load() {
		p.step(p.cfg.PaddleStep)
	}
	if p.movingLeft.Load() {
		p.step(-p.cfg.PaddleStep)
	}
}

func (p *Paddle) step(d float64) {
	w := p.cfg.Walls
	p.X = vmath.Clamp(p.X+d, w.Left+p.Width/2, w.Right-p.Width/2)
}

// Bounds returns the paddle's collision box
func (p *Paddle) Bounds() vmath.Rect {
	return vmath.Rect{CX: p.X, CY: p.Y, W: p.Width, H: p.Height}
}

// Resize sets the paddle width; position is untouched
func (p *Paddle) Resize(width float64) {
	p.Width = width
}

// Reposition moves the paddle back to its rest position
func (p *Paddle) Reposition() {
	p.X = 0
	p.Y = p.cfg.PaddleRestY()
}

// ShrinkForLevel reduces the width by 10%, floored at the level minimum
func (p *Paddle) ShrinkForLevel() {
	min := p.cfg.ScreenWidth * p.cfg.PaddleMinWidthRatio
	if next := p.Width * 0.9; next > min {
		p.Resize(next)
	} else {
		p.Resize(min)
	}
}

// BeginPowerDown halves the width, floored at the power-down minimum, and
// returns the generation the matching restore must present. The pre-effect
// width is captured only when no restore is outstanding, so overlapping
// power-downs restore to the width before the first one.
func (p *Paddle) BeginPowerDown() uint64 {
	if !p.restorePending {
		p.preEffectWidth = p.Width
		p.restorePending = true
	}
	p.effectGen++

	floor := p.cfg.ScreenWidth * p.cfg.PaddleFloorRatio
	if next := p.Width * 0.5; next > floor {
		p.Resize(next)
	} else {
		p.Resize(floor)
	}
	return p.effectGen
}

// FinishPowerDown restores the pre-effect width. A stale generation
// (superseded by a later power-down) is a no-op; only the latest restore
// wins, and it wins exactly once.
func (p *Paddle) FinishPowerDown(gen uint64) {
	if !p.restorePending || gen != p.effectGen {
		return
	}
	p.Resize(p.preEffectWidth)
	p.restorePending = false
}

// RestorePending reports whether a power-down restore is outstanding
func (p *Paddle) RestorePending() bool {
	return p.restorePending
}
