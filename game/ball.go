package game

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/breakout/config"
	"github.com/lixenwraith/breakout/vmath"
)

const (
	// maxSubStep caps single-step displacement so collisions cannot be
	// skipped regardless of ball speed
	maxSubStep = 1.0

	// wallMargin keeps the ball from re-triggering a wall it rests against
	wallMargin = 0.1

	// resetLift places the reset ball this far above the paddle rest line
	resetLift = 25.0
)

// Ball owns position, velocity and radius. Radius never changes after
// construction; speed magnitude is conserved across paddle bounces.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64

	maxHorizontal float64
	cfg           *config.Config
	rng           *rand.Rand
}

// NewBall creates the ball at the field center with the base speed aimed up
func NewBall(cfg *config.Config, rng *rand.Rand) *Ball {
	b := &Ball{
		Radius:        cfg.BallRadius(),
		maxHorizontal: cfg.MaxHorizontalSpeed,
		cfg:           cfg,
		rng:           rng,
	}
	b.ResetPosition()
	b.Launch(cfg.BallBaseSpeed)
	return b
}

// MoveOutcome reports what the ball collided with during one tick.
// At most one of PaddleHit / Block is set; sub-stepping stops at the
// first paddle or block contact.
type MoveOutcome struct {
	PaddleHit bool
	HitOffset float64 // normalized [-1,1], valid when PaddleHit
	Block     *Block  // destroyed block, nil when none
}

// substeps returns how many collision checks one tick's movement needs
func substeps(vx, vy float64) int {
	maxMove := math.Max(math.Abs(vx), math.Abs(vy))
	if maxMove == 0 {
		return 0
	}
	return int(math.Ceil(maxMove / maxSubStep))
}

// Move advances the ball by its velocity, sub-stepped so no single step
// exceeds maxSubStep. Per sub-step: position delta, walls, paddle, blocks.
// A paddle or block hit ends the tick early.
func (b *Ball) Move(paddle *Paddle, field *BlockField) MoveOutcome {
	var out MoveOutcome

	steps := substeps(b.VX, b.VY)
	if steps == 0 {
		return out
	}
	dx := b.VX / float64(steps)
	dy := b.VY / float64(steps)

	for i := 0; i < steps; i++ {
		b.X += dx
		b.Y += dy

		b.collideWalls()

		if hit, offset := b.collidePaddle(paddle); hit {
			out.PaddleHit = true
			out.HitOffset = offset
			return out
		}

		if blk := b.collideBlocks(field); blk != nil {
			out.Block = blk
			return out
		}
	}
	return out
}

// collideWalls bounces off left/right/top boundaries. The bounce only
// fires while moving toward the wall; position is pushed out by a margin
// either way. The bottom boundary is the fall sensor, never a bounce.
func (b *Ball) collideWalls() {
	w := b.cfg.Walls

	if b.X < w.Left+b.Radius {
		b.X = w.Left + b.Radius + wallMargin
		if b.VX < 0 {
			b.VX, b.VY = vmath.ReflectAxisX(b.VX, b.VY)
		}
	} else if b.X > w.Right-b.Radius {
		b.X = w.Right - b.Radius - wallMargin
		if b.VX > 0 {
			b.VX, b.VY = vmath.ReflectAxisX(b.VX, b.VY)
		}
	}

	if b.Y > w.Top-b.Radius {
		b.Y = w.Top - b.Radius - wallMargin
		if b.VY > 0 {
			b.VX, b.VY = vmath.ReflectAxisY(b.VX, b.VY)
		}
	}
}

// collidePaddle tests against the paddle box expanded by the radius on the
// vertical axis. On hit the ball is repositioned onto the paddle top and its
// speed redistributed: horizontal share follows the hit offset, vertical
// share is recomputed from the conserved magnitude, always upward.
func (b *Ball) collidePaddle(p *Paddle) (bool, float64) {
	box := p.Bounds()

	if b.Y < box.Bottom()-b.Radius || b.Y > box.Top()+b.Radius {
		return false, 0
	}
	if b.X < box.Left() || b.X > box.Right() {
		return false, 0
	}

	b.Y = box.Top() + b.Radius

	speed := vmath.Magnitude(b.VX, b.VY)
	offset := (b.X - p.X) / (p.Width / 2)

	b.VX = offset * b.maxHorizontal
	// Edge contact at low speed could otherwise exceed the magnitude
	b.VX = vmath.Clamp(b.VX, -speed, speed)
	b.VY = math.Sqrt(speed*speed - b.VX*b.VX)

	return true, offset
}

// collideBlocks runs the circle-vs-rect test against visible blocks and
// resolves the first hit: larger closest-point offset picks the bounce
// axis, the ball is pushed just outside the collided side and the block
// is removed. Only one block is processed per tick.
func (b *Ball) collideBlocks(field *BlockField) *Block {
	for _, blk := range field.blocks {
		if !blk.Visible {
			continue
		}

		box := blk.Bounds()
		hit, dx, dy := box.CircleOverlap(b.X, b.Y, b.Radius)
		if !hit {
			continue
		}

		if math.Abs(dx) > math.Abs(dy) {
			b.VX, b.VY = vmath.ReflectAxisX(b.VX, b.VY)
			if b.X < blk.X {
				b.X = box.Left() - b.Radius
			} else {
				b.X = box.Right() + b.Radius
			}
		} else {
			b.VX, b.VY = vmath.ReflectAxisY(b.VX, b.VY)
			if b.Y < blk.Y {
				b.Y = box.Bottom() - b.Radius
			} else {
				b.Y = box.Top() + b.Radius
			}
		}

		field.Remove(blk)
		return blk
	}
	return nil
}

// Fell reports whether the ball dropped below the bottom wall. Pure
// predicate; the controller owns the resulting transitions.
func (b *Ball) Fell() bool {
	return b.Y < b.cfg.Walls.Bottom
}

// ResetPosition places the ball centered just above the paddle rest line
func (b *Ball) ResetPosition() {
	b.X = 0
	b.Y = b.cfg.PaddleRestY() + resetLift
}

// Launch aims the ball upward at a uniform random angle within 45° of
// vertical with the given speed magnitude
func (b *Ball) Launch(speed float64) {
	angle := (b.rng.Float64()*2 - 1) * math.Pi / 4
	b.VX = speed * math.Sin(angle)
	b.VY = math.Abs(speed * math.Cos(angle))
}

// Reset repositions the ball for a new serve, preserving the prior speed
// magnitude (base speed if at rest)
func (b *Ball) Reset() {
	b.ResetPosition()
	speed := vmath.Magnitude(b.VX, b.VY)
	if speed == 0 {
		speed = b.cfg.BallBaseSpeed
	}
	b.Launch(speed)
}

// Speed returns the current velocity magnitude
func (b *Ball) Speed() float64 {
	return vmath.Magnitude(b.VX, b.VY)
}
