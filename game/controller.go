package game

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/breakout/config"
	"github.com/lixenwraith/breakout/core"
	"github.com/lixenwraith/breakout/engine"
	"github.com/lixenwraith/breakout/events"
)

// Controller owns the entities for their whole lifetime and drives them
// each tick: advance the ball, check block-clear, check ball-fall, react.
// Outcomes leave as events on the queue; collaborators (audio, render,
// logging) subscribe through the router.
type Controller struct {
	cfg   *config.Config
	clock *engine.Clock
	sched *engine.Scheduler
	queue *events.Queue
	log   logrus.FieldLogger

	ball   *Ball
	paddle *Paddle
	field  *BlockField
	match  *Match

	// Outstanding power-down restore; superseded tasks are cancelled so
	// only the latest restore wins
	powerDownRestore *engine.Task
}

// NewController builds the entity graph. The rng is shared by ball launch
// angles and block variant draws so a fixed seed reproduces a whole game.
func NewController(cfg *config.Config, clock *engine.Clock, sched *engine.Scheduler, queue *events.Queue, log logrus.FieldLogger, rng *rand.Rand) *Controller {
	return &Controller{
		cfg:    cfg,
		clock:  clock,
		sched:  sched,
		queue:  queue,
		log:    log,
		ball:   NewBall(cfg, rng),
		paddle: NewPaddle(cfg),
		field:  NewBlockField(cfg, rng),
		match:  NewMatch(cfg),
	}
}

// Ball returns the ball entity
func (c *Controller) Ball() *Ball { return c.ball }

// Paddle returns the paddle entity
func (c *Controller) Paddle() *Paddle { return c.paddle }

// Field returns the block field
func (c *Controller) Field() *BlockField { return c.field }

// Match returns the match state
func (c *Controller) Match() *Match { return c.match }

// Tick runs one 20ms simulation step. Outside PhasePlaying it is a no-op;
// pausing suspends the simulation without resetting anything.
func (c *Controller) Tick() {
	if c.match.phase != PhasePlaying {
		return
	}

	c.paddle.Tick()

	out := c.ball.Move(c.paddle, c.field)
	if out.PaddleHit {
		c.emit(events.EventPaddleHit, &events.PaddleHitPayload{Offset: out.HitOffset})
	}
	if out.Block != nil {
		c.blockHit(out.Block)
	}

	if c.field.Empty() {
		c.levelCleared()
		return
	}

	if c.ball.Fell() {
		c.ballFell()
	}
}

// blockHit credits the active player and applies the power variant effect
func (c *Controller) blockHit(b *Block) {
	c.match.AddPoint()
	c.emit(events.EventBlockHit, &events.BlockHitPayload{
		Variant: b.Variant,
		Player:  c.match.active,
		Row:     b.Row,
	})

	switch b.Variant {
	case core.VariantPowerUp:
		c.match.RecoverLife(c.match.active)
		c.emit(events.EventPowerUpCollected, &events.PowerPayload{Player: c.match.active})
	case core.VariantPowerDown:
		c.applyPowerDown()
		c.emit(events.EventPowerDownCollected, &events.PowerPayload{Player: c.match.active})
	}
}

// applyPowerDown shrinks the paddle and schedules the width restore on the
// pausable clock. A restore still in flight is cancelled; the generation
// check on the paddle side makes a stale firing harmless either way.
func (c *Controller) applyPowerDown() {
	if c.powerDownRestore != nil {
		c.powerDownRestore.Cancel()
	}
	gen := c.paddle.BeginPowerDown()
	c.powerDownRestore = c.sched.After(c.cfg.PowerDownDelay, func() {
		c.paddle.FinishPowerDown(gen)
	})
}

// levelCleared advances the level and parks the match until the same
// player starts the next turn
func (c *Controller) levelCleared() {
	cleared := c.match.level
	c.match.AdvanceLevel()
	c.match.phase = PhaseWaiting
	c.emit(events.EventLevelCleared, &events.LevelClearedPayload{
		Cleared: cleared,
		Next:    c.match.level,
	})
	c.log.WithFields(logrus.Fields{
		"level":  c.match.level,
		"player": c.match.active,
	}).Info("level cleared")
}

// ballFell deducts a life and runs the turn/game-over transitions
func (c *Controller) ballFell() {
	p := c.match.active
	remaining := c.match.LoseLife(p)
	c.emit(events.EventLifeLost, &events.LifeLostPayload{Player: p, Remaining: remaining})

	if remaining > 0 {
		c.paddle.Reposition()
		c.ball.Reset()
		return
	}

	if p == core.PlayerOne {
		c.match.HandOff()
		c.field.Clear()
		c.match.phase = PhaseWaiting
		c.emit(events.EventTurnHandoff, &events.TurnHandoffPayload{Next: core.PlayerTwo})
		c.log.Info("player one out of lives, handing off")
		return
	}

	c.match.phase = PhaseGameOver
	winner, score, draw := c.match.Winner()
	c.emit(events.EventGameOver, &events.GameOverPayload{Winner: winner, Score: score, Draw: draw})
	c.log.WithFields(logrus.Fields{
		"winner": winner,
		"score":  score,
		"draw":   draw,
	}).Info("game over")
}

// StartTurn leaves PhaseWaiting: regenerate blocks for the current level,
// relaunch the ball at the level speed, shrink the paddle one notch and
// start playing. No-op in any other phase, so holding space is harmless.
func (c *Controller) StartTurn() {
	if c.match.phase != PhaseWaiting {
		return
	}

	c.paddle.Reposition()
	c.field.GenerateRows(c.match.level)
	c.ball.ResetPosition()
	c.ball.Launch(c.match.BallSpeed())
	c.paddle.ShrinkForLevel()

	c.match.phase = PhasePlaying
	c.log.WithFields(logrus.Fields{
		"level":  c.match.level,
		"player": c.match.active,
		"blocks": c.field.Count(),
	}).Info("turn started")
}

// TogglePause flips Playing/Paused and the game clock with it. Entities
// are untouched; pending power-down timers freeze along with the clock.
func (c *Controller) TogglePause() {
	switch c.match.phase {
	case PhasePlaying:
		c.match.phase = PhasePaused
		c.clock.Pause()
	case PhasePaused:
		c.match.phase = PhasePlaying
		c.clock.Resume()
	}
}

func (c *Controller) emit(t events.EventType, payload any) {
	c.queue.Push(events.GameEvent{
		Type:      t,
		Payload:   payload,
		Timestamp: c.clock.Now(),
	})
}
