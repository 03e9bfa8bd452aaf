package game

import (
	"github.com/lixenwraith/breakout/config"
	"github.com/lixenwraith/breakout/core"
)

// Phase is the match state machine position
type Phase int

const (
	// PhaseWaiting shows the turn-start prompt; entered at match start,
	// after a level clear and after the player-one/player-two handoff
	PhaseWaiting Phase = iota

	// PhasePlaying runs the simulation; entered only by an explicit start
	PhasePlaying

	// PhasePaused suspends ticking without resetting any entity
	PhasePaused

	// PhaseGameOver is terminal; the winner screen is up
	PhaseGameOver
)

// String returns the phase name used for logging
func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Match holds scores, lives, the active player, the level counter and the
// phase. Transitions are driven by the controller; Match enforces the
// clamping invariants (lives never exceed max, scores never decrease
// while a player is active).
type Match struct {
	cfg    *config.Config
	phase  Phase
	active core.Player
	level  int
	scores [2]int
	lives  [2]int
}

// NewMatch starts a match waiting for player one's first turn
func NewMatch(cfg *config.Config) *Match {
	return &Match{
		cfg:    cfg,
		phase:  PhaseWaiting,
		active: core.PlayerOne,
		level:  1,
		lives:  [2]int{cfg.InitialLives, cfg.InitialLives},
	}
}

// Phase returns the current state machine position
func (m *Match) Phase() Phase { return m.phase }

// ActivePlayer returns whose turn it is
func (m *Match) ActivePlayer() core.Player { return m.active }

// Level returns the current level counter, starting at 1
func (m *Match) Level() int { return m.level }

// Score returns the given player's score
func (m *Match) Score(p core.Player) int { return m.scores[p.Index()] }

// Lives returns the given player's remaining lives
func (m *Match) Lives(p core.Player) int { return m.lives[p.Index()] }

// AddPoint credits the active player with one point
func (m *Match) AddPoint() {
	m.scores[m.active.Index()]++
}

// RecoverLife grants the player a life, clamped at the maximum.
// Returns false when already at the cap.
func (m *Match) RecoverLife(p core.Player) bool {
	if m.lives[p.Index()] >= m.cfg.MaxLives {
		return false
	}
	m.lives[p.Index()]++
	return true
}

// LoseLife deducts one life and returns the remainder
func (m *Match) LoseLife(p core.Player) int {
	m.lives[p.Index()]--
	return m.lives[p.Index()]
}

// AdvanceLevel increments the level counter; the active player is unchanged
func (m *Match) AdvanceLevel() {
	m.level++
}

// HandOff passes control to player two with a fresh score
func (m *Match) HandOff() {
	m.active = core.PlayerTwo
	m.scores[core.PlayerTwo.Index()] = 0
}

// Winner compares final scores. Draw is true on a tie, in which case the
// reported score is the shared one.
func (m *Match) Winner() (winner core.Player, score int, draw bool) {
	p1 := m.scores[core.PlayerOne.Index()]
	p2 := m.scores[core.PlayerTwo.Index()]
	switch {
	case p1 > p2:
		return core.PlayerOne, p1, false
	case p2 > p1:
		return core.PlayerTwo, p2, false
	default:
		return core.PlayerOne, p1, true
	}
}

// BallSpeed returns the launch speed for the current level
func (m *Match) BallSpeed() float64 {
	return m.cfg.BallBaseSpeed + float64(m.level-1)*m.cfg.BallSpeedIncrement
}
