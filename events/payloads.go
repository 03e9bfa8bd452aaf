package events

import "github.com/lixenwraith/breakout/core"

// PaddleHitPayload captures where across the paddle the ball landed
type PaddleHitPayload struct {
	Offset float64 // normalized [-1,1] across the half-width
}

// BlockHitPayload identifies the destroyed block and the crediting player
type BlockHitPayload struct {
	Variant core.BlockVariant
	Player  core.Player
	Row     int
}

// PowerPayload carries the player affected by a power variant effect
type PowerPayload struct {
	Player core.Player
}

// LifeLostPayload carries the player and their remaining lives
type LifeLostPayload struct {
	Player    core.Player
	Remaining int
}

// TurnHandoffPayload carries the player taking over
type TurnHandoffPayload struct {
	Next core.Player
}

// LevelClearedPayload carries the level just finished and the one starting
type LevelClearedPayload struct {
	Cleared int
	Next    int
}

// GameOverPayload reports the final comparison
type GameOverPayload struct {
	Winner core.Player // meaningless when Draw is set
	Score  int
	Draw   bool
}
