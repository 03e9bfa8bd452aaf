package events

import "time"

// EventType represents the type of game event
type EventType int

const (
	// EventPaddleHit signals the ball bounced off the paddle
	// Trigger: Ball.Move paddle resolution
	// Consumer: audio | Payload: *PaddleHitPayload
	EventPaddleHit EventType = iota

	// EventBlockHit signals a block was destroyed
	// Trigger: Ball.Move block resolution
	// Consumer: audio, log | Payload: *BlockHitPayload
	EventBlockHit

	// EventPowerUpCollected signals an extra life was granted
	// Trigger: Controller on PowerUp block destruction
	// Consumer: audio | Payload: *PowerPayload
	EventPowerUpCollected

	// EventPowerDownCollected signals a paddle shrink was applied
	// Trigger: Controller on PowerDown block destruction
	// Consumer: audio | Payload: *PowerPayload
	EventPowerDownCollected

	// EventLifeLost signals the ball fell and a life was deducted
	// Trigger: Controller fall detection
	// Consumer: audio, render (heart flash) | Payload: *LifeLostPayload
	EventLifeLost

	// EventTurnHandoff signals player one is out of lives
	// Trigger: Controller when player one's last life is lost
	// Consumer: log | Payload: *TurnHandoffPayload
	EventTurnHandoff

	// EventLevelCleared signals the block field emptied
	// Trigger: Controller after the last block is destroyed
	// Consumer: audio, log | Payload: *LevelClearedPayload
	EventLevelCleared

	// EventGameOver signals player two is out of lives
	// Trigger: Controller when player two's last life is lost
	// Consumer: audio, log | Payload: *GameOverPayload
	EventGameOver

	eventTypeCount
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
