package audio

import (
	"github.com/lixenwraith/breakout/core"
	"github.com/lixenwraith/breakout/events"
)

// Handler routes game events to their sound effects
type Handler struct {
	player Player
}

// NewHandler wraps an audio player as an event handler
func NewHandler(player Player) *Handler {
	return &Handler{player: player}
}

// EventTypes implements events.Handler
func (h *Handler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventPaddleHit,
		events.EventBlockHit,
		events.EventPowerUpCollected,
		events.EventPowerDownCollected,
		events.EventLifeLost,
		events.EventLevelCleared,
		events.EventGameOver,
	}
}

// HandleEvent implements events.Handler
func (h *Handler) HandleEvent(ev events.GameEvent) {
	switch ev.Type {
	case events.EventPaddleHit:
		h.player.Play(core.SoundBounce)
	case events.EventBlockHit:
		h.player.Play(core.SoundHitBlock)
	case events.EventPowerUpCollected:
		h.player.Play(core.SoundPowerUp)
	case events.EventPowerDownCollected:
		h.player.Play(core.SoundPowerDown)
	case events.EventLifeLost:
		h.player.Play(core.SoundLifeLost)
	case events.EventLevelCleared:
		h.player.Play(core.SoundNextLevel)
	case events.EventGameOver:
		h.player.Play(core.SoundGameOver)
	}
}
