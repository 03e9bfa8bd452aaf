package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundBounce    SoundType = iota // Paddle bounce
	SoundHitBlock                   // Block destroyed
	SoundPowerUp                    // Extra life collected
	SoundPowerDown                  // Paddle shrink triggered
	SoundLifeLost                   // Ball fell below the paddle
	SoundNextLevel                  // Block field cleared
	SoundGameOver                   // Second player out of lives
	SoundTypeCount
)

// String returns the sound name used for logging
func (s SoundType) String() string {
	switch s {
	case SoundBounce:
		return "bounce"
	case SoundHitBlock:
		return "hit_block"
	case SoundPowerUp:
		return "powerup"
	case SoundPowerDown:
		return "powerdown"
	case SoundLifeLost:
		return "life_lost"
	case SoundNextLevel:
		return "next_level"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
