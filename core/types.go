package core

// Player identifies one of the two local players
type Player int

const (
	PlayerOne Player = 1
	PlayerTwo Player = 2
)

// Index returns the zero-based slot for score/lives arrays
func (p Player) Index() int {
	return int(p) - 1
}

// String returns the display name
func (p Player) String() string {
	if p == PlayerTwo {
		return "Player 2"
	}
	return "Player 1"
}

// BlockVariant tags a block with its power effect, decided at creation time
type BlockVariant int

const (
	VariantNormal BlockVariant = iota
	VariantPowerUp
	VariantPowerDown
)

// String returns the variant name used for logging
func (v BlockVariant) String() string {
	switch v {
	case VariantPowerUp:
		return "powerup"
	case VariantPowerDown:
		return "powerdown"
	default:
		return "normal"
	}
}
