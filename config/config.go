package config

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Walls holds the four play-area boundaries in world units.
// Derived once from the screen dimensions; immutable afterwards.
type Walls struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// Config is the immutable game configuration. It is built once at process
// start and passed by reference to every component that needs geometry or
// rules; nothing reads configuration globals at import time.
type Config struct {
	// World geometry (abstract units, not terminal cells)
	ScreenWidth  float64
	ScreenHeight float64
	Walls        Walls

	// Match rules
	InitialLives int
	MaxLives     int

	// Block field
	BaseBlockRows       int
	MaxBlockRows        int
	BlockFootprint      float64 // approximate per-block width incl. margin
	BlockGapRatio       float64 // spacing between blocks, fraction of screen
	BlockHeightRatio    float64
	BlockTopOffsetRatio float64 // first row starts this far below the top
	PowerDownChance     float64
	PowerUpChance       float64
	Palette             []string

	// Ball
	BallSizeRatio      float64 // diameter as fraction of screen width
	BallBaseSpeed      float64
	BallSpeedIncrement float64 // added per level
	MaxHorizontalSpeed float64

	// Paddle
	PaddleWidthRatio    float64
	PaddleHeightRatio   float64
	PaddleMinWidthRatio float64 // level shrink floor
	PaddleFloorRatio    float64 // power-down shrink floor
	PaddleStep          float64 // units moved per tick while a key is held
	BottomMarginRatio   float64 // paddle rest height above the bottom wall

	// Timing
	TickInterval   time.Duration
	PowerDownDelay time.Duration

	// Logging
	LogFile       string
	LogLevel      string
	LogMaxSizeMB  int
	LogMaxBackups int
}

// defaultPalette cycles per block row; indexed by row modulo length.
var defaultPalette = []string{"red", "orange", "green", "yellow"}

func setDefaults(v *viper.Viper) {
	v.SetDefault("screenWidth", 960)
	v.SetDefault("screenHeight", 1024)
	v.SetDefault("initialLives", 3)
	v.SetDefault("maxLives", 5)
	v.SetDefault("baseBlockRows", 8)
	v.SetDefault("maxBlockRows", 12)
	v.SetDefault("blockFootprint", 70)
	v.SetDefault("blockGapRatio", 0.005)
	v.SetDefault("blockHeightRatio", 0.03)
	v.SetDefault("blockTopOffsetRatio", 0.15)
	v.SetDefault("powerDownChance", 0.1)
	v.SetDefault("powerUpChance", 0.1)
	v.SetDefault("ballSizeRatio", 0.02)
	v.SetDefault("ballBaseSpeed", 10)
	v.SetDefault("ballSpeedIncrement", 2)
	v.SetDefault("maxHorizontalSpeed", 10)
	v.SetDefault("paddleWidthRatio", 0.12)
	v.SetDefault("paddleHeightRatio", 0.015)
	v.SetDefault("paddleMinWidthRatio", 0.05)
	v.SetDefault("paddleFloorRatio", 0.04)
	v.SetDefault("paddleStep", 20)
	v.SetDefault("bottomMarginRatio", 0.05)
	v.SetDefault("tickIntervalMs", 20)
	v.SetDefault("powerDownDelayMs", 5000)
	v.SetDefault("logFilename", "breakout.log")
	v.SetDefault("logLevel", "Info")
	v.SetDefault("logMaxSize", 10)
	v.SetDefault("logMaxBackups", 3)
}

// Load reads breakout.properties from the given directory if present and
// returns the resolved configuration. A missing file is not an error; the
// defaults reproduce the reference geometry.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("breakout")
	v.SetConfigType("properties")
	v.AddConfigPath(dir)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		ScreenWidth:         cast.ToFloat64(v.Get("screenWidth")),
		ScreenHeight:        cast.ToFloat64(v.Get("screenHeight")),
		InitialLives:        cast.ToInt(v.Get("initialLives")),
		MaxLives:            cast.ToInt(v.Get("maxLives")),
		BaseBlockRows:       cast.ToInt(v.Get("baseBlockRows")),
		MaxBlockRows:        cast.ToInt(v.Get("maxBlockRows")),
		BlockFootprint:      cast.ToFloat64(v.Get("blockFootprint")),
		BlockGapRatio:       cast.ToFloat64(v.Get("blockGapRatio")),
		BlockHeightRatio:    cast.ToFloat64(v.Get("blockHeightRatio")),
		BlockTopOffsetRatio: cast.ToFloat64(v.Get("blockTopOffsetRatio")),
		PowerDownChance:     cast.ToFloat64(v.Get("powerDownChance")),
		PowerUpChance:       cast.ToFloat64(v.Get("powerUpChance")),
		Palette:             defaultPalette,
		BallSizeRatio:       cast.ToFloat64(v.Get("ballSizeRatio")),
		BallBaseSpeed:       cast.ToFloat64(v.Get("ballBaseSpeed")),
		BallSpeedIncrement:  cast.ToFloat64(v.Get("ballSpeedIncrement")),
		MaxHorizontalSpeed:  cast.ToFloat64(v.Get("maxHorizontalSpeed")),
		PaddleWidthRatio:    cast.ToFloat64(v.Get("paddleWidthRatio")),
		PaddleHeightRatio:   cast.ToFloat64(v.Get("paddleHeightRatio")),
		PaddleMinWidthRatio: cast.ToFloat64(v.Get("paddleMinWidthRatio")),
		PaddleFloorRatio:    cast.ToFloat64(v.Get("paddleFloorRatio")),
		PaddleStep:          cast.ToFloat64(v.Get("paddleStep")),
		BottomMarginRatio:   cast.ToFloat64(v.Get("bottomMarginRatio")),
		TickInterval:        time.Duration(cast.ToInt(v.Get("tickIntervalMs"))) * time.Millisecond,
		PowerDownDelay:      time.Duration(cast.ToInt(v.Get("powerDownDelayMs"))) * time.Millisecond,
		LogFile:             cast.ToString(v.Get("logFilename")),
		LogLevel:            cast.ToString(v.Get("logLevel")),
		LogMaxSizeMB:        cast.ToInt(v.Get("logMaxSize")),
		LogMaxBackups:       cast.ToInt(v.Get("logMaxBackups")),
	}

	if palette := v.GetStringSlice("palette"); len(palette) > 0 {
		cfg.Palette = palette
	}

	cfg.Walls = Walls{
		Left:   -cfg.ScreenWidth / 2,
		Right:  cfg.ScreenWidth / 2,
		Top:    cfg.ScreenHeight / 2,
		Bottom: -cfg.ScreenHeight / 2,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate establishes the invariants the simulation relies on so that no
// runtime geometry check is needed afterwards.
func (c *Config) validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen dimensions must be positive, got %gx%g", c.ScreenWidth, c.ScreenHeight)
	}
	if c.InitialLives <= 0 || c.InitialLives > c.MaxLives {
		return fmt.Errorf("initialLives %d must be in 1..maxLives (%d)", c.InitialLives, c.MaxLives)
	}
	if c.BaseBlockRows <= 0 || c.BaseBlockRows > c.MaxBlockRows {
		return fmt.Errorf("baseBlockRows %d must be in 1..maxBlockRows (%d)", c.BaseBlockRows, c.MaxBlockRows)
	}
	if c.PowerDownChance < 0 || c.PowerUpChance < 0 || c.PowerDownChance+c.PowerUpChance > 1 {
		return fmt.Errorf("power chances must be non-negative and sum to at most 1")
	}
	if c.BallBaseSpeed <= 0 || c.MaxHorizontalSpeed <= 0 {
		return fmt.Errorf("ball speeds must be positive")
	}
	if c.MaxHorizontalSpeed > c.BallBaseSpeed {
		return fmt.Errorf("maxHorizontalSpeed %g exceeds ballBaseSpeed %g; paddle bounce could not conserve speed", c.MaxHorizontalSpeed, c.BallBaseSpeed)
	}
	if c.PaddleFloorRatio > c.PaddleWidthRatio || c.PaddleMinWidthRatio > c.PaddleWidthRatio {
		return fmt.Errorf("paddle floor ratios exceed initial width ratio")
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive")
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("palette must not be empty")
	}
	return nil
}

// BallRadius returns the ball radius derived from the screen width.
func (c *Config) BallRadius() float64 {
	return c.ScreenWidth * c.BallSizeRatio / 2
}

// PaddleRestY returns the paddle's home vertical position.
func (c *Config) PaddleRestY() float64 {
	return c.Walls.Bottom + c.ScreenHeight*c.BottomMarginRatio
}
