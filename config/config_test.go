package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load with no file: %v", err)
	}

	if cfg.ScreenWidth != 960 || cfg.ScreenHeight != 1024 {
		t.Errorf("screen = %gx%g, want 960x1024", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	if cfg.InitialLives != 3 || cfg.MaxLives != 5 {
		t.Errorf("lives = %d/%d, want 3/5", cfg.InitialLives, cfg.MaxLives)
	}
	if cfg.BaseBlockRows != 8 || cfg.MaxBlockRows != 12 {
		t.Errorf("rows = %d/%d, want 8/12", cfg.BaseBlockRows, cfg.MaxBlockRows)
	}
	if cfg.TickInterval != 20*time.Millisecond {
		t.Errorf("tick = %v, want 20ms", cfg.TickInterval)
	}
	if cfg.PowerDownDelay != 5*time.Second {
		t.Errorf("power-down delay = %v, want 5s", cfg.PowerDownDelay)
	}
	if len(cfg.Palette) != 4 {
		t.Errorf("palette = %v, want four colors", cfg.Palette)
	}
}

func TestLoadDerivedGeometry(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Walls.Left != -480 || cfg.Walls.Right != 480 {
		t.Errorf("horizontal walls = %g/%g, want -480/480", cfg.Walls.Left, cfg.Walls.Right)
	}
	if cfg.Walls.Top != 512 || cfg.Walls.Bottom != -512 {
		t.Errorf("vertical walls = %g/%g, want 512/-512", cfg.Walls.Top, cfg.Walls.Bottom)
	}
	if cfg.BallRadius() != 9.6 {
		t.Errorf("ball radius = %g, want 9.6", cfg.BallRadius())
	}
	if cfg.PaddleRestY() != -460.8 {
		t.Errorf("paddle rest = %g, want -460.8", cfg.PaddleRestY())
	}
}

func TestLoadPropertiesFile(t *testing.T) {
	dir := t.TempDir()
	content := "initialLives=4\nmaxLives=9\nballBaseSpeed=15\npaddleStep=30\n"
	if err := os.WriteFile(filepath.Join(dir, "breakout.properties"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.InitialLives != 4 || cfg.MaxLives != 9 {
		t.Errorf("lives = %d/%d, want overridden 4/9", cfg.InitialLives, cfg.MaxLives)
	}
	if cfg.BallBaseSpeed != 15 {
		t.Errorf("base speed = %g, want 15", cfg.BallBaseSpeed)
	}
	if cfg.PaddleStep != 30 {
		t.Errorf("paddle step = %g, want 30", cfg.PaddleStep)
	}
	// Untouched keys keep their defaults
	if cfg.ScreenWidth != 960 {
		t.Errorf("screen width = %g, want default 960", cfg.ScreenWidth)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Negative screen", "screenWidth=-5\n"},
		{"Zero lives", "initialLives=0\n"},
		{"Lives above max", "initialLives=9\nmaxLives=5\n"},
		{"Rows above max", "baseBlockRows=20\nmaxBlockRows=12\n"},
		{"Power chances above one", "powerDownChance=0.7\npowerUpChance=0.7\n"},
		{"Horizontal cap above base speed", "maxHorizontalSpeed=50\nballBaseSpeed=10\n"},
		{"Zero tick", "tickIntervalMs=0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, "breakout.properties"), []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(dir); err == nil {
				t.Error("invalid configuration accepted")
			}
		})
	}
}
