package game

import (
	"math"
	"testing"
)

func TestPaddleMovement(t *testing.T) {
	cfg := testConfig(t)
	p := NewPaddle(cfg)

	p.Tick()
	if p.X != 0 {
		t.Errorf("idle tick moved paddle to %g", p.X)
	}

	p.StartMoveRight()
	p.Tick()
	if p.X != cfg.PaddleStep {
		t.Errorf("X = %g after one right tick, want %g", p.X, cfg.PaddleStep)
	}

	p.StopMoveRight()
	p.StartMoveLeft()
	p.Tick()
	p.Tick()
	if p.X != -cfg.PaddleStep {
		t.Errorf("X = %g after two left ticks, want %g", p.X, -cfg.PaddleStep)
	}

	// Both directions held cancel out
	p.StartMoveRight()
	before := p.X
	p.Tick()
	if p.X != before {
		t.Errorf("X moved to %g with both directions held", p.X)
	}
}

func TestPaddleWallClamp(t *testing.T) {
	cfg := testConfig(t)
	p := NewPaddle(cfg)

	p.StartMoveRight()
	for i := 0; i < 200; i++ {
		p.Tick()
	}
	if want := cfg.Walls.Right - p.Width/2; p.X != want {
		t.Errorf("X = %g pinned at right wall, want %g", p.X, want)
	}

	p.StopMoveRight()
	p.StartMoveLeft()
	for i := 0; i < 200; i++ {
		p.Tick()
	}
	if want := cfg.Walls.Left + p.Width/2; p.X != want {
		t.Errorf("X = %g pinned at left wall, want %g", p.X, want)
	}
}

func TestShrinkForLevel(t *testing.T) {
	cfg := testConfig(t)
	p := NewPaddle(cfg)

	initial := p.Width
	p.ShrinkForLevel()
	if math.Abs(p.Width-initial*0.9) > 1e-9 {
		t.Errorf("width = %g after shrink, want %g", p.Width, initial*0.9)
	}

	// Repeated shrinks stop at the floor
	min := cfg.ScreenWidth * cfg.PaddleMinWidthRatio
	for i := 0; i < 50; i++ {
		p.ShrinkForLevel()
	}
	if p.Width != min {
		t.Errorf("width = %g after many shrinks, want floor %g", p.Width, min)
	}
}

func TestPowerDownHalvesWidth(t *testing.T) {
	cfg := testConfig(t)
	p := NewPaddle(cfg)

	initial := p.Width
	gen := p.BeginPowerDown()
	if math.Abs(p.Width-initial*0.5) > 1e-9 {
		t.Errorf("width = %g after power-down, want %g", p.Width, initial*0.5)
	}
	if !p.RestorePending() {
		t.Error("restore not pending after power-down")
	}

	p.FinishPowerDown(gen)
	if p.Width != initial {
		t.Errorf("width = %g after restore, want %g", p.Width, initial)
	}
	if p.RestorePending() {
		t.Error("restore still pending after it ran")
	}
}

func TestPowerDownFloor(t *testing.T) {
	cfg := testConfig(t)
	p := NewPaddle(cfg)

	floor := cfg.ScreenWidth * cfg.PaddleFloorRatio
	var gen uint64
	for i := 0; i < 10; i++ {
		gen = p.BeginPowerDown()
	}
	if p.Width != floor {
		t.Errorf("width = %g after repeated power-downs, want floor %g", p.Width, floor)
	}

	// Restore returns the width from before the first shrink of the run
	p.FinishPowerDown(gen)
	if want := cfg.ScreenWidth * cfg.PaddleWidthRatio; p.Width != want {
		t.Errorf("width = %g after restore, want %g", p.Width, want)
	}
}

func TestStaleRestoreIsNoOp(t *testing.T) {
	cfg := testConfig(t)
	p := NewPaddle(cfg)

	initial := p.Width
	gen1 := p.BeginPowerDown()
	gen2 := p.BeginPowerDown()

	shrunk := p.Width
	p.FinishPowerDown(gen1)
	if p.Width != shrunk {
		t.Errorf("stale restore changed width to %g", p.Width)
	}

	p.FinishPowerDown(gen2)
	if p.Width != initial {
		t.Errorf("width = %g after latest restore, want %g", p.Width, initial)
	}

	// A second firing of the same generation must not restore again
	p.Resize(5)
	p.FinishPowerDown(gen2)
	if p.Width != 5 {
		t.Errorf("settled restore fired twice, width = %g", p.Width)
	}
}
