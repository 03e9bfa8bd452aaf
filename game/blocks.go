package game

import (
	"math/rand"

	"github.com/lixenwraith/breakout/config"
	"github.com/lixenwraith/breakout/core"
	"github.com/lixenwraith/breakout/vmath"
)

// Block is one destructible rectangle. A block whose Visible flag has been
// cleared never collides again.
type Block struct {
	X, Y    float64
	Width   float64
	Height  float64
	Variant core.BlockVariant
	Row     int // palette index is Row modulo palette length
	Visible bool
}

// Bounds returns the block's collision box
func (b *Block) Bounds() vmath.Rect {
	return vmath.Rect{CX: b.X, CY: b.Y, W: b.Width, H: b.Height}
}

// BlockField owns the destructible block collection for the current level.
// Generation is a pure construction step; no collision state carries over
// between levels.
type BlockField struct {
	cfg    *config.Config
	rng    *rand.Rand
	blocks []*Block
}

// NewBlockField creates an empty field
func NewBlockField(cfg *config.Config, rng *rand.Rand) *BlockField {
	return &BlockField{cfg: cfg, rng: rng}
}

// GenerateRows clears the field and lays out the rows for the given level.
// Row count is baseRows plus one per level past the first, capped; columns
// fill the screen width at the configured per-block footprint with fixed
// gaps. Each block draws its power variant independently.
func (f *BlockField) GenerateRows(level int) {
	f.Clear()

	rows := f.cfg.BaseBlockRows + (level - 1)
	if rows > f.cfg.MaxBlockRows {
		rows = f.cfg.MaxBlockRows
	}

	screenW := f.cfg.ScreenWidth
	screenH := f.cfg.ScreenHeight

	gapX := screenW * f.cfg.BlockGapRatio
	gapY := screenH * f.cfg.BlockGapRatio

	cols := int(screenW / f.cfg.BlockFootprint)
	blockW := (screenW - float64(cols-1)*gapX) / float64(cols)
	blockH := screenH * f.cfg.BlockHeightRatio

	startX := -screenW/2 + blockW/2
	startY := screenH/2 - screenH*f.cfg.BlockTopOffsetRatio

	for row := 0; row < rows; row++ {
		y := startY - float64(row)*(blockH+gapY)
		for col := 0; col < cols; col++ {
			f.blocks = append(f.blocks, &Block{
				X:       startX + float64(col)*(blockW+gapX),
				Y:       y,
				Width:   blockW,
				Height:  blockH,
				Variant: f.drawVariant(),
				Row:     row,
				Visible: true,
			})
		}
	}
}

// drawVariant rolls the block's power tag: cumulative thresholds give
// PowerDown then PowerUp their configured shares, the rest is Normal
func (f *BlockField) drawVariant() core.BlockVariant {
	chance := f.rng.Float64()
	switch {
	case chance < f.cfg.PowerDownChance:
		return core.VariantPowerDown
	case chance < f.cfg.PowerDownChance+f.cfg.PowerUpChance:
		return core.VariantPowerUp
	default:
		return core.VariantNormal
	}
}

// Remove hides the block and drops it from the active collection
func (f *BlockField) Remove(b *Block) {
	b.Visible = false
	for i, blk := range f.blocks {
		if blk == b {
			f.blocks = append(f.blocks[:i], f.blocks[i+1:]...)
			return
		}
	}
}

// Blocks returns the live collection; callers must not mutate it
func (f *BlockField) Blocks() []*Block {
	return f.blocks
}

// Count returns the number of remaining blocks
func (f *BlockField) Count() int {
	return len(f.blocks)
}

// Empty reports whether the field has been cleared
func (f *BlockField) Empty() bool {
	return len(f.blocks) == 0
}

// Clear hides and drops all blocks
func (f *BlockField) Clear() {
	for _, b := range f.blocks {
		b.Visible = false
	}
	f.blocks = nil
}
