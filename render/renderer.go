package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/breakout/config"
	"github.com/lixenwraith/breakout/core"
	"github.com/lixenwraith/breakout/events"
	"github.com/lixenwraith/breakout/game"
)

const (
	hudRows = 3 // scoreboard band at the top of the screen

	ballRune  = '●'
	solidRune = '█'
	heartRune = '♥'
	rulerRune = '─'

	// heartFlashDuration and heartFlashPeriod drive the lost-heart blink
	heartFlashDuration = 600 * time.Millisecond
	heartFlashPeriod   = 100 * time.Millisecond
)

// Renderer projects the abstract world units onto the terminal grid and
// draws the scoreboard band. It reads entity state through the controller;
// the simulation never knows about cells.
type Renderer struct {
	screen tcell.Screen
	cfg    *config.Config
	ctrl   *game.Controller

	// Lost-heart flash state, fed by EventLifeLost
	flashPlayer core.Player
	flashIndex  int
	flashUntil  time.Time
}

// NewRenderer creates a renderer bound to the screen and controller
func NewRenderer(screen tcell.Screen, cfg *config.Config, ctrl *game.Controller) *Renderer {
	return &Renderer{screen: screen, cfg: cfg, ctrl: ctrl}
}

// EventTypes implements events.Handler
func (r *Renderer) EventTypes() []events.EventType {
	return []events.EventType{events.EventLifeLost}
}

// HandleEvent implements events.Handler; it arms the heart flash for the
// heart that was just lost
func (r *Renderer) HandleEvent(ev events.GameEvent) {
	payload, ok := ev.Payload.(*events.LifeLostPayload)
	if !ok {
		return
	}
	r.flashPlayer = payload.Player
	r.flashIndex = payload.Remaining
	r.flashUntil = time.Now().Add(heartFlashDuration)
}

// Sync forces a full terminal repaint, used after resize events
func (r *Renderer) Sync() {
	r.screen.Sync()
}

// Frame draws one complete frame and flushes it
func (r *Renderer) Frame() {
	r.screen.Clear()

	cols, rows := r.screen.Size()
	if cols < 8 || rows < hudRows+4 {
		r.screen.Show()
		return
	}

	r.drawScoreboard(cols)
	r.drawField(cols, rows)
	r.drawBanner(cols, rows)

	r.screen.Show()
}

// toCell converts world coordinates (origin at field center, y up) into
// terminal cells below the HUD band
func (r *Renderer) toCell(x, y float64, cols, rows int) (int, int) {
	w := r.cfg.Walls
	fieldRows := rows - hudRows
	cx := int((x - w.Left) / r.cfg.ScreenWidth * float64(cols))
	cy := hudRows + int((w.Top-y)/r.cfg.ScreenHeight*float64(fieldRows))
	return cx, cy
}

func (r *Renderer) drawField(cols, rows int) {
	match := r.ctrl.Match()
	if match.Phase() == game.PhaseGameOver {
		return
	}

	for _, blk := range r.ctrl.Field().Blocks() {
		if !blk.Visible {
			continue
		}
		r.drawBox(blk.X, blk.Y, blk.Width, blk.Height, cols, rows, r.rowStyle(blk.Row))
	}

	paddle := r.ctrl.Paddle()
	r.drawBox(paddle.X, paddle.Y, paddle.Width, paddle.Height, cols, rows,
		tcell.StyleDefault.Foreground(tcell.ColorBlue))

	ball := r.ctrl.Ball()
	bx, by := r.toCell(ball.X, ball.Y, cols, rows)
	if by >= hudRows && by < rows {
		r.screen.SetContent(bx, by, ballRune, nil, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}
}

// drawBox fills the cell span covered by a world-space rectangle. Spans are
// clamped to at least one cell so thin entities stay visible.
func (r *Renderer) drawBox(x, y, w, h float64, cols, rows int, style tcell.Style) {
	x0, y0 := r.toCell(x-w/2, y+h/2, cols, rows)
	x1, y1 := r.toCell(x+w/2, y-h/2, cols, rows)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for cy := y0; cy < y1 && cy < rows; cy++ {
		if cy < hudRows {
			continue
		}
		for cx := x0; cx < x1 && cx < cols; cx++ {
			if cx < 0 {
				continue
			}
			r.screen.SetContent(cx, cy, solidRune, nil, style)
		}
	}
}

func (r *Renderer) rowStyle(row int) tcell.Style {
	name := r.cfg.Palette[row%len(r.cfg.Palette)]
	color, ok := tcell.ColorNames[name]
	if !ok {
		color = tcell.ColorWhite
	}
	return tcell.StyleDefault.Foreground(color)
}

func (r *Renderer) drawScoreboard(cols int) {
	match := r.ctrl.Match()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimmed := tcell.StyleDefault.Foreground(tcell.ColorGray)

	p1Style, p2Style := style, dimmed
	if match.ActivePlayer() == core.PlayerTwo {
		p1Style, p2Style = dimmed, style
	}

	r.drawHearts(1, 0, core.PlayerOne)
	r.drawHearts(cols-r.cfg.MaxLives*2-1, 0, core.PlayerTwo)

	left := fmt.Sprintf("%s %03d", core.PlayerOne, match.Score(core.PlayerOne))
	right := fmt.Sprintf("%s %03d", core.PlayerTwo, match.Score(core.PlayerTwo))
	mid := fmt.Sprintf("LEVEL %d", match.Level())

	r.drawText(1, 1, left, p1Style)
	r.drawText(cols-len(right)-1, 1, right, p2Style)
	r.drawText((cols-len(mid))/2, 1, mid, style)

	for x := 0; x < cols; x++ {
		r.screen.SetContent(x, 2, rulerRune, nil, dimmed)
	}
}

// drawHearts renders the life strip, blinking the heart just lost while
// the flash window is open
func (r *Renderer) drawHearts(x, y int, p core.Player) {
	match := r.ctrl.Match()
	lives := match.Lives(p)
	now := time.Now()

	for i := 0; i < r.cfg.MaxLives; i++ {
		visible := i < lives

		if p == r.flashPlayer && i == r.flashIndex && now.Before(r.flashUntil) {
			elapsed := heartFlashDuration - r.flashUntil.Sub(now)
			visible = (elapsed/heartFlashPeriod)%2 == 0
		}

		if visible {
			r.screen.SetContent(x+i*2, y, heartRune, nil,
				tcell.StyleDefault.Foreground(tcell.ColorRed))
		}
	}
}

func (r *Renderer) drawBanner(cols, rows int) {
	match := r.ctrl.Match()
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	hint := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	midRow := hudRows + (rows-hudRows)/2

	switch match.Phase() {
	case game.PhaseWaiting:
		title := match.ActivePlayer().String()
		r.drawText((cols-len(title))/2, midRow-1, title, style)
		r.drawText((cols-len("Press SPACE"))/2, midRow+1, "Press SPACE", hint)

	case game.PhasePaused:
		r.drawText((cols-len("PAUSED"))/2, midRow, "PAUSED", style)

	case game.PhaseGameOver:
		winner, score, draw := match.Winner()
		title := fmt.Sprintf("%s Wins!!!", winner)
		if draw {
			title = "Draw !!!"
		}
		points := fmt.Sprintf("Points: %03d", score)
		r.drawText((cols-len(title))/2, midRow-1, title, style)
		r.drawText((cols-len(points))/2, midRow+1, points, hint)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
