package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bughunt/game"
	"github.com/lixenwraith/bughunt/grid"
)

// Board cells are drawn two terminal columns wide so they come out
// roughly square.
const cellWidth = 2

// Renderer draws the whole game to a tcell screen: the board (one cell
// category query per cell per frame), the hint highlight, and the status
// bar. It reads the controller, never mutates it.
type Renderer struct {
	screen tcell.Screen
}

// New creates a renderer for the given screen
func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Frame draws one complete frame and flushes it
func (r *Renderer) Frame(ctrl *game.Controller, muted bool) {
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', bg)

	screenW, screenH := r.screen.Size()

	// Board viewport in cells: leave one row for the status bar and one
	// for the message line.
	viewW := (screenW - 2) / cellWidth
	viewH := screenH - 3
	if viewW < 1 {
		viewW = 1
	}
	if viewH < 1 {
		viewH = 1
	}

	// Center the view on the head when the board does not fit, the way
	// a scrolling camera would; cells beyond the board edge read as wall.
	offX, offY := 0, 0
	if ctrl.Width() > viewW {
		offX = ctrl.Head().X - viewW/2
	} else {
		viewW = ctrl.Width()
	}
	if ctrl.Height() > viewH {
		offY = ctrl.Head().Y - viewH/2
	} else {
		viewH = ctrl.Height()
	}

	hint, hasHint := ctrl.HintCoord()

	for vy := 0; vy < viewH; vy++ {
		for vx := 0; vx < viewW; vx++ {
			cell := grid.Coord{X: offX + vx, Y: offY + vy}
			style := bg.Background(r.cellColor(ctrl, cell, hint, hasHint))
			for i := 0; i < cellWidth; i++ {
				r.screen.SetContent(1+vx*cellWidth+i, 1+vy, ' ', nil, style)
			}
		}
	}

	r.statusBar(ctrl, muted, screenW, screenH)
	r.messageLine(ctrl, screenH)
	r.screen.Show()
}

// cellColor maps a board cell to its fill color
func (r *Renderer) cellColor(ctrl *game.Controller, cell, hint grid.Coord, hasHint bool) tcell.Color {
	if cell.X < 0 || cell.X >= ctrl.Width() || cell.Y < 0 || cell.Y >= ctrl.Height() {
		return RgbBorder
	}
	switch ctrl.CellCategory(cell) {
	case grid.Snake:
		if cell == ctrl.Head() {
			return RgbSnakeHead
		}
		return RgbSnakeBody
	case grid.CurrentBug:
		return RgbBug
	case grid.FutureBug:
		if hasHint && cell == hint {
			return RgbHintMark
		}
		return RgbHint
	}
	return RgbBoardEmpty
}

// statusBar draws the bottom bar: state segment, audio indicator, score
// and coordinate readouts.
func (r *Renderer) statusBar(ctrl *game.Controller, muted bool, screenW, screenH int) {
	y := screenH - 1
	base := tcell.StyleDefault.Background(RgbBackground)
	for x := 0; x < screenW; x++ {
		r.screen.SetContent(x, y, ' ', nil, base)
	}

	x := 0

	// State segment
	var stateText string
	var stateBg tcell.Color
	switch ctrl.Status() {
	case game.StatusPaused:
		stateText = " PAUSED "
		stateBg = RgbStatusPauseBg
	case game.StatusGameOver:
		stateText = " GAME OVER "
		stateBg = RgbStatusOverBg
	case game.StatusWon:
		stateText = " YOU WIN "
		stateBg = RgbStatusWonBg
	default:
		stateText = " RUNNING "
		stateBg = RgbStatusRunBg
	}
	x = r.drawText(x, y, stateText, base.Foreground(RgbStatusText).Background(stateBg))

	// Audio indicator
	audioBg := RgbAudioUnmuted
	if muted {
		audioBg = RgbAudioMuted
	}
	x = r.drawText(x, y, " ♪ ", base.Foreground(RgbStatusText).Background(audioBg))

	info := base.Foreground(RgbStatusInfo)
	x = r.drawText(x, y, fmt.Sprintf(" score %d", ctrl.Score()), info)
	x = r.drawText(x, y, fmt.Sprintf("  snake %s", ctrl.Head()), info)
	if hint, ok := ctrl.HintCoord(); ok {
		x = r.drawText(x, y, fmt.Sprintf("  bug %s", hint), info)
	}
	r.drawText(x, y, "  wasd/arrows move · z/x hint · p pause · m mute · q quit", info)
}

// messageLine draws the prompt shown after a terminal state
func (r *Renderer) messageLine(ctrl *game.Controller, screenH int) {
	var msg string
	switch ctrl.Status() {
	case game.StatusGameOver:
		msg = "you lose, press any key to reset"
	case game.StatusWon:
		msg = "you win, press any key to reset"
	default:
		return
	}
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusInfo)
	r.drawText(1, screenH-2, msg, style)
}

// drawText writes s at x,y and returns the x just past it
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
