// Package input maps terminal events onto game commands. It knows keys
// and nothing else; the driving loop decides what a command means in the
// current state (e.g. any key restarts after game over).
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bughunt/game"
)

// Op is the kind of command a key maps to
type Op int

const (
	OpNone  Op = iota // not a key event
	OpOther           // key with no binding (still "any key" for restart)
	OpMove
	OpHint
	OpPause
	OpMute
	OpQuit
)

// Command is one decoded input event
type Command struct {
	Op    Op
	Dir   game.Direction // valid when Op == OpMove
	Delta int            // +1/-1 when Op == OpHint
}

// Map decodes a tcell event. Controls follow the original game: wasd or
// arrows move, z/x cycle the bug hint, p pauses, m toggles sound, q or
// Ctrl-C quits.
func Map(ev tcell.Event) Command {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return Command{Op: OpNone}
	}

	switch key.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return Command{Op: OpQuit}
	case tcell.KeyUp:
		return Command{Op: OpMove, Dir: game.DirUp}
	case tcell.KeyDown:
		return Command{Op: OpMove, Dir: game.DirDown}
	case tcell.KeyLeft:
		return Command{Op: OpMove, Dir: game.DirLeft}
	case tcell.KeyRight:
		return Command{Op: OpMove, Dir: game.DirRight}
	}

	if key.Key() != tcell.KeyRune {
		return Command{Op: OpOther}
	}

	switch key.Rune() {
	case 'w', 'W':
		return Command{Op: OpMove, Dir: game.DirUp}
	case 's', 'S':
		return Command{Op: OpMove, Dir: game.DirDown}
	case 'a', 'A':
		return Command{Op: OpMove, Dir: game.DirLeft}
	case 'd', 'D':
		return Command{Op: OpMove, Dir: game.DirRight}
	case 'z', 'Z':
		return Command{Op: OpHint, Delta: 1}
	case 'x', 'X':
		return Command{Op: OpHint, Delta: -1}
	case 'p', 'P':
		return Command{Op: OpPause}
	case 'm', 'M':
		return Command{Op: OpMute}
	case 'q', 'Q':
		return Command{Op: OpQuit}
	}
	return Command{Op: OpOther}
}
