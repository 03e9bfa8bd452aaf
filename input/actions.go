package input

import "github.com/gdamore/tcell/v2"

// Action discriminates the semantic game inputs
type Action uint8

const (
	ActionNone Action = iota

	ActionQuit        // ESC, Ctrl+C
	ActionMoveLeft    // Left arrow, a
	ActionMoveRight   // Right arrow, d
	ActionStartTurn   // Space, s
	ActionTogglePause // Enter, p
	ActionToggleMute  // m
	ActionResize      // Terminal resize event
)

// Map translates a terminal event into a game action. Every movement and
// control action is reachable from at least two physical keys.
func Map(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return ActionResize

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return ActionQuit
		case tcell.KeyLeft:
			return ActionMoveLeft
		case tcell.KeyRight:
			return ActionMoveRight
		case tcell.KeyEnter:
			return ActionTogglePause
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'a', 'A':
				return ActionMoveLeft
			case 'd', 'D':
				return ActionMoveRight
			case ' ', 's', 'S':
				return ActionStartTurn
			case 'p', 'P':
				return ActionTogglePause
			case 'm', 'M':
				return ActionToggleMute
			}
		}
	}
	return ActionNone
}
