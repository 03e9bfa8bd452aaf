package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func keyEvent(key tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(key, r, tcell.ModNone)
}

func TestMap(t *testing.T) {
	tests := []struct {
		name     string
		event    tcell.Event
		expected Action
	}{
		{"Escape quits", keyEvent(tcell.KeyEscape, 0), ActionQuit},
		{"Ctrl+C quits", keyEvent(tcell.KeyCtrlC, 0), ActionQuit},
		{"Left arrow", keyEvent(tcell.KeyLeft, 0), ActionMoveLeft},
		{"Right arrow", keyEvent(tcell.KeyRight, 0), ActionMoveRight},
		{"Lowercase a", keyEvent(tcell.KeyRune, 'a'), ActionMoveLeft},
		{"Uppercase A", keyEvent(tcell.KeyRune, 'A'), ActionMoveLeft},
		{"Lowercase d", keyEvent(tcell.KeyRune, 'd'), ActionMoveRight},
		{"Space starts", keyEvent(tcell.KeyRune, ' '), ActionStartTurn},
		{"s starts", keyEvent(tcell.KeyRune, 's'), ActionStartTurn},
		{"Enter pauses", keyEvent(tcell.KeyEnter, 0), ActionTogglePause},
		{"p pauses", keyEvent(tcell.KeyRune, 'p'), ActionTogglePause},
		{"m mutes", keyEvent(tcell.KeyRune, 'm'), ActionToggleMute},
		{"Resize", tcell.NewEventResize(80, 24), ActionResize},
		{"Unmapped rune", keyEvent(tcell.KeyRune, 'z'), ActionNone},
		{"Unmapped key", keyEvent(tcell.KeyF1, 0), ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Map(tt.event); got != tt.expected {
				t.Errorf("Map() = %v, want %v", got, tt.expected)
			}
		})
	}
}
