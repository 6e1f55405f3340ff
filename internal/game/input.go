package game

import (
	"github.com/gdamore/tcell/v2"
)

// Action is a player command, independent of the key that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPaint
	ActionMark
	ActionCycleBrush
	ActionReset
	ActionCheck
	ActionShare
)

// actionForKey maps a key press to an action.
func actionForKey(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyEnter:
		return ActionPaint
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return ActionQuit
		case 'k':
			return ActionUp
		case 'j':
			return ActionDown
		case 'h':
			return ActionLeft
		case 'l':
			return ActionRight
		case ' ':
			return ActionPaint
		case 'x', 'X':
			return ActionMark
		case 'b', 'B':
			return ActionCycleBrush
		case 'r', 'R':
			return ActionReset
		case 'c', 'C':
			return ActionCheck
		case 's', 'S':
			return ActionShare
		}
	}
	return ActionNone
}

const (
	solvingHelp = "arrows/hjkl move  space wall  x mark  c check  r reset  s share  q quit"
	designHelp  = "arrows/hjkl move  space paint  b brush  c check  s share  q quit"
)
