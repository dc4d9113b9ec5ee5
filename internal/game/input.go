package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/farmsim/internal/entity"
	"github.com/samdwyer/farmsim/internal/farm"
)

// keyAction is what a key press asks for. At most one field is set.
type keyAction struct {
	cmd  farm.Command
	move entity.Direction
	quit bool
}

// mapKey decodes a key press.
func mapKey(key tcell.Key, r rune) keyAction {
	switch key {
	case tcell.KeyEscape:
		return keyAction{cmd: farm.CmdBack}
	case tcell.KeyCtrlC:
		return keyAction{quit: true}
	case tcell.KeyUp:
		return keyAction{move: entity.DirUp}
	case tcell.KeyDown:
		return keyAction{move: entity.DirDown}
	case tcell.KeyLeft:
		return keyAction{move: entity.DirLeft}
	case tcell.KeyRight:
		return keyAction{move: entity.DirRight}
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return keyAction{move: entity.DirUp}
		case 's', 'S':
			return keyAction{move: entity.DirDown}
		case 'a', 'A':
			return keyAction{move: entity.DirLeft}
		case 'd', 'D':
			return keyAction{move: entity.DirRight}
		case '1':
			return keyAction{cmd: farm.CmdOption1}
		case '2':
			return keyAction{cmd: farm.CmdOption2}
		case 'c', 'C':
			return keyAction{cmd: farm.CmdCorn}
		case 't', 'T':
			return keyAction{cmd: farm.CmdTurnip}
		case 'b', 'B':
			return keyAction{cmd: farm.CmdConfirm}
		case 'q', 'Q':
			return keyAction{quit: true}
		}
	}
	return keyAction{}
}

// heldKeys turns key presses into a held direction. Terminals report key
// repeats but never releases, so a direction stays held for holdTicks ticks
// after its most recent press. A step consumes the press that produced it;
// only a further press or auto-repeat keeps the player walking.
type heldKeys struct {
	holdTicks int
	dir       entity.Direction
	age       int

	buttons tcell.ButtonMask // mouse buttons down at the last mouse event
}

func (h *heldKeys) press(d entity.Direction) {
	h.dir = d
	h.age = 0
}

// tick returns the direction held during this tick and ages it.
func (h *heldKeys) tick() entity.Direction {
	d := h.dir
	if d != entity.DirNone {
		h.age++
		if h.age >= h.holdTicks {
			h.dir = entity.DirNone
		}
	}
	return d
}

// consume drops the held direction once it has produced a step.
func (h *heldKeys) consume() {
	h.dir = entity.DirNone
	h.age = 0
}

// clicked records the mouse buttons and reports a fresh primary button press.
func (h *heldKeys) clicked(buttons tcell.ButtonMask) bool {
	pressed := buttons&tcell.Button1 != 0 && h.buttons&tcell.Button1 == 0
	h.buttons = buttons
	return pressed
}
