package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/farmsim/internal/entity"
	"github.com/samdwyer/farmsim/internal/farm"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want keyAction
	}{
		{"escape", tcell.KeyEscape, 0, keyAction{cmd: farm.CmdBack}},
		{"ctrl-c", tcell.KeyCtrlC, 0, keyAction{quit: true}},
		{"arrow up", tcell.KeyUp, 0, keyAction{move: entity.DirUp}},
		{"arrow down", tcell.KeyDown, 0, keyAction{move: entity.DirDown}},
		{"arrow left", tcell.KeyLeft, 0, keyAction{move: entity.DirLeft}},
		{"arrow right", tcell.KeyRight, 0, keyAction{move: entity.DirRight}},
		{"w", tcell.KeyRune, 'w', keyAction{move: entity.DirUp}},
		{"shifted A", tcell.KeyRune, 'A', keyAction{move: entity.DirLeft}},
		{"s", tcell.KeyRune, 's', keyAction{move: entity.DirDown}},
		{"d", tcell.KeyRune, 'd', keyAction{move: entity.DirRight}},
		{"option 1", tcell.KeyRune, '1', keyAction{cmd: farm.CmdOption1}},
		{"option 2", tcell.KeyRune, '2', keyAction{cmd: farm.CmdOption2}},
		{"corn", tcell.KeyRune, 'c', keyAction{cmd: farm.CmdCorn}},
		{"turnip", tcell.KeyRune, 'T', keyAction{cmd: farm.CmdTurnip}},
		{"buy", tcell.KeyRune, 'b', keyAction{cmd: farm.CmdConfirm}},
		{"quit", tcell.KeyRune, 'q', keyAction{quit: true}},
		{"unbound rune", tcell.KeyRune, 'x', keyAction{}},
		{"unbound key", tcell.KeyTab, 0, keyAction{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapKey(tt.key, tt.r); got != tt.want {
				t.Errorf("mapKey(%v, %q) = %+v, want %+v", tt.key, tt.r, got, tt.want)
			}
		})
	}
}

func TestHeldKeyExpires(t *testing.T) {
	h := heldKeys{holdTicks: 3}

	if got := h.tick(); got != entity.DirNone {
		t.Fatalf("tick before any press = %v, want none", got)
	}

	h.press(entity.DirUp)
	for i := 0; i < 3; i++ {
		if got := h.tick(); got != entity.DirUp {
			t.Fatalf("tick %d = %v, want up", i, got)
		}
	}
	if got := h.tick(); got != entity.DirNone {
		t.Errorf("tick after hold window = %v, want none", got)
	}
}

func TestHeldKeyRepeatExtendsHold(t *testing.T) {
	h := heldKeys{holdTicks: 2}

	h.press(entity.DirLeft)
	h.tick()
	h.press(entity.DirLeft)
	h.tick()
	if got := h.tick(); got != entity.DirLeft {
		t.Errorf("repeat press should keep the key held, got %v", got)
	}

	h.press(entity.DirRight)
	if got := h.tick(); got != entity.DirRight {
		t.Errorf("latest press should win, got %v", got)
	}
}

func TestConsumeReleasesKey(t *testing.T) {
	h := heldKeys{holdTicks: 10}

	h.press(entity.DirDown)
	h.tick()
	h.consume()
	if got := h.tick(); got != entity.DirNone {
		t.Errorf("tick after consume = %v, want none", got)
	}
}

func TestClickedOnlyOnPressEdge(t *testing.T) {
	var h heldKeys

	steps := []struct {
		buttons tcell.ButtonMask
		want    bool
	}{
		{tcell.ButtonNone, false},
		{tcell.Button1, true},
		{tcell.Button1, false}, // drag
		{tcell.ButtonNone, false},
		{tcell.Button2, false},
		{tcell.Button1 | tcell.Button2, true},
	}
	for i, s := range steps {
		if got := h.clicked(s.buttons); got != s.want {
			t.Errorf("step %d: clicked(%v) = %v, want %v", i, s.buttons, got, s.want)
		}
	}
}
