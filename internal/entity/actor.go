// Package entity provides the actors that walk the field: the player and the helper.
package entity

import "github.com/samdwyer/farmsim/internal/world"

// Direction is a single-step movement request.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit offset for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Actor is anything with a position on the field.
type Actor struct {
	Pos    world.Point // Current position, always on the field
	Symbol rune        // Display symbol
}

// NewPlayer creates the player at the given position.
func NewPlayer(pos world.Point) *Actor {
	return &Actor{Pos: pos.Clamp(), Symbol: '@'}
}

// NewHelper creates the automated helper at the given position.
func NewHelper(pos world.Point) *Actor {
	return &Actor{Pos: pos.Clamp(), Symbol: 'A'}
}

// Move updates the position by the given delta, clamped to the field.
func (a *Actor) Move(dx, dy int) {
	a.Pos = world.Pt(a.Pos.X+dx, a.Pos.Y+dy).Clamp()
}

// Step moves one cell in the given direction.
func (a *Actor) Step(d Direction) {
	a.Move(d.Delta())
}

// StepToward moves one cell along a single axis toward target. The axis with
// the larger offset is reduced first; equal offsets move horizontally.
func (a *Actor) StepToward(target world.Point) {
	dx := target.X - a.Pos.X
	dy := target.Y - a.Pos.Y
	if dx == 0 && dy == 0 {
		return
	}
	if abs(dx) >= abs(dy) {
		a.Move(sign(dx), 0)
	} else {
		a.Move(0, sign(dy))
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
