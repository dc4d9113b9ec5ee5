package world

// Point is an integer field coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Manhattan returns |dx| + |dy| between two points.
func (p Point) Manhattan(o Point) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

// Chebyshev returns max(|dx|, |dy|) between two points.
func (p Point) Chebyshev(o Point) int {
	return max(abs(p.X-o.X), abs(p.Y-o.Y))
}

// Adjacent returns true if o is within one step of p in any direction,
// including diagonals and p itself.
func (p Point) Adjacent(o Point) bool {
	return p.Chebyshev(o) <= 1
}

// Clamp returns p with both coordinates limited to the field.
func (p Point) Clamp() Point {
	return Point{
		X: max(0, min(Size-1, p.X)),
		Y: max(0, min(Size-1, p.Y)),
	}
}

// InBounds returns true if p lies on the field.
func (p Point) InBounds() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
