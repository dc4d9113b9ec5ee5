package world

import (
	"math/rand"
)

const (
	// Size is the width and height of the field in cells.
	Size = 20

	// DefaultSeedAttempts is how many random plantings a new field receives.
	DefaultSeedAttempts = 15
)

// Field is the fixed Size x Size farm grid, addressed as Cells[y][x].
type Field struct {
	Cells    [Size][Size]Cell
	Merchant Point
	Shed     Point
}

// NewField creates an empty field with the merchant and shed placed.
// Both points are clamped onto the field.
func NewField(merchant, shed Point) *Field {
	f := &Field{
		Merchant: merchant.Clamp(),
		Shed:     shed.Clamp(),
	}
	f.Cells[f.Merchant.Y][f.Merchant.X] = Cell{Kind: KindMerchant}
	f.Cells[f.Shed.Y][f.Shed.X] = Cell{Kind: KindShed}
	return f
}

// Seed makes the given number of random planting attempts. Each attempt picks
// a random cell and, if it is empty, plants a random crop at random growth.
func (f *Field) Seed(rng *rand.Rand, attempts int) int {
	planted := 0
	for i := 0; i < attempts; i++ {
		p := Pt(rng.Intn(Size), rng.Intn(Size))
		if f.At(p).Kind != KindEmpty {
			continue
		}
		kind := Crops[rng.Intn(len(Crops))]
		f.Cells[p.Y][p.X] = Cell{Kind: kind, Growth: rng.Intn(MaxGrowth + 1)}
		planted++
	}
	return planted
}

// At returns the cell at p. Out-of-bounds points read as empty ground.
func (f *Field) At(p Point) Cell {
	if !p.InBounds() {
		return Cell{}
	}
	return f.Cells[p.Y][p.X]
}

// Set stores c at p. Writes outside the field, onto the merchant or shed,
// or of a fixture kind are ignored. Growth is clamped for crops and zeroed
// otherwise.
func (f *Field) Set(p Point, c Cell) bool {
	if !p.InBounds() || f.Cells[p.Y][p.X].Kind.IsFixture() || c.Kind.IsFixture() {
		return false
	}
	if c.Kind.IsCrop() {
		c.Growth = max(0, min(MaxGrowth, c.Growth))
	} else {
		c.Growth = 0
	}
	f.Cells[p.Y][p.X] = c
	return true
}

// Plant puts a new crop of the given kind on an empty cell.
func (f *Field) Plant(p Point, kind Kind) bool {
	if !p.InBounds() || !kind.IsCrop() || f.At(p).Kind != KindEmpty {
		return false
	}
	f.Cells[p.Y][p.X] = Cell{Kind: kind}
	return true
}

// Harvest removes a mature crop at p and returns its kind.
// Immature crops and non-crop cells are left untouched.
func (f *Field) Harvest(p Point) (Kind, bool) {
	c := f.At(p)
	if !p.InBounds() || !c.Mature() {
		return KindEmpty, false
	}
	f.Cells[p.Y][p.X] = Cell{Kind: KindEmpty}
	return c.Kind, true
}

// Grow advances every immature crop by step, capped at MaxGrowth.
// It returns the number of cells that changed.
func (f *Field) Grow(step int) int {
	if step <= 0 {
		return 0
	}
	changed := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			c := &f.Cells[y][x]
			if c.Kind.IsCrop() && c.Growth < MaxGrowth {
				c.Growth = min(MaxGrowth, c.Growth+step)
				changed++
			}
		}
	}
	return changed
}

// NearestMature scans the field in row-major order and returns the mature
// crop closest to from by Manhattan distance. On equal distance the cell
// scanned first wins.
func (f *Field) NearestMature(from Point) (Point, bool) {
	best := -1
	var target Point
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if !f.Cells[y][x].Mature() {
				continue
			}
			p := Pt(x, y)
			if d := p.Manhattan(from); best < 0 || d < best {
				best = d
				target = p
			}
		}
	}
	return target, best >= 0
}

// Count returns how many cells hold the given kind.
func (f *Field) Count(kind Kind) int {
	n := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if f.Cells[y][x].Kind == kind {
				n++
			}
		}
	}
	return n
}
