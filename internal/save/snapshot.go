// Package save persists a game session between runs.
package save

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/samdwyer/farmsim/internal/entity"
	"github.com/samdwyer/farmsim/internal/farm"
	"github.com/samdwyer/farmsim/internal/world"
)

// Version is the snapshot format version written by this build.
const Version = 1

// Point is a field coordinate as stored on disk.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Stock is a crop count as stored on disk.
type Stock struct {
	Corn   int `yaml:"corn"`
	Turnip int `yaml:"turnip"`
}

// Crop is one planted cell.
type Crop struct {
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Kind   string `yaml:"kind"`
	Growth int    `yaml:"growth"`
}

// Snapshot is everything needed to resume a session. The merchant and shed
// are not stored; they come from the rules.
type Snapshot struct {
	Version   int       `yaml:"version"`
	SavedAt   time.Time `yaml:"savedAt"`
	Gold      int       `yaml:"gold"`
	Player    Point     `yaml:"player"`
	Helper    *Point    `yaml:"helper,omitempty"`
	Inventory Stock     `yaml:"inventory"`
	Shed      Stock     `yaml:"shed"`
	Timers    struct {
		Move   int `yaml:"move"`
		Growth int `yaml:"growth"`
		Helper int `yaml:"helper"`
	} `yaml:"timers"`
	Crops []Crop `yaml:"crops"`
}

// Capture records the state. Open menus are not saved.
func Capture(s *farm.State, now time.Time) Snapshot {
	snap := Snapshot{
		Version:   Version,
		SavedAt:   now.UTC(),
		Gold:      s.Gold,
		Player:    Point{s.Player.Pos.X, s.Player.Pos.Y},
		Inventory: Stock{s.Inventory.Corn, s.Inventory.Turnip},
		Shed:      Stock{s.Shed.Corn, s.Shed.Turnip},
	}
	if s.HasHelper() {
		snap.Helper = &Point{s.Helper.Pos.X, s.Helper.Pos.Y}
	}
	snap.Timers.Move = s.Timers.Move
	snap.Timers.Growth = s.Timers.Growth
	snap.Timers.Helper = s.Timers.Helper

	for y := 0; y < world.Size; y++ {
		for x := 0; x < world.Size; x++ {
			c := s.Field.Cells[y][x]
			if c.Kind.IsCrop() {
				snap.Crops = append(snap.Crops, Crop{X: x, Y: y, Kind: c.Kind.String(), Growth: c.Growth})
			}
		}
	}
	return snap
}

// Restore rebuilds a state from a snapshot under the given rules.
func Restore(snap Snapshot, rules farm.Rules, rng *rand.Rand) (*farm.State, error) {
	if snap.Version != Version {
		return nil, fmt.Errorf("unsupported save version %d (want %d)", snap.Version, Version)
	}
	if snap.Gold < 0 || snap.Inventory.Corn < 0 || snap.Inventory.Turnip < 0 || snap.Shed.Corn < 0 || snap.Shed.Turnip < 0 {
		return nil, fmt.Errorf("save has negative gold or stock")
	}

	player := world.Pt(snap.Player.X, snap.Player.Y)
	if !player.InBounds() {
		return nil, fmt.Errorf("player at (%d,%d) is off the field", player.X, player.Y)
	}
	if h := snap.Helper; h != nil && !world.Pt(h.X, h.Y).InBounds() {
		return nil, fmt.Errorf("helper at (%d,%d) is off the field", h.X, h.Y)
	}

	s := farm.NewBlank(rules, rng)
	for _, c := range snap.Crops {
		kind, err := parseCrop(c.Kind)
		if err != nil {
			return nil, err
		}
		p := world.Pt(c.X, c.Y)
		if !p.InBounds() || c.Growth < 0 || c.Growth > world.MaxGrowth {
			return nil, fmt.Errorf("crop %s at (%d,%d) growth %d is out of range", c.Kind, c.X, c.Y, c.Growth)
		}
		if !s.Field.Set(p, world.Cell{Kind: kind, Growth: c.Growth}) {
			return nil, fmt.Errorf("crop %s at (%d,%d) overlaps the merchant or shed", c.Kind, c.X, c.Y)
		}
	}

	s.Gold = snap.Gold
	s.Player.Pos = player
	if snap.Helper != nil {
		s.Helper = entity.NewHelper(world.Pt(snap.Helper.X, snap.Helper.Y))
	}
	s.Inventory = farm.Stock{Corn: snap.Inventory.Corn, Turnip: snap.Inventory.Turnip}
	s.Shed = farm.Stock{Corn: snap.Shed.Corn, Turnip: snap.Shed.Turnip}
	s.Timers = farm.Timers{
		Move:   max(0, snap.Timers.Move),
		Growth: max(0, snap.Timers.Growth),
		Helper: max(0, snap.Timers.Helper),
	}
	s.Mode = farm.ModePlaying
	return s, nil
}

func parseCrop(id string) (world.Kind, error) {
	for _, k := range world.Crops {
		if k.String() == id {
			return k, nil
		}
	}
	return world.KindEmpty, fmt.Errorf("unknown crop %q in save", id)
}
