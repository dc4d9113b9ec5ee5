package farm

import (
	"fmt"

	"github.com/samdwyer/farmsim/internal/world"
)

// Rules holds every tunable number of the simulation. Tick counts assume the
// loop runs at 60 ticks per second.
type Rules struct {
	StartGold    int         `yaml:"startGold"`
	PlayerStart  world.Point `yaml:"playerStart"`
	HelperStart  world.Point `yaml:"helperStart"`
	Merchant     world.Point `yaml:"merchant"`
	Shed         world.Point `yaml:"shed"`
	InitialCrops int         `yaml:"initialCrops"` // random planting attempts on a new field

	GrowthStep     int `yaml:"growthStep"`     // growth added per growth tick
	GrowthInterval int `yaml:"growthInterval"` // ticks between growth ticks
	MoveDelay      int `yaml:"moveDelay"`      // ticks between player steps while a key is held
	HelperInterval int `yaml:"helperInterval"` // ticks between helper actions

	HelperPrice int `yaml:"helperPrice"`
	CornPrice   int `yaml:"cornPrice"`   // gold per corn sold
	TurnipPrice int `yaml:"turnipPrice"` // gold per turnip sold
}

// DefaultRules returns the standard game balance.
func DefaultRules() Rules {
	return Rules{
		StartGold:      200,
		PlayerStart:    world.Pt(10, 10),
		HelperStart:    world.Pt(3, 3),
		Merchant:       world.Pt(5, 5),
		Shed:           world.Pt(15, 15),
		InitialCrops:   world.DefaultSeedAttempts,
		GrowthStep:     2,
		GrowthInterval: 60,
		MoveDelay:      8,
		HelperInterval: 120,
		HelperPrice:    200,
		CornPrice:      1,
		TurnipPrice:    2,
	}
}

// Price returns the sale price of one unit of a crop.
func (r Rules) Price(kind world.Kind) int {
	switch kind {
	case world.KindCorn:
		return r.CornPrice
	case world.KindTurnip:
		return r.TurnipPrice
	default:
		return 0
	}
}

// Validate reports the first rule that would break the simulation.
func (r Rules) Validate() error {
	points := []struct {
		name string
		p    world.Point
	}{
		{"playerStart", r.PlayerStart},
		{"helperStart", r.HelperStart},
		{"merchant", r.Merchant},
		{"shed", r.Shed},
	}
	for _, pt := range points {
		if !pt.p.InBounds() {
			return fmt.Errorf("%s (%d,%d) is outside the %dx%d field", pt.name, pt.p.X, pt.p.Y, world.Size, world.Size)
		}
	}
	if r.Merchant == r.Shed {
		return fmt.Errorf("merchant and shed share cell (%d,%d)", r.Shed.X, r.Shed.Y)
	}
	if r.GrowthInterval < 1 || r.MoveDelay < 1 || r.HelperInterval < 1 {
		return fmt.Errorf("intervals must be at least 1 tick (growth=%d move=%d helper=%d)",
			r.GrowthInterval, r.MoveDelay, r.HelperInterval)
	}
	if r.StartGold < 0 || r.HelperPrice < 0 || r.CornPrice < 0 || r.TurnipPrice < 0 || r.GrowthStep < 0 || r.InitialCrops < 0 {
		return fmt.Errorf("gold, prices, growth step and initial crops must not be negative")
	}
	return nil
}
