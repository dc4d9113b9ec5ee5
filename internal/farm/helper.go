package farm

import (
	"github.com/samdwyer/farmsim/internal/entity"
	"github.com/samdwyer/farmsim/internal/world"
)

// HelperAction is what the helper did on its turn.
type HelperAction int

const (
	// HelperNone means the helper did not get a turn.
	HelperNone HelperAction = iota
	// HelperIdle means there was nothing to harvest.
	HelperIdle
	// HelperMoved means the helper stepped toward a crop.
	HelperMoved
	// HelperHarvested means the helper banked a crop in the shed.
	HelperHarvested
)

// String returns a human-readable action name.
func (a HelperAction) String() string {
	switch a {
	case HelperIdle:
		return "idle"
	case HelperMoved:
		return "moved"
	case HelperHarvested:
		return "harvested"
	default:
		return "none"
	}
}

// HelperResult reports one helper turn.
type HelperResult struct {
	Action HelperAction
	Target world.Point // crop the helper was heading for
	Kind   world.Kind  // crop banked, when Action is HelperHarvested
}

// BuyHelper purchases the helper and places it at its start position.
// It fails without changing anything if the helper is already owned or the
// player cannot afford it.
func (s *State) BuyHelper() bool {
	if s.HasHelper() || s.Gold < s.rules.HelperPrice {
		return false
	}
	s.Gold -= s.rules.HelperPrice
	s.Helper = entity.NewHelper(s.rules.HelperStart)
	s.Timers.Helper = 0
	return true
}

// HelperAct runs a single helper turn: pick the nearest mature crop, harvest
// it into the shed if it is within reach, otherwise take one step toward it.
func (s *State) HelperAct() HelperResult {
	if !s.HasHelper() {
		return HelperResult{}
	}

	target, ok := s.Field.NearestMature(s.Helper.Pos)
	if !ok {
		return HelperResult{Action: HelperIdle}
	}

	if s.Helper.Pos.Adjacent(target) {
		kind, _ := s.Field.Harvest(target)
		s.Shed.Add(kind, 1)
		return HelperResult{Action: HelperHarvested, Target: target, Kind: kind}
	}

	s.Helper.StepToward(target)
	return HelperResult{Action: HelperMoved, Target: target}
}
