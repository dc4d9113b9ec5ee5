package farm

import "github.com/samdwyer/farmsim/internal/world"

// Stock counts crops by kind. It is used for both the player's inventory and
// the shed.
type Stock struct {
	Corn   int
	Turnip int
}

// Count returns how many of kind are held.
func (s Stock) Count(kind world.Kind) int {
	switch kind {
	case world.KindCorn:
		return s.Corn
	case world.KindTurnip:
		return s.Turnip
	default:
		return 0
	}
}

// Add puts n crops of kind into the stock. Non-crops and negative amounts are ignored.
func (s *Stock) Add(kind world.Kind, n int) {
	if n <= 0 {
		return
	}
	switch kind {
	case world.KindCorn:
		s.Corn += n
	case world.KindTurnip:
		s.Turnip += n
	}
}

// TakeAll empties the bucket for kind and returns what it held.
func (s *Stock) TakeAll(kind world.Kind) int {
	var n int
	switch kind {
	case world.KindCorn:
		n, s.Corn = s.Corn, 0
	case world.KindTurnip:
		n, s.Turnip = s.Turnip, 0
	}
	return n
}

// Total returns the number of crops of every kind.
func (s Stock) Total() int {
	return s.Corn + s.Turnip
}
