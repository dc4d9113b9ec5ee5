// Package farm holds the game state and every rule that changes it.
// Nothing here touches the terminal; the front end feeds in ticks, clicks and
// menu commands and reads the state back for drawing.
package farm

import (
	"math/rand"

	"github.com/samdwyer/farmsim/internal/entity"
	"github.com/samdwyer/farmsim/internal/world"
)

// Timers are the per-actor tick counters gating when each part of the
// simulation acts.
type Timers struct {
	Move   int // ticks since the player last stepped
	Growth int // ticks since crops last grew
	Helper int // ticks since the helper last acted
}

// State is the complete game state.
type State struct {
	Field     *world.Field
	Player    *entity.Actor
	Helper    *entity.Actor // nil until purchased
	Inventory Stock         // carried by the player
	Shed      Stock         // banked by the helper
	Gold      int
	Mode      Mode
	Timers    Timers

	rules Rules
	rng   *rand.Rand
}

// New creates a fresh game: a seeded field, the player at the start position
// and the starting gold.
func New(rules Rules, rng *rand.Rand) *State {
	s := NewBlank(rules, rng)
	s.Field.Seed(rng, rules.InitialCrops)
	return s
}

// NewBlank is New without the initial crops. It draws nothing from rng.
func NewBlank(rules Rules, rng *rand.Rand) *State {
	return &State{
		Field:  world.NewField(rules.Merchant, rules.Shed),
		Player: entity.NewPlayer(rules.PlayerStart),
		Gold:   rules.StartGold,
		Mode:   ModePlaying,
		rules:  rules,
		rng:    rng,
	}
}

// Rules returns the rules the state was created with.
func (s *State) Rules() Rules {
	return s.rules
}

// HasHelper returns true once the helper has been bought.
func (s *State) HasHelper() bool {
	return s.Helper != nil
}

// Input is what the player is doing during a tick.
type Input struct {
	Move entity.Direction // held movement key, DirNone if none
}

// TickResult reports what changed during a tick.
type TickResult struct {
	Moved  bool
	Opened Mode // overlay opened by stepping onto the merchant or shed, else ModePlaying
	Grown  int  // crops that grew this tick
	Helper HelperResult
}

// Tick advances the simulation by one frame: player movement, then the
// helper, then crop growth. Each runs on its own counter.
func (s *State) Tick(in Input) TickResult {
	var res TickResult

	if s.Mode == ModePlaying {
		s.Timers.Move++
		if s.Timers.Move >= s.rules.MoveDelay && in.Move != entity.DirNone {
			res.Opened = s.step(in.Move)
			res.Moved = true
			s.Timers.Move = 0
		}
	}

	if s.HasHelper() {
		s.Timers.Helper++
		if s.Timers.Helper >= s.rules.HelperInterval {
			res.Helper = s.HelperAct()
			s.Timers.Helper = 0
		}
	}

	s.Timers.Growth++
	if s.Timers.Growth >= s.rules.GrowthInterval {
		res.Grown = s.Field.Grow(s.rules.GrowthStep)
		s.Timers.Growth = 0
	}

	return res
}

// step moves the player and opens the merchant or shed if the player lands on one.
func (s *State) step(d entity.Direction) Mode {
	s.Player.Step(d)

	switch s.Field.At(s.Player.Pos).Kind {
	case world.KindMerchant:
		s.Mode = ModeMerchantMain
		return ModeMerchantMain
	case world.KindShed:
		s.Mode = ModeShed
		return ModeShed
	}
	return ModePlaying
}

// ClickAction is what a click on the field did.
type ClickAction int

const (
	ClickNone ClickAction = iota
	ClickHarvested
	ClickPlanted
)

// ClickResult reports the effect of a click.
type ClickResult struct {
	Action ClickAction
	Kind   world.Kind
	At     world.Point
}

// Click handles a pointer press on field cell p. Only cells next to the
// player (or under them) respond: mature crops are harvested into the
// inventory and empty ground is planted with a random crop. Everything else
// is ignored, as is any click while a menu is open.
func (s *State) Click(p world.Point) ClickResult {
	res := ClickResult{At: p}
	if s.Mode != ModePlaying || !p.InBounds() || !s.Player.Pos.Adjacent(p) {
		return res
	}

	cell := s.Field.At(p)
	switch {
	case cell.Mature():
		kind, _ := s.Field.Harvest(p)
		s.Inventory.Add(kind, 1)
		res.Action, res.Kind = ClickHarvested, kind
	case cell.Kind == world.KindEmpty:
		kind := world.Crops[s.rng.Intn(len(world.Crops))]
		s.Field.Plant(p, kind)
		res.Action, res.Kind = ClickPlanted, kind
	}
	return res
}
