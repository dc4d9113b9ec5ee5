package farm

import "github.com/samdwyer/farmsim/internal/world"

// Effect is the transaction a menu command performed.
type Effect int

const (
	EffectNone Effect = iota
	EffectSold
	EffectBought
	EffectWithdrew
)

// Outcome reports what a menu command did.
type Outcome struct {
	Mode   Mode // mode after the command
	Quit   bool // Back pressed on the open field
	Effect Effect
	Kind   world.Kind // crop sold or withdrawn
	Amount int        // crops sold or withdrawn
	Gold   int        // gold earned by a sale or spent on a purchase
}

// Press applies a menu command to the current mode.
//
// Transitions:
//
//	playing        Back -> quit
//	merchant_main  1 -> merchant_sell, 2 -> merchant_buy, Back -> playing
//	merchant_sell  C/T sell, Back -> merchant_main
//	merchant_buy   B buy, Back -> merchant_main
//	shed           C/T withdraw, Back -> playing
//
// Commands that do not apply to the current mode are ignored.
func (s *State) Press(cmd Command) Outcome {
	switch s.Mode {
	case ModePlaying:
		if cmd == CmdBack {
			return Outcome{Mode: s.Mode, Quit: true}
		}

	case ModeMerchantMain:
		switch cmd {
		case CmdOption1:
			s.Mode = ModeMerchantSell
		case CmdOption2:
			s.Mode = ModeMerchantBuy
		case CmdBack:
			s.Mode = ModePlaying
		}

	case ModeMerchantSell:
		switch cmd {
		case CmdCorn, CmdTurnip:
			kind := cropFor(cmd)
			sold, gold := s.Sell(kind)
			if sold > 0 {
				return Outcome{Mode: s.Mode, Effect: EffectSold, Kind: kind, Amount: sold, Gold: gold}
			}
		case CmdBack:
			s.Mode = ModeMerchantMain
		}

	case ModeMerchantBuy:
		switch cmd {
		case CmdConfirm:
			if s.BuyHelper() {
				return Outcome{Mode: s.Mode, Effect: EffectBought, Gold: s.rules.HelperPrice}
			}
		case CmdBack:
			s.Mode = ModeMerchantMain
		}

	case ModeShed:
		switch cmd {
		case CmdCorn, CmdTurnip:
			kind := cropFor(cmd)
			if n := s.Withdraw(kind); n > 0 {
				return Outcome{Mode: s.Mode, Effect: EffectWithdrew, Kind: kind, Amount: n}
			}
		case CmdBack:
			s.Mode = ModePlaying
		}
	}

	return Outcome{Mode: s.Mode}
}

// Sell converts the whole inventory bucket for kind into gold at the crop's
// price and returns how many crops were sold and the gold earned.
func (s *State) Sell(kind world.Kind) (sold, gold int) {
	sold = s.Inventory.TakeAll(kind)
	gold = sold * s.rules.Price(kind)
	s.Gold += gold
	return sold, gold
}

// Withdraw moves the whole shed bucket for kind into the inventory.
func (s *State) Withdraw(kind world.Kind) int {
	n := s.Shed.TakeAll(kind)
	s.Inventory.Add(kind, n)
	return n
}

func cropFor(cmd Command) world.Kind {
	if cmd == CmdTurnip {
		return world.KindTurnip
	}
	return world.KindCorn
}
