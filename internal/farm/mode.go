package farm

// Mode is the active screen. Exactly one is active at a time; anything other
// than ModePlaying is an overlay that freezes the player.
type Mode int

const (
	// ModePlaying is free movement on the field.
	ModePlaying Mode = iota
	// ModeMerchantMain is the merchant's top-level menu.
	ModeMerchantMain
	// ModeMerchantSell lists crops that can be sold.
	ModeMerchantSell
	// ModeMerchantBuy lists items for sale.
	ModeMerchantBuy
	// ModeShed shows banked crops that can be withdrawn.
	ModeShed
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModeMerchantMain:
		return "merchant_main"
	case ModeMerchantSell:
		return "merchant_sell"
	case ModeMerchantBuy:
		return "merchant_buy"
	case ModeShed:
		return "shed"
	default:
		return "unknown"
	}
}

// Overlay returns true if a menu panel is open.
func (m Mode) Overlay() bool {
	return m != ModePlaying
}

// Command is a menu key after the front end has decoded it.
type Command int

const (
	CmdNone Command = iota
	CmdBack         // Esc: leave the current menu, or quit from the field
	CmdOption1      // 1: sell menu
	CmdOption2      // 2: buy menu
	CmdCorn         // C: sell or withdraw corn
	CmdTurnip       // T: sell or withdraw turnips
	CmdConfirm      // B: buy the selected item
)

// String returns a human-readable command name.
func (c Command) String() string {
	switch c {
	case CmdBack:
		return "back"
	case CmdOption1:
		return "option1"
	case CmdOption2:
		return "option2"
	case CmdCorn:
		return "corn"
	case CmdTurnip:
		return "turnip"
	case CmdConfirm:
		return "confirm"
	default:
		return "none"
	}
}
