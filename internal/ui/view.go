package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/farmsim/internal/farm"
	"github.com/samdwyer/farmsim/internal/gamedata"
	"github.com/samdwyer/farmsim/internal/world"
)

// Theme bundles the data the views need: crop names and colours, the shop
// listing and the palette.
type Theme struct {
	Crops   *gamedata.CropRegistry
	Shop    *gamedata.Shop
	Palette *gamedata.Palette
}

// LoadTheme loads every embedded definition the views use.
func LoadTheme() (*Theme, error) {
	crops, err := gamedata.LoadCropRegistry()
	if err != nil {
		return nil, err
	}
	shop, err := gamedata.LoadShop()
	if err != nil {
		return nil, err
	}
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, err
	}
	return &Theme{Crops: crops, Shop: shop, Palette: palette}, nil
}

// CellView is how a single field cell looks.
type CellView struct {
	Text string // at most CellWidth characters, centred
	Fg   tcell.Color
	Bg   tcell.Color
}

// Line is one line of sidebar or panel text.
type Line struct {
	Text  string
	Color tcell.Color
}

// Panel is the content of a menu overlay.
type Panel struct {
	Title  string
	Lines  []Line
	Footer string
}

// Cell returns the appearance of a field cell. Crops brighten as they grow
// and show their growth percentage until mature, then their glyph.
func (t *Theme) Cell(c world.Cell) CellView {
	text := t.Palette.Color("text")

	switch c.Kind {
	case world.KindMerchant:
		return CellView{Text: "M", Fg: text, Bg: t.Palette.Color("merchant")}
	case world.KindShed:
		return CellView{Text: "S", Fg: text, Bg: t.Palette.Color("shed")}
	case world.KindCorn, world.KindTurnip:
		def := t.Crops.GetByID(c.Kind.String())
		if def == nil {
			return CellView{Text: "?", Fg: text, Bg: t.Palette.Color("ground")}
		}
		v := CellView{Fg: text, Bg: GrowthColor(def.Color, c.Growth)}
		if c.Mature() {
			v.Text = string(def.GlyphRune())
		} else {
			v.Text = fmt.Sprintf("%d%%", c.Growth)
		}
		return v
	default:
		return CellView{Fg: text, Bg: t.Palette.Color("ground")}
	}
}

// GrowthColor tints a crop by growth. Every channel that is lit in the
// mature colour runs from 100 at growth 0 to 255 at full growth; unlit
// channels stay at 0.
func GrowthColor(mature string, growth int) tcell.Color {
	base, err := gamedata.ParseHexColor(mature)
	if err != nil {
		base = tcell.NewRGBColor(255, 255, 255)
	}
	growth = max(0, min(world.MaxGrowth, growth))
	intensity := int32(100 + growth*155/world.MaxGrowth)

	r, g, b := base.RGB()
	channel := func(v int32) int32 {
		if v > 0 {
			return intensity
		}
		return 0
	}
	return tcell.NewRGBColor(channel(r), channel(g), channel(b))
}

// Sidebar returns the status column shown beside the field.
func (t *Theme) Sidebar(s *farm.State) []Line {
	white := t.Palette.Color("text")
	muted := t.Palette.Color("muted")

	lines := []Line{
		{"FARM SIMULATOR", t.Palette.Color("gold")},
		{},
		{fmt.Sprintf("Gold: %d", s.Gold), t.Palette.Color("gold")},
		{},
		{"Inventory:", white},
	}
	lines = append(lines, t.stockLines("  ", s.Inventory)...)
	lines = append(lines, Line{}, Line{"Shed Storage:", white})
	lines = append(lines, t.stockLines("  ", s.Shed)...)
	lines = append(lines, Line{})
	if s.HasHelper() {
		lines = append(lines, Line{"AI Helper: Active", t.Palette.Color("helper")})
	} else {
		lines = append(lines, Line{"AI Helper: None", muted})
	}

	lines = append(lines, Line{})
	for _, text := range []string{
		"CONTROLS:",
		"WASD/Arrows - Move (hold)",
		"Left Click - Harvest/Plant",
		"Walk to M - Merchant",
		"Walk to S - Shed",
		"ESC/Q - Quit",
	} {
		lines = append(lines, Line{text, white})
	}

	lines = append(lines, Line{})
	for _, text := range []string{
		"LEGEND:",
		"@ - You",
		"A - AI Helper",
		"M - Merchant",
		"S - Shed",
		t.cropGlyphs() + " - Ripe crops",
	} {
		lines = append(lines, Line{text, muted})
	}
	return lines
}

// Panel returns the overlay for the current mode, or false while playing.
func (t *Theme) Panel(s *farm.State) (Panel, bool) {
	white := t.Palette.Color("text")
	gold := Line{fmt.Sprintf("Your Gold: %d", s.Gold), white}

	switch s.Mode {
	case farm.ModeMerchantMain:
		option := t.Palette.Color("option")
		return Panel{
			Title: "MERCHANT SHOP",
			Lines: []Line{
				gold,
				{},
				{"What would you like to do?", white},
				{},
				{"  1 - Sell Crops", option},
				{"  2 - Buy Items", option},
				{"  ESC - Close", t.Palette.Color("muted")},
			},
		}, true

	case farm.ModeMerchantSell:
		lines := []Line{gold, {}, {"Your Inventory:", white}}
		lines = append(lines, t.stockLines("  ", s.Inventory)...)
		lines = append(lines, Line{}, Line{"Exchange Rates:", white})
		for _, kind := range world.Crops {
			lines = append(lines, Line{
				fmt.Sprintf("  1 %s = %d Gold", t.cropName(kind), s.Rules().Price(kind)),
				t.cropColor(kind),
			})
		}
		return Panel{
			Title:  "SELL CROPS",
			Lines:  lines,
			Footer: "C: Sell Corn | T: Sell Turnips | ESC: Back",
		}, true

	case farm.ModeMerchantBuy:
		return t.buyPanel(s, gold), true

	case farm.ModeShed:
		lines := []Line{{"Stored Items:", white}}
		lines = append(lines, t.stockLines("  ", s.Shed)...)
		lines = append(lines, Line{}, Line{"Your Inventory:", white})
		lines = append(lines, t.stockLines("  ", s.Inventory)...)
		return Panel{
			Title:  "SHED STORAGE",
			Lines:  lines,
			Footer: "C: Withdraw Corn | T: Withdraw Turnips | ESC: Close",
		}, true
	}

	return Panel{}, false
}

func (t *Theme) buyPanel(s *farm.State, gold Line) Panel {
	white := t.Palette.Color("text")
	price := s.Rules().HelperPrice

	lines := []Line{gold, {}}
	for _, item := range t.Shop.Items() {
		itemPrice := item.Price
		if item.ID == gamedata.HelperItemID {
			itemPrice = price
		}
		lines = append(lines,
			Line{item.Name, t.Palette.Color("helper")},
			Line{fmt.Sprintf("Price: %d Gold", itemPrice), t.Palette.Color("gold")},
			Line{},
		)
		for _, d := range item.Description {
			lines = append(lines, Line{d, white})
		}
		lines = append(lines, Line{})
	}

	footer := "ESC - Back"
	switch {
	case s.HasHelper():
		lines = append(lines, Line{"STATUS: Already Purchased!", t.Palette.Color("option")})
	case s.Gold >= price:
		footer = "Press B to Buy | ESC - Back"
	default:
		lines = append(lines, Line{fmt.Sprintf("Need %d more gold!", price-s.Gold), t.Palette.Color("warning")})
	}

	return Panel{Title: "BUY ITEMS", Lines: lines, Footer: footer}
}

// cropGlyphs joins the glyphs of every defined crop, e.g. "C/T".
func (t *Theme) cropGlyphs() string {
	glyphs := make([]string, 0, t.Crops.Count())
	for _, c := range t.Crops.All() {
		glyphs = append(glyphs, string(c.GlyphRune()))
	}
	return strings.Join(glyphs, "/")
}

func (t *Theme) stockLines(indent string, st farm.Stock) []Line {
	lines := make([]Line, 0, len(world.Crops))
	for _, kind := range world.Crops {
		name := kind.String()
		if def := t.Crops.GetByID(name); def != nil {
			name = def.Plural
		}
		lines = append(lines, Line{fmt.Sprintf("%s%s: %d", indent, name, st.Count(kind)), t.cropColor(kind)})
	}
	return lines
}

func (t *Theme) cropName(kind world.Kind) string {
	if def := t.Crops.GetByID(kind.String()); def != nil {
		return def.Name
	}
	return kind.String()
}

// cropColor is the text colour for a crop's counts.
func (t *Theme) cropColor(kind world.Kind) tcell.Color {
	return t.Palette.Color(kind.String())
}
