package ui

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/farmsim/internal/farm"
	"github.com/samdwyer/farmsim/internal/world"
)

func mustTheme(t *testing.T) *Theme {
	t.Helper()
	theme, err := LoadTheme()
	if err != nil {
		t.Fatalf("LoadTheme() = %v", err)
	}
	return theme
}

func newState() *farm.State {
	rules := farm.DefaultRules()
	rules.InitialCrops = 0
	return farm.New(rules, rand.New(rand.NewSource(1)))
}

func TestCellView(t *testing.T) {
	theme := mustTheme(t)

	tests := []struct {
		name string
		cell world.Cell
		text string
		bg   tcell.Color
	}{
		{"empty", world.Cell{}, "", tcell.NewRGBColor(45, 80, 22)},
		{"merchant", world.Cell{Kind: world.KindMerchant}, "M", tcell.NewRGBColor(255, 140, 0)},
		{"shed", world.Cell{Kind: world.KindShed}, "S", tcell.NewRGBColor(139, 69, 19)},
		{"seedling corn", world.Cell{Kind: world.KindCorn}, "0%", tcell.NewRGBColor(100, 100, 0)},
		{"half turnip", world.Cell{Kind: world.KindTurnip, Growth: 50}, "50%", tcell.NewRGBColor(177, 0, 177)},
		{"ripe corn", world.Cell{Kind: world.KindCorn, Growth: 100}, "C", tcell.NewRGBColor(255, 255, 0)},
		{"ripe turnip", world.Cell{Kind: world.KindTurnip, Growth: 100}, "T", tcell.NewRGBColor(255, 0, 255)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := theme.Cell(tt.cell)
			if v.Text != tt.text {
				t.Errorf("Text = %q, want %q", v.Text, tt.text)
			}
			if v.Bg != tt.bg {
				t.Errorf("Bg = %v, want %v", v.Bg, tt.bg)
			}
		})
	}
}

func TestGrowthColorIsMonotonic(t *testing.T) {
	prev := int32(-1)
	for g := 0; g <= world.MaxGrowth; g += 2 {
		r, _, b := GrowthColor("#FF00FF", g).RGB()
		if r < prev || r != b {
			t.Fatalf("growth %d: r=%d b=%d after r=%d", g, r, b, prev)
		}
		prev = r
	}
}

func linesText(lines []Line) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l.Text)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestSidebar(t *testing.T) {
	theme := mustTheme(t)
	s := newState()
	s.Inventory = farm.Stock{Corn: 3, Turnip: 1}
	s.Shed = farm.Stock{Turnip: 7}

	text := linesText(theme.Sidebar(s))
	for _, want := range []string{
		"Gold: 200",
		"  Corn: 3\n  Turnips: 1\n",
		"Shed Storage:\n  Corn: 0\n  Turnips: 7\n",
		"AI Helper: None",
		"C/T - Ripe crops",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("sidebar missing %q:\n%s", want, text)
		}
	}

	s.BuyHelper()
	if text := linesText(theme.Sidebar(s)); !strings.Contains(text, "AI Helper: Active") {
		t.Errorf("sidebar after purchase:\n%s", text)
	}
}

func TestPanel(t *testing.T) {
	theme := mustTheme(t)

	tests := []struct {
		name   string
		mode   farm.Mode
		gold   int
		owned  bool
		title  string
		want   string
		footer string
	}{
		{"main", farm.ModeMerchantMain, 200, false, "MERCHANT SHOP", "1 - Sell Crops", ""},
		{"sell", farm.ModeMerchantSell, 200, false, "SELL CROPS", "1 Turnip = 2 Gold", "C: Sell Corn | T: Sell Turnips | ESC: Back"},
		{"buy affordable", farm.ModeMerchantBuy, 250, false, "BUY ITEMS", "Price: 200 Gold", "Press B to Buy | ESC - Back"},
		{"buy too poor", farm.ModeMerchantBuy, 150, false, "BUY ITEMS", "Need 50 more gold!", "ESC - Back"},
		{"buy owned", farm.ModeMerchantBuy, 500, true, "BUY ITEMS", "STATUS: Already Purchased!", "ESC - Back"},
		{"shed", farm.ModeShed, 200, false, "SHED STORAGE", "Stored Items:", "C: Withdraw Corn | T: Withdraw Turnips | ESC: Close"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newState()
			if tt.owned {
				s.BuyHelper()
			}
			s.Gold = tt.gold
			s.Mode = tt.mode

			p, ok := theme.Panel(s)
			if !ok {
				t.Fatal("Panel() = false for an overlay mode")
			}
			if p.Title != tt.title {
				t.Errorf("Title = %q, want %q", p.Title, tt.title)
			}
			if text := linesText(p.Lines); !strings.Contains(text, tt.want) {
				t.Errorf("panel missing %q:\n%s", tt.want, text)
			}
			if p.Footer != tt.footer {
				t.Errorf("Footer = %q, want %q", p.Footer, tt.footer)
			}
		})
	}

	if _, ok := theme.Panel(newState()); ok {
		t.Error("Panel() = true while playing")
	}
}

func TestScreenToGrid(t *testing.T) {
	tests := []struct {
		x, y int
		want world.Point
		ok   bool
	}{
		{0, 0, world.Pt(0, 0), true},
		{2, 0, world.Pt(0, 0), true},
		{3, 4, world.Pt(1, 4), true},
		{world.Size*CellWidth - 1, world.Size - 1, world.Pt(world.Size-1, world.Size-1), true},
		{world.Size * CellWidth, 0, world.Pt(world.Size, 0), false},
		{5, world.Size, world.Pt(1, world.Size), false},
		{-1, 3, world.Point{}, false},
	}
	for _, tt := range tests {
		got, ok := ScreenToGrid(tt.x, tt.y)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ScreenToGrid(%d,%d) = %v, %v; want %v, %v", tt.x, tt.y, got, ok, tt.want, tt.ok)
		}
	}
}

func TestBuyPanelListsShopItems(t *testing.T) {
	theme := mustTheme(t)
	s := newState()
	s.Mode = farm.ModeMerchantBuy

	panel, ok := theme.Panel(s)
	if !ok {
		t.Fatal("no panel for merchant_buy")
	}
	text := linesText(panel.Lines)
	for _, item := range theme.Shop.Items() {
		if !strings.Contains(text, item.Name) {
			t.Errorf("buy panel missing item %q:\n%s", item.Name, text)
		}
		for _, d := range item.Description {
			if !strings.Contains(text, d) {
				t.Errorf("buy panel missing description %q", d)
			}
		}
	}
}
