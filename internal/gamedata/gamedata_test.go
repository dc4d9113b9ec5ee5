package gamedata

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadCropRegistry(t *testing.T) {
	registry, err := LoadCropRegistry()
	if err != nil {
		t.Fatalf("Failed to load crops: %v", err)
	}

	if registry.Count() != 2 {
		t.Errorf("Expected 2 crops, got %d", registry.Count())
	}

	tests := []struct {
		id     string
		glyph  rune
		price  int
		plural string
	}{
		{"corn", 'C', 1, "Corn"},
		{"turnip", 'T', 2, "Turnips"},
	}
	for _, tt := range tests {
		crop := registry.GetByID(tt.id)
		if crop == nil {
			t.Errorf("Crop %q not found", tt.id)
			continue
		}
		if crop.GlyphRune() != tt.glyph {
			t.Errorf("%s glyph = %c, want %c", tt.id, crop.GlyphRune(), tt.glyph)
		}
		if crop.Price != tt.price {
			t.Errorf("%s price = %d, want %d", tt.id, crop.Price, tt.price)
		}
		if crop.Plural != tt.plural {
			t.Errorf("%s plural = %q, want %q", tt.id, crop.Plural, tt.plural)
		}
	}

	if registry.GetByID("pumpkin") != nil {
		t.Error("GetByID should return nil for unknown crops")
	}
}

func TestLoadShop(t *testing.T) {
	shop, err := LoadShop()
	if err != nil {
		t.Fatalf("Failed to load shop: %v", err)
	}

	helper := shop.GetByID(HelperItemID)
	if helper == nil {
		t.Fatal("helper not for sale")
	}
	if helper.Price != 200 {
		t.Errorf("helper price = %d, want 200", helper.Price)
	}
	if len(helper.Description) == 0 {
		t.Error("helper has no description lines")
	}
}

func TestLoadPalette(t *testing.T) {
	palette, err := LoadPalette()
	if err != nil {
		t.Fatalf("Failed to load palette: %v", err)
	}

	if got := palette.Color("merchant"); got != tcell.NewRGBColor(255, 140, 0) {
		t.Errorf("merchant color = %v, want orange", got)
	}
	if got := palette.Color("no-such-color"); got != tcell.ColorWhite {
		t.Errorf("missing color = %v, want white fallback", got)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#2d5016", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false},
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}

	c, _ := ParseHexColor("#0064FF")
	if c != tcell.NewRGBColor(0, 100, 255) {
		t.Errorf("ParseHexColor(#0064FF) = %v, want rgb(0,100,255)", c)
	}
}
