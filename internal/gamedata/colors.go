package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts "#RRGGBB" (the # is optional) to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: want 6 digits", hex)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return tcell.NewHexColor(int32(v)), nil
}

// Palette maps colour names from palette.yaml to terminal colours.
type Palette struct {
	colors map[string]tcell.Color
}

type paletteFile struct {
	Colors map[string]string `yaml:"colors"`
}

// LoadPalette loads and parses palette.yaml.
func LoadPalette() (*Palette, error) {
	file, err := Load[paletteFile]("palette.yaml")
	if err != nil {
		return nil, err
	}
	p := &Palette{colors: make(map[string]tcell.Color, len(file.Colors))}
	for name, hex := range file.Colors {
		c, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("palette color %s: %w", name, err)
		}
		p.colors[name] = c
	}
	return p, nil
}

// Color returns the named colour, or white if the palette does not define it.
func (p *Palette) Color(name string) tcell.Color {
	if c, ok := p.colors[name]; ok {
		return c
	}
	return tcell.ColorWhite
}
