package gamedata

import (
	"errors"
	"fmt"
)

// CropDef defines a plantable crop loaded from crops.yaml.
type CropDef struct {
	ID     string `yaml:"id"`     // Matches world.Kind.String() (e.g., "corn")
	Name   string `yaml:"name"`   // Display name (e.g., "Turnip")
	Plural string `yaml:"plural"` // Display name for counts (e.g., "Turnips")
	Glyph  string `yaml:"glyph"`  // Single character shown on a mature crop
	Color  string `yaml:"color"`  // Hex colour at full growth
	Price  int    `yaml:"price"`  // Gold per unit sold
}

// GlyphRune returns the glyph as a rune for rendering.
func (c *CropDef) GlyphRune() rune {
	if len(c.Glyph) == 0 {
		return '?'
	}
	return rune(c.Glyph[0])
}

// CropsFile represents the structure of crops.yaml.
type CropsFile struct {
	Crops []CropDef `yaml:"crops"`
}

// CropRegistry holds crop definitions keyed by ID.
type CropRegistry struct {
	crops map[string]*CropDef
	all   []CropDef
}

// NewCropRegistry creates a registry from loaded crop definitions.
func NewCropRegistry(crops []CropDef) *CropRegistry {
	r := &CropRegistry{
		crops: make(map[string]*CropDef, len(crops)),
		all:   crops,
	}
	for i := range crops {
		r.crops[crops[i].ID] = &crops[i]
	}
	return r
}

// LoadCropRegistry loads crops.yaml and validates every entry.
func LoadCropRegistry() (*CropRegistry, error) {
	file, err := Load[CropsFile]("crops.yaml")
	if err != nil {
		return nil, err
	}
	if len(file.Crops) == 0 {
		return nil, errors.New("no crops loaded from crops.yaml")
	}
	for _, c := range file.Crops {
		if c.ID == "" {
			return nil, errors.New("crop with empty id in crops.yaml")
		}
		if _, err := ParseHexColor(c.Color); err != nil {
			return nil, fmt.Errorf("crop %s: %w", c.ID, err)
		}
		if c.Price < 0 {
			return nil, fmt.Errorf("crop %s: negative price %d", c.ID, c.Price)
		}
	}
	return NewCropRegistry(file.Crops), nil
}

// MustLoadCropRegistry loads the crop registry, panicking on error.
func MustLoadCropRegistry() *CropRegistry {
	r, err := LoadCropRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// GetByID returns the crop with the given ID, or nil if not found.
func (r *CropRegistry) GetByID(id string) *CropDef {
	return r.crops[id]
}

// All returns all crop definitions in file order.
func (r *CropRegistry) All() []CropDef {
	return r.all
}

// Count returns the number of crops in the registry.
func (r *CropRegistry) Count() int {
	return len(r.all)
}
