package game

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/farmsim/internal/farm"
	"github.com/samdwyer/farmsim/internal/gamedata"
	"github.com/samdwyer/farmsim/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible fields and plantings.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`

	TickRate  int    `yaml:"tickRate"`  // simulation ticks per second
	HoldTicks int    `yaml:"holdTicks"` // ticks a movement key counts as held after its last press
	LogFile   string `yaml:"logFile"`   // empty disables logging

	// SaveSlot names the saved session. Empty disables saving.
	SaveSlot string `yaml:"saveSlot"`
	// Resume loads SaveSlot on start instead of creating a new field.
	Resume bool `yaml:"resume"`

	Telemetry bool `yaml:"telemetry"`

	Rules farm.Rules `yaml:"rules"`
}

// DefaultConfig returns the configuration used when no file is present.
// Crop and helper prices come from the embedded game data.
func DefaultConfig() Config {
	return Config{
		TickRate:  60,
		HoldTicks: 12,
		LogFile:   "farmsim.log",
		Telemetry: true,
		Rules:     defaultRules(),
	}
}

func defaultRules() farm.Rules {
	rules := farm.DefaultRules()

	crops := gamedata.MustLoadCropRegistry()
	if corn := crops.GetByID(world.KindCorn.String()); corn != nil {
		rules.CornPrice = corn.Price
	}
	if turnip := crops.GetByID(world.KindTurnip.String()); turnip != nil {
		rules.TurnipPrice = turnip.Price
	}
	if helper := gamedata.MustLoadShop().GetByID(gamedata.HelperItemID); helper != nil {
		rules.HelperPrice = helper.Price
	}
	return rules
}

// LoadConfig reads a YAML config file over the defaults. A missing file is
// not an error; the defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config YAML from %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config in %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the loop settings and the rules.
func (c Config) Validate() error {
	if c.TickRate < 1 || c.TickRate > 1000 {
		return fmt.Errorf("tickRate must be between 1 and 1000, got %d", c.TickRate)
	}
	if c.HoldTicks < 1 {
		return fmt.Errorf("holdTicks must be at least 1, got %d", c.HoldTicks)
	}
	if c.Resume && c.SaveSlot == "" {
		return errors.New("resume requires a saveSlot")
	}
	if err := c.Rules.Validate(); err != nil {
		return fmt.Errorf("rules: %w", err)
	}
	return nil
}
