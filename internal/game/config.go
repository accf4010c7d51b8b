package game

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/tradeworld/internal/economy"
	"github.com/samdwyer/tradeworld/internal/world"
)

// ConfigEnv names the environment variable holding the config path.
const ConfigEnv = "TRADEWORLD_CONFIG"

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible map generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`

	StartingCash float64   `yaml:"starting_cash"`
	Map          MapConfig `yaml:"map"`
	LogLevel     string    `yaml:"log_level"`
}

// MapConfig sizes the world map and each tile on it.
type MapConfig struct {
	Rows            int    `yaml:"rows"`
	Cols            int    `yaml:"cols"`
	Land            uint64 `yaml:"land"`
	InventoryWeight uint64 `yaml:"inventory_max_weight"`
	InventoryVolume uint64 `yaml:"inventory_max_volume"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	wc := world.DefaultConfig()
	return Config{
		StartingCash: economy.DefaultStartingCash,
		Map: MapConfig{
			Rows:            wc.Rows,
			Cols:            wc.Cols,
			Land:            wc.Land,
			InventoryWeight: wc.InventoryWeight,
			InventoryVolume: wc.InventoryVolume,
		},
		LogLevel: "info",
	}
}

// LoadConfig reads a YAML config over the defaults. An empty path falls
// back to $TRADEWORLD_CONFIG, and to the defaults when that is unset too.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(path) == "" {
		path = os.Getenv(ConfigEnv)
	}
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the game cannot start with.
func (c Config) Validate() error {
	var errs []error
	if c.StartingCash < 0 {
		errs = append(errs, fmt.Errorf("starting_cash must not be negative"))
	}
	if c.Map.Rows <= 0 || c.Map.Cols <= 0 {
		errs = append(errs, fmt.Errorf("map size %dx%d must be positive", c.Map.Rows, c.Map.Cols))
	}
	if c.Map.Land == 0 {
		errs = append(errs, fmt.Errorf("map.land must be positive"))
	}
	if c.Map.InventoryWeight == 0 || c.Map.InventoryVolume == 0 {
		errs = append(errs, fmt.Errorf("inventory capacity must be positive"))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// World converts the map section for world generation.
func (c Config) World() world.Config {
	return world.Config{
		Rows:            c.Map.Rows,
		Cols:            c.Map.Cols,
		Land:            c.Map.Land,
		InventoryWeight: c.Map.InventoryWeight,
		InventoryVolume: c.Map.InventoryVolume,
	}
}
