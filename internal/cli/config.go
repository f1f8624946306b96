package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gridboard/pkg/grid"
	"github.com/matzehuels/gridboard/pkg/grid/session"
)

// =============================================================================
// Config
// =============================================================================

// Config holds user configuration loaded from config.toml.
type Config struct {
	Grid     GridConfig     `toml:"grid"`
	Strategy StrategyConfig `toml:"strategy"`
	Store    StoreConfig    `toml:"store"`
}

// GridConfig configures the default board created for new layouts.
type GridConfig struct {
	Columns int     `toml:"columns"`
	Rows    int     `toml:"rows"`
	Spacing float64 `toml:"spacing"`
	Sizing  string  `toml:"sizing"`
}

// StrategyConfig configures edit session behavior.
type StrategyConfig struct {
	Allowed          bool `toml:"allowed"`
	EnterOnLongTap   bool `toml:"enter_on_long_tap"`
	ExitOnTap        bool `toml:"exit_on_tap"`
	Immediate        bool `toml:"immediate"`
	MoveOnlyToNearby bool `toml:"move_only_to_nearby"`
}

// StoreConfig selects and configures the layout store backend.
type StoreConfig struct {
	Backend       string `toml:"backend"`
	RedisURL      string `toml:"redis_url"`
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			Columns: 6,
			Rows:    4,
			Spacing: 1,
			Sizing:  grid.SizingFixedAspect.String(),
		},
		Strategy: StrategyConfig{
			Allowed:        true,
			EnterOnLongTap: true,
			ExitOnTap:      true,
		},
		Store: StoreConfig{
			Backend:       "file",
			RedisURL:      "redis://localhost:6379/0",
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: appName,
		},
	}
}

// LoadConfig reads a TOML config file, layering it over the defaults.
// A missing file is not an error and yields the defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// GridSettings converts the configured defaults into a validated board config.
func (c *Config) GridSettings() (grid.Config, error) {
	sizing, err := grid.ParseSizingMode(c.Grid.Sizing)
	if err != nil {
		return grid.Config{}, err
	}
	cfg := grid.Config{
		Columns: c.Grid.Columns,
		Rows:    c.Grid.Rows,
		Spacing: c.Grid.Spacing,
		Sizing:  sizing,
	}
	if err := cfg.Validate(); err != nil {
		return grid.Config{}, err
	}
	return cfg, nil
}

// SessionStrategy converts the configured strategy booleans.
func (c *Config) SessionStrategy() session.Strategy {
	return session.Strategy{
		Allowed:          c.Strategy.Allowed,
		EnterOnLongTap:   c.Strategy.EnterOnLongTap,
		ExitOnTap:        c.Strategy.ExitOnTap,
		Immediate:        c.Strategy.Immediate,
		MoveOnlyToNearby: c.Strategy.MoveOnlyToNearby,
	}
}
