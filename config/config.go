package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/milk9111/topdown/common"
)

// DefaultPath is where the game looks for its config file.
const DefaultPath = "config/game.toml"

type Config struct {
	Window  WindowConfig  `toml:"window"`
	World   WorldConfig   `toml:"world"`
	Logging LoggingConfig `toml:"logging"`
	Dev     DevConfig     `toml:"dev"`
}

type WindowConfig struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Resizable bool   `toml:"resizable"`
}

type WorldConfig struct {
	TileSize int `toml:"tile_size"`
	// MapDir is a directory of map CSVs on disk; empty uses the embedded map.
	MapDir string `toml:"map_dir"`
	// AssetsDir is a graphics directory on disk; empty uses the embedded graphics.
	AssetsDir      string `toml:"assets_dir"`
	StrictMapCodes bool   `toml:"strict_map_codes"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type DevConfig struct {
	WatchPrefabs bool `toml:"watch_prefabs"`
	Debug        bool `toml:"debug"`
}

// Load reads path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadOrDefault is Load, except that a missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	return cfg, err
}

// Parse decodes TOML data over the defaults. name is used in errors only.
func Parse(data []byte, name string) (*Config, error) {
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", name, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.World.TileSize <= 0 {
		return fmt.Errorf("world.tile_size must be positive, got %d", c.World.TileSize)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "topdown",
			Width:     common.BaseWidth,
			Height:    common.BaseHeight,
			Resizable: true,
		},
		World: WorldConfig{
			TileSize: common.TileSize,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
