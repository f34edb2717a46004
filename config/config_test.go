package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
[world]
strict_map_codes = true

[logging]
level = "debug"
format = "json"
`), "inline")
	require.NoError(t, err)
	assert.True(t, cfg.World.StrictMapCodes)
	assert.Equal(t, 64, cfg.World.TileSize, "untouched fields keep defaults")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 1280, cfg.Window.Width)
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"tile size":  "[world]\ntile_size = 0\n",
		"format":     "[logging]\nformat = \"xml\"\n",
		"window":     "[window]\nwidth = -1\n",
		"bad syntax": "[world\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(src), name)
			assert.Error(t, err)
		})
	}
}

func TestLoadShippedConfig(t *testing.T) {
	cfg, err := Load("game.toml")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[world\n"), 0o644))
	_, err = LoadOrDefault(bad)
	assert.Error(t, err)
}
