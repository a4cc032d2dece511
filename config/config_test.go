package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterhue/theme"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Explicit(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[palette]
background = "#ffffff"
text = "#000000"
action = "#b1b695"
accent = "#336699"
alert = "#ffa07a"
error = "#e06b75"
info = "#f5d76e"
success = "#b1b695"

[nickname]
color = "solid"
show_access_level = false
format = "full"

[log]
level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "#336699", theme.ColorToHex(cfg.Palette.Accent))
	assert.False(t, cfg.Palette.IsDark())
	assert.Equal(t, theme.ColorSolid, cfg.Nickname.Color)
	assert.False(t, cfg.Nickname.ShowAccessLevel)
	assert.Equal(t, "full", cfg.Nickname.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Unknown())
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[nickname]
format = "sideways"

[log]
level = "loud"

[extra]
thing = 1
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, theme.Default(), cfg.Palette)
	assert.Equal(t, theme.ColorUnique, cfg.Nickname.Color)
	assert.True(t, cfg.Nickname.ShowAccessLevel)
	assert.Equal(t, "nick", cfg.Nickname.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Contains(t, cfg.Unknown(), "extra.thing")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"partial palette", "[palette]\nbackground = \"#000000\"\n", "missing field"},
		{"bad hex", "[palette]\nbackground = \"#00000\"\ntext = \"#000000\"\naction = \"#000000\"\naccent = \"#000000\"\nalert = \"#000000\"\nerror = \"#000000\"\ninfo = \"#000000\"\nsuccess = \"#000000\"\n", "not a valid hex"},
		{"bad mode", "[nickname]\ncolor = \"rainbow\"\n", "invalid color mode"},
		{"bad toml", "[nickname\n", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)
			cfg, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, Defaults(), cfg)
		})
	}
}

func TestLoad_Discovery(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	assert.Error(t, err, "nothing to find yet")
	assert.Equal(t, Defaults(), cfg)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "rosterhue"), 0o700))
	writeConfig(t, filepath.Join(dir, "rosterhue"), "[nickname]\ncolor = \"solid\"\n")

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, theme.ColorSolid, cfg.Nickname.Color)
}

func TestLoad_MissingExplicit(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
	assert.Equal(t, Defaults(), cfg)
}
