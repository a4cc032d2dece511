package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"rosterhue/theme"
)

type Config struct {
	Palette  theme.Palette `toml:"palette"`
	Nickname Nickname      `toml:"nickname"`
	Log      Log           `toml:"log"`
	unknown  []string      // keys present in the file but not understood
}

type Nickname struct {
	Color           theme.ColorMode `toml:"color"`             // solid or unique (default unique)
	ShowAccessLevel bool            `toml:"show_access_level"` // prefix names with ~&@%+ (default true)
	Format          string          `toml:"format"`            // nick or full (default nick)
}

type Log struct {
	Level string `toml:"level"` // debug, info, warn or error (default info)
}

func Defaults() *Config {
	return &Config{
		Palette: theme.Default(),
		Nickname: Nickname{
			Color:           theme.ColorUnique,
			ShowAccessLevel: true,
			Format:          "nick",
		},
		Log: Log{Level: "info"},
	}
}

// Load loads configuration from explicit path or discovered search path.
// Precedence: provided path (if exists) else first existing search path else defaults.
// Missing file yields defaults and an error; parse errors also return defaults + error.
// A [palette] table must list all eight colors; a missing table keeps the default palette.
func Load(path string) (*Config, error) {
	var chosen string
	if path != "" {
		chosen = path
	} else {
		for _, p := range searchPaths() {
			if _, err := os.Stat(p); err == nil {
				chosen = p
				break
			}
		}
	}
	if chosen == "" { // no file found
		return Defaults(), errors.New("no config file found; using defaults")
	}
	data, err := os.ReadFile(chosen)
	if err != nil {
		return Defaults(), fmt.Errorf("read config: %w", err)
	}
	cfg := Defaults()
	md, err := toml.Decode(string(data), cfg) // decode overlays onto defaults
	if err != nil {
		return Defaults(), fmt.Errorf("parse config %s: %w", chosen, err)
	}
	for _, k := range md.Undecoded() {
		cfg.unknown = append(cfg.unknown, k.String())
	}
	cfg.normalize()
	return cfg, nil
}

func searchPaths() []string {
	var out []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		out = append(out, filepath.Join(xdg, "rosterhue", "config.toml"))
	}
	if home, _ := os.UserHomeDir(); home != "" {
		out = append(out, filepath.Join(home, ".config", "rosterhue", "config.toml"))
	}
	return out
}

// Unknown returns a copy of the keys the file set but nothing reads (may be empty).
func (c *Config) Unknown() []string {
	if len(c.unknown) == 0 {
		return nil
	}
	out := make([]string, len(c.unknown))
	copy(out, c.unknown)
	return out
}

// normalize repairs values the decoder accepted but the program cannot use.
func (c *Config) normalize() {
	if !validFormat(c.Nickname.Format) {
		c.Nickname.Format = "nick"
	}
	if !validLevel(c.Log.Level) {
		c.Log.Level = "info"
	}
}

func validFormat(f string) bool {
	switch f {
	case "nick", "full":
		return true
	}
	return false
}

func validLevel(l string) bool {
	switch l {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}
