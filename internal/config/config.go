package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/gitprompt/internal/storage"
)

// Backends for reading repository state.
const (
	BackendNative = "native" // pure Go via go-git
	BackendGit    = "git"    // shells out to the git binary
)

// Color modes for the prompt line.
const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

// Environment variables that override the config file.
const (
	EnvConfig  = "GITPROMPT_CONFIG"
	EnvBackend = "GITPROMPT_BACKEND"
	EnvColor   = "GITPROMPT_COLOR"
)

// Duration is a time.Duration that reads and writes TOML strings like "250ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ThemeConfig selects a color preset and optional per-role overrides.
type ThemeConfig struct {
	Name     string `toml:"name"`     // preset family, see ValidThemeNames
	Mode     string `toml:"mode"`     // "dark", "light" or "auto"
	Nerdfont bool   `toml:"nerdfont"` // use nerd font glyphs

	Path       string `toml:"path"`
	Branch     string `toml:"branch"`
	Dirty      string `toml:"dirty"`
	New        string `toml:"new"`
	Untracked  string `toml:"untracked"`
	Deleted    string `toml:"deleted"`
	Moved      string `toml:"moved"`
	Clean      string `toml:"clean"`
	Divergence string `toml:"divergence"`
}

// DefaultFormat is the default layout of the prompt line
const DefaultFormat = "{path} {summary}"

// Config holds the gitprompt configuration
type Config struct {
	Format  string      `toml:"format"`
	Backend string      `toml:"backend"`
	Color   string      `toml:"color"`
	Timeout Duration    `toml:"timeout"` // zero means no limit
	Theme   ThemeConfig `toml:"theme"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Format:  DefaultFormat,
		Backend: BackendNative,
		Color:   ColorAlways,
		Theme: ThemeConfig{
			Name: "default",
			Mode: "dark",
		},
	}
}

type ctxKey struct{}

// WithConfig attaches cfg to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext returns the config stored in ctx, or nil.
func FromContext(ctx context.Context) *Config {
	cfg, _ := ctx.Value(ctxKey{}).(*Config)
	return cfg
}

// Path returns the config file location.
// GITPROMPT_CONFIG wins over ~/.config/gitprompt/config.toml.
func Path() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gitprompt", "config.toml"), nil
}

// Load reads the config file and applies environment overrides.
// Returns Default() if the file doesn't exist (no error).
// Returns Default() and an error if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return applyEnv(Default(), os.Getenv), nil
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		return Default(), err
	}
	cfg = applyEnv(cfg, os.Getenv)
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// LoadFrom reads and validates the config file at path without env overrides.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// applyEnv overlays GITPROMPT_BACKEND and GITPROMPT_COLOR.
func applyEnv(cfg Config, getenv func(string) string) Config {
	if v := getenv(EnvBackend); v != "" {
		cfg.Backend = v
	}
	if v := getenv(EnvColor); v != "" {
		cfg.Color = v
	}
	return cfg
}

// Encode renders cfg as TOML.
func (c Config) Encode() (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const defaultConfig = `# gitprompt configuration

# Layout of the prompt line. Placeholders:
#   {path}    - working directory with the home directory shortened to ~
#   {summary} - branch and status glyphs, empty outside a repository
#   {branch}  - branch name alone, empty outside a repository
format = "{path} {summary}"

# How repository state is read:
#   "native" - built-in git implementation, no external processes
#   "git"    - runs the git binary (honors global excludes and every git config)
backend = "native"

# When to emit colors:
#   "always" - default; the shell captures stdout, so terminal detection is skipped
#   "auto"   - only when stdout is a terminal
#   "never"  - plain text
# NO_COLOR is respected in every mode.
color = "always"

# Give up on the repository summary after this long (Go duration, e.g. "300ms").
# Empty or "0s" means no limit.
# timeout = "300ms"

[theme]
# Presets: "default", "none", "dracula", "nord", "gruvbox", "catppuccin"
name = "default"

# "dark", "light" or "auto" (auto queries the terminal background)
mode = "dark"

# Use nerd font glyphs instead of the default symbols
# nerdfont = true

# Per-role color overrides (ANSI index or hex)
# path = "4"
# branch = "2"
# dirty = "4"
# new = "2"
# untracked = "3"
# deleted = "1"
# moved = "3"
# clean = "2"
# divergence = "6"
`

// DefaultContent returns the commented default config file.
func DefaultContent() string {
	return defaultConfig
}

// Init creates a default config file at Path().
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := storage.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
