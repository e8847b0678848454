package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Valid enum values for configuration fields.
var (
	ValidBackends   = []string{BackendNative, BackendGit}
	ValidColorModes = []string{ColorAlways, ColorAuto, ColorNever}
	ValidThemeNames = []string{"default", "none", "dracula", "nord", "gruvbox", "catppuccin"}
	ValidThemeModes = []string{"auto", "light", "dark"}
)

// Validate checks enum fields and the timeout.
func (c Config) Validate() error {
	if err := validateEnum(c.Backend, "backend", ValidBackends); err != nil {
		return err
	}
	if err := validateEnum(c.Color, "color", ValidColorModes); err != nil {
		return err
	}
	if err := validateEnum(c.Theme.Name, "theme.name", ValidThemeNames); err != nil {
		return err
	}
	if err := validateEnum(c.Theme.Mode, "theme.mode", ValidThemeModes); err != nil {
		return err
	}
	if c.Timeout.Duration < 0 {
		return errors.New("timeout must not be negative")
	}
	return nil
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
