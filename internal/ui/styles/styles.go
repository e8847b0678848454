// Package styles provides the lipgloss styles and glyphs of the prompt.
//
// A [Theme] assigns a color to every prompt role; [NewPalette] turns it into
// ready-to-render styles (bold where the summary calls for it) together with
// the active [Symbols].
package styles

import (
	"charm.land/lipgloss/v2"

	"github.com/raphi011/gitprompt/internal/config"
)

// Palette holds one style per prompt role plus the glyph set
type Palette struct {
	Path       lipgloss.Style
	Branch     lipgloss.Style
	Dirty      lipgloss.Style
	New        lipgloss.Style
	Untracked  lipgloss.Style
	Deleted    lipgloss.Style
	Moved      lipgloss.Style
	Clean      lipgloss.Style
	Divergence lipgloss.Style

	Symbols Symbols
}

// NewPalette builds the role styles for t.
// New, untracked, deleted, moved and clean markers are bold.
func NewPalette(t Theme, sym Symbols) Palette {
	return Palette{
		Path:       lipgloss.NewStyle().Foreground(t.Path),
		Branch:     lipgloss.NewStyle().Foreground(t.Branch),
		Dirty:      lipgloss.NewStyle().Foreground(t.Dirty),
		New:        lipgloss.NewStyle().Foreground(t.New).Bold(true),
		Untracked:  lipgloss.NewStyle().Foreground(t.Untracked).Bold(true),
		Deleted:    lipgloss.NewStyle().Foreground(t.Deleted).Bold(true),
		Moved:      lipgloss.NewStyle().Foreground(t.Moved).Bold(true),
		Clean:      lipgloss.NewStyle().Foreground(t.Clean).Bold(true),
		Divergence: lipgloss.NewStyle().Foreground(t.Divergence),
		Symbols:    sym,
	}
}

// PaletteFor is NewPalette over the theme and glyphs selected by cfg.
func PaletteFor(cfg config.ThemeConfig, isDark func() bool) Palette {
	return NewPalette(Select(cfg, isDark), SymbolsFor(cfg.Nerdfont))
}

// Unstyled returns a palette with no colors or attributes, for tests and
// plain output.
func Unstyled() Palette {
	s := lipgloss.NewStyle()
	return Palette{
		Path: s, Branch: s, Dirty: s, New: s, Untracked: s,
		Deleted: s, Moved: s, Clean: s, Divergence: s,
		Symbols: DefaultSymbols,
	}
}
