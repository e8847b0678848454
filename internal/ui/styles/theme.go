package styles

import (
	"image/color"
	"os"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/gitprompt/internal/config"
)

// Theme defines the color of each prompt role
type Theme struct {
	Path       color.Color // shortened working directory
	Branch     color.Color // branch name
	Dirty      color.Color // modified or type-changed files
	New        color.Color // files added to the index
	Untracked  color.Color // files unknown to git
	Deleted    color.Color // deleted files
	Moved      color.Color // renamed files
	Clean      color.Color // clean checkmark
	Divergence color.Color // ahead/behind arrows
}

// themeFamily groups light and dark variants of a theme
type themeFamily struct {
	Light *Theme // nil if no light variant
	Dark  *Theme // nil if no dark variant
}

// Preset themes - Dark variants
var (
	// DefaultTheme uses the 16 basic ANSI colors, so it follows the terminal palette
	DefaultTheme = Theme{
		Path:       lipgloss.Color("4"), // blue
		Branch:     lipgloss.Color("2"), // green
		Dirty:      lipgloss.Color("4"), // blue
		New:        lipgloss.Color("2"), // green
		Untracked:  lipgloss.Color("3"), // yellow
		Deleted:    lipgloss.Color("1"), // red
		Moved:      lipgloss.Color("3"), // yellow
		Clean:      lipgloss.Color("2"), // green
		Divergence: lipgloss.Color("6"), // cyan
	}

	// DraculaTheme is based on the Dracula color scheme (dark only)
	DraculaTheme = Theme{
		Path:       lipgloss.Color("#bd93f9"), // purple
		Branch:     lipgloss.Color("#50fa7b"), // green
		Dirty:      lipgloss.Color("#8be9fd"), // cyan
		New:        lipgloss.Color("#50fa7b"), // green
		Untracked:  lipgloss.Color("#f1fa8c"), // yellow
		Deleted:    lipgloss.Color("#ff5555"), // red
		Moved:      lipgloss.Color("#ffb86c"), // orange
		Clean:      lipgloss.Color("#50fa7b"), // green
		Divergence: lipgloss.Color("#ff79c6"), // pink
	}

	// NordTheme is based on the Nord color scheme (dark)
	NordTheme = Theme{
		Path:       lipgloss.Color("#81a1c1"), // nord9 (frost blue)
		Branch:     lipgloss.Color("#a3be8c"), // nord14 (aurora green)
		Dirty:      lipgloss.Color("#88c0d0"), // nord8 (frost cyan)
		New:        lipgloss.Color("#a3be8c"), // nord14
		Untracked:  lipgloss.Color("#ebcb8b"), // nord13 (aurora yellow)
		Deleted:    lipgloss.Color("#bf616a"), // nord11 (aurora red)
		Moved:      lipgloss.Color("#d08770"), // nord12 (aurora orange)
		Clean:      lipgloss.Color("#a3be8c"), // nord14
		Divergence: lipgloss.Color("#b48ead"), // nord15 (aurora purple)
	}

	// GruvboxTheme is based on the Gruvbox color scheme (dark)
	GruvboxTheme = Theme{
		Path:       lipgloss.Color("#83a598"), // blue
		Branch:     lipgloss.Color("#b8bb26"), // green
		Dirty:      lipgloss.Color("#83a598"), // blue
		New:        lipgloss.Color("#b8bb26"), // green
		Untracked:  lipgloss.Color("#fabd2f"), // yellow
		Deleted:    lipgloss.Color("#fb4934"), // red
		Moved:      lipgloss.Color("#fe8019"), // orange
		Clean:      lipgloss.Color("#b8bb26"), // green
		Divergence: lipgloss.Color("#8ec07c"), // aqua
	}

	// CatppuccinMochaTheme is based on Catppuccin Mocha (dark)
	CatppuccinMochaTheme = Theme{
		Path:       lipgloss.Color("#89b4fa"), // blue
		Branch:     lipgloss.Color("#a6e3a1"), // green
		Dirty:      lipgloss.Color("#89b4fa"), // blue
		New:        lipgloss.Color("#a6e3a1"), // green
		Untracked:  lipgloss.Color("#f9e2af"), // yellow
		Deleted:    lipgloss.Color("#f38ba8"), // red
		Moved:      lipgloss.Color("#fab387"), // peach
		Clean:      lipgloss.Color("#a6e3a1"), // green
		Divergence: lipgloss.Color("#94e2d5"), // teal
	}

	// NoneTheme renders without any colors (uses terminal defaults)
	// Bold is preserved
	NoneTheme = Theme{
		Path:       lipgloss.NoColor{},
		Branch:     lipgloss.NoColor{},
		Dirty:      lipgloss.NoColor{},
		New:        lipgloss.NoColor{},
		Untracked:  lipgloss.NoColor{},
		Deleted:    lipgloss.NoColor{},
		Moved:      lipgloss.NoColor{},
		Clean:      lipgloss.NoColor{},
		Divergence: lipgloss.NoColor{},
	}
)

// Preset themes - Light variants
var (
	// NordLightTheme is based on the Nord color scheme (light)
	NordLightTheme = Theme{
		Path:       lipgloss.Color("#5e81ac"), // nord10
		Branch:     lipgloss.Color("#4c7a3d"), // darkened nord14
		Dirty:      lipgloss.Color("#5e81ac"), // nord10
		New:        lipgloss.Color("#4c7a3d"),
		Untracked:  lipgloss.Color("#b5892b"), // darkened nord13
		Deleted:    lipgloss.Color("#bf616a"), // nord11
		Moved:      lipgloss.Color("#d08770"), // nord12
		Clean:      lipgloss.Color("#4c7a3d"),
		Divergence: lipgloss.Color("#b48ead"), // nord15
	}

	// GruvboxLightTheme is based on the Gruvbox color scheme (light)
	GruvboxLightTheme = Theme{
		Path:       lipgloss.Color("#076678"), // blue (dark for contrast)
		Branch:     lipgloss.Color("#79740e"), // green (dark)
		Dirty:      lipgloss.Color("#076678"),
		New:        lipgloss.Color("#79740e"),
		Untracked:  lipgloss.Color("#b57614"), // yellow (dark)
		Deleted:    lipgloss.Color("#9d0006"), // red (dark)
		Moved:      lipgloss.Color("#af3a03"), // orange (dark)
		Clean:      lipgloss.Color("#79740e"),
		Divergence: lipgloss.Color("#427b58"), // aqua (dark)
	}

	// CatppuccinLatteTheme is based on Catppuccin Latte (light)
	CatppuccinLatteTheme = Theme{
		Path:       lipgloss.Color("#1e66f5"), // blue
		Branch:     lipgloss.Color("#40a02b"), // green
		Dirty:      lipgloss.Color("#1e66f5"),
		New:        lipgloss.Color("#40a02b"),
		Untracked:  lipgloss.Color("#df8e1d"), // yellow
		Deleted:    lipgloss.Color("#d20f39"), // red
		Moved:      lipgloss.Color("#fe640b"), // peach
		Clean:      lipgloss.Color("#40a02b"),
		Divergence: lipgloss.Color("#179299"), // teal
	}
)

// themeFamilies maps theme family names to their light/dark variants
var themeFamilies = map[string]themeFamily{
	"none":       {Light: &NoneTheme, Dark: &NoneTheme},                       // no colors
	"default":    {Light: &DefaultTheme, Dark: &DefaultTheme},                 // terminal palette
	"dracula":    {Dark: &DraculaTheme},                                       // dark only
	"nord":       {Light: &NordLightTheme, Dark: &NordTheme},                  // both variants
	"gruvbox":    {Light: &GruvboxLightTheme, Dark: &GruvboxTheme},            // both variants
	"catppuccin": {Light: &CatppuccinLatteTheme, Dark: &CatppuccinMochaTheme}, // both variants
}

// TerminalIsDark queries the terminal for its background color.
// It talks to the tty on stdin/stderr, so only "auto" mode pays for it.
func TerminalIsDark() bool {
	return lipgloss.HasDarkBackground(os.Stdin, os.Stderr)
}

// Select picks the theme for cfg and applies per-role overrides.
// isDark is only consulted in "auto" mode.
func Select(cfg config.ThemeConfig, isDark func() bool) Theme {
	theme := selectVariant(cfg, isDark)

	override := func(dst *color.Color, value string) {
		if value != "" {
			*dst = lipgloss.Color(value)
		}
	}
	override(&theme.Path, cfg.Path)
	override(&theme.Branch, cfg.Branch)
	override(&theme.Dirty, cfg.Dirty)
	override(&theme.New, cfg.New)
	override(&theme.Untracked, cfg.Untracked)
	override(&theme.Deleted, cfg.Deleted)
	override(&theme.Moved, cfg.Moved)
	override(&theme.Clean, cfg.Clean)
	override(&theme.Divergence, cfg.Divergence)

	return theme
}

// selectVariant picks the light or dark variant of the configured family
func selectVariant(cfg config.ThemeConfig, isDark func() bool) Theme {
	family, ok := themeFamilies[cfg.Name]
	if !ok {
		family = themeFamilies["default"]
	}

	var theme *Theme
	switch cfg.Mode {
	case "light":
		theme = family.Light
	case "auto":
		if isDark() {
			theme = family.Dark
		} else {
			theme = family.Light
		}
	default:
		theme = family.Dark
	}

	// Fall back if the requested variant doesn't exist
	if theme == nil {
		if family.Dark != nil {
			theme = family.Dark
		} else {
			theme = family.Light
		}
	}

	return *theme
}

// PresetNames returns the available theme families
func PresetNames() []string {
	return config.ValidThemeNames
}
