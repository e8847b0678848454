package styles

// Symbols holds the glyphs of a prompt summary.
// Spacing between glyphs is decided by the renderer, not stored here.
type Symbols struct {
	Dirty     string
	New       string
	Untracked string
	Deleted   string
	Moved     string
	Clean     string
	Ahead     string
	Behind    string
}

// DefaultSymbols are fullwidth/unicode glyphs that need no special font
var DefaultSymbols = Symbols{
	Dirty:     "＊",
	New:       "＋",
	Untracked: "？",
	Deleted:   "Ｘ",
	Moved:     "➜",
	Clean:     "✔",
	Ahead:     "↑",
	Behind:    "↓",
}

// NerdfontSymbols use nerd font octicons
var NerdfontSymbols = Symbols{
	Dirty:     "\uf459", // nf-oct-diff_modified
	New:       "\uf457", // nf-oct-diff_added
	Untracked: "\uf420", // nf-oct-question
	Deleted:   "\uf458", // nf-oct-diff_removed
	Moved:     "\uf45a", // nf-oct-diff_renamed
	Clean:     "\uf42e", // nf-oct-check
	Ahead:     "\uf431", // nf-oct-arrow_up
	Behind:    "\uf433", // nf-oct-arrow_down
}

// SymbolsFor returns the glyph set for the nerdfont setting
func SymbolsFor(nerdfont bool) Symbols {
	if nerdfont {
		return NerdfontSymbols
	}
	return DefaultSymbols
}
