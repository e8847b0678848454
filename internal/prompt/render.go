package prompt

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/gitprompt/internal/ui/styles"
)

// Token is one styled piece of a summary.
type Token struct {
	Text  string
	Style lipgloss.Style
}

// Summary is the ordered token sequence printed after the path.
type Summary []Token

// String renders every token with its style, without separators.
func (s Summary) String() string {
	var b strings.Builder
	for _, t := range s {
		b.WriteString(t.Style.Render(t.Text))
	}
	return b.String()
}

// Plain concatenates the token text without styling.
func (s Summary) Plain() string {
	var b strings.Builder
	for _, t := range s {
		b.WriteString(t.Text)
	}
	return b.String()
}

// Render lays out branch, flags and divergence markers.
//
// Spacing depends on what precedes a marker: the clean mark always has a
// leading space, ahead gets one after clean, deleted or moved, and behind
// gets one after clean or moved unless ahead is shown.
func Render(branch string, f Flags, ahead, behind bool, pal styles.Palette) Summary {
	sym := pal.Symbols
	s := Summary{{Text: branch, Style: pal.Branch}}

	add := func(on bool, text string, style lipgloss.Style) {
		if on {
			s = append(s, Token{Text: text, Style: style})
		}
	}

	clean := f.Clean()
	add(f.Dirty, sym.Dirty, pal.Dirty)
	add(f.New, sym.New, pal.New)
	add(f.Untracked, sym.Untracked, pal.Untracked)
	add(f.Deleted, sym.Deleted, pal.Deleted)
	add(f.Moved, sym.Moved, pal.Moved)
	add(clean, " "+sym.Clean, pal.Clean)

	add(ahead, spaced(clean || f.Deleted || f.Moved, sym.Ahead), pal.Divergence)
	add(behind, spaced(!ahead && (clean || f.Moved), sym.Behind), pal.Divergence)

	return s
}

func spaced(space bool, glyph string) string {
	if space {
		return " " + glyph
	}
	return glyph
}
