// Package output provides context-aware output for gitprompt.
// Stdout carries the prompt line; stderr (via log package) carries
// diagnostics. ANSI sequences written through a Printer are downgraded or
// stripped to match the selected color profile.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/gitprompt/internal/config"
)

type ctxKey struct{}

// Printer writes primary output to stdout through a color profile.
type Printer struct {
	w  io.Writer
	cw *colorprofile.Writer
}

// New creates a Printer writing to w with the given color profile.
func New(w io.Writer, profile colorprofile.Profile) *Printer {
	return &Printer{w: w, cw: &colorprofile.Writer{Forward: w, Profile: profile}}
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext retrieves the Printer from context.
// Returns a Printer on os.Stdout with a detected profile if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout, colorprofile.Detect(os.Stdout, os.Environ()))
}

// ProfileFor maps a config color mode to a color profile.
//
// "always" ignores whether w is a terminal, since a prompt command's stdout
// is normally captured by the shell; NO_COLOR and TERM still apply.
// "never" strips all escape sequences. Anything else detects from w.
func ProfileFor(mode string, w io.Writer, environ []string) colorprofile.Profile {
	switch mode {
	case config.ColorAlways:
		return colorprofile.Env(environ)
	case config.ColorNever:
		return colorprofile.NoTTY
	default:
		return colorprofile.Detect(w, environ)
	}
}

// Print writes output without a newline.
func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.cw, a...)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.cw, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.cw, a...)
}

// Profile returns the active color profile.
func (p *Printer) Profile() colorprofile.Profile {
	return p.cw.Profile
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}
