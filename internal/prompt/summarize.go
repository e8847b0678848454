package prompt

import (
	"context"

	"github.com/raphi011/gitprompt/internal/log"
	"github.com/raphi011/gitprompt/internal/ui/styles"
)

// Summarize builds the summary for src. It returns false when HEAD or the
// working tree status cannot be read; the caller then prints no summary.
// Divergence failures (no upstream, detached HEAD, missing objects) only
// hide the arrows.
func Summarize(ctx context.Context, src Source, pal styles.Palette) (Summary, bool) {
	l := log.FromContext(ctx)

	branch, err := src.Head(ctx)
	if err != nil {
		l.Debug("no summary: HEAD unreadable", "error", err)
		return nil, false
	}

	entries, err := src.Status(ctx)
	if err != nil {
		l.Debug("no summary: status failed", "branch", branch, "error", err)
		return nil, false
	}
	flags := Classify(entries)

	var ahead, behind bool
	if d, err := src.Divergence(ctx); err != nil {
		l.Debug("divergence unavailable", "branch", branch, "error", err)
	} else {
		ahead, behind = d.Ahead > 0, d.Behind > 0
	}

	l.Debug("summary",
		"branch", branch,
		"entries", len(entries),
		"flags", flags,
		"ahead", ahead,
		"behind", behind,
	)
	return Render(branch, flags, ahead, behind, pal), true
}
