package main

import (
	"context"
	"errors"

	"github.com/raphi011/gitprompt/internal/config"
	"github.com/raphi011/gitprompt/internal/format"
	"github.com/raphi011/gitprompt/internal/git"
	"github.com/raphi011/gitprompt/internal/log"
	"github.com/raphi011/gitprompt/internal/prompt"
	"github.com/raphi011/gitprompt/internal/ui/styles"
)

// renderPrecmd builds the prompt line for cwd. Every failure degrades to a
// line without a summary.
func renderPrecmd(ctx context.Context, cfg *config.Config, pal styles.Palette, cwd, home string) string {
	l := log.FromContext(ctx)

	summary := repoSummary(ctx, cfg, pal, cwd)

	var branch string
	if len(summary) > 0 {
		branch = summary[:1].String()
	}

	layout := cfg.Format
	if err := format.ValidateFormat(layout); err != nil {
		l.Debug("using default format", "error", err)
		layout = config.DefaultFormat
	}

	return format.FormatLine(layout, format.LineParams{
		Path:    pal.Path.Render(format.ShortenPath(cwd, home)),
		Summary: summary.String(),
		Branch:  branch,
	})
}

// repoSummary summarizes the repository enclosing cwd, or returns nil.
func repoSummary(ctx context.Context, cfg *config.Config, pal styles.Palette, cwd string) prompt.Summary {
	l := log.FromContext(ctx)

	if cfg.Timeout.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout.Duration)
		defer cancel()
	}

	src, err := openSource(ctx, cfg.Backend, cwd)
	if err != nil {
		if errors.Is(err, git.ErrNotFound) {
			l.Debug("no repository", "dir", cwd)
		} else {
			l.Debug("open repository failed", "dir", cwd, "error", err)
		}
		return nil
	}

	summary, ok := prompt.Summarize(ctx, src, pal)
	if !ok {
		return nil
	}
	return summary
}

// openSource locates the repository with the configured backend.
func openSource(ctx context.Context, backend, dir string) (prompt.Source, error) {
	if backend == config.BackendGit {
		c, err := git.DiscoverCLI(ctx, dir)
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	repo, err := git.Discover(dir)
	if err != nil {
		return nil, err
	}
	return repo, nil
}
