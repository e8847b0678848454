package prompt

import (
	"context"

	"github.com/raphi011/gitprompt/internal/git"
)

// Source is the repository state a summary is built from.
// Both *git.Repository and *git.CLI implement it.
type Source interface {
	// Head returns the short name of HEAD, "HEAD" when detached.
	Head(ctx context.Context) (string, error)
	// Status lists changed and untracked paths.
	Status(ctx context.Context) ([]git.StatusEntry, error)
	// Divergence compares HEAD with its upstream.
	Divergence(ctx context.Context) (git.Divergence, error)
}

var (
	_ Source = (*git.Repository)(nil)
	_ Source = (*git.CLI)(nil)
)
