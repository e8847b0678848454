package git

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

var (
	// ErrNotFound is returned by Discover when no repository encloses the path.
	ErrNotFound = errors.New("not a git repository")

	// ErrNoUpstream is returned when the current branch tracks nothing.
	ErrNoUpstream = errors.New("no upstream configured")
)

// Repository is a repository opened by Discover.
type Repository struct {
	repo *gogit.Repository
}

// Discover opens the repository enclosing start, searching parent
// directories up to the filesystem root.
func Discover(start string) (*Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(start, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("open repository at %s: %w", start, err)
	}
	return &Repository{repo: repo}, nil
}

// Head returns the short name of HEAD: the branch name, or "HEAD" when
// detached. An unborn branch is an error.
func (r *Repository) Head(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ref, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	return ref.Name().Short(), nil
}

// Upstream resolves the tracking reference of the current branch
// (@{upstream}). Returns ErrNoUpstream for a detached HEAD or a branch
// without branch.<name>.remote and branch.<name>.merge.
func (r *Repository) Upstream() (*plumbing.Reference, error) {
	head, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return nil, ErrNoUpstream
	}

	cfg, err := r.repo.Config()
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	branch, ok := cfg.Branches[head.Name().Short()]
	if !ok || branch.Remote == "" || branch.Merge == "" {
		return nil, ErrNoUpstream
	}

	name := trackingRef(branch.Remote, branch.Merge, cfg.Remotes[branch.Remote])
	ref, err := r.repo.Reference(name, true)
	if err != nil {
		return nil, fmt.Errorf("resolve upstream %s: %w", name, err)
	}
	return ref, nil
}

// Divergence compares HEAD with its upstream.
func (r *Repository) Divergence(ctx context.Context) (Divergence, error) {
	head, err := r.repo.Head()
	if err != nil {
		return Divergence{}, fmt.Errorf("resolve HEAD: %w", err)
	}
	upstream, err := r.Upstream()
	if err != nil {
		return Divergence{}, err
	}
	return AheadBehind(ctx, r, head.Hash(), upstream.Hash())
}

// LookupCommit implements CommitLookup over the object database.
func (r *Repository) LookupCommit(h plumbing.Hash) (CommitNode, error) {
	c, err := r.repo.CommitObject(h)
	if err != nil {
		return CommitNode{}, fmt.Errorf("load commit %s: %w", h, err)
	}
	return CommitNode{
		Hash:    c.Hash,
		When:    c.Committer.When,
		Parents: c.ParentHashes,
	}, nil
}
