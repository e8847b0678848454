package git

import (
	"context"
	"fmt"
	"slices"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

// Status is a bit set describing how a path differs between HEAD, the index
// and the working tree.
type Status uint16

// StatusCurrent means the path is unchanged.
const StatusCurrent Status = 0

const (
	IndexNew Status = 1 << iota
	IndexModified
	IndexDeleted
	IndexRenamed
	IndexTypeChange
	WorktreeNew
	WorktreeModified
	WorktreeDeleted
	WorktreeTypeChange
	WorktreeRenamed
	Conflicted
)

var statusNames = []struct {
	bit  Status
	name string
}{
	{IndexNew, "index-new"},
	{IndexModified, "index-modified"},
	{IndexDeleted, "index-deleted"},
	{IndexRenamed, "index-renamed"},
	{IndexTypeChange, "index-typechange"},
	{WorktreeNew, "wt-new"},
	{WorktreeModified, "wt-modified"},
	{WorktreeDeleted, "wt-deleted"},
	{WorktreeTypeChange, "wt-typechange"},
	{WorktreeRenamed, "wt-renamed"},
	{Conflicted, "conflicted"},
}

// Any reports whether s has at least one of bits.
func (s Status) Any(bits Status) bool {
	return s&bits != 0
}

func (s Status) String() string {
	if s == StatusCurrent {
		return "current"
	}
	var parts []string
	for _, n := range statusNames {
		if s.Any(n.bit) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// StatusEntry is the status of one path.
type StatusEntry struct {
	Path   string
	Status Status
}

// Status lists changed and untracked paths, sorted by path.
// Fails for bare repositories.
func (r *Repository) Status(ctx context.Context) ([]StatusEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	wt, err := r.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}
	st, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("worktree status: %w", err)
	}

	entries := make([]StatusEntry, 0, len(st))
	for path, fs := range st {
		entries = append(entries, StatusEntry{Path: path, Status: fromGoGit(fs.Staging, fs.Worktree)})
	}
	slices.SortFunc(entries, func(a, b StatusEntry) int {
		return strings.Compare(a.Path, b.Path)
	})
	return entries, nil
}

// fromGoGit converts go-git's staging/worktree codes. go-git reports an
// untracked file with Untracked on both sides; only the worktree side counts.
func fromGoGit(staging, worktree gogit.StatusCode) Status {
	var s Status
	switch staging {
	case gogit.Added, gogit.Copied:
		s |= IndexNew
	case gogit.Modified:
		s |= IndexModified
	case gogit.Deleted:
		s |= IndexDeleted
	case gogit.Renamed:
		s |= IndexRenamed
	case gogit.UpdatedButUnmerged:
		s |= Conflicted
	}
	switch worktree {
	case gogit.Untracked:
		s |= WorktreeNew
	case gogit.Modified:
		s |= WorktreeModified
	case gogit.Deleted:
		s |= WorktreeDeleted
	case gogit.Renamed:
		s |= WorktreeRenamed
	case gogit.UpdatedButUnmerged:
		s |= Conflicted
	}
	return s
}
