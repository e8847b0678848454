// Package git reads the repository state shown in the prompt.
//
// # Locating a Repository
//
// [Discover] walks upward from a directory until it finds a .git directory
// (or the .git file of a linked worktree) and returns a [Repository].
// Not being inside a repository is reported as [ErrNotFound]. [DiscoverCLI]
// does the same through "git rev-parse --show-toplevel".
//
// # Status Sources
//
// Two backends expose the same three queries (Head, Status, Divergence):
//
//   - [Repository]: pure Go on top of go-git, no processes spawned.
//   - [CLI]: shells out to the git binary, which honors global excludes,
//     fsmonitor and every other git setting go-git ignores.
//
// Status is reported as [StatusEntry] values carrying a [Status] bit set
// that mirrors the index/worktree split of "git status".
//
// # Ahead/Behind
//
// [AheadBehind] counts commits reachable from one tip but not the other by
// painting both histories newest-first and stopping once everything still
// queued is shared. Only the single upstream configured for the current
// branch (branch.<name>.remote/merge) is compared.
package git
