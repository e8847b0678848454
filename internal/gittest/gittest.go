// Package gittest builds throwaway repositories for tests.
//
// Repositories are created with go-git in t.TempDir(), so tests do not need
// a git binary. Commit times advance one minute per commit from a fixed
// base, which keeps ancestry walks deterministic.
package gittest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// Repo is a repository under construction.
type Repo struct {
	t     testing.TB
	Path  string
	Repo  *gogit.Repository
	clock time.Time
}

// TempDir returns t.TempDir() with symlinks resolved (macOS /var -> /private/var).
func TempDir(t testing.TB) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

// Init creates an empty repository whose HEAD points at the unborn branch.
func Init(t testing.TB, branch string) *Repo {
	t.Helper()
	path := filepath.Join(TempDir(t), "repo")

	repo, err := gogit.PlainInit(path, false)
	require.NoError(t, err)

	head := plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName(branch))
	require.NoError(t, repo.Storer.SetReference(head))

	return &Repo{
		t:     t,
		Path:  path,
		Repo:  repo,
		clock: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// InitWithCommit creates a repository with README.md committed on branch.
func InitWithCommit(t testing.TB, branch string) *Repo {
	t.Helper()
	r := Init(t, branch)
	r.CommitFile("README.md", "# test\n", "Initial commit")
	return r
}

func (r *Repo) worktree() *gogit.Worktree {
	r.t.Helper()
	wt, err := r.Repo.Worktree()
	require.NoError(r.t, err)
	return wt
}

// WriteFile writes content to name relative to the repo root.
func (r *Repo) WriteFile(name, content string) {
	r.t.Helper()
	path := filepath.Join(r.Path, name)
	require.NoError(r.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(r.t, os.WriteFile(path, []byte(content), 0644))
}

// RemoveFile deletes name from the working tree only.
func (r *Repo) RemoveFile(name string) {
	r.t.Helper()
	require.NoError(r.t, os.Remove(filepath.Join(r.Path, name)))
}

// Stage adds name to the index.
func (r *Repo) Stage(name string) {
	r.t.Helper()
	_, err := r.worktree().Add(name)
	require.NoError(r.t, err)
}

// StageRemove deletes name from the working tree and the index.
func (r *Repo) StageRemove(name string) {
	r.t.Helper()
	_, err := r.worktree().Remove(name)
	require.NoError(r.t, err)
}

// Commit records the index (plus changes to tracked files) as a new commit.
// Empty commits are allowed.
func (r *Repo) Commit(msg string) plumbing.Hash {
	r.t.Helper()
	r.clock = r.clock.Add(time.Minute)
	hash, err := r.worktree().Commit(msg, &gogit.CommitOptions{
		All:               true,
		AllowEmptyCommits: true,
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@test.com",
			When:  r.clock,
		},
	})
	require.NoError(r.t, err)
	return hash
}

// CommitFile writes, stages and commits a single file.
func (r *Repo) CommitFile(name, content, msg string) plumbing.Hash {
	r.t.Helper()
	r.WriteFile(name, content)
	r.Stage(name)
	return r.Commit(msg)
}

// Branch returns the short name of the checked-out branch.
func (r *Repo) Branch() string {
	r.t.Helper()
	head, err := r.Repo.Head()
	require.NoError(r.t, err)
	return head.Name().Short()
}

// ResetBranch points the current branch at hash without touching the
// index or working tree.
func (r *Repo) ResetBranch(hash plumbing.Hash) {
	r.t.Helper()
	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(r.Branch()), hash)
	require.NoError(r.t, r.Repo.Storer.SetReference(ref))
}

// Detach points HEAD directly at hash.
func (r *Repo) Detach(hash plumbing.Hash) {
	r.t.Helper()
	require.NoError(r.t, r.Repo.Storer.SetReference(plumbing.NewHashReference(plumbing.HEAD, hash)))
}

// SetUpstream configures remote with the default fetch refspec, makes the
// current branch track <remote>/<branch> and points that tracking ref at target.
func (r *Repo) SetUpstream(remote string, target plumbing.Hash) {
	r.t.Helper()
	branch := r.Branch()

	cfg, err := r.Repo.Config()
	require.NoError(r.t, err)
	cfg.Remotes[remote] = &config.RemoteConfig{
		Name:  remote,
		URLs:  []string{"https://example.com/test/" + remote + ".git"},
		Fetch: []config.RefSpec{config.RefSpec("+refs/heads/*:refs/remotes/" + remote + "/*")},
	}
	cfg.Branches[branch] = &config.Branch{
		Name:   branch,
		Remote: remote,
		Merge:  plumbing.NewBranchReferenceName(branch),
	}
	require.NoError(r.t, r.Repo.SetConfig(cfg))

	ref := plumbing.NewHashReference(plumbing.NewRemoteReferenceName(remote, branch), target)
	require.NoError(r.t, r.Repo.Storer.SetReference(ref))
}
