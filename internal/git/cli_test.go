package git

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphi011/gitprompt/internal/gittest"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

func TestParseLeftRight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Divergence
		wantErr  bool
	}{
		{input: "0\t0\n", expected: Divergence{}},
		{input: "3\t1\n", expected: Divergence{Ahead: 3, Behind: 1}},
		{input: "12 7", expected: Divergence{Ahead: 12, Behind: 7}},
		{input: "", wantErr: true},
		{input: "3\n", wantErr: true},
		{input: "a\t1", wantErr: true},
		{input: "1\tb", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := parseLeftRight(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCLI(t *testing.T) {
	t.Parallel()
	requireGit(t)
	ctx := context.Background()

	t.Run("head", func(t *testing.T) {
		t.Parallel()
		r := gittest.InitWithCommit(t, "feature/x")
		head, err := NewCLI(r.Path).Head(ctx)
		require.NoError(t, err)
		assert.Equal(t, "feature/x", head)
	})

	t.Run("status", func(t *testing.T) {
		t.Parallel()
		r := gittest.InitWithCommit(t, "main")
		r.WriteFile("README.md", "# changed\n")
		r.WriteFile("notes.txt", "todo\n")

		entries, err := NewCLI(r.Path).Status(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []StatusEntry{
			{Path: "README.md", Status: WorktreeModified},
			{Path: "notes.txt", Status: WorktreeNew},
		}, entries)
	})

	t.Run("staged rename matches native backend", func(t *testing.T) {
		t.Parallel()
		r := gittest.InitWithCommit(t, "main")
		r.StageRemove("README.md")
		r.WriteFile("INTRO.md", "# test\n")
		r.Stage("INTRO.md")

		entries, err := NewCLI(r.Path).Status(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []StatusEntry{
			{Path: "INTRO.md", Status: IndexNew},
			{Path: "README.md", Status: IndexDeleted},
		}, entries)

		repo, err := Discover(r.Path)
		require.NoError(t, err)
		native, err := repo.Status(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, native, entries)
	})

	t.Run("divergence", func(t *testing.T) {
		t.Parallel()
		r := gittest.InitWithCommit(t, "main")
		r.SetUpstream("origin", r.Commit("base"))
		r.Commit("one")
		r.Commit("two")

		d, err := NewCLI(r.Path).Divergence(ctx)
		require.NoError(t, err)
		assert.Equal(t, Divergence{Ahead: 2}, d)
	})

	t.Run("no upstream", func(t *testing.T) {
		t.Parallel()
		r := gittest.InitWithCommit(t, "main")
		_, err := NewCLI(r.Path).Divergence(ctx)
		assert.Error(t, err)
	})

	t.Run("discover from subdirectory", func(t *testing.T) {
		t.Parallel()
		r := gittest.InitWithCommit(t, "main")
		r.WriteFile("sub/dir/file.txt", "x\n")

		c, err := DiscoverCLI(ctx, r.Path+"/sub/dir")
		require.NoError(t, err)
		assert.Equal(t, r.Path, c.dir)
	})

	t.Run("discover outside repository", func(t *testing.T) {
		t.Parallel()
		_, err := DiscoverCLI(ctx, gittest.TempDir(t))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("outside repository", func(t *testing.T) {
		t.Parallel()
		_, err := NewCLI(gittest.TempDir(t)).Head(ctx)
		assert.Error(t, err)
	})
}
