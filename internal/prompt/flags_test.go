package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/raphi011/gitprompt/internal/git"
)

func entries(statuses ...git.Status) []git.StatusEntry {
	out := make([]git.StatusEntry, len(statuses))
	for i, s := range statuses {
		out[i] = git.StatusEntry{Path: string(rune('a' + i)), Status: s}
	}
	return out
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		entries  []git.StatusEntry
		expected Flags
	}{
		{
			name: "empty",
		},
		{
			name:    "current entries are ignored",
			entries: entries(git.StatusCurrent, git.StatusCurrent),
		},
		{
			name:     "index new only",
			entries:  entries(git.IndexNew, git.IndexNew, git.IndexNew),
			expected: Flags{New: true},
		},
		{
			name:     "untracked",
			entries:  entries(git.WorktreeNew),
			expected: Flags{Untracked: true},
		},
		{
			name:     "modified in index",
			entries:  entries(git.IndexModified),
			expected: Flags{Dirty: true},
		},
		{
			name:     "type change in worktree",
			entries:  entries(git.WorktreeTypeChange),
			expected: Flags{Dirty: true},
		},
		{
			name:     "deleted either side",
			entries:  entries(git.IndexDeleted, git.WorktreeDeleted),
			expected: Flags{Deleted: true},
		},
		{
			name:     "renamed",
			entries:  entries(git.WorktreeRenamed),
			expected: Flags{Moved: true},
		},
		{
			name:     "one entry sets several flags",
			entries:  entries(git.IndexNew | git.WorktreeModified),
			expected: Flags{Dirty: true, New: true},
		},
		{
			name:     "modified and untracked",
			entries:  entries(git.WorktreeModified, git.WorktreeNew),
			expected: Flags{Dirty: true, Untracked: true},
		},
		{
			name:    "conflicted sets nothing",
			entries: entries(git.Conflicted),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Classify(tt.entries))
		})
	}
}

func TestClassify_OrderIndependent(t *testing.T) {
	t.Parallel()

	forward := entries(git.WorktreeModified, git.IndexNew, git.WorktreeNew, git.IndexDeleted, git.IndexRenamed)
	reversed := make([]git.StatusEntry, len(forward))
	for i, e := range forward {
		reversed[len(forward)-1-i] = e
	}

	assert.Equal(t, Classify(forward), Classify(reversed))
}

func TestFlagsClean(t *testing.T) {
	t.Parallel()

	assert.True(t, Flags{}.Clean())
	assert.False(t, Flags{Dirty: true}.Clean())
	assert.False(t, Flags{New: true}.Clean())
	assert.False(t, Flags{Untracked: true}.Clean())
	assert.False(t, Flags{Deleted: true}.Clean())
	assert.False(t, Flags{Moved: true}.Clean())
}
