package prompt

import "github.com/raphi011/gitprompt/internal/git"

const (
	dirtyBits     = git.IndexModified | git.IndexTypeChange | git.WorktreeModified | git.WorktreeTypeChange
	newBits       = git.IndexNew
	untrackedBits = git.WorktreeNew
	deletedBits   = git.IndexDeleted | git.WorktreeDeleted
	movedBits     = git.IndexRenamed | git.WorktreeRenamed
)

// Flags is the folded state of a working tree.
type Flags struct {
	Dirty     bool // modified or type-changed, staged or not
	New       bool // added to the index
	Untracked bool
	Deleted   bool
	Moved     bool // renamed
}

// Clean reports whether no flag is set.
func (f Flags) Clean() bool {
	return !f.Dirty && !f.New && !f.Untracked && !f.Deleted && !f.Moved
}

// Classify folds entries into Flags. Order does not matter and entries
// with StatusCurrent are ignored. A conflicted entry sets nothing.
func Classify(entries []git.StatusEntry) Flags {
	var f Flags
	for _, e := range entries {
		s := e.Status
		if s == git.StatusCurrent {
			continue
		}
		f.Dirty = f.Dirty || s.Any(dirtyBits)
		f.New = f.New || s.Any(newBits)
		f.Untracked = f.Untracked || s.Any(untrackedBits)
		f.Deleted = f.Deleted || s.Any(deletedBits)
		f.Moved = f.Moved || s.Any(movedBits)
	}
	return f
}
