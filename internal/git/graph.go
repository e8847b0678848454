package git

import (
	"container/heap"
	"context"
	"time"

	"github.com/go-git/go-git/v5/plumbing"
)

// Divergence counts commits on each side of HEAD...upstream.
type Divergence struct {
	Ahead  int // reachable from HEAD only
	Behind int // reachable from upstream only
}

// CommitNode is the part of a commit the ancestry walk needs.
type CommitNode struct {
	Hash    plumbing.Hash
	When    time.Time
	Parents []plumbing.Hash
}

// CommitLookup loads commits by hash.
type CommitLookup interface {
	LookupCommit(plumbing.Hash) (CommitNode, error)
}

const (
	fromLocal uint8 = 1 << iota
	fromUpstream

	fromBoth = fromLocal | fromUpstream
)

// AheadBehind counts the commits reachable from local but not upstream
// (Ahead) and from upstream but not local (Behind).
//
// Both tips are walked together, newest committer time first. A commit
// reached from both sides passes that mark on to its parents, including
// parents visited earlier with one mark. The walk ends once every queued
// commit carries both marks and is strictly older than every one-sided
// commit, so none of them can still be an ancestor of a one-sided commit.
// Equal committer times keep the walk going. Like git, the result assumes
// a parent is never newer than its child.
func AheadBehind(ctx context.Context, g CommitLookup, local, upstream plumbing.Hash) (Divergence, error) {
	if local == upstream {
		return Divergence{}, nil
	}

	w := &walk{
		lookup: g,
		marks:  make(map[plumbing.Hash]uint8),
		nodes:  make(map[plumbing.Hash]CommitNode),
	}
	if err := w.mark(local, fromLocal); err != nil {
		return Divergence{}, err
	}
	if err := w.mark(upstream, fromUpstream); err != nil {
		return Divergence{}, err
	}

	for w.queue.Len() > 0 && !w.settled() {
		if err := ctx.Err(); err != nil {
			return Divergence{}, err
		}
		node := heap.Pop(&w.queue).(CommitNode)
		m := w.marks[node.Hash]
		for _, p := range node.Parents {
			if err := w.mark(p, m); err != nil {
				return Divergence{}, err
			}
		}
	}

	var d Divergence
	for _, m := range w.marks {
		switch m {
		case fromLocal:
			d.Ahead++
		case fromUpstream:
			d.Behind++
		}
	}
	return d, nil
}

type walk struct {
	lookup CommitLookup
	marks  map[plumbing.Hash]uint8
	nodes  map[plumbing.Hash]CommitNode
	queue  commitQueue

	oldest      CommitNode
	oldestValid bool
}

// mark adds m to h and queues h if that changed anything.
func (w *walk) mark(h plumbing.Hash, m uint8) error {
	if w.marks[h]&m == m {
		return nil
	}
	node, ok := w.nodes[h]
	if !ok {
		var err error
		node, err = w.lookup.LookupCommit(h)
		if err != nil {
			return err
		}
		w.nodes[h] = node
	}
	w.marks[h] |= m
	if w.marks[h] != fromBoth {
		w.oldestValid = false
	}
	heap.Push(&w.queue, node)
	return nil
}

// settled reports whether the remaining queue can no longer change any
// one-sided mark.
func (w *walk) settled() bool {
	for _, n := range w.queue {
		if w.marks[n.Hash] != fromBoth {
			return false
		}
	}
	oldest, ok := w.oldestOneSided()
	if !ok {
		return true
	}
	// queue[0] is the newest queued commit
	return w.queue[0].When.Before(oldest)
}

// oldestOneSided returns the committer time of the oldest commit carrying
// a single mark. The result is cached until that commit gains both marks
// or a new one-sided commit appears.
func (w *walk) oldestOneSided() (time.Time, bool) {
	if w.oldestValid && w.marks[w.oldest.Hash] != fromBoth {
		return w.oldest.When, true
	}

	w.oldestValid = false
	for h, m := range w.marks {
		if m == fromBoth {
			continue
		}
		n := w.nodes[h]
		if !w.oldestValid || n.When.Before(w.oldest.When) {
			w.oldest = n
			w.oldestValid = true
		}
	}
	return w.oldest.When, w.oldestValid
}

// commitQueue is a max-heap on committer time.
type commitQueue []CommitNode

func (q commitQueue) Len() int           { return len(q) }
func (q commitQueue) Less(i, j int) bool { return q[i].When.After(q[j].When) }
func (q commitQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *commitQueue) Push(x any) {
	*q = append(*q, x.(CommitNode))
}

func (q *commitQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
