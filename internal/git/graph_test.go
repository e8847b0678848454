package git

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGraph is an in-memory commit graph. Commit times advance by step
// per added commit; a zero step gives every commit the same time.
type fakeGraph struct {
	nodes map[plumbing.Hash]CommitNode
	next  time.Time
	step  time.Duration
	fail  plumbing.Hash
}

func newFakeGraph() *fakeGraph {
	return &fakeGraph{
		nodes: make(map[plumbing.Hash]CommitNode),
		next:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		step:  time.Minute,
	}
}

func hashOf(name string) plumbing.Hash {
	return plumbing.ComputeHash(plumbing.CommitObject, []byte(name))
}

func (g *fakeGraph) add(name string, parents ...string) plumbing.Hash {
	h := hashOf(name)
	node := CommitNode{Hash: h, When: g.next}
	for _, p := range parents {
		node.Parents = append(node.Parents, hashOf(p))
	}
	g.nodes[h] = node
	g.next = g.next.Add(g.step)
	return h
}

func (g *fakeGraph) LookupCommit(h plumbing.Hash) (CommitNode, error) {
	if h == g.fail {
		return CommitNode{}, errors.New("object not found")
	}
	n, ok := g.nodes[h]
	if !ok {
		return CommitNode{}, fmt.Errorf("unknown commit %s", h)
	}
	return n, nil
}

func TestAheadBehind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		build    func(g *fakeGraph) (local, upstream plumbing.Hash)
		expected Divergence
	}{
		{
			name: "same commit",
			build: func(g *fakeGraph) (plumbing.Hash, plumbing.Hash) {
				a := g.add("a")
				return a, a
			},
		},
		{
			name: "local ahead",
			build: func(g *fakeGraph) (plumbing.Hash, plumbing.Hash) {
				a := g.add("a")
				g.add("b", "a")
				c := g.add("c", "b")
				return c, a
			},
			expected: Divergence{Ahead: 2},
		},
		{
			name: "local behind",
			build: func(g *fakeGraph) (plumbing.Hash, plumbing.Hash) {
				a := g.add("a")
				g.add("b", "a")
				g.add("c", "b")
				d := g.add("d", "c")
				return a, d
			},
			expected: Divergence{Behind: 3},
		},
		{
			name: "diverged",
			build: func(g *fakeGraph) (plumbing.Hash, plumbing.Hash) {
				g.add("base")
				g.add("l1", "base")
				u1 := g.add("u1", "base")
				l2 := g.add("l2", "l1")
				return l2, u1
			},
			expected: Divergence{Ahead: 2, Behind: 1},
		},
		{
			name: "upstream merged into local",
			build: func(g *fakeGraph) (plumbing.Hash, plumbing.Hash) {
				g.add("base")
				g.add("l1", "base")
				u1 := g.add("u1", "base")
				m := g.add("merge", "l1", "u1")
				return m, u1
			},
			expected: Divergence{Ahead: 2},
		},
		{
			name: "unrelated histories",
			build: func(g *fakeGraph) (plumbing.Hash, plumbing.Hash) {
				g.add("a1")
				a2 := g.add("a2", "a1")
				b1 := g.add("b1")
				return a2, b1
			},
			expected: Divergence{Ahead: 2, Behind: 1},
		},
		{
			name: "long shared history",
			build: func(g *fakeGraph) (plumbing.Hash, plumbing.Hash) {
				prev := "c0"
				g.add(prev)
				for i := 1; i < 50; i++ {
					name := fmt.Sprintf("c%d", i)
					g.add(name, prev)
					prev = name
				}
				local := g.add("local", prev)
				return local, hashOf(prev)
			},
			expected: Divergence{Ahead: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := newFakeGraph()
			local, upstream := tt.build(g)

			got, err := AheadBehind(context.Background(), g, local, upstream)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAheadBehind_SameCommitterTime(t *testing.T) {
	t.Parallel()

	// shared history p0 <- p1 <- x, all commits within the same second
	shared := func(g *fakeGraph) {
		g.step = 0
		g.add("p0")
		g.add("p1", "p0")
		g.add("x", "p1")
	}

	tests := []struct {
		name     string
		build    func(g *fakeGraph) (local, upstream plumbing.Hash)
		expected Divergence
	}{
		{
			name: "diverged",
			build: func(g *fakeGraph) (plumbing.Hash, plumbing.Hash) {
				shared(g)
				l := g.add("l", "x")
				g.add("u3", "x")
				g.add("u2", "u3")
				u1 := g.add("u1", "u2")
				return l, u1
			},
			expected: Divergence{Ahead: 1, Behind: 3},
		},
		{
			name: "behind only",
			build: func(g *fakeGraph) (plumbing.Hash, plumbing.Hash) {
				shared(g)
				g.add("u3", "x")
				g.add("u2", "u3")
				u1 := g.add("u1", "u2")
				return hashOf("x"), u1
			},
			expected: Divergence{Behind: 3},
		},
		{
			name: "ahead only",
			build: func(g *fakeGraph) (plumbing.Hash, plumbing.Hash) {
				shared(g)
				g.add("l2", "x")
				l1 := g.add("l1", "l2")
				return l1, hashOf("x")
			},
			expected: Divergence{Ahead: 2},
		},
		{
			name: "upstream merged into local",
			build: func(g *fakeGraph) (plumbing.Hash, plumbing.Hash) {
				shared(g)
				g.add("l1", "x")
				u1 := g.add("u1", "x")
				m := g.add("merge", "l1", "u1")
				return m, u1
			},
			expected: Divergence{Ahead: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := newFakeGraph()
			local, upstream := tt.build(g)

			got, err := AheadBehind(context.Background(), g, local, upstream)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAheadBehind_StopsAtMergeBase(t *testing.T) {
	t.Parallel()

	g := newFakeGraph()
	g.add("root")
	g.add("base", "root")
	l := g.add("l", "base")
	u := g.add("u", "base")
	// root is never needed: base is reached from both sides before it.
	g.fail = hashOf("root")

	got, err := AheadBehind(context.Background(), g, l, u)
	require.NoError(t, err)
	assert.Equal(t, Divergence{Ahead: 1, Behind: 1}, got)
}

func TestAheadBehind_LookupError(t *testing.T) {
	t.Parallel()

	g := newFakeGraph()
	g.add("a")
	b := g.add("b", "a")
	c := g.add("c", "a")
	g.fail = hashOf("a")

	_, err := AheadBehind(context.Background(), g, b, c)
	assert.Error(t, err)
}

func TestAheadBehind_Cancelled(t *testing.T) {
	t.Parallel()

	g := newFakeGraph()
	g.add("a")
	b := g.add("b", "a")
	c := g.add("c", "a")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := AheadBehind(ctx, g, b, c)
	assert.ErrorIs(t, err, context.Canceled)
}
