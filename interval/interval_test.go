package interval_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticetree/rbtree"
	"github.com/latticetree/rbtree/interval"
)

func TestInsert_EmptyTree(t *testing.T) {
	t.Parallel()

	it := interval.NewTree()

	n := &interval.Node{Low: 1, High: 5}
	it.Insert(n)

	assert.Equal(t, 1, it.Len())
	assert.Equal(t, int64(5), n.SubtreeMax)
}

func TestOverlapping_MatchesBruteForce(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3)) //nolint:gosec // deterministic test fixture, not a security use

	it := interval.NewTree()

	var spans []span

	for i := 0; i < 500; i++ {
		low := int64(rng.Intn(1000))
		high := low + int64(rng.Intn(50))

		spans = append(spans, span{low, high})
		it.Insert(&interval.Node{Low: low, High: high})
	}

	for i := 0; i < 50; i++ {
		qlow := int64(rng.Intn(1000))
		qhigh := qlow + int64(rng.Intn(50))

		var want []span

		for _, s := range spans {
			if s.low <= qhigh && s.high >= qlow {
				want = append(want, s)
			}
		}

		got := it.Overlapping(qlow, qhigh)

		gotSpans := make([]span, 0, len(got))
		for _, n := range got {
			gotSpans = append(gotSpans, span{n.Low, n.High})
		}

		sortSpans(want)
		sortSpans(gotSpans)

		assert.Equal(t, want, gotSpans)
	}
}

func TestRemove_KeepsSubtreeMaxConsistent(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(4)) //nolint:gosec // deterministic test fixture, not a security use

	it := interval.NewTree()

	var nodes []*interval.Node

	for i := 0; i < 300; i++ {
		low := int64(rng.Intn(500))
		high := low + int64(rng.Intn(30))

		n := &interval.Node{Low: low, High: high}
		nodes = append(nodes, n)
		it.Insert(n)
	}

	rng.Shuffle(len(nodes), func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})

	for i := 0; i < 150; i++ {
		it.Remove(nodes[i])
	}

	require.Equal(t, 150, it.Len())

	remaining := nodes[150:]

	got := it.Overlapping(0, 1000)
	assert.Len(t, got, 150)

	for _, n := range remaining {
		found := false

		for _, g := range got {
			if g == n {
				found = true

				break
			}
		}

		assert.True(t, found, "expected remaining node %+v to still be indexed", n)
	}

	root := &remaining[0].Node
	for root.Parent() != nil {
		root = root.Parent()
	}

	_, mismatches := subtreeMaxMismatches(root)
	assert.Zero(t, mismatches, "every node's SubtreeMax should equal the largest High in its subtree")
}

// subtreeMaxMismatches returns the largest High in the subtree rooted at n
// and the number of nodes in it whose SubtreeMax differs from that value for
// their own subtree.
func subtreeMaxMismatches(n *rbtree.Node) (maxHigh int64, mismatches int) {
	self := rbtree.Of[interval.Node](n)
	maxHigh = self.High

	for _, child := range []*rbtree.Node{n.Left(), n.Right()} {
		if child == nil {
			continue
		}

		childMax, childMismatches := subtreeMaxMismatches(child)
		mismatches += childMismatches

		if childMax > maxHigh {
			maxHigh = childMax
		}
	}

	if self.SubtreeMax != maxHigh {
		mismatches++
	}

	return maxHigh, mismatches
}

type span struct{ low, high int64 }

func sortSpans(s []span) {
	sort.Slice(s, func(i, j int) bool {
		if s[i].low != s[j].low {
			return s[i].low < s[j].low
		}

		return s[i].high < s[j].high
	})
}
