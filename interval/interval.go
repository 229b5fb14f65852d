// Package interval implements an augmented interval index on top of the
// rbtree intrusive core: every node additionally tracks the maximum High
// endpoint in its subtree, kept correct across every rotation via
// rbtree.Tree's RotateObserver hook, enabling Overlapping to prune subtrees
// that cannot contain a match instead of scanning every interval.
package interval

import "github.com/latticetree/rbtree"

// Node is an interval [Low, High] (inclusive on both ends) participating in
// an interval Tree. rbtree.Node must stay the first field. SubtreeMax is
// maintained by the Tree; callers should treat it as read-only.
type Node struct {
	rbtree.Node

	Low, High  int64
	SubtreeMax int64
}

// Tree is a BST over intervals ordered by (Low, High), augmented so that
// every node's SubtreeMax equals the largest High in its subtree. The zero
// value is not ready to use — call NewTree, since the augmentation
// requires wiring rbtree.Tree's RotateObserver at construction time.
type Tree struct {
	tree rbtree.Tree
}

// NewTree returns an empty, augmentation-wired Tree.
func NewTree() *Tree {
	it := &Tree{}
	it.tree.RotateObserver = it.afterRotate

	return it
}

// Len reports how many intervals are indexed. It walks the tree, since the
// structure (like the rbtree core beneath it) keeps no separate counter.
func (it *Tree) Len() int {
	count := 0

	var walk func(n *rbtree.Node)

	walk = func(n *rbtree.Node) {
		if n == nil {
			return
		}

		count++

		walk(n.Left())
		walk(n.Right())
	}

	walk(it.tree.Root())

	return count
}

// Insert links n into the tree at the position its (Low, High) ordering
// dictates and restores both the red-black and the subtree-max invariants.
// n must be detached.
func (it *Tree) Insert(n *Node) {
	n.SubtreeMax = n.High

	parent, side := it.locate(n)
	it.tree.LinkNode(&n.Node, parent, side)

	if parent != nil {
		recomputeUpFrom(parent)
	}

	it.tree.InsertFixup(&n.Node)
}

// Remove unlinks n from the tree and restores both invariants. n must
// currently be indexed by this Tree.
func (it *Tree) Remove(n *Node) {
	var deepest *rbtree.Node

	switch {
	case n.Node.Left() == nil || n.Node.Right() == nil:
		deepest = n.Node.Parent()
	default:
		successor := leftmostOf(n.Node.Right())
		if sp := successor.Parent(); sp != &n.Node {
			deepest = sp
		} else {
			deepest = successor
		}
	}

	it.tree.Erase(&n.Node)

	if deepest != nil {
		recomputeUpFrom(deepest)
	}
}

// Overlapping returns every indexed interval that overlaps [low, high],
// pruning subtrees whose SubtreeMax or Low rules them out entirely. Order is
// unspecified.
func (it *Tree) Overlapping(low, high int64) []*Node {
	var out []*Node

	var walk func(n *rbtree.Node)

	walk = func(n *rbtree.Node) {
		if n == nil {
			return
		}

		self := rbtree.Of[Node](n)
		if self.SubtreeMax < low {
			return
		}

		walk(n.Left())

		if self.Low <= high && self.High >= low {
			out = append(out, self)
		}

		if self.Low <= high {
			walk(n.Right())
		}
	}

	walk(it.tree.Root())

	return out
}

// afterRotate is rbtree.Tree's RotateObserver: x is the former subtree root,
// now a child; y is the node that replaced it. Recomputing x before y is
// required since y's SubtreeMax depends on x's.
func (it *Tree) afterRotate(x, y *rbtree.Node) {
	recomputeNode(x)
	recomputeNode(y)
}

func (it *Tree) locate(n *Node) (parent *rbtree.Node, side rbtree.Side) {
	cur := it.tree.Root()
	if cur == nil {
		return nil, rbtree.NoSide
	}

	for {
		curNode := rbtree.Of[Node](cur)

		if less(n, curNode) {
			if cur.Left() == nil {
				return cur, rbtree.Left
			}

			cur = cur.Left()
		} else {
			if cur.Right() == nil {
				return cur, rbtree.Right
			}

			cur = cur.Right()
		}
	}
}

func less(a, b *Node) bool {
	if a.Low != b.Low {
		return a.Low < b.Low
	}

	return a.High < b.High
}

func recomputeNode(n *rbtree.Node) {
	if n == nil {
		return
	}

	self := rbtree.Of[Node](n)
	max := self.High

	if l := n.Left(); l != nil {
		if lm := rbtree.Of[Node](l).SubtreeMax; lm > max {
			max = lm
		}
	}

	if r := n.Right(); r != nil {
		if rm := rbtree.Of[Node](r).SubtreeMax; rm > max {
			max = rm
		}
	}

	self.SubtreeMax = max
}

func recomputeUpFrom(n *rbtree.Node) {
	for n != nil {
		recomputeNode(n)
		n = n.Parent()
	}
}

func leftmostOf(n *rbtree.Node) *rbtree.Node {
	for n.Left() != nil {
		n = n.Left()
	}

	return n
}
