package rbtree

import "github.com/latticetree/rbtree/assert"

// InsertFixup restores the red-black invariants (root is black; no red node
// has a red child; uniform black-height) after n has been attached via
// LinkNode. n must be the freshly linked red node.
//
// The algorithm walks up from n, handling three cases based on the color of
// n's uncle (the sibling of n's parent):
//
//   - Case 1 (uncle red): recolor parent and uncle black, grandparent red,
//     and continue from the grandparent.
//   - Case 2 (uncle black or absent, n is the "inside" grandchild): rotate
//     at the parent to convert to case 3.
//   - Case 3 (uncle black or absent, n is the "outside" grandchild): rotate
//     at the grandparent and recolor; the loop terminates.
//
// Both the left-leaning and right-leaning halves below are exact mirrors of
// each other. The loop terminates because case 1 strictly decreases the
// distance from n to the root, and the other cases terminate directly.
//
//nolint:varnamelen // n/p/g/u match the CLRS terminology spec.md §4.2 uses.
func (t *Tree) InsertFixup(n *Node) {
	for n.parent.IsRed() {
		p := n.parent
		g := p.parent

		if p == g.left {
			u := g.right
			if u.IsRed() {
				p.setColor(black)
				u.setColor(black)
				g.setColor(red)
				n = g

				continue
			}

			if n == p.right {
				n = p
				t.rotateLeft(n)
			}

			t.rotateAndRecolor(g, false, red)

			break
		}

		u := g.left
		if u.IsRed() {
			p.setColor(black)
			u.setColor(black)
			g.setColor(red)
			n = g

			continue
		}

		if n == p.left {
			n = p
			t.rotateRight(n)
		}

		t.rotateAndRecolor(g, true, red)

		break
	}

	t.root.setColor(black)

	assert.True(CheckInvariants(t) == nil, "InsertFixup left the tree inconsistent")
}
