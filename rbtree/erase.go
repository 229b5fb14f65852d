package rbtree

import "github.com/latticetree/rbtree/assert"

// Erase removes z from the tree and restores the red-black invariants. z
// must currently be linked into t; behavior is undefined otherwise (spec
// §7: preconditions are caller obligations, not validated here). After
// Erase returns, z is detached and its linkage fields are reset to their
// zero-value (detached) state, so z may be reused in a subsequent LinkNode
// call.
//
// The operation has two phases. Unlink performs the standard BST deletion,
// which has three sub-cases depending on how many children z has; it
// remembers the color of whichever node was actually spliced out of the
// tree. If that color was red, invariants 1-3 still hold and no further
// work is needed. If it was black, the path through the replacement node
// (which may be nil) is short one black node, and eraseFixup walks up from
// there restoring balance.
//
//nolint:varnamelen // x/y/z match the CLRS terminology spec.md §4.3 uses.
func (t *Tree) Erase(z *Node) {
	y := z
	yOriginalColor := y.color

	var x, xParent *Node

	switch {
	case z.left == nil:
		x = z.right
		xParent = z.parent
		t.replaceInParent(z, z.right)
	case z.right == nil:
		x = z.left
		xParent = z.parent
		t.replaceInParent(z, z.left)
	default:
		y = leftmost(z.right)
		yOriginalColor = y.color
		x = y.right

		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			t.replaceInParent(y, y.right)
			y.right = z.right
			y.right.parent = y
		}

		t.replaceInParent(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	z.left, z.right, z.parent, z.color = nil, nil, nil, red

	if yOriginalColor == black {
		t.eraseFixup(x, xParent)
	}

	assert.True(CheckInvariants(t) == nil, "Erase left the tree inconsistent")
}

// eraseFixup restores the red-black invariants given that the path through
// x (which may be nil) is deficient by one black node. parent is x's
// parent — tracked explicitly rather than read from x.parent, since x may
// be nil and therefore has no parent field of its own (spec.md §9's open
// question on representing the erase rebalance signal; see DESIGN.md).
//
// Four symmetric cases, keyed on the color of x's sibling w:
//
//   - Case 1 (w red): rotate at parent toward x's side, converting to one
//     of the remaining cases with a black sibling.
//   - Case 2 (w black, both of w's children black/absent): recolor w red
//     and move the deficiency up to parent.
//   - Case 3 (w black, w's near child red, far child black): rotate at w
//     away from x's side to convert to case 4.
//   - Case 4 (w black, w's far child red): rotate at parent toward x's
//     side; w inherits parent's color, parent and w's far child become
//     black. Terminates.
//
//nolint:varnamelen // x/w match the CLRS terminology spec.md §4.3 uses.
func (t *Tree) eraseFixup(x, parent *Node) {
	for x != t.root && x.IsBlack() {
		if x == parent.left {
			w := parent.right
			if w.IsRed() {
				t.rotateAndRecolor(parent, true, red)
				w = parent.right
			}

			if w.left.IsBlack() && w.right.IsBlack() {
				w.setColor(red)
				x = parent
				parent = x.parent

				continue
			}

			if w.right.IsBlack() {
				t.rotateAndRecolor(w, false, red)
				w = parent.right
			}

			w.setColor(parent.color)
			parent.setColor(black)
			w.right.setColor(black)
			t.rotateLeft(parent)
			x = t.root
			parent = nil

			continue
		}

		w := parent.left
		if w.IsRed() {
			t.rotateAndRecolor(parent, false, red)
			w = parent.left
		}

		if w.right.IsBlack() && w.left.IsBlack() {
			w.setColor(red)
			x = parent
			parent = x.parent

			continue
		}

		if w.left.IsBlack() {
			t.rotateAndRecolor(w, true, red)
			w = parent.left
		}

		w.setColor(parent.color)
		parent.setColor(black)
		w.left.setColor(black)
		t.rotateRight(parent)
		x = t.root
		parent = nil
	}

	if x != nil {
		x.setColor(black)
	}
}

// Replace splices new into victim's slot in the tree, copying victim's
// linkage verbatim and updating the neighbors that pointed at victim to
// point at new instead. new must be detached; the caller guarantees new is
// a permissible substitute for victim (e.g. an equal key under whatever
// ordering the caller imposes). Replace performs no rebalancing — it
// leaves the tree's invariants exactly as they were, since it changes which
// node occupies a slot without changing the tree's shape or colors.
func (t *Tree) Replace(victim, newNode *Node) {
	newNode.left = victim.left
	newNode.right = victim.right
	newNode.parent = victim.parent
	newNode.color = victim.color

	if victim.left != nil {
		victim.left.parent = newNode
	}

	if victim.right != nil {
		victim.right.parent = newNode
	}

	switch {
	case victim.parent == nil:
		t.root = newNode
	case victim.parent.left == victim:
		victim.parent.left = newNode
	default:
		victim.parent.right = newNode
	}

	victim.left, victim.right, victim.parent, victim.color = nil, nil, nil, red
}

// leftmost returns the leftmost node of the subtree rooted at n. n must be
// non-nil.
func leftmost(n *Node) *Node {
	for n.left != nil {
		n = n.left
	}

	return n
}

// rightmost returns the rightmost node of the subtree rooted at n. n must
// be non-nil.
func rightmost(n *Node) *Node {
	for n.right != nil {
		n = n.right
	}

	return n
}
