package rbtree

import "github.com/latticetree/rbtree/assert"

// Tree holds a single reference to the topmost node, or nil if empty. A Tree
// never allocates and never owns its nodes; it borrows them by linkage for
// as long as they remain attached. The tree is not internally synchronized —
// no operation may execute concurrently with any other operation on the same
// Tree (see the package-level concurrency note in doc.go).
type Tree struct {
	root *Node

	// RotateObserver, if non-nil, is invoked immediately after every
	// rotation performed by this tree (during insertion or erasure fixup)
	// with the two nodes whose subtree roles changed: x, the former
	// subtree root, and y, the node that replaced it. This is the single
	// hook an augmented structure (e.g. a subtree-max interval index) needs
	// to keep derived per-node state correct, since a rotation is the only
	// operation that changes which nodes are whose ancestor. The core
	// itself never reads or writes augmented data; it only reports that a
	// rotation happened and which nodes were involved.
	RotateObserver func(x, y *Node)
}

// Root returns the tree's root node, or nil if the tree is empty.
func (t *Tree) Root() *Node {
	return t.root
}

// Empty reports whether the tree has no nodes.
func (t *Tree) Empty() bool {
	return t.root == nil
}

// replaceInParent splices replacement into old's slot: the root pointer if
// old was the root, or the appropriate child slot of old's parent otherwise.
// It does not touch old or replacement's own child pointers, and it sets
// replacement's parent pointer (to old's former parent) unless replacement
// is nil.
func (t *Tree) replaceInParent(old, replacement *Node) {
	parent := old.parent

	switch {
	case parent == nil:
		t.root = replacement
	case parent.left == old:
		parent.left = replacement
	default:
		parent.right = replacement
	}

	if replacement != nil {
		replacement.parent = parent
	}
}

// LinkNode attaches the detached node n as a red leaf under parent on the
// given side, or installs n as the tree's root if parent is nil. The caller
// is responsible for having located parent and side via its own BST
// descent; LinkNode performs no comparison and no validation. The caller
// must invoke InsertFixup(n) immediately afterward to restore the red-black
// invariants.
func (t *Tree) LinkNode(n, parent *Node, side Side) {
	assert.True(n.parent == nil && n.left == nil && n.right == nil, "LinkNode: node is not detached")

	n.left = nil
	n.right = nil
	n.parent = parent
	n.color = red

	switch {
	case parent == nil:
		t.root = n
	case side == Left:
		parent.left = n
	default:
		parent.right = n
	}
}

// rotateLeft performs a left rotation at x: x's right child y takes x's
// place, x becomes y's left child, and y's former left subtree becomes x's
// new right subtree. Rotations preserve in-order key ordering. x must have a
// non-nil right child.
func (t *Tree) rotateLeft(x *Node) {
	y := x.right
	x.right = y.left

	if y.left != nil {
		y.left.parent = x
	}

	t.replaceInParent(x, y)

	y.left = x
	x.parent = y

	if t.RotateObserver != nil {
		t.RotateObserver(x, y)
	}
}

// rotateRight is the mirror of rotateLeft: x's left child y takes x's place.
// x must have a non-nil left child.
func (t *Tree) rotateRight(x *Node) {
	y := x.left
	x.left = y.right

	if y.right != nil {
		y.right.parent = x
	}

	t.replaceInParent(x, y)

	y.right = x
	x.parent = y

	if t.RotateObserver != nil {
		t.RotateObserver(x, y)
	}
}

// rotateAndRecolor performs a rotation at x (left if toLeft, right
// otherwise), then transfers x's color to the node that replaces it and
// assigns x the given new color. Both fixup algorithms rely on this fused
// pointer-and-color update happening as a single step, so that no
// intermediate state exists in which the tree's invariants are violated in
// a way the surrounding code cannot repair (spec design note:
// "rotation-color fusion").
func (t *Tree) rotateAndRecolor(x *Node, toLeft bool, xNewColor color) {
	var y *Node
	if toLeft {
		y = x.right
	} else {
		y = x.left
	}

	y.color = x.color
	x.color = xNewColor

	if toLeft {
		t.rotateLeft(x)
	} else {
		t.rotateRight(x)
	}
}
