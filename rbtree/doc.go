// Concurrency and resource model.
//
// A Tree is a single-threaded data structure. No operation may execute
// concurrently with any other operation on the same Tree; a caller that
// needs shared access must wrap the tree in its own mutual-exclusion
// primitive. No operation here allocates, blocks, or suspends — every
// operation is a bounded-depth pointer walk (O(log n) for LinkNode, the
// rebalancing in InsertFixup and Erase, and the traversal operations) plus
// constant additional work per level, so there are no cancellation or
// timeout semantics to speak of. InsertFixup and Erase additionally end with
// a CheckInvariants walk over the whole tree, which is O(n) and runs in
// every build, including assertions_disabled ones.
//
// The tree never owns its nodes: destroying a Tree whose nodes still exist
// elsewhere simply leaves those nodes detached from this tree (their
// linkage fields are stale and must not be dereferenced). LinkNode's
// detached check panics, in builds without the assertions_disabled tag, on a
// node whose linkage fields are not all nil, so such a node must be reset to
// a zero Node before it is linked again. Destroying a node that is still linked into
// a tree leaves the tree with a dangling reference; avoiding that is the
// caller's responsibility, same as in any intrusive container.
package rbtree
