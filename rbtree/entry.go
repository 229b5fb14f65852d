package rbtree

import "unsafe"

// Of recovers the enclosing payload value from one of its linkage nodes.
// T's Node field must be embedded as T's first field — the same
// requirement the C container_of macro places on its callers, and for the
// same reason: the conversion below is only well-defined when n's address
// and the enclosing T's address coincide. This holds by the Go language
// specification's unsafe.Pointer conversion rules exactly when Node is T's
// first field (and T has no incompatible layout directives), which Go's
// compiler preserves across garbage collection — unlike a hand-rolled
// pointer-arithmetic container_of, there is no bit to strip or offset to
// compute; the two pointers are simply the same address, viewed as two
// different types.
//
// Of returns nil if n is nil. Callers that embed rbtree.Node to build an
// ordered container (see the orderedset, orderedmap, runqueue, interval,
// and freelist packages) use Of at every traversal boundary to hand callers
// their own payload type instead of a bare *Node.
func Of[T any](n *Node) *T {
	if n == nil {
		return nil
	}

	return (*T)(unsafe.Pointer(n))
}
