// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

// Sortable is the key constraint used by this module's ordered containers
// (orderedset, orderedmap). It deliberately asks only
// for Equals and LessThan — nothing about hashing — since every container
// built on the rbtree core locates a key by BST descent, never by bucket.
type Sortable[T any] interface {
	// Equals reports whether this value and other represent the same key.
	Equals(other T) bool

	// LessThan reports whether this value sorts strictly before other.
	LessThan(other T) bool
}
