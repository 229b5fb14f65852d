// Package orderedset provides a sorted set of unique keys, backed by the
// rbtree intrusive core. Unlike the hash-based sets elsewhere in this
// module's lineage, uniqueness and ordering here are both a function of the
// same comparison, sortable.Sortable.LessThan: two keys are equal when
// neither is less than the other. Equals is not consulted.
package orderedset

import (
	"iter"

	"github.com/latticetree/rbtree"
	"github.com/latticetree/rbtree/sortable"
)

// holder is the intrusive payload every element lives in. The rbtree.Node
// must be the first field so that rbtree.Of can recover a *holder[K] from a
// *rbtree.Node.
type holder[K sortable.Sortable[K]] struct {
	rbtree.Node
	key K
}

// Set is a sorted collection of unique K values. The zero value is an empty,
// ready-to-use set.
type Set[K sortable.Sortable[K]] struct {
	tree rbtree.Tree
	size int
}

// New returns an empty Set.
func New[K sortable.Sortable[K]]() *Set[K] {
	return &Set[K]{}
}

// Len returns the number of elements in the set.
func (s *Set[K]) Len() int {
	return s.size
}

// Contains reports whether key is a member of the set.
func (s *Set[K]) Contains(key K) bool {
	_, ok := s.find(key)

	return ok
}

// Add inserts key into the set. It returns false without modifying the set
// if an equal key is already present.
func (s *Set[K]) Add(key K) bool {
	parent, side, existing := s.locate(key)
	if existing != nil {
		return false
	}

	h := &holder[K]{key: key}
	s.tree.LinkNode(&h.Node, parent, side)
	s.tree.InsertFixup(&h.Node)
	s.size++

	return true
}

// Remove deletes key from the set. It returns false if the key was not
// present.
func (s *Set[K]) Remove(key K) bool {
	h, ok := s.find(key)
	if !ok {
		return false
	}

	s.tree.Erase(&h.Node)
	s.size--

	return true
}

// Clear empties the set.
func (s *Set[K]) Clear() {
	s.tree = rbtree.Tree{}
	s.size = 0
}

// Min returns the smallest key in the set and true, or the zero value and
// false if the set is empty.
func (s *Set[K]) Min() (K, bool) {
	n := s.tree.First()
	if n == nil {
		var zero K

		return zero, false
	}

	return rbtree.Of[holder[K]](n).key, true
}

// Max returns the largest key in the set and true, or the zero value and
// false if the set is empty.
func (s *Set[K]) Max() (K, bool) {
	n := s.tree.Last()
	if n == nil {
		var zero K

		return zero, false
	}

	return rbtree.Of[holder[K]](n).key, true
}

// Seq yields every key in ascending order. It is safe to break out of early;
// it is not safe to mutate the set while ranging over it.
func (s *Set[K]) Seq() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := s.tree.First(); n != nil; n = n.Next() {
			if !yield(rbtree.Of[holder[K]](n).key) {
				return
			}
		}
	}
}

// Entries returns every key in ascending order as a slice.
func (s *Set[K]) Entries() []K {
	out := make([]K, 0, s.size)
	for key := range s.Seq() {
		out = append(out, key)
	}

	return out
}

// Union returns a new set containing every key present in s or other.
func (s *Set[K]) Union(other *Set[K]) *Set[K] {
	result := New[K]()

	for key := range s.Seq() {
		result.Add(key)
	}

	for key := range other.Seq() {
		result.Add(key)
	}

	return result
}

// Intersection returns a new set containing only keys present in both s and
// other.
func (s *Set[K]) Intersection(other *Set[K]) *Set[K] {
	result := New[K]()

	small, large := s, other
	if other.Len() < s.Len() {
		small, large = other, s
	}

	for key := range small.Seq() {
		if large.Contains(key) {
			result.Add(key)
		}
	}

	return result
}

// find returns the holder for key, if present.
func (s *Set[K]) find(key K) (*holder[K], bool) {
	cur := s.tree.Root()
	for cur != nil {
		h := rbtree.Of[holder[K]](cur)

		switch {
		case key.LessThan(h.key):
			cur = cur.Left()
		case h.key.LessThan(key):
			cur = cur.Right()
		default:
			return h, true
		}
	}

	return nil, false
}

// locate performs the BST descent for key, returning the parent and side at
// which a new node would attach, or the existing holder if key is already
// present.
func (s *Set[K]) locate(key K) (parent *rbtree.Node, side rbtree.Side, existing *holder[K]) {
	cur := s.tree.Root()
	if cur == nil {
		return nil, rbtree.NoSide, nil
	}

	for {
		h := rbtree.Of[holder[K]](cur)

		switch {
		case key.LessThan(h.key):
			if cur.Left() == nil {
				return cur, rbtree.Left, nil
			}

			cur = cur.Left()
		case h.key.LessThan(key):
			if cur.Right() == nil {
				return cur, rbtree.Right, nil
			}

			cur = cur.Right()
		default:
			return nil, rbtree.NoSide, h
		}
	}
}
