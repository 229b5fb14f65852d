// Package orderedmap provides a sorted key/value map, backed by the rbtree
// intrusive core. Keys are ordered by sortable.Sortable.LessThan the same
// way orderedset orders its elements.
package orderedmap

import (
	"iter"

	"github.com/latticetree/rbtree"
	"github.com/latticetree/rbtree/sortable"
)

// entry is the intrusive payload. rbtree.Node must stay the first field.
type entry[K sortable.Sortable[K], V any] struct {
	rbtree.Node
	key   K
	value V
}

// Map is a sorted key/value map. The zero value is an empty, ready-to-use
// map.
type Map[K sortable.Sortable[K], V any] struct {
	tree rbtree.Tree
	size int
}

// New returns an empty Map.
func New[K sortable.Sortable[K], V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Get returns the value stored for key and true, or the zero value and
// false if key is absent.
func (m *Map[K, V]) Get(key K) (V, bool) {
	e, ok := m.find(key)
	if !ok {
		var zero V

		return zero, false
	}

	return e.value, true
}

// Contains reports whether key is present in the map.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.find(key)

	return ok
}

// Set inserts or overwrites the value for key. It returns true if the key
// was newly inserted, false if an existing entry's value was overwritten.
func (m *Map[K, V]) Set(key K, value V) bool {
	parent, side, existing := m.locate(key)
	if existing != nil {
		existing.value = value

		return false
	}

	e := &entry[K, V]{key: key, value: value}
	m.tree.LinkNode(&e.Node, parent, side)
	m.tree.InsertFixup(&e.Node)
	m.size++

	return true
}

// Delete removes key from the map. It returns false if the key was not
// present.
func (m *Map[K, V]) Delete(key K) bool {
	e, ok := m.find(key)
	if !ok {
		return false
	}

	m.tree.Erase(&e.Node)
	m.size--

	return true
}

// Clear empties the map.
func (m *Map[K, V]) Clear() {
	m.tree = rbtree.Tree{}
	m.size = 0
}

// Seq yields every key/value pair in ascending key order.
func (m *Map[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := m.tree.First(); n != nil; n = n.Next() {
			e := rbtree.Of[entry[K, V]](n)
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Keys yields every key in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.Seq() {
			if !yield(k) {
				return
			}
		}
	}
}

// ForEach calls f for every entry in ascending key order.
func (m *Map[K, V]) ForEach(f func(key K, value V)) {
	for k, v := range m.Seq() {
		f(k, v)
	}
}

func (m *Map[K, V]) find(key K) (*entry[K, V], bool) {
	cur := m.tree.Root()
	for cur != nil {
		e := rbtree.Of[entry[K, V]](cur)

		switch {
		case key.LessThan(e.key):
			cur = cur.Left()
		case e.key.LessThan(key):
			cur = cur.Right()
		default:
			return e, true
		}
	}

	return nil, false
}

func (m *Map[K, V]) locate(key K) (parent *rbtree.Node, side rbtree.Side, existing *entry[K, V]) {
	cur := m.tree.Root()
	if cur == nil {
		return nil, rbtree.NoSide, nil
	}

	for {
		e := rbtree.Of[entry[K, V]](cur)

		switch {
		case key.LessThan(e.key):
			if cur.Left() == nil {
				return cur, rbtree.Left, nil
			}

			cur = cur.Left()
		case e.key.LessThan(key):
			if cur.Right() == nil {
				return cur, rbtree.Right, nil
			}

			cur = cur.Right()
		default:
			return nil, rbtree.NoSide, e
		}
	}
}
