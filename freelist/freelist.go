// Package freelist implements a size-ordered free-list allocator over the
// rbtree intrusive core: free blocks are indexed first by length then by
// offset, enabling best-fit Reserve and adjacency-based coalescing on
// Release.
package freelist

import (
	"context"
	"encoding/binary"

	"github.com/zeebo/xxh3"

	"github.com/latticetree/rbtree"
	"github.com/latticetree/rbtree/assert"
	"github.com/latticetree/rbtree/errors"
	"github.com/latticetree/rbtree/logger"
)

// Block is a free span of bytes: [Offset, Offset+Length). rbtree.Node must
// stay the first field.
type Block struct {
	rbtree.Node

	Offset int64
	Length int64
}

// Allocator tracks a set of disjoint free Blocks over some address space.
// The zero value is not ready to use — call NewAllocator. Like the rbtree
// core it sits on, an Allocator is not internally synchronized.
type Allocator struct {
	tree rbtree.Tree
	size int

	byStart map[int64]*Block
	byEnd   map[int64]*Block

	classes []SizeClass
}

// NewAllocator returns an empty Allocator. classes, if non-nil, is used only
// to label Reserve/Release log lines with a human-readable size-class name;
// it has no effect on allocation behavior.
func NewAllocator(classes []SizeClass) *Allocator {
	return &Allocator{
		byStart: make(map[int64]*Block),
		byEnd:   make(map[int64]*Block),
		classes: classes,
	}
}

// Len returns the number of disjoint free blocks currently tracked.
func (a *Allocator) Len() int {
	return a.size
}

// Free adds [offset, offset+length) to the allocator as available, without
// attempting to coalesce it with any neighbor. Use this to seed an
// Allocator with its initial free space; use Release once blocks have been
// through Reserve.
func (a *Allocator) Free(offset, length int64) {
	a.insertFree(&Block{Offset: offset, Length: length})
}

// Reserve finds the smallest free block at least minLength bytes long
// (best-fit), removes it, and returns the offset of a minLength-byte span
// carved from its start plus a checksum token that must be passed back to
// Release for that span. Any leftover space in the block is returned to the
// free list. Reserve returns errors.ErrEmpty if no block is large enough.
func (a *Allocator) Reserve(minLength int64) (offset int64, token uint64, err error) {
	block := a.bestFit(minLength)
	if block == nil {
		annotated := logger.AnnotateError(errors.ErrEmpty, "min_length", minLength, "class", a.classify(minLength))
		logger.Warn(context.Background(), "freelist: reserve failed", "error", annotated)

		return 0, 0, annotated
	}

	a.removeFree(block)

	reservedOffset := block.Offset
	leftover := block.Length - minLength

	if leftover > 0 {
		a.insertFree(&Block{Offset: block.Offset + minLength, Length: leftover})
	}

	logger.Debug(context.Background(), "freelist: reserved block",
		"offset", reservedOffset, "length", minLength, "class", a.classify(minLength))

	return reservedOffset, checksum(reservedOffset, minLength), nil
}

// Release returns [offset, offset+length) to the free list, coalescing it
// with an adjacent free block on either side if one exists. token must be
// the value Reserve returned for this exact span; in debug builds (the
// assertions_disabled build tag is not set) a mismatch panics, catching
// double-release and wrong-span bugs. This is not a correctness requirement
// of the structure. With the assertions_disabled tag a mismatch no longer
// panics, exactly like the rbtree core's own debug assertions; the token is
// still hashed and compared in every build.
func (a *Allocator) Release(offset, length int64, token uint64) {
	assert.True(token == checksum(offset, length), "freelist: release token does not match the reserved span")

	newOffset, newLength := offset, length

	if left, ok := a.byEnd[newOffset]; ok {
		a.removeFree(left)
		newOffset = left.Offset
		newLength += left.Length
	}

	if right, ok := a.byStart[newOffset+newLength]; ok {
		a.removeFree(right)
		newLength += right.Length
	}

	a.insertFree(&Block{Offset: newOffset, Length: newLength})

	logger.Debug(context.Background(), "freelist: released block", "offset", newOffset, "length", newLength)
}

// bestFit returns the free block with the smallest Length >= minLength,
// breaking ties by the smallest Offset, or nil if none qualifies.
func (a *Allocator) bestFit(minLength int64) *Block {
	cur := a.tree.Root()

	var best *rbtree.Node

	for cur != nil {
		block := rbtree.Of[Block](cur)

		if block.Length >= minLength {
			best = cur
			cur = cur.Left()
		} else {
			cur = cur.Right()
		}
	}

	if best == nil {
		return nil
	}

	return rbtree.Of[Block](best)
}

func (a *Allocator) insertFree(b *Block) {
	parent, side := a.locate(b)
	a.tree.LinkNode(&b.Node, parent, side)
	a.tree.InsertFixup(&b.Node)

	a.byStart[b.Offset] = b
	a.byEnd[b.Offset+b.Length] = b
	a.size++
}

func (a *Allocator) removeFree(b *Block) {
	a.tree.Erase(&b.Node)

	delete(a.byStart, b.Offset)
	delete(a.byEnd, b.Offset+b.Length)
	a.size--
}

// locate performs the BST descent ordering free blocks by (Length, Offset).
func (a *Allocator) locate(b *Block) (parent *rbtree.Node, side rbtree.Side) {
	cur := a.tree.Root()
	if cur == nil {
		return nil, rbtree.NoSide
	}

	for {
		curBlock := rbtree.Of[Block](cur)

		if less(b, curBlock) {
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

func less(a, b *Block) bool {
	if a.Length != b.Length {
		return a.Length < b.Length
	}

	return a.Offset < b.Offset
}

// classify returns the name of the largest configured SizeClass whose
// MinBytes does not exceed length, or "default" if classes is empty or none
// qualify. It exists purely to label log output.
func (a *Allocator) classify(length int64) string {
	best := "default"
	bestMin := int64(-1)

	for _, c := range a.classes {
		if length >= c.MinBytes && c.MinBytes > bestMin {
			best = c.Name
			bestMin = c.MinBytes
		}
	}

	return best
}

func checksum(offset, length int64) uint64 {
	var buf [16]byte

	binary.LittleEndian.PutUint64(buf[0:8], uint64(offset)) //nolint:gosec
	binary.LittleEndian.PutUint64(buf[8:16], uint64(length)) //nolint:gosec

	return xxh3.Hash(buf[:])
}
