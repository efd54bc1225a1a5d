// Package cartesian enumerates the cartesian product of finite sequences
// lazily.
//
// A product cursor walks every combination of one element from each
// sequence, without building the product set. The first sequence varies
// fastest:
//
//	A = [1, 2], B = [4, 5, 6]
//	(1,4) (2,4) (1,5) (2,5) (1,6) (2,6)
//
// Two families share the same algorithm. Iterator, Iterator2 and Iterator3
// borrow the sequences they are built from: callers must keep them alive
// and unchanged for the whole iteration. Product, Product2 and Product3
// own a private copy of their sequences and hand out cursors into it.
//
// Cursors follow the discipline of C-like iterators rather than Go
// channels: compare with the end marker, read, advance. Reading a cursor at
// end, or a product over an empty sequence, is undefined.
package cartesian

import "slices"

// Cursor is a forward position in a finite sequence of T.
//
// Cursors move in place. Clone returns an independent cursor at the same
// position, Reset moves a cursor to the position of another cursor of the
// same sequence. Comparing or resetting cursors of different sequences is
// undefined.
type Cursor[T any] interface {
	// Value returns the element at the cursor position.
	Value() T
	// Next moves the cursor one element forward.
	Next()
	// Equal reports whether other is at the same position.
	Equal(other Cursor[T]) bool
	Clone() Cursor[T]
	Reset(to Cursor[T])
}

// Sequence is an ordered, finite collection exposing begin and end cursors.
//
// End is one step past the last element.
type Sequence[T any] interface {
	Begin() Cursor[T]
	End() Cursor[T]
}

// Slice adapts a Go slice to Sequence.
type Slice[T any] []T

func (s Slice[T]) Begin() Cursor[T] {
	return &sliceCursor[T]{items: s}
}

func (s Slice[T]) End() Cursor[T] {
	return &sliceCursor[T]{items: s, index: len(s)}
}

type sliceCursor[T any] struct {
	items []T
	index int
}

func (c *sliceCursor[T]) Value() T {
	return c.items[c.index]
}

func (c *sliceCursor[T]) Next() {
	c.index++
}

func (c *sliceCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(*sliceCursor[T])
	return ok && c.index == o.index
}

func (c *sliceCursor[T]) Clone() Cursor[T] {
	clone := *c
	return &clone
}

func (c *sliceCursor[T]) Reset(to Cursor[T]) {
	c.index = to.(*sliceCursor[T]).index
}

// Collect copies the elements of seq in a new slice.
func Collect[T any](seq Sequence[T]) []T {
	if s, ok := seq.(Slice[T]); ok {
		return slices.Clone([]T(s))
	}

	var out []T
	end := seq.End()
	for c := seq.Begin(); !c.Equal(end); c.Next() {
		out = append(out, c.Value())
	}
	return out
}
