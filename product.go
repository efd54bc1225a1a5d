package cartesian

import (
	"iter"
	"slices"

	"github.com/dalibo/cartesian/internal/odometer"
)

// Product owns a copy of N sequences of T and enumerates their product.
//
// Cursors returned by Begin and End point into the product storage, never
// into the caller sequences. The caller may modify or drop its sequences
// once the product is built.
type Product[T any] struct {
	lists      [][]T
	begin, end Iterator[T]
}

// NewProduct copies each sequence, in argument order.
func NewProduct[T any](seqs ...Sequence[T]) *Product[T] {
	lists := make([][]T, len(seqs))
	for i, seq := range seqs {
		lists[i] = Collect(seq)
	}
	return Own(lists...)
}

// FromSlices copies each slice, in argument order.
func FromSlices[T any](lists ...[]T) *Product[T] {
	copies := make([][]T, len(lists))
	for i, list := range lists {
		copies[i] = slices.Clone(list)
	}
	return Own(copies...)
}

// Own builds a product on lists without copying them.
//
// The caller hands lists over to the product and must not modify them
// afterwards.
func Own[T any](lists ...[]T) *Product[T] {
	p := &Product[T]{lists: lists}
	dials := make([]odometer.Dial, len(lists))
	for i, list := range lists {
		dials[i] = newDial[T](Slice[T](list))
	}
	p.begin = fromOdometer[T](odometer.New(dials...))
	p.end = p.begin.End()
	return p
}

// Dimensions returns the number of sequences.
func (p *Product[T]) Dimensions() int {
	return len(p.lists)
}

// Len returns the number of combinations, or -1 if it overflows int.
func (p *Product[T]) Len() int {
	lengths := make([]int, len(p.lists))
	for i, list := range p.lists {
		lengths[i] = len(list)
	}
	n, ok := odometer.Count(lengths...)
	if !ok {
		return -1
	}
	return n
}

// Begin returns a cursor at the first combination.
func (p *Product[T]) Begin() Iterator[T] {
	return p.begin.Clone()
}

// End returns the end marker.
func (p *Product[T]) End() Iterator[T] {
	return p.end.Clone()
}

// Clone returns a product with its own copy of the sequences.
//
// Cursors of p are not valid for the clone.
func (p *Product[T]) Clone() *Product[T] {
	return FromSlices(p.lists...)
}

// All returns all combinations, first sequence varying fastest.
//
// All yields nothing if any sequence is empty.
func (p *Product[T]) All() iter.Seq[[]T] {
	if p.Len() == 0 {
		return func(func([]T) bool) {}
	}
	return p.begin.All()
}
