package cartesian

import (
	"iter"

	"github.com/dalibo/cartesian/internal/odometer"
)

// Iterator is a cursor over the product of sequences of T.
//
// Use T = any to combine sequences of different types, or Iterator2 and
// Iterator3 to keep static types.
//
// An Iterator built by NewIterator borrows its sequences. Iterators
// returned by Product.Begin and Product.End point into the product storage.
//
// Assigning an Iterator shares its position and its materialized
// combination: moving one alias moves the other. Use Clone to copy it. The
// zero value only equals another zero Iterator and must not be read.
type Iterator[T any] struct {
	odometer odometer.Odometer
	dials    []*dial[T]
	value    *odometer.Cache[[]T]
}

// NewIterator returns a cursor at the first combination of seqs.
//
// The first sequence varies fastest. seqs must not be empty, nor any of
// them. seqs must outlive the cursor.
func NewIterator[T any](seqs ...Sequence[T]) Iterator[T] {
	dials := make([]odometer.Dial, len(seqs))
	for i, seq := range seqs {
		dials[i] = newDial(seq)
	}
	return fromOdometer[T](odometer.New(dials...))
}

func fromOdometer[T any](o odometer.Odometer) Iterator[T] {
	if o.Len() == 0 {
		return Iterator[T]{}
	}
	dials := make([]*dial[T], o.Len())
	for i := range dials {
		dials[i] = o.Dial(i).(*dial[T])
	}
	return Iterator[T]{odometer: o, dials: dials, value: new(odometer.Cache[[]T])}
}

// Dimensions returns the number of combined sequences.
func (it *Iterator[T]) Dimensions() int {
	return len(it.dials)
}

// End returns the end marker to compare this cursor with.
func (it *Iterator[T]) End() Iterator[T] {
	return fromOdometer[T](it.odometer.End())
}

// Done reports whether the cursor reached the end marker.
func (it *Iterator[T]) Done() bool {
	return it.odometer.Done()
}

// Next moves the cursor to the next combination.
//
// Next is a no-op at end.
func (it *Iterator[T]) Next() {
	if it.odometer.Advance() {
		it.value.Clear()
	}
}

// Step moves the cursor to the next combination and returns a copy of the
// cursor before the move.
func (it *Iterator[T]) Step() Iterator[T] {
	previous := it.Clone()
	it.Next()
	return previous
}

// Value returns the current combination, one element per sequence.
//
// The slice is built on first call and returned as is until the cursor
// moves. Callers must not modify it.
func (it *Iterator[T]) Value() []T {
	return *it.value.Load(func() []T {
		values := make([]T, len(it.dials))
		for i, d := range it.dials {
			values[i] = d.Value()
		}
		return values
	})
}

// Get returns the current element of sequence i.
//
// Get(i) always equals Value()[i] without building the combination.
func (it *Iterator[T]) Get(i int) T {
	return it.dials[i].Value()
}

// Equal reports whether both cursors are at the same combination.
//
// other must come from the same lineage: the same NewIterator call or
// product. Cursors at end are equal as soon as their most significant
// cursors are.
func (it *Iterator[T]) Equal(other Iterator[T]) bool {
	return it.odometer.Equal(other.odometer)
}

// Clone returns an independent cursor at the same position.
//
// The materialized combination is not shared.
func (it *Iterator[T]) Clone() Iterator[T] {
	return fromOdometer[T](it.odometer.Clone())
}

// All returns the combinations from the current position up to end.
//
// The cursor itself does not move. Yielded slices must not be modified.
func (it *Iterator[T]) All() iter.Seq[[]T] {
	start := it.Clone()
	return func(yield func([]T) bool) {
		cursor := start.Clone()
		for ; !cursor.Done(); cursor.Next() {
			if !yield(cursor.Value()) {
				return
			}
		}
	}
}
