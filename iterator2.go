package cartesian

import (
	"iter"

	"github.com/dalibo/cartesian/internal/odometer"
)

// Iterator2 is a cursor over the product of two sequences of distinct
// types.
//
// Iterator2 behaves like Iterator: the first sequence varies fastest,
// assigning shares the position and the materialized combination, the
// zero value must not be read.
type Iterator2[A, B any] struct {
	odometer odometer.Odometer
	d0       *dial[A]
	d1       *dial[B]
	value    *odometer.Cache[Tuple2[A, B]]
}

// NewIterator2 returns a cursor at the first combination of a and b.
//
// a and b must not be empty and must outlive the cursor.
func NewIterator2[A, B any](a Sequence[A], b Sequence[B]) Iterator2[A, B] {
	return fromOdometer2[A, B](odometer.New(newDial(a), newDial(b)))
}

func fromOdometer2[A, B any](o odometer.Odometer) Iterator2[A, B] {
	if o.Len() == 0 {
		return Iterator2[A, B]{}
	}
	return Iterator2[A, B]{
		odometer: o,
		d0:       o.Dial(0).(*dial[A]),
		d1:       o.Dial(1).(*dial[B]),
		value:    new(odometer.Cache[Tuple2[A, B]]),
	}
}

// End returns the end marker to compare this cursor with.
func (it *Iterator2[A, B]) End() Iterator2[A, B] {
	return fromOdometer2[A, B](it.odometer.End())
}

// Done reports whether the cursor reached the end marker.
func (it *Iterator2[A, B]) Done() bool {
	return it.odometer.Done()
}

// Next moves the cursor to the next combination. Next is a no-op at end.
func (it *Iterator2[A, B]) Next() {
	if it.odometer.Advance() {
		it.value.Clear()
	}
}

// Step moves the cursor and returns a copy of the cursor before the move.
func (it *Iterator2[A, B]) Step() Iterator2[A, B] {
	previous := it.Clone()
	it.Next()
	return previous
}

// Value returns the current combination.
//
// The same pointer is returned until the cursor moves.
func (it *Iterator2[A, B]) Value() *Tuple2[A, B] {
	return it.value.Load(func() Tuple2[A, B] {
		return Tuple2[A, B]{it.d0.Value(), it.d1.Value()}
	})
}

// Get0 returns the current element of the first sequence.
func (it *Iterator2[A, B]) Get0() A {
	return it.d0.Value()
}

// Get1 returns the current element of the second sequence.
func (it *Iterator2[A, B]) Get1() B {
	return it.d1.Value()
}

// Equal reports whether both cursors of the same lineage are at the same
// combination.
func (it *Iterator2[A, B]) Equal(other Iterator2[A, B]) bool {
	return it.odometer.Equal(other.odometer)
}

// Clone returns an independent cursor at the same position.
func (it *Iterator2[A, B]) Clone() Iterator2[A, B] {
	return fromOdometer2[A, B](it.odometer.Clone())
}

// All returns the combinations from the current position up to end.
func (it *Iterator2[A, B]) All() iter.Seq2[A, B] {
	start := it.Clone()
	return func(yield func(A, B) bool) {
		cursor := start.Clone()
		for ; !cursor.Done(); cursor.Next() {
			if !yield(cursor.Get0(), cursor.Get1()) {
				return
			}
		}
	}
}

// Iterator3 is a cursor over the product of three sequences of distinct
// types. See Iterator2.
type Iterator3[A, B, C any] struct {
	odometer odometer.Odometer
	d0       *dial[A]
	d1       *dial[B]
	d2       *dial[C]
	value    *odometer.Cache[Tuple3[A, B, C]]
}

// NewIterator3 returns a cursor at the first combination of a, b and c.
func NewIterator3[A, B, C any](a Sequence[A], b Sequence[B], c Sequence[C]) Iterator3[A, B, C] {
	return fromOdometer3[A, B, C](odometer.New(newDial(a), newDial(b), newDial(c)))
}

func fromOdometer3[A, B, C any](o odometer.Odometer) Iterator3[A, B, C] {
	if o.Len() == 0 {
		return Iterator3[A, B, C]{}
	}
	return Iterator3[A, B, C]{
		odometer: o,
		d0:       o.Dial(0).(*dial[A]),
		d1:       o.Dial(1).(*dial[B]),
		d2:       o.Dial(2).(*dial[C]),
		value:    new(odometer.Cache[Tuple3[A, B, C]]),
	}
}

func (it *Iterator3[A, B, C]) End() Iterator3[A, B, C] {
	return fromOdometer3[A, B, C](it.odometer.End())
}

func (it *Iterator3[A, B, C]) Done() bool {
	return it.odometer.Done()
}

func (it *Iterator3[A, B, C]) Next() {
	if it.odometer.Advance() {
		it.value.Clear()
	}
}

func (it *Iterator3[A, B, C]) Step() Iterator3[A, B, C] {
	previous := it.Clone()
	it.Next()
	return previous
}

func (it *Iterator3[A, B, C]) Value() *Tuple3[A, B, C] {
	return it.value.Load(func() Tuple3[A, B, C] {
		return Tuple3[A, B, C]{it.d0.Value(), it.d1.Value(), it.d2.Value()}
	})
}

func (it *Iterator3[A, B, C]) Get0() A {
	return it.d0.Value()
}

func (it *Iterator3[A, B, C]) Get1() B {
	return it.d1.Value()
}

func (it *Iterator3[A, B, C]) Get2() C {
	return it.d2.Value()
}

func (it *Iterator3[A, B, C]) Equal(other Iterator3[A, B, C]) bool {
	return it.odometer.Equal(other.odometer)
}

func (it *Iterator3[A, B, C]) Clone() Iterator3[A, B, C] {
	return fromOdometer3[A, B, C](it.odometer.Clone())
}

// All returns the combinations from the current position up to end.
func (it *Iterator3[A, B, C]) All() iter.Seq[*Tuple3[A, B, C]] {
	start := it.Clone()
	return func(yield func(*Tuple3[A, B, C]) bool) {
		cursor := start.Clone()
		for ; !cursor.Done(); cursor.Next() {
			if !yield(cursor.Value()) {
				return
			}
		}
	}
}
