package cartesian

import (
	"iter"
	"slices"

	"github.com/dalibo/cartesian/internal/odometer"
)

// Product2 owns a copy of two sequences of distinct types.
type Product2[A, B any] struct {
	a          []A
	b          []B
	begin, end Iterator2[A, B]
}

// NewProduct2 copies a and b.
func NewProduct2[A, B any](a Sequence[A], b Sequence[B]) *Product2[A, B] {
	return Own2(Collect(a), Collect(b))
}

// Product2Of copies slices a and b.
func Product2Of[A, B any](a []A, b []B) *Product2[A, B] {
	return Own2(slices.Clone(a), slices.Clone(b))
}

// Own2 builds a product on a and b without copying them. The caller must
// not modify them afterwards.
func Own2[A, B any](a []A, b []B) *Product2[A, B] {
	p := &Product2[A, B]{a: a, b: b}
	p.begin = fromOdometer2[A, B](odometer.New(
		newDial[A](Slice[A](a)),
		newDial[B](Slice[B](b)),
	))
	p.end = p.begin.End()
	return p
}

// Len returns the number of combinations, or -1 if it overflows int.
func (p *Product2[A, B]) Len() int {
	n, ok := odometer.Count(len(p.a), len(p.b))
	if !ok {
		return -1
	}
	return n
}

func (p *Product2[A, B]) Begin() Iterator2[A, B] {
	return p.begin.Clone()
}

func (p *Product2[A, B]) End() Iterator2[A, B] {
	return p.end.Clone()
}

// Clone returns a product with its own copy of the sequences.
func (p *Product2[A, B]) Clone() *Product2[A, B] {
	return Product2Of(p.a, p.b)
}

// All yields nothing if a or b is empty.
func (p *Product2[A, B]) All() iter.Seq2[A, B] {
	if p.Len() == 0 {
		return func(func(A, B) bool) {}
	}
	return p.begin.All()
}

// Product3 owns a copy of three sequences of distinct types.
type Product3[A, B, C any] struct {
	a          []A
	b          []B
	c          []C
	begin, end Iterator3[A, B, C]
}

// NewProduct3 copies a, b and c.
func NewProduct3[A, B, C any](a Sequence[A], b Sequence[B], c Sequence[C]) *Product3[A, B, C] {
	return Own3(Collect(a), Collect(b), Collect(c))
}

// Product3Of copies slices a, b and c.
func Product3Of[A, B, C any](a []A, b []B, c []C) *Product3[A, B, C] {
	return Own3(slices.Clone(a), slices.Clone(b), slices.Clone(c))
}

// Own3 builds a product on a, b and c without copying them.
func Own3[A, B, C any](a []A, b []B, c []C) *Product3[A, B, C] {
	p := &Product3[A, B, C]{a: a, b: b, c: c}
	p.begin = fromOdometer3[A, B, C](odometer.New(
		newDial[A](Slice[A](a)),
		newDial[B](Slice[B](b)),
		newDial[C](Slice[C](c)),
	))
	p.end = p.begin.End()
	return p
}

func (p *Product3[A, B, C]) Len() int {
	n, ok := odometer.Count(len(p.a), len(p.b), len(p.c))
	if !ok {
		return -1
	}
	return n
}

func (p *Product3[A, B, C]) Begin() Iterator3[A, B, C] {
	return p.begin.Clone()
}

func (p *Product3[A, B, C]) End() Iterator3[A, B, C] {
	return p.end.Clone()
}

func (p *Product3[A, B, C]) Clone() *Product3[A, B, C] {
	return Product3Of(p.a, p.b, p.c)
}

func (p *Product3[A, B, C]) All() iter.Seq[*Tuple3[A, B, C]] {
	if p.Len() == 0 {
		return func(func(*Tuple3[A, B, C]) bool) {}
	}
	return p.begin.All()
}
