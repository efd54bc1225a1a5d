package cartesian

import "github.com/dalibo/cartesian/internal/odometer"

// dial is one dimension of a product cursor.
//
// begin and end are never moved and are shared by clones.
type dial[T any] struct {
	current, begin, end Cursor[T]
}

func newDial[T any](seq Sequence[T]) *dial[T] {
	begin := seq.Begin()
	return &dial[T]{
		current: begin.Clone(),
		begin:   begin,
		end:     seq.End(),
	}
}

func (d *dial[T]) Value() T {
	return d.current.Value()
}

func (d *dial[T]) Next() {
	d.current.Next()
}

func (d *dial[T]) Rewind() {
	d.current.Reset(d.begin)
}

func (d *dial[T]) Finish() {
	d.current.Reset(d.end)
}

func (d *dial[T]) Exhausted() bool {
	return d.current.Equal(d.end)
}

func (d *dial[T]) Equal(other odometer.Dial) bool {
	return d.current.Equal(other.(*dial[T]).current)
}

func (d *dial[T]) Clone() odometer.Dial {
	return d.clone()
}

func (d *dial[T]) clone() *dial[T] {
	return &dial[T]{
		current: d.current.Clone(),
		begin:   d.begin,
		end:     d.end,
	}
}
