package cartesian

// Proxy exposes a pair of cursors as a Sequence.
//
// Use it to build a product from a range that is only known by its
// boundaries, e.g. a part of a larger sequence. Proxy holds no element.
type Proxy[T any] struct {
	begin, end Cursor[T]
}

// NewProxy wraps begin and end cursors of the same sequence.
func NewProxy[T any](begin, end Cursor[T]) Proxy[T] {
	return Proxy[T]{begin: begin.Clone(), end: end.Clone()}
}

// Begin returns a copy of the begin cursor.
func (p Proxy[T]) Begin() Cursor[T] {
	return p.begin.Clone()
}

// End returns a copy of the end cursor.
func (p Proxy[T]) End() Cursor[T] {
	return p.end.Clone()
}
