package cartesian

import "fmt"

// Tuple2 is a combination of two sequences.
type Tuple2[A, B any] struct {
	V0 A
	V1 B
}

func (t Tuple2[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", t.V0, t.V1)
}

// Tuple3 is a combination of three sequences.
type Tuple3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

func (t Tuple3[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.V0, t.V1, t.V2)
}
