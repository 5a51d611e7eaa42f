package persistent

import "fmt"

// Pair holds two values of possibly different types.
// It is the element type produced by zipping and by run-length grouping, and
// the argument type for multi-set operations on vectors.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P is a short constructor for pairs.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Left, p.Right)
}
