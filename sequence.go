package persistent

import "iter"

// Sequence is the read-only capability all sequence types of this module share:
// a finite, ordered run of values which may be traversed any number of times.
// Combinators in package seq are written against Sequence only.
type Sequence[T any] interface {
	Len() int
	All() iter.Seq[T]
}

// Indexed is a Sequence with random access.
type Indexed[T any] interface {
	Sequence[T]
	At(i int) (T, error)
}

// Collector accumulates values and finally freezes them into a collection of type C.
// The builders of packages list and vector are collectors.
type Collector[T, C any] interface {
	Add(T)
	Result() C
}

// --- Slices ----------------------------------------------------------------

// Slice adapts a plain Go slice to Sequence and Indexed, making it comparable to,
// and convertible into, the persistent sequence types:
//
//     persistent.Equal[int](vector.Of(1, 2), persistent.Slice[int]{1, 2})  // true
//
type Slice[T any] []T

func (s Slice[T]) Len() int {
	return len(s)
}

func (s Slice[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range s {
			if !yield(x) {
				return
			}
		}
	}
}

func (s Slice[T]) At(i int) (T, error) {
	if i < 0 || i >= len(s) {
		var zero T
		return zero, IndexError(i, len(s))
	}
	return s[i], nil
}

// SliceBuilder is a Collector producing a Slice.
type SliceBuilder[T any] struct {
	items []T
}

func (b *SliceBuilder[T]) Add(x T) {
	b.items = append(b.items, x)
}

// Result returns the collected items and resets b.
func (b *SliceBuilder[T]) Result() Slice[T] {
	r := b.items
	b.items = nil
	if r == nil {
		return Slice[T]{}
	}
	return r
}

// ToSlice copies the elements of s into a fresh Go slice.
func ToSlice[T any](s Sequence[T]) []T {
	out := make([]T, 0, s.Len())
	for x := range s.All() {
		out = append(out, x)
	}
	return out
}

// --- Equality --------------------------------------------------------------

// Equal compares two sequences element-wise. The concrete types of a and b do
// not matter, a list may equal a vector or a slice.
func Equal[T comparable](a, b Sequence[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool {
		return x == y
	})
}

// EqualFunc compares two sequences element-wise, using eq for elements.
func EqualFunc[T any](a, b Sequence[T], eq func(T, T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	next, stop := iter.Pull(b.All())
	defer stop()
	for x := range a.All() {
		y, ok := next()
		if !ok || !eq(x, y) {
			return false
		}
	}
	return true
}
