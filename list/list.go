package list

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/persistent"
)

// List is an immutable persistent list. The zero value is the empty list.
type List[T any] struct {
	node *cell[T] // nil for the empty list
}

// cell is a cons cell. Cells are never modified after construction and may be
// shared as the tail of any number of lists.
type cell[T any] struct {
	head   T
	tail   *cell[T]
	length int
}

var _ persistent.Indexed[int] = List[int]{}

// Empty returns the empty list. It is equivalent to the zero value.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Of creates a list from items, in order.
func Of[T any](items ...T) List[T] {
	b := NewBuilder[T]()
	b.AddAll(items...)
	return b.Result()
}

// From creates a list from any sequence. If s already is a list, it is returned unchanged.
func From[T any](s persistent.Sequence[T]) List[T] {
	if l, ok := s.(List[T]); ok {
		return l
	}
	b := NewBuilder[T]()
	b.AddSeq(s.All())
	return b.Result()
}

// Collect creates a list from an iterator.
func Collect[T any](it iter.Seq[T]) List[T] {
	b := NewBuilder[T]()
	b.AddSeq(it)
	return b.Result()
}

func (l List[T]) Len() int {
	if l.node == nil {
		return 0
	}
	return l.node.length
}

func (l List[T]) IsEmpty() bool {
	return l.node == nil
}

func (l List[T]) NotEmpty() bool {
	return l.node != nil
}

// Head returns the first item of l.
func (l List[T]) Head() (T, error) {
	if l.node == nil {
		var zero T
		return zero, fmt.Errorf("%w: head of empty list", persistent.ErrEmptyCollection)
	}
	return l.node.head, nil
}

// Tail returns l without its first item. The result shares all of its cells with l.
func (l List[T]) Tail() (List[T], error) {
	if l.node == nil {
		return l, fmt.Errorf("%w: tail of empty list", persistent.ErrEmptyCollection)
	}
	return List[T]{node: l.node.tail}, nil
}

// Prepend returns a new list with x as its head and l as its tail.
func (l List[T]) Prepend(x T) List[T] {
	return List[T]{node: &cell[T]{head: x, tail: l.node, length: l.Len() + 1}}
}

// Extend prepends items one after the other. The last item will be the head
// of the resulting list:
//
//     list.Empty[int]().Extend(1, 2, 3)   // [3 2 1]
//
func (l List[T]) Extend(items ...T) List[T] {
	for _, x := range items {
		l = l.Prepend(x)
	}
	return l
}

// Get returns the item at position i. Negative indices are rejected.
func (l List[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 {
		return zero, persistent.NegativeIndexError(i)
	}
	if i >= l.Len() {
		return zero, persistent.IndexError(i, l.Len())
	}
	c := l.node
	for ; i > 0; i-- {
		c = c.tail
	}
	return c.head, nil
}

// At is the same as Get. It makes lists persistent.Indexed.
func (l List[T]) At(i int) (T, error) {
	return l.Get(i)
}

// GetOr returns the item at position i, or def if there is none.
func (l List[T]) GetOr(i int, def T) T {
	if x, err := l.Get(i); err == nil {
		return x
	}
	return def
}

// Take returns a list of the first n items of l. If n ≥ l.Len(), l itself is returned.
func (l List[T]) Take(n int) (List[T], error) {
	if n < 0 {
		return l, persistent.NegativeIndexError(n)
	}
	if n >= l.Len() {
		return l, nil
	}
	b := NewBuilder[T]()
	for c := l.node; n > 0; c, n = c.tail, n-1 {
		b.Add(c.head)
	}
	return b.Result(), nil
}

// Slice returns a list of the items within [start, stop). Negative bounds count
// from the end of l. Bounds are clamped to the length of l, and stop < start
// results in an empty list. A slice reaching to the end of l shares its cells with l.
func (l List[T]) Slice(start, stop int) List[T] {
	n := l.Len()
	clamp := func(i int) int {
		if i < 0 {
			return max(0, i+n)
		}
		return min(i, n)
	}
	start, stop = clamp(start), clamp(stop)
	if stop <= start {
		return List[T]{}
	}
	c := l.node
	for i := 0; i < start; i++ {
		c = c.tail
	}
	if stop == n {
		return List[T]{node: c}
	}
	b := NewBuilder[T]()
	for i := start; i < stop; i, c = i+1, c.tail {
		b.Add(c.head)
	}
	return b.Result()
}

// Reverse returns a list of the items of l in reverse order.
func (l List[T]) Reverse() List[T] {
	var r List[T]
	for c := l.node; c != nil; c = c.tail {
		r = r.Prepend(c.head)
	}
	return r
}

// All iterates over the items of l, from head to end.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := l.node; c != nil; c = c.tail {
			if !yield(c.head) {
				return
			}
		}
	}
}

// ToSlice returns the items of l in a freshly allocated slice.
func (l List[T]) ToSlice() []T {
	return persistent.ToSlice[T](l)
}

func (l List[T]) String() string {
	var b strings.Builder
	b.WriteString("List[")
	for c := l.node; c != nil; c = c.tail {
		if c != l.node {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", c.head)
	}
	b.WriteByte(']')
	return b.String()
}
