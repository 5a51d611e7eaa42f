package list

import (
	"iter"

	"github.com/npillmayer/persistent"
)

// Builder accumulates items and freezes them into a list with the items in order
// of addition. A builder is not safe for concurrent use. After Result the builder
// is empty and may be re-used.
type Builder[T any] struct {
	items []T
}

var _ persistent.Collector[int, List[int]] = &Builder[int]{}

func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

func (b *Builder[T]) Add(x T) {
	b.items = append(b.items, x)
}

func (b *Builder[T]) AddAll(items ...T) {
	b.items = append(b.items, items...)
}

func (b *Builder[T]) AddSeq(it iter.Seq[T]) {
	for x := range it {
		b.items = append(b.items, x)
	}
}

func (b *Builder[T]) Len() int {
	return len(b.items)
}

// Result returns a list of all items added so far and resets b.
// Cells are allocated in one chunk and linked from the end.
func (b *Builder[T]) Result() List[T] {
	items := b.items
	b.items = nil
	if len(items) == 0 {
		return List[T]{}
	}
	cells := make([]cell[T], len(items))
	var tail *cell[T]
	for i := len(items) - 1; i >= 0; i-- {
		cells[i] = cell[T]{head: items[i], tail: tail, length: len(items) - i}
		tail = &cells[i]
	}
	if len(items) > 1024 {
		tracer().Debugf("list builder allocated %d cells", len(items))
	}
	return List[T]{node: tail}
}
