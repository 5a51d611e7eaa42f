package vector

import (
	"iter"

	"github.com/npillmayer/persistent"
)

// Builder accumulates items and freezes them into a vector, bulk-loading the trie
// bottom-up. It is the fast way to create large vectors, much faster than repeated
// calls of Append.
//
// A builder is not safe for concurrent use. After Result the builder is empty and
// may be re-used; items added later never show up in a vector already returned.
type Builder[T any] struct {
	props
	items []T
}

var _ persistent.Collector[int, Vector[int]] = &Builder[int]{}

// NewBuilder creates a builder for vectors configured with opts.
func NewBuilder[T any](opts ...Option) *Builder[T] {
	return &Builder[T]{props: applyOptions(opts)}
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

// Result returns a vector holding all items added so far and resets b.
func (b *Builder[T]) Result() Vector[T] {
	items := b.items
	b.items = nil
	return bulkLoad(b.props.init(), items)
}

func (b *Builder[T]) yield(x T) bool {
	b.items = append(b.items, x)
	return true
}

// bulkLoad creates a vector from items, taking ownership of them. Leafs are
// sub-slices of items, capacity-limited to prevent appends from reaching into
// a neighbour.
func bulkLoad[T any](p props, items []T) Vector[T] {
	n := len(items)
	if n == 0 {
		return Vector[T]{props: p.withShift(p.bits)}
	}
	off := 0
	if n >= p.degree {
		off = ((n - 1) >> p.bits) << p.bits
	}
	v := Vector[T]{props: p.withShift(p.bits), length: n, tail: items[off:n:n]}
	if off == 0 {
		return v
	}
	nodes := make([]*vnode[T], 0, off>>p.bits)
	for i := 0; i < off; i += p.degree {
		nodes = append(nodes, &vnode[T]{leafs: items[i : i+p.degree : i+p.degree]})
	}
	shift := p.bits
	for (off >> p.bits) > (1 << shift) {
		shift += p.bits
	}
	for level := p.bits; level <= shift; level += p.bits {
		nodes = group(nodes, p.degree)
	}
	assertThat(len(nodes) == 1, "bulk loading produced %d roots", len(nodes))
	tracer().Debugf("bulk loaded vector of length %d, shift = %d", n, shift)
	v.root = nodes[0]
	v.props = p.withShift(shift)
	return v
}
