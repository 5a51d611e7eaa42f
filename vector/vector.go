package vector

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/persistent"
	"github.com/npillmayer/persistent/maybe"
)

// Vector is an immutable persistent vector. The zero value is an empty vector
// ready to use:
//
//     var v vector.Vector[string]
//     v = v.Append("Hello")
//
type Vector[T any] struct {
	props
	length int
	root   *vnode[T] // nil for an empty trie
	tail   []T
}

var _ persistent.Indexed[int] = Vector[int]{}

// Immutable constructs an empty vector with options, if you need any.
func Immutable[T any](opts ...Option) Vector[T] {
	return Vector[T]{props: applyOptions(opts)}
}

// Empty returns an empty vector with default options. It is equivalent to the zero value.
func Empty[T any]() Vector[T] {
	return Vector[T]{}
}

// Of creates a vector from a list of items, in order.
func Of[T any](items ...T) Vector[T] {
	b := NewBuilder[T]()
	b.AddAll(items...)
	return b.Result()
}

// From creates a vector from any sequence. If s already is a vector, it is returned
// unchanged, as it cannot be modified anyway.
func From[T any](s persistent.Sequence[T]) Vector[T] {
	if v, ok := s.(Vector[T]); ok {
		return v
	}
	b := NewBuilder[T]()
	b.AddSeq(s.All())
	return b.Result()
}

// Collect creates a vector from an iterator.
func Collect[T any](it iter.Seq[T]) Vector[T] {
	b := NewBuilder[T]()
	b.AddSeq(it)
	return b.Result()
}

// --- API -------------------------------------------------------------------

func (v Vector[T]) Len() int {
	return v.length
}

func (v Vector[T]) IsEmpty() bool {
	return v.length == 0
}

func (v Vector[T]) NotEmpty() bool {
	return v.length > 0
}

// Get returns the item at index i. Negative indices count from the end of v.
func (v Vector[T]) Get(i int) (T, error) {
	v.props = v.props.init()
	j, err := v.index(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return v.leafFor(j)[j&v.mask], nil
}

// At is the same as Get. It makes vectors persistent.Indexed.
func (v Vector[T]) At(i int) (T, error) {
	return v.Get(i)
}

// GetOr returns the item at index i, or def if i is out of range.
func (v Vector[T]) GetOr(i int, def T) T {
	if x, err := v.Get(i); err == nil {
		return x
	}
	return def
}

func (v Vector[T]) First() maybe.Maybe[T] {
	x, err := v.Get(0)
	return maybe.Of(x, err == nil)
}

func (v Vector[T]) Last() maybe.Maybe[T] {
	if len(v.tail) == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.tail[len(v.tail)-1])
}

// All iterates over the items of v in order.
func (v Vector[T]) All() iter.Seq[T] {
	v.props = v.props.init()
	return func(yield func(T) bool) {
		v.each(0, v.length, yield)
	}
}

// Set returns a copy of v with the item at index i replaced by value.
// Negative indices count from the end of v.
func (v Vector[T]) Set(i int, value T) (Vector[T], error) {
	v.props = v.props.init()
	j, err := v.index(i)
	if err != nil {
		return v, err
	}
	if j >= v.tailOffset() {
		newTail := cloneTail(v.tail, len(v.tail))
		newTail[j&v.mask] = value
		v.tail = newTail
		return v, nil
	}
	path := v.pathTo(j, nil)
	cow := path.last().clone() // copy-on-write
	cow.node.leafs[cow.inx] = value
	v.root = path.dropLast().foldR(cloneSeam[T], cow).node
	return v, nil
}

// MSet returns a copy of v with a couple of items replaced. Assignments are
// pairs (index, value) and are applied in order; every node of the trie is copied
// at most once. If any index is out of range, v is returned together with an error.
func (v Vector[T]) MSet(assignments ...persistent.Pair[int, T]) (Vector[T], error) {
	v.props = v.props.init()
	indices := make([]int, len(assignments))
	for k, a := range assignments {
		j, err := v.index(a.Left)
		if err != nil {
			return v, err
		}
		indices[k] = j
	}
	owned := make(map[*vnode[T]]bool)
	editable := func(node *vnode[T]) *vnode[T] {
		if owned[node] {
			return node
		}
		n := node.clone()
		owned[n] = true
		return n
	}
	w := v
	tailCopied := false
	for k, j := range indices {
		if j >= v.tailOffset() {
			if !tailCopied {
				w.tail = cloneTail(v.tail, len(v.tail))
				tailCopied = true
			}
			w.tail[j&v.mask] = assignments[k].Right
			continue
		}
		w.root = editable(w.root)
		node := w.root
		for level := v.shift; level > 0; level -= v.bits {
			inx := (j >> level) & v.mask
			child := editable(node.children[inx])
			node.children[inx] = child
			node = child
		}
		node.leafs[j&v.mask] = assignments[k].Right
	}
	return w, nil
}

// Append returns a copy of v with value appended at the end.
func (v Vector[T]) Append(value T) Vector[T] {
	v.props = v.props.init()
	if v.length-v.tailOffset() < v.degree { // just append value to tail
		newTail := cloneTail(v.tail, len(v.tail)+1)
		newTail[len(v.tail)] = value
		return Vector[T]{props: v.props, length: v.length + 1, root: v.root, tail: newTail}
	}
	// tail is full ⇒ have to move tail into trie
	tailNode := &vnode[T]{leafs: v.tail}
	p := v.props
	var newRoot *vnode[T]
	if (v.length >> v.bits) > (1 << v.shift) { // root is full ⇒ increment shift
		newRoot = emptyNode[T](v.degree)
		newRoot.children[0] = v.root
		newRoot.children[1] = newPath(v.shift, v.bits, v.degree, tailNode)
		p = p.withShift(v.shift + v.bits)
		tracer().Debugf("vector root overflow at length %d, new shift = %d", v.length, p.shift)
	} else { // still space in root
		newRoot = v.pushTail(v.shift, v.root, tailNode)
	}
	return Vector[T]{props: p, length: v.length + 1, root: newRoot, tail: []T{value}}
}

// Extend returns a copy of v with items appended in order.
func (v Vector[T]) Extend(items ...T) Vector[T] {
	for _, x := range items {
		v = v.Append(x)
	}
	return v
}

// ExtendSeq returns a copy of v with all items of s appended in order.
func (v Vector[T]) ExtendSeq(s persistent.Sequence[T]) Vector[T] {
	for x := range s.All() {
		v = v.Append(x)
	}
	return v
}

// Pop returns a copy of v with the last item removed.
func (v Vector[T]) Pop() (Vector[T], error) {
	if v.length == 0 {
		return v, fmt.Errorf("%w: cannot pop from empty vector", persistent.ErrEmptyCollection)
	}
	v.props = v.props.init()
	return v.pop(), nil
}

// Slice returns the items of v within [start, stop) as a new vector.
// Negative bounds count from the end of v, bounds beyond either end are clamped.
// Slice never fails; inverted bounds result in an empty vector.
func (v Vector[T]) Slice(start, stop int) Vector[T] {
	v.props = v.props.init()
	start, stop = v.bounds(start, stop)
	switch {
	case start == 0 && stop == v.length:
		return v
	case start == 0:
		return v.truncate(stop)
	}
	b := v.builder()
	v.each(start, stop, b.yield)
	return b.Result()
}

// Take returns the first n items of v, or v itself if n ≥ v.Len().
func (v Vector[T]) Take(n int) (Vector[T], error) {
	if n < 0 {
		return v, persistent.NegativeIndexError(n)
	}
	return v.Slice(0, n), nil
}

// Delete returns a copy of v with the items within [start, stop) removed.
// Bounds are interpreted as for Slice. Deleting a suffix pops items off v and
// shares the remaining nodes. Any other range rebuilds the remainder, which is O(n).
func (v Vector[T]) Delete(start, stop int) Vector[T] {
	v.props = v.props.init()
	start, stop = v.bounds(start, stop)
	if start == stop {
		return v
	}
	if stop == v.length {
		return v.truncate(start)
	}
	b := v.builder()
	v.each(0, start, b.yield)
	v.each(stop, v.length, b.yield)
	return b.Result()
}

// DeleteFrom returns a copy of v with all items from index start on removed.
func (v Vector[T]) DeleteFrom(start int) Vector[T] {
	return v.Delete(start, v.length)
}

// ToSlice returns the items of v in a freshly allocated slice.
func (v Vector[T]) ToSlice() []T {
	return persistent.ToSlice[T](v)
}

func (v Vector[T]) String() string {
	var b strings.Builder
	b.WriteString("Vector[")
	i := 0
	for x := range v.All() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", x)
		i++
	}
	b.WriteByte(']')
	return b.String()
}

// --- Internals -------------------------------------------------------------

// index normalizes a scalar index: negative values count from the end.
func (v Vector[T]) index(i int) (int, error) {
	j := i
	if j < 0 {
		j += v.length
	}
	if j < 0 || j >= v.length {
		return 0, persistent.IndexError(i, v.length)
	}
	return j, nil
}

// bounds clamps slice bounds to [0, len].
func (v Vector[T]) bounds(start, stop int) (int, int) {
	clamp := func(i int) int {
		if i < 0 {
			return max(0, i+v.length)
		}
		return min(i, v.length)
	}
	start, stop = clamp(start), clamp(stop)
	if stop < start {
		stop = start
	}
	return start, stop
}

func (v Vector[T]) tailOffset() int {
	if v.length < v.degree {
		return 0
	}
	return ((v.length - 1) >> v.bits) << v.bits
}

// leafFor returns the bucket of values holding index i. i must be valid.
func (v Vector[T]) leafFor(i int) []T {
	if i >= v.tailOffset() {
		return v.tail
	}
	node := v.root
	for level := v.shift; level > 0; level -= v.bits {
		node = node.children[(i>>level)&v.mask]
	}
	return node.leafs
}

// pathTo collects the slots from the root down to the leaf slot of index i,
// which must be located within the trie (i.e., not in the tail).
func (v Vector[T]) pathTo(i int, pathBuf slotPath[T]) slotPath[T] {
	path := pathBuf[:0]
	node := v.root
	for level := v.shift; level > 0; level -= v.bits {
		inx := (i >> level) & v.mask
		path = append(path, slot[T]{inx: inx, node: node})
		node = node.children[inx]
	}
	assertThat(node.isLeaf(), "inconsistency: path for index %d does not end in a leaf", i)
	return append(path, slot[T]{inx: i & v.mask, node: node})
}

// each calls yield for items [from, to), bucket by bucket.
func (v Vector[T]) each(from, to int, yield func(T) bool) bool {
	for i := from; i < to; {
		leaf := v.leafFor(i)
		for j := i & v.mask; j < len(leaf) && i < to; j++ {
			if !yield(leaf[j]) {
				return false
			}
			i++
		}
	}
	return true
}

// pushTail copies the rightmost path of the trie and links the tail as a new leaf.
func (v Vector[T]) pushTail(level uint, parent, tailNode *vnode[T]) *vnode[T] {
	subidx := ((v.length - 1) >> level) & v.mask
	var cow *vnode[T]
	if parent == nil {
		cow = emptyNode[T](v.degree)
	} else {
		cow = parent.clone()
	}
	if level == v.bits {
		cow.children[subidx] = tailNode
		return cow
	}
	var child *vnode[T]
	if parent != nil {
		child = parent.children[subidx]
	}
	if child != nil {
		cow.children[subidx] = v.pushTail(level-v.bits, child, tailNode)
	} else {
		cow.children[subidx] = newPath(level-v.bits, v.bits, v.degree, tailNode)
	}
	return cow
}

// pop removes the last item; v must not be empty.
func (v Vector[T]) pop() Vector[T] {
	assertThat(v.length > 0, "attempt to remove item from empty vector")
	if v.length == 1 {
		return Vector[T]{props: v.props.withShift(v.bits)}
	}
	if v.length-v.tailOffset() > 1 {
		return Vector[T]{props: v.props, length: v.length - 1, root: v.root, tail: v.tail[:len(v.tail)-1]}
	}
	// tail vanishes ⇒ rightmost leaf of the trie becomes the new tail
	newTail := v.leafFor(v.length - 2)
	newRoot := v.popTail(v.shift, v.root)
	p := v.props
	switch {
	case newRoot == nil:
		p = p.withShift(v.bits)
	case v.shift > v.bits && newRoot.children[1] == nil: // can lower the height
		newRoot = newRoot.children[0]
		p = p.withShift(v.shift - v.bits)
		tracer().Debugf("lowering vector trie at length %d, new shift = %d", v.length-1, p.shift)
	}
	return Vector[T]{props: p, length: v.length - 1, root: newRoot, tail: newTail}
}

// popTail copies the rightmost path of the trie without its rightmost leaf.
// Returns nil if nothing remains of node.
func (v Vector[T]) popTail(level uint, node *vnode[T]) *vnode[T] {
	subidx := ((v.length - 2) >> level) & v.mask
	if level > v.bits {
		newChild := v.popTail(level-v.bits, node.children[subidx])
		if newChild == nil && subidx == 0 {
			return nil
		}
		cow := node.clone()
		cow.children[subidx] = newChild
		return cow
	}
	if subidx == 0 {
		return nil
	}
	cow := node.clone()
	cow.children[subidx] = nil
	return cow
}

// truncate keeps the first n items of v.
func (v Vector[T]) truncate(n int) Vector[T] {
	if n == v.length {
		return v
	}
	if v.length-n <= v.degree {
		for v.length > n {
			v = v.pop()
		}
		return v
	}
	b := v.builder()
	v.each(0, n, b.yield)
	return b.Result()
}

func (v Vector[T]) builder() *Builder[T] {
	return &Builder[T]{props: v.props.withShift(v.bits)}
}
