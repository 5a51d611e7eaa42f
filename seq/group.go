package seq

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/npillmayer/persistent"
)

// GroupBy collects runs of consecutive elements with equal keys into groups, in order
// of appearance. Elements with equal keys which are not adjacent end up in different
// groups; sort s first to group by key globally.
//
// newGroup is called for every run to get a fresh collector for the group's elements.
func GroupBy[T any, K comparable, G, C any](s persistent.Sequence[T], key func(T) K,
	newGroup func() persistent.Collector[T, G], out persistent.Collector[persistent.Pair[K, G], C]) C {
	var k K
	var group persistent.Collector[T, G]
	for x := range s.All() {
		kx := key(x)
		if group != nil && kx != k {
			out.Add(persistent.P(k, group.Result()))
			group = nil
		}
		if group == nil {
			k, group = kx, newGroup()
		}
		group.Add(x)
	}
	if group != nil {
		out.Add(persistent.P(k, group.Result()))
	}
	return out.Result()
}

// Grouped chunks s into groups of size elements each, in order. The last group
// holds the remaining elements and may be shorter.
func Grouped[T, G, C any](s persistent.Sequence[T], size int, newGroup func() persistent.Collector[T, G],
	out persistent.Collector[G, C]) (C, error) {
	if size < 1 {
		var zero C
		return zero, fmt.Errorf("%w: group size %d", persistent.ErrInvalidSize, size)
	}
	var group persistent.Collector[T, G]
	n := 0
	for x := range s.All() {
		if group == nil {
			group = newGroup()
		}
		group.Add(x)
		if n++; n == size {
			out.Add(group.Result())
			group, n = nil, 0
		}
	}
	if group != nil {
		out.Add(group.Result())
	}
	return out.Result(), nil
}

// SplitBy partitions s into the elements for which pred holds and the others.
// Both partitions keep the order of s.
func SplitBy[T, C any](s persistent.Sequence[T], pred func(T) bool,
	yes, no persistent.Collector[T, C]) (C, C) {
	for x := range s.All() {
		if pred(x) {
			yes.Add(x)
		} else {
			no.Add(x)
		}
	}
	return yes.Result(), no.Result()
}

// Distinct removes duplicates from s. The first occurrence of an element wins,
// order is preserved.
func Distinct[T comparable, C any](s persistent.Sequence[T], out persistent.Collector[T, C]) C {
	return DistinctBy(s, persistent.Identity[T], out)
}

// DistinctBy removes elements with duplicate keys from s. The first element with
// a key wins, order is preserved.
func DistinctBy[T any, K comparable, C any](s persistent.Sequence[T], key func(T) K,
	out persistent.Collector[T, C]) C {
	seen := make(map[K]struct{}, s.Len())
	for x := range s.All() {
		k := key(x)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out.Add(x)
	}
	return out.Result()
}

// Sort collects the elements of s in ascending order, or descending if reverse is set.
// Sorting is stable in both directions.
func Sort[T cmp.Ordered, C any](s persistent.Sequence[T], reverse bool, out persistent.Collector[T, C]) C {
	return SortBy(s, persistent.Identity[T], reverse, out)
}

// SortBy collects the elements of s in ascending order of their keys, or descending if
// reverse is set. Elements with equal keys keep their relative order.
func SortBy[T any, K cmp.Ordered, C any](s persistent.Sequence[T], key func(T) K, reverse bool,
	out persistent.Collector[T, C]) C {
	items := persistent.ToSlice(s)
	compare := func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
	if reverse {
		compare = func(a, b T) int {
			return cmp.Compare(key(b), key(a))
		}
	}
	slices.SortStableFunc(items, compare)
	for _, x := range items {
		out.Add(x)
	}
	return out.Result()
}

// Zip pairs the elements of a and b position by position. a and b must have the
// same length, otherwise ErrLengthMismatch is returned.
func Zip[T, U, C any](a persistent.Sequence[T], b persistent.Sequence[U],
	out persistent.Collector[persistent.Pair[T, U], C]) (C, error) {
	if a.Len() != b.Len() {
		var zero C
		return zero, fmt.Errorf("%w: %d and %d", persistent.ErrLengthMismatch, a.Len(), b.Len())
	}
	for p := range Zipped(a, b) {
		out.Add(p)
	}
	return out.Result(), nil
}

// Zipped iterates over pairs of elements of a and b, stopping at the end of the
// shorter sequence.
func Zipped[T, U any](a persistent.Sequence[T], b persistent.Sequence[U]) iter.Seq[persistent.Pair[T, U]] {
	return func(yield func(persistent.Pair[T, U]) bool) {
		next, stop := iter.Pull(b.All())
		defer stop()
		for x := range a.All() {
			y, ok := next()
			if !ok || !yield(persistent.P(x, y)) {
				return
			}
		}
	}
}

// ToMap creates a map from a sequence of key/value pairs. For duplicate keys the
// last pair wins.
func ToMap[K comparable, V any](s persistent.Sequence[persistent.Pair[K, V]]) map[K]V {
	m := make(map[K]V, s.Len())
	for p := range s.All() {
		m[p.Left] = p.Right
	}
	return m
}
