package seq

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"github.com/npillmayer/persistent"
	"github.com/npillmayer/persistent/maybe"
)

// Map applies f to every element of s, in order.
func Map[T, U, C any](s persistent.Sequence[T], f func(T) U, out persistent.Collector[U, C]) C {
	for x := range s.All() {
		out.Add(f(x))
	}
	return out.Result()
}

// TryMap applies f to every element of s, in order. The first error returned by f
// stops the mapping and is returned; partial results are discarded.
func TryMap[T, U, C any](s persistent.Sequence[T], f func(T) (U, error),
	out persistent.Collector[U, C]) (C, error) {
	i := 0
	for x := range s.All() {
		u, err := f(x)
		if err != nil {
			out.Result() // drop partial results
			var zero C
			return zero, fmt.Errorf("mapping element %d: %w", i, err)
		}
		out.Add(u)
		i++
	}
	return out.Result(), nil
}

// MapIndexed applies f to every element of s together with its position.
func MapIndexed[T, U, C any](s persistent.Sequence[T], f func(int, T) U, out persistent.Collector[U, C]) C {
	i := 0
	for x := range s.All() {
		out.Add(f(i, x))
		i++
	}
	return out.Result()
}

// Filter keeps the elements of s for which pred holds, in order.
func Filter[T, C any](s persistent.Sequence[T], pred func(T) bool, out persistent.Collector[T, C]) C {
	for x := range s.All() {
		if pred(x) {
			out.Add(x)
		}
	}
	return out.Result()
}

// FlattenOption drops the Nothing-elements of s and unwraps the others.
func FlattenOption[T, C any](s persistent.Sequence[maybe.Maybe[T]], out persistent.Collector[T, C]) C {
	for m := range s.All() {
		if m == nil {
			continue
		}
		if x, ok := m.Value(); ok {
			out.Add(x)
		}
	}
	return out.Result()
}

// FlatMapOption maps every element of s with f and keeps the Just-results.
func FlatMapOption[T, U, C any](s persistent.Sequence[T], f func(T) maybe.Maybe[U],
	out persistent.Collector[U, C]) C {
	//
	for x := range s.All() {
		if u, ok := f(x).Value(); ok {
			out.Add(u)
		}
	}
	return out.Result()
}

// FlattenIter concatenates the element sequences of s, in order.
func FlattenIter[E persistent.Sequence[T], T, C any](s persistent.Sequence[E], out persistent.Collector[T, C]) C {
	for inner := range s.All() {
		for x := range inner.All() {
			out.Add(x)
		}
	}
	return out.Result()
}

// Take collects the first n elements of s. n greater than the length of s
// collects all of s.
func Take[T, C any](s persistent.Sequence[T], n int, out persistent.Collector[T, C]) (C, error) {
	if n < 0 {
		var zero C
		return zero, persistent.NegativeIndexError(n)
	}
	if n == 0 {
		return out.Result(), nil
	}
	i := 0
	for x := range s.All() {
		out.Add(x)
		if i++; i == n {
			break
		}
	}
	return out.Result(), nil
}

// Shuffle collects the elements of s in a pseudo-random order, drawn from r.
// If r is nil, the shared source of package math/rand is used.
func Shuffle[T, C any](s persistent.Sequence[T], r *rand.Rand, out persistent.Collector[T, C]) C {
	items := persistent.ToSlice(s)
	swap := func(i, j int) { items[i], items[j] = items[j], items[i] }
	if r == nil {
		rand.Shuffle(len(items), swap)
	} else {
		r.Shuffle(len(items), swap)
	}
	for _, x := range items {
		out.Add(x)
	}
	return out.Result()
}

// SliceWithBool keeps the elements of s at positions where bools holds true.
// s and bools must have the same length.
func SliceWithBool[T, C any](s persistent.Sequence[T], bools persistent.Sequence[bool],
	out persistent.Collector[T, C]) (C, error) {
	if s.Len() != bools.Len() {
		var zero C
		return zero, fmt.Errorf("%w: %d and %d", persistent.ErrLengthMismatch, s.Len(), bools.Len())
	}
	pairs := Zipped(s, bools)
	for p := range pairs {
		if p.Right {
			out.Add(p.Left)
		}
	}
	return out.Result(), nil
}

// FilterTextSearch keeps the elements of s whose text, as extracted by key, matches
// any of the search terms. Terms are regular expressions and match case-insensitively.
// An empty list of terms keeps all elements.
func FilterTextSearch[T, C any](s persistent.Sequence[T], key func(T) string, terms []string,
	out persistent.Collector[T, C]) (C, error) {
	if len(terms) == 0 {
		return Filter(s, func(T) bool { return true }, out), nil
	}
	re, err := regexp.Compile("(?i)" + strings.Join(terms, "|"))
	if err != nil {
		var zero C
		return zero, fmt.Errorf("search terms %q: %w", terms, err)
	}
	return Filter(s, func(x T) bool {
		return re.MatchString(key(x))
	}, out), nil
}
