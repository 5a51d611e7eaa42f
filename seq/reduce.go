package seq

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/npillmayer/persistent"
	"github.com/npillmayer/persistent/maybe"
)

// Number is a constraint for element types which may be summed up.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// FoldLeft combines the elements of s from left to right, starting with init.
func FoldLeft[T, A any](s persistent.Sequence[T], init A, f func(A, T) A) A {
	acc := init
	for x := range s.All() {
		acc = f(acc, x)
	}
	return acc
}

// Sum adds up the elements of s. The sum of an empty sequence is 0.
func Sum[T Number](s persistent.Sequence[T]) T {
	return FoldLeft(s, T(0), func(acc, x T) T {
		return acc + x
	})
}

// MaxByOption returns the element of s with the greatest key. If more than one element
// has the greatest key, the first one wins. Returns Nothing for an empty sequence.
func MaxByOption[T any, K cmp.Ordered](s persistent.Sequence[T], key func(T) K) maybe.Maybe[T] {
	return extremeBy(s, key, 1)
}

// MinByOption returns the element of s with the smallest key. If more than one element
// has the smallest key, the first one wins. Returns Nothing for an empty sequence.
func MinByOption[T any, K cmp.Ordered](s persistent.Sequence[T], key func(T) K) maybe.Maybe[T] {
	return extremeBy(s, key, -1)
}

func extremeBy[T any, K cmp.Ordered](s persistent.Sequence[T], key func(T) K, sign int) maybe.Maybe[T] {
	var best T
	var bestKey K
	found := false
	for x := range s.All() {
		k := key(x)
		if !found || cmp.Compare(k, bestKey) == sign {
			best, bestKey, found = x, k, true
		}
	}
	return maybe.Of(best, found)
}

// FirstOption returns the first element of s, or Nothing.
func FirstOption[T any](s persistent.Sequence[T]) maybe.Maybe[T] {
	var first T
	found := false
	for x := range s.All() {
		first, found = x, true
		break
	}
	return maybe.Of(first, found)
}

// LastOption returns the last element of s, or Nothing.
// Indexed sequences answer in constant time, others are traversed.
func LastOption[T any](s persistent.Sequence[T]) maybe.Maybe[T] {
	if s.Len() == 0 {
		return maybe.Nothing[T]()
	}
	if ix, ok := s.(persistent.Indexed[T]); ok {
		if x, err := ix.At(s.Len() - 1); err == nil {
			return maybe.Just(x)
		}
	}
	var last T
	found := false
	for x := range s.All() {
		last, found = x, true
	}
	return maybe.Of(last, found)
}

// FindOne returns the first element of s for which pred holds, or Nothing.
func FindOne[T any](s persistent.Sequence[T], pred func(T) bool) maybe.Maybe[T] {
	for x := range s.All() {
		if pred(x) {
			return maybe.Just(x)
		}
	}
	return maybe.Nothing[T]()
}

// FindOneIndex returns the position of the first element of s for which pred holds,
// or Nothing.
func FindOneIndex[T any](s persistent.Sequence[T], pred func(T) bool) maybe.Maybe[int] {
	i := 0
	for x := range s.All() {
		if pred(x) {
			return maybe.Just(i)
		}
		i++
	}
	return maybe.Nothing[int]()
}

// FindOneOrErr returns the first element of s for which pred holds. If there is
// none, err is returned.
func FindOneOrErr[T any](s persistent.Sequence[T], pred func(T) bool, err error) (T, error) {
	if x, ok := FindOne(s, pred).Value(); ok {
		return x, nil
	}
	var zero T
	return zero, err
}

// ForEach calls f for every element of s, in order.
func ForEach[T any](s persistent.Sequence[T], f func(T)) {
	for x := range s.All() {
		f(x)
	}
}

// ForEachIndexed calls f for every element of s together with its position.
func ForEachIndexed[T any](s persistent.Sequence[T], f func(int, T)) {
	i := 0
	for x := range s.All() {
		f(i, x)
		i++
	}
}

// MkString joins the elements of s, formatted with %v, using sep as separator.
func MkString[T any](s persistent.Sequence[T], sep string) string {
	var b strings.Builder
	first := true
	for x := range s.All() {
		if !first {
			b.WriteString(sep)
		}
		first = false
		fmt.Fprintf(&b, "%v", x)
	}
	return b.String()
}
