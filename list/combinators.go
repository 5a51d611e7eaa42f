package list

import (
	"cmp"
	"math/rand"

	"github.com/npillmayer/persistent"
	"github.com/npillmayer/persistent/maybe"
	"github.com/npillmayer/persistent/result"
	"github.com/npillmayer/persistent/seq"
	"github.com/npillmayer/persistent/validate"
)

// Filter returns a list of the items of l for which pred holds.
func (l List[T]) Filter(pred func(T) bool) List[T] {
	return seq.Filter(l, pred, NewBuilder[T]())
}

// SplitBy partitions l into the items for which pred holds and the others.
func (l List[T]) SplitBy(pred func(T) bool) (List[T], List[T]) {
	return seq.SplitBy(l, pred, NewBuilder[T](), NewBuilder[T]())
}

func (l List[T]) SliceWithBool(bools persistent.Sequence[bool]) (List[T], error) {
	return seq.SliceWithBool(l, bools, NewBuilder[T]())
}

func (l List[T]) FilterTextSearch(key func(T) string, terms []string) (List[T], error) {
	return seq.FilterTextSearch(l, key, terms, NewBuilder[T]())
}

func (l List[T]) FindOne(pred func(T) bool) maybe.Maybe[T] {
	return seq.FindOne(l, pred)
}

func (l List[T]) FindOneIndex(pred func(T) bool) maybe.Maybe[int] {
	return seq.FindOneIndex(l, pred)
}

func (l List[T]) FindOneOrErr(pred func(T) bool, err error) (T, error) {
	return seq.FindOneOrErr(l, pred, err)
}

// ForEach calls f for every item of l and returns l.
func (l List[T]) ForEach(f func(T)) List[T] {
	seq.ForEach(l, f)
	return l
}

func (l List[T]) ForEachIndexed(f func(int, T)) List[T] {
	seq.ForEachIndexed(l, f)
	return l
}

func (l List[T]) First() maybe.Maybe[T] {
	x, err := l.Head()
	return maybe.Of(x, err == nil)
}

func (l List[T]) Last() maybe.Maybe[T] {
	return seq.LastOption[T](l)
}

// Shuffle returns a list of the items of l in a pseudo-random order drawn from r,
// see seq.Shuffle.
func (l List[T]) Shuffle(r *rand.Rand) List[T] {
	return seq.Shuffle(l, r, NewBuilder[T]())
}

func (l List[T]) MkString(sep string) string {
	return seq.MkString(l, sep)
}

// --- Type-changing combinators ---------------------------------------------

func Map[T, U any](l List[T], f func(T) U) List[U] {
	return seq.Map(l, f, NewBuilder[U]())
}

func TryMap[T, U any](l List[T], f func(T) (U, error)) (List[U], error) {
	return seq.TryMap(l, f, NewBuilder[U]())
}

func MapIndexed[T, U any](l List[T], f func(int, T) U) List[U] {
	return seq.MapIndexed(l, f, NewBuilder[U]())
}

func FlattenOption[T any](l List[maybe.Maybe[T]]) List[T] {
	return seq.FlattenOption(l, NewBuilder[T]())
}

func FlatMapOption[T, U any](l List[T], f func(T) maybe.Maybe[U]) List[U] {
	return seq.FlatMapOption(l, f, NewBuilder[U]())
}

// Flatten concatenates the inner lists of l.
func Flatten[T any](l List[List[T]]) List[T] {
	return seq.FlattenIter[List[T], T](l, NewBuilder[T]())
}

// GroupBy groups runs of adjacent items with equal keys.
func GroupBy[T any, K comparable](l List[T], key func(T) K) List[persistent.Pair[K, List[T]]] {
	newGroup := func() persistent.Collector[T, List[T]] {
		return NewBuilder[T]()
	}
	return seq.GroupBy(l, key, newGroup, NewBuilder[persistent.Pair[K, List[T]]]())
}

// Grouped chunks l into lists of size items each; the last one may be shorter.
func Grouped[T any](l List[T], size int) (List[List[T]], error) {
	newGroup := func() persistent.Collector[T, List[T]] {
		return NewBuilder[T]()
	}
	return seq.Grouped(l, size, newGroup, NewBuilder[List[T]]())
}

func Distinct[T comparable](l List[T]) List[T] {
	return seq.Distinct(l, NewBuilder[T]())
}

func DistinctBy[T any, K comparable](l List[T], key func(T) K) List[T] {
	return seq.DistinctBy(l, key, NewBuilder[T]())
}

func Sort[T cmp.Ordered](l List[T], reverse bool) List[T] {
	return seq.Sort(l, reverse, NewBuilder[T]())
}

func SortBy[T any, K cmp.Ordered](l List[T], key func(T) K, reverse bool) List[T] {
	return seq.SortBy(l, key, reverse, NewBuilder[T]())
}

// Zip pairs the items of l with the items of other, which must have the same length.
func Zip[T, U any](l List[T], other persistent.Sequence[U]) (List[persistent.Pair[T, U]], error) {
	return seq.Zip(l, other, NewBuilder[persistent.Pair[T, U]]())
}

func FoldLeft[T, A any](l List[T], init A, f func(A, T) A) A {
	return seq.FoldLeft(l, init, f)
}

func Sum[T seq.Number](l List[T]) T {
	return seq.Sum[T](l)
}

func MaxByOption[T any, K cmp.Ordered](l List[T], key func(T) K) maybe.Maybe[T] {
	return seq.MaxByOption(l, key)
}

func MinByOption[T any, K cmp.Ordered](l List[T], key func(T) K) maybe.Maybe[T] {
	return seq.MinByOption(l, key)
}

func ToMap[K comparable, V any](l List[persistent.Pair[K, V]]) map[K]V {
	return seq.ToMap[K, V](l)
}

// ParMap maps the items of l concurrently, see seq.ParMap.
func ParMap[T, U any](l List[T], f func(T) (U, error), ex seq.Executor) (List[U], error) {
	return seq.ParMap(l, f, ex, NewBuilder[U]())
}

// ParMapResults maps the items of l concurrently, keeping every outcome.
func ParMapResults[T, U any](l List[T], f func(T) (U, error), ex seq.Executor) List[result.Result[U]] {
	return seq.ParMapResults(l, f, ex, NewBuilder[result.Result[U]]())
}

// --- Equality, hashing, validation -----------------------------------------

// Equal compares l item by item with any other sequence.
func Equal[T comparable](l List[T], other persistent.Sequence[T]) bool {
	if o, ok := other.(List[T]); ok && o.node == l.node {
		return true // shared cells
	}
	return persistent.Equal[T](l, other)
}

// Hash computes a hash value for l, consistent with Equal.
func Hash[T comparable](l List[T]) uint64 {
	return persistent.Hash[T](l)
}

// Validate checks untyped input element by element with ev and returns a list of
// the converted elements, see package validate.
func Validate[T any](input any, ev validate.ElementValidator[T]) (List[T], error) {
	return validate.Into(input, ev, NewBuilder[T]())
}
