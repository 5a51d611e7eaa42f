package vector

import (
	"cmp"
	"math/rand"

	"github.com/npillmayer/persistent"
	"github.com/npillmayer/persistent/maybe"
	"github.com/npillmayer/persistent/result"
	"github.com/npillmayer/persistent/seq"
)

// Combinators preserving the element type are methods of Vector, all others are
// functions of this package. Semantics are those of package seq. Results are vectors
// of the same degree as their source.

// newBuilder creates a builder for vectors with properties p.
func newBuilder[U any](p props) *Builder[U] {
	return &Builder[U]{props: p.init()}
}

// Filter returns a vector of the items of v for which pred holds.
func (v Vector[T]) Filter(pred func(T) bool) Vector[T] {
	return seq.Filter(v, pred, newBuilder[T](v.props))
}

// SplitBy partitions v into the items for which pred holds and the others.
func (v Vector[T]) SplitBy(pred func(T) bool) (Vector[T], Vector[T]) {
	return seq.SplitBy(v, pred, newBuilder[T](v.props), newBuilder[T](v.props))
}

// SliceWithBool keeps the items of v at positions where bools holds true.
func (v Vector[T]) SliceWithBool(bools persistent.Sequence[bool]) (Vector[T], error) {
	return seq.SliceWithBool(v, bools, newBuilder[T](v.props))
}

// FilterTextSearch keeps the items whose text matches any of the search terms,
// case-insensitively. No terms means no filtering.
func (v Vector[T]) FilterTextSearch(key func(T) string, terms []string) (Vector[T], error) {
	return seq.FilterTextSearch(v, key, terms, newBuilder[T](v.props))
}

func (v Vector[T]) FindOne(pred func(T) bool) maybe.Maybe[T] {
	return seq.FindOne(v, pred)
}

func (v Vector[T]) FindOneIndex(pred func(T) bool) maybe.Maybe[int] {
	return seq.FindOneIndex(v, pred)
}

func (v Vector[T]) FindOneOrErr(pred func(T) bool, err error) (T, error) {
	return seq.FindOneOrErr(v, pred, err)
}

// ForEach calls f for every item of v and returns v.
func (v Vector[T]) ForEach(f func(T)) Vector[T] {
	seq.ForEach(v, f)
	return v
}

// ForEachIndexed calls f for every item of v and its index and returns v.
func (v Vector[T]) ForEachIndexed(f func(int, T)) Vector[T] {
	seq.ForEachIndexed(v, f)
	return v
}

// Shuffle returns a vector of the items of v in a pseudo-random order drawn from r,
// see seq.Shuffle.
func (v Vector[T]) Shuffle(r *rand.Rand) Vector[T] {
	return seq.Shuffle(v, r, newBuilder[T](v.props))
}

func (v Vector[T]) MkString(sep string) string {
	return seq.MkString(v, sep)
}

// --- Type-changing combinators ---------------------------------------------

func Map[T, U any](v Vector[T], f func(T) U) Vector[U] {
	return seq.Map(v, f, newBuilder[U](v.props))
}

func TryMap[T, U any](v Vector[T], f func(T) (U, error)) (Vector[U], error) {
	return seq.TryMap(v, f, newBuilder[U](v.props))
}

func MapIndexed[T, U any](v Vector[T], f func(int, T) U) Vector[U] {
	return seq.MapIndexed(v, f, newBuilder[U](v.props))
}

func FlattenOption[T any](v Vector[maybe.Maybe[T]]) Vector[T] {
	return seq.FlattenOption(v, newBuilder[T](v.props))
}

func FlatMapOption[T, U any](v Vector[T], f func(T) maybe.Maybe[U]) Vector[U] {
	return seq.FlatMapOption(v, f, newBuilder[U](v.props))
}

// Flatten concatenates the inner vectors of v.
func Flatten[T any](v Vector[Vector[T]]) Vector[T] {
	return seq.FlattenIter[Vector[T], T](v, newBuilder[T](v.props))
}

// GroupBy groups runs of adjacent items with equal keys.
func GroupBy[T any, K comparable](v Vector[T], key func(T) K) Vector[persistent.Pair[K, Vector[T]]] {
	newGroup := func() persistent.Collector[T, Vector[T]] {
		return newBuilder[T](v.props)
	}
	return seq.GroupBy(v, key, newGroup, newBuilder[persistent.Pair[K, Vector[T]]](v.props))
}

// Grouped chunks v into vectors of size items each; the last one may be shorter.
func Grouped[T any](v Vector[T], size int) (Vector[Vector[T]], error) {
	newGroup := func() persistent.Collector[T, Vector[T]] {
		return newBuilder[T](v.props)
	}
	return seq.Grouped(v, size, newGroup, newBuilder[Vector[T]](v.props))
}

func Distinct[T comparable](v Vector[T]) Vector[T] {
	return seq.Distinct(v, newBuilder[T](v.props))
}

func DistinctBy[T any, K comparable](v Vector[T], key func(T) K) Vector[T] {
	return seq.DistinctBy(v, key, newBuilder[T](v.props))
}

func Sort[T cmp.Ordered](v Vector[T], reverse bool) Vector[T] {
	return seq.Sort(v, reverse, newBuilder[T](v.props))
}

func SortBy[T any, K cmp.Ordered](v Vector[T], key func(T) K, reverse bool) Vector[T] {
	return seq.SortBy(v, key, reverse, newBuilder[T](v.props))
}

// Zip pairs the items of v with the items of other, which must have the same length.
func Zip[T, U any](v Vector[T], other persistent.Sequence[U]) (Vector[persistent.Pair[T, U]], error) {
	return seq.Zip(v, other, newBuilder[persistent.Pair[T, U]](v.props))
}

func FoldLeft[T, A any](v Vector[T], init A, f func(A, T) A) A {
	return seq.FoldLeft(v, init, f)
}

func Sum[T seq.Number](v Vector[T]) T {
	return seq.Sum[T](v)
}

func MaxByOption[T any, K cmp.Ordered](v Vector[T], key func(T) K) maybe.Maybe[T] {
	return seq.MaxByOption(v, key)
}

func MinByOption[T any, K cmp.Ordered](v Vector[T], key func(T) K) maybe.Maybe[T] {
	return seq.MinByOption(v, key)
}

func ToMap[K comparable, V any](v Vector[persistent.Pair[K, V]]) map[K]V {
	return seq.ToMap[K, V](v)
}

// ParMap maps the items of v concurrently, see seq.ParMap.
func ParMap[T, U any](v Vector[T], f func(T) (U, error), ex seq.Executor) (Vector[U], error) {
	return seq.ParMap(v, f, ex, newBuilder[U](v.props))
}

// ParMapResults maps the items of v concurrently, keeping every outcome.
func ParMapResults[T, U any](v Vector[T], f func(T) (U, error), ex seq.Executor) Vector[result.Result[U]] {
	return seq.ParMapResults(v, f, ex, newBuilder[result.Result[U]](v.props))
}

// --- Equality and hashing --------------------------------------------------

// Equal compares v item by item with any other sequence.
func Equal[T comparable](v Vector[T], other persistent.Sequence[T]) bool {
	return persistent.Equal[T](v, other)
}

// Remove returns a copy of v without the first item equal to x. If there is no such
// item, v is returned.
func Remove[T comparable](v Vector[T], x T) Vector[T] {
	i, ok := seq.FindOneIndex[T](v, func(y T) bool { return y == x }).Value()
	if !ok {
		return v
	}
	return v.Delete(i, i+1)
}

// Hash computes a hash value for v, consistent with Equal.
func Hash[T comparable](v Vector[T]) uint64 {
	return persistent.Hash[T](v)
}

// HashWith computes a hash value for v, using h for the items.
func HashWith[T any](v Vector[T], h func(T) uint64) uint64 {
	return persistent.HashWith[T](v, h)
}
