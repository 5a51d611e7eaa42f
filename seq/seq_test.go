package seq_test

import (
	"errors"
	"math/rand"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/persistent"
	"github.com/npillmayer/persistent/maybe"
	"github.com/npillmayer/persistent/seq"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ints = persistent.Slice[int]

func collect[T any]() *persistent.SliceBuilder[T] {
	return &persistent.SliceBuilder[T]{}
}

func TestMapFilter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.seq")
	defer teardown()
	//
	s := ints{1, 2, 3, 4, 5}
	sq := seq.Map(s, func(x int) int { return x * x }, collect[int]())
	assert.Equal(t, ints{1, 4, 9, 16, 25}, sq)
	even := seq.Filter(s, func(x int) bool { return x%2 == 0 }, collect[int]())
	assert.Equal(t, ints{2, 4}, even)
	str := seq.MapIndexed(s, func(i, x int) string { return strconv.Itoa(i) + ":" + strconv.Itoa(x) },
		collect[string]())
	assert.Equal(t, persistent.Slice[string]{"0:1", "1:2", "2:3", "3:4", "4:5"}, str)
	assert.Equal(t, ints{1, 2, 3, 4, 5}, s, "input must not change")
}

func TestTryMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.seq")
	defer teardown()
	//
	ok, err := seq.TryMap(persistent.Slice[string]{"1", "2"}, strconv.Atoi, collect[int]())
	require.NoError(t, err)
	assert.Equal(t, ints{1, 2}, ok)
	_, err = seq.TryMap(persistent.Slice[string]{"1", "x", "3"}, strconv.Atoi, collect[int]())
	require.Error(t, err)
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
	assert.Contains(t, err.Error(), "element 1")
}

func TestOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.seq")
	defer teardown()
	//
	opts := persistent.Slice[maybe.Maybe[int]]{maybe.Just(1), maybe.Nothing[int](), maybe.Just(3)}
	assert.Equal(t, ints{1, 3}, seq.FlattenOption(opts, collect[int]()))
	half := func(x int) maybe.Maybe[int] {
		return maybe.Of(x/2, x%2 == 0)
	}
	assert.Equal(t, ints{1, 2}, seq.FlatMapOption(ints{1, 2, 3, 4}, half, collect[int]()))
}

func TestFlattenIter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.seq")
	defer teardown()
	//
	nested := persistent.Slice[ints]{{1, 2}, {}, {3}}
	flat := seq.FlattenIter[ints, int](nested, collect[int]())
	assert.Equal(t, ints{1, 2, 3}, flat)
}

func TestGroupBy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.seq")
	defer teardown()
	//
	newGroup := func() persistent.Collector[int, ints] { return collect[int]() }
	groups := seq.GroupBy(ints{1, 1, 2, 2, 1}, persistent.Identity[int], newGroup,
		collect[persistent.Pair[int, ints]]())
	require.Len(t, groups, 3)
	assert.Equal(t, persistent.P(1, ints{1, 1}), groups[0])
	assert.Equal(t, persistent.P(2, ints{2, 2}), groups[1])
	assert.Equal(t, persistent.P(1, ints{1}), groups[2])
	empty := seq.GroupBy(ints{}, persistent.Identity[int], newGroup, collect[persistent.Pair[int, ints]]())
	assert.Empty(t, empty)
}

func TestGrouped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.seq")
	defer teardown()
	//
	newGroup := func() persistent.Collector[int, ints] { return collect[int]() }
	chunks, err := seq.Grouped(ints{1, 2, 3, 4, 5}, 2, newGroup, collect[ints]())
	require.NoError(t, err)
	assert.Equal(t, persistent.Slice[ints]{{1, 2}, {3, 4}, {5}}, chunks)
	_, err = seq.Grouped(ints{1}, 0, newGroup, collect[ints]())
	assert.ErrorIs(t, err, persistent.ErrInvalidSize)
}

func TestSplitBy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.seq")
	defer teardown()
	//
	yes, no := seq.SplitBy(ints{1, 2, 3, 4, 5}, func(x int) bool { return x > 2 },
		collect[int](), collect[int]())
	assert.Equal(t, ints{3, 4, 5}, yes)
	assert.Equal(t, ints{1, 2}, no)
}

func TestDistinct(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.seq")
	defer teardown()
	//
	assert.Equal(t, ints{3, 1, 2}, seq.Distinct(ints{3, 1, 3, 2, 1}, collect[int]()))
	words := persistent.Slice[string]{"apple", "Avocado", "banana", "Berry", "cherry"}
	first := seq.DistinctBy(words, func(s string) byte { return strings.ToLower(s)[0] },
		collect[string]())
	assert.Equal(t, persistent.Slice[string]{"apple", "banana", "cherry"}, first)
}

func TestSortStable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.seq")
	defer teardown()
	//
	assert.Equal(t, ints{1, 2, 3}, seq.Sort(ints{3, 1, 2}, false, collect[int]()))
	assert.Equal(t, ints{3, 2, 1}, seq.Sort(ints{3, 1, 2}, true, collect[int]()))
	type item = persistent.Pair[string, int]
	items := persistent.Slice[item]{{Left: "a", Right: 2}, {Left: "b", Right: 1}, {Left: "c", Right: 2}, {Left: "d", Right: 1}}
	byNum := func(p item) int { return p.Right }
	asc := seq.SortBy(items, byNum, false, collect[item]())
	assert.Equal(t, "b d a c", seq.MkString(seq.Map(asc, func(p item) string { return p.Left },
		collect[string]()), " "))
	desc := seq.SortBy(items, byNum, true, collect[item]())
	assert.Equal(t, "a c b d", seq.MkString(seq.Map(desc, func(p item) string { return p.Left },
		collect[string]()), " "))
}

func TestZip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.seq")
	defer teardown()
	//
	z, err := seq.Zip(ints{1, 2}, persistent.Slice[string]{"a", "b"},
		collect[persistent.Pair[int, string]]())
	require.NoError(t, err)
	assert.Equal(t, persistent.P(2, "b"), z[1])
	_, err = seq.Zip(ints{1, 2}, persistent.Slice[string]{"a"}, collect[persistent.Pair[int, string]]())
	assert.ErrorIs(t, err, persistent.ErrLengthMismatch)
	m := seq.ToMap(persistent.Slice[persistent.Pair[string, int]]{{Left: "a", Right: 1}, {Left: "b", Right: 2}, {Left: "a", Right: 3}})
	assert.Equal(t, map[string]int{"a": 3, "b": 2}, m)
}

func TestReductions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.seq")
	defer teardown()
	//
	assert.Equal(t, 10, seq.Sum(ints{1, 2, 3, 4}))
	assert.Equal(t, 0, seq.Sum(ints{}))
	assert.Equal(t, 2.5, seq.Sum(persistent.Slice[float64]{1, 1.5}))
	assert.Equal(t, "((0+1)+2)", seq.FoldLeft(ints{1, 2}, "0", func(acc string, x int) string {
		return "(" + acc + "+" + strconv.Itoa(x) + ")"
	}))
	type item = persistent.Pair[string, int]
	items := persistent.Slice[item]{{Left: "a", Right: 1}, {Left: "b", Right: 3}, {Left: "c", Right: 3}, {Left: "d", Right: 1}}
	hi, ok := seq.MaxByOption(items, func(p item) int { return p.Right }).Value()
	assert.True(t, ok)
	assert.Equal(t, "b", hi.Left)
	lo, ok := seq.MinByOption(items, func(p item) int { return p.Right }).Value()
	assert.True(t, ok)
	assert.Equal(t, "a", lo.Left)
	assert.True(t, seq.MaxByOption(ints{}, persistent.Identity[int]).IsNothing())
	assert.Equal(t, 1, seq.FirstOption(ints{1, 2}).WithDefault(-1))
	assert.Equal(t, 2, seq.LastOption(ints{1, 2}).WithDefault(-1))
	assert.True(t, seq.FirstOption(ints{}).IsNothing())
	assert.True(t, seq.LastOption(ints{}).IsNothing())
}

func TestFind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.seq")
	defer teardown()
	//
	big := func(x int) bool { return x > 2 }
	s := ints{1, 3, 5}
	assert.Equal(t, 3, seq.FindOne(s, big).WithDefault(0))
	assert.Equal(t, 1, seq.FindOneIndex(s, big).WithDefault(-1))
	assert.True(t, seq.FindOne(ints{1}, big).IsNothing())
	errNotFound := errors.New("not found")
	_, err := seq.FindOneOrErr(ints{1}, big, errNotFound)
	assert.Equal(t, errNotFound, err)
	x, err := seq.FindOneOrErr(s, big, errNotFound)
	assert.NoError(t, err)
	assert.Equal(t, 3, x)
}

func TestSideEffects(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.seq")
	defer teardown()
	//
	sum := 0
	seq.ForEach(ints{1, 2, 3}, func(x int) { sum += x })
	assert.Equal(t, 6, sum)
	positions := 0
	seq.ForEachIndexed(ints{5, 5, 5}, func(i, _ int) { positions += i })
	assert.Equal(t, 3, positions)
	assert.Equal(t, "1, 2, 3", seq.MkString(ints{1, 2, 3}, ", "))
	assert.Equal(t, "", seq.MkString(ints{}, ", "))
}

func TestTakeAndSliceWithBool(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.seq")
	defer teardown()
	//
	first, err := seq.Take(ints{1, 2, 3}, 2, collect[int]())
	require.NoError(t, err)
	assert.Equal(t, ints{1, 2}, first)
	all, _ := seq.Take(ints{1, 2, 3}, 10, collect[int]())
	assert.Equal(t, ints{1, 2, 3}, all)
	_, err = seq.Take(ints{1}, -1, collect[int]())
	assert.ErrorIs(t, err, persistent.ErrNegativeIndex)
	//
	picked, err := seq.SliceWithBool(ints{1, 2, 3}, persistent.Slice[bool]{true, false, true}, collect[int]())
	require.NoError(t, err)
	assert.Equal(t, ints{1, 3}, picked)
	_, err = seq.SliceWithBool(ints{1, 2, 3}, persistent.Slice[bool]{true}, collect[int]())
	assert.ErrorIs(t, err, persistent.ErrLengthMismatch)
}

func TestFilterTextSearch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.seq")
	defer teardown()
	//
	docs := persistent.Slice[string]{"Go is fun", "Persistent VECTORS", "lists"}
	hits, err := seq.FilterTextSearch(docs, persistent.Identity[string], []string{"vector", "fun"},
		collect[string]())
	require.NoError(t, err)
	assert.Equal(t, persistent.Slice[string]{"Go is fun", "Persistent VECTORS"}, hits)
	all, err := seq.FilterTextSearch(docs, persistent.Identity[string], nil, collect[string]())
	require.NoError(t, err)
	assert.Equal(t, docs, all)
	_, err = seq.FilterTextSearch(docs, persistent.Identity[string], []string{"("}, collect[string]())
	assert.Error(t, err)
}

func TestShuffle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.seq")
	defer teardown()
	//
	in := make(ints, 50)
	for i := range in {
		in[i] = i
	}
	a := seq.Shuffle(in, rand.New(rand.NewSource(7)), collect[int]())
	b := seq.Shuffle(in, rand.New(rand.NewSource(7)), collect[int]())
	assert.Equal(t, a, b, "same seed must give the same order")
	assert.NotEqual(t, in, a)
	sorted := slices.Clone(a)
	slices.Sort(sorted)
	assert.Equal(t, in, sorted, "result must be a permutation of the input")
	assert.Equal(t, 0, in[0], "source must be unchanged")
	assert.Len(t, seq.Shuffle(in, nil, collect[int]()), 50)
	assert.Empty(t, seq.Shuffle(ints{}, nil, collect[int]()))
}
