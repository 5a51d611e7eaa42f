package vector

import (
	"fmt"
	"testing"

	"github.com/npillmayer/persistent"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tp "github.com/xlab/treeprint"
)

func TestProps(t *testing.T) {
	p := makeProps(2)
	if p.degree != 4 || p.mask != 3 || p.shift != 2 {
		t.Errorf("expected degree=4, mask=3, shift=2; have %d, %d, %d", p.degree, p.mask, p.shift)
	}
	var zero props
	if zero.init().degree != 32 {
		t.Errorf("expected default degree to be 32, is %d", zero.init().degree)
	}
	if applyOptions([]Option{DegreeExponent(9)}).degree != 32 {
		t.Errorf("expected degree exponent to be clamped to 5")
	}
	if applyOptions([]Option{DegreeExponent(0)}).degree != 2 {
		t.Errorf("expected degree exponent to be clamped to 1")
	}
}

func TestPathTo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.vector")
	defer teardown()
	//
	v := ints(40, DegreeExponent(2))
	t.Log(printVec(v))
	path := v.pathTo(14, nil)
	t.Logf("path=%v", path)
	if len(path) != int(v.shift/v.bits)+1 {
		t.Errorf("expected path of length %d, is %d", v.shift/v.bits+1, len(path))
	}
	leaf := path.last()
	if x := leaf.node.leafs[leaf.inx]; x != 14 {
		t.Errorf("expected path to end at 14, ends at %d", x)
	}
}

func TestAppendGrowsRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.vector")
	defer teardown()
	//
	v := Immutable[int](DegreeExponent(1))
	shift := v.shift
	for i := 0; i < 100; i++ {
		v = v.Append(i)
		checkInvariants(t, v)
		if v.shift < shift {
			t.Fatalf("shift decreased on append at length %d", v.length)
		}
		shift = v.shift
	}
	t.Log(printVec(v))
	if v.shift <= v.bits {
		t.Errorf("expected trie of degree 2 with 100 items to have grown, shift = %d", v.shift)
	}
	for i := 0; i < 100; i++ {
		if x, _ := v.Get(i); x != i {
			t.Fatalf("expected v[%d] = %d, is %d", i, i, x)
		}
	}
}

func TestPopLowersTrie(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.vector")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	v := ints(70, DegreeExponent(2))
	for v.length > 0 {
		w, err := v.Pop()
		if err != nil {
			t.Fatal(err)
		}
		checkInvariants(t, w)
		if w.length > 0 {
			if x, _ := w.Get(-1); x != w.length-1 {
				t.Fatalf("expected last item to be %d after pop, is %d", w.length-1, x)
			}
		}
		if v.length != w.length+1 {
			t.Fatalf("pop modified the source vector")
		}
		v = w
	}
	if v.root != nil || v.shift != v.bits {
		t.Errorf("expected empty vector to have no trie, shift = %d", v.shift)
	}
}

func TestBulkLoadMatchesAppend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.vector")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	for n := 0; n <= 80; n++ {
		appended := Immutable[int](DegreeExponent(2))
		for i := 0; i < n; i++ {
			appended = appended.Append(i)
		}
		loaded := ints(n, DegreeExponent(2))
		checkInvariants(t, loaded)
		if loaded.shift != appended.shift || loaded.length != appended.length {
			t.Fatalf("n=%d: bulk loaded vector has shift %d, appended one %d",
				n, loaded.shift, appended.shift)
		}
		if !Equal[int](loaded, appended) {
			t.Fatalf("n=%d: bulk loaded vector differs from appended one", n)
		}
	}
}

func TestSetSharesStructure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.vector")
	defer teardown()
	//
	v := ints(64, DegreeExponent(2))
	w, err := v.Set(1, 100)
	if err != nil {
		t.Fatal(err)
	}
	t.Log(printVec(w))
	if w.root == v.root {
		t.Errorf("expected root to be copied on set")
	}
	last := len(v.root.children) - 1
	if v.root.children[last] != w.root.children[last] {
		t.Errorf("expected untouched sub-trie to be shared")
	}
	if x, _ := v.Get(1); x != 1 {
		t.Errorf("set modified the source vector")
	}
	if x, _ := w.Get(1); x != 100 {
		t.Errorf("expected w[1] = 100, is %d", x)
	}
}

func TestMSetCopiesOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.vector")
	defer teardown()
	//
	v := ints(64, DegreeExponent(2))
	w, err := v.MSet(persistent.P(0, -1), persistent.P(1, -2), persistent.P(62, -3), persistent.P(-1, -4))
	if err != nil {
		t.Fatal(err)
	}
	if x, _ := w.Get(0); x != -1 {
		t.Errorf("expected w[0] = -1, is %d", x)
	}
	if x, _ := w.Get(1); x != -2 {
		t.Errorf("expected w[1] = -2, is %d", x)
	}
	if x, _ := w.Get(63); x != -4 {
		t.Errorf("expected w[63] = -4, is %d", x)
	}
	if w.leafFor(0)[0] != -1 || &w.leafFor(0)[0] != &w.leafFor(1)[0] {
		t.Errorf("expected items 0 and 1 to live in the same copied leaf")
	}
	if &v.leafFor(0)[0] == &w.leafFor(0)[0] {
		t.Errorf("expected leaf to be copied")
	}
	if v.root.children[1] != w.root.children[1] {
		t.Errorf("expected untouched sub-trie to be shared")
	}
	if _, err = v.MSet(persistent.P(0, 0), persistent.P(64, 0)); err == nil {
		t.Errorf("expected MSet with index 64 to fail")
	}
}

// --- Helpers ---------------------------------------------------------------

func ints(n int, opts ...Option) Vector[int] {
	b := NewBuilder[int](opts...)
	for i := 0; i < n; i++ {
		b.Add(i)
	}
	return b.Result()
}

func checkInvariants[T any](t *testing.T, v Vector[T]) {
	t.Helper()
	if v.length == 0 {
		if len(v.tail) != 0 || v.root != nil {
			t.Fatalf("empty vector holds items")
		}
		return
	}
	if len(v.tail) < 1 || len(v.tail) > v.degree {
		t.Fatalf("length %d: tail has %d items", v.length, len(v.tail))
	}
	if v.tailOffset()+len(v.tail) != v.length {
		t.Fatalf("length %d: tail offset %d and tail length %d do not match",
			v.length, v.tailOffset(), len(v.tail))
	}
	count := countLeafItems(t, v.root, v.shift, v.bits, v.degree)
	if count != v.tailOffset() {
		t.Fatalf("length %d: trie holds %d items, expected %d", v.length, count, v.tailOffset())
	}
}

func countLeafItems[T any](t *testing.T, node *vnode[T], level, bits uint, k int) int {
	if node == nil {
		return 0
	}
	if level == 0 {
		if !node.isLeaf() || len(node.leafs) != k {
			t.Fatalf("leaf node %v is not a full leaf", node)
		}
		return k
	}
	if node.isLeaf() {
		t.Fatalf("found leaf at level %d", level)
	}
	n := 0
	for _, ch := range node.children {
		n += countLeafItems(t, ch, level-bits, bits, k)
	}
	return n
}

// --- Print tree ------------------------------------------------------------

func printVec[T any](v Vector[T]) string {
	v.props = v.props.init()
	header := fmt.Sprintf("\nVector(len=%d, shift=%d, k=%d) tail=%v\n", v.length, v.shift, v.degree, v.tail)
	printer := tp.New()
	printNode(printer, v.root, v.shift, v.bits, 0)
	return header + printer.String() + "\n"
}

func printNode[T any](printer tp.Tree, node *vnode[T], level, bits uint, j int) {
	if node == nil {
		return
	}
	span := 1 << (level + bits)
	if level == 0 {
		span = len(node.leafs)
	}
	label := node.String() + fmt.Sprintf("  %d…%d", j, j+span-1)
	if node.isLeaf() {
		printer.AddNode(label)
		return
	}
	branch := printer.AddBranch(label)
	for i, ch := range node.children {
		printNode(branch, ch, level-bits, bits, j+i*(1<<level))
	}
}
