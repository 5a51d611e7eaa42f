package vector

import (
	"fmt"
	"strings"
)

// vnode represents a node in the trie a vector is made of. Inner nodes hold
// children, leaf nodes hold a full bucket of values.
// A node is never modified after it has become reachable from a vector.
type vnode[T any] struct {
	children []*vnode[T]
	leafs    []T
}

func emptyNode[T any](k int) *vnode[T] {
	return &vnode[T]{
		children: make([]*vnode[T], k),
	}
}

func (node *vnode[T]) isLeaf() bool {
	return node.leafs != nil
}

func (node *vnode[T]) clone() *vnode[T] {
	assertThat(node != nil, "attempt to clone an uninitialized node")
	n := &vnode[T]{}
	if node.leafs != nil {
		n.leafs = make([]T, len(node.leafs))
		copy(n.leafs, node.leafs)
	}
	if node.children != nil {
		n.children = make([]*vnode[T], len(node.children))
		copy(n.children, node.children)
	}
	return n
}

func cloneTail[T any](tail []T, l int) []T {
	newTail := make([]T, l)
	copy(newTail, tail)
	return newTail
}

// newPath creates a chain of inner nodes from level down to node, every one
// of them holding its successor as the leftmost child.
func newPath[T any](level, bits uint, k int, node *vnode[T]) *vnode[T] {
	if level == 0 {
		return node
	}
	top := emptyNode[T](k)
	top.children[0] = newPath(level-bits, bits, k, node)
	return top
}

// group packs nodes into parent nodes of degree k, from left to right.
func group[T any](nodes []*vnode[T], k int) []*vnode[T] {
	parents := make([]*vnode[T], 0, (len(nodes)+k-1)/k)
	for i := 0; i < len(nodes); i += k {
		parent := emptyNode[T](k)
		copy(parent.children, nodes[i:min(i+k, len(nodes))])
		parents = append(parents, parent)
	}
	return parents
}

func (node vnode[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	if node.leafs != nil {
		for i, l := range node.leafs {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(fmt.Sprintf("%v", l))
		}
	} else {
		for i, c := range node.children {
			if i > 0 {
				b.WriteByte(',')
			}
			if c == nil {
				b.WriteByte('_')
			} else {
				b.WriteString("▪︎")
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.vector: "+msg, msgargs...)
		panic(msg)
	}
}
