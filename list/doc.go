/*
Package list implements an immutable persistent singly-linked list (a cons list).

Lists are built from cells, each holding one item and a link to the rest of the list.
Prepending creates a single new cell, which shares the complete original list as its
tail; nothing is ever copied or modified. The empty list is the zero value of type List.

    l := list.Of(2, 3)
    m := l.Prepend(1)     // [1 2 3], sharing [2 3] with l
    h, err := m.Head()    // 1
    t, err := m.Tail()    // [2 3], identical to l

Every cell caches the length of the list it starts, thus Len is O(1). Indexed access
is linear; indices must not be negative. Use package vector for random access.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.list'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.list")
}
