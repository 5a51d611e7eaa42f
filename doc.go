/*
Package persistent is the root of a small family of immutable persistent sequence types:
a cons list (package list) and a bit-partitioned vector trie (package vector), together
with a functional combinator layer (package seq) which is written once and serves both.

Immutable persistent data structures are data structures which can be copied and modified
efficiently, leaving the original unchanged. Functional programming languages like Lisp have long
relied on using them.

Immutable data structures in many cases offer benefits over mutable data structures in terms
of concurrent access and functional reasoning.  *Persistent* immutable data-structures offer
structural sharing, which means that if two data structures are mostly copies of each other,
most of the memory they take up will be shared between them. This implies that making copies
of an immutable data structure is relatively cheap in terms of space- and time-complexity.

This package holds what all sequence types have in common: the read-only capability
interfaces Sequence and Indexed, the Collector interface implemented by builders,
structural equality, and the error values returned by operations of sub-packages.

	v := vector.Of(1, 2, 3)
	w := v.Append(4)                        // v is unchanged
	persistent.Equal[int](w, persistent.Slice[int]{1, 2, 3, 4})  // true

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
