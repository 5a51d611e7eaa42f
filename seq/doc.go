/*
Package seq implements functional combinators over persistent sequences.

Every combinator is written once, against the read-only capability persistent.Sequence,
and writes its output into a persistent.Collector chosen by the caller. This way the
same code produces lists, vectors or plain slices:

    evens := seq.Filter(v, isEven, vector.NewBuilder[int]())      // a vector
    names := seq.Map(l, Person.Name, list.NewBuilder[string]())  // a list

Packages list and vector wrap the combinators with typed signatures, which is what
most clients will want to use. Package seq is the place to look for the semantics.

Combinators never modify their input. Functions passed to them should be free of
side effects; functions passed to ParMap and ParMapResults are called concurrently
and must be safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.seq'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.seq")
}
