/*
Package vector implements an immutable persistent vector, designed for use-cases
similar to Go slices.

An immutable persistent vector has copy-on-write behaviour: Each “modification” of the vector
(appending, replacement or deletion) creates a copy, leaving the original unmodified.
Under the hood, copy-on-write retains most of the memory held by the original, and creates
a new incarnation of parts of the structure only. Thus, most of the structure/memory
is shared between original and copy, transparently to clients.

Vectors are bit-partitioned tries of degree 2^k (32 by default), with the rightmost
leaf kept apart as a tail buffer. Appending to the tail is O(1); indexing and replacing
an element are O(log_32 n), i.e. for all practical purposes constant.

    v := vector.Of(1, 2, 3)
    w := v.Append(4)            // v is still [1 2 3]
    w, err := w.Set(0, 10)      // [10 2 3 4]
    x, err := w.Get(-1)         // 4: negative indices count from the end

Scalar indices may be negative and then count from the end; an index outside the
vector is reported as persistent.ErrIndexOutOfRange. Slicing never fails, out-of-range
bounds are clamped.

Immutable vectors are inherently concurrency-safe. Builders, however, are not.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.vector'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.vector")
}
