package rbtree

import (
	"cmp"

	"github.com/npillmayer/fpsort"
)

// Merge returns a tree holding the union of the values of a and b.
//
// The values of b are extracted in ascending order and inserted into a, one by one.
// No attempt is made to merge structurally, thus the cost is O(|b|·log(|a|+|b|)),
// but the result is correct for trees of any shape. The result contains exactly the
// same values regardless of argument order; its shape, however, may differ.
func Merge[T cmp.Ordered](a, b Tree[T]) Tree[T] {
	values := b.Values()
	tracer().Debugf("merge: inserting %d values", len(values))
	return fpsort.FoldL(values, a, Tree[T].Insert)
}
