package rbtree

import (
	"iter"

	"github.com/npillmayer/fpsort"
	"github.com/npillmayer/fpsort/maybe"
)

// FuncTree is a persistent red-black tree ordered by a client-supplied comparison
// function instead of the natural order of T. It behaves like Tree in every other
// respect.
//
// compare(a, b) must define a total order, returning a negative number for a < b,
// zero if a and b are equivalent, and a positive number for a > b. Values which are
// equivalent under compare are considered duplicates, even if they are not identical;
// the value inserted first is kept.
//
// The zero value has no comparison function. Use NewFunc to create an empty tree.
type FuncTree[T any] struct {
	root    *node[T]
	compare func(a, b T) int
}

// NewFunc returns an empty tree ordered by compare.
func NewFunc[T any](compare func(a, b T) int) FuncTree[T] {
	assertThat(compare != nil, "comparison function must not be nil")
	return FuncTree[T]{compare: compare}
}

// BuildFunc folds Insert over values, from left to right, starting with an empty
// tree ordered by compare.
func BuildFunc[T any](compare func(a, b T) int, values []T) FuncTree[T] {
	return fpsort.FoldL(values, NewFunc(compare), FuncTree[T].Insert)
}

// IsEmpty returns true for a tree without any values.
func (tree FuncTree[T]) IsEmpty() bool {
	return tree.root == nil
}

// Insert returns a copy of tree with x inserted. If a value equivalent to x is
// already contained in tree, tree itself is returned.
func (tree FuncTree[T]) Insert(x T) FuncTree[T] {
	assertThat(tree.compare != nil, "tree has no comparison function, use NewFunc")
	root, inserted := insert(tree.root, x, tree.compare)
	if !inserted {
		return tree
	}
	return FuncTree[T]{root: paint(Black, root), compare: tree.compare}
}

// Values returns the values of tree in ascending order.
func (tree FuncTree[T]) Values() []T {
	return inorder(tree.root)
}

// All returns an iterator over the values of tree in ascending order.
func (tree FuncTree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		walk(tree.root, yield)
	}
}

// Len returns the number of values in tree. It is O(n).
func (tree FuncTree[T]) Len() int {
	return count(tree.root)
}

// Contains reports whether a value equivalent to x is in tree.
func (tree FuncTree[T]) Contains(x T) bool {
	return !tree.Lookup(x).IsNothing()
}

// Lookup returns the value stored in tree which is equivalent to x, if any.
func (tree FuncTree[T]) Lookup(x T) maybe.Maybe[T] {
	if tree.root == nil {
		return maybe.Nothing[T]()
	}
	return lookup(tree.root, x, tree.compare)
}

// Min returns the smallest value of tree, or Nothing for an empty tree.
func (tree FuncTree[T]) Min() maybe.Maybe[T] {
	return leftmost(tree.root)
}

// Max returns the largest value of tree, or Nothing for an empty tree.
func (tree FuncTree[T]) Max() maybe.Maybe[T] {
	return rightmost(tree.root)
}

// Verify checks tree for the red-black properties, see Tree.Verify.
func (tree FuncTree[T]) Verify() error {
	return verifyRoot(tree.root, tree.compare)
}

// MergeFunc returns a tree holding the union of the values of a and b, ordered by
// the comparison function of a. Values of b equivalent to values of a are dropped.
func MergeFunc[T any](a, b FuncTree[T]) FuncTree[T] {
	vals := b.Values()
	tracer().Debugf("merge: inserting %d values", len(vals))
	return fpsort.FoldL(vals, a, FuncTree[T].Insert)
}

// ParallelInsertFunc is ParallelInsert for trees ordered by compare.
func ParallelInsertFunc[T any](compare func(a, b T) int, values []T) (FuncTree[T], error) {
	build := func(vals []T) FuncTree[T] {
		return BuildFunc(compare, vals)
	}
	return fork(values, build, MergeFunc[T])()
}
