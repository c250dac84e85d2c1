package rbtree

import (
	"cmp"
	"errors"
	"fmt"
	"iter"

	"github.com/npillmayer/fpsort"
	"github.com/npillmayer/fpsort/maybe"
)

// Tree is a persistent red-black tree holding a set of values. An empty instance is
// usable as an empty tree, i.e. this is legal:
//
//	tree := rbtree.Tree[int]{}.Insert(42)
//
// Trees are values. “Modifying” a tree always yields a new tree; the old one stays
// valid and unchanged, sharing most of its nodes with the new one.
type Tree[T cmp.Ordered] struct {
	root *node[T]
}

// Empty returns an empty tree.
func Empty[T cmp.Ordered]() Tree[T] {
	return Tree[T]{}
}

// Build folds Insert over values, from left to right, starting with an empty tree.
func Build[T cmp.Ordered](values []T) Tree[T] {
	return fpsort.FoldL(values, Tree[T]{}, Tree[T].Insert)
}

// --- API -------------------------------------------------------------------

// IsEmpty returns true for a tree without any values.
func (tree Tree[T]) IsEmpty() bool {
	return tree.root == nil
}

// Value returns the value stored at the root of tree.
// Calling Value for an empty tree is a programming error and panics.
func (tree Tree[T]) Value() T {
	assertThat(tree.root != nil, "cannot get value of empty tree")
	return tree.root.value
}

// Color returns the color of the root of tree. Panics for an empty tree.
func (tree Tree[T]) Color() Color {
	assertThat(tree.root != nil, "cannot get color of empty tree")
	return tree.root.color
}

// Left returns the left subtree. Panics for an empty tree.
//
// Subtrees are views into tree and may have a red root.
func (tree Tree[T]) Left() Tree[T] {
	assertThat(tree.root != nil, "cannot get left subtree of empty tree")
	return Tree[T]{root: tree.root.left}
}

// Right returns the right subtree. Panics for an empty tree.
func (tree Tree[T]) Right() Tree[T] {
	assertThat(tree.root != nil, "cannot get right subtree of empty tree")
	return Tree[T]{root: tree.root.right}
}

// Insert returns a copy of tree with x inserted. If x is already contained in tree,
// tree itself is returned.
//
// The root of the resulting tree is always black.
func (tree Tree[T]) Insert(x T) Tree[T] {
	root, inserted := insert(tree.root, x, cmp.Compare[T])
	if !inserted {
		return tree // no need for modification
	}
	return Tree[T]{root: paint(Black, root)}
}

// Values returns the values of tree in ascending order. Every call materializes
// a new slice; tree is not affected.
func (tree Tree[T]) Values() []T {
	return inorder(tree.root)
}

// All returns an iterator over the values of tree in ascending order.
func (tree Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		walk(tree.root, yield)
	}
}

// Len returns the number of values in tree. It has to count them, i.e. it is O(n).
func (tree Tree[T]) Len() int {
	return count(tree.root)
}

// Contains reports whether x is in tree.
func (tree Tree[T]) Contains(x T) bool {
	return !tree.Lookup(x).IsNothing()
}

// Lookup returns the value stored in tree which compares equal to x, if any.
func (tree Tree[T]) Lookup(x T) maybe.Maybe[T] {
	return lookup(tree.root, x, cmp.Compare[T])
}

// Min returns the smallest value of tree, or Nothing for an empty tree.
func (tree Tree[T]) Min() maybe.Maybe[T] {
	return leftmost(tree.root)
}

// Max returns the largest value of tree, or Nothing for an empty tree.
func (tree Tree[T]) Max() maybe.Maybe[T] {
	return rightmost(tree.root)
}

// Verify checks tree for the red-black properties: the root is black, no red node
// has a red child, every path from the root to an empty subtree contains the same
// number of black nodes, and values are strictly ascending in order.
//
// Verify is meant for trees as returned by Insert and friends. Subtrees obtained by
// Left or Right may legally have a red root and will fail the check.
func (tree Tree[T]) Verify() error {
	return verifyRoot(tree.root, cmp.Compare[T])
}

// --- Node level operations -------------------------------------------------

func inorder[T any](root *node[T]) []T {
	vals := make([]T, 0, defaultPathCapacity)
	walk(root, func(x T) bool {
		vals = append(vals, x)
		return true
	})
	return vals
}

func count[T any](root *node[T]) int {
	var n int
	walk(root, func(T) bool {
		n++
		return true
	})
	return n
}

// walk visits the values below root in order until yield returns false.
// It uses an explicit stack instead of recursion.
func walk[T any](root *node[T], yield func(T) bool) {
	stack := make([]*node[T], 0, defaultPathCapacity)
	n := root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !yield(n.value) {
			return
		}
		n = n.right
	}
}

func lookup[T any](root *node[T], x T, compare func(T, T) int) maybe.Maybe[T] {
	for n := root; n != nil; {
		switch c := compare(x, n.value); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return maybe.Just(n.value)
		}
	}
	return maybe.Nothing[T]()
}

func leftmost[T any](n *node[T]) maybe.Maybe[T] {
	if n == nil {
		return maybe.Nothing[T]()
	}
	for n.left != nil {
		n = n.left
	}
	return maybe.Just(n.value)
}

func rightmost[T any](n *node[T]) maybe.Maybe[T] {
	if n == nil {
		return maybe.Nothing[T]()
	}
	for n.right != nil {
		n = n.right
	}
	return maybe.Just(n.value)
}

// --- Verification ----------------------------------------------------------

// ErrInvariantViolated is returned by Verify for a malformed tree.
var ErrInvariantViolated = errors.New("red-black invariant violated")

func verifyRoot[T any](root *node[T], compare func(T, T) int) error {
	if root == nil {
		return nil
	}
	if root.color != Black {
		return fmt.Errorf("%w: root %s is not black", ErrInvariantViolated, root)
	}
	_, err := verify(root, compare, nil, nil)
	return err
}

// verify checks the subtree at n, all of whose values have to lie strictly between
// lo and hi (if given). It returns the black height of n.
func verify[T any](n *node[T], compare func(T, T) int, lo, hi *T) (int, error) {
	if n == nil {
		return 1, nil
	}
	if lo != nil && compare(n.value, *lo) <= 0 {
		return 0, fmt.Errorf("%w: %v out of order after %v", ErrInvariantViolated, n.value, *lo)
	}
	if hi != nil && compare(n.value, *hi) >= 0 {
		return 0, fmt.Errorf("%w: %v out of order before %v", ErrInvariantViolated, n.value, *hi)
	}
	if n.color == Red && (isRed(n.left) || isRed(n.right)) {
		return 0, fmt.Errorf("%w: red node %s has a red child", ErrInvariantViolated, n)
	}
	lh, err := verify(n.left, compare, lo, &n.value)
	if err != nil {
		return 0, err
	}
	rh, err := verify(n.right, compare, &n.value, hi)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("%w: black heights differ below %s: %d ≠ %d", ErrInvariantViolated, n, lh, rh)
	}
	if n.color == Black {
		lh++
	}
	return lh, nil
}
