package rbtree

import (
	"fmt"
	"strings"
)

/*
Insertion does not recurse. We walk down from the root, remembering every node we pass
together with the direction we took, and then rebuild the tree bottom-up by folding the
path from the right, re-balancing at every step. The call stack therefore stays flat
regardless of tree height.
*/

type direction uint8

const (
	toLeft direction = iota
	toRight
)

// step holds a step of a path.
type step[T any] struct {
	node *node[T]
	dir  direction
}

func (s step[T]) String() string {
	if s.dir == toLeft {
		return "↙" + s.node.String()
	}
	return "↘" + s.node.String()
}

// insertPath leads from the root of a tree down to the empty subtree where a new
// value is to be placed.
type insertPath[T any] []step[T]

const defaultPathCapacity = 32

func (path insertPath[T]) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, s := range path {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", s))
	}
	sb.WriteRune(']')
	return sb.String()
}

func (path insertPath[T]) foldR(f func(step[T], *node[T]) *node[T], zero *node[T]) *node[T] {
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}

// findPath locates x in the tree below root, ordered by compare. If x is present,
// found is true and the path is of no further use.
func findPath[T any](root *node[T], x T, compare func(T, T) int, pathBuf insertPath[T]) (path insertPath[T], found bool) {
	path = pathBuf[:0]
	for n := root; n != nil; {
		switch c := compare(x, n.value); {
		case c < 0:
			path = append(path, step[T]{node: n, dir: toLeft})
			n = n.left
		case c > 0:
			path = append(path, step[T]{node: n, dir: toRight})
			n = n.right
		default:
			return path, true
		}
	}
	return path, false
}

// rebuild creates a copy of the path node of s with child substituted for the
// subtree in direction s.dir, and balances the result.
func rebuild[T any](s step[T], child *node[T]) *node[T] {
	if s.dir == toLeft {
		return balance(s.node.color, child, s.node.value, s.node.right)
	}
	return balance(s.node.color, s.node.left, s.node.value, child)
}

// insert returns a new root with x inserted below root. The root returned may be red.
// If x is already present, root is returned unchanged and inserted is false.
func insert[T any](root *node[T], x T, compare func(T, T) int) (newRoot *node[T], inserted bool) {
	path, found := findPath(root, x, compare, make(insertPath[T], 0, defaultPathCapacity))
	if found {
		return root, false
	}
	tracer().Debugf("insert: path for %v = %s", x, path)
	return path.foldR(rebuild[T], newNode[T](Red, nil, x, nil)), true
}
