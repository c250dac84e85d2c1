package rbtree

import "fmt"

// Color is the color of a tree node.
type Color uint8

// Nodes are either red or black. Empty subtrees count as black.
const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	switch c {
	case Red:
		return "R"
	case Black:
		return "B"
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// node is an immutable tree node. Nodes may be referenced by more than one incarnation
// of a tree; they are garbage collected as soon as the last incarnation is gone.
// A nil child is an empty subtree.
type node[T any] struct {
	color Color
	left  *node[T]
	value T
	right *node[T]
}

// newNode is the only way to create a node. Nodes are never modified afterwards.
func newNode[T any](c Color, left *node[T], x T, right *node[T]) *node[T] {
	return &node[T]{color: c, left: left, value: x, right: right}
}

func (n *node[T]) String() string {
	if n == nil {
		return "⊥"
	}
	return fmt.Sprintf("%s⟨%v⟩", n.color, n.value)
}

func colorOf[T any](n *node[T]) Color {
	if n == nil {
		return Black
	}
	return n.color
}

func isRed[T any](n *node[T]) bool {
	return n != nil && n.color == Red
}

// paint returns n in color c. If n already has color c, n itself is returned,
// otherwise a copy sharing n's children.
func paint[T any](c Color, n *node[T]) *node[T] {
	assertThat(n != nil, "cannot paint an empty tree")
	if n.color == c {
		return n
	}
	return newNode(c, n.left, n.value, n.right)
}
