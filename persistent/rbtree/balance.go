package rbtree

// shape tags the local configuration of a node to be balanced. There are four
// shapes violating the no-red-red rule, all of them below a black node.
type shape uint8

const (
	balanced   shape = iota // no violation
	leftLeft                // left child red, its left child red
	leftRight               // left child red, its right child red
	rightLeft               // right child red, its left child red
	rightRight              // right child red, its right child red
)

var shapeNames = [...]string{"balanced", "left-left", "left-right", "right-left", "right-right"}

func (sh shape) String() string {
	return shapeNames[sh]
}

// classify determines the shape of a node (c, l, _, r). Cases are checked in order,
// first match wins.
func classify[T any](c Color, l, r *node[T]) shape {
	if c != Black {
		return balanced
	}
	switch {
	case isRed(l) && isRed(l.left):
		return leftLeft
	case isRed(l) && isRed(l.right):
		return leftRight
	case isRed(r) && isRed(r.left):
		return rightLeft
	case isRed(r) && isRed(r.right):
		return rightRight
	}
	return balanced
}

// balance constructs a node (c, l, x, r), resolving a red-red violation immediately
// below it. All four violating shapes are rewritten to the same form
//
//	      R⟨v2⟩
//	     /     \
//	 B⟨v1⟩     B⟨v3⟩
//	 /   \     /   \
//	a     b   c     d
//
// where v1 < v2 < v3 and a, b, c, d are the four subtrees found below the violation,
// in order. Input nodes are never modified; untouched subtrees are shared.
func balance[T any](c Color, l *node[T], x T, r *node[T]) *node[T] {
	sh := classify(c, l, r)
	if sh != balanced {
		tracer().Debugf("balance: %s at %v", sh, x)
	}
	switch sh {
	case leftLeft:
		return newNode(Red,
			paint(Black, l.left),
			l.value,
			newNode(Black, l.right, x, r))
	case leftRight:
		return newNode(Red,
			newNode(Black, l.left, l.value, l.right.left),
			l.right.value,
			newNode(Black, l.right.right, x, r))
	case rightLeft:
		return newNode(Red,
			newNode(Black, l, x, r.left.left),
			r.left.value,
			newNode(Black, r.left.right, r.value, r.right))
	case rightRight:
		return newNode(Red,
			newNode(Black, l, x, r.left),
			r.value,
			paint(Black, r.right))
	}
	return newNode(c, l, x, r)
}
