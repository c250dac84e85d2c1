package rbtree

import (
	"cmp"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestClassifyRedParent(t *testing.T) {
	ll := newNode(Red, newNode[int](Red, nil, 1, nil), 2, nil)
	if sh := classify(Red, ll, nil); sh != balanced {
		t.Errorf("expected red parent never to be re-balanced, shape is %s", sh)
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	l := newNode(Red, newNode[int](Red, nil, 1, nil), 2, newNode[int](Red, nil, 3, nil))
	r := newNode(Red, newNode[int](Red, nil, 5, nil), 6, newNode[int](Red, nil, 7, nil))
	if sh := classify(Black, l, r); sh != leftLeft {
		t.Errorf("expected left-left to be checked first, got %s", sh)
	}
	if sh := classify(Black, newNode[int](Black, nil, 2, nil), r); sh != rightLeft {
		t.Errorf("expected right-left to be checked before right-right, got %s", sh)
	}
}

func TestBalanceCases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.rbtree")
	defer teardown()
	//
	a := newNode[int](Black, nil, 10, nil)
	b := newNode[int](Black, nil, 30, nil)
	c := newNode[int](Black, nil, 50, nil)
	d := newNode[int](Black, nil, 70, nil)
	cases := []struct {
		shape shape
		build func() *node[int]
	}{
		{leftLeft, func() *node[int] {
			return balance(Black, newNode(Red, newNode(Red, a, 20, b), 40, c), 60, d)
		}},
		{leftRight, func() *node[int] {
			return balance(Black, newNode(Red, a, 20, newNode(Red, b, 40, c)), 60, d)
		}},
		{rightLeft, func() *node[int] {
			return balance(Black, a, 20, newNode(Red, newNode(Red, b, 40, c), 60, d))
		}},
		{rightRight, func() *node[int] {
			return balance(Black, a, 20, newNode(Red, b, 40, newNode(Red, c, 60, d)))
		}},
	}
	for _, x := range cases {
		n := x.build()
		if n.color != Red || n.value != 40 {
			t.Errorf("%s: expected new root R⟨40⟩, is %s", x.shape, n)
			continue
		}
		if n.left.color != Black || n.left.value != 20 || n.right.color != Black || n.right.value != 60 {
			t.Errorf("%s: expected children B⟨20⟩ and B⟨60⟩, are %s and %s", x.shape, n.left, n.right)
			continue
		}
		if n.left.left != a || n.left.right != b || n.right.left != c || n.right.right != d {
			t.Errorf("%s: expected subtrees a, b, c, d to be shared in order", x.shape)
		}
	}
}

func TestBalanceLeavesInputUntouched(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.rbtree")
	defer teardown()
	//
	inner := newNode[int](Red, nil, 1, nil)
	l := newNode(Red, inner, 2, nil)
	n := balance(Black, l, 3, nil)
	if n.value != 2 || n.left.value != 1 || n.left.color != Black {
		t.Errorf("expected rotation to R⟨2⟩ with B⟨1⟩ to its left, got %s / %s", n, n.left)
	}
	if l.color != Red || l.left != inner || inner.color != Red {
		t.Error("expected input nodes to be left unmodified")
	}
}

func TestBalanceWithoutViolation(t *testing.T) {
	a := newNode[int](Red, nil, 1, nil)
	b := newNode[int](Black, nil, 3, nil)
	n := balance(Black, a, 2, b)
	if n.color != Black || n.value != 2 || n.left != a || n.right != b {
		t.Errorf("expected balance to construct plain node B⟨2⟩(a, b), got %s", n)
	}
}

func TestInsertPathIsFlat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.rbtree")
	defer teardown()
	//
	tree := Build([]int{4, 2, 6, 1, 3, 5, 7})
	path, found := findPath(tree.root, 8, cmp.Compare[int], nil)
	if found {
		t.Fatal("did not expect to find 8")
	}
	if len(path) != height(tree.root) {
		t.Logf("tree =\n%s", printTree(tree))
		t.Errorf("expected path to 8 to run down the right spine (%d), is %s", height(tree.root), path)
	}
	for _, s := range path {
		if s.dir != toRight {
			t.Errorf("expected path to 8 to go right only, is %s", path)
			break
		}
	}
	if _, found = findPath(tree.root, 3, cmp.Compare[int], nil); !found {
		t.Error("expected to find 3")
	}
}
