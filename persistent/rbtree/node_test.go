package rbtree

import (
	"strings"
	"testing"
)

func TestColorString(t *testing.T) {
	if Red.String() != "R" || Black.String() != "B" {
		t.Errorf("expected colors to print as R and B, are %s and %s", Red, Black)
	}
}

func TestEmptySubtreeIsBlack(t *testing.T) {
	if colorOf[int](nil) != Black {
		t.Error("expected empty subtree to count as black, doesn't")
	}
	if isRed[int](nil) {
		t.Error("expected empty subtree not to be red")
	}
}

func TestPaintSameColorSharesNode(t *testing.T) {
	n := newNode[int](Black, nil, 7, nil)
	if paint(Black, n) != n {
		t.Error("expected paint to return node itself if color does not change")
	}
}

func TestPaintCopiesNode(t *testing.T) {
	l := newNode[int](Black, nil, 1, nil)
	r := newNode[int](Black, nil, 9, nil)
	n := newNode(Red, l, 5, r)
	p := paint(Black, n)
	if p == n {
		t.Fatal("expected paint to create a new node")
	}
	if p.color != Black || p.value != 5 || p.left != l || p.right != r {
		t.Errorf("expected painted node to be B⟨5⟩ sharing children, is %v", p)
	}
	if n.color != Red {
		t.Error("expected original node to stay red")
	}
}

func TestPaintEmptyPanics(t *testing.T) {
	assertPanics(t, "paint(nil)", func() {
		paint[int](Black, nil)
	})
}

func TestAccessorsOnEmptyTreePanic(t *testing.T) {
	empty := Tree[string]{}
	assertPanics(t, "Value", func() { empty.Value() })
	assertPanics(t, "Color", func() { empty.Color() })
	assertPanics(t, "Left", func() { empty.Left() })
	assertPanics(t, "Right", func() { empty.Right() })
}

func assertPanics(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("expected %s to panic, didn't", name)
			return
		}
		if msg, ok := r.(string); !ok || !strings.HasPrefix(msg, "rbtree: ") {
			t.Errorf("expected %s to panic with an rbtree message, got %v", name, r)
		}
	}()
	f()
}
