package rbtree

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParallelInsertEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.rbtree")
	defer teardown()
	//
	tree, err := ParallelInsert([]int{})
	if err != nil {
		t.Fatal(err)
	}
	if !tree.IsEmpty() || len(tree.Values()) != 0 {
		t.Errorf("expected empty tree for empty input, got %v", tree.Values())
	}
	if tree, _ = ParallelInsert[int](nil); !tree.IsEmpty() {
		t.Error("expected empty tree for nil input")
	}
}

func TestParallelInsertInts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.rbtree")
	defer teardown()
	//
	tree, err := ParallelInsert([]int{5, 3, 8, 3, 1, 9, 1})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(tree.Values(), []int{1, 3, 5, 8, 9}) {
		t.Logf("tree =\n%s", printTree(tree))
		t.Errorf("expected values [1 3 5 8 9], are %v", tree.Values())
	}
	if err := tree.Verify(); err != nil {
		t.Error(err)
	}
}

func TestParallelInsertSingle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.rbtree")
	defer teardown()
	//
	tree, err := ParallelInsert([]string{"solo"})
	if err != nil || !slices.Equal(tree.Values(), []string{"solo"}) {
		t.Errorf("expected [solo], got %v (err=%v)", tree.Values(), err)
	}
}

func TestParallelEqualsSequential(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.rbtree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	rnd := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 100; i++ {
		values := randomInts(rnd, rnd.IntN(300), 200)
		par, err := ParallelInsert(values)
		if err != nil {
			t.Fatalf("round %d: %v", i, err)
		}
		seq := Build(values)
		if !slices.Equal(par.Values(), seq.Values()) {
			t.Fatalf("round %d: parallel and sequential construction differ", i)
		}
		if err := par.Verify(); err != nil {
			t.Fatalf("round %d: %v", i, err)
		}
	}
}

func TestPromiseInsert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.rbtree")
	defer teardown()
	//
	words := []string{"to", "be", "or", "not", "to", "be"}
	promise := PromiseInsert(words)
	tree1, err1 := promise()
	tree2, err2 := promise()
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if tree1.root != tree2.root {
		t.Error("expected promise to return the same tree when called twice")
	}
	if !slices.Equal(tree1.Values(), []string{"be", "not", "or", "to"}) {
		t.Errorf("unexpected values %v", tree1.Values())
	}
}

func TestParallelWorkerFault(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.rbtree")
	defer teardown()
	//
	faulty := func(values []int) Tree[int] {
		if slices.Contains(values, 13) {
			panic("unlucky number")
		}
		return Build(values)
	}
	tree, err := fork([]int{1, 2, 3, 13}, faulty, Merge[int])()
	if !errors.Is(err, ErrWorkerFault) {
		t.Fatalf("expected worker fault, got %v", err)
	}
	if !tree.IsEmpty() {
		t.Errorf("expected no partial tree on failure, got %v", tree.Values())
	}
	t.Logf("error = %v", err)
}
