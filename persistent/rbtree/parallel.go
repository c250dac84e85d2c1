package rbtree

import (
	"cmp"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrWorkerFault is reported if a worker building a partial tree failed.
var ErrWorkerFault = errors.New("tree construction worker failed")

// ParallelInsert builds a tree from a batch of values, using two concurrent workers.
// The values are split in half; each half is folded into a tree of its own, from left
// to right, and the two partial trees are merged when both workers are done.
//
// The resulting tree holds the same values as Build(values). If a worker fails,
// no tree is returned; a partial tree built by the other worker is discarded.
func ParallelInsert[T cmp.Ordered](values []T) (Tree[T], error) {
	return PromiseInsert(values)()
}

// PromiseInsert is the asynchronous version of ParallelInsert. Workers are started
// immediately, and clients receive a promise in return.
// Calling the promise is the synchronization point: it blocks until both workers
// have finished, and then merges their results. Calling the promise more than once
// is fine and returns the same result every time.
//
//	promise := rbtree.PromiseInsert(words)
//	…                                       // do something else
//	tree, err := promise()
func PromiseInsert[T cmp.Ordered](values []T) func() (Tree[T], error) {
	return fork(values, Build[T], Merge[T])
}

// fork splits values at the midpoint and builds the two halves concurrently with
// build, then joins them with merge. Workers may not be cancelled; once started
// they run to completion. H is the tree handle type built.
func fork[T, H any](values []T, build func([]T) H, merge func(H, H) H) func() (H, error) {
	if len(values) == 0 {
		return func() (H, error) {
			return build(nil), nil
		}
	}
	mid := len(values) / 2
	var halves [2]H
	var g errgroup.Group
	g.Go(worker(1, values[:mid], build, &halves[0]))
	g.Go(worker(2, values[mid:], build, &halves[1]))
	tracer().Debugf("fork: started 2 workers for %d + %d values", mid, len(values)-mid)
	return sync.OnceValues(func() (H, error) {
		if err := g.Wait(); err != nil { // join
			tracer().Errorf("join: %v", err)
			var none H
			return none, err
		}
		tracer().Debugf("join: both workers finished, merging")
		return merge(halves[0], halves[1]), nil
	})
}

// worker returns a task for an errgroup. Each worker is identified through a
// worker number 'wno'. A panicking build is reported as an error.
func worker[T, H any](wno int, values []T, build func([]T) H, result *H) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: worker #%d: %v", ErrWorkerFault, wno, r)
			}
		}()
		*result = build(values)
		tracer().Debugf("worker #%d finished %d values", wno, len(values))
		return nil
	}
}
