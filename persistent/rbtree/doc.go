/*
Package rbtree implements a persistent (immutable) in-memory red-black tree, used as an
ordered set without duplicates.

Every insertion returns a new incarnation of the tree, leaving the original untouched.
Unmodified subtrees are shared between incarnations, only the path from the root down to
the insertion point is copied. Re-balancing follows Chris Okasaki's formulation of
red-black trees for functional languages ("Red-Black Trees in a Functional Setting",
J. Functional Programming, 1999): a black node with a red child having a red child is
rewritten into a red node with two black children.

	tree := rbtree.Tree[string]{}.Insert("functional").Insert("c")
	fmt.Println(tree.Values())    // [c functional]

Trees may be built concurrently from a batch of values, see ParallelInsert. As nodes are
never mutated, no locks are involved.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package rbtree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.rbtree'.
func tracer() tracing.Trace {
	return tracing.Select("fp.rbtree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("rbtree: "+msg, msgargs...)
		panic(msg)
	}
}
