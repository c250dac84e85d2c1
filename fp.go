/*
Package fpsort sorts and de-duplicates the words of a text by folding them into a
persistent red-black tree.

The heavy lifting is done in package persistent/rbtree. This package holds a couple of
small functional helpers shared by the tree and by the text-processing collaborators.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package fpsort

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// FoldL folds a slice from the left, i.e. computes
//
//	f(…f(f(zero, xs[0]), xs[1])…, xs[n-1])
//
// For an empty slice, zero is returned.
func FoldL[T, A any](xs []T, zero A, f func(A, T) A) A {
	acc := zero
	for _, x := range xs {
		acc = f(acc, x)
	}
	return acc
}
