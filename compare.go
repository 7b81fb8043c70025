package seq

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b hold the same elements in the same order.
// Only the observable windows are compared; capacity never affects the
// result. Two empty containers are equal.
func Equal[T comparable](a, b *Container[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is Equal with a caller-supplied element equivalence, allowing
// the two containers to hold different element types.
func EqualFunc[T1, T2 any](a *Container[T1], b *Container[T2], eq func(T1, T2) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Compare orders a and b lexicographically: elements are compared pairwise
// from index 0, the first inequality decides, and if one container is a
// strict prefix of the other the shorter orders first. The result is -1, 0
// or +1 in the manner of cmp.Compare.
func Compare[T cmp.Ordered](a, b *Container[T]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// CompareFunc is Compare with a caller-supplied element ordering, allowing
// the two containers to hold different element types.
func CompareFunc[T1, T2 any](a *Container[T1], b *Container[T2], compare func(T1, T2) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), compare)
}

// Less reports whether a orders strictly before b under Compare.
func Less[T cmp.Ordered](a, b *Container[T]) bool {
	return Compare(a, b) < 0
}
