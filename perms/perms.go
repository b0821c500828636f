// Package perms generates permutations lazily.
package perms

import (
	"iter"
	"slices"
)

// Permutations yields every ordering of values using Heap's algorithm.
// Each yielded slice is a fresh copy owned by the consumer.
// values is not modified.
func Permutations(values []int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		a := slices.Clone(values)
		if !yield(slices.Clone(a)) {
			return
		}
		// iterative form: c encodes the recursion stack
		c := make([]int, len(a))
		for i := 1; i < len(a); {
			if c[i] < i {
				if i%2 == 0 {
					a[0], a[i] = a[i], a[0]
				} else {
					a[c[i]], a[i] = a[i], a[c[i]]
				}
				if !yield(slices.Clone(a)) {
					return
				}
				c[i]++
				i = 1
			} else {
				c[i] = 0
				i++
			}
		}
	}
}

// Count returns n!, the number of permutations of n distinct values.
func Count(n int) int {
	ret := 1
	for i := 2; i <= n; i++ {
		ret *= i
	}
	return ret
}
