package gen

import (
	"fmt"

	"github.com/nomagicln/quickgen/pkg/rand"
)

// VectorOf returns a generator of slices holding exactly k values drawn
// independently from g, in draw order. k == 0 yields an empty slice. Panics
// if k is negative.
func VectorOf[T any](k int, g Gen[T]) Gen[[]T] {
	if k < 0 {
		panic(fmt.Sprintf("gen: VectorOf: negative count %d", k))
	}
	return func(r rand.State, size int) []T {
		out := make([]T, k)
		for i := range out {
			var draw rand.State
			draw, r = r.Split()
			out[i] = g(draw, size)
		}
		return out
	}
}

// ListOf returns a generator of slices of g values whose length is uniform in
// [0, n] at ambient size n.
func ListOf[T any](g Gen[T]) Gen[[]T] {
	return Sized(func(n int) Gen[[]T] {
		return FlatMap(Choose(0, n), func(k int) Gen[[]T] {
			return VectorOf(k, g)
		})
	})
}

// ListOf1 is ListOf with a non-empty guarantee: the length is uniform in
// [1, max(1, n)], so the result always holds at least one element.
func ListOf1[T any](g Gen[T]) Gen[[]T] {
	return Sized(func(n int) Gen[[]T] {
		if n < 1 {
			n = 1
		}
		return FlatMap(Choose(1, n), func(k int) Gen[[]T] {
			return VectorOf(k, g)
		})
	})
}
