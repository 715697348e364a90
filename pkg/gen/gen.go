// Package gen implements a small algebra of composable, size-parameterized
// random value generators.
//
// A Gen[T] is a pure function from (random state, size) to a value.
// Generators are built bottom-up from primitives like Choose and Elements,
// combined with selection and collection combinators, and optionally narrowed
// with SuchThat. Nothing draws randomness until a generator is invoked with a
// concrete state and size.
//
// Precondition violations (empty alternative lists, inverted bounds,
// non-positive weights) panic: they are programming errors at the call site,
// not conditions a caller can meaningfully handle.
package gen

import "github.com/nomagicln/quickgen/pkg/rand"

// Gen produces a value of type T from a random state and a size. It must be
// referentially transparent: invoking it twice with equal inputs yields equal
// results. Size is a non-negative knob for how large or complex generated
// values should be; callers conventionally keep it in [0, 100].
type Gen[T any] func(r rand.State, size int) T

// Pure returns a generator that always yields v, consuming no randomness.
func Pure[T any](v T) Gen[T] {
	return func(rand.State, int) T { return v }
}

// Map transforms the output of g with f.
func Map[T, U any](g Gen[T], f func(T) U) Gen[U] {
	return func(r rand.State, size int) U {
		return f(g(r, size))
	}
}

// FlatMap sequences two generators: the value drawn from g picks the next
// generator via k. The state is split so that g and the continuation draw
// from independent sub-streams; no state is ever consumed twice.
func FlatMap[T, U any](g Gen[T], k func(T) Gen[U]) Gen[U] {
	return func(r rand.State, size int) U {
		r1, r2 := r.Split()
		return k(g(r1, size))(r2, size)
	}
}

// Sequence combines a slice of generators into a generator of slices, each
// element drawn from its own independent sub-stream, in order.
func Sequence[T any](gens []Gen[T]) Gen[[]T] {
	return func(r rand.State, size int) []T {
		out := make([]T, len(gens))
		for i, g := range gens {
			var r1 rand.State
			r1, r = r.Split()
			out[i] = g(r1, size)
		}
		return out
	}
}

// Sized builds a generator that inspects the ambient size before deciding
// behavior: at size n it evaluates f(n) and invokes the result with the same
// n. It touches no randomness of its own.
func Sized[T any](f func(int) Gen[T]) Gen[T] {
	return func(r rand.State, size int) T {
		return f(size)(r, size)
	}
}

// Resize invokes g with the fixed size n, ignoring whatever size the caller
// supplied. Useful to locally override size for a sub-generator.
func Resize[T any](n int, g Gen[T]) Gen[T] {
	return func(r rand.State, _ int) T {
		return g(r, n)
	}
}

// Variant derives a generator behaviorally identical to g but drawing from an
// independent random sub-stream keyed by seed. Two variants of the same
// generator with distinct seeds produce uncorrelated output even when invoked
// on the same parent state; the same seed on the same state reproduces the
// same stream.
//
// The derivation walks the splittable-RNG tree along the seed's binary
// representation: split, take the left child on an even seed and the right on
// an odd one, halve, and stop once the seed reaches the fixed point of
// halving.
func Variant[T any](seed int64, g Gen[T]) Gen[T] {
	return func(r rand.State, size int) T {
		s := seed
		for {
			left, right := r.Split()
			if s%2 == 0 {
				r = left
			} else {
				r = right
			}
			half := s / 2
			if half == s {
				break
			}
			s = half
		}
		return g(r, size)
	}
}
