package gen

import "github.com/nomagicln/quickgen/pkg/rand"

// Found is the outcome of a bounded predicate search: either a value
// satisfying the predicate, or an explicit "nothing found in budget" result.
// Exhaustion is an expected outcome, not an error.
type Found[T any] struct {
	Value T
	OK    bool
}

// SuchThatOption narrows g to values satisfying pred, within a bounded
// attempt budget. At ambient size n (floored to 1) it makes at most n
// attempts; attempt k draws from g resized to 2k+n, so repeated failures are
// compensated with progressively larger candidates. The first satisfying
// value is returned with OK set; if every attempt fails the result has OK
// unset. Always terminates within n draws.
func SuchThatOption[T any](g Gen[T], pred func(T) bool) Gen[Found[T]] {
	return Sized(func(n int) Gen[Found[T]] {
		if n < 1 {
			n = 1
		}
		return func(r rand.State, _ int) Found[T] {
			for k := 0; k < n; k++ {
				var attempt rand.State
				attempt, r = r.Split()
				v := g(attempt, 2*k+n)
				if pred(v) {
					return Found[T]{Value: v, OK: true}
				}
			}
			return Found[T]{}
		}
	})
}

// SuchThat narrows g to values satisfying pred. It runs the bounded search of
// SuchThatOption and, on success, yields that value directly with no further
// randomness consumed. If the search exhausts its budget, the whole search is
// retried with the size parameter incremented by one, and so on.
//
// The retry has no upper bound: if pred is never satisfiable by any value g
// can produce, SuchThat does not terminate. Callers are responsible for
// supplying predicates that g can eventually satisfy; use SuchThatOption when
// exhaustion must be observable instead.
func SuchThat[T any](g Gen[T], pred func(T) bool) Gen[T] {
	return FlatMap(SuchThatOption(g, pred), func(f Found[T]) Gen[T] {
		if f.OK {
			return Pure(f.Value)
		}
		return Sized(func(n int) Gen[T] {
			return Resize(n+1, SuchThat(g, pred))
		})
	})
}
