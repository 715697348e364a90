package gen

import (
	"fmt"
	"math"
)

// OneOf returns a generator that picks one of gens uniformly and delegates to
// it. Panics if no generators are given.
func OneOf[T any](gens ...Gen[T]) Gen[T] {
	if len(gens) == 0 {
		panic("gen: OneOf: no generators given")
	}
	return FlatMap(Choose(0, len(gens)-1), func(i int) Gen[T] {
		return gens[i]
	})
}

// Weighted pairs a positive integer weight with a generator for use with
// Frequency. Order matters only for tie-breaking, not fairness.
type Weighted[T any] struct {
	Weight int
	Gen    Gen[T]
}

// Frequency picks among weighted alternatives with probability proportional
// to each entry's share of the total weight: a uniform draw in [1, total] is
// walked through the list in order, each entry claiming its weight's range
// first. Panics if weighted is empty or any weight is not positive.
func Frequency[T any](weighted ...Weighted[T]) Gen[T] {
	if len(weighted) == 0 {
		panic("gen: Frequency: no alternatives given")
	}
	total := 0
	for _, w := range weighted {
		if w.Weight <= 0 {
			panic(fmt.Sprintf("gen: Frequency: weight %d is not positive", w.Weight))
		}
		total += w.Weight
	}
	return FlatMap(Choose(1, total), func(k int) Gen[T] {
		for _, w := range weighted {
			if k <= w.Weight {
				return w.Gen
			}
			k -= w.Weight
		}
		// Unreachable: k is within [1, total].
		return weighted[len(weighted)-1].Gen
	})
}

// Elements returns a generator that picks one of xs uniformly, with no
// further transformation. Panics if xs is empty.
func Elements[T any](xs ...T) Gen[T] {
	if len(xs) == 0 {
		panic("gen: Elements: no elements given")
	}
	return Map(Choose(0, len(xs)-1), func(i int) T {
		return xs[i]
	})
}

// GrowingElements picks uniformly from a prefix of xs that widens
// logarithmically with the ambient size: at size 0 only the first element is
// eligible, and for sizes near 100 the whole list is. Useful when xs is
// ordered from simplest to most complex. Panics if xs is empty.
func GrowingElements[T any](xs ...T) Gen[T] {
	if len(xs) == 0 {
		panic("gen: GrowingElements: no elements given")
	}
	return Sized(func(n int) Gen[T] {
		k := int(math.Log(float64(n+1)) * float64(len(xs)) / math.Log(100))
		if k < 1 {
			k = 1
		}
		if k > len(xs) {
			k = len(xs)
		}
		return Elements(xs[:k]...)
	})
}
