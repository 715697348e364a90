// Package proptest provides shared property-based testing parameters and
// generators for this repository's gopter test suites.
package proptest

import (
	"reflect"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

// TestParameters returns the standard test parameters for property tests.
// Default: 1000 iterations for a good balance between coverage and speed.
func TestParameters() *gopter.TestParameters {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 1000
	return params
}

// FastTestParameters returns reduced-iteration parameters for property tests
// whose bodies are expensive (large sample statistics, recursive searches).
func FastTestParameters() *gopter.TestParameters {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 100
	return params
}

// Seeds generates root seeds for splittable random states.
func Seeds() gopter.Gen {
	return gen.Int64()
}

// Sizes generates ambient sizes in the conventional [0, 100] range.
func Sizes() gopter.Gen {
	return gen.IntRange(0, 100)
}

// Bounds generates ordered [low, high] pairs for range-draw tests.
func Bounds() gopter.Gen {
	return gen.IntRange(-1000, 1000).FlatMap(func(v interface{}) gopter.Gen {
		low := v.(int)
		return gen.IntRange(low, low+2000).Map(func(high int) []int {
			return []int{low, high}
		})
	}, reflect.TypeOf([]int{}))
}
