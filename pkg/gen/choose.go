package gen

import (
	"fmt"

	"github.com/nomagicln/quickgen/pkg/rand"
)

// Signed is the set of signed integer types Choose can draw from.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Choose returns a generator of uniformly distributed integers in the
// inclusive range [low, high], ignoring the size parameter. Choose(x, x)
// always yields x. Panics if low > high.
//
// The draw is bias-free: rather than reducing a raw 64-bit value modulo the
// range width, values below the rejection threshold are redrawn so every
// output is equally likely regardless of width.
func Choose[T Signed](low, high T) Gen[T] {
	if low > high {
		panic(fmt.Sprintf("gen: Choose: low (%d) > high (%d)", low, high))
	}
	// Width of the range as an unsigned count; wraps to 0 only for the full
	// 64-bit domain, where the raw draw is already uniform.
	width := uint64(high) - uint64(low) + 1
	if width == 0 {
		return func(r rand.State, _ int) T {
			v, _ := r.Next()
			return T(v)
		}
	}
	threshold := -width % width
	return func(r rand.State, _ int) T {
		v, next := r.Next()
		for v < threshold {
			v, next = next.Next()
		}
		return T(uint64(low) + v%width)
	}
}
