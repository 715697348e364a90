package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOneOfPicksEveryAlternative(t *testing.T) {
	g := OneOf(Pure("a"), Pure("b"), Pure("c"))

	seen := make(map[string]int)
	for _, v := range sample(g, 101, 0, 3000) {
		seen[v]++
	}

	assert.Len(t, seen, 3)
	for v, count := range seen {
		assert.InDeltaf(t, 1000, count, 250, "alternative %q picked %d times", v, count)
	}
}

func TestOneOfPanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { OneOf[int]() })
}

func TestFrequencyRespectsWeights(t *testing.T) {
	g := Frequency(
		Weighted[string]{Weight: 1, Gen: Pure("a")},
		Weighted[string]{Weight: 3, Gen: Pure("b")},
	)

	seen := make(map[string]int)
	for _, v := range sample(g, 103, 0, 20000) {
		seen[v]++
	}

	ratio := float64(seen["b"]) / float64(seen["a"])
	assert.InDelta(t, 3.0, ratio, 0.5, "b:a should converge to 3:1, got %d:%d", seen["b"], seen["a"])
}

func TestFrequencyTiesBreakByOrder(t *testing.T) {
	// A draw of exactly an entry's cumulative weight belongs to that entry:
	// with total 2, draw 1 picks the first entry and draw 2 the second, so
	// both must appear.
	g := Frequency(
		Weighted[string]{Weight: 1, Gen: Pure("first")},
		Weighted[string]{Weight: 1, Gen: Pure("second")},
	)

	seen := make(map[string]int)
	for _, v := range sample(g, 107, 0, 1000) {
		seen[v]++
	}
	assert.Len(t, seen, 2)
}

func TestFrequencyPanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { Frequency[int]() })
}

func TestFrequencyPanicsOnNonPositiveWeight(t *testing.T) {
	assert.Panics(t, func() {
		Frequency(Weighted[int]{Weight: 0, Gen: Pure(1)})
	})
	assert.Panics(t, func() {
		Frequency(
			Weighted[int]{Weight: 2, Gen: Pure(1)},
			Weighted[int]{Weight: -1, Gen: Pure(2)},
		)
	})
}

func TestElementsPicksOnlyGivenValues(t *testing.T) {
	g := Elements(2, 3, 5, 7)

	seen := make(map[int]int)
	for _, v := range sample(g, 109, 0, 4000) {
		seen[v]++
	}

	assert.Len(t, seen, 4)
	for v, count := range seen {
		assert.InDeltaf(t, 1000, count, 250, "element %d picked %d times", v, count)
	}
}

func TestElementsPanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { Elements[string]() })
}

func TestGrowingElementsClampsAtSizeZero(t *testing.T) {
	g := GrowingElements("a", "b", "c", "d", "e")

	for _, v := range sample(g, 113, 0, 200) {
		assert.Equal(t, "a", v, "size 0 restricts selection to the first element")
	}
}

func TestGrowingElementsReachesFullListAtLargeSize(t *testing.T) {
	g := GrowingElements("a", "b", "c", "d", "e")

	seen := make(map[string]int)
	for _, v := range sample(g, 127, 100, 2000) {
		seen[v]++
	}
	assert.Len(t, seen, 5, "size 100 should make the whole list eligible")
}

func TestGrowingElementsPrefixWidensWithSize(t *testing.T) {
	g := GrowingElements(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	maxAt := func(size int) int {
		max := 0
		for _, v := range sample(g, 131, size, 500) {
			if v > max {
				max = v
			}
		}
		return max
	}

	small := maxAt(3)
	large := maxAt(100)
	assert.Less(t, small, large)
}

func TestGrowingElementsPanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { GrowingElements[int]() })
}
