// Package rand provides an immutable, splittable source of randomness.
//
// Unlike math/rand there is no shared mutable state: every draw returns the
// value together with the successor state, and Split deterministically forks
// a state into two independent children. This makes generation reproducible
// and race-free even when sub-generators run in parallel.
package rand

import "math/bits"

// State is an immutable randomness source. Equal states always produce equal
// results, so callers can replay any draw sequence from a saved state.
type State interface {
	// Next returns a uniformly distributed 64-bit value and the successor
	// state. The receiver is unchanged.
	Next() (uint64, State)

	// Split deterministically derives two independent child states. The
	// children are statistically independent of each other and of the
	// receiver's own Next stream.
	Split() (State, State)
}

// goldenGamma is the odd approximation of 2^64/phi used as the default
// additive increment.
const goldenGamma = 0x9e3779b97f4a7c15

type splitMix struct {
	seed  uint64
	gamma uint64 // always odd
}

// New returns a State seeded deterministically from seed.
func New(seed int64) State {
	return splitMix{seed: uint64(seed), gamma: goldenGamma}
}

func (s splitMix) Next() (uint64, State) {
	next := splitMix{seed: s.seed + s.gamma, gamma: s.gamma}
	return mix64(next.seed), next
}

func (s splitMix) Split() (State, State) {
	childSeed, s1 := s.next()
	childGamma, s2 := s1.next()
	left := s2
	right := splitMix{seed: childSeed, gamma: mixGamma(childGamma)}
	return left, right
}

// next is Next without the interface boxing, for internal chaining.
func (s splitMix) next() (uint64, splitMix) {
	n := splitMix{seed: s.seed + s.gamma, gamma: s.gamma}
	return mix64(n.seed), n
}

// mix64 is the SplitMix64 output finalizer (Stafford variant 13).
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// mixGamma derives an odd gamma with enough bit transitions to keep the
// child's additive sequence well distributed.
func mixGamma(z uint64) uint64 {
	z = (z ^ (z >> 33)) * 0xff51afd7ed558ccd
	z = (z ^ (z >> 33)) * 0xc4ceb9fe1a85ec53
	z = (z ^ (z >> 33)) | 1
	if bits.OnesCount64(z^(z>>1)) < 24 {
		z ^= 0xaaaaaaaaaaaaaaaa
	}
	return z
}
