// RNG utilities shared by initialization and rounds.
//
// Goals:
//   - Determinism: same seed ⇒ identical runs, regardless of worker count.
//   - Independence: one stream per (round, particle); no *rand.Rand is shared
//     across goroutines.

package swarm

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier with the SplitMix64
// finalizer so neighbouring streams are decorrelated.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// taskRNG returns the stream of particle idx in round (round 0 is
// initialization).
func taskRNG(seed int64, round, idx int) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	stream := uint64(round)<<32 | uint64(uint32(idx))
	return rngFromSeed(deriveSeed(seed, stream))
}
