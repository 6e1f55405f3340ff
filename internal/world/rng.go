package world

import "math"

// Wichmann-Hill constants.
const (
	whSeedRange = 30000

	whMul1, whMod1 = 171, 30269
	whMul2, whMod2 = 172, 30307
	whMul3, whMod3 = 170, 30323
)

// RNG is a Wichmann-Hill generator. Its whole state is three registers derived
// from the seed, so the same seed always yields the same sequence.
type RNG struct {
	s1, s2, s3 int64
}

// NewRNG normalizes seed into [1, 30000] and seeds all three registers with it.
func NewRNG(seed int64) *RNG {
	if seed < 1 {
		seed += whSeedRange * (-seed/whSeedRange + 1)
	}
	seed = (seed-1)%whSeedRange + 1
	return &RNG{s1: seed, s2: seed, s3: seed}
}

func (r *RNG) step() {
	r.s1 = (whMul1 * r.s1) % whMod1
	r.s2 = (whMul2 * r.s2) % whMod2
	r.s3 = (whMul3 * r.s3) % whMod3
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	r.step()
	sum := float64(r.s1)/whMod1 + float64(r.s2)/whMod2 + float64(r.s3)/whMod3
	return math.Mod(sum, 1.0)
}

// Intn returns a uniform value in [0, n). It returns 0 when n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Floor(r.Float64() * float64(n)))
}
