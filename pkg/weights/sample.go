package weights

import (
	"math"
	"math/rand"
)

// Source yields uniform draws in [0, 1). *rand.Rand satisfies it, and tests
// inject fixed sequences to pin down exact outputs.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded uniform source. The same seed always produces
// the same draw sequence.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// normEpsilon keeps the Box-Muller log argument strictly positive when the
// source returns exactly 0.
const normEpsilon = 1e-12

// StdNormal draws one standard normal value via the Box-Muller transform.
// Exactly two uniform samples are consumed per call; the sine half of the
// pair is discarded so the draw count per element stays fixed.
func StdNormal(src Source) float64 {
	u1 := src.Float64()
	if u1 == 0 {
		u1 = normEpsilon
	}
	u2 := src.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
