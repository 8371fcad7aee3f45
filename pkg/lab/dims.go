package lab

import (
	"fmt"
	"math"
)

// Dimension bounds. Matrices stay small enough to render in a terminal and
// cheap enough to regenerate on every parameter change.
const (
	DimMin = 1
	DimMax = 32
)

// Dims fixes the shapes of the matrix triple: A is MxK, B is KxN, and the
// product C is MxN. K is shared, so the product always exists.
type Dims struct {
	M, K, N int
}

// ClampDim sanitizes one requested dimension: round to nearest integer,
// then clamp into [DimMin, DimMax]. NaN coerces to DimMin. Comparisons run
// in the float domain so overflowing inputs never reach the integer
// conversion.
func ClampDim(v float64) int {
	if math.IsNaN(v) {
		return DimMin
	}
	r := math.Round(v)
	if r < DimMin {
		return DimMin
	}
	if r > DimMax {
		return DimMax
	}
	return int(r)
}

// ClampDims applies ClampDim per axis.
func ClampDims(m, k, n float64) Dims {
	return Dims{M: ClampDim(m), K: ClampDim(k), N: ClampDim(n)}
}

// Clamp returns d with each axis forced into [DimMin, DimMax].
func (d Dims) Clamp() Dims {
	return ClampDims(float64(d.M), float64(d.K), float64(d.N))
}

func (d Dims) String() string {
	return fmt.Sprintf("%dx%dx%d", d.M, d.K, d.N)
}
