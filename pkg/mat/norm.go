package mat

import "math"

// NormKind selects which norm the engine computes over a matrix.
type NormKind string

const (
	NormRMS NormKind = "rms"
	NormL2  NormKind = "l2"
	NormL1  NormKind = "l1"
)

// NormKinds lists the supported kinds in display order.
func NormKinds() []NormKind {
	return []NormKind{NormRMS, NormL2, NormL1}
}

// Valid reports whether k names a supported norm.
func (k NormKind) Valid() bool {
	switch k {
	case NormRMS, NormL2, NormL1:
		return true
	}
	return false
}

// Norm computes the requested norm over the flattened elements of m.
// An unknown kind yields 0 rather than an error; boundaries that want to
// reject bad kinds early should check Valid first.
func Norm(m Matrix, kind NormKind) float64 {
	switch kind {
	case NormRMS:
		return RMS(m)
	case NormL2:
		return L2(m)
	case NormL1:
		return L1(m)
	}
	return 0
}

// RMS returns sqrt(mean(x^2)) over the elements of m. An empty matrix
// yields 0, never NaN.
func RMS(m Matrix) float64 {
	n := len(m.Data)
	if n == 0 {
		return 0
	}
	var sum float64
	for _, v := range m.Data {
		sum += v * v
	}
	return math.Sqrt(sum / float64(n))
}

// L2 returns the Frobenius norm sqrt(sum(x^2)) over the elements of m.
func L2(m Matrix) float64 {
	var sum float64
	for _, v := range m.Data {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// L1 returns the sum of absolute values over the elements of m.
func L1(m Matrix) float64 {
	var sum float64
	for _, v := range m.Data {
		sum += math.Abs(v)
	}
	return sum
}
