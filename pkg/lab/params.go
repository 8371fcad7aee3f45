package lab

import (
	"github.com/samcharles93/normlab/pkg/mat"
	"github.com/samcharles93/normlab/pkg/weights"
)

// Params is the whole exploration state as one immutable value: matrix
// shapes, one init config per weight matrix, the norm to report, and the
// seed of the draw stream.
type Params struct {
	Dims Dims
	A    weights.Config
	B    weights.Config
	Norm mat.NormKind
	Seed int64
}

// DefaultParams returns the state a fresh lab starts from.
func DefaultParams() Params {
	return Params{
		Dims: Dims{M: 4, K: 4, N: 4},
		A:    weights.DefaultConfig(),
		B:    weights.DefaultConfig(),
		Norm: mat.NormRMS,
		Seed: 42,
	}
}

// genTuple is the generation-relevant subset of Params. Two states with
// equal tuples produce identical matrices, so the controller compares
// tuples by value to decide whether to regenerate. Norm is absent:
// switching it must never touch the matrices. A tuple containing
// NaN never compares equal and therefore always regenerates.
type genTuple struct {
	dims Dims
	a, b weights.Config
	seed int64
}

func (p Params) genTuple() genTuple {
	return genTuple{dims: p.Dims, a: p.A, b: p.B, seed: p.Seed}
}

// normalize forces dims into range so that out-of-range requests which
// collapse to the current shape compare equal and skip regeneration.
func normalize(p Params) Params {
	p.Dims = p.Dims.Clamp()
	return p
}
