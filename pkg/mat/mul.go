package mat

import "errors"

// ErrShape reports operands whose inner dimensions do not agree.
var ErrShape = errors.New("mat: shape mismatch")

// Mul computes the dense product a*b. a must be r x k and b k x c; the
// result is r x c. Operands are read only.
func Mul(a, b Matrix) (Matrix, error) {
	if a.C != b.R {
		return Matrix{}, ErrShape
	}
	out := New(a.R, b.C)
	for i := 0; i < a.R; i++ {
		arow := a.Row(i)
		orow := out.Row(i)
		for kk := 0; kk < a.C; kk++ {
			av := arow[kk]
			brow := b.Row(kk)
			for j := 0; j < b.C; j++ {
				orow[j] += av * brow[j]
			}
		}
	}
	return out, nil
}
