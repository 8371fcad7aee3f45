// Package mat provides the dense matrix type used throughout normlab
// together with the product and norm kernels the lab is built on.
//
// Matrices are small by construction (dimensions are clamped to 32), so the
// kernels favour clarity over blocking or vectorisation.
package mat

// Matrix is a dense row-major matrix of float64 values.
//
// R and C are the number of rows and columns. Data holds the flattened
// values; element (i, j) lives at Data[i*C+j]. Matrix does not perform any
// memory safety beyond the checks performed by Go's slice types;
// out-of-range indices will panic.
type Matrix struct {
	R, C int
	Data []float64
}

// New allocates a zero-initialised matrix with the given number of rows and
// columns.
func New(r, c int) Matrix {
	if r < 0 || c < 0 {
		panic("negative dimension for matrix")
	}
	return Matrix{
		R:    r,
		C:    c,
		Data: make([]float64, r*c),
	}
}

// FromRows builds a matrix from row slices. All rows must have equal length.
func FromRows(rows [][]float64) Matrix {
	r := len(rows)
	if r == 0 {
		return Matrix{}
	}
	c := len(rows[0])
	m := New(r, c)
	for i, row := range rows {
		if len(row) != c {
			panic("ragged rows for matrix")
		}
		copy(m.Row(i), row)
	}
	return m
}

// Row returns a view of the i-th row. Modifications to the returned slice
// update the underlying matrix values.
func (m Matrix) Row(i int) []float64 {
	if i < 0 || i >= m.R {
		panic("row index out of range")
	}
	start := i * m.C
	return m.Data[start : start+m.C]
}

// At returns the element at row i, column j.
func (m Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.R || j < 0 || j >= m.C {
		panic("matrix index out of range")
	}
	return m.Data[i*m.C+j]
}

// Set stores v at row i, column j.
func (m Matrix) Set(i, j int, v float64) {
	if i < 0 || i >= m.R || j < 0 || j >= m.C {
		panic("matrix index out of range")
	}
	m.Data[i*m.C+j] = v
}

// Len reports the number of elements.
func (m Matrix) Len() int { return m.R * m.C }

// Clone returns a deep copy that shares no backing data with m.
func (m Matrix) Clone() Matrix {
	out := Matrix{R: m.R, C: m.C}
	if m.Data != nil {
		out.Data = make([]float64, len(m.Data))
		copy(out.Data, m.Data)
	}
	return out
}

// ToRows materialises the matrix as a slice of row slices, the shape
// presentation layers and JSON encoders want. The result shares no backing
// data with m.
func (m Matrix) ToRows() [][]float64 {
	rows := make([][]float64, m.R)
	for i := range rows {
		rows[i] = make([]float64, m.C)
		copy(rows[i], m.Row(i))
	}
	return rows
}
