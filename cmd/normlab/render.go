package main

import (
	"fmt"
	"io"

	"github.com/samcharles93/normlab/pkg/lab"
	"github.com/samcharles93/normlab/pkg/mat"
)

// maxPrintDim is the largest dimension rendered element by element.
// Bigger matrices print as a shape line only.
const maxPrintDim = 8

func printSnapshot(w io.Writer, snap lab.Snapshot) {
	p := snap.Params
	fmt.Fprintf(w, "dims: %s  seed: %d\n", p.Dims, p.Seed)
	fmt.Fprintf(w, "A init: %s\n", p.A)
	fmt.Fprintf(w, "B init: %s\n", p.B)
	printMatrix(w, "A", snap.A)
	printMatrix(w, "B", snap.B)
	printMatrix(w, "C", snap.C)
	printNorms(w, snap)
}

func printNorms(w io.Writer, snap lab.Snapshot) {
	fmt.Fprintf(w, "%s norms: A=%.4f  B=%.4f  C=%.4f\n",
		snap.Params.Norm, snap.Norms.A, snap.Norms.B, snap.Norms.C)
}

func printMatrix(w io.Writer, name string, m mat.Matrix) {
	fmt.Fprintf(w, "%s (%dx%d):\n", name, m.R, m.C)
	if m.R > maxPrintDim || m.C > maxPrintDim {
		fmt.Fprintln(w, "  (too large to print)")
		return
	}
	for i := 0; i < m.R; i++ {
		for _, v := range m.Row(i) {
			fmt.Fprintf(w, " %9.4f", v)
		}
		fmt.Fprintln(w)
	}
}
