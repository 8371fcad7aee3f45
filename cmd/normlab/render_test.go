package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/samcharles93/normlab/pkg/lab"
	"github.com/samcharles93/normlab/pkg/mat"
)

func TestPrintMatrix(t *testing.T) {
	out := &bytes.Buffer{}
	printMatrix(out, "A", mat.FromRows([][]float64{{1.5, -2}, {3, 4}}))
	got := out.String()
	if !strings.Contains(got, "A (2x2):") {
		t.Fatalf("missing shape line:\n%s", got)
	}
	for _, want := range []string{"1.5000", "-2.0000", "3.0000", "4.0000"} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing element %q:\n%s", want, got)
		}
	}
}

func TestPrintMatrixTooLarge(t *testing.T) {
	out := &bytes.Buffer{}
	printMatrix(out, "C", mat.New(9, 9))
	got := out.String()
	if !strings.Contains(got, "C (9x9):") {
		t.Fatalf("missing shape line:\n%s", got)
	}
	if !strings.Contains(got, "too large to print") {
		t.Fatalf("expected shape-only rendering:\n%s", got)
	}
	if strings.Contains(got, "0.0000") {
		t.Fatalf("elements should not be rendered:\n%s", got)
	}
}

func TestPrintSnapshot(t *testing.T) {
	out := &bytes.Buffer{}
	printSnapshot(out, lab.New(onesParams()).Snapshot())
	got := out.String()
	for _, want := range []string{
		"dims: 2x2x2  seed: 1",
		"A init: constant value=1 scale=1",
		"B init: constant value=1 scale=1",
		"C (2x2):",
		"l1 norms: A=4.0000  B=4.0000  C=8.0000",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("snapshot output missing %q:\n%s", want, got)
		}
	}
}
