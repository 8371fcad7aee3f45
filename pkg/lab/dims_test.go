package lab

import (
	"math"
	"testing"
)

func TestClampDim(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want int
	}{
		{"in range", 7, 7},
		{"lower bound", 1, 1},
		{"upper bound", 32, 32},
		{"below range", 0, 1},
		{"negative", -5, 1},
		{"above range", 33, 32},
		{"rounds down", 4.4, 4},
		{"rounds up", 4.5, 5},
		{"rounds into range", 31.6, 32},
		{"huge", 1e300, 32},
		{"nan", math.NaN(), 1},
		{"pos inf", math.Inf(1), 32},
		{"neg inf", math.Inf(-1), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampDim(tc.in); got != tc.want {
				t.Fatalf("ClampDim(%g) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestClampDimIdempotent(t *testing.T) {
	inputs := []float64{-10, 0, 0.5, 1, 15.7, 32, 33, 1e6, math.NaN(), math.Inf(1)}
	for _, v := range inputs {
		once := ClampDim(v)
		twice := ClampDim(float64(once))
		if once != twice {
			t.Fatalf("ClampDim(%g): once %d, twice %d", v, once, twice)
		}
	}
}

func TestClampDims(t *testing.T) {
	d := ClampDims(0, 4.6, 99)
	want := Dims{M: 1, K: 5, N: 32}
	if d != want {
		t.Fatalf("ClampDims = %+v, want %+v", d, want)
	}
	if got := (Dims{M: -1, K: 8, N: 40}).Clamp(); got != (Dims{M: 1, K: 8, N: 32}) {
		t.Fatalf("Clamp = %+v", got)
	}
}

func TestDimsString(t *testing.T) {
	if got := (Dims{M: 2, K: 3, N: 4}).String(); got != "2x3x4" {
		t.Fatalf("String = %q", got)
	}
}
