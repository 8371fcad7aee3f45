package weights

import (
	"math"
	"testing"
)

func sampleMoments(data []float64) (mean, std float64) {
	n := float64(len(data))
	for _, v := range data {
		mean += v
	}
	mean /= n
	var ss float64
	for _, v := range data {
		d := v - mean
		ss += d * d
	}
	return mean, math.Sqrt(ss / n)
}

func TestGenerateShape(t *testing.T) {
	src := NewSource(1)
	m := Generate(3, 7, DefaultConfig(), FanInfo{In: 7, Out: 3}, src)
	if m.R != 3 || m.C != 7 || len(m.Data) != 21 {
		t.Fatalf("unexpected shape %dx%d len %d", m.R, m.C, len(m.Data))
	}
}

func TestGenerateConstantExact(t *testing.T) {
	cfg := Config{Kind: Constant, Constant: 2.5, Scale: 3}
	src := &seqSource{vals: []float64{0.5}}
	m := Generate(4, 4, cfg, FanInfo{}, src)
	for i, v := range m.Data {
		if v != 7.5 {
			t.Fatalf("element %d = %g, want exactly 7.5", i, v)
		}
	}
	if src.draws != 0 {
		t.Fatalf("constant fill consumed %d draws, want 0", src.draws)
	}
}

func TestGenerateXavierDerivedStd(t *testing.T) {
	// Std == 0 must fall back to sqrt(2/(in+out)).
	fan := FanInfo{In: 128, Out: 128}
	cfg := Config{Kind: Xavier, Scale: 1}
	m := Generate(128, 128, cfg, fan, NewSource(11))

	want := math.Sqrt(2.0 / 256.0)
	mean, std := sampleMoments(m.Data)
	if math.Abs(mean) > 0.005 {
		t.Fatalf("sample mean %g, want near 0", mean)
	}
	if math.Abs(std-want) > 0.03*want {
		t.Fatalf("sample std %g, want near %g", std, want)
	}
}

func TestGenerateXavierExplicitStd(t *testing.T) {
	cfg := Config{Kind: Xavier, Std: 0.5, Scale: 1}
	m := Generate(128, 128, cfg, FanInfo{In: 4, Out: 4}, NewSource(12))

	_, std := sampleMoments(m.Data)
	if math.Abs(std-0.5) > 0.015 {
		t.Fatalf("sample std %g, want near 0.5", std)
	}
}

func TestGenerateNormalMeanScale(t *testing.T) {
	cfg := Config{Kind: Normal, Mean: 1, Std: 0.25, Scale: 2}
	m := Generate(128, 128, cfg, FanInfo{}, NewSource(13))

	mean, std := sampleMoments(m.Data)
	if math.Abs(mean-2) > 0.02 {
		t.Fatalf("sample mean %g, want near 2", mean)
	}
	if math.Abs(std-0.5) > 0.02 {
		t.Fatalf("sample std %g, want near 0.5", std)
	}
}

func TestGenerateDrawsTwoUniformsPerElement(t *testing.T) {
	src := &seqSource{vals: []float64{0.3, 0.7}}
	Generate(3, 3, Config{Kind: Normal, Std: 1, Scale: 1}, FanInfo{}, src)
	if src.draws != 18 {
		t.Fatalf("normal 3x3 consumed %d draws, want 18", src.draws)
	}

	src = &seqSource{vals: []float64{0.3, 0.7}}
	Generate(2, 2, Config{Kind: Xavier, Scale: 1}, FanInfo{In: 2, Out: 2}, src)
	if src.draws != 8 {
		t.Fatalf("xavier 2x2 consumed %d draws, want 8", src.draws)
	}
}

func TestGenerateUnknownKindZeros(t *testing.T) {
	src := &seqSource{vals: []float64{0.5}}
	m := Generate(2, 3, Config{Kind: "he", Scale: 1}, FanInfo{}, src)
	for i, v := range m.Data {
		if v != 0 {
			t.Fatalf("element %d = %g, want 0", i, v)
		}
	}
	if src.draws != 0 {
		t.Fatalf("unknown kind consumed %d draws, want 0", src.draws)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := Config{Kind: Normal, Mean: 0, Std: 1, Scale: 1}
	a := Generate(8, 8, cfg, FanInfo{}, NewSource(7))
	b := Generate(8, 8, cfg, FanInfo{}, NewSource(7))
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			t.Fatalf("element %d differs: %g vs %g", i, a.Data[i], b.Data[i])
		}
	}
}
