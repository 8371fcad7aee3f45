// Package lab implements the recompute controller behind every normlab
// surface. A Lab owns one exploration state: it regenerates the weight
// matrices A and B and their product C when a generation-relevant parameter
// changes, and recomputes norms in place when only the reported norm moves.
// Every result is published as a wholesale snapshot.
package lab

import (
	"github.com/samcharles93/normlab/pkg/mat"
	"github.com/samcharles93/normlab/pkg/weights"
)

// Norms holds the norm of each matrix in the triple under the snapshot's
// norm kind.
type Norms struct {
	A, B, C float64
}

// Snapshot is one published result: the parameters it was derived from, the
// matrix triple, and their norms. Snapshots are value-complete; replacing
// one never mutates a previously returned one, so callers may hold on to
// them across parameter changes.
type Snapshot struct {
	Params  Params
	A, B, C mat.Matrix
	Norms   Norms
}

// Lab is the single-owner state machine over Params. It is not internally
// locked; concurrent callers serialize access, the way the HTTP session
// store guards each lab with its session lock.
type Lab struct {
	params Params
	src    weights.Source
	snap   Snapshot
}

// New builds a lab at p, seeds its draw stream from p.Seed, and publishes
// the first snapshot. Dims are clamped into range first.
func New(p Params) *Lab {
	p = normalize(p)
	l := &Lab{params: p, src: weights.NewSource(p.Seed)}
	l.snap = l.build(p)
	return l
}

// Snapshot returns the currently published result.
func (l *Lab) Snapshot() Snapshot {
	return l.snap
}

// Set moves the lab to next and returns the resulting snapshot. The second
// result reports whether the matrices were regenerated.
//
// The decision compares the generation tuples (dims, both configs, seed) of
// the current and next state by value. When they differ, A is regenerated,
// then B, then C is recomputed, and the snapshot is replaced wholesale; a
// seed change re-seeds the draw stream first, any other change consumes
// fresh draws from the ongoing stream. When only the norm kind moved, the
// norms are recomputed over the existing matrices, which stay bit-identical
// and cost no draws. Dims are clamped before comparison.
func (l *Lab) Set(next Params) (Snapshot, bool) {
	next = normalize(next)
	prev := l.params
	if next.genTuple() == prev.genTuple() {
		if next.Norm == prev.Norm {
			return l.snap, false
		}
		snap := l.snap
		snap.Params = next
		snap.Norms = computeNorms(snap.A, snap.B, snap.C, next.Norm)
		l.params = next
		l.snap = snap
		return snap, false
	}
	if next.Seed != prev.Seed {
		l.src = weights.NewSource(next.Seed)
	}
	l.params = next
	l.snap = l.build(next)
	return l.snap, true
}

func (l *Lab) build(p Params) Snapshot {
	a := weights.Generate(p.Dims.M, p.Dims.K, p.A, weights.FanInfo{In: p.Dims.K, Out: p.Dims.M}, l.src)
	b := weights.Generate(p.Dims.K, p.Dims.N, p.B, weights.FanInfo{In: p.Dims.K, Out: p.Dims.N}, l.src)
	c, err := mat.Mul(a, b)
	if err != nil {
		panic("lab: matrix shapes out of sync: " + err.Error())
	}
	return Snapshot{
		Params: p,
		A:      a,
		B:      b,
		C:      c,
		Norms:  computeNorms(a, b, c, p.Norm),
	}
}

func computeNorms(a, b, c mat.Matrix, kind mat.NormKind) Norms {
	return Norms{
		A: mat.Norm(a, kind),
		B: mat.Norm(b, kind),
		C: mat.Norm(c, kind),
	}
}
