package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samcharles93/normlab/pkg/lab"
	"github.com/samcharles93/normlab/pkg/mat"
	"github.com/samcharles93/normlab/pkg/weights"
)

// knobNames lists every parameter applyKnob understands, for help and
// error text.
var knobNames = []string{
	"m", "k", "n", "norm", "seed",
	"a.kind", "a.mean", "a.std", "a.const", "a.scale",
	"b.kind", "b.mean", "b.std", "b.const", "b.scale",
}

// applyKnob sets one named lab parameter on p from its string form.
// Dimension knobs go through the usual clamp, so fractional or
// out-of-range values are accepted.
func applyKnob(p *lab.Params, name, value string) error {
	switch name {
	case "m", "k", "n":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s: %q is not a number", name, value)
		}
		d := lab.ClampDim(f)
		switch name {
		case "m":
			p.Dims.M = d
		case "k":
			p.Dims.K = d
		case "n":
			p.Dims.N = d
		}
		return nil
	case "norm":
		kind := mat.NormKind(value)
		if !kind.Valid() {
			return fmt.Errorf("norm: unknown kind %q (want one of %v)", value, mat.NormKinds())
		}
		p.Norm = kind
		return nil
	case "seed":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("seed: %q is not an integer", value)
		}
		p.Seed = n
		return nil
	case "a.kind", "b.kind":
		kind := weights.Kind(value)
		if !kind.Valid() {
			return fmt.Errorf("%s: unknown init kind %q (want one of %v)", name, value, weights.Kinds())
		}
		if name == "a.kind" {
			p.A.Kind = kind
		} else {
			p.B.Kind = kind
		}
		return nil
	case "a.mean", "a.std", "a.const", "a.scale",
		"b.mean", "b.std", "b.const", "b.scale":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s: %q is not a number", name, value)
		}
		cfg := &p.A
		if strings.HasPrefix(name, "b.") {
			cfg = &p.B
		}
		switch name[2:] {
		case "mean":
			cfg.Mean = f
		case "std":
			cfg.Std = f
		case "const":
			cfg.Constant = f
		case "scale":
			cfg.Scale = f
		}
		return nil
	default:
		return fmt.Errorf("unknown parameter %q (known: %s)", name, strings.Join(knobNames, ", "))
	}
}
