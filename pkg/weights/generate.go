package weights

import (
	"math"

	"github.com/samcharles93/normlab/pkg/mat"
)

func glorotStd(fan FanInfo) float64 {
	return math.Sqrt(2 / float64(fan.In+fan.Out))
}

// Generate materialises an r x c matrix from cfg, drawing randomness from
// src. The fill order is row-major, so a seeded source reproduces the same
// matrix for the same configuration. Gaussian schemes consume two uniforms
// per element, the constant scheme none. An unknown Kind fills with zeros;
// boundaries that want an error should check Kind.Valid first.
func Generate(r, c int, cfg Config, fan FanInfo, src Source) mat.Matrix {
	m := mat.New(r, c)
	switch cfg.Kind {
	case Constant:
		v := cfg.Constant * cfg.Scale
		for i := range m.Data {
			m.Data[i] = v
		}
	case Normal, Xavier:
		std := cfg.EffectiveStd(fan)
		for i := range m.Data {
			m.Data[i] = (cfg.Mean + std*StdNormal(src)) * cfg.Scale
		}
	}
	return m
}
