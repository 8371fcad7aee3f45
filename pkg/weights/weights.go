// Package weights implements the initialization schemes the lab explores:
// xavier (Glorot), plain gaussian, and constant fills. Generation is
// deterministic given a seeded source, which is what makes experiments
// reproducible and comparable.
package weights

import "fmt"

// Kind names an initialization scheme.
type Kind string

const (
	Xavier   Kind = "xavier"
	Normal   Kind = "normal"
	Constant Kind = "constant"
)

// Kinds lists the supported schemes in display order.
func Kinds() []Kind {
	return []Kind{Xavier, Normal, Constant}
}

// Valid reports whether k names a supported scheme.
func (k Kind) Valid() bool {
	switch k {
	case Xavier, Normal, Constant:
		return true
	}
	return false
}

// Config describes how one matrix is initialized.
//
// Mean shifts gaussian draws, Std sets their spread, Constant is the fill
// value for the constant scheme, and Scale multiplies every generated value
// last. Fields that do not apply to a scheme are ignored by it. Values are
// taken as given; negative or non-finite fields propagate through the
// arithmetic unguarded.
type Config struct {
	Kind     Kind
	Mean     float64
	Std      float64
	Constant float64
	Scale    float64
}

// DefaultConfig returns the xavier configuration the lab starts from:
// zero mean, derived std, unit scale.
func DefaultConfig() Config {
	return Config{Kind: Xavier, Scale: 1}
}

// FanInfo carries the fan shape xavier derives its std from. For an m x k
// matrix applied as x -> Wx the fan-in is k and the fan-out is m.
type FanInfo struct {
	In, Out int
}

// EffectiveStd resolves the spread gaussian draws will use for the given
// fan shape. An explicit Std always wins; a xavier config with Std == 0
// derives sqrt(2/(fanIn+fanOut)).
func (c Config) EffectiveStd(fan FanInfo) float64 {
	if c.Kind == Xavier && c.Std == 0 {
		return glorotStd(fan)
	}
	return c.Std
}

func (c Config) String() string {
	switch c.Kind {
	case Constant:
		return fmt.Sprintf("constant value=%g scale=%g", c.Constant, c.Scale)
	case Xavier:
		if c.Std == 0 {
			return fmt.Sprintf("xavier mean=%g std=auto scale=%g", c.Mean, c.Scale)
		}
		return fmt.Sprintf("xavier mean=%g std=%g scale=%g", c.Mean, c.Std, c.Scale)
	case Normal:
		return fmt.Sprintf("normal mean=%g std=%g scale=%g", c.Mean, c.Std, c.Scale)
	}
	return string(c.Kind)
}
