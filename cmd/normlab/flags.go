package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/samcharles93/normlab/internal/logger"
	"github.com/samcharles93/normlab/pkg/lab"
	"github.com/samcharles93/normlab/pkg/mat"
	"github.com/samcharles93/normlab/pkg/weights"
	"github.com/urfave/cli/v3"
)

var (
	dimM      float64
	dimK      float64
	dimN      float64
	normName  string
	seedFlag  int64
	logLevel  string
	logFormat string
	debug     bool
)

// initFlagVals collects the initialiser flags for one operand matrix.
type initFlagVals struct {
	kind     string
	mean     float64
	std      float64
	constant float64
	scale    float64
}

var (
	initA initFlagVals
	initB initFlagVals
)

func labFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{
			Name:        "m",
			Usage:       "rows of A (clamped to 1..32)",
			Value:       4,
			Destination: &dimM,
		},
		&cli.Float64Flag{
			Name:        "k",
			Usage:       "columns of A and rows of B (clamped to 1..32)",
			Value:       4,
			Destination: &dimK,
		},
		&cli.Float64Flag{
			Name:        "n",
			Usage:       "columns of B (clamped to 1..32)",
			Value:       4,
			Destination: &dimN,
		},
		&cli.StringFlag{
			Name:        "norm",
			Usage:       "norm kind (rms, l2, l1)",
			Value:       "rms",
			Destination: &normName,
		},
		&cli.Int64Flag{
			Name:        "seed",
			Usage:       "seed for the weight draw stream",
			Value:       42,
			Destination: &seedFlag,
		},
	}
}

func initFlags(operand string, dst *initFlagVals) []cli.Flag {
	upper := strings.ToUpper(operand)
	return []cli.Flag{
		&cli.StringFlag{
			Name:        operand + "-init",
			Usage:       "initialiser for " + upper + " (xavier, normal, constant)",
			Value:       "xavier",
			Destination: &dst.kind,
		},
		&cli.Float64Flag{
			Name:        operand + "-mean",
			Usage:       "mean shift for " + upper,
			Destination: &dst.mean,
		},
		&cli.Float64Flag{
			Name:        operand + "-std",
			Usage:       "standard deviation for " + upper + " (0 derives the xavier value)",
			Destination: &dst.std,
		},
		&cli.Float64Flag{
			Name:        operand + "-const",
			Usage:       "fill value for the constant initialiser",
			Destination: &dst.constant,
		},
		&cli.Float64Flag{
			Name:        operand + "-scale",
			Usage:       "post-sample multiplier for " + upper,
			Value:       1,
			Destination: &dst.scale,
		},
	}
}

// labCommandFlags is the shared flag set for commands that build a lab.
func labCommandFlags() []cli.Flag {
	flags := labFlags()
	flags = append(flags, initFlags("a", &initA)...)
	flags = append(flags, initFlags("b", &initB)...)
	return flags
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json, text)",
			Value:       "pretty",
			Destination: &logFormat,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "enable debug logging (shorthand for --log-level=debug)",
			Destination: &debug,
		},
	}
}

// newLogger builds the process logger from the logging flags.
func newLogger() logger.Logger {
	level := logger.ParseLevel(logLevel)
	if debug {
		level = slog.LevelDebug
	}
	switch logFormat {
	case "json":
		return logger.JSON(os.Stderr, level)
	case "text":
		return logger.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	default:
		return logger.Pretty(os.Stderr, level)
	}
}

// paramsFromFlags assembles the lab parameters the current flag values
// describe. Dimensions are clamped here so every command publishes the
// same shape it would compute with.
func paramsFromFlags() (lab.Params, error) {
	a, err := initConfig("a", initA)
	if err != nil {
		return lab.Params{}, err
	}
	b, err := initConfig("b", initB)
	if err != nil {
		return lab.Params{}, err
	}
	kind := mat.NormKind(normName)
	if !kind.Valid() {
		return lab.Params{}, fmt.Errorf("unknown norm kind %q (want one of %v)", normName, mat.NormKinds())
	}
	return lab.Params{
		Dims: lab.Dims{
			M: lab.ClampDim(dimM),
			K: lab.ClampDim(dimK),
			N: lab.ClampDim(dimN),
		},
		A:    a,
		B:    b,
		Norm: kind,
		Seed: seedFlag,
	}, nil
}

func initConfig(operand string, v initFlagVals) (weights.Config, error) {
	kind := weights.Kind(v.kind)
	if !kind.Valid() {
		return weights.Config{}, fmt.Errorf("%s: unknown init kind %q (want one of %v)", operand, v.kind, weights.Kinds())
	}
	return weights.Config{
		Kind:     kind,
		Mean:     v.mean,
		Std:      v.std,
		Constant: v.constant,
		Scale:    v.scale,
	}, nil
}
