package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/samcharles93/normlab/internal/api"
	"github.com/samcharles93/normlab/pkg/lab"
	"github.com/urfave/cli/v3"
)

func reportCmd() *cli.Command {
	var (
		jsonOut bool
		sweep   string
	)

	return &cli.Command{
		Name:  "report",
		Usage: "Generate one snapshot and print matrices and norms",
		Flags: append(labCommandFlags(),
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "emit the snapshot as JSON",
				Destination: &jsonOut,
			},
			&cli.StringFlag{
				Name:        "sweep",
				Usage:       "sweep one parameter over a range, e.g. a.scale=0:4:0.5",
				Destination: &sweep,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := LoadConfig()
			applyLabConfig(cmd, cfg)
			params, err := paramsFromFlags()
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			if sweep != "" {
				if err := runSweep(os.Stdout, params, sweep); err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
				return nil
			}

			snap := lab.New(params).Snapshot()
			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(api.NewSnapshotDTO(snap))
			}
			printSnapshot(os.Stdout, snap)
			return nil
		},
	}
}

// sweepRange is one parsed --sweep argument.
type sweepRange struct {
	knob string
	lo   float64
	hi   float64
	step float64
}

const maxSweepSteps = 512

func parseSweep(s string) (sweepRange, error) {
	knob, rng, ok := strings.Cut(s, "=")
	if !ok {
		return sweepRange{}, fmt.Errorf("sweep %q: want knob=lo:hi:step", s)
	}
	parts := strings.Split(rng, ":")
	if len(parts) != 3 {
		return sweepRange{}, fmt.Errorf("sweep %q: want knob=lo:hi:step", s)
	}
	var vals [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return sweepRange{}, fmt.Errorf("sweep %q: %q is not a number", s, p)
		}
		vals[i] = f
	}
	sr := sweepRange{knob: strings.TrimSpace(knob), lo: vals[0], hi: vals[1], step: vals[2]}
	if sr.step <= 0 {
		return sweepRange{}, fmt.Errorf("sweep %q: step must be positive", s)
	}
	if sr.hi < sr.lo {
		return sweepRange{}, fmt.Errorf("sweep %q: hi is below lo", s)
	}
	if n := int((sr.hi-sr.lo)/sr.step) + 1; n > maxSweepSteps {
		return sweepRange{}, fmt.Errorf("sweep %q: %d steps, max %d", s, n, maxSweepSteps)
	}
	return sr, nil
}

// values expands the range into the points visited, lo first. Each point
// is derived from lo by multiplication so repeated addition cannot
// drift past hi.
func (s sweepRange) values() []float64 {
	var out []float64
	for i := 0; ; i++ {
		v := s.lo + float64(i)*s.step
		if v > s.hi+s.step*1e-9 {
			break
		}
		out = append(out, v)
	}
	return out
}

// runSweep prints the norm trajectory as one knob moves across a range.
// Every row rebuilds the lab from the same seed, so rows differ only by
// the swept value.
func runSweep(w io.Writer, base lab.Params, arg string) error {
	sr, err := parseSweep(arg)
	if err != nil {
		return err
	}
	scratch := base
	if err := applyKnob(&scratch, sr.knob, formatSweepValue(sr.lo)); err != nil {
		return err
	}

	fmt.Fprintf(w, "sweep %s (dims %s, seed %d, %s norms)\n", sr.knob, base.Dims, base.Seed, base.Norm)
	fmt.Fprintf(w, "%-12s %10s %10s %10s\n", sr.knob, "A", "B", "C")
	for _, v := range sr.values() {
		p := base
		if err := applyKnob(&p, sr.knob, formatSweepValue(v)); err != nil {
			return err
		}
		snap := lab.New(p).Snapshot()
		fmt.Fprintf(w, "%-12.6g %10.4f %10.4f %10.4f\n", v, snap.Norms.A, snap.Norms.B, snap.Norms.C)
	}
	return nil
}

func formatSweepValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
