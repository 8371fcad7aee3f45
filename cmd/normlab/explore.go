package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samcharles93/normlab/pkg/lab"
	"github.com/urfave/cli/v3"
)

func exploreCmd() *cli.Command {
	return &cli.Command{
		Name:  "explore",
		Usage: "Interactively explore initialiser settings and norms",
		Flags: labCommandFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := LoadConfig()
			applyLabConfig(cmd, cfg)
			params, err := paramsFromFlags()
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			sess := newExploreSession(params, os.Stdout)
			fmt.Fprintln(os.Stderr, "Interactive mode. Type help for commands, exit to quit.")
			sess.show()
			var history []string
			for {
				line, err := readInteractiveLine("lab> ", &history)
				if err != nil {
					break
				}
				if !sess.handle(line) {
					break
				}
			}
			return nil
		},
	}
}

// exploreSession is the state behind the explore loop.
type exploreSession struct {
	lab     *lab.Lab
	initial lab.Params
	out     io.Writer
}

func newExploreSession(p lab.Params, out io.Writer) *exploreSession {
	return &exploreSession{lab: lab.New(p), initial: p, out: out}
}

// handle applies one input line. It reports false when the loop should
// stop.
func (s *exploreSession) handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	switch fields[0] {
	case "exit", "quit":
		return false
	case "help":
		s.printHelp()
	case "show":
		s.show()
	case "set":
		if len(fields) != 3 {
			fmt.Fprintln(s.out, "usage: set <param> <value>")
			return true
		}
		s.set(fields[1], fields[2])
	case "norm":
		if len(fields) != 2 {
			fmt.Fprintln(s.out, "usage: norm <rms|l2|l1>")
			return true
		}
		s.set("norm", fields[1])
	case "seed":
		if len(fields) != 2 {
			fmt.Fprintln(s.out, "usage: seed <n>")
			return true
		}
		s.set("seed", fields[1])
	case "reset":
		s.lab = lab.New(s.initial)
		fmt.Fprintln(s.out, "reset to starting parameters")
		s.show()
	default:
		fmt.Fprintf(s.out, "unknown command %q (try help)\n", fields[0])
	}
	return true
}

func (s *exploreSession) set(name, value string) {
	p := s.lab.Snapshot().Params
	if err := applyKnob(&p, name, value); err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	snap, regenerated := s.lab.Set(p)
	if regenerated {
		fmt.Fprintln(s.out, "regenerated")
	} else {
		fmt.Fprintln(s.out, "matrices unchanged")
	}
	printNorms(s.out, snap)
}

func (s *exploreSession) show() {
	printSnapshot(s.out, s.lab.Snapshot())
}

func (s *exploreSession) printHelp() {
	fmt.Fprintln(s.out, "commands:")
	fmt.Fprintln(s.out, "  show                 print the current snapshot")
	fmt.Fprintln(s.out, "  set <param> <value>  change one parameter and recompute")
	fmt.Fprintln(s.out, "  norm <rms|l2|l1>     switch the norm kind")
	fmt.Fprintln(s.out, "  seed <n>             re-seed the draw stream")
	fmt.Fprintln(s.out, "  reset                return to the starting parameters")
	fmt.Fprintln(s.out, "  exit                 leave")
	fmt.Fprintf(s.out, "params: %s\n", strings.Join(knobNames, ", "))
}
