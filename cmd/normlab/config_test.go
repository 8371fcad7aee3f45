package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v3"
)

// runWithFlags parses args against flags and hands the parsed command
// to check inside the action.
func runWithFlags(t *testing.T, flags []cli.Flag, args []string, check func(c *cli.Command)) {
	t.Helper()
	cmd := &cli.Command{
		Name:  "test",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			check(c)
			return nil
		},
	}
	if err := cmd.Run(context.Background(), append([]string{"test"}, args...)); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("env path overrides default location", func(t *testing.T) {
		path := writeConfigFile(t, "dim_m: 9\nnorm: l2\nseed: 7\nserver_address: 127.0.0.1:9999\nsession_limit: 3\n")
		t.Setenv(envNormlabConfig, path)

		cfg := LoadConfig()
		if cfg.DimM == nil || *cfg.DimM != 9 {
			t.Fatalf("unexpected dim_m: %+v", cfg.DimM)
		}
		if cfg.Norm != "l2" {
			t.Fatalf("unexpected norm: %q", cfg.Norm)
		}
		if cfg.Seed == nil || *cfg.Seed != 7 {
			t.Fatalf("unexpected seed: %+v", cfg.Seed)
		}
		if cfg.ServerAddress != "127.0.0.1:9999" {
			t.Fatalf("unexpected server address: %q", cfg.ServerAddress)
		}
		if cfg.SessionLimit == nil || *cfg.SessionLimit != 3 {
			t.Fatalf("unexpected session limit: %+v", cfg.SessionLimit)
		}
	})

	t.Run("missing file yields zero config", func(t *testing.T) {
		t.Setenv(envNormlabConfig, filepath.Join(t.TempDir(), "absent.yaml"))

		cfg := LoadConfig()
		if cfg.DimM != nil || cfg.Norm != "" || cfg.ServerAddress != "" {
			t.Fatalf("expected zero config, got %+v", cfg)
		}
	})

	t.Run("malformed yaml yields zero config", func(t *testing.T) {
		path := writeConfigFile(t, "dim_m: [not a number\n")
		t.Setenv(envNormlabConfig, path)

		cfg := LoadConfig()
		if cfg.DimM != nil {
			t.Fatalf("expected zero config, got %+v", cfg)
		}
	})
}

func TestApplyLabConfig(t *testing.T) {
	nine := 9.0
	seven := int64(7)
	cfg := Config{DimM: &nine, Norm: "l2", Seed: &seven}

	t.Run("config fills unset flags", func(t *testing.T) {
		runWithFlags(t, labFlags(), nil, func(c *cli.Command) {
			applyLabConfig(c, cfg)
			if dimM != 9 {
				t.Fatalf("unexpected m: got %v want 9", dimM)
			}
			if normName != "l2" {
				t.Fatalf("unexpected norm: got %q want l2", normName)
			}
			if seedFlag != 7 {
				t.Fatalf("unexpected seed: got %d want 7", seedFlag)
			}
		})
	})

	t.Run("explicit flag wins over config", func(t *testing.T) {
		runWithFlags(t, labFlags(), []string{"--m", "5", "--norm", "l1"}, func(c *cli.Command) {
			applyLabConfig(c, cfg)
			if dimM != 5 {
				t.Fatalf("unexpected m: got %v want 5", dimM)
			}
			if normName != "l1" {
				t.Fatalf("unexpected norm: got %q want l1", normName)
			}
			if seedFlag != 7 {
				t.Fatalf("unset seed should come from config: got %d", seedFlag)
			}
		})
	})
}

func TestApplyServeConfig(t *testing.T) {
	serveFlags := func(addr *string, limit *int64) []cli.Flag {
		return []cli.Flag{
			&cli.StringFlag{Name: "addr", Value: "127.0.0.1:8418", Destination: addr},
			&cli.Int64Flag{Name: "session-limit", Value: 64, Destination: limit},
		}
	}

	t.Run("env addr wins over config", func(t *testing.T) {
		t.Setenv(envNormlabAddr, "10.0.0.1:1234")
		var addr string
		var limit int64
		cfg := Config{ServerAddress: "127.0.0.1:9999"}
		runWithFlags(t, serveFlags(&addr, &limit), nil, func(c *cli.Command) {
			applyServeConfig(c, cfg, &addr, &limit)
			if addr != "10.0.0.1:1234" {
				t.Fatalf("unexpected addr: got %q", addr)
			}
		})
	})

	t.Run("config addr used when env and flag absent", func(t *testing.T) {
		t.Setenv(envNormlabAddr, "")
		var addr string
		var limit int64
		three := int64(3)
		cfg := Config{ServerAddress: "127.0.0.1:9999", SessionLimit: &three}
		runWithFlags(t, serveFlags(&addr, &limit), nil, func(c *cli.Command) {
			applyServeConfig(c, cfg, &addr, &limit)
			if addr != "127.0.0.1:9999" {
				t.Fatalf("unexpected addr: got %q", addr)
			}
			if limit != 3 {
				t.Fatalf("unexpected session limit: got %d", limit)
			}
		})
	})

	t.Run("explicit flag wins over env and config", func(t *testing.T) {
		t.Setenv(envNormlabAddr, "10.0.0.1:1234")
		var addr string
		var limit int64
		cfg := Config{ServerAddress: "127.0.0.1:9999"}
		runWithFlags(t, serveFlags(&addr, &limit), []string{"--addr", "0.0.0.0:80", "--session-limit", "5"}, func(c *cli.Command) {
			applyServeConfig(c, cfg, &addr, &limit)
			if addr != "0.0.0.0:80" {
				t.Fatalf("unexpected addr: got %q", addr)
			}
			if limit != 5 {
				t.Fatalf("unexpected session limit: got %d", limit)
			}
		})
	})
}
