package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const (
	envNormlabConfig = "NORMLAB_CONFIG"
	envNormlabAddr   = "NORMLAB_ADDR"
)

// Config represents the normlab configuration file (~/.config/normlab/config.yaml).
// Numeric fields are pointers so we can distinguish "not set" from zero values.
type Config struct {
	// Lab defaults
	DimM *float64 `yaml:"dim_m"`
	DimK *float64 `yaml:"dim_k"`
	DimN *float64 `yaml:"dim_n"`
	Norm string   `yaml:"norm"`
	Seed *int64   `yaml:"seed"`

	// Output
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Server
	ServerAddress string `yaml:"server_address"`
	SessionLimit  *int64 `yaml:"session_limit"`
}

func configPath() string {
	if p := strings.TrimSpace(os.Getenv(envNormlabConfig)); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "normlab", "config.yaml")
}

// applyLabConfig applies config file defaults to the shared lab flag
// variables when the corresponding CLI flag was not explicitly set.
func applyLabConfig(c *cli.Command, cfg Config) {
	if cfg.DimM != nil && !c.IsSet("m") {
		dimM = *cfg.DimM
	}
	if cfg.DimK != nil && !c.IsSet("k") {
		dimK = *cfg.DimK
	}
	if cfg.DimN != nil && !c.IsSet("n") {
		dimN = *cfg.DimN
	}
	if cfg.Norm != "" && !c.IsSet("norm") {
		normName = cfg.Norm
	}
	if cfg.Seed != nil && !c.IsSet("seed") {
		seedFlag = *cfg.Seed
	}
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		logFormat = cfg.LogFormat
	}
}

// applyServeConfig applies serve defaults. The listen address resolves
// flag first, then NORMLAB_ADDR, then the config file.
func applyServeConfig(c *cli.Command, cfg Config, addr *string, sessionLimit *int64) {
	if !c.IsSet("addr") {
		if env := strings.TrimSpace(os.Getenv(envNormlabAddr)); env != "" {
			*addr = env
		} else if cfg.ServerAddress != "" {
			*addr = cfg.ServerAddress
		}
	}
	if cfg.SessionLimit != nil && !c.IsSet("session-limit") {
		*sessionLimit = *cfg.SessionLimit
	}
}

// LoadConfig reads the config file. Returns a zero Config if the file doesn't exist.
func LoadConfig() Config {
	path := configPath()
	if path == "" {
		return Config{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}
