// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults, Load(ctx) to layer
//   file and environment sources on top.
// - External errors are wrapped with this package's sentinel kinds.
package config

import (
	"runtime"

	"github.com/ianmperryman/hockey-team-selection/internal/domain/balance"
	"github.com/ianmperryman/hockey-team-selection/internal/domain/placement"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8090".
	Addr string `koanf:"addr"`

	// ForwardsTarget and DefenceTarget fix each team's positional shape.
	ForwardsTarget int `koanf:"forwards_target"`
	DefenceTarget  int `koanf:"defence_target"`

	// Iterations bounds the randomized attempts per search.
	Iterations int `koanf:"iterations"`

	// EarlyStopDiff is the skill gap at which a search stops early.
	EarlyStopDiff int `koanf:"early_stop_diff"`

	// Workers sets how many goroutines run attempts concurrently.
	Workers int `koanf:"workers"`

	// Team naming used on output sheets and jersey labels.
	TeamAName   string `koanf:"team_a_name"`
	TeamBName   string `koanf:"team_b_name"`
	TeamAJersey string `koanf:"team_a_jersey"`
	TeamBJersey string `koanf:"team_b_jersey"`

	// OutputFile is the default result workbook path for file-based runs.
	OutputFile string `koanf:"output_file"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":8090",
		ForwardsTarget: placement.DefaultForwardsTarget,
		DefenceTarget:  placement.DefaultDefenceTarget,
		Iterations:     balance.DefaultIterations,
		EarlyStopDiff:  0,
		Workers:        runtime.NumCPU(),
		TeamAName:      "Light Team",
		TeamBName:      "Dark Team",
		TeamAJersey:    "LIGHT",
		TeamBJersey:    "DARK",
		OutputFile:     "game_night_teams.xlsx",
	}
}

// Targets returns the positional shape as a placement value.
func (c *Config) Targets() placement.Targets {
	return placement.Targets{Forwards: c.ForwardsTarget, Defence: c.DefenceTarget}
}
