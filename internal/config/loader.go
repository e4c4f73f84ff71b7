package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering sources. Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if HTS_CONFIG is set
//  3. env (prefix HTS_)
func Load(ctx context.Context) (*Config, error) {
	_ = ctx

	base := New()

	k := koanf.New(".")

	if path := os.Getenv("HTS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: HTS_ADDR, HTS_ITERATIONS, HTS_FORWARDS_TARGET...
	// Underscores are preserved to match the koanf struct tags.
	envProvider := env.Provider("HTS_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "hts_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the search layer does not defend against.
func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.ForwardsTarget < 1:
		return fmt.Errorf("%w: forwards_target must be at least 1", ErrInvalidConfig)
	case c.DefenceTarget < 1:
		return fmt.Errorf("%w: defence_target must be at least 1", ErrInvalidConfig)
	case c.Iterations < 1:
		return fmt.Errorf("%w: iterations must be at least 1", ErrInvalidConfig)
	case c.EarlyStopDiff < 0:
		return fmt.Errorf("%w: early_stop_diff must not be negative", ErrInvalidConfig)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1", ErrInvalidConfig)
	}
	return nil
}
