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

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if RANKED_CONFIG is set
//  3. env (prefix RANKED_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("RANKED_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoadConfig, path, err)
		}
	}

	// Environment variables: RANKED_FILE, RANKED_BUCKET_COUNT, ...
	// Keys map to koanf tags with underscores preserved.
	envProvider := env.Provider("RANKED_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "ranked_")
		return s
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

func (c *Config) validate() error {
	switch {
	case c.File == "":
		return fmt.Errorf("%w: file must not be empty", ErrInvalidConfig)
	case c.BucketCount <= 0:
		return fmt.Errorf("%w: bucket_count must be positive, got %d", ErrInvalidConfig, c.BucketCount)
	case c.DeviationThreshold <= 0:
		return fmt.Errorf("%w: deviation_threshold must be positive, got %v", ErrInvalidConfig, c.DeviationThreshold)
	case c.DefaultDeviation < 0:
		return fmt.Errorf("%w: default_deviation must not be negative, got %v", ErrInvalidConfig, c.DefaultDeviation)
	case c.RandomPairProbability < 0 || c.RandomPairProbability > 1:
		return fmt.Errorf("%w: random_pair_probability must be in [0,1], got %v", ErrInvalidConfig, c.RandomPairProbability)
	case c.DecayFactor <= 0:
		return fmt.Errorf("%w: decay_factor must be positive, got %v", ErrInvalidConfig, c.DecayFactor)
	}
	return nil
}
