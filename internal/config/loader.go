package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if NAMEPULSE_CONFIG is set
//  3. env (prefix NAMEPULSE_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("NAMEPULSE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: NAMEPULSE_ADDR, NAMEPULSE_TOP_LIST_SIZE, ...
	// Map env keys like NAMEPULSE_TOP_LIST_SIZE -> top_list_size (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("NAMEPULSE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "namepulse_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case len(c.Decades) == 0:
		return fmt.Errorf("%w: decades must not be empty", ErrInvalidConfig)
	case c.TopListSize <= 0:
		return fmt.Errorf("%w: top_list_size must be positive", ErrInvalidConfig)
	case c.EvergreenMinDecades <= 0:
		return fmt.Errorf("%w: evergreen_min_decades must be positive", ErrInvalidConfig)
	}
	return nil
}
