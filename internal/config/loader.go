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
//  2. YAML file if PROCSVC_CONFIG points to one
//  3. env vars with the PROCSVC_ prefix (PROCSVC_ADDR, PROCSVC_LOG_LEVEL, ...)
//  4. the bare LOG_LEVEL and SERVICE_SECRET variables, kept for compatibility
//     with existing deployments of this service
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("PROCSVC_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Map env keys like PROCSVC_MAX_BODY_BYTES -> max_body_bytes to match the
	// koanf tags on the struct.
	envProvider := env.Provider("PROCSVC_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "procsvc_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Compatibility overrides used by the original deployment scripts.
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("SERVICE_SECRET"); v != "" {
		cfg.ServiceSecret = v
	}

	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if cfg.ServiceSecret == "" {
		return nil, fmt.Errorf("%w: service_secret must not be empty", ErrInvalidConfig)
	}
	return &cfg, nil
}
