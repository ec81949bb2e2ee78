package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix  = "RESTOBOT_"
	envFileVar = "RESTOBOT_CONFIG"
)

// Load builds a Config by layering, from low to high precedence:
//  1. defaults (New)
//  2. the YAML file named by RESTOBOT_CONFIG, if set
//  3. RESTOBOT_* environment variables, where RESTOBOT_REST_BASE_URL maps to rest.base_url
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := strings.TrimSpace(os.Getenv(envFileVar)); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrLoadConfig, path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("%w: environment: %v", ErrLoadConfig, err)
	}

	cfg := New()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey turns RESTOBOT_SECTION_FIELD_NAME into section.field_name.
func envKey(raw string) string {
	key := strings.ToLower(strings.TrimPrefix(raw, envPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// Validate checks the settings every binary depends on.
func (c *Config) Validate() error {
	parsed, err := url.Parse(strings.TrimSpace(c.REST.BaseURL))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%w: rest.base_url %q is not an absolute URL", ErrInvalidConfig, c.REST.BaseURL)
	}
	if c.REST.Timeout <= 0 {
		return fmt.Errorf("%w: rest.timeout must be positive", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Backend.Addr) == "" {
		return fmt.Errorf("%w: backend.addr must not be empty", ErrInvalidConfig)
	}
	return nil
}
