// Package config holds process configuration for the restoctl and devbackend binaries.
package config

import "time"

// Config groups the settings of every binary; each one reads only the sections it needs.
type Config struct {
	REST    RESTConfig    `koanf:"rest"`
	Logging LoggingConfig `koanf:"logging"`
	Backend BackendConfig `koanf:"backend"`
}

// RESTConfig configures the API client.
type RESTConfig struct {
	BaseURL   string        `koanf:"base_url"`
	Timeout   time.Duration `koanf:"timeout"`
	Token     string        `koanf:"token"`
	UserAgent string        `koanf:"user_agent"`
}

// LoggingConfig mirrors logging.Config plus the directory for daily log files.
type LoggingConfig struct {
	Level     string `koanf:"level"`
	Format    string `koanf:"format"`
	Directory string `koanf:"directory"`
}

// BackendConfig configures the development backend.
type BackendConfig struct {
	Addr      string        `koanf:"addr"`
	JWTSecret string        `koanf:"jwt_secret"`
	TokenTTL  time.Duration `koanf:"token_ttl"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		REST: RESTConfig{
			BaseURL:   "http://localhost:8000/api/v1",
			Timeout:   10 * time.Second,
			UserAgent: "restoctl/1.0",
		},
		Logging: LoggingConfig{
			Level:     "info",
			Format:    "text",
			Directory: "./logs",
		},
		Backend: BackendConfig{
			Addr:      ":8000",
			JWTSecret: "restobot-dev-secret",
			TokenTTL:  12 * time.Hour,
		},
	}
}
