// Package config assembles the CLI's runtime settings from, in order of
// increasing precedence: built-in defaults, a JSON file (-c/-config),
// environment variables, and command-line flags.
package config

import "time"

// Config holds runtime settings for the povcli client.
//
// Fields:
//   - BaseURL: root of the backend REST API, including the /api/ prefix.
//   - DatabasePath: path of the local SQLite file holding session state.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	BaseURL        string        `env:"POVCLI_BASE_URL, overwrite"`
	DatabasePath   string        `env:"POVCLI_DB_PATH, overwrite"`
	RequestTimeout time.Duration `env:"POVCLI_REQUEST_TIMEOUT, overwrite"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:9000/api/"
	c.DatabasePath = "povcli.db"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
