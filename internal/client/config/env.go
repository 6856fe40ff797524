package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// parseEnv overlays Config with values from POVCLI_* environment
// variables. Fields without a corresponding variable keep their current
// value, so the layering with JSON and flags is preserved.
func parseEnv(cfg *Config) {
	if err := envconfig.Process(context.Background(), cfg); err != nil {
		panic(err)
	}
}
