package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the APP_*, STORAGE_* and CONFIG variables described by the
// env tags of [StructuredConfig]. Unset variables leave zero values for the
// later sources and the defaults to fill.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
