package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON loads the config file at path. Unknown keys are rejected so a
// misspelled setting does not silently fall back to its default.
func parseJSON(path string) (*StructuredConfig, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()

	var cfg StructuredConfig
	if err = dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs %s: %w", path, err)
	}

	return &cfg, nil
}
