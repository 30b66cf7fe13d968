package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	args    []string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	// defaults only fill what no source has set
	if err := mergo.Merge(config, Default()); err != nil {
		return nil, fmt.Errorf("error merging default configs: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg, err := parseEnv()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, rest, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	b.args = rest
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, jsonCfg)
	return b
}
