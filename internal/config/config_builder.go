package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected configs in order; non-zero fields of a later
// config override earlier ones.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

// withDotEnv loads variables from a .env file into the process environment.
// A missing file is not an error. It must run before withEnv.
func (b *configBuilder) withDotEnv(path string) *configBuilder {
	if err := loadDotEnv(path); err != nil {
		b.err = errors.Join(b.err, err)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

// withJSON appends the JSON file named by the last source that set a path.
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
