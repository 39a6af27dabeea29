// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ServerConfig is the reference backend view of [StructuredConfig].
type ServerConfig struct {
	HTTPAddress string
	Username    string
	Password    string
}

// GetServerConfig builds the reference backend view from every configuration
// source and validates it.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		HTTPAddress: cfg.Server.HTTPAddress,
		Username:    cfg.Server.Username,
		Password:    cfg.Server.Password,
	}
	if serverCfg.HTTPAddress == "" {
		serverCfg.HTTPAddress = DefaultServerAddress
	}

	if err := serverCfg.validate(); err != nil {
		return nil, err
	}
	return serverCfg, nil
}
