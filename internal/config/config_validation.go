// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.SecretKey == "" || cfg.App.QuizAdvanceDelay <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Username == "" || cfg.Password == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
