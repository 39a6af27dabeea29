// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client application settings.
type ClientApp struct {
	// SecretKey seals credential store values.
	SecretKey string
	// QuizAdvanceDelay is the pause after a correct quiz answer.
	QuizAdvanceDelay time.Duration
	// LogFile is the client log destination.
	LogFile string
}

// ClientAdapter holds the REST API connection settings.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientDB contains the local SQLite settings.
type ClientDB struct {
	DSN string
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds the client view from every configuration source
// and validates it.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			SecretKey:        cfg.App.SecretKey,
			QuizAdvanceDelay: cfg.App.QuizAdvanceDelay,
			LogFile:          cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.App.QuizAdvanceDelay == 0 {
		clientCfg.App.QuizAdvanceDelay = DefaultQuizAdvanceDelay
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}
