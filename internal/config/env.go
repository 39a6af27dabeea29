// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultDotEnvPath = ".env"

// parseEnv populates cfg from environment variables using the `env` and
// `envPrefix` tags of [StructuredConfig].
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotEnv loads path (or ".env") into the process environment without
// overriding variables that are already set.
func loadDotEnv(path string) error {
	if path == "" {
		path = defaultDotEnvPath
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading dotenv file %q: %w", path, err)
	}

	return nil
}
