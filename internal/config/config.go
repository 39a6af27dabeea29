// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the merged configuration shared by both binaries.
// Each binary reads its own view of it ([ClientConfig], [ServerConfig]).
type StructuredConfig struct {
	// App holds client application settings.
	App App `envPrefix:"APP_"`

	// Storage holds the device-local storage settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the address and timeout of the vocabulary REST API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds the reference backend settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional JSON config file merged last.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client application settings.
type App struct {
	// SecretKey derives the key that seals values in the credential store.
	// Env: APP_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// QuizAdvanceDelay is how long a solved quiz card stays on screen before
	// the next random word is shown.
	// Env: APP_QUIZ_ADVANCE_DELAY
	QuizAdvanceDelay time.Duration `env:"QUIZ_ADVANCE_DELAY"`

	// LogFile is where the client writes its log. Empty means a file beside
	// the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups device-local storage settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite credential store location.
type DB struct {
	// DSN is the SQLite file path (e.g. "vocab.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the REST API connection settings.
type Adapter struct {
	// HTTPAddress is the API base address, "host:port" or a full URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds the reference backend settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Username and Password seed the single account of the reference backend.
	// Env: SERVER_USERNAME, SERVER_PASSWORD
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
}

// Defaults applied by the client and server views when a value is unset.
const (
	DefaultRequestTimeout   = 10 * time.Second
	DefaultQuizAdvanceDelay = time.Second
	DefaultServerAddress    = "localhost:8000"
)

// GetStructuredConfig loads and merges every source using the process
// environment and os.Args.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(os.Getenv("DOTENV")).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
