package config

import "errors"

// Validation errors returned when a configuration view is incomplete.
var (
	// ErrInvalidAdapterConfigs indicates a missing API address or a
	// non-positive request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty or in-memory DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates a missing secret key or a non-positive
	// quiz delay.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates unusable reference backend settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
