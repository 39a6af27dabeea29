// Package config loads, merges and validates configuration for the
// vocabulary client and the reference backend.
//
// Sources, in increasing priority (a later non-zero field wins):
//  1. an optional .env file (path from DOTENV, default ".env")
//  2. environment variables
//  3. command-line flags
//  4. an optional JSON file (-c / -config / CONFIG)
//
// Entry points are [GetClientConfig] and [GetServerConfig].
package config
