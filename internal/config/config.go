// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// journal. It aggregates all sub-configurations and is populated by merging
// values from command-line flags, environment variables (optionally seeded
// from a .env file), an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix is the prefix applied to all nested env tag lookups (caarlos0/env).
//   - env is the direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the password hashing
	// strategy and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local database and the quota.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds the log destination.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the .env file loaded into the process environment before
	// env variables are parsed. Defaults to ".env"; a missing file is ignored.
	// Populated via the DOTENV environment variable or the -env-file flag.
	DotEnvPath string `env:"DOTENV"`
}

// App holds application-level configuration values.
type App struct {
	// PasswordHasher selects how credentials are stored and compared:
	// "plain", "hmac-sha256" or "argon2id".
	// Env: APP_PASSWORD_HASHER
	PasswordHasher string `env:"PASSWORD_HASHER"`

	// PasswordHashKey is the secret used by the "hmac-sha256" hasher.
	// Env: APP_PASSWORD_HASH_KEY
	PasswordHashKey string `env:"PASSWORD_HASH_KEY"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the local persistence layer.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// Quota holds the per-user storage ceiling.
	Quota Quota `envPrefix:"QUOTA_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path, ":memory:", or a "file:" URI.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Quota holds the per-user storage ceiling.
type Quota struct {
	// LimitBytes is the maximum total size of a user's entries in bytes.
	// Env: STORAGE_QUOTA_LIMIT_BYTES
	LimitBytes int64 `env:"LIMIT_BYTES"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// AutosaveDelay is how long the autosaver waits after the latest edit
	// before writing a page.
	// Env: WORKERS_AUTOSAVE_DELAY
	AutosaveDelay time.Duration `env:"AUTOSAVE_DELAY"`
}

// Log holds logging settings.
type Log struct {
	// Path is the file the client logs into. Empty means a "logs" file next
	// to the executable.
	// Env: LOG_PATH
	Path string `env:"PATH"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. For every field the first
// source that sets it wins:
//  1. Command-line flags (args, without the program name)
//  2. Environment variables, after loading the .env file
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags(args).
		withDotEnv().
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
