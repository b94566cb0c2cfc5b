// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-d database DSN (SQLite file path)
//	-c/-config json file path with configs
//	-env-file .env file path
//	-password-hasher password hasher: plain, hmac-sha256, argon2id
//	-password-hash-key key for the hmac-sha256 hasher
//	-quota per-user quota in bytes
//	-autosave-delay autosave delay (e.g., "300ms", "1s")
//	-log log file path
func parseFlags(args []string) (*StructuredConfig, error) {
	var databaseDSN string
	var jsonConfigPath string
	var dotEnvPath string
	var passwordHasher string
	var passwordHashKey string
	var quotaLimit int64
	var autosaveDelay time.Duration
	var logPath string

	fs := flag.NewFlagSet("dabria", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&dotEnvPath, "env-file", "", "Dotenv file path")
	fs.StringVar(&passwordHasher, "password-hasher", "", "Password hasher (plain, hmac-sha256, argon2id)")
	fs.StringVar(&passwordHashKey, "password-hash-key", "", "Password hash key")
	fs.Int64Var(&quotaLimit, "quota", 0, "Per-user quota in bytes")
	fs.DurationVar(&autosaveDelay, "autosave-delay", 0, "Autosave delay (e.g., 300ms, 1s)")
	fs.StringVar(&logPath, "log", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PasswordHasher:  passwordHasher,
			PasswordHashKey: passwordHashKey,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Quota: Quota{LimitBytes: quotaLimit},
		},
		Workers:      Workers{AutosaveDelay: autosaveDelay},
		Log:          Log{Path: logPath},
		JSONFilePath: jsonConfigPath,
		DotEnvPath:   dotEnvPath,
	}, nil
}
