// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-dabria/internal/crypto"
	"github.com/MKhiriev/go-dabria/internal/quota"
)

const (
	defaultDSN           = "dabria.db"
	defaultDotEnvPath    = ".env"
	defaultAutosaveDelay = 300 * time.Millisecond
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordHasher: crypto.HasherArgon2id,
		},
		Storage: Storage{
			DB:    DB{DSN: defaultDSN},
			Quota: Quota{LimitBytes: quota.DefaultLimit},
		},
		Workers: Workers{AutosaveDelay: defaultAutosaveDelay},
	}
}
