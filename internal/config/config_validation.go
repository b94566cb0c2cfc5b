// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-dabria/internal/crypto"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. A config without any
// storage or hasher settings at all (as produced by an empty builder) is
// accepted; defaults are expected to fill it.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.Quota.LimitBytes < 0 {
		return fmt.Errorf("%w: quota must be positive", ErrInvalidStorageConfigs)
	}

	switch cfg.App.PasswordHasher {
	case "", crypto.HasherPlain, crypto.HasherArgon2id:
	case crypto.HasherHMACSHA256:
		if cfg.App.PasswordHashKey == "" {
			return fmt.Errorf("%w: %s hasher needs a password hash key", ErrInvalidAppConfigs, crypto.HasherHMACSHA256)
		}
	default:
		return fmt.Errorf("%w: unknown password hasher %q", ErrInvalidAppConfigs, cfg.App.PasswordHasher)
	}

	if cfg.Workers.AutosaveDelay < 0 {
		return fmt.Errorf("%w: autosave delay must not be negative", ErrInvalidWorkerConfigs)
	}

	return nil
}

// Validate checks a config that is about to be used: on top of the merge
// checks it requires a DSN and a positive quota.
func (cfg *StructuredConfig) Validate() error {
	if err := cfg.validate(); err != nil {
		return err
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Quota.LimitBytes == 0 {
		return fmt.Errorf("%w: quota must be positive", ErrInvalidStorageConfigs)
	}

	return nil
}
