// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dabria/internal/config"
	"github.com/MKhiriev/go-dabria/internal/logger"
	"github.com/MKhiriev/go-dabria/internal/quota"
)

// ClientStorages groups the repositories of the journal database into a
// single value that can be passed to the service layer.
type ClientStorages struct {
	Users   UserRepository
	Entries EntryRepository

	// DB is kept so the application can close it on shutdown.
	DB *DB
}

// NewClientStorages initialises the storage layer:
//  1. Opens the SQLite database at cfg.DB.DSN, creating the file if it does
//     not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the repositories to the opened connection. Committed entry
//     writes are published to notifier.
//
// Errors are reported as [ErrStorageUnavailable]; the caller must not start
// without storage.
func NewClientStorages(ctx context.Context, cfg config.Storage, notifier ChangeNotifier, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Users:   NewUserRepository(db, logger),
		Entries: NewEntryRepository(db, quota.NewPolicy(cfg.Quota.LimitBytes), notifier, logger),
		DB:      db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
