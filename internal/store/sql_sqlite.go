// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-dabria/internal/config"
	"github.com/MKhiriev/go-dabria/internal/logger"
)

// sqliteParams are appended to DSNs without their own query string:
// enforce foreign keys, wait for locks instead of failing at once, and take
// the write lock when a transaction begins so read-then-write upserts do not
// deadlock against another process.
const sqliteParams = "_foreign_keys=on&_busy_timeout=5000&_txlock=immediate"

// NewConnectSQLite opens the database at cfg.DSN, creating the file (and its
// directory) if needed. Failures are reported as [ErrStorageUnavailable].
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isFilePath(cfg.DSN) {
		if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
			return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}
	}

	conn, err := sql.Open("sqlite3", sqliteDSN(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("%w: error opening connection to DB: %w", ErrStorageUnavailable, err)
	}

	// a single connection serialises writers inside the process and keeps
	// ":memory:" databases from splitting into one database per connection
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("dsn", cfg.DSN).Msg("connected to database successfully")

	return &DB{
		DB:              conn,
		errorClassifier: NewSQLiteErrorClassifier(),
		logger:          log,
	}, nil
}

func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "?") {
		return dsn
	}
	return dsn + "?" + sqliteParams
}

func isFilePath(dsn string) bool {
	return dsn != "" &&
		!strings.HasPrefix(dsn, ":memory:") &&
		!strings.HasPrefix(dsn, "file:")
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err = os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("error creating DB directory: %w", err)
			}
		}

		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
