// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations owns the versioned schema of the local journal
// database. SQL migrations are embedded into the binary; migrations that
// need code (the user_id_and_page backfill) are registered as goose Go
// migrations from this package's init functions.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-dabria/internal/logger"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// ErrNilDB is returned when Migrate is called without a connection.
var ErrNilDB = errors.New("db is nil")

// Migrate brings the schema to the latest version.
func Migrate(ctx context.Context, db *sql.DB, log *logger.Logger) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	if err := setup(log); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// MigrateTo brings the schema up to (and including) version.
func MigrateTo(ctx context.Context, db *sql.DB, log *logger.Logger, version int64) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	if err := setup(log); err != nil {
		return err
	}

	if err := goose.UpToContext(ctx, db, ".", version); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Version returns the current schema version recorded by goose.
func Version(ctx context.Context, db *sql.DB) (int64, error) {
	if db == nil {
		return 0, ErrNilDB
	}

	if err := goose.SetDialect("sqlite3"); err != nil {
		return 0, fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	v, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("migration error reading version: %w", err)
	}
	return v, nil
}

func setup(log *logger.Logger) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{log: log})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}
	return nil
}
