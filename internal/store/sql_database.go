// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-dabria/internal/logger"
	"github.com/MKhiriev/go-dabria/migrations"
)

// maxTxAttempts bounds how often a transaction that failed with a retryable
// driver error is run again.
const maxTxAttempts = 3

// dbtx is satisfied by both *sql.DB and *sql.Tx so that read helpers can run
// inside or outside of a transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type nopNotifier struct{}

func (nopNotifier) Invalidate(...string) {}

// DB is the journal database connection.
type DB struct {
	*sql.DB
	errorClassifier *SQLiteErrorClassifier
	logger          *logger.Logger
}

// Migrate brings the schema to the latest version. Any failure is reported
// as [ErrStorageUnavailable]: the journal cannot run on an unknown schema.
func (db *DB) Migrate(ctx context.Context) error {
	if err := migrations.Migrate(ctx, db.DB, db.logger); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}

// inTx runs fn in a transaction and commits it if fn returns nil. When the
// transaction fails because another connection held the database lock past
// the busy timeout it is run again, up to maxTxAttempts times.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = db.runTx(ctx, fn)
		if err == nil || db.errorClassifier == nil || db.errorClassifier.Classify(err) != Retryable {
			return err
		}
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "DB.inTx").
			Int("attempt", attempt).
			Msg("database is busy, retrying transaction")
	}
	return err
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrCommitingTransaction, err)
	}
	return nil
}
