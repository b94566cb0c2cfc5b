// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by
// [SQLiteErrorClassifier.Classify]. It indicates whether a failed database
// operation should be retried or abandoned.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors and
	// constraint violations.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (another connection held the lock past the busy timeout).
	Retryable
)

// SQLiteErrorClassifier maps go-sqlite3 driver errors to an
// [ErrorClassification].
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify returns [Retryable] for SQLITE_BUSY and SQLITE_LOCKED and
// [NonRetryable] for everything else, including non-driver errors.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}
	return NonRetryable
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

// isUnavailable reports whether err means the database itself cannot serve
// requests right now, as opposed to a problem with a particular statement.
func isUnavailable(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy,
		sqlite3.ErrLocked,
		sqlite3.ErrCantOpen,
		sqlite3.ErrIoErr,
		sqlite3.ErrReadonly,
		sqlite3.ErrFull,
		sqlite3.ErrNotADB,
		sqlite3.ErrCorrupt:
		return true
	}
	return false
}

// dbError wraps err with op and, when the driver says the database cannot
// serve requests, with [ErrStorageUnavailable] as well.
func dbError(op, err error) error {
	if isUnavailable(err) {
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, op, err)
	}
	return fmt.Errorf("%w: %w", op, err)
}
