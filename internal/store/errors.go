// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when a user with the same username
	// already exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("no user was found")

	// ErrEntryNotFound is returned when no entry matches the lookup.
	ErrEntryNotFound = errors.New("entry was not found")

	// ErrEntryExists is returned when an update would move an entry onto a
	// (user, page) pair that already has one.
	ErrEntryExists = errors.New("entry already exists for this page")

	// ErrInvalidPage is returned for page numbers outside the journal.
	ErrInvalidPage = errors.New("invalid page number")

	// ErrQuotaExceeded is returned when a write would take the owner past
	// the quota. Nothing is written.
	ErrQuotaExceeded = errors.New("quota exceeded")

	// ErrVersionConflict is returned when the entry was changed by another
	// writer between read and update.
	ErrVersionConflict = errors.New("entry version conflict occurred")

	// ErrStorageUnavailable is returned when the database cannot be opened,
	// migrated, or is busy/locked beyond the busy timeout.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
