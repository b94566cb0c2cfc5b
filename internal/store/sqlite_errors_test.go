// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("x"), want: NonRetryable},
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: Retryable},
		{name: "locked wrapped", err: fmt.Errorf("wrap: %w", sqlite3.Error{Code: sqlite3.ErrLocked}), want: Retryable},
		{name: "constraint", err: sqlite3.Error{Code: sqlite3.ErrConstraint}, want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.False(t, isUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}))
	assert.False(t, isUniqueViolation(errors.New("UNIQUE constraint failed")))
}

func TestDBError(t *testing.T) {
	err := dbError(ErrExecutingQuery, sqlite3.Error{Code: sqlite3.ErrCantOpen})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, ErrExecutingQuery)

	err = dbError(ErrExecutingQuery, errors.New("syntax"))
	assert.NotErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestInTx_RetriesBusy(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin().WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err := db.inTx(context.Background(), func(*sql.Tx) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_GivesUpAfterMaxAttempts(t *testing.T) {
	db, mock := newMockDB(t)

	for range maxTxAttempts {
		mock.ExpectBegin().WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	}

	err := db.inTx(context.Background(), func(*sql.Tx) error { return nil })
	require.ErrorIs(t, err, ErrStorageUnavailable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_FnErrorRollsBack(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := db.inTx(context.Background(), func(*sql.Tx) error { return boom })
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}
