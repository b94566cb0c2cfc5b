// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dabria/internal/config"
	"github.com/MKhiriev/go-dabria/internal/logger"
	"github.com/MKhiriev/go-dabria/internal/quota"
	"github.com/MKhiriev/go-dabria/models"
)

// newTestDB opens a migrated in-memory database.
func newTestDB(t *testing.T) *DB {
	t.Helper()

	ctx := context.Background()
	db, err := NewConnectSQLite(ctx, config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate(ctx))
	return db
}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &DB{DB: conn, errorClassifier: NewSQLiteErrorClassifier(), logger: logger.Nop()}, mock
}

type recordingNotifier struct {
	mu    sync.Mutex
	calls [][]string
}

func (n *recordingNotifier) Invalidate(keys ...string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, keys)
}

func (n *recordingNotifier) Calls() [][]string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([][]string(nil), n.calls...)
}

// tickingClock returns a clock that advances by one second on every call.
func tickingClock() func() time.Time {
	var mu sync.Mutex
	t := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

func newTestEntryRepo(t *testing.T, db *DB, limit int64) (*entryRepository, *recordingNotifier) {
	t.Helper()

	n := &recordingNotifier{}
	repo := NewEntryRepository(db, quota.NewPolicy(limit), n, logger.Nop()).(*entryRepository)
	repo.now = tickingClock()
	return repo, n
}

func createTestUser(t *testing.T, db *DB, username string) models.User {
	t.Helper()

	user, err := NewUserRepository(db, logger.Nop()).CreateUser(context.Background(), models.User{
		Username:       username,
		HashedPassword: "pw",
	})
	require.NoError(t, err)
	return user
}
