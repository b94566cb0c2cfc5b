// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-dabria/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores journal owners.
type UserRepository interface {
	// CreateUser inserts user and returns it with ID and CreatedAt filled in.
	// Returns [ErrUsernameTaken] if the username is already in use.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user with exactly this username or
	// [ErrUserNotFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// EntryRepository stores the pages of the journal.
type EntryRepository interface {
	// FindEntry returns the entry of userID on page or [ErrEntryNotFound].
	FindEntry(ctx context.Context, userID string, page int) (models.Entry, error)

	// TotalSize returns the summed size of all entries of userID.
	TotalSize(ctx context.Context, userID string) (int64, error)

	// UpsertEntry writes content on page for userID, creating the entry or
	// replacing its content in place. Returns [ErrQuotaExceeded] without
	// writing if the result would not fit the quota.
	UpsertEntry(ctx context.Context, userID string, page int, content string) (models.Entry, error)

	// UpdateEntry applies changes to the entry with id.
	UpdateEntry(ctx context.Context, id string, changes models.EntryChanges) (models.Entry, error)
}

// ChangeNotifier receives the keys touched by a committed write.
type ChangeNotifier interface {
	Invalidate(keys ...string)
}

// EntryInterceptor is called on every entry write before it reaches the
// database and may amend the record being written.
type EntryInterceptor interface {
	// Creating is called with the entry about to be inserted.
	Creating(entry *models.Entry)

	// Updating is called with the changes about to be applied to current.
	Updating(changes *models.EntryChanges, current models.Entry)
}

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}
