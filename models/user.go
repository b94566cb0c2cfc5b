// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a journal owner. It is created once at sign-up and read on
// every sign-in; the username never changes after creation.
type User struct {
	// ID is the opaque identifier of the user (UUID v7 string).
	ID string `json:"id"`

	// Username is unique across all users. It is stored in Unicode NFC form.
	Username string `json:"username"`

	// HashedPassword holds the credential as produced by the configured
	// password hasher. Depending on the strategy it may be the password
	// itself, a keyed digest, or an encoded argon2id hash.
	HashedPassword string `json:"-"`

	// CreatedAt is the moment the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
