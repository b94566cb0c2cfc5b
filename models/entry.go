// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"time"
)

// Journal page bounds. A user owns at most one entry per page.
const (
	FirstPage = 1
	LastPage  = 3
)

// Entry is the text a user wrote on a single journal page.
type Entry struct {
	// ID is the opaque identifier of the entry. It is kept across updates.
	ID string `json:"id"`

	// UserID references the owning [User].
	UserID string `json:"user_id"`

	// Content is the free text of the page.
	Content string `json:"content"`

	// PageNumber is in [FirstPage, LastPage].
	PageNumber int `json:"page_number"`

	// Size is the UTF-8 byte length of Content at the time of the last write.
	Size int64 `json:"size"`

	// CreatedAt is the moment of the first save for this page.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the moment of the latest save.
	UpdatedAt time.Time `json:"updated_at"`

	// Revision is incremented on every update and used for compare-and-swap.
	Revision int64 `json:"revision"`

	// UserIDAndPage is derived from UserID and PageNumber by the store.
	// It must never be set by callers.
	UserIDAndPage string `json:"user_id_and_page"`
}

// TableName returns the name of the database table
// associated with the Entry model.
func (e Entry) TableName() string {
	return "entries"
}

// EntryChanges is a partial update of an [Entry]. Nil fields are left as
// they are in the store.
type EntryChanges struct {
	UserID        *string
	PageNumber    *int
	Content       *string
	Size          *int64
	UpdatedAt     *time.Time
	UserIDAndPage *string
}

// IsEmpty reports whether the changes touch no field at all.
func (c EntryChanges) IsEmpty() bool {
	return c.UserID == nil &&
		c.PageNumber == nil &&
		c.Content == nil &&
		c.Size == nil &&
		c.UpdatedAt == nil &&
		c.UserIDAndPage == nil
}

// UserIDAndPage builds the composite lookup key "<userID>-<page>".
func UserIDAndPage(userID string, page int) string {
	return userID + "-" + strconv.Itoa(page)
}

// ValidPage reports whether page is one of the journal pages.
func ValidPage(page int) bool {
	return page >= FirstPage && page <= LastPage
}

// ContentSize returns the encoded byte length of content. Go strings are
// UTF-8, so multi-byte characters count with their full width.
func ContentSize(content string) int64 {
	return int64(len(content))
}
