// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-dabria/models"

// derivedKeyInterceptor keeps Entry.UserIDAndPage equal to
// models.UserIDAndPage(UserID, PageNumber).
type derivedKeyInterceptor struct{}

// NewDerivedKeyInterceptor returns the interceptor that maintains the
// user_id_and_page key. The entry repository always installs it.
func NewDerivedKeyInterceptor() EntryInterceptor {
	return derivedKeyInterceptor{}
}

func (derivedKeyInterceptor) Creating(entry *models.Entry) {
	entry.UserIDAndPage = models.UserIDAndPage(entry.UserID, entry.PageNumber)
}

// Updating recomputes the key only if the owner or the page changes. Missing
// halves are taken from current.
func (derivedKeyInterceptor) Updating(changes *models.EntryChanges, current models.Entry) {
	if changes.UserID == nil && changes.PageNumber == nil {
		return
	}

	userID, page := current.UserID, current.PageNumber
	if changes.UserID != nil {
		userID = *changes.UserID
	}
	if changes.PageNumber != nil {
		page = *changes.PageNumber
	}

	key := models.UserIDAndPage(userID, page)
	changes.UserIDAndPage = &key
}
