// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-dabria/models"

// UserEntriesKey is published whenever any entry of userID changes. Queries
// over all of a user's entries (such as the total size) depend on it.
func UserEntriesKey(userID string) string {
	return "entries:user:" + userID
}

// EntryPageKey is published whenever the entry of userID on page changes.
func EntryPageKey(userID string, page int) string {
	return "entries:page:" + models.UserIDAndPage(userID, page)
}
