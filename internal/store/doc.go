// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the persistence layer of the journal: a local SQLite
// database holding users and their page entries.
//
// Repositories enforce the storage invariants themselves. Usernames are
// unique by constraint, every entry carries a user_id_and_page key derived
// from its owner and page, and an entry write that would take the owner past
// the quota is rejected inside the same transaction that would perform it.
// After every committed entry write the repository publishes the affected
// keys (see [UserEntriesKey] and [EntryPageKey]) to a [ChangeNotifier].
package store
