// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-dabria/models"
)

var (
	// qb builds statements with SQLite "?" placeholders.
	qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

	entryColumns = []string{
		"id",
		"user_id",
		"content",
		"page_number",
		"size",
		"created_at",
		"updated_at",
		"revision",
		"user_id_and_page",
	}

	userColumns = []string{
		"id",
		"username",
		"hashed_password",
		"created_at",
	}

	errEmptyChanges = errors.New("no columns to update")
)

// buildFindEntryByKeyQuery selects the entry stored under the
// user_id_and_page key. Legacy databases may hold more than one row per key;
// the oldest one wins.
func buildFindEntryByKeyQuery(key string) (string, []any, error) {
	return qb.Select(entryColumns...).
		From(models.Entry{}.TableName()).
		Where(sq.Eq{"user_id_and_page": key}).
		OrderBy("created_at", "id").
		Limit(1).
		ToSql()
}

func buildFindEntryByIDQuery(id string) (string, []any, error) {
	return qb.Select(entryColumns...).
		From(models.Entry{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildTotalSizeQuery(userID string) (string, []any, error) {
	return qb.Select("COALESCE(SUM(size), 0)").
		From(models.Entry{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildInsertEntryQuery(entry models.Entry) (string, []any, error) {
	return qb.Insert(models.Entry{}.TableName()).
		Columns(entryColumns...).
		Values(
			entry.ID,
			entry.UserID,
			entry.Content,
			entry.PageNumber,
			entry.Size,
			entry.CreatedAt,
			entry.UpdatedAt,
			entry.Revision,
			entry.UserIDAndPage,
		).
		ToSql()
}

// buildUpdateEntryQuery sets the non-nil fields of changes and bumps the
// revision, but only while the row is still at revision.
func buildUpdateEntryQuery(id string, revision int64, changes models.EntryChanges) (string, []any, error) {
	if changes.IsEmpty() {
		return "", nil, errEmptyChanges
	}

	set := make(map[string]any, 7)
	if changes.UserID != nil {
		set["user_id"] = *changes.UserID
	}
	if changes.PageNumber != nil {
		set["page_number"] = *changes.PageNumber
	}
	if changes.Content != nil {
		set["content"] = *changes.Content
	}
	if changes.Size != nil {
		set["size"] = *changes.Size
	}
	if changes.UpdatedAt != nil {
		set["updated_at"] = *changes.UpdatedAt
	}
	if changes.UserIDAndPage != nil {
		set["user_id_and_page"] = *changes.UserIDAndPage
	}
	set["revision"] = sq.Expr("revision + 1")

	return qb.Update(models.Entry{}.TableName()).
		SetMap(set).
		Where(sq.Eq{"id": id, "revision": revision}).
		ToSql()
}

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return qb.Insert(models.User{}.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Username, user.HashedPassword, user.CreatedAt).
		ToSql()
}

func buildFindUserByUsernameQuery(username string) (string, []any, error) {
	return qb.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}
