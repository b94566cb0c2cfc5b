// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upEntriesUserIDAndPage, downEntriesUserIDAndPage)
}

const (
	addUserIDAndPageColumn = `ALTER TABLE entries ADD COLUMN user_id_and_page TEXT NOT NULL DEFAULT '';`
	addUpdatedAtColumn     = `ALTER TABLE entries ADD COLUMN updated_at TIMESTAMP;`
	addRevisionColumn      = `ALTER TABLE entries ADD COLUMN revision INTEGER NOT NULL DEFAULT 0;`
	fillUpdatedAt          = `UPDATE entries SET updated_at = created_at WHERE updated_at IS NULL;`
	createUserIDAndPageIdx = `CREATE INDEX IF NOT EXISTS idx_entries_user_id_and_page ON entries (user_id_and_page);`

	// the key is recomputed from the source columns; rows that already carry
	// the right value are not touched, so running it again changes nothing.
	backfillUserIDAndPage = `
		UPDATE entries
		SET user_id_and_page = user_id || '-' || page_number
		WHERE user_id_and_page <> user_id || '-' || page_number;`

	dropUserIDAndPageIdx    = `DROP INDEX IF EXISTS idx_entries_user_id_and_page;`
	dropUserIDAndPageColumn = `ALTER TABLE entries DROP COLUMN user_id_and_page;`
	dropUpdatedAtColumn     = `ALTER TABLE entries DROP COLUMN updated_at;`
	dropRevisionColumn      = `ALTER TABLE entries DROP COLUMN revision;`
)

// Execer is the subset of *sql.DB and *sql.Tx used by the backfill.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// BackfillUserIDAndPage sets entries.user_id_and_page to
// "<user_id>-<page_number>" for every row whose value differs and returns the
// number of rows it changed.
func BackfillUserIDAndPage(ctx context.Context, db Execer) (int64, error) {
	res, err := db.ExecContext(ctx, backfillUserIDAndPage)
	if err != nil {
		return 0, fmt.Errorf("backfill user_id_and_page: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("backfill user_id_and_page rows affected: %w", err)
	}

	return n, nil
}

func upEntriesUserIDAndPage(ctx context.Context, tx *sql.Tx) error {
	for _, stmt := range []string{addUserIDAndPageColumn, addUpdatedAtColumn, addRevisionColumn, fillUpdatedAt} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("alter entries: %w", err)
		}
	}

	if _, err := BackfillUserIDAndPage(ctx, tx); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, createUserIDAndPageIdx); err != nil {
		return fmt.Errorf("create user_id_and_page index: %w", err)
	}

	return nil
}

func downEntriesUserIDAndPage(ctx context.Context, tx *sql.Tx) error {
	for _, stmt := range []string{dropUserIDAndPageIdx, dropRevisionColumn, dropUpdatedAtColumn, dropUserIDAndPageColumn} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("revert entries: %w", err)
		}
	}
	return nil
}
