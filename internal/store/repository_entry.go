// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-dabria/internal/logger"
	"github.com/MKhiriev/go-dabria/internal/quota"
	"github.com/MKhiriev/go-dabria/internal/utils"
	"github.com/MKhiriev/go-dabria/models"
)

// entryRepository is the SQLite-backed implementation of [EntryRepository].
//
// Every write runs in one transaction that reads the current state, applies
// the quota rule to it and then inserts or updates. The interceptor chain
// runs on every insert and update; the derived-key interceptor is always
// first. Committed writes are published to the notifier.
type entryRepository struct {
	db           *DB
	policy       quota.Policy
	notifier     ChangeNotifier
	interceptors []EntryInterceptor
	ids          IDGenerator
	now          func() time.Time
	logger       *logger.Logger
}

// NewEntryRepository constructs an [EntryRepository]. notifier may be nil.
// Extra interceptors run after the derived-key interceptor.
func NewEntryRepository(db *DB, policy quota.Policy, notifier ChangeNotifier, logger *logger.Logger, interceptors ...EntryInterceptor) EntryRepository {
	logger.Debug().Int64("quota", policy.Limit).Msg("creating entry repository")

	if notifier == nil {
		notifier = nopNotifier{}
	}

	return &entryRepository{
		db:           db,
		policy:       policy,
		notifier:     notifier,
		interceptors: append([]EntryInterceptor{NewDerivedKeyInterceptor()}, interceptors...),
		ids:          utils.NewUUIDGenerator(),
		now:          time.Now,
		logger:       logger,
	}
}

// FindEntry implements [EntryRepository].
func (r *entryRepository) FindEntry(ctx context.Context, userID string, page int) (models.Entry, error) {
	if !models.ValidPage(page) {
		return models.Entry{}, fmt.Errorf("%w: %d", ErrInvalidPage, page)
	}

	entry, err := findEntryByKey(ctx, r.db, models.UserIDAndPage(userID, page))
	if err != nil && !errors.Is(err, ErrEntryNotFound) {
		logger.FromContext(ctx).Err(err).
			Str("func", "entryRepository.FindEntry").
			Str("user_id", userID).
			Int("page", page).
			Msg("failed to find entry")
	}
	return entry, err
}

// TotalSize implements [EntryRepository] and [quota.SizeReader].
func (r *entryRepository) TotalSize(ctx context.Context, userID string) (int64, error) {
	total, err := totalSize(ctx, r.db, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "entryRepository.TotalSize").
			Str("user_id", userID).
			Msg("failed to sum entry sizes")
	}
	return total, err
}

// UpsertEntry implements [EntryRepository].
//
// The existing entry of the page (if any) is read inside the write
// transaction, and its size is passed to the quota rule as the size being
// replaced. The entry keeps its ID and CreatedAt on update.
func (r *entryRepository) UpsertEntry(ctx context.Context, userID string, page int, content string) (models.Entry, error) {
	log := logger.FromContext(ctx)

	if !models.ValidPage(page) {
		return models.Entry{}, fmt.Errorf("%w: %d", ErrInvalidPage, page)
	}
	size := models.ContentSize(content)

	var saved models.Entry
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		existing, err := findEntryByKey(ctx, tx, models.UserIDAndPage(userID, page))
		found := err == nil
		if err != nil && !errors.Is(err, ErrEntryNotFound) {
			return err
		}

		used, err := totalSize(ctx, tx, userID)
		if err != nil {
			return err
		}

		var replacing int64
		if found {
			replacing = existing.Size
		}
		if !r.policy.Fits(used, size, replacing) {
			log.Warn().
				Str("func", "entryRepository.UpsertEntry").
				Str("user_id", userID).
				Int("page", page).
				Int64("used", used).
				Int64("size", size).
				Int64("replacing", replacing).
				Int64("limit", r.policy.Limit).
				Msg("quota exceeded, entry not saved")
			return fmt.Errorf("%w: %d bytes used of %d, write needs %d more", ErrQuotaExceeded, used, r.policy.Limit, size-replacing)
		}

		if !found {
			saved, err = r.insertEntry(ctx, tx, models.Entry{
				UserID:     userID,
				PageNumber: page,
				Content:    content,
			})
			return err
		}

		saved, err = r.updateEntry(ctx, tx, existing, models.EntryChanges{Content: &content})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrQuotaExceeded) {
			log.Err(err).
				Str("func", "entryRepository.UpsertEntry").
				Str("user_id", userID).
				Int("page", page).
				Msg("failed to save entry")
		}
		return models.Entry{}, err
	}

	r.notifier.Invalidate(UserEntriesKey(userID), EntryPageKey(userID, page))
	return saved, nil
}

// UpdateEntry implements [EntryRepository].
//
// Content changes recompute the size and are checked against the quota, as
// is moving an entry to another owner. Moving an entry onto a page that is
// already taken fails with [ErrEntryExists]. UserIDAndPage and Size in
// changes are ignored; both are derived.
func (r *entryRepository) UpdateEntry(ctx context.Context, id string, changes models.EntryChanges) (models.Entry, error) {
	log := logger.FromContext(ctx)

	if changes.PageNumber != nil && !models.ValidPage(*changes.PageNumber) {
		return models.Entry{}, fmt.Errorf("%w: %d", ErrInvalidPage, *changes.PageNumber)
	}

	var current, updated models.Entry
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		var err error
		current, err = findEntryByID(ctx, tx, id)
		if err != nil {
			return err
		}

		targetUser, targetPage := current.UserID, current.PageNumber
		if changes.UserID != nil {
			targetUser = *changes.UserID
		}
		if changes.PageNumber != nil {
			targetPage = *changes.PageNumber
		}

		if targetUser != current.UserID || targetPage != current.PageNumber {
			other, err := findEntryByKey(ctx, tx, models.UserIDAndPage(targetUser, targetPage))
			switch {
			case err == nil && other.ID != current.ID:
				return fmt.Errorf("%w: user %s page %d", ErrEntryExists, targetUser, targetPage)
			case err != nil && !errors.Is(err, ErrEntryNotFound):
				return err
			}
		}

		if changes.Content != nil || targetUser != current.UserID {
			size := current.Size
			if changes.Content != nil {
				size = models.ContentSize(*changes.Content)
			}

			var replacing int64
			if targetUser == current.UserID {
				replacing = current.Size
			}

			used, err := totalSize(ctx, tx, targetUser)
			if err != nil {
				return err
			}
			if !r.policy.Fits(used, size, replacing) {
				log.Warn().
					Str("func", "entryRepository.UpdateEntry").
					Str("entry_id", id).
					Str("user_id", targetUser).
					Int64("used", used).
					Int64("size", size).
					Msg("quota exceeded, entry not updated")
				return fmt.Errorf("%w: %d bytes used of %d", ErrQuotaExceeded, used, r.policy.Limit)
			}
		}

		updated, err = r.updateEntry(ctx, tx, current, changes)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrQuotaExceeded) && !errors.Is(err, ErrEntryNotFound) {
			log.Err(err).
				Str("func", "entryRepository.UpdateEntry").
				Str("entry_id", id).
				Msg("failed to update entry")
		}
		return models.Entry{}, err
	}

	r.notifier.Invalidate(
		UserEntriesKey(current.UserID),
		EntryPageKey(current.UserID, current.PageNumber),
		UserEntriesKey(updated.UserID),
		EntryPageKey(updated.UserID, updated.PageNumber),
	)
	return updated, nil
}

func (r *entryRepository) insertEntry(ctx context.Context, tx *sql.Tx, entry models.Entry) (models.Entry, error) {
	now := r.now().UTC()

	entry.ID = r.ids.Generate()
	entry.Size = models.ContentSize(entry.Content)
	entry.CreatedAt = now
	entry.UpdatedAt = now
	entry.Revision = 1
	entry.UserIDAndPage = ""
	for _, interceptor := range r.interceptors {
		interceptor.Creating(&entry)
	}

	query, args, err := buildInsertEntryQuery(entry)
	if err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return models.Entry{}, dbError(ErrExecutingStatement, err)
	}

	return entry, nil
}

// updateEntry writes changes over current with a compare-and-swap on the
// revision and returns the resulting entry.
func (r *entryRepository) updateEntry(ctx context.Context, tx *sql.Tx, current models.Entry, changes models.EntryChanges) (models.Entry, error) {
	changes.UserIDAndPage = nil
	changes.Size = nil
	if changes.Content != nil {
		size := models.ContentSize(*changes.Content)
		changes.Size = &size
	}
	now := r.now().UTC()
	changes.UpdatedAt = &now

	for _, interceptor := range r.interceptors {
		interceptor.Updating(&changes, current)
	}

	query, args, err := buildUpdateEntryQuery(current.ID, current.Revision, changes)
	if err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Entry{}, dbError(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.Entry{}, dbError(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Entry{}, fmt.Errorf("%w: entry %s at revision %d", ErrVersionConflict, current.ID, current.Revision)
	}

	return applyChanges(current, changes), nil
}

func applyChanges(entry models.Entry, changes models.EntryChanges) models.Entry {
	if changes.UserID != nil {
		entry.UserID = *changes.UserID
	}
	if changes.PageNumber != nil {
		entry.PageNumber = *changes.PageNumber
	}
	if changes.Content != nil {
		entry.Content = *changes.Content
	}
	if changes.Size != nil {
		entry.Size = *changes.Size
	}
	if changes.UpdatedAt != nil {
		entry.UpdatedAt = *changes.UpdatedAt
	}
	if changes.UserIDAndPage != nil {
		entry.UserIDAndPage = *changes.UserIDAndPage
	}
	entry.Revision++
	return entry
}

func findEntryByKey(ctx context.Context, q dbtx, key string) (models.Entry, error) {
	query, args, err := buildFindEntryByKeyQuery(key)
	if err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return queryEntry(ctx, q, query, args)
}

func findEntryByID(ctx context.Context, q dbtx, id string) (models.Entry, error) {
	query, args, err := buildFindEntryByIDQuery(id)
	if err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return queryEntry(ctx, q, query, args)
}

func queryEntry(ctx context.Context, q dbtx, query string, args []any) (models.Entry, error) {
	entry, err := scanEntry(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entry{}, ErrEntryNotFound
	}
	if err != nil {
		return models.Entry{}, dbError(ErrScanningRow, err)
	}
	return entry, nil
}

func totalSize(ctx context.Context, q dbtx, userID string) (int64, error) {
	query, args, err := buildTotalSizeQuery(userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = q.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, dbError(ErrExecutingQuery, err)
	}
	return total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.Entry, error) {
	var (
		entry     models.Entry
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Content,
		&entry.PageNumber,
		&entry.Size,
		&entry.CreatedAt,
		&updatedAt,
		&entry.Revision,
		&entry.UserIDAndPage,
	)
	if err != nil {
		return models.Entry{}, err
	}

	entry.UpdatedAt = entry.CreatedAt
	if updatedAt.Valid {
		entry.UpdatedAt = updatedAt.Time
	}
	return entry, nil
}
