// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-dabria/internal/live"
	"github.com/MKhiriev/go-dabria/internal/logger"
	"github.com/MKhiriev/go-dabria/internal/quota"
	"github.com/MKhiriev/go-dabria/internal/store"
	"github.com/MKhiriev/go-dabria/models"
)

// journalService is the concrete implementation of JournalService.
//
// Reads are live queries on the hub: the entry repository publishes the
// keys of every committed write there, and each subscription reruns when one
// of its keys is published. Writes for the same page of the same user are
// serialised so that they reach the repository in call order.
type journalService struct {
	entryRepository store.EntryRepository
	accountant      *quota.Accountant
	hub             *live.Hub
	locks           *pageLocks
	logger          *logger.Logger
}

// NewJournalService constructs a JournalService. hub must be the notifier the
// entry repository publishes to.
func NewJournalService(entryRepository store.EntryRepository, hub *live.Hub, policy quota.Policy, logger *logger.Logger) JournalService {
	return &journalService{
		entryRepository: entryRepository,
		accountant:      quota.NewAccountant(policy, entryRepository),
		hub:             hub,
		locks:           newPageLocks(),
		logger:          logger,
	}
}

// SubscribeToPage implements JournalService. A failing read is delivered as
// nil, the same as a page that was never written.
func (j *journalService) SubscribeToPage(ctx context.Context, userID string, page int) (*live.Subscription[*models.Entry], error) {
	query := func(ctx context.Context) (*models.Entry, error) {
		entry, err := j.entryRepository.FindEntry(ctx, userID, page)
		if errors.Is(err, store.ErrEntryNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &entry, nil
	}

	keys := []string{store.EntryPageKey(userID, page)}
	return live.Subscribe(ctx, j.hub, keys, query, nil), nil
}

// SubscribeToUsage implements JournalService. A failing read is delivered
// as 0.
func (j *journalService) SubscribeToUsage(ctx context.Context, userID string) (*live.Subscription[int64], error) {
	query := func(ctx context.Context) (int64, error) {
		return j.accountant.UsedBytes(ctx, userID)
	}

	keys := []string{store.UserEntriesKey(userID)}
	return live.Subscribe(ctx, j.hub, keys, query, int64(0)), nil
}

// SaveContent implements JournalService.
//
// Returns the saved entry or:
//   - ErrQuotaExceeded if the write does not fit; the stored entry is left
//     as it was.
//   - ErrInvalidPage for a page outside the journal.
//   - ErrStorageUnavailable if the database cannot be used.
func (j *journalService) SaveContent(ctx context.Context, userID string, page int, content string) (models.Entry, error) {
	log := logger.FromContext(ctx)

	unlock := j.locks.lock(models.UserIDAndPage(userID, page))
	defer unlock()

	entry, err := j.entryRepository.UpsertEntry(ctx, userID, page, content)
	if err != nil {
		mapped := mapStoreError(err)
		if errors.Is(mapped, ErrQuotaExceeded) {
			log.Warn().
				Str("func", "journalService.SaveContent").
				Str("user_id", userID).
				Int("page", page).
				Int64("size", models.ContentSize(content)).
				Msg("save rejected by quota")
		} else {
			log.Err(err).
				Str("func", "journalService.SaveContent").
				Str("user_id", userID).
				Int("page", page).
				Msg("save failed")
		}
		return models.Entry{}, mapped
	}

	log.Debug().
		Str("func", "journalService.SaveContent").
		Str("user_id", userID).
		Int("page", page).
		Int64("size", entry.Size).
		Int64("revision", entry.Revision).
		Msg("page saved")
	return entry, nil
}

// Usage implements JournalService.
func (j *journalService) Usage(ctx context.Context, userID string) (models.Usage, error) {
	usage, err := j.accountant.Usage(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "journalService.Usage").
			Str("user_id", userID).
			Msg("reading usage failed")
		return models.Usage{}, mapStoreError(err)
	}
	return usage, nil
}
