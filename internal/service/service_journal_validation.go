// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-dabria/internal/live"
	"github.com/MKhiriev/go-dabria/internal/validators"
	"github.com/MKhiriev/go-dabria/models"
)

// JournalValidationService rejects requests for unknown users or pages
// before they reach the wrapped JournalService.
type JournalValidationService struct {
	inner     JournalService
	validator validators.Validator
}

func NewJournalValidationService(validator validators.Validator) JournalServiceWrapper {
	return &JournalValidationService{validator: validator}
}

func (v *JournalValidationService) SubscribeToPage(ctx context.Context, userID string, page int) (*live.Subscription[*models.Entry], error) {
	if err := v.validatePage(ctx, userID, page); err != nil {
		return nil, err
	}
	return v.inner.SubscribeToPage(ctx, userID, page)
}

func (v *JournalValidationService) SubscribeToUsage(ctx context.Context, userID string) (*live.Subscription[int64], error) {
	err := v.validator.Validate(ctx, models.PageContent{UserID: userID}, validators.FieldUserID)
	if err != nil {
		return nil, mapValidationError(err)
	}
	return v.inner.SubscribeToUsage(ctx, userID)
}

func (v *JournalValidationService) SaveContent(ctx context.Context, userID string, page int, content string) (models.Entry, error) {
	if err := v.validatePage(ctx, userID, page); err != nil {
		return models.Entry{}, err
	}
	return v.inner.SaveContent(ctx, userID, page, content)
}

func (v *JournalValidationService) Usage(ctx context.Context, userID string) (models.Usage, error) {
	err := v.validator.Validate(ctx, models.PageContent{UserID: userID}, validators.FieldUserID)
	if err != nil {
		return models.Usage{}, mapValidationError(err)
	}
	return v.inner.Usage(ctx, userID)
}

func (v *JournalValidationService) Wrap(wrapped JournalService) JournalService {
	v.inner = wrapped
	return v
}

func (v *JournalValidationService) validatePage(ctx context.Context, userID string, page int) error {
	err := v.validator.Validate(ctx, models.PageContent{UserID: userID, PageNumber: page})
	return mapValidationError(err)
}
