// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-dabria/internal/store"
	"github.com/MKhiriev/go-dabria/internal/validators"
)

// mapStoreError translates a repository error into a service business error.
// The original error stays in the chain.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrUsernameTaken):
		return fmt.Errorf("%w: %w", ErrUsernameTaken, err)
	case errors.Is(err, store.ErrUserNotFound):
		return fmt.Errorf("%w: %w", ErrAuthFailure, err)
	case errors.Is(err, store.ErrQuotaExceeded):
		return fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
	case errors.Is(err, store.ErrInvalidPage):
		return fmt.Errorf("%w: %w", ErrInvalidPage, err)
	case errors.Is(err, store.ErrStorageUnavailable):
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return err
}

// mapValidationError translates a validation error of page input.
func mapValidationError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, validators.ErrInvalidPageNumber):
		return fmt.Errorf("%w: %w", ErrInvalidPage, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
}
