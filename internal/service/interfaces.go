// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service is the boundary between the journal core and its front
// end. It authenticates users, streams page and usage updates and accepts
// page saves, reporting failures as the sentinel errors of this package.
package service

import (
	"context"

	"github.com/MKhiriev/go-dabria/internal/live"
	"github.com/MKhiriev/go-dabria/models"
)

//go:generate mockgen -destination=../mock/service_mock.go -package=mock github.com/MKhiriev/go-dabria/internal/service AuthService,JournalService

// AuthService signs users in and up.
type AuthService interface {
	// SignUp creates a user with username and password.
	// Returns ErrUsernameTaken if the username is in use and
	// ErrInvalidCredentials if either value is empty or too long.
	SignUp(ctx context.Context, username, password string) (models.User, error)

	// SignIn returns the user whose username and password match.
	// An unknown username and a wrong password both return ErrAuthFailure.
	SignIn(ctx context.Context, username, password string) (models.User, error)
}

// JournalService reads and writes the pages of a signed-in user.
type JournalService interface {
	// SubscribeToPage streams the entry on page, or nil while the page has
	// never been saved. The caller must close the subscription.
	SubscribeToPage(ctx context.Context, userID string, page int) (*live.Subscription[*models.Entry], error)

	// SubscribeToUsage streams the number of bytes the user occupies.
	// The caller must close the subscription.
	SubscribeToUsage(ctx context.Context, userID string) (*live.Subscription[int64], error)

	// SaveContent writes content on page. Returns ErrQuotaExceeded, leaving
	// the stored entry unchanged, if the write does not fit the quota.
	SaveContent(ctx context.Context, userID string, page int, content string) (models.Entry, error)

	// Usage returns the current footprint of the user against the quota.
	Usage(ctx context.Context, userID string) (models.Usage, error)
}

// JournalServiceWrapper decorates a JournalService.
type JournalServiceWrapper interface {
	JournalService
	Wrap(JournalService) JournalService
}
