// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-dabria/internal/crypto"
	"github.com/MKhiriev/go-dabria/internal/live"
	"github.com/MKhiriev/go-dabria/internal/logger"
	"github.com/MKhiriev/go-dabria/internal/quota"
	"github.com/MKhiriev/go-dabria/internal/store"
	"github.com/MKhiriev/go-dabria/internal/validators"
)

type Services struct {
	AuthService    AuthService
	JournalService JournalService
}

// NewServices wires the services to the storages. hub must be the notifier
// the storages were created with, otherwise subscriptions never refresh.
func NewServices(storages *store.ClientStorages, hub *live.Hub, hasher crypto.PasswordHasher, policy quota.Policy, logger *logger.Logger) *Services {
	validator := validators.NewJournalValidator()
	journal := NewJournalService(storages.Entries, hub, policy, logger)

	return &Services{
		AuthService:    NewAuthService(storages.Users, hasher, validator, logger),
		JournalService: NewJournalValidationService(validator).Wrap(journal),
	}
}
