// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-dabria/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive part of the client.
type UI interface {
	// AuthFlow blocks until a user is signed in or the user quits.
	AuthFlow(ctx context.Context) (models.User, error)
	// Journal blocks while user writes; logout reports a sign-out.
	Journal(ctx context.Context, user models.User) (logout bool, err error)
}
