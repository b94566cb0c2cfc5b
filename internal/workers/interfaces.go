// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background workers of the journal client.
// It defines the Worker interface, a Workers aggregate that starts and stops
// several workers together, and the Autosaver that writes edited pages.
package workers

import (
	"context"

	"github.com/MKhiriev/go-dabria/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker and returns immediately; the worker runs until
// ctx is cancelled or Stop is called. Stop blocks until the worker has
// finished, including any work it still has to hand off.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// ContentSaver persists the text of one journal page.
type ContentSaver interface {
	SaveContent(ctx context.Context, userID string, page int, content string) (models.Entry, error)
}
