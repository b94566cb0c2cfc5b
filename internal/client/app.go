// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-dabria/internal/logger"
	"github.com/MKhiriev/go-dabria/internal/tui"
	"github.com/MKhiriev/go-dabria/internal/workers"
	"github.com/MKhiriev/go-dabria/models"
)

type App struct {
	ui      UI
	workers workers.Worker
	logger  *logger.Logger
}

func NewApp(ui UI, w workers.Worker, log *logger.Logger) (*App, error) {
	if ui == nil || w == nil {
		return nil, errors.New("client: ui and workers are required")
	}
	if log == nil {
		log = logger.Nop()
	}
	return &App{ui: ui, workers: w, logger: log}, nil
}

// Run signs a user in and shows their journal. Signing out returns to the
// sign-in screen; quitting ends Run with a nil error.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	for {
		user, err := a.ui.AuthFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("auth flow: %w", err)
		}

		logout, err := a.session(ctx, user)
		if err != nil {
			return fmt.Errorf("journal: %w", err)
		}
		if !logout {
			return nil
		}

		a.logger.Info().
			Str("func", "App.Run").
			Str("user_id", user.ID).
			Msg("user signed out")
	}
}

// session runs the workers for as long as user is writing. Stopping them
// saves every page still pending.
func (a *App) session(ctx context.Context, user models.User) (bool, error) {
	a.workers.Start(ctx)
	defer a.workers.Stop()

	return a.ui.Journal(ctx, user)
}
