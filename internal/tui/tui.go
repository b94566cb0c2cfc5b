// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the journal. It signs the user
// in and then shows the journal pages, reading through the live
// subscriptions of the journal service and writing through the autosaver.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-dabria/internal/live"
	"github.com/MKhiriev/go-dabria/internal/logger"
	"github.com/MKhiriev/go-dabria/internal/service"
	"github.com/MKhiriev/go-dabria/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	auth      service.AuthService
	journal   service.JournalService
	saver     PageSaver
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, saver PageSaver, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || saver == nil {
		return nil, errors.New("tui: services and saver are required")
	}
	return &TUI{
		auth:      services.AuthService,
		journal:   services.JournalService,
		saver:     saver,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// AuthFlow shows the sign-in/sign-up screens until a user is signed in.
// Returns ErrUserQuit if the user quits instead.
func (t *TUI) AuthFlow(ctx context.Context) (models.User, error) {
	pages := map[string]tea.Model{
		pageMenu:   NewMenuModel(),
		pageSignIn: NewAuthModel(ctx, t.auth, modeSignIn),
		pageSignUp: NewAuthModel(ctx, t.auth, modeSignUp),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return models.User{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser || result.user.ID == "" {
		return models.User{}, ErrUserQuit
	}

	t.logger.Info().Str("func", "TUI.AuthFlow").Str("user_id", result.user.ID).Msg("user signed in")
	return result.user, nil
}

// Journal shows the journal of user until the user quits or signs out.
func (t *TUI) Journal(ctx context.Context, user models.User) (logout bool, err error) {
	ctx, cancel := context.WithCancel(ctx)
	// closes every subscription
	defer cancel()

	pageSubs := make([]*live.Subscription[*models.Entry], 0, models.LastPage)
	for page := models.FirstPage; page <= models.LastPage; page++ {
		sub, err := t.journal.SubscribeToPage(ctx, user.ID, page)
		if err != nil {
			return false, fmt.Errorf("subscribe to page %d: %w", page, err)
		}
		pageSubs = append(pageSubs, sub)
	}

	usageSub, err := t.journal.SubscribeToUsage(ctx, user.ID)
	if err != nil {
		return false, fmt.Errorf("subscribe to usage: %w", err)
	}

	model := NewJournalModel(ctx, user, t.journal, t.saver, pageSubs, usageSub)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(*JournalModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.Logout(), nil
}
