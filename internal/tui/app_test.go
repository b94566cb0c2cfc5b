// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-dabria/internal/mock"
	"github.com/MKhiriev/go-dabria/internal/service"
	"github.com/MKhiriev/go-dabria/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRoot(t *testing.T) RootModel {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)

	pages := map[string]tea.Model{
		pageMenu:   NewMenuModel(),
		pageSignIn: NewAuthModel(context.Background(), auth, modeSignIn),
		pageSignUp: NewAuthModel(context.Background(), auth, modeSignUp),
	}
	return NewRootModel(pages, pageMenu, models.NewAppBuildInfo("v1.2.3", "2026-10-01", "abc123"))
}

func TestRootModel_MenuNavigates(t *testing.T) {
	root := newTestRoot(t)

	var m tea.Model = root
	m, _ = press(m, tea.KeyDown)
	m, cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)

	nav := cmd()
	assert.Equal(t, NavigateTo{Page: pageSignUp}, nav)

	m, _ = m.Update(nav)
	assert.Contains(t, m.View(), "SIGN UP")
}

func TestRootModel_UnknownPageIsIgnored(t *testing.T) {
	var m tea.Model = newTestRoot(t)

	m, cmd := m.Update(NavigateTo{Page: "nowhere"})
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "JOURNAL")
}

func TestRootModel_SuccessfulAuthQuits(t *testing.T) {
	var m tea.Model = newTestRoot(t)
	user := models.User{ID: "user-1", Username: "anna"}

	m, cmd := m.Update(AuthResult{User: user})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, user, m.(RootModel).user)
}

func TestRootModel_FailedAuthStaysOnPage(t *testing.T) {
	var m tea.Model = newTestRoot(t)
	m, _ = m.Update(NavigateTo{Page: pageSignIn})

	m, _ = m.Update(AuthResult{Err: service.ErrAuthFailure})
	assert.Empty(t, m.(RootModel).user.ID)
	assert.Contains(t, m.View(), "Invalid username or password")
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	var m tea.Model = newTestRoot(t)

	m, cmd := press(m, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.True(t, m.(RootModel).quitByUser)
}

func TestRootModel_BuildInfo(t *testing.T) {
	var m tea.Model = newTestRoot(t)

	m = typeText(m, "v")
	view := m.View()
	assert.Contains(t, view, "v1.2.3")
	assert.Contains(t, view, "abc123")

	m, _ = press(m, tea.KeyEsc)
	assert.NotContains(t, m.View(), "v1.2.3")
}
