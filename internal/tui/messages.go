// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-dabria/internal/workers"
	"github.com/MKhiriev/go-dabria/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo asks the RootModel to switch to another page. Payload, if set,
// is delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthResult is produced when a sign-in or sign-up attempt finishes.
type AuthResult struct {
	User models.User
	Err  error
}

type pageEntryMsg struct {
	page  int
	entry *models.Entry
}

type usageMsg struct {
	used int64
}

type usageLoadedMsg struct {
	usage models.Usage
	err   error
}

type saveResultMsg workers.SaveResult

// flushedMsg carries the outcome of writing the queued pages before the
// journal screen is left.
type flushedMsg struct {
	results []workers.SaveResult
	logout  bool
}

type copiedMsg struct {
	page int
	err  error
}

type clearStatusMsg struct{}
