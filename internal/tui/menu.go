// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	pageMenu   = "menu"
	pageSignIn = "signin"
	pageSignUp = "signup"
)

type MenuModel struct {
	items []string
	pages []string
	idx   int
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []string{"Sign in", "Sign up"},
		pages: []string{pageSignIn, pageSignUp},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		page := m.pages[m.idx]
		return m, func() tea.Msg { return NavigateTo{Page: page} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	width := lipgloss.Width("Action")
	for _, item := range m.items {
		width = max(width, lipgloss.Width(item))
	}

	b.WriteString(fmt.Sprintf("  # │ %-*s\n", width, "Action"))
	b.WriteString("────┼─")
	b.WriteString(strings.Repeat("─", width))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d │ %-*s\n", cursor, i+1, width, item))
	}

	return renderPage("JOURNAL", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version")
}
