// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	activePageStyle = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1)
	pageStyle       = lipgloss.NewStyle().Padding(0, 1)
	gaugeFullStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	gaugeWarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)
