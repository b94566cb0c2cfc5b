// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-dabria/internal/app"
	"github.com/MKhiriev/go-dabria/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type authMode int

const (
	modeSignIn authMode = iota
	modeSignUp
)

func (m authMode) title() string {
	if m == modeSignUp {
		return "SIGN UP"
	}
	return "SIGN IN"
}

// AuthModel is the Bubble Tea model for the sign-in and sign-up screen. It
// renders two text inputs (username and password) and dispatches an async
// command on submission. ctrl+t switches between signing in and signing up.
// On success an [AuthResult] is produced and handled by [RootModel] to finish
// the authentication flow; on failure the message is shown inline.
type AuthModel struct {
	ctx  context.Context
	auth service.AuthService

	mode       authMode
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewAuthModel creates an [AuthModel] in the given mode with the username
// field focused and the password field masked.
func NewAuthModel(ctx context.Context, auth service.AuthService, mode authMode) *AuthModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	usernameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &AuthModel{
		ctx:    ctx,
		auth:   auth,
		mode:   mode,
		inputs: []textinput.Model{usernameInput, passwordInput},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *AuthModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [AuthResult]  clears the submitting state; on error, shows the message.
//   - esc           navigates back to the menu.
//   - tab/shift+tab moves focus between the inputs.
//   - ctrl+t        switches between sign-in and sign-up.
//   - enter         dispatches the async sign-in or sign-up command.
//
// All other key events are forwarded to the focused input widget.
func (m *AuthModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(AuthResult); ok {
		m.submitting = false
		m.errMsg = app.MessageFor(result.Err)
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.toggleMode):
			if m.mode == modeSignIn {
				m.mode = modeSignUp
			} else {
				m.mode = modeSignIn
			}
			m.errMsg = ""
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSubmit(strings.TrimSpace(m.inputs[0].Value()), m.inputs[1].Value())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *AuthModel) View() string {
	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Username │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	action := "Sign in"
	if m.mode == modeSignUp {
		action = "Sign up"
	}
	if m.submitting {
		b.WriteString("\n[" + action + "...]\n")
	} else {
		b.WriteString("\n[" + action + "]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(m.mode.title(), strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ ctrl+t: sign in/sign up │ enter: submit")
}

func (m *AuthModel) cmdSubmit(username, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	mode := m.mode

	return func() tea.Msg {
		submit := auth.SignIn
		if mode == modeSignUp {
			submit = auth.SignUp
		}

		user, err := submit(ctx, username, password)
		return AuthResult{User: user, Err: err}
	}
}

func (m *AuthModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *AuthModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
