// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	toggleMode key.Binding
	nextPage   key.Binding
	prevPage   key.Binding
	share      key.Binding
	logout     key.Binding
	version    key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	toggleMode: key.NewBinding(key.WithKeys("ctrl+t")),
	nextPage:   key.NewBinding(key.WithKeys("tab", "ctrl+right")),
	prevPage:   key.NewBinding(key.WithKeys("shift+tab", "ctrl+left")),
	share:      key.NewBinding(key.WithKeys("ctrl+y")),
	logout:     key.NewBinding(key.WithKeys("ctrl+l")),
	version:    key.NewBinding(key.WithKeys("v")),
}
