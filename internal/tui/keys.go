// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	tab       key.Binding
	backtab   key.Binding
	esc       key.Binding
	quit      key.Binding
	toggle    key.Binding
	refresh   key.Binding
	copy      key.Binding
	buildInfo key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	tab:       key.NewBinding(key.WithKeys("tab", "right", "l")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab", "left", "h")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	toggle:    key.NewBinding(key.WithKeys("s")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	copy:      key.NewBinding(key.WithKeys("c", "enter")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
}
