// Copyright 2026 The Chipselect Authors
// SPDX-License-Identifier: Apache-2.0

package chipselect

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the selector. Text input keys
// (printable runes, space, backspace-as-editing) are handled
// positionally by the model and are not rebindable.
type KeyMap struct {
	// Candidate navigation while the panel is open.
	Up   key.Binding
	Down key.Binding
	Home key.Binding
	End  key.Binding

	// Select resolves the active row (or opens the panel when
	// closed). RemoveLast pops the most recent chip when the query
	// is empty.
	Select     key.Binding
	RemoveLast key.Binding

	// Close dismisses the panel without changing the selection.
	Close key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "previous"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "next"),
	),
	Home: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("Home", "first"),
	),
	End: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("End", "last"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "select"),
	),
	RemoveLast: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("BS", "remove last"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "close"),
	),
}
