// Copyright 2026 The Chipselect Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for chipselect's terminal widgets.
// All colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility.
//
// The fields cover both universal chrome (text, selection, borders)
// and the parts specific to a multi-value selector: chips, the
// candidate panel, and the synthetic create row.
type Theme struct {
	// Text colors.
	NormalText      lipgloss.Color
	FaintText       lipgloss.Color
	PlaceholderText lipgloss.Color

	// Highlighted candidate row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Chips: the removable tokens representing current selections.
	ChipBackground   lipgloss.Color
	ChipForeground   lipgloss.Color
	ChipRemoveGlyph  lipgloss.Color // The × glyph inside a chip.

	// Candidate panel.
	PanelBackground   lipgloss.Color
	CheckForeground   lipgloss.Color // The ✓ next to already-selected rows.
	CreateForeground  lipgloss.Color // The synthetic create row.
	DisabledText      lipgloss.Color

	// UI chrome.
	IndicatorForeground lipgloss.Color // The expand/collapse arrow.
	CursorForeground    lipgloss.Color // The text input cursor glyph.
	ScrollbarTrack      lipgloss.Color
	ScrollbarThumb      lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed
// for 256-color terminals with a dark background (the common case for
// development environments and tmux sessions).
var DefaultTheme = Theme{
	NormalText:      lipgloss.Color("252"),
	FaintText:       lipgloss.Color("245"),
	PlaceholderText: lipgloss.Color("240"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	ChipBackground:  lipgloss.Color("24"),
	ChipForeground:  lipgloss.Color("255"),
	ChipRemoveGlyph: lipgloss.Color("117"),

	PanelBackground:  lipgloss.Color("235"),
	CheckForeground:  lipgloss.Color("78"),
	CreateForeground: lipgloss.Color("114"),
	DisabledText:     lipgloss.Color("240"),

	IndicatorForeground: lipgloss.Color("245"),
	CursorForeground:    lipgloss.Color("81"),
	ScrollbarTrack:      lipgloss.Color("238"),
	ScrollbarThumb:      lipgloss.Color("245"),
}

// LightTheme is the counterpart scheme for light-background
// terminals. Selected by the demo host when the terminal reports a
// light background.
var LightTheme = Theme{
	NormalText:      lipgloss.Color("235"),
	FaintText:       lipgloss.Color("243"),
	PlaceholderText: lipgloss.Color("249"),

	SelectedBackground: lipgloss.Color("253"),
	SelectedForeground: lipgloss.Color("232"),

	ChipBackground:  lipgloss.Color("153"),
	ChipForeground:  lipgloss.Color("232"),
	ChipRemoveGlyph: lipgloss.Color("25"),

	PanelBackground:  lipgloss.Color("255"),
	CheckForeground:  lipgloss.Color("28"),
	CreateForeground: lipgloss.Color("22"),
	DisabledText:     lipgloss.Color("249"),

	IndicatorForeground: lipgloss.Color("243"),
	CursorForeground:    lipgloss.Color("26"),
	ScrollbarTrack:      lipgloss.Color("252"),
	ScrollbarThumb:      lipgloss.Color("243"),
}
