// Copyright 2026 The Chipselect Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/fernhill/chipselect/lib/tui"
)

// themeFile mirrors the YAML theme override file. Every field is
// optional; empty fields keep the base theme's color. Colors are
// lipgloss values: ANSI 256 codes ("114") or hex ("#87d787").
type themeFile struct {
	NormalText      string `yaml:"normal_text"`
	FaintText       string `yaml:"faint_text"`
	PlaceholderText string `yaml:"placeholder_text"`

	SelectedBackground string `yaml:"selected_background"`
	SelectedForeground string `yaml:"selected_foreground"`

	ChipBackground  string `yaml:"chip_background"`
	ChipForeground  string `yaml:"chip_foreground"`
	ChipRemoveGlyph string `yaml:"chip_remove_glyph"`

	PanelBackground  string `yaml:"panel_background"`
	CheckForeground  string `yaml:"check_foreground"`
	CreateForeground string `yaml:"create_foreground"`
	DisabledText     string `yaml:"disabled_text"`

	IndicatorForeground string `yaml:"indicator_foreground"`
	CursorForeground    string `yaml:"cursor_foreground"`
	ScrollbarTrack      string `yaml:"scrollbar_track"`
	ScrollbarThumb      string `yaml:"scrollbar_thumb"`
}

// applyTheme overlays the non-empty fields of a theme file onto a
// base theme.
func applyTheme(base tui.Theme, file themeFile) tui.Theme {
	applyColor(&base.NormalText, file.NormalText)
	applyColor(&base.FaintText, file.FaintText)
	applyColor(&base.PlaceholderText, file.PlaceholderText)
	applyColor(&base.SelectedBackground, file.SelectedBackground)
	applyColor(&base.SelectedForeground, file.SelectedForeground)
	applyColor(&base.ChipBackground, file.ChipBackground)
	applyColor(&base.ChipForeground, file.ChipForeground)
	applyColor(&base.ChipRemoveGlyph, file.ChipRemoveGlyph)
	applyColor(&base.PanelBackground, file.PanelBackground)
	applyColor(&base.CheckForeground, file.CheckForeground)
	applyColor(&base.CreateForeground, file.CreateForeground)
	applyColor(&base.DisabledText, file.DisabledText)
	applyColor(&base.IndicatorForeground, file.IndicatorForeground)
	applyColor(&base.CursorForeground, file.CursorForeground)
	applyColor(&base.ScrollbarTrack, file.ScrollbarTrack)
	applyColor(&base.ScrollbarThumb, file.ScrollbarThumb)
	return base
}

func applyColor(target *lipgloss.Color, value string) {
	if value != "" {
		*target = lipgloss.Color(value)
	}
}

// loadTheme reads a YAML theme override file and applies it on top of
// the base theme.
func loadTheme(path string, base tui.Theme) (tui.Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading theme file: %w", err)
	}

	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return base, fmt.Errorf("parsing theme from %s: %w", path, err)
	}
	return applyTheme(base, file), nil
}
