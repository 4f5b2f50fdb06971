// Copyright 2026 The Chipselect Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/fernhill/chipselect/lib/tui"
)

func TestApplyThemeOverlaysOnlySetFields(t *testing.T) {
	data := []byte("chip_background: \"#ff00ff\"\nnormal_text: \"231\"\n")

	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	theme := applyTheme(tui.DefaultTheme, file)
	if string(theme.ChipBackground) != "#ff00ff" {
		t.Errorf("chip background not applied, got %q", theme.ChipBackground)
	}
	if string(theme.NormalText) != "231" {
		t.Errorf("normal text not applied, got %q", theme.NormalText)
	}
	if theme.FaintText != tui.DefaultTheme.FaintText {
		t.Error("unset fields must keep the base theme's colors")
	}
}

func TestApplyThemeEmptyFileKeepsBase(t *testing.T) {
	theme := applyTheme(tui.LightTheme, themeFile{})
	if theme != tui.LightTheme {
		t.Error("an empty override file must leave the base theme untouched")
	}
}
