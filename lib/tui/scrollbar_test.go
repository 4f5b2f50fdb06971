// Copyright 2026 The Chipselect Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"
)

func TestScrollbarContentFits(t *testing.T) {
	scrollbar := RenderScrollbar(DefaultTheme, 4, 3, 4, 0)
	lines := strings.Split(scrollbar, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	for index, line := range lines {
		if !strings.Contains(line, "┃") {
			t.Errorf("line %d: thumb should span the full height when content fits", index)
		}
	}
}

func TestScrollbarThumbAtTop(t *testing.T) {
	scrollbar := RenderScrollbar(DefaultTheme, 4, 16, 4, 0)
	lines := strings.Split(scrollbar, "\n")
	if !strings.Contains(lines[0], "┃") {
		t.Error("thumb should start at the top when scrolled to the top")
	}
	if !strings.Contains(lines[3], "│") {
		t.Error("track should show below the thumb")
	}
}

func TestScrollbarThumbAtBottom(t *testing.T) {
	scrollbar := RenderScrollbar(DefaultTheme, 4, 16, 4, 12)
	lines := strings.Split(scrollbar, "\n")
	if !strings.Contains(lines[3], "┃") {
		t.Error("thumb should reach the bottom when fully scrolled")
	}
	if !strings.Contains(lines[0], "│") {
		t.Error("track should show above the thumb")
	}
}

func TestScrollbarZeroHeight(t *testing.T) {
	if RenderScrollbar(DefaultTheme, 0, 10, 4, 0) != "" {
		t.Error("zero height should render nothing")
	}
}
