// Copyright 2026 The Chipselect Authors
// SPDX-License-Identifier: Apache-2.0

package chipselect

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/fernhill/chipselect/lib/tui"
)

// chipSpan records where one chip's remove glyph lands within the
// control row. Computed deterministically from state so the mouse
// handler and the renderer always agree.
type chipSpan struct {
	value   string
	removeX int // Cell of the × glyph, relative to the control row's left edge.
}

// chipLayout walks the selection once, producing both the rendered
// chips and their remove-glyph positions. Each chip is the label on a
// solid background followed by a × glyph; chips are separated by one
// space, and the input area starts after the last separator.
func (model Model) chipLayout() ([]string, []chipSpan) {
	bodyStyle := lipgloss.NewStyle().
		Background(model.theme.ChipBackground).
		Foreground(model.theme.ChipForeground)
	removeStyle := lipgloss.NewStyle().
		Background(model.theme.ChipBackground).
		Foreground(model.theme.ChipRemoveGlyph)

	var rendered []string
	var spans []chipSpan
	x := 0
	for _, value := range model.values {
		body := " " + displayLabel(model.pool, value) + " "
		bodyWidth := ansi.StringWidth(body)

		rendered = append(rendered, bodyStyle.Render(body)+removeStyle.Render("×"))
		spans = append(spans, chipSpan{value: value, removeX: x + bodyWidth})

		// Chip cells plus the separating space.
		x += bodyWidth + 1 + 1
	}
	return rendered, spans
}

// chipRemoveAt resolves a control-row cell to the chip whose remove
// glyph occupies it.
func (model Model) chipRemoveAt(x int) (string, bool) {
	_, spans := model.chipLayout()
	for _, span := range spans {
		if x == span.removeX {
			return span.value, true
		}
	}
	return "", false
}

// View renders the selector: the control row, plus the candidate
// panel below it when open.
func (model Model) View() string {
	control := model.viewControl()
	if !model.open {
		return control
	}
	return control + "\n" + model.viewPanel()
}

// viewControl renders the control row: chips, then the query text
// (or the placeholder while nothing is selected), then the
// expand/collapse indicator right-aligned at the edge.
func (model Model) viewControl() string {
	theme := model.theme

	chips, _ := model.chipLayout()
	content := strings.Join(chips, " ")
	if content != "" {
		content += " "
	}

	switch {
	case model.query != "":
		content += lipgloss.NewStyle().
			Foreground(theme.NormalText).
			Render(model.query)
	case len(model.values) == 0 && model.placeholder != "":
		content += lipgloss.NewStyle().
			Foreground(theme.PlaceholderText).
			Render(model.placeholder)
	}

	if model.open && model.inputFocused {
		content += lipgloss.NewStyle().
			Foreground(theme.CursorForeground).
			Render("▎")
	}

	// One space plus the indicator occupy the right edge.
	indicator := "▾"
	if model.open {
		indicator = "▴"
	}
	available := model.width - 2
	if available < 0 {
		available = 0
	}
	used := ansi.StringWidth(content)
	if used > available {
		content = ansi.Truncate(content, available, "…")
		used = available
	}
	content += strings.Repeat(" ", available-used)
	content += " " + lipgloss.NewStyle().
		Foreground(theme.IndicatorForeground).
		Render(indicator)

	return content
}

// viewPanel renders the windowed candidate rows, with a proportional
// scrollbar column when the list overflows the window.
func (model Model) viewPanel() string {
	theme := model.theme
	candidates := model.Candidates()
	total := len(candidates)
	visible := model.panelRows()

	if total == 0 {
		notice := "  no matching options"
		return lipgloss.NewStyle().
			Background(theme.PanelBackground).
			Foreground(theme.FaintText).
			Render(padToWidth(notice, model.width))
	}

	rowWidth := model.width
	hasScrollbar := total > visible
	if hasScrollbar {
		rowWidth--
	}

	lines := make([]string, 0, visible)
	for row := 0; row < visible; row++ {
		index := model.scrollOffset + row
		lines = append(lines, model.renderRow(candidates[index], index == model.activeIndex, rowWidth))
	}
	body := strings.Join(lines, "\n")

	if hasScrollbar {
		scrollbar := tui.RenderScrollbar(theme, visible, total, visible, model.scrollOffset)
		return lipgloss.JoinHorizontal(lipgloss.Top, body, scrollbar)
	}
	return body
}

// renderRow renders one candidate row: highlight marker, content,
// right padding, and a single row-wide style. Selected options carry
// a trailing check mark; disabled options render faint; the create
// row shows the would-be label.
func (model Model) renderRow(candidate Candidate, active bool, rowWidth int) string {
	theme := model.theme

	marker := "  "
	if active {
		marker = "> "
	}

	var content string
	switch {
	case candidate.Create:
		content = `+ create "` + candidate.Option.Label + `"`
	case model.renderOption != nil:
		content = model.renderOption(candidate.Option, isSelected(model.values, candidate.Option.Value))
	default:
		option := candidate.Option
		if option.Icon != "" {
			content = option.Icon + " "
		}
		content += option.Label
		if isSelected(model.values, option.Value) {
			content += " ✓"
		}
	}

	text := marker + content
	textWidth := ansi.StringWidth(text)
	if textWidth > rowWidth {
		text = ansi.Truncate(text, rowWidth, "…")
	} else {
		text += strings.Repeat(" ", rowWidth-textWidth)
	}

	style := lipgloss.NewStyle().Background(theme.PanelBackground)
	switch {
	case active:
		style = lipgloss.NewStyle().
			Background(theme.SelectedBackground).
			Foreground(theme.SelectedForeground)
	case candidate.Create:
		style = style.Foreground(theme.CreateForeground)
	case candidate.Option.Disabled:
		style = style.Foreground(theme.DisabledText)
	default:
		style = style.Foreground(theme.NormalText)
	}
	return style.Render(text)
}

// padToWidth right-pads text with spaces to the given visible width,
// truncating when it overflows.
func padToWidth(text string, width int) string {
	textWidth := ansi.StringWidth(text)
	if textWidth > width {
		return ansi.Truncate(text, width, "…")
	}
	return text + strings.Repeat(" ", width-textWidth)
}
