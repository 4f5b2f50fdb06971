// Copyright 2026 The Chipselect Authors
// SPDX-License-Identifier: Apache-2.0

package chipselect

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fernhill/chipselect/lib/tui"
)

// Default dimensions. Width covers the control row and the panel;
// panel height is the maximum number of candidate rows shown at once.
const (
	defaultWidth       = 44
	defaultPanelHeight = 8
)

// ChangedMsg is the single notification channel from the widget to
// its host: delivered through the command returned by [Model.Update]
// after every state-affecting user action. Values is the complete
// next selection (not a delta). Options is nil unless the option pool
// itself changed, i.e. after an on-the-fly create.
type ChangedMsg struct {
	Values  []string
	Options []Option
}

// inputFocusMsg is the deferred focus delivered one frame after the
// panel opens. Deferring keeps the open transition cheap; if the
// panel closed (or the program stopped) before delivery, the message
// is a no-op rather than acting on a dismissed widget.
type inputFocusMsg struct{}

func scheduleInputFocus() tea.Msg {
	return inputFocusMsg{}
}

// Config configures a selector. The zero value of every field is a
// usable default: creation enabled, panel kept open after a pick,
// built-in theme and key bindings.
type Config struct {
	// Options is the authoritative candidate set from the host.
	Options []Option

	// Values is the current selection, in the order the picks were
	// made.
	Values []string

	// Placeholder is shown in the input while nothing is selected
	// and the query is empty.
	Placeholder string

	// DisableCreate turns off the create-new-option flow.
	DisableCreate bool

	// CloseOnSelect closes the panel after each pick. Off by
	// default so multiple picks can be made in sequence.
	CloseOnSelect bool

	// MaxPanelHeight caps the number of visible candidate rows.
	// Zero means the built-in default. Overflow scrolls.
	MaxPanelHeight int

	// Width is the rendered width in cells. Zero means the
	// built-in default.
	Width int

	// RenderOption overrides how a candidate row's content is
	// drawn. The default shows icon, label, and a check mark when
	// selected. The synthetic create row keeps its built-in
	// rendering.
	RenderOption func(option Option, selected bool) string

	Theme  tui.Theme
	KeyMap KeyMap
}

// Model is a searchable multi-value selector. Create one with [New],
// route messages to [Model.Update], and compose [Model.View] into the
// host's output. Each instance owns its own query, pool, open flag,
// and active index.
type Model struct {
	keymap         KeyMap
	theme          tui.Theme
	placeholder    string
	allowCreate    bool
	closeOnSelect  bool
	maxPanelHeight int
	renderOption   func(option Option, selected bool) string

	// pool is the working copy of the option list: seeded from the
	// config, replaced wholesale by SetOptions, extended by create.
	pool []Option

	// values is the working copy of the selection. Every mutation
	// is proposed to the host via ChangedMsg; the host re-seeds
	// through SetValues when it owns a different truth.
	values []string

	query string

	open         bool
	focused      bool
	inputFocused bool

	// activeIndex is the highlighted candidate row: -1 means no row
	// highlighted, otherwise an index into the candidate list.
	activeIndex int

	scrollOffset int

	width   int
	originX int
	originY int
}

// New creates a selector from a config.
func New(config Config) Model {
	theme := config.Theme
	if theme == (tui.Theme{}) {
		theme = tui.DefaultTheme
	}
	keymap := config.KeyMap
	if len(keymap.Select.Keys()) == 0 {
		keymap = DefaultKeyMap
	}
	width := config.Width
	if width <= 0 {
		width = defaultWidth
	}
	maxPanelHeight := config.MaxPanelHeight
	if maxPanelHeight <= 0 {
		maxPanelHeight = defaultPanelHeight
	}

	return Model{
		keymap:         keymap,
		theme:          theme,
		placeholder:    config.Placeholder,
		allowCreate:    !config.DisableCreate,
		closeOnSelect:  config.CloseOnSelect,
		maxPanelHeight: maxPanelHeight,
		renderOption:   config.RenderOption,
		pool:           append([]Option(nil), config.Options...),
		values:         append([]string(nil), config.Values...),
		activeIndex:    -1,
		width:          width,
	}
}

// Values returns the current selection in pick order.
func (model Model) Values() []string {
	return append([]string(nil), model.values...)
}

// Options returns the current option pool, including any options
// created on the fly since the last SetOptions.
func (model Model) Options() []Option {
	return append([]Option(nil), model.pool...)
}

// Query returns the current free-text filter query.
func (model Model) Query() string {
	return model.query
}

// IsOpen reports whether the candidate panel is visible.
func (model Model) IsOpen() bool {
	return model.open
}

// Focused reports whether the selector has keyboard focus.
func (model Model) Focused() bool {
	return model.focused
}

// ActiveIndex returns the highlighted candidate row, -1 when no row
// is highlighted.
func (model Model) ActiveIndex() int {
	return model.activeIndex
}

// Candidates returns the derived candidate list: filtered options
// plus the create row when eligible.
func (model Model) Candidates() []Candidate {
	return Candidates(model.pool, model.query, model.allowCreate)
}

// Height returns the current rendered height in rows: the control
// row plus the panel when open. Hosts use this for layout.
func (model Model) Height() int {
	if !model.open {
		return 1
	}
	return 1 + model.panelRows()
}

// SetOptions replaces the option pool wholesale. Locally created
// options not present in the new list are dropped, not merged.
func (model *Model) SetOptions(options []Option) {
	model.pool = append([]Option(nil), options...)
	if model.open {
		model.resetActive()
	}
}

// SetValues replaces the working selection.
func (model *Model) SetValues(values []string) {
	model.values = append([]string(nil), values...)
}

// SetPosition tells the selector where its top-left corner renders
// on screen, so mouse events can be judged inside or outside the
// widget's bounds.
func (model *Model) SetPosition(x, y int) {
	model.originX = x
	model.originY = y
}

// SetWidth changes the rendered width.
func (model *Model) SetWidth(width int) {
	if width > 0 {
		model.width = width
	}
}

// Focus gives the selector keyboard focus and opens the panel. The
// returned command delivers the deferred input focus.
func (model *Model) Focus() tea.Cmd {
	model.focused = true
	return model.openPanel()
}

// Blur removes keyboard focus and closes the panel.
func (model *Model) Blur() {
	model.focused = false
	model.closePanel()
}

// Update routes a message to the selector. The returned command, when
// non-nil, delivers a ChangedMsg (after a mutation) or the deferred
// input focus (after an open).
func (model Model) Update(message tea.Msg) (Model, tea.Cmd) {
	switch message := message.(type) {
	case inputFocusMsg:
		if model.open && model.focused {
			model.inputFocused = true
		}
		return model, nil

	case tea.KeyMsg:
		if !model.focused {
			return model, nil
		}
		return model.handleKey(message)

	case tea.MouseMsg:
		return model.handleMouse(message)
	}

	return model, nil
}

// handleKey maps keyboard input to navigation, selection, creation,
// and query editing.
func (model Model) handleKey(message tea.KeyMsg) (Model, tea.Cmd) {
	if !model.open {
		switch {
		case key.Matches(message, model.keymap.Down),
			key.Matches(message, model.keymap.Up),
			key.Matches(message, model.keymap.Select),
			message.Type == tea.KeySpace:
			// While closed, the opening keys only open the panel.
			// Their navigational effect waits for the next event.
			return model, model.openPanel()

		case message.Type == tea.KeyRunes:
			// Typing opens the panel and starts the query.
			cmd := model.openPanel()
			model.appendQuery(string(message.Runes))
			return model, cmd

		case key.Matches(message, model.keymap.RemoveLast):
			if model.query == "" && len(model.values) > 0 {
				return model.removeValue(model.values[len(model.values)-1])
			}
		}
		return model, nil
	}

	switch {
	case key.Matches(message, model.keymap.Close):
		model.closePanel()

	case key.Matches(message, model.keymap.Down):
		model.moveActive(1)

	case key.Matches(message, model.keymap.Up):
		model.moveActive(-1)

	case key.Matches(message, model.keymap.Home):
		model.jumpActive(0)

	case key.Matches(message, model.keymap.End):
		model.jumpActive(len(model.Candidates()) - 1)

	case key.Matches(message, model.keymap.Select):
		return model.resolveActive()

	case key.Matches(message, model.keymap.RemoveLast):
		if model.query == "" {
			if len(model.values) > 0 {
				return model.removeValue(model.values[len(model.values)-1])
			}
			return model, nil
		}
		model.backspaceQuery()

	case message.Type == tea.KeySpace:
		model.appendQuery(" ")

	case message.Type == tea.KeyRunes:
		model.appendQuery(string(message.Runes))
	}

	return model, nil
}

// resolveActive carries out the Enter action against the highlighted
// row. With no row highlighted it falls back to the first filtered
// option, then to creation. Activating the create row while the query
// exactly matches an existing option toggles that option instead of
// creating a duplicate.
func (model Model) resolveActive() (Model, tea.Cmd) {
	candidates := model.Candidates()

	if model.activeIndex < 0 || model.activeIndex >= len(candidates) {
		filtered := Filter(model.pool, model.query)
		if len(filtered) > 0 {
			return model.toggleOption(filtered[0])
		}
		if createEligible(model.pool, model.query, model.allowCreate) {
			return model.createFromLabel(model.query)
		}
		return model, nil
	}

	candidate := candidates[model.activeIndex]
	if candidate.Create {
		if match, exact := ExactMatch(model.pool, model.query); exact {
			return model.toggleOption(match)
		}
		return model.createFromLabel(candidate.Option.Label)
	}
	return model.toggleOption(candidate.Option)
}

// toggleOption toggles an option and reports the next selection.
// Side effects per pick: query cleared, highlight and scroll reset,
// panel closed when CloseOnSelect is set. Disabled options are
// silently ignored.
func (model Model) toggleOption(option Option) (Model, tea.Cmd) {
	next, changed := Toggle(model.values, option)
	if !changed {
		return model, nil
	}
	model.values = next
	model.query = ""
	model.resetActive()
	if model.closeOnSelect {
		model.closePanel()
	}
	return model, reportChange(next, nil)
}

// removeValue removes a single value (chip-level removal). Unlike a
// pick, this does not clear the query or reset the highlight.
func (model Model) removeValue(value string) (Model, tea.Cmd) {
	next, changed := Remove(model.values, value)
	if !changed {
		return model, nil
	}
	model.values = next
	return model, reportChange(next, nil)
}

// createFromLabel creates a new option from a label, selects it, and
// reports both the next selection and the extended pool.
func (model Model) createFromLabel(label string) (Model, tea.Cmd) {
	nextPool, nextValues, changed := CreateOption(model.pool, model.values, label)
	if !changed {
		return model, nil
	}
	model.pool = nextPool
	model.values = nextValues
	model.query = ""
	model.resetActive()
	if model.closeOnSelect {
		model.closePanel()
	}
	return model, reportChange(nextValues, nextPool)
}

// handleMouse routes pointer input. A press outside the widget's
// bounds closes the panel; a press on the control row removes the
// clicked chip or opens the panel; a press on a panel row activates
// that row. The wheel scrolls the panel window.
func (model Model) handleMouse(message tea.MouseMsg) (Model, tea.Cmd) {
	if message.Action != tea.MouseActionPress {
		return model, nil
	}

	if !model.contains(message.X, message.Y) {
		switch message.Button {
		case tea.MouseButtonLeft, tea.MouseButtonRight, tea.MouseButtonMiddle:
			model.closePanel()
		}
		return model, nil
	}

	switch message.Button {
	case tea.MouseButtonWheelUp:
		model.scrollBy(-1)
		return model, nil
	case tea.MouseButtonWheelDown:
		model.scrollBy(1)
		return model, nil
	}
	if message.Button != tea.MouseButtonLeft {
		return model, nil
	}

	row := message.Y - model.originY
	if row == 0 {
		if value, onRemove := model.chipRemoveAt(message.X - model.originX); onRemove {
			return model.removeValue(value)
		}
		model.focused = true
		return model, model.openPanel()
	}

	index := model.scrollOffset + row - 1
	candidates := model.Candidates()
	if index < 0 || index >= len(candidates) {
		return model, nil
	}
	candidate := candidates[index]
	if candidate.Create {
		if match, exact := ExactMatch(model.pool, model.query); exact {
			return model.toggleOption(match)
		}
		return model.createFromLabel(candidate.Option.Label)
	}
	return model.toggleOption(candidate.Option)
}

// contains reports whether a screen cell falls within the widget's
// current bounds: the control row, plus the panel rows when open.
func (model Model) contains(x, y int) bool {
	if x < model.originX || x >= model.originX+model.width {
		return false
	}
	row := y - model.originY
	if row == 0 {
		return true
	}
	if !model.open {
		return false
	}
	return row >= 1 && row <= model.panelRows()
}

// openPanel opens the candidate panel, applies the highlight
// re-entry rule, and schedules the deferred input focus.
func (model *Model) openPanel() tea.Cmd {
	if model.open {
		return nil
	}
	model.open = true
	model.resetActive()
	return scheduleInputFocus
}

func (model *Model) closePanel() {
	model.open = false
	model.inputFocused = false
}

// resetActive applies the highlight re-entry rule: whenever the
// panel opens, the query changes, or the candidate list length
// changes, the highlight returns to the first row (or none when the
// list is empty) and the panel scrolls to the top.
func (model *Model) resetActive() {
	if len(model.Candidates()) > 0 {
		model.activeIndex = 0
	} else {
		model.activeIndex = -1
	}
	model.scrollOffset = 0
}

// moveActive moves the highlight by delta, clamped to the candidate
// list bounds.
func (model *Model) moveActive(delta int) {
	candidates := model.Candidates()
	if len(candidates) == 0 {
		model.activeIndex = -1
		return
	}
	next := model.activeIndex + delta
	if next < 0 {
		next = 0
	}
	if next > len(candidates)-1 {
		next = len(candidates) - 1
	}
	model.activeIndex = next
	model.ensureVisible()
}

// jumpActive sets the highlight to an absolute index, clamped.
func (model *Model) jumpActive(index int) {
	candidates := model.Candidates()
	if len(candidates) == 0 {
		model.activeIndex = -1
		return
	}
	if index < 0 {
		index = 0
	}
	if index > len(candidates)-1 {
		index = len(candidates) - 1
	}
	model.activeIndex = index
	model.ensureVisible()
}

// appendQuery adds typed text to the query and applies the highlight
// re-entry rule.
func (model *Model) appendQuery(text string) {
	model.query += text
	model.resetActive()
}

// backspaceQuery removes the last rune from the query.
func (model *Model) backspaceQuery() {
	runes := []rune(model.query)
	if len(runes) == 0 {
		return
	}
	model.query = string(runes[:len(runes)-1])
	model.resetActive()
}

// panelRows returns the number of rows the open panel occupies:
// the windowed candidate rows, or one row for the empty notice.
func (model Model) panelRows() int {
	total := len(model.Candidates())
	if total == 0 {
		return 1
	}
	if total > model.maxPanelHeight {
		return model.maxPanelHeight
	}
	return total
}

// ensureVisible adjusts the scroll window so the highlighted row is
// on screen. Runs synchronously with every index change.
func (model *Model) ensureVisible() {
	if model.activeIndex < 0 {
		model.scrollOffset = 0
		return
	}
	visible := model.panelRows()
	if model.activeIndex < model.scrollOffset {
		model.scrollOffset = model.activeIndex
	}
	if model.activeIndex >= model.scrollOffset+visible {
		model.scrollOffset = model.activeIndex - visible + 1
	}
}

// scrollBy moves the panel window without moving the highlight.
func (model *Model) scrollBy(delta int) {
	maxOffset := len(model.Candidates()) - model.panelRows()
	if maxOffset < 0 {
		maxOffset = 0
	}
	next := model.scrollOffset + delta
	if next < 0 {
		next = 0
	}
	if next > maxOffset {
		next = maxOffset
	}
	model.scrollOffset = next
}

// reportChange builds the single change notification for a mutation.
// The carried slices are copies so the host can retain them.
func reportChange(values []string, pool []Option) tea.Cmd {
	changed := ChangedMsg{Values: append([]string(nil), values...)}
	if pool != nil {
		changed.Options = append([]Option(nil), pool...)
	}
	return func() tea.Msg {
		return changed
	}
}
