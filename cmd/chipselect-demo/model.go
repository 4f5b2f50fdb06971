// Copyright 2026 The Chipselect Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fernhill/chipselect/lib/chipselect"
)

// Screen geometry: the selector renders indented by selectorMargin
// cells, starting under a one-line header and a blank line.
const (
	selectorMargin = 2
	selectorRow    = 2
)

// demoModel is the host model: it owns the authoritative selection
// and option pool, and treats the selector the way any embedding
// application would — forwarding events, consuming ChangedMsg.
type demoModel struct {
	selector chipselect.Model

	// values and pool mirror the latest change notification. The
	// host, not the widget, is the source of truth.
	values []string
	pool   []chipselect.Option

	initCmd  tea.Cmd
	quitting bool
}

func newDemoModel(selector chipselect.Model) demoModel {
	selector.SetPosition(selectorMargin, selectorRow)
	initCmd := selector.Focus()
	return demoModel{
		selector: selector,
		values:   selector.Values(),
		pool:     selector.Options(),
		initCmd:  initCmd,
	}
}

func (demo demoModel) Init() tea.Cmd {
	return demo.initCmd
}

func (demo demoModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		available := message.Width - 2*selectorMargin
		if available > 60 {
			available = 60
		}
		if available > 0 {
			demo.selector.SetWidth(available)
		}
		return demo, nil

	case tea.KeyMsg:
		switch message.Type {
		case tea.KeyCtrlC:
			demo.quitting = true
			return demo, tea.Quit
		case tea.KeyEscape:
			// Esc closes the panel first; a second Esc quits.
			if !demo.selector.IsOpen() {
				demo.quitting = true
				return demo, tea.Quit
			}
		}

	case chipselect.ChangedMsg:
		demo.values = message.Values
		if message.Options != nil {
			demo.pool = message.Options
		}
		return demo, nil
	}

	selector, cmd := demo.selector.Update(message)
	demo.selector = selector
	return demo, cmd
}

func (demo demoModel) View() string {
	if demo.quitting {
		return ""
	}

	indent := strings.Repeat(" ", selectorMargin)

	var view strings.Builder
	view.WriteString(indent + "chipselect demo\n")
	view.WriteString("\n")
	for _, line := range strings.Split(demo.selector.View(), "\n") {
		view.WriteString(indent + line + "\n")
	}
	view.WriteString("\n")

	if len(demo.values) > 0 {
		view.WriteString(indent + "selected: " + strings.Join(demo.values, ", ") + "\n")
	} else {
		view.WriteString(indent + "nothing selected\n")
	}
	view.WriteString("\n")
	view.WriteString(indent + "↑/↓ move · Enter pick · Esc close/quit · Ctrl+C quit\n")
	return view.String()
}
