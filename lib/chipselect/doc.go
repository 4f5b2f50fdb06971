// Copyright 2026 The Chipselect Authors
// SPDX-License-Identifier: Apache-2.0

// Package chipselect implements a searchable multi-value selector for
// terminal UIs: pick zero or more options from a list, optionally
// create new options on the fly, and see the current picks rendered
// as removable chips. Built on bubbletea (Elm architecture), the
// widget is embedded in a host model that routes messages to
// [Model.Update] and composes [Model.View] into its own output.
//
// The widget never owns the authoritative selection. It receives
// options and values through [Config] (or [Model.SetOptions] /
// [Model.SetValues]), keeps a working copy, and proposes each next
// version through a single [ChangedMsg] delivered via the command
// returned from Update. ChangedMsg.Options is nil unless the option
// pool itself changed (after an on-the-fly create).
//
// State is split into independently testable concerns: the filter
// engine ([Filter], [ExactMatch], [Candidates]) and the selection
// transitions ([Toggle], [Remove], [CreateOption]) are pure functions;
// the model layers keyboard navigation, open/close handling, and
// mouse routing on top of them.
package chipselect
