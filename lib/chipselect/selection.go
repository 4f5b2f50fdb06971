// Copyright 2026 The Chipselect Authors
// SPDX-License-Identifier: Apache-2.0

package chipselect

import "strings"

// Toggle returns the next selection after toggling an option: if the
// option's value is selected it is removed (preserving the relative
// order of the rest), otherwise it is appended to the end. Disabled
// options are ignored. The input slice is never mutated; the second
// return reports whether anything changed.
func Toggle(values []string, option Option) ([]string, bool) {
	if option.Disabled {
		return values, false
	}
	if isSelected(values, option.Value) {
		return Remove(values, option.Value)
	}

	next := make([]string, 0, len(values)+1)
	next = append(next, values...)
	next = append(next, option.Value)
	return next, true
}

// Remove returns the next selection with value removed. Removing a
// value that is not selected is a no-op.
func Remove(values []string, value string) ([]string, bool) {
	if !isSelected(values, value) {
		return values, false
	}

	next := make([]string, 0, len(values)-1)
	for _, selected := range values {
		if selected != value {
			next = append(next, selected)
		}
	}
	return next, true
}

// CreateOption builds a new option from a label (value and label both
// the trimmed text), appends it to the pool, and selects it. No-ops
// when the label is empty after trimming or when it duplicates an
// existing option's label or value case-insensitively — callers
// resolve duplicates by toggling the existing option instead. Input
// slices are never mutated.
func CreateOption(pool []Option, values []string, label string) ([]Option, []string, bool) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return pool, values, false
	}
	if _, exact := ExactMatch(pool, trimmed); exact {
		return pool, values, false
	}

	created := Option{Value: trimmed, Label: trimmed}

	nextPool := make([]Option, 0, len(pool)+1)
	nextPool = append(nextPool, pool...)
	nextPool = append(nextPool, created)

	nextValues := make([]string, 0, len(values)+1)
	nextValues = append(nextValues, values...)
	nextValues = append(nextValues, created.Value)

	return nextPool, nextValues, true
}
