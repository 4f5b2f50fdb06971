// Copyright 2026 The Chipselect Authors
// SPDX-License-Identifier: Apache-2.0

package chipselect

// Option is one selectable entry in the pool.
type Option struct {
	// Value is the unique identifier used for equality and
	// selection. The pool is assumed (not enforced) to contain at
	// most one option per value.
	Value string

	// Label is the human-readable display text.
	Label string

	// Icon is an optional decorative prefix, opaque to the
	// selection logic. Rendered before the label when present.
	Icon string

	// Disabled options are shown but cannot be toggled.
	Disabled bool
}

// findOption returns the pool entry with the given value.
func findOption(pool []Option, value string) (Option, bool) {
	for _, option := range pool {
		if option.Value == value {
			return option, true
		}
	}
	return Option{}, false
}

// displayLabel resolves a selected value to its label. Values missing
// from the pool fall back to the raw value so a stale selection still
// renders something meaningful.
func displayLabel(pool []Option, value string) string {
	if option, ok := findOption(pool, value); ok && option.Label != "" {
		return option.Label
	}
	return value
}

// isSelected reports whether value is present in the selection.
func isSelected(values []string, value string) bool {
	for _, selected := range values {
		if selected == value {
			return true
		}
	}
	return false
}
