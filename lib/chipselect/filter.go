// Copyright 2026 The Chipselect Authors
// SPDX-License-Identifier: Apache-2.0

package chipselect

import "strings"

// Filter returns the options whose label or value contains the query
// as a case-insensitive, whitespace-trimmed substring, preserving
// pool order. An empty (post-trim) query matches everything. No fuzzy
// matching, no ranking — pure substring containment.
func Filter(pool []Option, query string) []Option {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return pool
	}

	var result []Option
	for _, option := range pool {
		if strings.Contains(strings.ToLower(option.Label), needle) ||
			strings.Contains(strings.ToLower(option.Value), needle) {
			result = append(result, option)
		}
	}
	return result
}

// ExactMatch returns the first option whose label or value equals the
// trimmed query case-insensitively. Used to suppress the create row
// (and to resolve create-row activation) when the query names an
// option that already exists.
func ExactMatch(pool []Option, query string) (Option, bool) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return Option{}, false
	}

	for _, option := range pool {
		if strings.ToLower(option.Label) == needle ||
			strings.ToLower(option.Value) == needle {
			return option, true
		}
	}
	return Option{}, false
}

// Candidate is one row of the open panel: either a pool option or the
// synthetic create entry.
type Candidate struct {
	// Option is the pool entry, or for the create row, the option
	// that would be created (value and label both the trimmed query).
	Option Option

	// Create marks the synthetic "create a new option" row.
	Create bool
}

// createEligible reports whether a create row should be offered:
// creation enabled, trimmed query non-empty, and no existing option
// exactly matching the query.
func createEligible(pool []Option, query string, allowCreate bool) bool {
	if !allowCreate {
		return false
	}
	if strings.TrimSpace(query) == "" {
		return false
	}
	_, exact := ExactMatch(pool, query)
	return !exact
}

// Candidates derives the candidate list shown while the panel is
// open: the filtered options followed by the create row when
// eligible. Recomputed on every relevant state change, never cached.
func Candidates(pool []Option, query string, allowCreate bool) []Candidate {
	filtered := Filter(pool, query)

	candidates := make([]Candidate, 0, len(filtered)+1)
	for _, option := range filtered {
		candidates = append(candidates, Candidate{Option: option})
	}

	if createEligible(pool, query, allowCreate) {
		trimmed := strings.TrimSpace(query)
		candidates = append(candidates, Candidate{
			Option: Option{Value: trimmed, Label: trimmed},
			Create: true,
		})
	}

	return candidates
}
