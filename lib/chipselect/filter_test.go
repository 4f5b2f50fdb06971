// Copyright 2026 The Chipselect Authors
// SPDX-License-Identifier: Apache-2.0

package chipselect

import "testing"

// testPool is a small option pool exercising icons and disabled
// entries alongside plain options.
func testPool() []Option {
	return []Option{
		{Value: "a", Label: "Apple", Icon: "🍎"},
		{Value: "b", Label: "Banana"},
		{Value: "c", Label: "Cherry"},
		{Value: "d", Label: "Dragonfruit", Disabled: true},
	}
}

func TestFilterMatchesLabel(t *testing.T) {
	result := Filter(testPool(), "ban")
	if len(result) != 1 || result[0].Value != "b" {
		t.Errorf("filter 'ban' should match Banana only, got %v", result)
	}
}

func TestFilterMatchesValue(t *testing.T) {
	pool := []Option{{Value: "us-east-1", Label: "N. Virginia"}}
	result := Filter(pool, "east")
	if len(result) != 1 {
		t.Error("filter 'east' should match the value 'us-east-1'")
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	result := Filter(testPool(), "APPLE")
	if len(result) != 1 || result[0].Value != "a" {
		t.Errorf("filter should be case-insensitive, got %v", result)
	}
}

func TestFilterTrimsQuery(t *testing.T) {
	result := Filter(testPool(), "  cherry  ")
	if len(result) != 1 || result[0].Value != "c" {
		t.Errorf("filter should trim whitespace from the query, got %v", result)
	}
}

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	pool := testPool()
	result := Filter(pool, "   ")
	if len(result) != len(pool) {
		t.Fatalf("empty query should match everything, got %d of %d", len(result), len(pool))
	}
	for index := range pool {
		if result[index].Value != pool[index].Value {
			t.Errorf("empty query must preserve order: position %d is %s, want %s",
				index, result[index].Value, pool[index].Value)
		}
	}
}

func TestFilterNoMatch(t *testing.T) {
	if result := Filter(testPool(), "xyz-nonexistent"); len(result) != 0 {
		t.Errorf("expected no matches, got %v", result)
	}
}

func TestFilterIdempotent(t *testing.T) {
	queries := []string{"", "a", "an", "Apple", "  ch ", "zzz"}
	for _, query := range queries {
		once := Filter(testPool(), query)
		twice := Filter(once, query)
		if len(once) != len(twice) {
			t.Fatalf("query %q: filtering twice gave %d items, once gave %d", query, len(twice), len(once))
		}
		for index := range once {
			if once[index].Value != twice[index].Value {
				t.Errorf("query %q: refiltering changed position %d", query, index)
			}
		}
	}
}

func TestExactMatchCaseInsensitive(t *testing.T) {
	option, exact := ExactMatch(testPool(), "apple")
	if !exact {
		t.Fatal("'apple' should exactly match the option labeled 'Apple'")
	}
	if option.Value != "a" {
		t.Errorf("exact match resolved to %s, want a", option.Value)
	}
}

func TestExactMatchOnValue(t *testing.T) {
	if _, exact := ExactMatch(testPool(), " B "); !exact {
		t.Error("trimmed 'B' should exactly match the value 'b'")
	}
}

func TestExactMatchRequiresFullEquality(t *testing.T) {
	if _, exact := ExactMatch(testPool(), "App"); exact {
		t.Error("'App' is a substring, not an exact match")
	}
}

func TestExactMatchEmptyQuery(t *testing.T) {
	if _, exact := ExactMatch(testPool(), "  "); exact {
		t.Error("an empty query must never exact-match")
	}
}

func TestCandidatesAppendsCreateRow(t *testing.T) {
	candidates := Candidates(testPool(), "Elderberry", true)
	if len(candidates) != 1 {
		t.Fatalf("expected only the create row, got %d candidates", len(candidates))
	}
	create := candidates[0]
	if !create.Create {
		t.Fatal("the sole candidate should be the create row")
	}
	if create.Option.Value != "Elderberry" || create.Option.Label != "Elderberry" {
		t.Errorf("create row should carry the trimmed query as value and label, got %+v", create.Option)
	}
}

func TestCandidatesCreateRowFollowsFiltered(t *testing.T) {
	candidates := Candidates(testPool(), "an", true)
	// "an" matches Banana; no exact match, so the create row follows.
	if len(candidates) != 2 {
		t.Fatalf("expected Banana plus create row, got %d candidates", len(candidates))
	}
	if candidates[0].Create || candidates[0].Option.Value != "b" {
		t.Errorf("first candidate should be Banana, got %+v", candidates[0])
	}
	if !candidates[1].Create {
		t.Error("create row should come after the filtered options")
	}
}

func TestCandidatesNoCreateWhenDisabled(t *testing.T) {
	for _, candidate := range Candidates(testPool(), "Elderberry", false) {
		if candidate.Create {
			t.Error("create row offered with creation disabled")
		}
	}
}

func TestCandidatesNoCreateOnEmptyQuery(t *testing.T) {
	candidates := Candidates(testPool(), "   ", true)
	if len(candidates) != len(testPool()) {
		t.Fatalf("empty query should yield the full pool, got %d", len(candidates))
	}
	for _, candidate := range candidates {
		if candidate.Create {
			t.Error("create row offered for an empty query")
		}
	}
}

func TestCandidatesNoCreateOnExactMatch(t *testing.T) {
	// Lowercase query against the option labeled "Apple": the exact
	// match is detected case-insensitively and creation is not
	// offered.
	for _, candidate := range Candidates(testPool(), "apple", true) {
		if candidate.Create {
			t.Error("create row offered although 'apple' exactly matches 'Apple'")
		}
	}
}
