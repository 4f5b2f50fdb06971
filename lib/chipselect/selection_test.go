// Copyright 2026 The Chipselect Authors
// SPDX-License-Identifier: Apache-2.0

package chipselect

import "testing"

func TestToggleAppendsToEnd(t *testing.T) {
	next, changed := Toggle([]string{"a"}, Option{Value: "b", Label: "Banana"})
	if !changed {
		t.Fatal("toggling an unselected option should change the selection")
	}
	if len(next) != 2 || next[0] != "a" || next[1] != "b" {
		t.Errorf("expected [a b], got %v", next)
	}
}

func TestToggleRemovesPreservingOrder(t *testing.T) {
	next, changed := Toggle([]string{"a", "b", "c"}, Option{Value: "b"})
	if !changed {
		t.Fatal("toggling a selected option should change the selection")
	}
	if len(next) != 2 || next[0] != "a" || next[1] != "c" {
		t.Errorf("expected [a c], got %v", next)
	}
}

func TestToggleDisabledIgnored(t *testing.T) {
	values := []string{"a"}
	next, changed := Toggle(values, Option{Value: "d", Disabled: true})
	if changed {
		t.Error("toggling a disabled option must be a no-op")
	}
	if len(next) != 1 || next[0] != "a" {
		t.Errorf("selection should be unchanged, got %v", next)
	}
}

func TestToggleDoesNotMutateInput(t *testing.T) {
	values := []string{"a", "b"}
	Toggle(values, Option{Value: "a"})
	if values[0] != "a" || values[1] != "b" {
		t.Errorf("input selection was mutated: %v", values)
	}
}

func TestToggleSelfInverse(t *testing.T) {
	option := Option{Value: "b", Label: "Banana"}
	original := []string{"a", "b", "c"}

	once, _ := Toggle(original, option)
	twice, _ := Toggle(once, option)

	// The toggled value returns at the end; everything else keeps
	// its relative order and the contents match the original set.
	if len(twice) != len(original) {
		t.Fatalf("double toggle changed the selection size: %v", twice)
	}
	if twice[0] != "a" || twice[1] != "c" || twice[2] != "b" {
		t.Errorf("expected [a c b] after double toggle, got %v", twice)
	}
}

func TestRemoveAbsentValueNoOp(t *testing.T) {
	values := []string{"a"}
	next, changed := Remove(values, "zzz")
	if changed {
		t.Error("removing an absent value must be a no-op")
	}
	if len(next) != 1 {
		t.Errorf("selection should be unchanged, got %v", next)
	}
}

func TestCreateOptionTrimsLabel(t *testing.T) {
	pool, values, changed := CreateOption(testPool(), nil, "  Elderberry  ")
	if !changed {
		t.Fatal("creating from a fresh label should succeed")
	}
	created := pool[len(pool)-1]
	if created.Value != "Elderberry" || created.Label != "Elderberry" {
		t.Errorf("created option should use the trimmed text, got %+v", created)
	}
	if len(values) != 1 || values[0] != "Elderberry" {
		t.Errorf("created option should be selected, got %v", values)
	}
}

func TestCreateOptionEmptyLabelNoOp(t *testing.T) {
	pool, values, changed := CreateOption(testPool(), []string{"a"}, "   ")
	if changed {
		t.Error("creating from an empty post-trim label must be a no-op")
	}
	if len(pool) != len(testPool()) || len(values) != 1 {
		t.Error("pool and selection should be unchanged")
	}
}

func TestCreateOptionDuplicateNoOp(t *testing.T) {
	// "  apple " trims to a case-insensitive duplicate of the
	// existing label "Apple": no new option may be created.
	pool, _, changed := CreateOption(testPool(), nil, "  apple ")
	if changed {
		t.Error("creating a case-insensitive duplicate must be a no-op")
	}
	if len(pool) != len(testPool()) {
		t.Errorf("pool grew to %d entries", len(pool))
	}
}

func TestCreateOptionDoesNotMutateInputs(t *testing.T) {
	pool := testPool()
	values := []string{"a"}
	CreateOption(pool, values, "Elderberry")
	if len(pool) != len(testPool()) {
		t.Error("input pool was mutated")
	}
	if len(values) != 1 {
		t.Error("input selection was mutated")
	}
}
