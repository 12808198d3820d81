package ui

import "testing"

func fontSections() []Section {
	return []Section{{
		{Label: "Arial"},
		{Label: "Roboto"},
		{Label: "Roboto Mono"},
		{Label: "Times New Roman"},
		{Label: "Courier"},
	}}
}

func TestFilterEntriesEmptyQuery(t *testing.T) {
	sections := fontSections()
	matches := FilterEntries(sections, "")
	if len(matches) != 5 {
		t.Fatalf("empty query returned %d entries, want all 5", len(matches))
	}
	if matches[0].Label != "Arial" {
		t.Error("empty query should preserve document order")
	}
}

func TestFilterEntriesFuzzyMatch(t *testing.T) {
	matches := FilterEntries(fontSections(), "rob")
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2: %v", len(matches), labelsOf(matches))
	}
	// The closer match ranks first.
	if matches[0].Label != "Roboto" {
		t.Errorf("best match = %q, want Roboto", matches[0].Label)
	}
}

func TestFilterEntriesCaseInsensitive(t *testing.T) {
	matches := FilterEntries(fontSections(), "COURIER")
	if len(matches) != 1 || matches[0].Label != "Courier" {
		t.Errorf("got %v, want [Courier]", labelsOf(matches))
	}
}

func TestFilterEntriesNoMatch(t *testing.T) {
	matches := FilterEntries(fontSections(), "zzzz")
	if len(matches) != 0 {
		t.Errorf("got %v, want no matches", labelsOf(matches))
	}
}

func TestFilterEntriesDuplicateLabels(t *testing.T) {
	a := &Entry{Label: "Copy"}
	b := &Entry{Label: "Copy"}
	matches := FilterEntries([]Section{{a, b}}, "copy")
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0] == matches[1] {
		t.Error("duplicate labels should map to distinct entries")
	}
}

func TestTypeAheadAccumulates(t *testing.T) {
	sections := fontSections()
	var ta typeAheadState

	if e := ta.Update(sections, []rune("c"), 0.016); e == nil || e.Label != "Courier" {
		t.Fatalf("typed 'c', selected %v", e)
	}
	// A quick second character narrows within the same buffer.
	if e := ta.Update(sections, []rune("o"), 0.2); e == nil || e.Label != "Courier" {
		t.Fatalf("typed 'co', selected %v", e)
	}
}

func TestTypeAheadTimeoutResets(t *testing.T) {
	sections := fontSections()
	var ta typeAheadState

	ta.Update(sections, []rune("c"), 0.016)

	// After the pause the buffer starts fresh, so 'a' matches Arial
	// rather than failing as the buffer "ca" would.
	if e := ta.Update(sections, []rune("a"), 1.5); e == nil || e.Label != "Arial" {
		t.Fatalf("after timeout, typed 'a', selected %v", e)
	}
}

func TestTypeAheadNoInput(t *testing.T) {
	var ta typeAheadState
	if e := ta.Update(fontSections(), nil, 0.016); e != nil {
		t.Errorf("no input should select nothing, got %v", e)
	}
}

func TestTypeAheadSkipsDisabled(t *testing.T) {
	sections := []Section{{
		{Label: "Archive", Disabled: true},
		{Label: "Arrange"},
	}}
	var ta typeAheadState
	e := ta.Update(sections, []rune("ar"), 0.016)
	if e == nil || e.Label != "Arrange" {
		t.Errorf("type-ahead selected %v, want Arrange (disabled skipped)", e)
	}
}

func labelsOf(entries []*Entry) []string {
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
	}
	return labels
}
