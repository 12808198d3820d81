package ui

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FilterEntries returns the entries of a tree whose labels fuzzily
// match the query, best matches first. An empty query returns every
// entry in document order. Matching is case- and diacritic-insensitive.
// Entries with children are matched on their own label only; filtering
// flattens the tree.
func FilterEntries(sections []Section, query string) []*Entry {
	flat := flatten(sections)
	if query == "" {
		return flat
	}

	labels := make([]string, len(flat))
	byLabel := make(map[string][]*Entry, len(flat))
	for i, e := range flat {
		labels[i] = e.Label
		byLabel[e.Label] = append(byLabel[e.Label], e)
	}

	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	sort.Sort(ranks)

	matched := make([]*Entry, 0, len(ranks))
	for _, r := range ranks {
		candidates := byLabel[r.Target]
		if len(candidates) == 0 {
			continue
		}
		matched = append(matched, candidates[0])
		byLabel[r.Target] = candidates[1:]
	}
	return matched
}

// typeAheadState accumulates typed characters for menu type-ahead.
// The buffer resets after a pause so a slow typist starts fresh.
type typeAheadState struct {
	buffer  string
	elapsed float32
}

const typeAheadTimeout float32 = 1.0 // Seconds before the buffer resets

// Update feeds this frame's typed characters and delta time. Returns
// the entry the buffer now selects, or nil when nothing matches.
func (t *typeAheadState) Update(sections []Section, chars []rune, dt float32) *Entry {
	t.elapsed += dt
	if t.elapsed > typeAheadTimeout {
		t.buffer = ""
	}
	if len(chars) == 0 {
		return nil
	}
	t.elapsed = 0
	t.buffer += string(chars)

	matches := FilterEntries([]Section{flattenEnabled(sections)}, t.buffer)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

// Reset clears the accumulated buffer.
func (t *typeAheadState) Reset() {
	t.buffer = ""
	t.elapsed = 0
}
