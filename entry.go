package ui

// Shortcut describes the key combination displayed next to a menu entry.
// Keys are ordered the way they should be pressed and rendered
// (modifiers first). The menu layer only displays shortcuts; dispatching
// them is the input mapper's job.
type Shortcut struct {
	Keys []string

	// RequiresLock marks shortcuts that only work while the platform
	// keyboard lock (browser full-keyboard access) is held, so the
	// renderer can badge them.
	RequiresLock bool
}

// Entry is one selectable menu row. Entries are created by the spawner,
// owned by the entry tree for the overlay's lifetime, and mutated in
// place when a checkbox entry is toggled.
type Entry struct {
	Label    string
	Icon     string
	Value    any
	Shortcut *Shortcut

	// Children, when non-empty, makes this entry a submenu parent.
	Children []Section

	// Action runs when the entry is committed. Optional.
	Action func()

	Disabled bool

	// Checkbox entries render a check mark bound to Checked and toggle
	// it on commit.
	Checkbox bool
	Checked  bool
}

// HasChildren returns true if the entry opens a submenu.
func (e *Entry) HasChildren() bool {
	for _, sec := range e.Children {
		if len(sec) > 0 {
			return true
		}
	}
	return false
}

// Section is an ordered run of entries rendered together and separated
// from neighboring sections by a divider. Sections have no identity
// beyond their order.
type Section []*Entry

// flattenEnabled returns all non-disabled entries of a tree in document
// order across sections. Keyboard navigation operates on this slice.
func flattenEnabled(sections []Section) []*Entry {
	var flat []*Entry
	for _, sec := range sections {
		for _, e := range sec {
			if e != nil && !e.Disabled {
				flat = append(flat, e)
			}
		}
	}
	return flat
}

// flatten returns every entry of a tree in document order, including
// disabled ones. Rendering iterates this.
func flatten(sections []Section) []*Entry {
	var flat []*Entry
	for _, sec := range sections {
		for _, e := range sec {
			if e != nil {
				flat = append(flat, e)
			}
		}
	}
	return flat
}
