package ui

import "log/slog"

// MenuNavigator is the keyboard state machine behind one level of an
// open menu. Submenus get their own child navigator, so an open menu
// tree is a chain of navigators rooted at the spawner's.
//
// The navigator is pure state: it never draws. The menu widget feeds
// it keys and hover changes and reads back the highlight.
type MenuNavigator struct {
	sections []Section
	flat     []*Entry // All entries across sections, in display order

	highlighted int // Index into flat, -1 when nothing is highlighted
	interactive bool
	active      *Entry // Committed choice (interactive menus only)

	opened bool // Set by the first Open, guards stray dispatch
	isOpen bool

	child        *MenuNavigator
	childEntry   *Entry
	childByHover bool // Submenu opened by hover, closes on hover-out

	bounds Rect // Screen rectangle of this level, set by the widget

	lastCommit *Entry // Most recently committed entry, propagated up the chain

	// OnActiveChanged fires when an interactive menu commits a new
	// active entry. Non-interactive commits run Entry.Action instead.
	OnActiveChanged func(*Entry)
}

// NewMenuNavigator returns a closed navigator.
func NewMenuNavigator() *MenuNavigator {
	return &MenuNavigator{highlighted: -1}
}

// Open attaches the entry tree and resets navigation state. For
// interactive menus the previously active entry starts highlighted;
// otherwise nothing is highlighted until the first key or hover.
func (n *MenuNavigator) Open(sections []Section, interactive bool, active *Entry) {
	n.sections = sections
	n.flat = flatten(sections)
	n.interactive = interactive
	n.active = active
	n.opened = true
	n.isOpen = true
	n.child = nil
	n.childEntry = nil
	n.childByHover = false
	n.highlighted = -1
	if interactive && active != nil {
		n.highlighted = n.indexOf(active)
	}
}

// Close tears down this level and every open descendant.
func (n *MenuNavigator) Close() {
	if n.child != nil {
		n.child.Close()
		n.child = nil
		n.childEntry = nil
	}
	n.isOpen = false
	n.highlighted = -1
}

// IsOpen reports whether this level is open.
func (n *MenuNavigator) IsOpen() bool { return n.isOpen }

// Highlighted returns the currently highlighted entry, or nil.
func (n *MenuNavigator) Highlighted() *Entry {
	if n.highlighted < 0 || n.highlighted >= len(n.flat) {
		return nil
	}
	return n.flat[n.highlighted]
}

// HighlightedIndex returns the flat index of the highlight, -1 if none.
func (n *MenuNavigator) HighlightedIndex() int { return n.highlighted }

// Active returns the committed entry of an interactive menu.
func (n *MenuNavigator) Active() *Entry { return n.active }

// Child returns the open submenu navigator, or nil.
func (n *MenuNavigator) Child() *MenuNavigator { return n.child }

// ChildEntry returns the entry whose submenu is open, or nil.
func (n *MenuNavigator) ChildEntry() *Entry { return n.childEntry }

// SetBounds records this level's drawn rectangle for dismissal math.
func (n *MenuNavigator) SetBounds(r Rect) { n.bounds = r }

// SubtreeBounds returns the rectangles of this level and every open
// descendant. Dismissal listeners use this as the "inside" region.
func (n *MenuNavigator) SubtreeBounds() []Rect {
	rects := []Rect{n.bounds}
	for c := n.child; c != nil; c = c.child {
		rects = append(rects, c.bounds)
	}
	return rects
}

// DispatchKey routes one key press through the open menu chain,
// deepest level first. The return value asks the caller to close the
// entire chain: committing an entry anywhere in the tree returns true
// all the way up, while Escape and ArrowLeft close only the deepest
// level and return false.
func (n *MenuNavigator) DispatchKey(key Key) bool {
	if !n.opened {
		uiLogger.Error("menu key dispatched before open", slog.Int("key", int(key)))
		return false
	}
	if !n.isOpen {
		return false
	}

	if n.child != nil && n.child.isOpen {
		// ArrowLeft retracts the deepest open level only, so it is
		// handled by the last navigator with an open child.
		if key == KeyLeft && !n.child.hasOpenChild() {
			n.closeChild()
			return false
		}
		closeAll := n.child.DispatchKey(key)
		if closeAll {
			n.lastCommit = n.child.lastCommit
		}
		if !n.child.isOpen {
			n.child = nil
			n.childEntry = nil
		}
		if closeAll {
			n.Close()
		}
		return closeAll
	}

	switch key {
	case KeyDown:
		n.moveHighlight(1)
	case KeyUp:
		n.moveHighlight(-1)
	case KeyHome:
		n.highlightEdge(true)
	case KeyEnd:
		n.highlightEdge(false)
	case KeyRight:
		if e := n.Highlighted(); e != nil && e.HasChildren() {
			n.openChild(e, false)
		}
	case KeyEnter, KeySpace:
		e := n.Highlighted()
		if e == nil || e.Disabled {
			return false
		}
		if e.HasChildren() {
			n.openChild(e, false)
			return false
		}
		return n.commit(e)
	case KeyEscape:
		// Reopening seeds the highlight from the active entry, so the
		// abandoned browse position is simply discarded.
		n.Close()
		return false
	}
	return false
}

// moveHighlight steps the highlight over enabled entries. Value-picker
// menus clamp at the ends; command menus wrap around.
func (n *MenuNavigator) moveHighlight(delta int) {
	count := len(n.flat)
	if count == 0 {
		return
	}

	idx := n.highlighted
	if idx < 0 {
		// First movement lands on an edge entry rather than stepping
		// past it.
		if delta > 0 {
			idx = -1
		} else {
			idx = count
		}
	}

	if n.interactive {
		for {
			idx += delta
			if idx < 0 || idx >= count {
				return // Clamp: keep the current highlight
			}
			if !n.flat[idx].Disabled {
				n.highlighted = idx
				return
			}
		}
	}

	for range n.flat {
		idx = ((idx+delta)%count + count) % count
		if !n.flat[idx].Disabled {
			n.highlighted = idx
			return
		}
	}
	// All entries disabled: leave the highlight alone.
}

func (n *MenuNavigator) highlightEdge(first bool) {
	if first {
		for i, e := range n.flat {
			if !e.Disabled {
				n.highlighted = i
				return
			}
		}
		return
	}
	for i := len(n.flat) - 1; i >= 0; i-- {
		if !n.flat[i].Disabled {
			n.highlighted = i
			return
		}
	}
}

// commit executes the highlighted leaf and closes this level. Returns
// true so ancestors close too.
func (n *MenuNavigator) commit(e *Entry) bool {
	n.lastCommit = e
	if e.Checkbox {
		e.Checked = !e.Checked
	}
	if e.Action != nil {
		e.Action()
	}
	if n.interactive {
		n.active = e
		if n.OnActiveChanged != nil {
			n.OnActiveChanged(e)
		}
	}
	n.Close()
	return true
}

// openChild opens e's submenu with its first enabled entry
// pre-highlighted (keyboard opens only; hover leaves it blank).
func (n *MenuNavigator) openChild(e *Entry, byHover bool) {
	n.highlighted = n.indexOf(e)
	n.child = NewMenuNavigator()
	n.child.Open(e.Children, false, nil)
	n.childEntry = e
	n.childByHover = byHover
	if !byHover {
		n.child.highlightEdge(true)
	}
}

func (n *MenuNavigator) hasOpenChild() bool {
	return n.child != nil && n.child.isOpen
}

func (n *MenuNavigator) closeChild() {
	if n.child != nil {
		n.child.Close()
		n.child = nil
		n.childEntry = nil
		n.childByHover = false
	}
}

// UpdateHover moves the highlight to the hovered entry and manages
// hover-driven submenu open/close. Pass nil when the pointer is over
// this level but not over any row.
func (n *MenuNavigator) UpdateHover(e *Entry) {
	if e == nil {
		return
	}
	if e.Disabled {
		return
	}
	n.highlighted = n.indexOf(e)

	if n.childEntry != nil && n.childEntry != e {
		// Hovering a different row at this level retracts the open
		// submenu, even when it was opened by keyboard.
		n.closeChild()
	}
	if e.HasChildren() && n.childEntry == nil {
		n.openChild(e, true)
	}
}

// RetractHoverChild closes a hover-opened submenu once the pointer is
// neither over the row that spawned it nor inside the submenu subtree.
// Keyboard-opened submenus stay put until a key or another hover moves
// them.
func (n *MenuNavigator) RetractHoverChild(overSpawnerRow, overSubtree bool) {
	if !n.childByHover || n.child == nil {
		return
	}
	if overSpawnerRow || overSubtree {
		return
	}
	n.closeChild()
}

func (n *MenuNavigator) indexOf(e *Entry) int {
	for i, candidate := range n.flat {
		if candidate == e {
			return i
		}
	}
	return -1
}
