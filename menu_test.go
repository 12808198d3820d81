package ui_test

import (
	"testing"

	"github.com/glyphstudio/ui"
)

func commandSections(committed *string) []ui.Section {
	record := func(label string) func() {
		return func() { *committed = label }
	}
	return []ui.Section{
		{
			{Label: "New", Action: record("New")},
			{Label: "Open", Action: record("Open")},
			{Label: "Open Recent", Children: []ui.Section{
				{
					{Label: "alpha.txt", Action: record("alpha.txt")},
					{Label: "beta.txt", Action: record("beta.txt")},
				},
			}},
		},
		{
			{Label: "Save", Action: record("Save"), Disabled: true},
			{Label: "Quit", Action: record("Quit")},
		},
	}
}

func TestMenuNavigatorArrowDownWraps(t *testing.T) {
	var committed string
	n := ui.NewMenuNavigator()
	n.Open(commandSections(&committed), false, nil)

	if n.Highlighted() != nil {
		t.Fatal("command menu should open with no highlight")
	}

	n.DispatchKey(ui.KeyDown)
	if got := n.Highlighted().Label; got != "New" {
		t.Fatalf("first ArrowDown highlighted %q, want New", got)
	}

	// Step over the rest; Save is disabled and must be skipped, and
	// stepping past the end wraps to the top.
	for _, want := range []string{"Open", "Open Recent", "Quit", "New"} {
		n.DispatchKey(ui.KeyDown)
		if got := n.Highlighted().Label; got != want {
			t.Fatalf("highlighted %q, want %q", got, want)
		}
	}
}

func TestMenuNavigatorArrowUpFromNone(t *testing.T) {
	var committed string
	n := ui.NewMenuNavigator()
	n.Open(commandSections(&committed), false, nil)

	// First ArrowUp lands on the last enabled entry.
	n.DispatchKey(ui.KeyUp)
	if got := n.Highlighted().Label; got != "Quit" {
		t.Errorf("highlighted %q, want Quit", got)
	}
}

func TestMenuNavigatorHomeEnd(t *testing.T) {
	var committed string
	n := ui.NewMenuNavigator()
	n.Open(commandSections(&committed), false, nil)

	n.DispatchKey(ui.KeyEnd)
	if got := n.Highlighted().Label; got != "Quit" {
		t.Errorf("End highlighted %q, want Quit", got)
	}
	n.DispatchKey(ui.KeyHome)
	if got := n.Highlighted().Label; got != "New" {
		t.Errorf("Home highlighted %q, want New", got)
	}
}

func TestMenuNavigatorInteractiveClamps(t *testing.T) {
	entries := ui.Section{
		{Label: "Small"},
		{Label: "Medium"},
		{Label: "Large"},
	}
	sections := []ui.Section{entries}

	n := ui.NewMenuNavigator()
	n.Open(sections, true, entries[1])

	// Interactive menus open with the active entry highlighted.
	if got := n.Highlighted().Label; got != "Medium" {
		t.Fatalf("opened with %q highlighted, want Medium", got)
	}

	// Clamp at the bottom instead of wrapping.
	n.DispatchKey(ui.KeyDown)
	n.DispatchKey(ui.KeyDown)
	n.DispatchKey(ui.KeyDown)
	if got := n.Highlighted().Label; got != "Large" {
		t.Errorf("highlighted %q, want Large (clamped)", got)
	}

	// And at the top.
	for i := 0; i < 5; i++ {
		n.DispatchKey(ui.KeyUp)
	}
	if got := n.Highlighted().Label; got != "Small" {
		t.Errorf("highlighted %q, want Small (clamped)", got)
	}
}

func TestMenuNavigatorCommitClosesChain(t *testing.T) {
	var committed string
	n := ui.NewMenuNavigator()
	n.Open(commandSections(&committed), false, nil)

	// Navigate to "Open Recent" and open the submenu by keyboard.
	n.DispatchKey(ui.KeyDown)
	n.DispatchKey(ui.KeyDown)
	n.DispatchKey(ui.KeyDown)
	n.DispatchKey(ui.KeyRight)

	child := n.Child()
	if child == nil {
		t.Fatal("ArrowRight on a parent entry should open a submenu")
	}
	// Keyboard-opened submenus pre-highlight their first entry.
	if got := child.Highlighted().Label; got != "alpha.txt" {
		t.Fatalf("submenu highlighted %q, want alpha.txt", got)
	}

	// Enter commits in the submenu and closes the whole chain.
	if !n.DispatchKey(ui.KeyEnter) {
		t.Fatal("commit should ask the caller to close the chain")
	}
	if committed != "alpha.txt" {
		t.Errorf("committed %q, want alpha.txt", committed)
	}
	if n.IsOpen() {
		t.Error("root level should close after a submenu commit")
	}
}

func TestMenuNavigatorEscapeClosesDeepestOnly(t *testing.T) {
	var committed string
	n := ui.NewMenuNavigator()
	n.Open(commandSections(&committed), false, nil)

	n.DispatchKey(ui.KeyDown)
	n.DispatchKey(ui.KeyDown)
	n.DispatchKey(ui.KeyDown)
	n.DispatchKey(ui.KeyRight)
	if n.Child() == nil {
		t.Fatal("submenu should be open")
	}

	// Escape closes the submenu but leaves the root open.
	if n.DispatchKey(ui.KeyEscape) {
		t.Fatal("Escape should not close the whole chain")
	}
	if n.Child() != nil {
		t.Error("submenu should be closed")
	}
	if !n.IsOpen() {
		t.Error("root should stay open")
	}

	// A second Escape closes the root.
	n.DispatchKey(ui.KeyEscape)
	if n.IsOpen() {
		t.Error("root should close on the second Escape")
	}
}

func TestMenuNavigatorArrowLeftClosesSubmenu(t *testing.T) {
	var committed string
	n := ui.NewMenuNavigator()
	n.Open(commandSections(&committed), false, nil)

	n.DispatchKey(ui.KeyDown)
	n.DispatchKey(ui.KeyDown)
	n.DispatchKey(ui.KeyDown)
	n.DispatchKey(ui.KeyRight)

	if n.DispatchKey(ui.KeyLeft) {
		t.Fatal("ArrowLeft should not close the chain")
	}
	if n.Child() != nil {
		t.Error("ArrowLeft should retract the submenu")
	}
	if got := n.Highlighted().Label; got != "Open Recent" {
		t.Errorf("highlight after retract = %q, want Open Recent", got)
	}
}

func TestMenuNavigatorArrowLeftClosesDeepestOnly(t *testing.T) {
	sections := []ui.Section{{
		{Label: "Export", Children: []ui.Section{{
			{Label: "Image", Children: []ui.Section{{
				{Label: "PNG"},
				{Label: "JPEG"},
			}}},
			{Label: "Document"},
		}}},
	}}
	n := ui.NewMenuNavigator()
	n.Open(sections, false, nil)

	n.DispatchKey(ui.KeyDown)
	n.DispatchKey(ui.KeyRight)
	n.DispatchKey(ui.KeyRight)
	if n.Child() == nil || n.Child().Child() == nil {
		t.Fatal("expected a three-level open chain")
	}

	// ArrowLeft retracts the deepest level and nothing above it.
	if n.DispatchKey(ui.KeyLeft) {
		t.Fatal("ArrowLeft should not close the chain")
	}
	if n.Child() == nil {
		t.Fatal("the middle level should stay open")
	}
	if n.Child().Child() != nil {
		t.Error("the deepest level should be closed")
	}
	if got := n.Child().Highlighted().Label; got != "Image" {
		t.Errorf("middle level highlight = %q, want Image", got)
	}

	// A second ArrowLeft retracts the remaining submenu.
	n.DispatchKey(ui.KeyLeft)
	if n.Child() != nil {
		t.Error("second ArrowLeft should retract the middle level")
	}
	if !n.IsOpen() {
		t.Error("root should stay open")
	}
}

func TestMenuNavigatorEnterOnDisabled(t *testing.T) {
	sections := []ui.Section{{
		{Label: "Only", Disabled: true},
	}}
	n := ui.NewMenuNavigator()
	n.Open(sections, false, nil)

	// The highlight can never land on a disabled entry, but guard the
	// commit path anyway.
	n.DispatchKey(ui.KeyDown)
	if n.Highlighted() != nil {
		t.Error("highlight should skip a fully disabled menu")
	}
	if n.DispatchKey(ui.KeyEnter) {
		t.Error("Enter with no highlight should not commit")
	}
}

func TestMenuNavigatorCheckboxToggle(t *testing.T) {
	entry := &ui.Entry{Label: "Show Grid", Checkbox: true, Checked: false}
	sections := []ui.Section{{entry}}

	n := ui.NewMenuNavigator()
	n.Open(sections, false, nil)
	n.DispatchKey(ui.KeyDown)
	if !n.DispatchKey(ui.KeyEnter) {
		t.Fatal("checkbox commit should close the menu")
	}
	if !entry.Checked {
		t.Error("commit should toggle the checkbox on")
	}

	n.Open(sections, false, nil)
	n.DispatchKey(ui.KeyDown)
	n.DispatchKey(ui.KeySpace)
	if entry.Checked {
		t.Error("a second commit should toggle the checkbox off")
	}
}

func TestMenuNavigatorInteractiveCommit(t *testing.T) {
	entries := ui.Section{
		{Label: "Small", Value: 10},
		{Label: "Large", Value: 24},
	}
	sections := []ui.Section{entries}

	n := ui.NewMenuNavigator()
	var notified *ui.Entry
	n.OnActiveChanged = func(e *ui.Entry) { notified = e }
	n.Open(sections, true, entries[0])

	n.DispatchKey(ui.KeyDown)
	if !n.DispatchKey(ui.KeyEnter) {
		t.Fatal("commit should close the menu")
	}
	if n.Active() != entries[1] {
		t.Errorf("Active = %v, want Large", n.Active())
	}
	if notified != entries[1] {
		t.Error("OnActiveChanged should fire with the committed entry")
	}
}

func TestMenuNavigatorEscapeRestoresInteractiveHighlight(t *testing.T) {
	entries := ui.Section{
		{Label: "Small"},
		{Label: "Large"},
	}
	n := ui.NewMenuNavigator()
	n.Open([]ui.Section{entries}, true, entries[0])

	n.DispatchKey(ui.KeyDown)
	if got := n.Highlighted().Label; got != "Large" {
		t.Fatalf("highlighted %q, want Large", got)
	}

	// Escape abandons the browse without committing.
	n.DispatchKey(ui.KeyEscape)
	if n.Active() != entries[0] {
		t.Error("Escape should leave the active entry unchanged")
	}

	// Reopening seeds the highlight from the unchanged active entry,
	// discarding the abandoned browse position.
	n.Open([]ui.Section{entries}, true, n.Active())
	if got := n.Highlighted().Label; got != "Small" {
		t.Errorf("reopened highlight = %q, want Small", got)
	}
}

func TestMenuNavigatorHoverRetractsSubmenu(t *testing.T) {
	var committed string
	sections := commandSections(&committed)
	n := ui.NewMenuNavigator()
	n.Open(sections, false, nil)

	parent := sections[0][2] // Open Recent
	n.UpdateHover(parent)
	if n.Child() == nil {
		t.Fatal("hovering a parent entry should open its submenu")
	}
	// Hover-opened submenus start with no highlight.
	if n.Child().Highlighted() != nil {
		t.Error("hover-opened submenu should not pre-highlight")
	}

	// Hovering a sibling row retracts the submenu.
	n.UpdateHover(sections[0][0])
	if n.Child() != nil {
		t.Error("hovering another row should retract the submenu")
	}

	// Disabled rows are ignored entirely.
	n.UpdateHover(sections[1][0])
	if got := n.Highlighted().Label; got != "New" {
		t.Errorf("hovering a disabled row moved the highlight to %q", got)
	}
}

func TestMenuNavigatorHoverOutRetractsSubmenu(t *testing.T) {
	var committed string
	sections := commandSections(&committed)
	n := ui.NewMenuNavigator()
	n.Open(sections, false, nil)

	n.UpdateHover(sections[0][2]) // Open Recent
	if n.Child() == nil {
		t.Fatal("hovering a parent entry should open its submenu")
	}

	// Pointer still over the spawning row or the submenu: stays open.
	n.RetractHoverChild(true, false)
	n.RetractHoverChild(false, true)
	if n.Child() == nil {
		t.Fatal("submenu should stay open while the pointer is over it")
	}

	// Pointer over padding, a separator, or off the menu: retracts.
	n.RetractHoverChild(false, false)
	if n.Child() != nil {
		t.Error("leaving the row without entering the submenu should retract it")
	}

	// Keyboard-opened submenus ignore pointer exit.
	n.DispatchKey(ui.KeyRight)
	if n.Child() == nil {
		t.Fatal("ArrowRight should reopen the submenu")
	}
	n.RetractHoverChild(false, false)
	if n.Child() == nil {
		t.Error("a keyboard-opened submenu should not hover-retract")
	}
}

func TestMenuNavigatorSubtreeBounds(t *testing.T) {
	var committed string
	n := ui.NewMenuNavigator()
	n.Open(commandSections(&committed), false, nil)
	n.SetBounds(ui.Rect{X: 0, Y: 0, W: 100, H: 120})

	n.DispatchKey(ui.KeyDown)
	n.DispatchKey(ui.KeyDown)
	n.DispatchKey(ui.KeyDown)
	n.DispatchKey(ui.KeyRight)
	n.Child().SetBounds(ui.Rect{X: 100, Y: 40, W: 100, H: 60})

	rects := n.SubtreeBounds()
	if len(rects) != 2 {
		t.Fatalf("SubtreeBounds returned %d rects, want 2", len(rects))
	}
	if rects[1].X != 100 || rects[1].Y != 40 {
		t.Errorf("child rect = %+v", rects[1])
	}
}
