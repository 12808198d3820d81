package ui_test

import (
	"testing"

	"github.com/glyphstudio/ui"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
}

func (m *mockRenderer) Render(dl *ui.DrawList) error {
	m.renderCalls++
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {}

func TestUIBasicUsage(t *testing.T) {
	renderer := &mockRenderer{}
	g := ui.New(renderer, ui.WithStyle(ui.EditorStyle()))

	input := ui.NewInputState()
	displaySize := ui.Vec2{X: 1920, Y: 1080}

	ctx := g.Begin(input, displaySize, 0.016)
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}

	ctx.Text("Hello World")
	ctx.TextDisabled("Muted")

	if err := g.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}
	if renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.renderCalls)
	}
}

func TestButtonClick(t *testing.T) {
	renderer := &mockRenderer{}
	g := ui.New(renderer)
	input := ui.NewInputState()

	// No input: not clicked.
	ctx := g.Begin(input, ui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.SetCursorPos(ui.Vec2{X: 10, Y: 10})
	if ctx.Button("Click Me") {
		t.Error("button should not be clicked without mouse input")
	}
	rect := ctx.LastItemRect()
	_ = g.End()

	// Press inside the rect the previous frame produced.
	input.Reset()
	input.SetMousePos(rect.X+2, rect.Y+2)
	input.SetMouseButton(ui.MouseButtonLeft, true)

	ctx = g.Begin(input, ui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.SetCursorPos(ui.Vec2{X: 10, Y: 10})
	clicked := ctx.Button("Click Me")
	_ = g.End()

	if !clicked {
		t.Error("button should be clicked when pressed inside its rect")
	}
}

// dropdownFrame runs one frame with a dropdown at a fixed position.
func dropdownFrame(g *ui.UI, input *ui.InputState, id string, sections []ui.Section, setup func(*ui.InputState), opts ...ui.Option) (*ui.Entry, bool, *ui.Context) {
	input.Reset()
	if setup != nil {
		setup(input)
	}
	ctx := g.Begin(input, ui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.SetCursorPos(ui.Vec2{X: 10, Y: 10})
	e, changed := ctx.Dropdown("Size", sections, append([]ui.Option{ui.WithID(id)}, opts...)...)
	_ = g.End()
	return e, changed, ctx
}

func TestDropdownKeyboardCommit(t *testing.T) {
	renderer := &mockRenderer{}
	g := ui.New(renderer)
	input := ui.NewInputState()

	sections := []ui.Section{{
		{Label: "Small", Value: 10},
		{Label: "Medium", Value: 16},
		{Label: "Large", Value: 24},
	}}
	id := "size-picker"

	// Frame 1: click the selector to open the menu.
	_, changed, _ := dropdownFrame(g, input, id, sections, func(in *ui.InputState) {
		in.SetMousePos(15, 20)
		in.SetMouseButton(ui.MouseButtonLeft, true)
	})
	if changed {
		t.Fatal("opening should not report a change")
	}

	// Frame 2: measuring frame, the menu is still invisible.
	dropdownFrame(g, input, id, sections, func(in *ui.InputState) {
		in.SetMouseButton(ui.MouseButtonLeft, false)
	})

	// Frame 3: ArrowDown highlights the first entry.
	dropdownFrame(g, input, id, sections, func(in *ui.InputState) {
		in.SetKey(ui.KeyDown, true)
	})

	// Frame 4: Enter commits it.
	entry, changed, ctx := dropdownFrame(g, input, id, sections, func(in *ui.InputState) {
		in.SetKey(ui.KeyDown, false)
		in.SetKey(ui.KeyEnter, true)
	})
	if !changed {
		t.Fatal("Enter should commit the highlighted entry")
	}
	if entry == nil || entry.Label != "Small" {
		t.Fatalf("committed %v, want Small", entry)
	}
	if ctx.Dispatcher().Count() != 0 {
		t.Error("committing should close the menu and detach its listener")
	}

	// Frame 5: the choice is sticky, no further change reported.
	entry, changed, _ = dropdownFrame(g, input, id, sections, func(in *ui.InputState) {
		in.SetKey(ui.KeyEnter, false)
	})
	if changed {
		t.Error("no input should report no change")
	}
	if entry == nil || entry.Label != "Small" {
		t.Errorf("active entry = %v, want Small", entry)
	}
}

func TestDropdownClickOutsideCloses(t *testing.T) {
	renderer := &mockRenderer{}
	g := ui.New(renderer)
	input := ui.NewInputState()

	sections := []ui.Section{{
		{Label: "One"},
		{Label: "Two"},
	}}
	id := "close-picker"

	// Open and let the menu reach its shown, drawn state.
	dropdownFrame(g, input, id, sections, func(in *ui.InputState) {
		in.SetMousePos(15, 20)
		in.SetMouseButton(ui.MouseButtonLeft, true)
	})
	dropdownFrame(g, input, id, sections, func(in *ui.InputState) {
		in.SetMouseButton(ui.MouseButtonLeft, false)
	})
	_, _, ctx := dropdownFrame(g, input, id, sections, nil)
	if ctx.Dispatcher().Count() != 1 {
		t.Fatalf("listener count = %d, want 1 while open", ctx.Dispatcher().Count())
	}

	// Click far away: the menu closes and the click is swallowed.
	_, changed, ctx := dropdownFrame(g, input, id, sections, func(in *ui.InputState) {
		in.SetMousePos(500, 500)
		in.SetMouseButton(ui.MouseButtonLeft, true)
	})
	if changed {
		t.Error("click-outside should not commit anything")
	}
	if ctx.Dispatcher().Count() != 0 {
		t.Error("click-outside should close the menu")
	}
}

func TestDropdownSeededActive(t *testing.T) {
	renderer := &mockRenderer{}
	g := ui.New(renderer)
	input := ui.NewInputState()

	sections := []ui.Section{{
		{Label: "Left"},
		{Label: "Center"},
		{Label: "Right"},
	}}
	seed := sections[0][1]
	id := "align-picker"

	// The seeded choice is reported before any interaction.
	entry, changed, _ := dropdownFrame(g, input, id, sections, nil, ui.WithActive(seed))
	if changed {
		t.Fatal("seeding should not report a change")
	}
	if entry != seed {
		t.Fatalf("active entry = %v, want the seeded Center", entry)
	}

	// Open the menu and step once: the seed starts highlighted, so a
	// single ArrowDown lands on Right.
	dropdownFrame(g, input, id, sections, func(in *ui.InputState) {
		in.SetMousePos(15, 20)
		in.SetMouseButton(ui.MouseButtonLeft, true)
	}, ui.WithActive(seed))
	dropdownFrame(g, input, id, sections, func(in *ui.InputState) {
		in.SetMouseButton(ui.MouseButtonLeft, false)
	}, ui.WithActive(seed))
	dropdownFrame(g, input, id, sections, func(in *ui.InputState) {
		in.SetKey(ui.KeyDown, true)
	}, ui.WithActive(seed))
	entry, changed, _ = dropdownFrame(g, input, id, sections, func(in *ui.InputState) {
		in.SetKey(ui.KeyDown, false)
		in.SetKey(ui.KeyEnter, true)
	}, ui.WithActive(seed))
	if !changed || entry == nil || entry.Label != "Right" {
		t.Fatalf("committed %v, want Right (one step below the seed)", entry)
	}
}

func TestDropdownFilterSkipsDisabled(t *testing.T) {
	renderer := &mockRenderer{}
	g := ui.New(renderer)
	input := ui.NewInputState()

	sections := []ui.Section{{
		{Label: "Cut", Disabled: true},
		{Label: "Cursor"},
		{Label: "Paste"},
	}}
	id := "action-picker"

	dropdownFrame(g, input, id, sections, func(in *ui.InputState) {
		in.SetMousePos(15, 20)
		in.SetMouseButton(ui.MouseButtonLeft, true)
	}, ui.Searchable())
	dropdownFrame(g, input, id, sections, func(in *ui.InputState) {
		in.SetMouseButton(ui.MouseButtonLeft, false)
	}, ui.Searchable())

	// "cu" ranks the disabled Cut first; the highlight must fall
	// through to the first enabled match.
	dropdownFrame(g, input, id, sections, func(in *ui.InputState) {
		in.AddInputChar('c')
		in.AddInputChar('u')
	}, ui.Searchable())
	entry, changed, _ := dropdownFrame(g, input, id, sections, func(in *ui.InputState) {
		in.SetKey(ui.KeyEnter, true)
	}, ui.Searchable())
	if !changed || entry == nil || entry.Label != "Cursor" {
		t.Fatalf("committed %v, want Cursor (disabled Cut skipped)", entry)
	}
}

func TestDialogEscape(t *testing.T) {
	renderer := &mockRenderer{}
	g := ui.New(renderer)
	input := ui.NewInputState()

	open := true
	frame := func(setup func(*ui.InputState)) {
		input.Reset()
		if setup != nil {
			setup(input)
		}
		ctx := g.Begin(input, ui.Vec2{X: 800, Y: 600}, 0.016)
		ctx.Dialog("Settings", &open)(func() {
			ctx.Text("Content")
		})
		_ = g.End()
	}

	frame(nil) // Opens, measuring
	frame(nil) // Shown
	if !open {
		t.Fatal("dialog should still be open")
	}

	// Clicking outside is ignored for dialogs.
	frame(func(in *ui.InputState) {
		in.SetMousePos(700, 500)
		in.SetMouseButton(ui.MouseButtonLeft, true)
	})
	if !open {
		t.Fatal("click-outside should not close a dialog")
	}

	// Escape closes it and writes the flag back.
	frame(func(in *ui.InputState) {
		in.SetMouseButton(ui.MouseButtonLeft, false)
		in.SetKey(ui.KeyEscape, true)
	})
	if open {
		t.Error("Escape should close the dialog")
	}
}

func TestStylePushPop(t *testing.T) {
	renderer := &mockRenderer{}
	g := ui.New(renderer)
	input := ui.NewInputState()

	ctx := g.Begin(input, ui.Vec2{X: 800, Y: 600}, 0.016)

	base := ctx.Style()
	modified := base
	modified.MenuRowHeight = 32
	ctx.PushStyle(modified)
	if ctx.Style().MenuRowHeight != 32 {
		t.Error("PushStyle should apply the new style")
	}
	ctx.PopStyle()
	if ctx.Style().MenuRowHeight != base.MenuRowHeight {
		t.Error("PopStyle should restore the previous style")
	}

	_ = g.End()
}
