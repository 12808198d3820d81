package ui_test

import (
	"testing"

	"github.com/glyphstudio/ui"
)

var testWorkspace = ui.Rect{W: 800, H: 600}

func TestPlaceOverlayBelow(t *testing.T) {
	anchor := ui.Rect{X: 100, Y: 100, W: 80, H: 24}
	p := ui.PlaceOverlay(testWorkspace, anchor, ui.Vec2{X: 200, Y: 300}, ui.DirBottom, ui.MenuDropdown, 6, 4)

	want := ui.Rect{X: 100, Y: 124, W: 200, H: 300}
	if p.Bounds != want {
		t.Errorf("Bounds = %+v, want %+v", p.Bounds, want)
	}
	if p.ClampedX || p.ClampedY {
		t.Errorf("unexpected clamping: x=%v y=%v", p.ClampedX, p.ClampedY)
	}
}

func TestPlaceOverlayPopoverCentersAndGaps(t *testing.T) {
	anchor := ui.Rect{X: 100, Y: 100, W: 80, H: 24}
	p := ui.PlaceOverlay(testWorkspace, anchor, ui.Vec2{X: 200, Y: 100}, ui.DirBottom, ui.MenuPopover, 6, 4)

	// Centered on the anchor, offset by the tail length.
	if p.Bounds.X != 40 {
		t.Errorf("Bounds.X = %v, want 40", p.Bounds.X)
	}
	if p.Bounds.Y != 124+ui.PopoverTailLength {
		t.Errorf("Bounds.Y = %v, want %v", p.Bounds.Y, 124+ui.PopoverTailLength)
	}
	if p.TailEdge != ui.DirTop {
		t.Errorf("TailEdge = %v, want DirTop", p.TailEdge)
	}
	// The tail apex aims at the anchor center.
	if p.TailPos.X != 140 {
		t.Errorf("TailPos.X = %v, want 140", p.TailPos.X)
	}
}

func TestPlaceOverlayClampsToWorkspace(t *testing.T) {
	anchor := ui.Rect{X: 750, Y: 100, W: 40, H: 24}
	p := ui.PlaceOverlay(testWorkspace, anchor, ui.Vec2{X: 200, Y: 100}, ui.DirBottom, ui.MenuDropdown, 6, 4)

	if !p.ClampedX {
		t.Fatal("expected horizontal clamping near the right edge")
	}
	if got, want := p.Bounds.X, float32(800-6-200); got != want {
		t.Errorf("Bounds.X = %v, want %v", got, want)
	}
	if p.Bounds.X+p.Bounds.W > testWorkspace.W-6 {
		t.Error("overlay extends past the workspace margin")
	}
}

func TestPlaceOverlayCornerRadiusZeroedWhenPinned(t *testing.T) {
	small := ui.Rect{W: 300, H: 200}
	anchor := ui.Rect{X: 280, Y: 180, W: 20, H: 20}
	p := ui.PlaceOverlay(small, anchor, ui.Vec2{X: 100, Y: 80}, ui.DirBottom, ui.MenuPopover, 6, 4)

	if !p.ClampedX || !p.ClampedY {
		t.Fatalf("expected clamping on both axes, got x=%v y=%v", p.ClampedX, p.ClampedY)
	}
	if p.Radii.BottomRight != 0 {
		t.Errorf("BottomRight radius = %v, want 0 when pinned in the corner", p.Radii.BottomRight)
	}
	if p.Radii.TopLeft != 4 {
		t.Errorf("TopLeft radius = %v, want 4", p.Radii.TopLeft)
	}

	// Non-popover overlays keep their rounding even when double-clamped.
	p = ui.PlaceOverlay(small, anchor, ui.Vec2{X: 100, Y: 80}, ui.DirBottom, ui.MenuDropdown, 6, 4)
	if p.Radii != ui.UniformRadii(4) {
		t.Errorf("dropdown radii = %+v, want uniform 4", p.Radii)
	}
}

func TestPlaceOverlayTailSlidesAlongClampedEdge(t *testing.T) {
	// Anchor flush with the right edge: the body clamps left and the
	// anchor center falls past the tail's allowed range, so the apex
	// stops at the edge of the body instead of tracking the center.
	anchor := ui.Rect{X: 780, Y: 100, W: 20, H: 24}
	p := ui.PlaceOverlay(testWorkspace, anchor, ui.Vec2{X: 200, Y: 100}, ui.DirBottom, ui.MenuPopover, 6, 4)

	if !p.ClampedX {
		t.Fatal("expected horizontal clamping")
	}
	maxTailX := p.Bounds.X + p.Bounds.W - ui.PopoverTailLength
	if p.TailPos.X != maxTailX {
		t.Errorf("TailPos.X = %v, want %v (clamped to the edge)", p.TailPos.X, maxTailX)
	}
}

func TestPlaceOverlayCenterIgnoresAnchor(t *testing.T) {
	p := ui.PlaceOverlay(testWorkspace, ui.Rect{}, ui.Vec2{X: 200, Y: 100}, ui.DirCenter, ui.MenuDialog, 6, 4)

	want := ui.Rect{X: 300, Y: 250, W: 200, H: 100}
	if p.Bounds != want {
		t.Errorf("Bounds = %+v, want %+v", p.Bounds, want)
	}
}

func TestPlaceOverlayZeroAnchor(t *testing.T) {
	p := ui.PlaceOverlay(testWorkspace, ui.Rect{}, ui.Vec2{X: 200, Y: 100}, ui.DirBottom, ui.MenuDropdown, 6, 4)
	if p != (ui.Placement{}) {
		t.Errorf("expected zero placement for a zero anchor, got %+v", p)
	}

	p = ui.PlaceOverlay(testWorkspace, ui.Rect{X: 10, Y: 10, W: 50, H: 20}, ui.Vec2{}, ui.DirBottom, ui.MenuDropdown, 6, 4)
	if p != (ui.Placement{}) {
		t.Errorf("expected zero placement for zero content, got %+v", p)
	}
}

func TestPlaceOverlayDiagonal(t *testing.T) {
	anchor := ui.Rect{X: 200, Y: 200, W: 50, H: 30}
	p := ui.PlaceOverlay(testWorkspace, anchor, ui.Vec2{X: 100, Y: 100}, ui.DirBottomRight, ui.MenuCursor, 6, 4)

	want := ui.Rect{X: 250, Y: 230, W: 100, H: 100}
	if p.Bounds != want {
		t.Errorf("Bounds = %+v, want %+v", p.Bounds, want)
	}
}

func TestOverlaySurfaceLifecycle(t *testing.T) {
	d := ui.NewDispatcher()
	s := ui.NewOverlaySurface(ui.MenuDropdown, ui.DirBottom)

	if s.IsOpen() {
		t.Fatal("new surface should be closed")
	}

	var dismissed bool
	s.Open(d, 1, &ui.DismissListener{
		OnDismiss: func(ui.DismissReason) { dismissed = true },
	})
	if s.Phase() != ui.OverlayMeasuring {
		t.Fatalf("Phase = %v, want Measuring after Open", s.Phase())
	}
	if d.Count() != 1 {
		t.Fatalf("listener count = %d, want 1", d.Count())
	}
	// Nothing is visible until the measuring frame completes.
	if !s.Bounds().IsZero() {
		t.Error("Bounds should be zero while measuring")
	}

	s.SetMeasured(ui.Vec2{X: 120, Y: 80})
	if s.Phase() != ui.OverlayShown {
		t.Fatalf("Phase = %v, want Shown after SetMeasured", s.Phase())
	}

	anchor := ui.Rect{X: 10, Y: 10, W: 60, H: 20}
	p := s.Place(testWorkspace, anchor, s.NaturalSize(), 4)
	if p.Bounds.W != 120 || p.Bounds.H != 80 {
		t.Errorf("placed size = %vx%v, want 120x80", p.Bounds.W, p.Bounds.H)
	}
	if s.Bounds() != p.Bounds {
		t.Error("surface Bounds should track the last placement while shown")
	}

	s.Close(d)
	if s.IsOpen() {
		t.Error("surface should be closed after Close")
	}
	if d.Count() != 0 {
		t.Errorf("listener count = %d, want 0 after Close", d.Count())
	}
	if dismissed {
		t.Error("Close is not a dismissal; OnDismiss should not fire")
	}
}

func TestOverlaySurfaceNaturalWidthCallback(t *testing.T) {
	d := ui.NewDispatcher()
	s := ui.NewOverlaySurface(ui.MenuDropdown, ui.DirBottom)

	var gotWidth float32
	s.OnNaturalWidth = func(w float32) { gotWidth = w }

	s.Open(d, 1, &ui.DismissListener{})
	s.SetMeasured(ui.Vec2{X: 230, Y: 100})

	if gotWidth != 230 {
		t.Errorf("OnNaturalWidth got %v, want 230", gotWidth)
	}
}

func TestOverlaySurfaceOpenChangedCallback(t *testing.T) {
	d := ui.NewDispatcher()
	s := ui.NewOverlaySurface(ui.MenuPopover, ui.DirBottom)

	var transitions []bool
	s.OnOpenChanged = func(open bool) { transitions = append(transitions, open) }

	s.Open(d, 1, &ui.DismissListener{})
	s.Open(d, 1, &ui.DismissListener{}) // already open, no transition
	s.Close(d)
	s.Close(d) // already closed, no transition

	want := []bool{true, false}
	if len(transitions) != len(want) {
		t.Fatalf("transitions = %v, want %v", transitions, want)
	}
	for i := range want {
		if transitions[i] != want[i] {
			t.Fatalf("transitions = %v, want %v", transitions, want)
		}
	}
}
