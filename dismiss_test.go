package ui_test

import (
	"testing"

	"github.com/glyphstudio/ui"
)

func boundsFor(rects ...ui.Rect) func() []ui.Rect {
	return func() []ui.Rect { return rects }
}

func TestDispatcherStrayDistance(t *testing.T) {
	d := ui.NewDispatcher()

	var reason ui.DismissReason
	dismissed := false
	d.Attach(&ui.DismissListener{
		Bounds:        boundsFor(ui.Rect{X: 100, Y: 100, W: 50, H: 50}),
		StrayDistance: 100,
		OnDismiss: func(r ui.DismissReason) {
			dismissed = true
			reason = r
		},
	})

	// 95px from the right edge of the bounds: still inside the leash.
	d.PointerMove(ui.Vec2{X: 245, Y: 100})
	if dismissed {
		t.Fatal("pointer within stray distance should not dismiss")
	}

	// 110px away: past the leash.
	d.PointerMove(ui.Vec2{X: 260, Y: 100})
	if !dismissed {
		t.Fatal("pointer past stray distance should dismiss")
	}
	if reason != ui.DismissStray {
		t.Errorf("reason = %v, want DismissStray", reason)
	}
	if d.Count() != 0 {
		t.Errorf("listener count = %d, want 0 after dismissal", d.Count())
	}
}

func TestDispatcherStrayUsesSubtreeBounds(t *testing.T) {
	d := ui.NewDispatcher()

	dismissed := false
	// Bounds cover the menu and an open submenu; distance is measured
	// to the nearest rectangle of the union.
	d.Attach(&ui.DismissListener{
		Bounds: boundsFor(
			ui.Rect{X: 100, Y: 100, W: 50, H: 50},
			ui.Rect{X: 300, Y: 100, W: 50, H: 50},
		),
		StrayDistance: 100,
		OnDismiss:     func(ui.DismissReason) { dismissed = true },
	})

	// Far from the first rect but adjacent to the second.
	d.PointerMove(ui.Vec2{X: 360, Y: 120})
	if dismissed {
		t.Error("pointer near a descendant rect should not dismiss")
	}
}

func TestDispatcherKeepOpenIgnoresPointer(t *testing.T) {
	d := ui.NewDispatcher()

	dismissed := false
	d.Attach(&ui.DismissListener{
		Bounds:        boundsFor(ui.Rect{X: 100, Y: 100, W: 50, H: 50}),
		KeepOpen:      true,
		StrayDistance: 100,
		OnDismiss:     func(ui.DismissReason) { dismissed = true },
	})

	d.PointerMove(ui.Vec2{X: 700, Y: 500})
	if dismissed {
		t.Error("KeepOpen listener should ignore stray distance")
	}
	if d.PointerDown(ui.Vec2{X: 700, Y: 500}) {
		t.Error("click outside a KeepOpen listener should not be swallowed")
	}
	if dismissed {
		t.Error("KeepOpen listener should ignore click-outside")
	}
}

func TestDispatcherClickOutside(t *testing.T) {
	d := ui.NewDispatcher()

	dismissed := false
	d.Attach(&ui.DismissListener{
		Bounds:    boundsFor(ui.Rect{X: 100, Y: 100, W: 50, H: 50}),
		OnDismiss: func(ui.DismissReason) { dismissed = true },
	})

	// Inside: nothing happens, click reaches the widgets.
	if d.PointerDown(ui.Vec2{X: 120, Y: 120}) {
		t.Fatal("click inside should not be swallowed")
	}
	if dismissed {
		t.Fatal("click inside should not dismiss")
	}

	// Outside: the overlay closes and the click is swallowed.
	if !d.PointerDown(ui.Vec2{X: 500, Y: 500}) {
		t.Fatal("click outside should be swallowed")
	}
	if !dismissed {
		t.Fatal("click outside should dismiss")
	}
}

func TestDispatcherClickInsideChildProtectsAncestors(t *testing.T) {
	d := ui.NewDispatcher()

	rootRect := ui.Rect{X: 100, Y: 100, W: 100, H: 200}
	childRect := ui.Rect{X: 200, Y: 140, W: 100, H: 120}

	var rootDismissed, childDismissed bool
	d.Attach(&ui.DismissListener{
		Bounds:    boundsFor(rootRect, childRect),
		OnDismiss: func(ui.DismissReason) { rootDismissed = true },
	})
	d.Attach(&ui.DismissListener{
		Bounds:    boundsFor(childRect),
		OnDismiss: func(ui.DismissReason) { childDismissed = true },
	})

	// Click inside the deepest overlay: the whole chain survives.
	if d.PointerDown(ui.Vec2{X: 250, Y: 160}) {
		t.Fatal("click inside the child should not be swallowed")
	}
	if rootDismissed || childDismissed {
		t.Fatal("click inside the child should dismiss nothing")
	}

	// Click inside the root but outside the child: the child closes,
	// the root survives because the child's rect is part of its bounds
	// only, not the other way around.
	if !d.PointerDown(ui.Vec2{X: 120, Y: 120}) {
		t.Fatal("click outside the child should be swallowed")
	}
	if !childDismissed {
		t.Error("child should be dismissed")
	}
	if rootDismissed {
		t.Error("root should survive a click inside its own rect")
	}
}

func TestDispatcherEscapeDeepestOnly(t *testing.T) {
	d := ui.NewDispatcher()

	var rootDismissed, childDismissed bool
	root := &ui.DismissListener{
		EscapeCloses: true,
		OnDismiss:    func(ui.DismissReason) { rootDismissed = true },
	}
	child := &ui.DismissListener{
		EscapeCloses: false, // Routes its own keys, like a menu
		OnDismiss:    func(ui.DismissReason) { childDismissed = true },
	}
	d.Attach(root)
	d.Attach(child)

	// The deepest listener declined; Escape must not skip past it.
	if d.Escape() {
		t.Fatal("Escape should not be handled when the deepest listener declines")
	}
	if rootDismissed || childDismissed {
		t.Fatal("nothing should be dismissed")
	}

	d.Detach(child)
	if !d.Escape() {
		t.Fatal("Escape should close the deepest opted-in listener")
	}
	if !rootDismissed {
		t.Error("root should be dismissed by Escape")
	}
}

func TestDispatcherAttachIdempotent(t *testing.T) {
	d := ui.NewDispatcher()
	l := &ui.DismissListener{}

	d.Attach(l)
	d.Attach(l)
	if d.Count() != 1 {
		t.Errorf("count = %d, want 1 after duplicate Attach", d.Count())
	}

	d.Detach(l)
	if d.Count() != 0 {
		t.Errorf("count = %d, want 0 after Detach", d.Count())
	}
	d.Detach(l) // A second Detach is a no-op.
}

func TestSpawnerHandOff(t *testing.T) {
	d := ui.NewDispatcher()
	reg := d.Spawners()

	fileRect := ui.Rect{X: 0, Y: 0, W: 60, H: 24}
	editRect := ui.Rect{X: 60, Y: 0, W: 60, H: 24}
	reg.Register(1, "menubar", fileRect)
	reg.Register(2, "menubar", editRect)
	reg.NextFrame() // Hit tests read the previous frame's registrations.

	var reason ui.DismissReason
	dismissed := false
	d.Attach(&ui.DismissListener{
		SpawnerID:    1,
		SpawnerGroup: "menubar",
		Bounds:       boundsFor(ui.Rect{X: 0, Y: 24, W: 120, H: 200}),
		OnDismiss: func(r ui.DismissReason) {
			dismissed = true
			reason = r
		},
	})

	// Hovering the sibling spawner hands the open menu off to it.
	d.PointerMove(ui.Vec2{X: 80, Y: 10})
	if !dismissed {
		t.Fatal("hovering a sibling spawner should dismiss the open menu")
	}
	if reason != ui.DismissHandOff {
		t.Errorf("reason = %v, want DismissHandOff", reason)
	}
	if !reg.ConsumeActivation(2) {
		t.Error("the hovered sibling should have a pending activation")
	}
	if reg.ConsumeActivation(2) {
		t.Error("activation should be consumed exactly once")
	}
}

func TestSpawnerHandOffIgnoresOwnSpawner(t *testing.T) {
	d := ui.NewDispatcher()
	reg := d.Spawners()

	reg.Register(1, "menubar", ui.Rect{X: 0, Y: 0, W: 60, H: 24})
	reg.NextFrame()

	dismissed := false
	d.Attach(&ui.DismissListener{
		SpawnerID:    1,
		SpawnerGroup: "menubar",
		Bounds:       boundsFor(ui.Rect{X: 0, Y: 24, W: 120, H: 200}),
		OnDismiss:    func(ui.DismissReason) { dismissed = true },
	})

	// Hovering the menu's own spawner is not a hand-off.
	d.PointerMove(ui.Vec2{X: 30, Y: 10})
	if dismissed {
		t.Error("hovering the owning spawner should not dismiss")
	}
}
