package ui_test

import (
	"testing"

	"github.com/glyphstudio/ui"
)

func TestComputeVirtualWindow(t *testing.T) {
	// 1000 rows of 20px in a 400px viewport, scrolled down 205px.
	w := ui.ComputeVirtualWindow(1000, 20, 400, 205)

	if w.Start != 10 {
		t.Errorf("Start = %d, want 10", w.Start)
	}
	if w.End != 31 {
		t.Errorf("End = %d, want 31", w.End)
	}
	if w.SpacerBefore != 200 {
		t.Errorf("SpacerBefore = %v, want 200", w.SpacerBefore)
	}
	if w.SpacerAfter != float32(1000-31)*20 {
		t.Errorf("SpacerAfter = %v, want %v", w.SpacerAfter, float32(1000-31)*20)
	}
	if w.TotalHeight != 20000 {
		t.Errorf("TotalHeight = %v, want 20000", w.TotalHeight)
	}
}

func TestComputeVirtualWindowShortList(t *testing.T) {
	// Fewer rows than the viewport holds: the whole list materializes.
	w := ui.ComputeVirtualWindow(5, 20, 400, 0)

	if w.Start != 0 || w.End != 5 {
		t.Errorf("window = [%d, %d), want [0, 5)", w.Start, w.End)
	}
	if w.SpacerBefore != 0 || w.SpacerAfter != 0 {
		t.Errorf("spacers = %v/%v, want 0/0", w.SpacerBefore, w.SpacerAfter)
	}
}

func TestComputeVirtualWindowClampsScroll(t *testing.T) {
	// Negative scroll clamps to the top.
	w := ui.ComputeVirtualWindow(100, 20, 200, -50)
	if w.Start != 0 {
		t.Errorf("Start = %d, want 0 for negative scroll", w.Start)
	}

	// Scrolled past the end: window collapses rather than overflowing.
	w = ui.ComputeVirtualWindow(100, 20, 200, 5000)
	if w.Start != 100 || w.End != 100 {
		t.Errorf("window = [%d, %d), want [100, 100)", w.Start, w.End)
	}
}

func TestComputeVirtualWindowEmpty(t *testing.T) {
	w := ui.ComputeVirtualWindow(0, 20, 400, 0)
	if w != (ui.VirtualWindow{}) {
		t.Errorf("expected zero window for empty list, got %+v", w)
	}
}
