package ui

// VirtualWindow is the visible slice of a long menu section: only rows
// in [Start, End) are materialized, with spacer heights standing in for
// the rest so scrollbar proportions stay correct. Purely derived from
// scroll offset, row height and viewport height; recomputed on every
// scroll event (O(1), no debouncing needed).
type VirtualWindow struct {
	Start int // Index of the first materialized row
	End   int // One past the last materialized row

	SpacerBefore float32 // Height standing in for rows above Start
	SpacerAfter  float32 // Height standing in for rows at End and below
	TotalHeight  float32 // Full content height, all rows included
}

// ComputeVirtualWindow derives the visible row window for total rows of
// a fixed rowHeight inside a viewport, scrolled by scrollOffset.
func ComputeVirtualWindow(total int, rowHeight, viewportHeight, scrollOffset float32) VirtualWindow {
	if total <= 0 || rowHeight <= 0 {
		return VirtualWindow{}
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}

	start := int(scrollOffset / rowHeight)
	if start > total {
		start = total
	}
	end := start + 1 + int(viewportHeight/rowHeight)
	if end > total {
		end = total
	}

	return VirtualWindow{
		Start:        start,
		End:          end,
		SpacerBefore: float32(start) * rowHeight,
		SpacerAfter:  float32(total-end) * rowHeight,
		TotalHeight:  float32(total) * rowHeight,
	}
}
