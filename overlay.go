package ui

import "log/slog"

// Direction selects which side of its spawner an overlay opens on.
// Cardinal directions align the overlay's leading edge with the
// spawner's; diagonal directions anchor it to the matching corner.
type Direction int

const (
	DirBottom Direction = iota // Below the spawner (default)
	DirTop                     // Above the spawner
	DirLeft                    // To the left of the spawner
	DirRight                   // To the right of the spawner
	DirTopLeft
	DirTopRight
	DirBottomLeft
	DirBottomRight
	DirCenter // Centered in the workspace, spawner ignored
)

func (d Direction) String() string {
	switch d {
	case DirBottom:
		return "bottom"
	case DirTop:
		return "top"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirTopLeft:
		return "topLeft"
	case DirTopRight:
		return "topRight"
	case DirBottomLeft:
		return "bottomLeft"
	case DirBottomRight:
		return "bottomRight"
	case DirCenter:
		return "center"
	}
	return "unknown"
}

// MenuType is the visual and behavioral class of an overlay surface.
type MenuType int

const (
	MenuDropdown MenuType = iota // Flush against the spawner, shares its width semantics
	MenuPopover                  // Offset by a pointer tail, centered on the spawner
	MenuDialog                   // Modal-ish, stays open until explicitly closed
	MenuTooltip                  // Ephemeral hover hint
	MenuCursor                   // Anchored at the pointer position
)

func (t MenuType) String() string {
	switch t {
	case MenuDropdown:
		return "dropdown"
	case MenuPopover:
		return "popover"
	case MenuDialog:
		return "dialog"
	case MenuTooltip:
		return "tooltip"
	case MenuCursor:
		return "cursor"
	}
	return "unknown"
}

// OverlayPhase tracks the two-frame open sequence. Content is laid out
// invisibly for one frame so its natural size is known before the
// overlay is positioned and shown.
type OverlayPhase int

const (
	OverlayHidden OverlayPhase = iota
	OverlayMeasuring
	OverlayShown
)

// Placement is the resolved position of an overlay surface.
type Placement struct {
	Bounds   Rect
	Radii    CornerRadii
	TailEdge Direction // Edge the popover tail sits on (Popover only)
	TailPos  Vec2      // Tail apex in workspace coordinates
	ClampedX bool      // Pushed back from a horizontal workspace edge
	ClampedY bool      // Pushed back from a vertical workspace edge
}

// PlaceOverlay computes where an overlay of the given content size goes
// relative to its anchor, clamped into the workspace with the given
// edge margin. A zero anchor with a non-Center direction yields a
// zero placement so callers can treat unmounted spawners as a no-op.
func PlaceOverlay(workspace, anchor Rect, content Vec2, dir Direction, typ MenuType, margin, rounding float32) Placement {
	if content.X <= 0 || content.Y <= 0 {
		return Placement{}
	}
	if anchor.IsZero() && dir != DirCenter {
		return Placement{}
	}

	gap := float32(0)
	if typ == MenuPopover {
		gap = PopoverTailLength
	}

	var x, y float32
	switch dir {
	case DirBottom:
		x = anchor.X
		y = anchor.Y + anchor.H + gap
		if typ == MenuPopover {
			x = anchor.X + anchor.W/2 - content.X/2
		}
	case DirTop:
		x = anchor.X
		y = anchor.Y - content.Y - gap
		if typ == MenuPopover {
			x = anchor.X + anchor.W/2 - content.X/2
		}
	case DirRight:
		x = anchor.X + anchor.W + gap
		y = anchor.Y
		if typ == MenuPopover {
			y = anchor.Y + anchor.H/2 - content.Y/2
		}
	case DirLeft:
		x = anchor.X - content.X - gap
		y = anchor.Y
		if typ == MenuPopover {
			y = anchor.Y + anchor.H/2 - content.Y/2
		}
	case DirBottomRight:
		x = anchor.X + anchor.W + gap
		y = anchor.Y + anchor.H + gap
	case DirBottomLeft:
		x = anchor.X - content.X - gap
		y = anchor.Y + anchor.H + gap
	case DirTopRight:
		x = anchor.X + anchor.W + gap
		y = anchor.Y - content.Y - gap
	case DirTopLeft:
		x = anchor.X - content.X - gap
		y = anchor.Y - content.Y - gap
	case DirCenter:
		x = workspace.X + workspace.W/2 - content.X/2
		y = workspace.Y + workspace.H/2 - content.Y/2
	}

	p := Placement{
		Bounds: Rect{X: x, Y: y, W: content.X, H: content.Y},
		Radii:  UniformRadii(rounding),
	}

	// Clamp into the workspace, remembering which edges we hit. The
	// low edge wins when content is larger than the workspace.
	var pinLeft, pinTop bool
	minX := workspace.X + margin
	maxX := workspace.X + workspace.W - margin - content.X
	if p.Bounds.X > maxX {
		p.Bounds.X = maxX
		p.ClampedX = true
	}
	if p.Bounds.X < minX {
		p.Bounds.X = minX
		p.ClampedX = true
		pinLeft = true
	}
	minY := workspace.Y + margin
	maxY := workspace.Y + workspace.H - margin - content.Y
	if p.Bounds.Y > maxY {
		p.Bounds.Y = maxY
		p.ClampedY = true
	}
	if p.Bounds.Y < minY {
		p.Bounds.Y = minY
		p.ClampedY = true
		pinTop = true
	}

	// A popover pinned on both axes sits flush in a workspace corner;
	// round corners there would leave a visible notch against the edge.
	if typ == MenuPopover && p.ClampedX && p.ClampedY {
		switch {
		case pinLeft && pinTop:
			p.Radii.TopLeft = 0
		case !pinLeft && pinTop:
			p.Radii.TopRight = 0
		case pinLeft && !pinTop:
			p.Radii.BottomLeft = 0
		default:
			p.Radii.BottomRight = 0
		}
	}

	if typ == MenuPopover && dir != DirCenter {
		p.placeTail(anchor, dir)
	}
	return p
}

// placeTail positions the popover tail on the edge facing the anchor,
// sliding it along that edge to stay aimed at the anchor center even
// after clamping.
func (p *Placement) placeTail(anchor Rect, dir Direction) {
	b := p.Bounds
	cx := anchor.X + anchor.W/2
	cy := anchor.Y + anchor.H/2
	switch dir {
	case DirBottom, DirBottomLeft, DirBottomRight:
		p.TailEdge = DirTop
		p.TailPos = Vec2{X: clampf(cx, b.X+PopoverTailLength, b.X+b.W-PopoverTailLength), Y: b.Y - PopoverTailLength}
	case DirTop, DirTopLeft, DirTopRight:
		p.TailEdge = DirBottom
		p.TailPos = Vec2{X: clampf(cx, b.X+PopoverTailLength, b.X+b.W-PopoverTailLength), Y: b.Y + b.H + PopoverTailLength}
	case DirRight:
		p.TailEdge = DirLeft
		p.TailPos = Vec2{X: b.X - PopoverTailLength, Y: clampf(cy, b.Y+PopoverTailLength, b.Y+b.H-PopoverTailLength)}
	case DirLeft:
		p.TailEdge = DirRight
		p.TailPos = Vec2{X: b.X + b.W + PopoverTailLength, Y: clampf(cy, b.Y+PopoverTailLength, b.Y+b.H-PopoverTailLength)}
	}
}

// OverlaySurface is the retained state behind one floating overlay. It
// owns the measure-then-show sequence and the dismissal listener that
// keeps the overlay subscribed while open.
type OverlaySurface struct {
	placement   Placement
	state       OverlayPhase
	dir         Direction
	typ         MenuType
	margin      float32
	naturalSize Vec2

	listener  *DismissListener
	spawnerID ID

	// OnNaturalWidth fires once per open, after the measuring frame,
	// with the content's natural width. Spawners use it to size
	// themselves to their widest menu entry.
	OnNaturalWidth func(width float32)

	// OnOpenChanged fires on every open and close transition,
	// regardless of what triggered it (spawner click, commit,
	// dismissal heuristic).
	OnOpenChanged func(open bool)
}

// NewOverlaySurface returns a closed overlay of the given class.
func NewOverlaySurface(typ MenuType, dir Direction) *OverlaySurface {
	return &OverlaySurface{
		state:  OverlayHidden,
		typ:    typ,
		dir:    dir,
		margin: DefaultEdgeMargin,
	}
}

// IsOpen reports whether the overlay is measuring or shown.
func (s *OverlaySurface) IsOpen() bool { return s.state != OverlayHidden }

// Phase returns the current lifecycle phase.
func (s *OverlaySurface) Phase() OverlayPhase { return s.state }

// Placement returns the resolved placement. Only meaningful while
// the phase is OverlayShown.
func (s *OverlaySurface) Placement() Placement { return s.placement }

// Bounds returns the shown overlay's rectangle, or the zero Rect while
// hidden or measuring.
func (s *OverlaySurface) Bounds() Rect {
	if s.state != OverlayShown {
		return Rect{}
	}
	return s.placement.Bounds
}

// Open begins the measure-then-show sequence and subscribes the overlay
// to dismissal events. Opening an already-open overlay is a no-op.
func (s *OverlaySurface) Open(d *Dispatcher, spawnerID ID, listener *DismissListener) {
	if s.state != OverlayHidden {
		return
	}
	s.state = OverlayMeasuring
	s.naturalSize = Vec2{}
	s.spawnerID = spawnerID
	s.listener = listener
	if listener != nil {
		listener.SpawnerID = spawnerID
		d.Attach(listener)
	}
	if uiVerbose() {
		uiLogger.Debug("overlay opened", slog.String("type", s.typ.String()), slog.String("direction", s.dir.String()))
	}
	if s.OnOpenChanged != nil {
		s.OnOpenChanged(true)
	}
}

// Close hides the overlay and detaches its dismissal listener.
// Closing a hidden overlay is a no-op.
func (s *OverlaySurface) Close(d *Dispatcher) {
	if s.state == OverlayHidden {
		return
	}
	s.state = OverlayHidden
	s.placement = Placement{}
	if s.listener != nil {
		d.Detach(s.listener)
		s.listener = nil
	}
	if uiVerbose() {
		uiLogger.Debug("overlay closed", slog.String("type", s.typ.String()))
	}
	if s.OnOpenChanged != nil {
		s.OnOpenChanged(false)
	}
}

// SetMeasured records the content's natural size from the measuring
// frame and advances to OverlayShown. Fires OnNaturalWidth.
func (s *OverlaySurface) SetMeasured(size Vec2) {
	if s.state != OverlayMeasuring {
		return
	}
	s.naturalSize = size
	s.state = OverlayShown
	if s.OnNaturalWidth != nil {
		s.OnNaturalWidth(size.X)
	}
}

// NaturalSize returns the size recorded by the measuring frame.
func (s *OverlaySurface) NaturalSize() Vec2 { return s.naturalSize }

// Place resolves the overlay's position against the given anchor and
// workspace. Call each frame while shown so the overlay tracks a
// moving spawner.
func (s *OverlaySurface) Place(workspace, anchor Rect, content Vec2, rounding float32) Placement {
	s.placement = PlaceOverlay(workspace, anchor, content, s.dir, s.typ, s.margin, rounding)
	return s.placement
}

// SetEdgeMargin overrides the clamping margin for this overlay.
func (s *OverlaySurface) SetEdgeMargin(margin float32) { s.margin = margin }
