package ui

import "log/slog"

// DismissReason tells a listener why its overlay is being closed.
type DismissReason int

const (
	DismissStray        DismissReason = iota // Pointer wandered too far away
	DismissClickOutside                      // Pointer pressed outside the overlay
	DismissEscape                            // Escape key
	DismissHandOff                           // Sibling spawner hovered while open
)

func (r DismissReason) String() string {
	switch r {
	case DismissStray:
		return "stray"
	case DismissClickOutside:
		return "clickOutside"
	case DismissEscape:
		return "escape"
	case DismissHandOff:
		return "handOff"
	}
	return "unknown"
}

// DismissListener subscribes an open overlay to global dismissal
// events. Bounds must return the overlay's rectangle plus the
// rectangles of every open descendant, so a pointer inside a submenu
// never counts as outside its parent.
type DismissListener struct {
	SpawnerID    ID
	SpawnerGroup string        // Non-empty enables hover hand-off between siblings
	Bounds       func() []Rect // Self plus open descendants
	KeepOpen     bool          // Ignore pointer-based dismissal (dialogs)
	EscapeCloses bool
	StrayDistance float32 // Max pointer distance before auto-dismiss, 0 disables
	OnDismiss    func(reason DismissReason)
}

// Dispatcher routes pointer and Escape events to open overlay
// listeners. Listeners attach when their overlay opens and detach when
// it closes; order of attachment is depth order, so the last listener
// is the deepest open overlay.
type Dispatcher struct {
	listeners []*DismissListener
	spawners  *SpawnerRegistry
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{spawners: NewSpawnerRegistry()}
}

// Spawners exposes the spawner registry for hover hand-off.
func (d *Dispatcher) Spawners() *SpawnerRegistry { return d.spawners }

// Attach subscribes a listener. Attaching the same listener twice is
// a no-op.
func (d *Dispatcher) Attach(l *DismissListener) {
	for _, existing := range d.listeners {
		if existing == l {
			return
		}
	}
	d.listeners = append(d.listeners, l)
}

// Detach unsubscribes a listener. Unknown listeners are ignored.
func (d *Dispatcher) Detach(l *DismissListener) {
	for i, existing := range d.listeners {
		if existing == l {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}

// Count returns the number of attached listeners. Steady-state this
// must match the number of open overlays; a growing count means a
// listener leaked across open/close cycles.
func (d *Dispatcher) Count() int { return len(d.listeners) }

// PointerMove applies the stray-distance heuristic and sibling
// hover hand-off for every attached listener.
func (d *Dispatcher) PointerMove(pos Vec2) {
	// Snapshot: OnDismiss detaches listeners mid-iteration.
	snapshot := make([]*DismissListener, len(d.listeners))
	copy(snapshot, d.listeners)

	for i := len(snapshot) - 1; i >= 0; i-- {
		l := snapshot[i]
		if !d.attached(l) || l.KeepOpen {
			continue
		}

		if l.SpawnerGroup != "" {
			if id, ok := d.spawners.FindAt(pos, l.SpawnerGroup, l.SpawnerID); ok {
				d.spawners.requestActivation(id)
				d.dismiss(l, DismissHandOff)
				continue
			}
		}

		if l.StrayDistance <= 0 || l.Bounds == nil {
			continue
		}
		if dist, ok := distanceToRects(pos, l.Bounds()); ok && dist > l.StrayDistance {
			d.dismiss(l, DismissStray)
		}
	}
}

// PointerDown dismisses overlays the press landed outside of. Returns
// true when the click was swallowed and must not reach widgets
// underneath.
func (d *Dispatcher) PointerDown(pos Vec2) bool {
	snapshot := make([]*DismissListener, len(d.listeners))
	copy(snapshot, d.listeners)

	swallowed := false
	for i := len(snapshot) - 1; i >= 0; i-- {
		l := snapshot[i]
		if !d.attached(l) || l.KeepOpen || l.Bounds == nil {
			continue
		}
		if containsPoint(pos, l.Bounds()) {
			// Inside this overlay (or one of its descendants): the
			// click belongs to it, and to every ancestor below it.
			break
		}
		d.dismiss(l, DismissClickOutside)
		swallowed = true
	}
	return swallowed
}

// Escape offers the Escape key to the deepest open overlay. Only the
// deepest listener is considered: when it routes its own keys (menus
// set EscapeCloses false and close level by level instead), Escape
// must not skip past it to an overlay underneath.
func (d *Dispatcher) Escape() bool {
	n := len(d.listeners)
	if n == 0 {
		return false
	}
	l := d.listeners[n-1]
	if !l.EscapeCloses {
		return false
	}
	d.dismiss(l, DismissEscape)
	return true
}

func (d *Dispatcher) dismiss(l *DismissListener, reason DismissReason) {
	if uiVerbose() {
		uiLogger.Debug("overlay dismissed", slog.String("reason", reason.String()))
	}
	if l.OnDismiss != nil {
		l.OnDismiss(reason)
	}
	// OnDismiss normally detaches via OverlaySurface.Close; detach
	// here as well in case it did not.
	d.Detach(l)
}

func (d *Dispatcher) attached(l *DismissListener) bool {
	for _, existing := range d.listeners {
		if existing == l {
			return true
		}
	}
	return false
}

// distanceToRects returns the minimum distance from pos to any rect.
// ok is false when the slice is empty or all rects are zero.
func distanceToRects(pos Vec2, rects []Rect) (float32, bool) {
	best := float32(0)
	found := false
	for _, r := range rects {
		if r.IsZero() {
			continue
		}
		dist := r.DistanceToPoint(pos)
		if !found || dist < best {
			best = dist
			found = true
		}
	}
	return best, found
}

func containsPoint(pos Vec2, rects []Rect) bool {
	for _, r := range rects {
		if r.Contains(pos) {
			return true
		}
	}
	return false
}

// spawnerEntry records one spawner's screen position for a frame.
type spawnerEntry struct {
	id     ID
	group  string
	bounds Rect
}

// SpawnerRegistry is a double-buffered record of spawner widget
// positions. Widgets register every frame; hit tests read the previous
// frame's complete set so results do not depend on submission order.
type SpawnerRegistry struct {
	current []spawnerEntry
	prev    []spawnerEntry

	pendingActivation ID
	hasPending        bool
}

// NewSpawnerRegistry returns an empty registry.
func NewSpawnerRegistry() *SpawnerRegistry {
	return &SpawnerRegistry{}
}

// Register records a spawner's bounds for the current frame. Group
// names tie sibling spawners together for hover hand-off; a menu bar
// registers all its buttons under one group.
func (r *SpawnerRegistry) Register(id ID, group string, bounds Rect) {
	r.current = append(r.current, spawnerEntry{id: id, group: group, bounds: bounds})
}

// NextFrame swaps buffers. Called once per frame by the context.
func (r *SpawnerRegistry) NextFrame() {
	r.prev, r.current = r.current, r.prev[:0]
}

// FindAt returns the spawner in group containing pos, excluding the
// given ID. Reads the previous frame's registrations.
func (r *SpawnerRegistry) FindAt(pos Vec2, group string, exclude ID) (ID, bool) {
	for _, e := range r.prev {
		if e.group == group && e.id != exclude && e.bounds.Contains(pos) {
			return e.id, true
		}
	}
	return 0, false
}

func (r *SpawnerRegistry) requestActivation(id ID) {
	r.pendingActivation = id
	r.hasPending = true
}

// ConsumeActivation reports whether the given spawner was targeted by
// a hover hand-off, clearing the request when it matches. The spawner
// that consumes it opens its overlay immediately.
func (r *SpawnerRegistry) ConsumeActivation(id ID) bool {
	if r.hasPending && r.pendingActivation == id {
		r.hasPending = false
		r.pendingActivation = 0
		return true
	}
	return false
}
