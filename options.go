package ui

// Option configures a UI widget.
type Option func(*options)

// options holds all widget configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
// All options (built-in and custom) use this system for consistency.
//
// Example:
//
//	// Define option keys (built-in ones are already defined below)
//	var OptCustomThing = ui.NewOptKey("customThing", defaultValue)
//
//	// Set options
//	ctx.MyWidget("id", ui.WithOpt(OptCustomThing, value))
//
//	// Read in widget implementation
//	value := ui.GetOpt(opts, OptCustomThing)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages to create custom widgets.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was explicitly set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

// --- Core Options ---
var (
	OptID       = NewOptKey("id", "")
	OptDisabled = NewOptKey("disabled", false)
	OptWidth    = NewOptKey[float32]("width", 0)
	OptMinWidth = NewOptKey[float32]("minWidth", 0)
	OptHeight   = NewOptKey[float32]("height", 0)
)

// --- Overlay Options ---
var (
	OptDirection      = NewOptKey("direction", DirBottom)
	OptMenuType       = NewOptKey("menuType", MenuDropdown)
	OptEdgeMargin     = NewOptKey[float32]("edgeMargin", DefaultEdgeMargin)
	OptEscapeCloses   = NewOptKey("escapeCloses", true)
	OptStrayDistance  = NewOptKey[float32]("strayDistance", DefaultStrayDistance)
	OptKeepOpen       = NewOptKey("keepOpen", false)
	OptMatchSpawnerWidth = NewOptKey("matchSpawnerWidth", false)
)

// --- Menu Options ---
var (
	OptInteractive = NewOptKey("interactive", false)
	OptDrawIcons   = NewOptKey("drawIcons", false)
	OptMaxHeight  = NewOptKey[float32]("maxHeight", 0)
	OptSearchable = NewOptKey("searchable", false)
	OptTooltip    = NewOptKey("tooltip", "")
	OptActive     = NewOptKey[*Entry]("active", nil)
)

// =============================================================================
// Convenience Option Functions (wrap WithOpt for common cases)
// =============================================================================

// WithID sets an explicit ID for the widget.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithDisabled disables the widget (grayed out, no interaction).
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// WithWidth sets a specific width for the widget.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// WithMinWidth sets a lower bound on the widget's natural width.
func WithMinWidth(width float32) Option { return WithOpt(OptMinWidth, width) }

// WithHeight sets a specific height for the widget.
func WithHeight(height float32) Option { return WithOpt(OptHeight, height) }

// WithDirection sets which side of the spawner an overlay opens on.
func WithDirection(dir Direction) Option { return WithOpt(OptDirection, dir) }

// WithMenuType sets the visual and behavioral class of an overlay.
func WithMenuType(t MenuType) Option { return WithOpt(OptMenuType, t) }

// WithEdgeMargin sets the minimum gap kept between an overlay and the
// workspace edge when clamping.
func WithEdgeMargin(margin float32) Option { return WithOpt(OptEdgeMargin, margin) }

// NoEscapeClose prevents the Escape key from dismissing the overlay.
func NoEscapeClose() Option { return WithOpt(OptEscapeCloses, false) }

// WithStrayDistance sets how far the pointer may wander from an overlay
// before it auto-dismisses. Zero disables stray dismissal.
func WithStrayDistance(px float32) Option { return WithOpt(OptStrayDistance, px) }

// KeepOpen pins the overlay so pointer movement and outside clicks do
// not dismiss it (dialogs).
func KeepOpen() Option { return WithOpt(OptKeepOpen, true) }

// MatchSpawnerWidth sizes the overlay to its spawner instead of its
// natural content width.
func MatchSpawnerWidth() Option { return WithOpt(OptMatchSpawnerWidth, true) }

// Interactive marks a menu as a value picker: committing an entry
// records it as the active choice and highlights it on reopen.
func Interactive() Option { return WithOpt(OptInteractive, true) }

// WithIcons reserves an icon column in menu rows.
func WithIcons() Option { return WithOpt(OptDrawIcons, true) }

// WithMaxHeight caps the overlay height; taller content scrolls.
func WithMaxHeight(height float32) Option { return WithOpt(OptMaxHeight, height) }

// Searchable enables type-to-filter on dropdown menus.
func Searchable() Option { return WithOpt(OptSearchable, true) }

// WithTooltip attaches hover tooltip text to the widget.
func WithTooltip(text string) Option { return WithOpt(OptTooltip, text) }

// WithActive seeds a value picker's committed entry before its first
// open, so a dropdown can reflect an externally stored choice.
func WithActive(e *Entry) Option { return WithOpt(OptActive, e) }
