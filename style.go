package ui

import colorful "github.com/lucasb-eyer/go-colorful"

// Spacing constants for consistent layout.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2
	SpaceSM   float32 = 4
	SpaceMD   float32 = 8
	SpaceLG   float32 = 12
	SpaceXL   float32 = 16
)

// Overlay placement and dismissal defaults. Tuning constants preserved
// from the original editor; configurable per widget via options.
const (
	// DefaultEdgeMargin insets overlay placement from the workspace edge.
	DefaultEdgeMargin float32 = 6

	// DefaultStrayDistance is the pointer distance beyond an overlay's
	// (and open descendants') bounds past which the overlay dismisses.
	DefaultStrayDistance float32 = 100

	// PopoverTailLength is the extra anchor offset a popover reserves
	// for its triangular tail. Other overlay types sit flush.
	PopoverTailLength float32 = 10
)

// Style defines the visual appearance of UI elements.
type Style struct {
	// Text
	TextColor         uint32
	TextDisabledColor uint32
	ShortcutTextColor uint32

	// Buttons and spawners
	ButtonColor         uint32
	ButtonHoveredColor  uint32
	ButtonActiveColor   uint32
	ButtonDisabledColor uint32

	// Menu surfaces
	MenuBgColor        uint32
	MenuBorderColor    uint32
	MenuHighlightColor uint32 // Highlighted (keyboard/hover) row background
	MenuActiveColor    uint32 // Active entry row background (interactive menus)
	SeparatorColor     uint32
	CheckmarkColor     uint32
	ArrowColor         uint32 // Submenu and dropdown arrow indicator

	// Inputs
	InputBgColor     uint32
	InputBorderColor uint32

	// Scrollbar
	ScrollbarBgColor   uint32
	ScrollbarGrabColor uint32

	// Font (built-in monospace atlas)
	FontScale  float32
	CharWidth  float32
	CharHeight float32

	// Sizing
	ItemSpacing     float32
	ButtonPadding   float32
	MenuItemPadding float32 // Vertical padding inside a menu row
	MenuPadding     float32 // Padding between menu border and rows
	MenuRowHeight   float32 // Fixed row height (virtual scrolling unit)
	MenuMaxHeight   float32 // Cap for scrollable menus
	ScrollbarSize   float32

	// Overlay geometry
	MenuRounding  float32 // Corner radius of overlay surfaces
	EdgeMargin    float32 // Workspace inset for overlay clamping
	StrayDistance float32 // Stray-pointer dismissal threshold
	TailSize      float32 // Half-width of the popover tail triangle
}

// shade returns the color shifted in lightness by dl (positive =
// lighter), preserving hue and saturation. Hover and active variants
// are derived from base colors so themes only pick bases.
func shade(c uint32, dl float64) uint32 {
	r, g, b, a := UnpackRGBA(c)
	col := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	h, s, l := col.Hsl()
	out := colorful.Hsl(h, s, clampf64(l+dl, 0, 1)).Clamped()
	return RGBA(uint8(out.R*255), uint8(out.G*255), uint8(out.B*255), a)
}

func clampf64(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	button := RGBA(50, 50, 50, 255)
	menuBg := RGBA(28, 28, 32, 255)

	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,
		ShortcutTextColor: RGBA(160, 160, 165, 255),

		ButtonColor:         button,
		ButtonHoveredColor:  shade(button, 0.08),
		ButtonActiveColor:   shade(button, 0.16),
		ButtonDisabledColor: shade(button, -0.08),

		MenuBgColor:        menuBg,
		MenuBorderColor:    RGBA(80, 80, 85, 255),
		MenuHighlightColor: shade(menuBg, 0.12),
		MenuActiveColor:    RGBA(40, 80, 160, 255),
		SeparatorColor:     RGBA(70, 70, 75, 255),
		CheckmarkColor:     ColorWhite,
		ArrowColor:         RGBA(180, 180, 185, 255),

		InputBgColor:     RGBA(22, 22, 25, 255),
		InputBorderColor: RGBA(90, 90, 95, 255),

		ScrollbarBgColor:   RGBA(30, 30, 34, 255),
		ScrollbarGrabColor: RGBA(95, 95, 100, 255),

		FontScale:  1.0,
		CharWidth:  8,
		CharHeight: 12,

		ItemSpacing:     SpaceSM,
		ButtonPadding:   SpaceMD,
		MenuItemPadding: SpaceXS,
		MenuPadding:     SpaceSM,
		MenuRowHeight:   20,
		MenuMaxHeight:   400,
		ScrollbarSize:   8,

		MenuRounding:  4,
		EdgeMargin:    DefaultEdgeMargin,
		StrayDistance: DefaultStrayDistance,
		TailSize:      6,
	}
}

// EditorStyle returns the darker theme used by the editor shell.
func EditorStyle() Style {
	s := DefaultStyle()
	button := RGBA(38, 38, 42, 255)
	menuBg := RGBA(17, 17, 19, 255)

	s.ButtonColor = button
	s.ButtonHoveredColor = shade(button, 0.1)
	s.ButtonActiveColor = shade(button, 0.2)
	s.ButtonDisabledColor = shade(button, -0.05)
	s.MenuBgColor = menuBg
	s.MenuHighlightColor = shade(menuBg, 0.14)
	s.MenuBorderColor = RGBA(60, 60, 64, 255)
	s.MenuRounding = 6
	return s
}
