package ui

import "math"

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// IsZero returns true for the zero rectangle. A zero anchor or content
// rect means "not yet measured / not rendered" and geometry passes treat
// it as a silent no-op.
func (r Rect) IsZero() bool {
	return r.W == 0 && r.H == 0
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Inset returns the rectangle shrunk by m on all four sides.
func (r Rect) Inset(m float32) Rect {
	return Rect{X: r.X + m, Y: r.Y + m, W: r.W - 2*m, H: r.H - 2*m}
}

// Union returns the smallest rectangle containing both r and other.
// A zero rectangle is treated as empty.
func (r Rect) Union(other Rect) Rect {
	if r.IsZero() {
		return other
	}
	if other.IsZero() {
		return r
	}
	x1 := minf(r.X, other.X)
	y1 := minf(r.Y, other.Y)
	x2 := maxf(r.X+r.W, other.X+other.W)
	y2 := maxf(r.Y+r.H, other.Y+other.H)
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// DistanceToPoint returns the minimum Euclidean distance from p to the
// rectangle. Points inside the rectangle have distance zero. This is the
// primitive behind stray-pointer dismissal.
func (r Rect) DistanceToPoint(p Vec2) float32 {
	dx := maxf(maxf(r.X-p.X, 0), p.X-(r.X+r.W))
	dy := maxf(maxf(r.Y-p.Y, 0), p.Y-(r.Y+r.H))
	return float32(math.Hypot(float64(dx), float64(dy)))
}

// CornerRadii holds a per-corner border radius for a rounded rectangle.
type CornerRadii struct {
	TopLeft, TopRight, BottomRight, BottomLeft float32
}

// UniformRadii returns radii with the same value at every corner.
func UniformRadii(r float32) CornerRadii {
	return CornerRadii{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

// Vertex represents a vertex for UI rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd represents a single draw command.
// Commands are batched by texture to minimize state changes.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2)
	TextureID    uint32     // OpenGL texture ID (0 = no texture)
	VertexOffset uint32     // Offset into vertex buffer
	IndexOffset  uint32     // Offset into index buffer
}

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorGray        uint32 = 0xFF808080
	ColorTransparent uint32 = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minf returns the minimum of two float32 values.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
