// Package geom holds the world-space value types and the distance math shared
// by snapping, hit-testing and the editor.
package geom

import "math"

// Vec2 is a world-space point or direction.
type Vec2 struct {
	X float32
	Y float32
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vec2) Scale(s float32) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(float64(v.X), float64(v.Y))
}

// RGB is a presentation colour; it never takes part in geometry.
type RGB [3]float32

var (
	White = RGB{1, 1, 1}
	Black = RGB{0, 0, 0}
	Red   = RGB{1, 0, 0}
)

// Vertex is a point with a presentation colour. Z is always 0 for 2D
// entities, so only X and Y are stored.
type Vertex struct {
	Pos   Vec2
	Color RGB
}

// XYZ returns the vertex position with z = 0.
func (v Vertex) XYZ() [3]float32 {
	return [3]float32{v.Pos.X, v.Pos.Y, 0}
}

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// DistancePointToSegment returns the distance from p to the closest point of
// segment ab. A zero-length segment degrades to point distance.
func DistancePointToSegment(p, a, b Vec2) float64 {
	px, py := float64(p.X), float64(p.Y)
	ax, ay := float64(a.X), float64(a.Y)
	ux, uy := float64(b.X)-ax, float64(b.Y)-ay
	var t float64
	if l2 := ux*ux + uy*uy; l2 > 0 {
		t = math.Max(0, math.Min(1, ((px-ax)*ux+(py-ay)*uy)/l2))
	}
	return math.Hypot(px-(ax+t*ux), py-(ay+t*uy))
}

// DistanceToCircle returns how far p lies from the boundary of the circle,
// not from its interior.
func DistanceToCircle(p, center Vec2, radius float32) float64 {
	return math.Abs(Distance(center, p) - float64(radius))
}

// Ortho forces p onto the horizontal or vertical axis through anchor,
// whichever has the larger delta. Ties go to the vertical axis.
func Ortho(anchor, p Vec2) Vec2 {
	dx := math.Abs(float64(p.X - anchor.X))
	dy := math.Abs(float64(p.Y - anchor.Y))
	if dx > dy {
		return Vec2{X: p.X, Y: anchor.Y}
	}
	return Vec2{X: anchor.X, Y: p.Y}
}

// Extend returns the point at exactly length from anchor in the direction of
// toward. ok is false when toward coincides with anchor, since there is no
// direction to extend along.
func Extend(anchor, toward Vec2, length float64) (p Vec2, ok bool) {
	d := toward.Sub(anchor)
	cur := d.Len()
	if cur == 0 || math.IsNaN(cur) || math.IsInf(cur, 0) {
		return Vec2{}, false
	}
	s := length / cur
	return Vec2{
		X: anchor.X + float32(float64(d.X)*s),
		Y: anchor.Y + float32(float64(d.Y)*s),
	}, true
}

// Round3 rounds v to three decimals.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Finite reports whether both coordinates are finite numbers.
func (v Vec2) Finite() bool {
	x, y := float64(v.X), float64(v.Y)
	return !math.IsNaN(x) && !math.IsNaN(y) && !math.IsInf(x, 0) && !math.IsInf(y, 0)
}
