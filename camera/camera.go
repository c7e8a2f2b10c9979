// Package camera converts between screen pixels and world coordinates.
package camera

import "math"

const (
	DefaultMinZoom = 0.01
	DefaultMaxZoom = 1000
)

// Viewport is the size of the rendering surface in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

// Camera holds the pan offset (the world point at the viewport center) and
// the zoom factor in pixels per world unit. Screen Y grows downward, world Y
// grows upward.
type Camera struct {
	OffsetX float64
	OffsetY float64
	Zoom    float64

	MinZoom float64
	MaxZoom float64
}

// New returns a camera centered on the world origin at zoom 1.
func New() *Camera {
	return &Camera{
		Zoom:    1,
		MinZoom: DefaultMinZoom,
		MaxZoom: DefaultMaxZoom,
	}
}

// Reset recenters on the origin at zoom 1.
func (c *Camera) Reset() {
	c.OffsetX = 0
	c.OffsetY = 0
	c.Zoom = 1
}

func (c *Camera) clamp(z float64) float64 {
	lo, hi := c.MinZoom, c.MaxZoom
	if lo <= 0 {
		lo = DefaultMinZoom
	}
	if hi < lo {
		hi = DefaultMaxZoom
	}
	if math.IsNaN(z) {
		return c.Zoom
	}
	return math.Min(math.Max(z, lo), hi)
}

// Pan moves the camera by a world-space delta.
func (c *Camera) Pan(dx, dy float64) {
	c.OffsetX += dx
	c.OffsetY += dy
}

// ZoomBy multiplies the zoom by factor and clamps it. The screen center stays
// fixed. Non-positive factors are ignored.
func (c *Camera) ZoomBy(factor float64) {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return
	}
	c.Zoom = c.clamp(c.Zoom * factor)
}

// ZoomAt zooms by factor while keeping the world point (wx, wy) at the same
// screen position.
func (c *Camera) ZoomAt(factor, wx, wy float64) {
	old := c.Zoom
	c.ZoomBy(factor)
	if c.Zoom == old {
		return
	}
	k := old / c.Zoom
	c.OffsetX = wx - (wx-c.OffsetX)*k
	c.OffsetY = wy - (wy-c.OffsetY)*k
}

// ScreenToWorld converts a pixel position to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64, vp Viewport) (wx, wy float64) {
	cx := sx - vp.Width/2
	cy := vp.Height/2 - sy
	return cx/c.Zoom + c.OffsetX, cy/c.Zoom + c.OffsetY
}

// WorldToScreen is the inverse of ScreenToWorld.
func (c *Camera) WorldToScreen(wx, wy float64, vp Viewport) (sx, sy float64) {
	sx = (wx-c.OffsetX)*c.Zoom + vp.Width/2
	sy = vp.Height/2 - (wy-c.OffsetY)*c.Zoom
	return sx, sy
}

// ScreenDelta converts a pixel position to a world-space vector relative to the
// viewport center, ignoring the pan offset. Panning is driven by frame-to-frame
// differences of this value so pan speed does not depend on zoom.
func (c *Camera) ScreenDelta(sx, sy float64, vp Viewport) (dx, dy float64) {
	return (sx - vp.Width/2) / c.Zoom, (vp.Height/2 - sy) / c.Zoom
}
