// Package snap finds existing geometry near the cursor.
package snap

import (
	"math"

	"github.com/example/draftcad/drawing"
	"github.com/example/draftcad/geom"
)

// Resolve returns the first snap point within threshold of cursor on both
// axes. Line endpoints are tried before circle centers and cardinal points.
// Entities still being drawn are skipped.
func Resolve(cursor geom.Vec2, d *drawing.Drawing, threshold float32) (geom.Vec2, bool) {
	if d == nil || !(threshold > 0) {
		return geom.Vec2{}, false
	}
	for i := range d.Lines {
		l := &d.Lines[i]
		if l.IsDrawing {
			continue
		}
		for _, v := range l.Vertices {
			if within(v.Pos, cursor, threshold) {
				return v.Pos, true
			}
		}
	}
	for i := range d.Circles {
		c := &d.Circles[i]
		if c.IsDrawing {
			continue
		}
		for _, p := range c.SnapPoints() {
			if within(p, cursor, threshold) {
				return p, true
			}
		}
	}
	return geom.Vec2{}, false
}

func within(p, cursor geom.Vec2, threshold float32) bool {
	return math.Abs(float64(p.X-cursor.X)) < float64(threshold) &&
		math.Abs(float64(p.Y-cursor.Y)) < float64(threshold)
}

// Indicator is the cross drawn over the active snap point: four arms
// radiating from the center. A hidden indicator has all arms collapsed to
// the origin.
type Indicator [4][2]geom.Vec2

// MoveTo recenters the indicator on p with arms of length size.
func (in *Indicator) MoveTo(p geom.Vec2, size float32) {
	in[0] = [2]geom.Vec2{p, {X: p.X + size, Y: p.Y}}
	in[1] = [2]geom.Vec2{p, {X: p.X, Y: p.Y + size}}
	in[2] = [2]geom.Vec2{p, {X: p.X - size, Y: p.Y}}
	in[3] = [2]geom.Vec2{p, {X: p.X, Y: p.Y - size}}
}

// Hide collapses every arm.
func (in *Indicator) Hide() {
	*in = Indicator{}
}

// Visible reports whether any arm has non-zero length.
func (in *Indicator) Visible() bool {
	for _, seg := range in {
		if seg[0] != seg[1] {
			return true
		}
	}
	return false
}
