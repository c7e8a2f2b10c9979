// Package selection hit-tests lines, circles and text labels.
package selection

import (
	"github.com/example/draftcad/drawing"
	"github.com/example/draftcad/geom"
)

// LineHit reports whether p lies within threshold of the segment.
func LineHit(l *drawing.Line, p geom.Vec2, threshold float32) bool {
	return geom.DistancePointToSegment(p, l.Start(), l.End()) < float64(threshold)
}

// CircleHit reports whether p lies within threshold of the circle boundary.
// Points deep inside the circle do not hit it.
func CircleHit(c *drawing.Circle, p geom.Vec2, threshold float32) bool {
	return geom.DistanceToCircle(p, c.Center.Pos, c.Radius) < float64(threshold)
}

// Hits lists the indices of every entity under a point. Overlapping entities
// are all reported; there is no topmost rule.
type Hits struct {
	Lines   []int
	Circles []int
}

// Empty reports whether nothing was hit.
func (h Hits) Empty() bool {
	return len(h.Lines) == 0 && len(h.Circles) == 0
}

// Pick returns every line and circle of d within threshold of p.
func Pick(d *drawing.Drawing, p geom.Vec2, threshold float32) Hits {
	var h Hits
	if d == nil {
		return h
	}
	for i := range d.Lines {
		if LineHit(&d.Lines[i], p, threshold) {
			h.Lines = append(h.Lines, i)
		}
	}
	for i := range d.Circles {
		if CircleHit(&d.Circles[i], p, threshold) {
			h.Circles = append(h.Circles, i)
		}
	}
	return h
}

// TextAt returns the index of the first text whose last rendered screen
// bounds contain the screen point, or -1.
func TextAt(texts []drawing.Text, screen geom.Vec2) int {
	for i := range texts {
		if b := texts[i].ScreenBounds; b != nil && b.Contains(screen) {
			return i
		}
	}
	return -1
}
