// Package drawing holds the geometry entities of a drawing and the
// collections they live in.
package drawing

import (
	"github.com/google/uuid"

	"github.com/example/draftcad/geom"
)

// DefaultThickness is the stroke width, in pixels, given to new lines and circles.
const DefaultThickness = 2

// Line is a two-point segment. While IsDrawing is set, Vertices[1] follows the
// cursor and the line is not offered as a snap target.
type Line struct {
	ID            uuid.UUID
	Vertices      [2]geom.Vertex
	Thickness     float32
	Selected      bool
	PendingDelete bool
	IsDrawing     bool
}

// Start and End return the endpoint positions.
func (l *Line) Start() geom.Vec2 { return l.Vertices[0].Pos }
func (l *Line) End() geom.Vec2   { return l.Vertices[1].Pos }

// Length returns the line length rounded to three decimals.
func (l *Line) Length() float64 {
	return geom.Round3(geom.Distance(l.Start(), l.End()))
}

// Translate moves both endpoints by d.
func (l *Line) Translate(d geom.Vec2) {
	l.Vertices[0].Pos = l.Vertices[0].Pos.Add(d)
	l.Vertices[1].Pos = l.Vertices[1].Pos.Add(d)
}

// Circle is a center and radius. Radius plays the role of a line's free
// endpoint while IsDrawing is set.
type Circle struct {
	ID            uuid.UUID
	Center        geom.Vertex
	Radius        float32
	Thickness     float32
	Selected      bool
	PendingDelete bool
	IsDrawing     bool
}

func (c *Circle) Translate(d geom.Vec2) {
	c.Center.Pos = c.Center.Pos.Add(d)
}

// SnapPoints returns the center followed by the right, top, left and bottom
// points of the circle.
func (c *Circle) SnapPoints() [5]geom.Vec2 {
	p, r := c.Center.Pos, c.Radius
	return [5]geom.Vec2{
		p,
		{X: p.X + r, Y: p.Y},
		{X: p.X, Y: p.Y + r},
		{X: p.X - r, Y: p.Y},
		{X: p.X, Y: p.Y - r},
	}
}

// Text is a label anchored at a world position. Annotative text keeps a
// constant pixel size at any zoom. ScreenBounds is written by the renderer
// every frame and read back for right-click hit-testing.
type Text struct {
	ID           uuid.UUID
	Position     geom.Vec2
	Contents     string
	ScreenBounds *geom.Rect
	Editing      bool
	Annotative   bool
}

func newLine(a, b geom.Vec2, thickness float32, drawing bool) Line {
	return Line{
		ID: uuid.New(),
		Vertices: [2]geom.Vertex{
			{Pos: a, Color: geom.White},
			{Pos: b, Color: geom.White},
		},
		Thickness: thickness,
		IsDrawing: drawing,
	}
}

func newCircle(center geom.Vec2, radius, thickness float32, drawing bool) Circle {
	return Circle{
		ID:        uuid.New(),
		Center:    geom.Vertex{Pos: center, Color: geom.White},
		Radius:    radius,
		Thickness: thickness,
		IsDrawing: drawing,
	}
}

// Clone returns a copy of l under a fresh ID.
func (l *Line) Clone() Line {
	c := *l
	c.ID = uuid.New()
	return c
}

// Clone returns a copy of c under a fresh ID.
func (c *Circle) Clone() Circle {
	n := *c
	n.ID = uuid.New()
	return n
}
