package editor

import (
	"github.com/example/draftcad/drawing"
	"github.com/example/draftcad/geom"
)

// transform holds the entities being dragged by Move or Copy together with
// their positions when the drag started.
type transform struct {
	lines   []movingLine
	circles []movingCircle
}

type movingLine struct {
	h    drawing.Handle
	base [2]geom.Vec2
}

type movingCircle struct {
	h    drawing.Handle
	base geom.Vec2
}

// beginTransform clones the selection at anchor. For a move the originals
// are marked for deletion; for a copy they stay.
func (e *Editor) beginTransform(anchor geom.Vec2, keep bool) {
	d := e.Drawing
	var lines []drawing.Line
	var circles []drawing.Circle
	for i := range d.Lines {
		l := &d.Lines[i]
		if !l.Selected {
			continue
		}
		c := l.Clone()
		c.IsDrawing = true
		lines = append(lines, c)
		l.Selected = false
		l.PendingDelete = !keep
	}
	for i := range d.Circles {
		c := &d.Circles[i]
		if !c.Selected {
			continue
		}
		cc := c.Clone()
		cc.IsDrawing = true
		circles = append(circles, cc)
		c.Selected = false
		c.PendingDelete = !keep
	}

	e.moving = transform{}
	for _, l := range lines {
		d.Lines = append(d.Lines, l)
		e.moving.lines = append(e.moving.lines, movingLine{
			h:    d.LineHandle(len(d.Lines) - 1),
			base: [2]geom.Vec2{l.Start(), l.End()},
		})
	}
	for _, c := range circles {
		d.Circles = append(d.Circles, c)
		e.moving.circles = append(e.moving.circles, movingCircle{
			h:    d.CircleHandle(len(d.Circles) - 1),
			base: c.Center.Pos,
		})
	}

	if keep {
		e.setMode(Copy{Step: StepTransform, Anchor: anchor})
	} else {
		e.setMode(Move{Step: StepTransform, Anchor: anchor})
	}
}

func (e *Editor) anchor() geom.Vec2 {
	switch m := e.mode.(type) {
	case Move:
		return m.Anchor
	case Copy:
		return m.Anchor
	}
	return geom.Vec2{}
}

// translate places every dragged entity at its start position plus the
// offset from the anchor to p.
func (e *Editor) translate(p geom.Vec2) {
	off := p.Sub(e.anchor())
	for _, m := range e.moving.lines {
		l := e.Drawing.Line(m.h)
		if l == nil {
			continue
		}
		l.Vertices[0].Pos, l.Vertices[1].Pos = m.base[0], m.base[1]
		l.Translate(off)
	}
	for _, m := range e.moving.circles {
		c := e.Drawing.Circle(m.h)
		if c == nil {
			continue
		}
		c.Center.Pos = m.base
		c.Translate(off)
	}
}

// finishTransform drops the dragged entities at p and removes the originals
// of a move.
func (e *Editor) finishTransform(p geom.Vec2) {
	e.translate(p)
	for _, m := range e.moving.lines {
		if l := e.Drawing.Line(m.h); l != nil {
			l.Selected, l.IsDrawing = false, false
		}
	}
	for _, m := range e.moving.circles {
		if c := e.Drawing.Circle(m.h); c != nil {
			c.Selected, c.IsDrawing = false, false
		}
	}
	n := e.Drawing.PurgePendingDelete()
	Logger().Debug("transform done", "lines", len(e.moving.lines), "circles", len(e.moving.circles), "removed", n)
	e.moving = transform{}
	e.clearSnap()
	e.setMode(Normal{})
}

// abortTransform removes the dragged clones and restores the originals.
func (e *Editor) abortTransform() {
	for _, m := range e.moving.lines {
		e.Drawing.RemoveLine(m.h)
	}
	for _, m := range e.moving.circles {
		e.Drawing.RemoveCircle(m.h)
	}
	for i := range e.Drawing.Lines {
		e.Drawing.Lines[i].PendingDelete = false
	}
	for i := range e.Drawing.Circles {
		e.Drawing.Circles[i].PendingDelete = false
	}
	e.moving = transform{}
}
