package editor

import (
	"strconv"

	"github.com/example/draftcad/drawing"
	"github.com/example/draftcad/geom"
)

func (e *Editor) startLine(p geom.Vec2) {
	e.activeLine = e.Drawing.AddLine(p, p, e.cfg.LineThickness, true)
	e.state = WaitingForSecondPoint{Anchor: p}
	e.numeric.Clear()
}

// activeLineOrReset resolves the line being drawn. A missing line means
// something else removed it; the gesture is dropped.
func (e *Editor) activeLineOrReset() *drawing.Line {
	l := e.Drawing.Line(e.activeLine)
	if l == nil {
		Logger().Warn("active line vanished, resetting gesture")
		e.activeLine = drawing.Handle{}
		e.state = Idle{}
		e.numeric.Clear()
	}
	return l
}

func (e *Editor) activeCircleOrReset() *drawing.Circle {
	c := e.Drawing.Circle(e.activeCircle)
	if c == nil {
		Logger().Warn("active circle vanished, resetting gesture")
		e.activeCircle = drawing.Handle{}
		e.state = Idle{}
		e.numeric.Clear()
	}
	return c
}

// updateLine moves the free endpoint to p. With live unset the line is
// finalized.
func (e *Editor) updateLine(p geom.Vec2, live bool) {
	l := e.activeLineOrReset()
	if l == nil {
		return
	}
	if m, ok := e.mode.(DrawLine); ok && m.Ortho {
		p = geom.Ortho(l.Start(), p)
	}
	l.Vertices[1].Pos = p
	if !live {
		e.finalizeLine(l)
	}
}

func (e *Editor) finishLine(p geom.Vec2) {
	e.updateLine(p, false)
}

func (e *Editor) finalizeLine(l *drawing.Line) {
	l.IsDrawing = false
	e.activeLine = drawing.Handle{}
	e.state = Idle{}
	e.numeric.Clear()
}

func (e *Editor) startCircle(p geom.Vec2) {
	e.activeCircle = e.Drawing.AddCircle(p, 0, e.cfg.LineThickness, true)
	e.state = WaitingForRadius{Anchor: p}
	e.numeric.Clear()
}

func (e *Editor) updateCircle(p geom.Vec2, live bool) {
	c := e.activeCircleOrReset()
	if c == nil {
		return
	}
	c.Radius = float32(geom.Distance(c.Center.Pos, p))
	if !live {
		e.finalizeCircle(c)
	}
}

func (e *Editor) finishCircle(p geom.Vec2) {
	e.updateCircle(p, false)
}

func (e *Editor) finalizeCircle(c *drawing.Circle) {
	c.IsDrawing = false
	e.activeCircle = drawing.Handle{}
	e.state = Idle{}
	e.numeric.Clear()
}

// cancelShape removes the shape being drawn and returns to Normal.
func (e *Editor) cancelShape() {
	switch e.state.(type) {
	case WaitingForSecondPoint:
		if !e.Drawing.RemoveLine(e.activeLine) {
			Logger().Warn("cancel: active line already gone")
		}
	case WaitingForRadius:
		if !e.Drawing.RemoveCircle(e.activeCircle) {
			Logger().Warn("cancel: active circle already gone")
		}
	}
	e.activeLine = drawing.Handle{}
	e.activeCircle = drawing.Handle{}
	e.state = Idle{}
	e.numeric.Clear()
	e.setMode(Normal{})
}

// commitNumeric finalizes the active shape with the typed length. Lines keep
// their current direction; circles take the value as radius.
func (e *Editor) commitNumeric() bool {
	v, err := e.numeric.Value()
	if err != nil {
		e.numeric.Clear()
		e.Notify(err.Error())
		return true
	}
	switch e.state.(type) {
	case WaitingForSecondPoint:
		l := e.activeLineOrReset()
		if l == nil {
			return true
		}
		end, ok := geom.Extend(l.Start(), l.End(), v)
		if !ok {
			e.numeric.Clear()
			e.Notify("move the cursor to give the line a direction")
			return true
		}
		if !end.Finite() {
			e.numeric.Clear()
			e.Notify(ErrInvalidLength.Error())
			return true
		}
		l.Vertices[1].Pos = end
		e.finalizeLine(l)
	case WaitingForRadius:
		c := e.activeCircleOrReset()
		if c == nil {
			return true
		}
		c.Radius = float32(v)
		e.finalizeCircle(c)
	}
	return true
}

// measure records the first point, or reports the distance to it and starts
// over.
func (e *Editor) measure(m Measure, p geom.Vec2) {
	if !m.HasFirst {
		e.setMode(Measure{First: p, HasFirst: true})
		return
	}
	d := geom.Round3(geom.Distance(m.First, p))
	e.Notify(strconv.FormatFloat(d, 'f', -1, 64))
	e.setMode(Measure{})
}
