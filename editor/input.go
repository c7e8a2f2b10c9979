package editor

import (
	"github.com/example/draftcad/geom"
	"github.com/example/draftcad/selection"
	"github.com/example/draftcad/snap"
)

func (e *Editor) key(ev KeyPress) bool {
	switch ev.Key {
	case KeyL:
		return e.enter(DrawLine{})
	case KeyC:
		return e.enter(DrawCircle{})
	case KeyK:
		return e.enter(Copy{Step: StepSelection})
	case KeyM:
		return e.enter(Move{Step: StepSelection})
	case KeyT:
		return e.enter(CreateText{})
	case KeyS:
		if e.ctrl {
			e.request = RequestSave
			return false
		}
		return e.enter(Selection{})
	case KeyO:
		if e.ctrl {
			e.request = RequestOpen
			return false
		}
		if m, ok := e.mode.(DrawLine); ok {
			m.Ortho = !m.Ortho
			e.setMode(m)
			if _, ok := e.state.(WaitingForSecondPoint); ok && e.hasCursor {
				e.updateLine(e.target(), true)
			}
			return true
		}
	case KeyA:
		e.abortGesture()
		e.Drawing.ClearSelection()
		e.setMode(Measure{})
		return true
	case KeyDelete:
		switch e.mode.(type) {
		case Normal:
			e.setMode(Delete{})
			return true
		case Selection:
			n := e.Drawing.DeleteSelected()
			Logger().Debug("deleted selection", "entities", n)
			e.setMode(Normal{})
			return true
		}
	case KeyEscape:
		e.escape()
		return true
	case KeyHome:
		e.ResetView()
		return true
	case KeyEnter:
		if waiting(e.state) {
			return e.commitNumeric()
		}
		switch m := e.mode.(type) {
		case Move:
			if m.Step == StepSelection {
				e.setMode(Move{Step: StepSelectPoint})
				return true
			}
		case Copy:
			if m.Step == StepSelection {
				e.setMode(Copy{Step: StepSelectPoint})
				return true
			}
		}
	case KeyBackspace:
		if waiting(e.state) {
			e.numeric.Backspace()
			return true
		}
	case KeyChar:
		if waiting(e.state) {
			return e.numeric.Push(ev.Char)
		}
	}
	return false
}

// enter switches to m. Tools are only picked from Normal.
func (e *Editor) enter(m Mode) bool {
	if _, ok := e.mode.(Normal); !ok {
		return false
	}
	e.setMode(m)
	return true
}

// snapping reports whether the current tool resolves snap points.
func (e *Editor) snapping() bool {
	switch m := e.mode.(type) {
	case DrawLine, DrawCircle, Measure, CreateText:
		return true
	case Move:
		return m.Step != StepSelection
	case Copy:
		return m.Step != StepSelection
	}
	return false
}

func (e *Editor) pointerMove(sx, sy float64) bool {
	dx, dy := e.Camera.ScreenDelta(sx, sy, e.viewport)
	if (e.dragging || e.ctrl) && e.hasPanLast {
		e.Camera.Pan(-(dx - e.panLast[0]), -(dy - e.panLast[1]))
	}
	e.panLast, e.hasPanLast = [2]float64{dx, dy}, true

	// Computed after any pan so the cursor always names the world point under
	// the pointer.
	wx, wy := e.Camera.ScreenToWorld(sx, sy, e.viewport)
	p := geom.Vec2{X: float32(wx), Y: float32(wy)}
	if !p.Finite() {
		return false
	}
	e.screen, e.hasScreen = geom.Vec2{X: float32(sx), Y: float32(sy)}, true
	e.cursor, e.hasCursor = p, true

	if e.snapping() {
		e.resolveSnap()
	} else {
		e.clearSnap()
	}

	switch e.state.(type) {
	case WaitingForSecondPoint:
		e.updateLine(e.target(), true)
	case WaitingForRadius:
		e.updateCircle(e.target(), true)
	}
	if step, ok := transformStep(e.mode); ok && step == StepTransform {
		e.translate(e.target())
	}
	return true
}

func (e *Editor) resolveSnap() {
	threshold := float32(e.cfg.SnapThresholdPx / e.Camera.Zoom)
	p, ok := snap.Resolve(e.cursor, e.Drawing, threshold)
	if !ok {
		e.clearSnap()
		return
	}
	if !e.snapped || p != e.snapPoint {
		Logger().Debug("snap", "x", p.X, "y", p.Y)
	}
	e.snapPoint, e.snapped = p, true
	e.Indicator.MoveTo(p, float32(e.cfg.IndicatorPx/e.Camera.Zoom))
}

func (e *Editor) pointerPress(ev PointerPress) bool {
	switch ev.Button {
	case ButtonMiddle:
		e.dragging = true
		return false
	case ButtonRight:
		e.pointerMove(ev.X, ev.Y)
		return e.rightClick()
	}
	e.pointerMove(ev.X, ev.Y)
	if !e.hasCursor {
		return false
	}
	switch m := e.mode.(type) {
	case DrawLine, DrawCircle, Measure, CreateText:
		return e.toolClick()
	case Move:
		if m.Step != StepSelection {
			return e.toolClick()
		}
	case Copy:
		if m.Step != StepSelection {
			return e.toolClick()
		}
	}
	return e.pick()
}

// toolClick places the next point of the active tool.
func (e *Editor) toolClick() bool {
	p := e.target()
	switch e.state.(type) {
	case WaitingForSecondPoint:
		e.finishLine(p)
		return true
	case WaitingForRadius:
		e.finishCircle(p)
		return true
	}

	switch m := e.mode.(type) {
	case DrawLine:
		e.startLine(p)
	case DrawCircle:
		e.startCircle(p)
	case Measure:
		e.measure(m, p)
	case CreateText:
		e.createText(p)
	case Move:
		if m.Step == StepSelectPoint {
			e.beginTransform(p, false)
		} else {
			e.finishTransform(p)
		}
	case Copy:
		if m.Step == StepSelectPoint {
			e.beginTransform(p, true)
		} else {
			e.finishTransform(p)
		}
	default:
		return false
	}
	return true
}

// pick hit-tests the cursor and selects, or in Delete mode removes, every
// entity under it.
func (e *Editor) pick() bool {
	threshold := float32(e.cfg.HitThresholdPx / e.Camera.Zoom)
	hits := selection.Pick(e.Drawing, e.cursor, threshold)
	if hits.Empty() {
		return false
	}
	if _, ok := e.mode.(Delete); ok {
		e.Drawing.RemoveLines(hits.Lines)
		e.Drawing.RemoveCircles(hits.Circles)
		Logger().Debug("deleted", "lines", len(hits.Lines), "circles", len(hits.Circles))
		return true
	}

	changed := false
	for _, i := range hits.Lines {
		if l := &e.Drawing.Lines[i]; !l.Selected {
			l.Selected, changed = true, true
		}
	}
	for _, i := range hits.Circles {
		if c := &e.Drawing.Circles[i]; !c.Selected {
			c.Selected, changed = true, true
		}
	}
	if changed {
		if _, ok := e.mode.(Normal); ok {
			e.setMode(Selection{})
		}
	}
	return changed
}

func (e *Editor) scroll(dy float64) bool {
	if dy == 0 {
		return false
	}
	factor := 1 + e.cfg.ZoomStep
	if dy < 0 {
		factor = 1 - e.cfg.ZoomStep
	}
	if !e.hasScreen {
		e.Camera.ZoomBy(factor)
		return true
	}
	sx, sy := float64(e.screen.X), float64(e.screen.Y)
	wx, wy := e.Camera.ScreenToWorld(sx, sy, e.viewport)
	e.Camera.ZoomAt(factor, wx, wy)
	Logger().Debug("zoom", "zoom", e.Camera.Zoom)

	// The world point under the cursor is unchanged, but the pan reference
	// is measured from the viewport center and scales with zoom.
	dx, dyw := e.Camera.ScreenDelta(sx, sy, e.viewport)
	e.panLast, e.hasPanLast = [2]float64{dx, dyw}, true
	if e.snapping() {
		e.resolveSnap()
	}
	return true
}
