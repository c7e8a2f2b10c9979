// Package editor implements the interactive core of the CAD editor: it turns
// pointer and keyboard events into edits of a drawing.
//
// Editor is not safe for concurrent use. The application shell owns it and
// feeds it events from its update loop.
package editor

import (
	"github.com/example/draftcad/camera"
	"github.com/example/draftcad/drawing"
	"github.com/example/draftcad/geom"
	"github.com/example/draftcad/snap"
)

// Editor owns the drawing, the camera and the tool state machine.
type Editor struct {
	cfg Config

	Camera    *camera.Camera
	Drawing   *drawing.Drawing
	Indicator snap.Indicator

	mode  Mode
	state DrawingState

	activeLine   drawing.Handle
	activeCircle drawing.Handle

	viewport camera.Viewport

	screen    geom.Vec2
	hasScreen bool
	cursor    geom.Vec2
	hasCursor bool

	snapPoint geom.Vec2
	snapped   bool

	panLast    [2]float64
	hasPanLast bool
	dragging   bool
	ctrl       bool

	numeric NumericInput
	notes   Notifications

	moving transform
	text   textEdit

	request Request

	lineInst   []drawing.LineInstance
	circleInst []drawing.CircleInstance
}

// New returns an editor with an empty drawing.
func New(cfg Config) *Editor {
	cfg = cfg.withDefaults()
	cam := camera.New()
	cam.MinZoom = cfg.MinZoom
	cam.MaxZoom = cfg.MaxZoom
	return &Editor{
		cfg:     cfg,
		Camera:  cam,
		Drawing: drawing.New(),
		mode:    Normal{},
		state:   Idle{},
		notes:   Notifications{ttl: cfg.NotificationTTL},
	}
}

func (e *Editor) Mode() Mode                 { return e.mode }
func (e *Editor) DrawingState() DrawingState { return e.state }
func (e *Editor) Viewport() camera.Viewport  { return e.viewport }

// Cursor returns the last cursor position in world space.
func (e *Editor) Cursor() (geom.Vec2, bool) { return e.cursor, e.hasCursor }

// SnapPoint returns the snap target under the cursor, if any.
func (e *Editor) SnapPoint() (geom.Vec2, bool) { return e.snapPoint, e.snapped }

// NumericInput returns the typed length buffer.
func (e *Editor) NumericInput() string { return e.numeric.String() }

// Notifications returns the messages that have not yet expired.
func (e *Editor) Notifications() []Notification {
	return e.notes.Active(e.cfg.Clock())
}

// TakeRequest returns the pending shell request and clears it.
func (e *Editor) TakeRequest() Request {
	r := e.request
	e.request = RequestNone
	return r
}

// LineInstances returns the GPU-ready line list. The slice is reused between
// events; callers must not retain it.
func (e *Editor) LineInstances() []drawing.LineInstance { return e.lineInst }

// CircleInstances returns the GPU-ready circle list.
func (e *Editor) CircleInstances() []drawing.CircleInstance { return e.circleInst }

func (e *Editor) ColorScheme() drawing.ColorScheme { return e.cfg.ColorScheme }

func (e *Editor) SetColorScheme(s drawing.ColorScheme) {
	e.cfg.ColorScheme = s
	e.rebuild()
}

func (e *Editor) LineThickness() float32 { return e.cfg.LineThickness }

// SetLineThickness sets the thickness used for new entities.
func (e *Editor) SetLineThickness(t float32) {
	if t > 0 {
		e.cfg.LineThickness = t
	}
}

// Status summarises the editor for a status bar.
type Status struct {
	Mode    string
	State   string
	Cursor  geom.Vec2
	Zoom    float64
	Numeric string
	// Length is the length of the line being drawn, when HasLength is set.
	Length    float64
	HasLength bool
}

func (e *Editor) Status() Status {
	s := Status{
		Mode:    e.mode.String(),
		State:   e.state.String(),
		Cursor:  e.cursor,
		Zoom:    e.Camera.Zoom,
		Numeric: e.numeric.String(),
	}
	if l := e.Drawing.Line(e.activeLine); l != nil && l.IsDrawing {
		s.Length, s.HasLength = l.Length(), true
	}
	return s
}

// HandleEvent applies ev and reports whether the scene needs a redraw.
func (e *Editor) HandleEvent(ev Event) bool {
	var redraw bool
	switch ev := ev.(type) {
	case ModifiersChanged:
		e.ctrl = ev.Ctrl
	case Resize:
		e.viewport = camera.Viewport{Width: ev.Width, Height: ev.Height}
		redraw = true
	case PointerMove:
		redraw = e.pointerMove(ev.X, ev.Y)
	case PointerPress:
		redraw = e.pointerPress(ev)
	case PointerRelease:
		if ev.Button == ButtonMiddle {
			e.dragging = false
		}
	case Scroll:
		redraw = e.scroll(ev.DeltaY)
	case KeyPress:
		redraw = e.key(ev)
	}
	if redraw {
		e.rebuild()
	}
	return redraw
}

// Load appends d to the current drawing, abandoning any gesture in progress.
func (e *Editor) Load(d *drawing.Drawing) {
	e.abortGesture()
	e.setMode(Normal{})
	e.Drawing.Append(d)
	e.rebuild()
	Logger().Info("drawing loaded", "entities", d.Len(), "total", e.Drawing.Len())
}

// Clear empties the drawing.
func (e *Editor) Clear() {
	e.abortGesture()
	e.setMode(Normal{})
	e.Drawing.Clear()
	e.rebuild()
	Logger().Info("drawing cleared")
}

func (e *Editor) setMode(m Mode) {
	if m == e.mode {
		return
	}
	Logger().Debug("mode change", "from", e.mode.String(), "to", m.String())
	e.mode = m
}

// ResetView recenters the camera on the origin at zoom 1 and re-resolves the
// cursor under the pointer.
func (e *Editor) ResetView() {
	e.Camera.Reset()
	if e.hasScreen {
		e.pointerMove(float64(e.screen.X), float64(e.screen.Y))
	}
	Logger().Debug("view reset")
}

// Notify queues a transient message for the UI.
func (e *Editor) Notify(text string) {
	e.notes.Push(text, e.cfg.Clock())
}

// target is the point a click acts on: the snap point if there is one.
func (e *Editor) target() geom.Vec2 {
	if e.snapped {
		return e.snapPoint
	}
	return e.cursor
}

func (e *Editor) clearSnap() {
	e.snapped = false
	e.Indicator.Hide()
}

func (e *Editor) rebuild() {
	e.lineInst = drawing.FlattenLines(e.lineInst[:0], e.Drawing.Lines, e.cfg.ColorScheme)
	e.circleInst = drawing.FlattenCircles(e.circleInst[:0], e.Drawing.Circles, e.cfg.ColorScheme)
}

// abortGesture drops any in-progress shape or transform without changing the
// tool.
func (e *Editor) abortGesture() {
	if waiting(e.state) {
		e.cancelShape()
	}
	if step, ok := transformStep(e.mode); ok && step == StepTransform {
		e.abortTransform()
	}
	e.numeric.Clear()
	e.clearSnap()
}

// escape returns to Normal from anywhere. Repeating it is a no-op.
func (e *Editor) escape() {
	e.abortGesture()
	e.Drawing.ClearSelection()
	e.setMode(Normal{})
}
