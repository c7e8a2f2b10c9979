package editor

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/example/draftcad/drawing"
	"github.com/example/draftcad/geom"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Clock = func() time.Time { return epoch }
	e := New(cfg)
	e.HandleEvent(Resize{Width: 800, Height: 600})
	return e
}

func screenOf(e *Editor, x, y float32) (float64, float64) {
	return e.Camera.WorldToScreen(float64(x), float64(y), e.Viewport())
}

func moveTo(e *Editor, x, y float32) {
	sx, sy := screenOf(e, x, y)
	e.HandleEvent(PointerMove{X: sx, Y: sy})
}

func click(e *Editor, x, y float32) {
	sx, sy := screenOf(e, x, y)
	e.HandleEvent(PointerMove{X: sx, Y: sy})
	e.HandleEvent(PointerPress{Button: ButtonLeft, X: sx, Y: sy})
	e.HandleEvent(PointerRelease{Button: ButtonLeft, X: sx, Y: sy})
}

func keys(e *Editor, ks ...Key) {
	for _, k := range ks {
		e.HandleEvent(KeyPress{Key: k})
	}
}

func typeText(e *Editor, s string) {
	for _, r := range s {
		e.HandleEvent(KeyPress{Key: KeyChar, Char: r})
	}
}

func v(x, y float32) geom.Vec2 { return geom.Vec2{X: x, Y: y} }

func hasNotification(e *Editor, text string) bool {
	for _, n := range e.Notifications() {
		if n.Text == text {
			return true
		}
	}
	return false
}

func TestDrawLine(t *testing.T) {
	e := newTestEditor(t)
	keys(e, KeyL)
	if e.Mode() != (DrawLine{}) {
		t.Fatalf("mode = %v, want line", e.Mode())
	}

	click(e, 0, 0)
	if got, want := e.DrawingState(), (WaitingForSecondPoint{Anchor: v(0, 0)}); got != want {
		t.Fatalf("state = %v, want %v", got, want)
	}
	if len(e.Drawing.Lines) != 1 || !e.Drawing.Lines[0].IsDrawing {
		t.Fatalf("lines = %+v, want one in-progress line", e.Drawing.Lines)
	}

	moveTo(e, 10, 0)
	if got := e.Drawing.Lines[0].End(); got != v(10, 0) {
		t.Errorf("live end = %v, want (10, 0)", got)
	}
	if st := e.Status(); !st.HasLength || st.Length != 10 {
		t.Errorf("status length = %v/%v, want 10", st.Length, st.HasLength)
	}

	click(e, 10, 0)
	l := e.Drawing.Lines[0]
	if l.IsDrawing || l.Start() != v(0, 0) || l.End() != v(10, 0) {
		t.Errorf("line = %+v, want finalized (0,0)-(10,0)", l)
	}
	if e.DrawingState() != (Idle{}) {
		t.Errorf("state = %v, want idle", e.DrawingState())
	}
	if e.Mode() != (DrawLine{}) {
		t.Errorf("mode = %v, want line tool to stay active", e.Mode())
	}
	if got := len(e.LineInstances()); got != 1 {
		t.Errorf("line instances = %d, want 1", got)
	}
}

func TestDrawLineOrtho(t *testing.T) {
	e := newTestEditor(t)
	keys(e, KeyL, KeyO)
	if e.Mode() != (DrawLine{Ortho: true}) {
		t.Fatalf("mode = %v, want ortho line", e.Mode())
	}
	click(e, 0, 0)
	moveTo(e, 3, 10)
	if got := e.Drawing.Lines[0].End(); got != v(0, 10) {
		t.Errorf("ortho end = %v, want (0, 10)", got)
	}
	moveTo(e, 10, 3)
	if got := e.Drawing.Lines[0].End(); got != v(10, 0) {
		t.Errorf("ortho end = %v, want (10, 0)", got)
	}
	keys(e, KeyO)
	moveTo(e, 10, 3)
	if got := e.Drawing.Lines[0].End(); got != v(10, 3) {
		t.Errorf("free end = %v, want (10, 3)", got)
	}
}

func TestOrthoToggleReprojects(t *testing.T) {
	e := newTestEditor(t)
	keys(e, KeyL)
	click(e, 0, 0)
	moveTo(e, 3, 10)
	keys(e, KeyO)
	if got := e.Drawing.Lines[0].End(); got != v(0, 10) {
		t.Errorf("end after ortho on = %v, want (0, 10)", got)
	}
	keys(e, KeyO)
	if got := e.Drawing.Lines[0].End(); got != v(3, 10) {
		t.Errorf("end after ortho off = %v, want (3, 10)", got)
	}
}

func TestNumericLength(t *testing.T) {
	e := newTestEditor(t)
	keys(e, KeyL)
	click(e, 0, 0)
	moveTo(e, 3, 4)
	typeText(e, "10")
	if got := e.NumericInput(); got != "10" {
		t.Fatalf("buffer = %q, want 10", got)
	}
	keys(e, KeyEnter)

	l := e.Drawing.Lines[0]
	if l.End() != v(6, 8) || l.IsDrawing {
		t.Errorf("line = %+v, want finalized end (6, 8)", l)
	}
	if e.NumericInput() != "" || e.DrawingState() != (Idle{}) {
		t.Errorf("buffer %q state %v, want cleared and idle", e.NumericInput(), e.DrawingState())
	}
}

func TestNumericRejected(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"zero", "0"},
		{"dot", "."},
		{"two dots", "1.2.3"},
		{"beyond float32", strings.Repeat("9", 40)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor(t)
			keys(e, KeyL)
			click(e, 0, 0)
			moveTo(e, 3, 4)
			typeText(e, tt.input)
			keys(e, KeyEnter)

			l := e.Drawing.Lines[0]
			if !l.IsDrawing || l.End() != v(3, 4) {
				t.Errorf("line = %+v, want unchanged in-progress line", l)
			}
			if e.NumericInput() != "" {
				t.Errorf("buffer = %q, want cleared", e.NumericInput())
			}
			if !hasNotification(e, ErrInvalidLength.Error()) {
				t.Errorf("notifications = %v, want invalid length", e.Notifications())
			}
		})
	}
}

func TestNumericWithoutDirection(t *testing.T) {
	e := newTestEditor(t)
	keys(e, KeyL)
	click(e, 0, 0)
	typeText(e, "5")
	keys(e, KeyEnter)
	if !e.Drawing.Lines[0].IsDrawing {
		t.Error("zero-length line was finalized")
	}
	if len(e.Notifications()) != 1 {
		t.Errorf("notifications = %v, want one", e.Notifications())
	}
}

func TestNumericIgnoredWhenIdle(t *testing.T) {
	e := newTestEditor(t)
	keys(e, KeyL)
	typeText(e, "12")
	if e.NumericInput() != "" {
		t.Errorf("buffer = %q, want empty outside a gesture", e.NumericInput())
	}
}

func TestDrawCircle(t *testing.T) {
	e := newTestEditor(t)
	keys(e, KeyC)
	click(e, 0, 0)
	if got, want := e.DrawingState(), (WaitingForRadius{Anchor: v(0, 0)}); got != want {
		t.Fatalf("state = %v, want %v", got, want)
	}
	moveTo(e, 3, 4)
	if got := e.Drawing.Circles[0].Radius; got != 5 {
		t.Errorf("live radius = %v, want 5", got)
	}
	typeText(e, "2.5")
	keys(e, KeyEnter)
	c := e.Drawing.Circles[0]
	if c.Radius != 2.5 || c.IsDrawing {
		t.Errorf("circle = %+v, want finalized radius 2.5", c)
	}
}

func TestCircleRadiusOverflow(t *testing.T) {
	e := newTestEditor(t)
	keys(e, KeyC)
	click(e, 0, 0)
	moveTo(e, 3, 4)
	typeText(e, strings.Repeat("9", 40))
	keys(e, KeyEnter)

	c := e.Drawing.Circles[0]
	if c.Radius != 5 || !c.IsDrawing {
		t.Errorf("circle = %+v, want unchanged in-progress radius 5", c)
	}
	if _, ok := e.DrawingState().(WaitingForRadius); !ok {
		t.Errorf("state = %v, want still waiting for radius", e.DrawingState())
	}
	if !hasNotification(e, ErrInvalidLength.Error()) {
		t.Errorf("notifications = %v, want invalid length", e.Notifications())
	}
}

func TestEscapeCancelsShape(t *testing.T) {
	e := newTestEditor(t)
	keys(e, KeyL)
	click(e, 0, 0)
	moveTo(e, 5, 5)
	keys(e, KeyEscape)
	if len(e.Drawing.Lines) != 0 {
		t.Errorf("lines = %d, want in-progress line removed", len(e.Drawing.Lines))
	}
	if e.Mode() != (Normal{}) || e.DrawingState() != (Idle{}) {
		t.Errorf("mode %v state %v, want normal idle", e.Mode(), e.DrawingState())
	}
	keys(e, KeyEscape)
	if e.Mode() != (Normal{}) || e.Drawing.Len() != 0 {
		t.Error("second escape changed state")
	}
}

func TestEscapeKeepsFinishedEntities(t *testing.T) {
	e := newTestEditor(t)
	e.Drawing.AddLine(v(0, 0), v(1, 0), 2, false)
	keys(e, KeyL, KeyEscape)
	if e.Mode() != (Normal{}) || len(e.Drawing.Lines) != 1 {
		t.Errorf("mode %v lines %d, want normal with 1 line", e.Mode(), len(e.Drawing.Lines))
	}
}

func TestToolKeysOnlyFromNormal(t *testing.T) {
	e := newTestEditor(t)
	keys(e, KeyL, KeyC, KeyM, KeyT)
	if e.Mode() != (DrawLine{}) {
		t.Errorf("mode = %v, want line", e.Mode())
	}
}

func TestMoveSelection(t *testing.T) {
	e := newTestEditor(t)
	e.Drawing.AddLine(v(0, 0), v(10, 0), 2, false)
	e.Drawing.AddCircle(v(20, 20), 5, 2, false)

	keys(e, KeyM)
	click(e, 5, 0)
	click(e, 25, 20)
	if e.Mode() != (Move{Step: StepSelection}) {
		t.Fatalf("mode = %v, want move selection", e.Mode())
	}
	if !e.Drawing.Lines[0].Selected || !e.Drawing.Circles[0].Selected {
		t.Fatal("entities not selected")
	}
	keys(e, KeyEnter)
	if e.Mode() != (Move{Step: StepSelectPoint}) {
		t.Fatalf("mode = %v, want select point", e.Mode())
	}

	click(e, 5, 5)
	if e.Mode() != (Move{Step: StepTransform, Anchor: v(5, 5)}) {
		t.Fatalf("mode = %v, want transform from (5, 5)", e.Mode())
	}
	moveTo(e, 5, -5)
	_, before := screenOf(e, 0, 0)
	click(e, 5, -5)

	if len(e.Drawing.Lines) != 1 || len(e.Drawing.Circles) != 1 {
		t.Fatalf("entities = %d lines %d circles, want 1 each", len(e.Drawing.Lines), len(e.Drawing.Circles))
	}
	l, c := e.Drawing.Lines[0], e.Drawing.Circles[0]
	if l.Start() != v(0, -10) || l.End() != v(10, -10) {
		t.Errorf("line = %v-%v, want (0,-10)-(10,-10)", l.Start(), l.End())
	}
	if c.Center.Pos != v(20, 10) {
		t.Errorf("circle center = %v, want (20, 10)", c.Center.Pos)
	}
	if _, after := screenOf(e, l.Start().X, l.Start().Y); after-before != 10 {
		t.Errorf("screen dy = %v, want 10", after-before)
	}
	if l.Selected || l.IsDrawing || l.PendingDelete || c.Selected || c.IsDrawing {
		t.Errorf("flags not reset: %+v %+v", l, c)
	}
	if e.Mode() != (Normal{}) {
		t.Errorf("mode = %v, want normal", e.Mode())
	}
}

func TestCopySelection(t *testing.T) {
	e := newTestEditor(t)
	e.Drawing.AddLine(v(0, 0), v(10, 0), 2, false)
	orig := e.Drawing.Lines[0].ID

	keys(e, KeyK)
	click(e, 5, 0)
	keys(e, KeyEnter)
	click(e, 0, 0)
	moveTo(e, 0, 20)
	click(e, 0, 20)

	if len(e.Drawing.Lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(e.Drawing.Lines))
	}
	a, b := e.Drawing.Lines[0], e.Drawing.Lines[1]
	if a.ID != orig || a.Start() != v(0, 0) {
		t.Errorf("original = %+v, want untouched", a)
	}
	if b.ID == orig || b.Start() != v(0, 20) || b.End() != v(10, 20) {
		t.Errorf("copy = %+v, want fresh entity at (0,20)-(10,20)", b)
	}
	if a.Selected || b.Selected || b.IsDrawing {
		t.Error("flags not reset after copy")
	}
}

func TestEscapeAbortsMove(t *testing.T) {
	e := newTestEditor(t)
	e.Drawing.AddLine(v(0, 0), v(10, 0), 2, false)
	keys(e, KeyM)
	click(e, 5, 0)
	keys(e, KeyEnter)
	click(e, 30, 30)
	moveTo(e, 40, 40)
	keys(e, KeyEscape)

	if len(e.Drawing.Lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(e.Drawing.Lines))
	}
	l := e.Drawing.Lines[0]
	if l.Start() != v(0, 0) || l.PendingDelete || l.Selected {
		t.Errorf("line = %+v, want original restored", l)
	}
	if e.Mode() != (Normal{}) {
		t.Errorf("mode = %v, want normal", e.Mode())
	}
}

func TestMeasure(t *testing.T) {
	e := newTestEditor(t)
	keys(e, KeyA)
	if e.Mode() != (Measure{}) {
		t.Fatalf("mode = %v, want measure", e.Mode())
	}
	click(e, 0, 0)
	if e.Mode() != (Measure{First: v(0, 0), HasFirst: true}) {
		t.Fatalf("mode = %v, want first point recorded", e.Mode())
	}
	click(e, 3, 4)
	if !hasNotification(e, "5") {
		t.Errorf("notifications = %v, want 5", e.Notifications())
	}
	if e.Mode() != (Measure{}) {
		t.Errorf("mode = %v, want measure reset", e.Mode())
	}
}

func TestMeasureCancelsDrawing(t *testing.T) {
	e := newTestEditor(t)
	keys(e, KeyL)
	click(e, 0, 0)
	moveTo(e, 7, 7)
	keys(e, KeyA)
	if len(e.Drawing.Lines) != 0 || e.DrawingState() != (Idle{}) {
		t.Errorf("lines %d state %v, want gesture dropped", len(e.Drawing.Lines), e.DrawingState())
	}
	if e.Mode() != (Measure{}) {
		t.Errorf("mode = %v, want measure", e.Mode())
	}
}

func TestSelectAndDelete(t *testing.T) {
	e := newTestEditor(t)
	e.Drawing.AddLine(v(0, 0), v(10, 0), 2, false)
	e.Drawing.AddLine(v(0, 50), v(10, 50), 2, false)

	click(e, 5, 1)
	if e.Mode() != (Selection{}) {
		t.Fatalf("mode = %v, want selection", e.Mode())
	}
	if !e.Drawing.Lines[0].Selected || e.Drawing.Lines[1].Selected {
		t.Fatal("wrong line selected")
	}
	keys(e, KeyDelete)
	if len(e.Drawing.Lines) != 1 || e.Drawing.Lines[0].Start() != v(0, 50) {
		t.Errorf("lines = %+v, want only the unselected line", e.Drawing.Lines)
	}
	if e.Mode() != (Normal{}) {
		t.Errorf("mode = %v, want normal", e.Mode())
	}
}

func TestSelectionEscape(t *testing.T) {
	e := newTestEditor(t)
	e.Drawing.AddCircle(v(0, 0), 10, 2, false)
	click(e, 10, 0)
	keys(e, KeyEscape)
	if e.Drawing.Circles[0].Selected || e.Mode() != (Normal{}) {
		t.Error("escape did not clear the selection")
	}
}

func TestClickOnEmptySpace(t *testing.T) {
	e := newTestEditor(t)
	e.Drawing.AddLine(v(0, 0), v(10, 0), 2, false)
	click(e, 100, 100)
	if e.Mode() != (Normal{}) || e.Drawing.HasSelection() {
		t.Error("click on empty space changed the selection")
	}
}

func TestDeleteMode(t *testing.T) {
	e := newTestEditor(t)
	e.Drawing.AddLine(v(0, 0), v(10, 0), 2, false)
	e.Drawing.AddCircle(v(50, 50), 5, 2, false)
	keys(e, KeyDelete)
	if e.Mode() != (Delete{}) {
		t.Fatalf("mode = %v, want delete", e.Mode())
	}
	click(e, 55, 50)
	if len(e.Drawing.Circles) != 0 || len(e.Drawing.Lines) != 1 {
		t.Errorf("entities = %d lines %d circles, want circle removed", len(e.Drawing.Lines), len(e.Drawing.Circles))
	}
	if e.Mode() != (Delete{}) {
		t.Errorf("mode = %v, want delete to stay active", e.Mode())
	}
}

func TestSnapWhileDrawing(t *testing.T) {
	e := newTestEditor(t)
	e.Drawing.AddLine(v(0, 0), v(10, 0), 2, false)
	keys(e, KeyL)

	moveTo(e, 2, 3)
	p, ok := e.SnapPoint()
	if !ok || p != v(0, 0) {
		t.Fatalf("snap = %v/%v, want (0, 0)", p, ok)
	}
	if !e.Indicator.Visible() {
		t.Error("indicator hidden while snapped")
	}
	click(e, 2, 3)
	if got := e.Drawing.Lines[1].Start(); got != v(0, 0) {
		t.Errorf("start = %v, want snapped (0, 0)", got)
	}

	moveTo(e, 50, 50)
	if _, ok := e.SnapPoint(); ok || e.Indicator.Visible() {
		t.Error("snap survived moving away")
	}
}

func TestNoSnapInNormal(t *testing.T) {
	e := newTestEditor(t)
	e.Drawing.AddLine(v(0, 0), v(10, 0), 2, false)
	moveTo(e, 1, 1)
	if _, ok := e.SnapPoint(); ok {
		t.Error("snapped in normal mode")
	}
}

func TestActiveLineRemovedExternally(t *testing.T) {
	e := newTestEditor(t)
	keys(e, KeyL)
	click(e, 0, 0)
	e.Drawing.Lines = nil
	moveTo(e, 5, 5)
	if e.DrawingState() != (Idle{}) {
		t.Errorf("state = %v, want idle after losing the active line", e.DrawingState())
	}
	click(e, 1, 1)
	if len(e.Drawing.Lines) != 1 {
		t.Errorf("lines = %d, want a new line started", len(e.Drawing.Lines))
	}
}

func TestScrollZoomsAtCursor(t *testing.T) {
	e := newTestEditor(t)
	e.HandleEvent(PointerMove{X: 500, Y: 200})
	wx, wy := e.Camera.ScreenToWorld(500, 200, e.Viewport())

	e.HandleEvent(Scroll{DeltaY: 1})
	if math.Abs(e.Camera.Zoom-1.1) > 1e-9 {
		t.Errorf("zoom = %v, want 1.1", e.Camera.Zoom)
	}
	gx, gy := e.Camera.ScreenToWorld(500, 200, e.Viewport())
	if math.Abs(gx-wx) > 1e-9 || math.Abs(gy-wy) > 1e-9 {
		t.Errorf("cursor world point moved from (%v,%v) to (%v,%v)", wx, wy, gx, gy)
	}

	e.HandleEvent(Scroll{DeltaY: -1})
	if math.Abs(e.Camera.Zoom-1.1*0.9) > 1e-9 {
		t.Errorf("zoom = %v, want 0.99", e.Camera.Zoom)
	}
	if e.HandleEvent(Scroll{}) {
		t.Error("zero scroll requested a redraw")
	}
}

func TestMiddleDragPans(t *testing.T) {
	e := newTestEditor(t)
	e.HandleEvent(PointerMove{X: 400, Y: 300})
	e.HandleEvent(PointerPress{Button: ButtonMiddle, X: 400, Y: 300})
	e.HandleEvent(PointerMove{X: 410, Y: 290})
	if e.Camera.OffsetX != -10 || e.Camera.OffsetY != -10 {
		t.Errorf("offset = (%v, %v), want (-10, -10)", e.Camera.OffsetX, e.Camera.OffsetY)
	}
	e.HandleEvent(PointerRelease{Button: ButtonMiddle, X: 410, Y: 290})
	e.HandleEvent(PointerMove{X: 450, Y: 290})
	if e.Camera.OffsetX != -10 {
		t.Errorf("offset x = %v, want pan to stop on release", e.Camera.OffsetX)
	}
}

func TestCtrlPans(t *testing.T) {
	e := newTestEditor(t)
	e.HandleEvent(PointerMove{X: 400, Y: 300})
	e.HandleEvent(ModifiersChanged{Ctrl: true})
	e.HandleEvent(PointerMove{X: 380, Y: 300})
	if e.Camera.OffsetX != 20 {
		t.Errorf("offset x = %v, want 20", e.Camera.OffsetX)
	}
}

func TestScrollAfterPanKeepsPointerWorld(t *testing.T) {
	e := newTestEditor(t)
	e.HandleEvent(PointerMove{X: 400, Y: 300})
	e.HandleEvent(PointerPress{Button: ButtonMiddle, X: 400, Y: 300})
	e.HandleEvent(PointerMove{X: 600, Y: 300})
	e.HandleEvent(PointerRelease{Button: ButtonMiddle, X: 600, Y: 300})

	wx, wy := e.Camera.ScreenToWorld(600, 300, e.Viewport())
	if got, _ := e.Cursor(); got != v(float32(wx), float32(wy)) {
		t.Errorf("cursor after pan = %v, want (%v, %v)", got, wx, wy)
	}
	e.HandleEvent(Scroll{DeltaY: 1})
	gx, gy := e.Camera.ScreenToWorld(600, 300, e.Viewport())
	if math.Abs(gx-wx) > 1e-9 || math.Abs(gy-wy) > 1e-9 {
		t.Errorf("world under pointer moved from (%v,%v) to (%v,%v)", wx, wy, gx, gy)
	}
}

func TestCtrlHeldClick(t *testing.T) {
	t.Run("first event", func(t *testing.T) {
		e := newTestEditor(t)
		keys(e, KeyL)
		e.HandleEvent(ModifiersChanged{Ctrl: true})
		sx, sy := screenOf(e, 50, 50)
		e.HandleEvent(PointerPress{Button: ButtonLeft, X: sx, Y: sy})
		if len(e.Drawing.Lines) != 1 || e.Drawing.Lines[0].Start() != v(50, 50) {
			t.Fatalf("lines = %+v, want one starting at (50, 50)", e.Drawing.Lines)
		}
	})
	t.Run("after camera change", func(t *testing.T) {
		e := newTestEditor(t)
		keys(e, KeyL)
		moveTo(e, 0, 0)
		e.HandleEvent(ModifiersChanged{Ctrl: true})
		e.Camera.Pan(50, 50)
		// Pressing where the pointer already is pans by nothing.
		e.HandleEvent(PointerPress{Button: ButtonLeft, X: 400, Y: 300})
		if got, _ := e.Cursor(); got != v(50, 50) {
			t.Errorf("cursor = %v, want (50, 50)", got)
		}
		if len(e.Drawing.Lines) != 1 || e.Drawing.Lines[0].Start() != v(50, 50) {
			t.Fatalf("lines = %+v, want one starting at (50, 50)", e.Drawing.Lines)
		}
	})
}

func TestResetView(t *testing.T) {
	e := newTestEditor(t)
	e.HandleEvent(PointerMove{X: 400, Y: 300})
	e.HandleEvent(PointerPress{Button: ButtonMiddle, X: 400, Y: 300})
	e.HandleEvent(PointerMove{X: 600, Y: 300})
	e.HandleEvent(PointerRelease{Button: ButtonMiddle, X: 600, Y: 300})
	e.HandleEvent(Scroll{DeltaY: 1})

	if !e.HandleEvent(KeyPress{Key: KeyHome}) {
		t.Error("reset did not request a redraw")
	}
	if e.Camera.Zoom != 1 || e.Camera.OffsetX != 0 || e.Camera.OffsetY != 0 {
		t.Errorf("camera = %+v, want origin at zoom 1", *e.Camera)
	}
	if got, _ := e.Cursor(); got != v(200, 0) {
		t.Errorf("cursor = %v, want (200, 0)", got)
	}
}

func TestCtrlRequests(t *testing.T) {
	tests := []struct {
		key  Key
		want Request
	}{
		{KeyS, RequestSave},
		{KeyO, RequestOpen},
	}
	for _, tt := range tests {
		e := newTestEditor(t)
		e.HandleEvent(ModifiersChanged{Ctrl: true})
		keys(e, tt.key)
		if got := e.TakeRequest(); got != tt.want {
			t.Errorf("key %v: request = %v, want %v", tt.key, got, tt.want)
		}
		if got := e.TakeRequest(); got != RequestNone {
			t.Errorf("key %v: second take = %v, want none", tt.key, got)
		}
		if e.Mode() != (Normal{}) {
			t.Errorf("key %v: mode = %v, want normal", tt.key, e.Mode())
		}
	}
}

func TestTextEditing(t *testing.T) {
	e := newTestEditor(t)
	keys(e, KeyT)
	click(e, 1, 2)
	if len(e.Drawing.Texts) != 1 || e.Mode() != (Normal{}) {
		t.Fatalf("texts %d mode %v, want one text and normal", len(e.Drawing.Texts), e.Mode())
	}
	te, ok := e.EditingText()
	if !ok || te.Contents != DefaultText || te.Position != v(1, 2) {
		t.Fatalf("editing = %+v/%v", te, ok)
	}
	e.CommitText("Hello", true)
	if txt := e.Drawing.Texts[0]; txt.Contents != "Hello" || !txt.Annotative || txt.Editing {
		t.Errorf("text = %+v", txt)
	}
	if _, ok := e.EditingText(); ok {
		t.Error("edit still open after commit")
	}

	e.SetTextBounds(0, geom.Rect{MinX: 390, MinY: 290, MaxX: 420, MaxY: 310})
	e.HandleEvent(PointerPress{Button: ButtonRight, X: 400, Y: 300})
	if te, ok := e.EditingText(); !ok || te.Contents != "Hello" {
		t.Fatalf("right click did not reopen the text: %+v/%v", te, ok)
	}
	e.CommitText("  ", false)
	if len(e.Drawing.Texts) != 0 {
		t.Error("blank commit kept the text")
	}
}

func TestRightClickMissesText(t *testing.T) {
	e := newTestEditor(t)
	e.Drawing.AddText(v(0, 0), "a", false, false)
	e.SetTextBounds(0, geom.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10})
	if e.HandleEvent(PointerPress{Button: ButtonRight, X: 400, Y: 300}) {
		t.Error("right click outside bounds reported a change")
	}
	if _, ok := e.EditingText(); ok {
		t.Error("text opened for editing")
	}
}

func TestLoadAbortsGesture(t *testing.T) {
	e := newTestEditor(t)
	keys(e, KeyL)
	click(e, 0, 0)

	d := drawing.New()
	d.AddLine(v(1, 1), v(2, 2), 2, false)
	d.AddCircle(v(0, 0), 3, 2, false)
	e.Load(d)

	if len(e.Drawing.Lines) != 1 || len(e.Drawing.Circles) != 1 {
		t.Errorf("entities = %d lines %d circles, want loaded ones only", len(e.Drawing.Lines), len(e.Drawing.Circles))
	}
	if e.Mode() != (Normal{}) || e.DrawingState() != (Idle{}) {
		t.Errorf("mode %v state %v, want normal idle", e.Mode(), e.DrawingState())
	}
	if len(e.LineInstances()) != 1 || len(e.CircleInstances()) != 1 {
		t.Error("instances not rebuilt after load")
	}

	e.Clear()
	if e.Drawing.Len() != 0 || len(e.LineInstances()) != 0 {
		t.Error("clear left entities behind")
	}
}

func TestNotificationsExpire(t *testing.T) {
	now := epoch
	cfg := DefaultConfig()
	cfg.Clock = func() time.Time { return now }
	e := New(cfg)
	e.Notify("hello")
	if got := len(e.Notifications()); got != 1 {
		t.Fatalf("active = %d, want 1", got)
	}
	now = now.Add(cfg.NotificationTTL)
	if got := len(e.Notifications()); got != 0 {
		t.Errorf("active = %d after ttl, want 0", got)
	}
}

func TestNumericInput(t *testing.T) {
	var n NumericInput
	for _, r := range "1x2.5" {
		n.Push(r)
	}
	if n.String() != "12.5" {
		t.Fatalf("buffer = %q, want 12.5", n.String())
	}
	n.Backspace()
	got, err := n.Value()
	if err != nil || got != 12 {
		t.Errorf("value = %v, %v, want 12", got, err)
	}
	n.Clear()
	if _, err := n.Value(); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("empty err = %v, want ErrInvalidLength", err)
	}
}

func TestConfigDefaults(t *testing.T) {
	e := New(Config{})
	if e.cfg.SnapThresholdPx != 5 || e.cfg.ZoomStep != 0.1 || e.cfg.Clock == nil {
		t.Errorf("cfg = %+v, want defaults filled in", e.cfg)
	}
	if e.Camera.MinZoom != 0.01 || e.Camera.MaxZoom != 1000 {
		t.Errorf("camera limits = %v..%v", e.Camera.MinZoom, e.Camera.MaxZoom)
	}
}
