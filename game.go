package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sqweek/dialog"
	"golang.org/x/image/font/basicfont"

	"github.com/example/draftcad/drawing"
	"github.com/example/draftcad/dxfio"
	"github.com/example/draftcad/editor"
	"github.com/example/draftcad/geom"
)

const uiHeight = 110

var keymap = []struct {
	key ebiten.Key
	ed  editor.Key
}{
	{ebiten.KeyL, editor.KeyL},
	{ebiten.KeyC, editor.KeyC},
	{ebiten.KeyK, editor.KeyK},
	{ebiten.KeyM, editor.KeyM},
	{ebiten.KeyS, editor.KeyS},
	{ebiten.KeyO, editor.KeyO},
	{ebiten.KeyA, editor.KeyA},
	{ebiten.KeyT, editor.KeyT},
	{ebiten.KeyDelete, editor.KeyDelete},
	{ebiten.KeyEscape, editor.KeyEscape},
	{ebiten.KeyEnter, editor.KeyEnter},
	{ebiten.KeyNumpadEnter, editor.KeyEnter},
	{ebiten.KeyBackspace, editor.KeyBackspace},
	{ebiten.KeyHome, editor.KeyHome},
}

var charKeys = map[ebiten.Key]rune{
	ebiten.KeyDigit0: '0', ebiten.KeyDigit1: '1', ebiten.KeyDigit2: '2', ebiten.KeyDigit3: '3',
	ebiten.KeyDigit4: '4', ebiten.KeyDigit5: '5', ebiten.KeyDigit6: '6', ebiten.KeyDigit7: '7',
	ebiten.KeyDigit8: '8', ebiten.KeyDigit9: '9', ebiten.KeyPeriod: '.',
	ebiten.KeyNumpad0: '0', ebiten.KeyNumpad1: '1', ebiten.KeyNumpad2: '2', ebiten.KeyNumpad3: '3',
	ebiten.KeyNumpad4: '4', ebiten.KeyNumpad5: '5', ebiten.KeyNumpad6: '6', ebiten.KeyNumpad7: '7',
	ebiten.KeyNumpad8: '8', ebiten.KeyNumpad9: '9', ebiten.KeyNumpadDecimal: '.',
}

var mouseButtons = []struct {
	btn ebiten.MouseButton
	ed  editor.Button
}{
	{ebiten.MouseButtonLeft, editor.ButtonLeft},
	{ebiten.MouseButtonMiddle, editor.ButtonMiddle},
	{ebiten.MouseButtonRight, editor.ButtonRight},
}

type Game struct {
	ed        *editor.Editor
	buttons   []*button
	sliders   []*slider
	confirm   confirmDialog
	thickness float64

	width, height  int
	lastMX, lastMY int
	lastCtrl       bool
	lastShift      bool

	editing    bool
	textBuf    []rune
	annotative bool
}

func NewGame(cfg editor.Config) *Game {
	g := &Game{
		ed:     editor.New(cfg),
		lastMX: -1,
		lastMY: -1,
	}
	g.thickness = float64(g.ed.LineThickness())
	g.setupUI()
	return g
}

func (g *Game) setupUI() {
	tools := []struct {
		label string
		key   editor.Key
		is    func(editor.Mode) bool
	}{
		{"Line", editor.KeyL, func(m editor.Mode) bool { _, ok := m.(editor.DrawLine); return ok }},
		{"Circle", editor.KeyC, func(m editor.Mode) bool { return m == editor.DrawCircle{} }},
		{"Select", editor.KeyS, func(m editor.Mode) bool { return m == editor.Selection{} }},
		{"Move", editor.KeyM, func(m editor.Mode) bool { _, ok := m.(editor.Move); return ok }},
		{"Copy", editor.KeyK, func(m editor.Mode) bool { _, ok := m.(editor.Copy); return ok }},
		{"Measure", editor.KeyA, func(m editor.Mode) bool { _, ok := m.(editor.Measure); return ok }},
		{"Text", editor.KeyT, func(m editor.Mode) bool { return m == editor.CreateText{} }},
		{"Delete", editor.KeyDelete, func(m editor.Mode) bool { return m == editor.Delete{} }},
	}
	x := 20
	for _, tool := range tools {
		g.buttons = append(g.buttons, &button{
			rect:    image.Rect(x, 20, x+80, 60),
			label:   tool.label,
			onClick: func() { g.selectTool(tool.key) },
			active:  func() bool { return tool.is(g.ed.Mode()) },
		})
		x += 88
	}
	g.buttons = append(g.buttons,
		&button{rect: image.Rect(x, 20, x+60, 60), label: "Open", onClick: g.open},
		&button{rect: image.Rect(x+68, 20, x+128, 60), label: "Save", onClick: g.save},
		&button{rect: image.Rect(x+136, 20, x+196, 60), label: "Clear", onClick: g.confirmClear},
		&button{rect: image.Rect(x+204, 20, x+264, 60), label: "Theme", onClick: g.toggleTheme},
	)
	g.sliders = []*slider{
		{x: float64(x + 290), y: 40, width: 120, min: 1, max: 10, value: &g.thickness},
	}
}

// selectTool switches tools from any state by cancelling first.
func (g *Game) selectTool(k editor.Key) {
	g.ed.HandleEvent(editor.KeyPress{Key: editor.KeyEscape})
	g.ed.HandleEvent(editor.KeyPress{Key: k})
}

func (g *Game) toggleTheme() {
	if g.ed.ColorScheme() == drawing.Dark {
		g.ed.SetColorScheme(drawing.Light)
	} else {
		g.ed.SetColorScheme(drawing.Dark)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.ed.HandleEvent(editor.Resize{Width: float64(outsideWidth), Height: float64(outsideHeight)})
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Update() error {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	if g.confirm.visible {
		g.confirm.handleInput(mx, my, g.width, g.height, clicked)
		return nil
	}

	for _, s := range g.sliders {
		if s.handleInput(float64(mx), float64(my), pressed) {
			g.ed.SetLineThickness(float32(g.thickness))
		}
	}

	if clicked {
		for _, b := range g.buttons {
			if b.contains(mx, my) {
				b.onClick()
				return nil
			}
		}
	}

	if g.updateTextEdit() {
		return nil
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	if ctrl != g.lastCtrl || shift != g.lastShift {
		g.lastCtrl, g.lastShift = ctrl, shift
		g.ed.HandleEvent(editor.ModifiersChanged{Ctrl: ctrl, Shift: shift})
	}

	if mx != g.lastMX || my != g.lastMY {
		g.lastMX, g.lastMY = mx, my
		g.ed.HandleEvent(editor.PointerMove{X: float64(mx), Y: float64(my)})
	}

	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.btn) && (my > uiHeight || mb.ed == editor.ButtonMiddle) {
			g.ed.HandleEvent(editor.PointerPress{Button: mb.ed, X: float64(mx), Y: float64(my)})
		}
		if inpututil.IsMouseButtonJustReleased(mb.btn) {
			g.ed.HandleEvent(editor.PointerRelease{Button: mb.ed, X: float64(mx), Y: float64(my)})
		}
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.ed.HandleEvent(editor.Scroll{DeltaY: wy})
	}

	for _, k := range keymap {
		if inpututil.IsKeyJustPressed(k.key) {
			g.ed.HandleEvent(editor.KeyPress{Key: k.ed})
		}
	}
	for k, r := range charKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.ed.HandleEvent(editor.KeyPress{Key: editor.KeyChar, Char: r})
		}
	}

	switch g.ed.TakeRequest() {
	case editor.RequestSave:
		g.save()
	case editor.RequestOpen:
		g.open()
	}
	return nil
}

// updateTextEdit feeds typed characters into the text open for editing. It
// reports whether keyboard input was consumed.
func (g *Game) updateTextEdit() bool {
	te, ok := g.ed.EditingText()
	if !ok {
		g.editing = false
		return false
	}
	if !g.editing {
		g.editing = true
		g.textBuf = []rune(te.Contents)
		g.annotative = te.Annotative
		// drop the keystrokes that opened the edit
		ebiten.AppendInputChars(nil)
		return true
	}

	g.textBuf = ebiten.AppendInputChars(g.textBuf)
	if repeatPressed(ebiten.KeyBackspace) && len(g.textBuf) > 0 {
		g.textBuf = g.textBuf[:len(g.textBuf)-1]
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.annotative = !g.annotative
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		g.ed.CommitText(string(g.textBuf), g.annotative)
		g.editing = false
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.ed.CancelTextEdit()
		g.editing = false
	}
	return true
}

func repeatPressed(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d >= 30 && d%4 == 0)
}

func (g *Game) save() {
	path, err := dialog.File().Filter("DXF drawing", "dxf").Title("Export DXF").Save()
	if errors.Is(err, dialog.ErrCancelled) {
		slog.Debug("save cancelled")
		return
	}
	if err != nil {
		g.fail("save", err)
		return
	}
	if filepath.Ext(path) == "" {
		path += ".dxf"
	}
	if err := dxfio.Export(g.ed.Drawing, path); err != nil {
		g.fail("save", err)
		return
	}
	slog.Info("drawing exported", "path", path, "entities", g.ed.Drawing.Len())
	g.ed.Notify("saved " + filepath.Base(path))
}

func (g *Game) open() {
	path, err := dialog.File().Filter("Drawings", "dxf", "cad").Title("Open drawing").Load()
	if errors.Is(err, dialog.ErrCancelled) {
		slog.Debug("open cancelled")
		return
	}
	if err != nil {
		g.fail("open", err)
		return
	}
	g.load(path)
}

func (g *Game) load(path string) {
	d, err := dxfio.Open(path)
	if err != nil {
		g.fail("open", err)
		return
	}
	g.ed.Load(d)
	g.ed.Notify("opened " + filepath.Base(path))
}

func (g *Game) fail(op string, err error) {
	slog.Error(op+" failed", "err", err)
	g.ed.Notify(fmt.Sprintf("%s failed: %v", op, err))
}

func (g *Game) confirmClear() {
	g.confirm = confirmDialog{
		message:   "Clear the whole drawing?",
		visible:   true,
		onConfirm: g.ed.Clear,
	}
}

func rgba(c geom.RGB) color.RGBA {
	return color.RGBA{uint8(c[0] * 255), uint8(c[1] * 255), uint8(c[2] * 255), 255}
}

func (g *Game) Draw(screen *ebiten.Image) {
	scheme := g.ed.ColorScheme()
	if scheme == drawing.Light {
		screen.Fill(color.White)
	} else {
		screen.Fill(color.Black)
	}

	cam, vp := g.ed.Camera, g.ed.Viewport()
	for _, l := range g.ed.LineInstances() {
		x0, y0 := cam.WorldToScreen(float64(l.Start[0]), float64(l.Start[1]), vp)
		x1, y1 := cam.WorldToScreen(float64(l.End[0]), float64(l.End[1]), vp)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), l.Thickness, rgba(l.Color), true)
	}
	for _, c := range g.ed.CircleInstances() {
		x, y := cam.WorldToScreen(float64(c.Center[0]), float64(c.Center[1]), vp)
		vector.StrokeCircle(screen, float32(x), float32(y), c.Radius*float32(cam.Zoom), c.Thickness, rgba(c.Color), true)
	}
	g.drawTexts(screen, scheme)

	if g.ed.Indicator.Visible() {
		for _, arm := range g.ed.Indicator {
			x0, y0 := cam.WorldToScreen(float64(arm[0].X), float64(arm[0].Y), vp)
			x1, y1 := cam.WorldToScreen(float64(arm[1].X), float64(arm[1].Y), vp)
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, rgba(scheme.Accent()), true)
		}
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), uiHeight, color.RGBA{20, 20, 20, 255}, false)
	for _, b := range g.buttons {
		b.draw(screen)
	}
	g.sliders[0].draw(screen, "Thickness")
	ebitenutil.DebugPrintAt(screen, g.statusLine(), 20, uiHeight-24)

	notes := g.ed.Notifications()
	for i := range notes {
		n := notes[len(notes)-1-i]
		text.Draw(screen, n.Text, basicfont.Face7x13, 20, h-16-i*16, rgba(scheme.Accent()))
	}

	g.confirm.draw(screen)
}

// drawTexts paints text entities and records their screen bounds for
// right-click editing. Annotative text keeps a fixed screen size.
func (g *Game) drawTexts(screen *ebiten.Image, scheme drawing.ColorScheme) {
	cam, vp := g.ed.Camera, g.ed.Viewport()
	face := basicfont.Face7x13
	for i := range g.ed.Drawing.Texts {
		t := &g.ed.Drawing.Texts[i]
		s := t.Contents
		annotative := t.Annotative
		if t.Editing && g.editing {
			s = string(g.textBuf) + "_"
			annotative = g.annotative
		}
		scale := cam.Zoom
		if annotative {
			scale = 1
		}
		sx, sy := cam.WorldToScreen(float64(t.Position.X), float64(t.Position.Y), vp)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(sx, sy)
		clr := scheme.Foreground()
		if t.Editing {
			clr = scheme.Accent()
		}
		op.ColorScale.ScaleWithColor(rgba(clr))
		text.DrawWithOptions(screen, s, face, op)

		b := text.BoundString(face, s)
		g.ed.SetTextBounds(i, geom.Rect{
			MinX: float32(sx + float64(b.Min.X)*scale),
			MinY: float32(sy + float64(b.Min.Y)*scale),
			MaxX: float32(sx + float64(b.Max.X)*scale),
			MaxY: float32(sy + float64(b.Max.Y)*scale),
		})
	}
}

func (g *Game) statusLine() string {
	st := g.ed.Status()
	s := fmt.Sprintf("Mode: %s | %s | x %.2f y %.2f | zoom %.2f", st.Mode, st.State, st.Cursor.X, st.Cursor.Y, st.Zoom)
	if st.HasLength {
		s += fmt.Sprintf(" | length %g", st.Length)
	}
	if st.Numeric != "" {
		s += " | input " + st.Numeric
	}
	if g.editing {
		mode := "scaled"
		if g.annotative {
			mode = "annotative"
		}
		s += " | editing text (" + mode + ", Tab toggles)"
	}
	return s
}
