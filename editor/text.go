package editor

import (
	"strings"

	"github.com/example/draftcad/drawing"
	"github.com/example/draftcad/geom"
	"github.com/example/draftcad/selection"
)

// DefaultText is the contents of a freshly placed text entity.
const DefaultText = "Text"

type textEdit struct {
	h      drawing.Handle
	active bool
}

// TextEdit describes the text entity open for editing.
type TextEdit struct {
	Contents   string
	Annotative bool
	Position   geom.Vec2
}

func (e *Editor) createText(p geom.Vec2) {
	e.closeTextEdit()
	h := e.Drawing.AddText(p, DefaultText, true, false)
	e.text = textEdit{h: h, active: true}
	e.setMode(Normal{})
}

// rightClick opens the text under the cursor for editing.
func (e *Editor) rightClick() bool {
	if _, ok := e.mode.(Normal); !ok || !e.hasScreen {
		return false
	}
	i := selection.TextAt(e.Drawing.Texts, e.screen)
	if i < 0 {
		return false
	}
	e.closeTextEdit()
	e.Drawing.Texts[i].Editing = true
	e.text = textEdit{h: e.Drawing.TextHandle(i), active: true}
	return true
}

// EditingText returns the text open for editing, if any.
func (e *Editor) EditingText() (TextEdit, bool) {
	if !e.text.active {
		return TextEdit{}, false
	}
	t := e.Drawing.Text(e.text.h)
	if t == nil {
		e.text = textEdit{}
		return TextEdit{}, false
	}
	return TextEdit{Contents: t.Contents, Annotative: t.Annotative, Position: t.Position}, true
}

// CommitText stores the edited contents and closes the edit. Blank contents
// remove the entity.
func (e *Editor) CommitText(contents string, annotative bool) {
	if !e.text.active {
		return
	}
	t := e.Drawing.Text(e.text.h)
	if t != nil {
		if strings.TrimSpace(contents) == "" {
			e.Drawing.RemoveText(e.text.h)
		} else {
			t.Contents = contents
			t.Annotative = annotative
			t.Editing = false
		}
	}
	e.text = textEdit{}
}

// CancelTextEdit closes the edit and keeps the previous contents.
func (e *Editor) CancelTextEdit() {
	e.closeTextEdit()
}

func (e *Editor) closeTextEdit() {
	if !e.text.active {
		return
	}
	if t := e.Drawing.Text(e.text.h); t != nil {
		t.Editing = false
	}
	e.text = textEdit{}
}

// SetTextBounds records where the renderer drew text i, in screen pixels.
func (e *Editor) SetTextBounds(i int, r geom.Rect) {
	if i < 0 || i >= len(e.Drawing.Texts) {
		return
	}
	e.Drawing.Texts[i].ScreenBounds = &r
}
