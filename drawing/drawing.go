package drawing

import (
	"github.com/google/uuid"

	"github.com/example/draftcad/geom"
)

// Handle refers to one entity in a Drawing collection. It pairs the slice
// index with the entity ID, so a handle whose entity was removed can never
// resolve to a different entity that later took its slot. The zero Handle
// refers to nothing.
type Handle struct {
	index int
	id    uuid.UUID
}

// Valid reports whether h was ever bound to an entity.
func (h Handle) Valid() bool { return h.id != uuid.Nil }

// Drawing is the set of entities being edited.
type Drawing struct {
	Lines   []Line
	Circles []Circle
	Texts   []Text
}

// New returns an empty drawing.
func New() *Drawing {
	return &Drawing{}
}

// Len returns the total number of entities.
func (d *Drawing) Len() int {
	return len(d.Lines) + len(d.Circles) + len(d.Texts)
}

// AddLine appends a line from a to b and returns its handle.
func (d *Drawing) AddLine(a, b geom.Vec2, thickness float32, drawing bool) Handle {
	l := newLine(a, b, thickness, drawing)
	d.Lines = append(d.Lines, l)
	return Handle{index: len(d.Lines) - 1, id: l.ID}
}

// AddCircle appends a circle and returns its handle.
func (d *Drawing) AddCircle(center geom.Vec2, radius, thickness float32, drawing bool) Handle {
	c := newCircle(center, radius, thickness, drawing)
	d.Circles = append(d.Circles, c)
	return Handle{index: len(d.Circles) - 1, id: c.ID}
}

// AddText appends a text entity and returns its handle.
func (d *Drawing) AddText(pos geom.Vec2, contents string, editing, annotative bool) Handle {
	t := Text{
		ID:         uuid.New(),
		Position:   pos,
		Contents:   contents,
		Editing:    editing,
		Annotative: annotative,
	}
	d.Texts = append(d.Texts, t)
	return Handle{index: len(d.Texts) - 1, id: t.ID}
}

// Line resolves h, or returns nil when the line no longer exists.
func (d *Drawing) Line(h Handle) *Line {
	i := resolve(h, len(d.Lines), func(i int) uuid.UUID { return d.Lines[i].ID })
	if i < 0 {
		return nil
	}
	return &d.Lines[i]
}

// Circle resolves h, or returns nil when the circle no longer exists.
func (d *Drawing) Circle(h Handle) *Circle {
	i := resolve(h, len(d.Circles), func(i int) uuid.UUID { return d.Circles[i].ID })
	if i < 0 {
		return nil
	}
	return &d.Circles[i]
}

// Text resolves h, or returns nil when the text no longer exists.
func (d *Drawing) Text(h Handle) *Text {
	i := resolve(h, len(d.Texts), func(i int) uuid.UUID { return d.Texts[i].ID })
	if i < 0 {
		return nil
	}
	return &d.Texts[i]
}

// resolve finds the slot of h. The cached index is tried first; if entities
// before it were removed, the ID is searched for.
func resolve(h Handle, n int, idAt func(int) uuid.UUID) int {
	if !h.Valid() {
		return -1
	}
	if h.index >= 0 && h.index < n && idAt(h.index) == h.id {
		return h.index
	}
	for i := 0; i < n; i++ {
		if idAt(i) == h.id {
			return i
		}
	}
	return -1
}

// RemoveLine deletes the line h refers to and reports whether it existed.
func (d *Drawing) RemoveLine(h Handle) bool {
	i := resolve(h, len(d.Lines), func(i int) uuid.UUID { return d.Lines[i].ID })
	if i < 0 {
		return false
	}
	d.Lines = append(d.Lines[:i], d.Lines[i+1:]...)
	return true
}

// RemoveCircle deletes the circle h refers to and reports whether it existed.
func (d *Drawing) RemoveCircle(h Handle) bool {
	i := resolve(h, len(d.Circles), func(i int) uuid.UUID { return d.Circles[i].ID })
	if i < 0 {
		return false
	}
	d.Circles = append(d.Circles[:i], d.Circles[i+1:]...)
	return true
}

// RemoveText deletes the text h refers to and reports whether it existed.
func (d *Drawing) RemoveText(h Handle) bool {
	i := resolve(h, len(d.Texts), func(i int) uuid.UUID { return d.Texts[i].ID })
	if i < 0 {
		return false
	}
	d.Texts = append(d.Texts[:i], d.Texts[i+1:]...)
	return true
}

// LineHandle returns a handle for the line at index i, or the zero Handle.
func (d *Drawing) LineHandle(i int) Handle {
	if i < 0 || i >= len(d.Lines) {
		return Handle{}
	}
	return Handle{index: i, id: d.Lines[i].ID}
}

// CircleHandle returns a handle for the circle at index i, or the zero Handle.
func (d *Drawing) CircleHandle(i int) Handle {
	if i < 0 || i >= len(d.Circles) {
		return Handle{}
	}
	return Handle{index: i, id: d.Circles[i].ID}
}

// TextHandle returns a handle for the text at index i, or the zero Handle.
func (d *Drawing) TextHandle(i int) Handle {
	if i < 0 || i >= len(d.Texts) {
		return Handle{}
	}
	return Handle{index: i, id: d.Texts[i].ID}
}

// HasSelection reports whether any line or circle is selected.
func (d *Drawing) HasSelection() bool {
	for i := range d.Lines {
		if d.Lines[i].Selected {
			return true
		}
	}
	for i := range d.Circles {
		if d.Circles[i].Selected {
			return true
		}
	}
	return false
}

// ClearSelection unselects every line and circle.
func (d *Drawing) ClearSelection() {
	for i := range d.Lines {
		d.Lines[i].Selected = false
	}
	for i := range d.Circles {
		d.Circles[i].Selected = false
	}
}

// DeleteSelected removes every selected line and circle and returns how many
// were removed.
func (d *Drawing) DeleteSelected() int {
	n := len(d.Lines) + len(d.Circles)
	d.Lines = filter(d.Lines, func(l *Line) bool { return !l.Selected })
	d.Circles = filter(d.Circles, func(c *Circle) bool { return !c.Selected })
	return n - len(d.Lines) - len(d.Circles)
}

// PurgePendingDelete removes every entity marked PendingDelete.
func (d *Drawing) PurgePendingDelete() int {
	n := len(d.Lines) + len(d.Circles)
	d.Lines = filter(d.Lines, func(l *Line) bool { return !l.PendingDelete })
	d.Circles = filter(d.Circles, func(c *Circle) bool { return !c.PendingDelete })
	return n - len(d.Lines) - len(d.Circles)
}

// RemoveLines drops the lines at the given indices.
func (d *Drawing) RemoveLines(indices []int) {
	if len(indices) == 0 {
		return
	}
	drop := make(map[uuid.UUID]struct{}, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(d.Lines) {
			drop[d.Lines[i].ID] = struct{}{}
		}
	}
	d.Lines = filter(d.Lines, func(l *Line) bool { _, ok := drop[l.ID]; return !ok })
}

// RemoveCircles drops the circles at the given indices.
func (d *Drawing) RemoveCircles(indices []int) {
	if len(indices) == 0 {
		return
	}
	drop := make(map[uuid.UUID]struct{}, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(d.Circles) {
			drop[d.Circles[i].ID] = struct{}{}
		}
	}
	d.Circles = filter(d.Circles, func(c *Circle) bool { _, ok := drop[c.ID]; return !ok })
}

// Append moves all entities of other into d. The entities keep their IDs.
func (d *Drawing) Append(other *Drawing) {
	if other == nil {
		return
	}
	d.Lines = append(d.Lines, other.Lines...)
	d.Circles = append(d.Circles, other.Circles...)
	d.Texts = append(d.Texts, other.Texts...)
}

// Clear removes every entity.
func (d *Drawing) Clear() {
	d.Lines = nil
	d.Circles = nil
	d.Texts = nil
}

func filter[T any](s []T, keep func(*T) bool) []T {
	out := s[:0]
	for i := range s {
		if keep(&s[i]) {
			out = append(out, s[i])
		}
	}
	// zero the dropped tail of the backing array
	var zero T
	for i := len(out); i < len(s); i++ {
		s[i] = zero
	}
	return out
}
