// Package dxfio exchanges drawings with DXF files. Only lines and circles are
// mapped; other DXF entities are skipped on import.
package dxfio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/example/draftcad/drawing"
	"github.com/example/draftcad/geom"
	"github.com/example/draftcad/script"
)

// ErrUnsupportedExtension is returned by Open for files that are neither DXF
// nor .cad scripts.
var ErrUnsupportedExtension = errors.New("unsupported file extension")

// Export writes every line and circle of d to path. Entities still being
// drawn are skipped. d is not modified.
func Export(d *drawing.Drawing, path string) error {
	out := dxf.NewDrawing()
	for i := range d.Lines {
		l := &d.Lines[i]
		if l.IsDrawing {
			continue
		}
		a, b := l.Start(), l.End()
		if _, err := out.Line(float64(a.X), float64(a.Y), 0, float64(b.X), float64(b.Y), 0); err != nil {
			return fmt.Errorf("dxfio: line %d: %w", i, err)
		}
	}
	for i := range d.Circles {
		c := &d.Circles[i]
		if c.IsDrawing {
			continue
		}
		p := c.Center.Pos
		if _, err := out.Circle(float64(p.X), float64(p.Y), 0, float64(c.Radius)); err != nil {
			return fmt.Errorf("dxfio: circle %d: %w", i, err)
		}
	}
	if err := out.SaveAs(path); err != nil {
		return fmt.Errorf("dxfio: save %s: %w", path, err)
	}
	return nil
}

// Import reads the lines and circles of the DXF file at path into a new
// drawing. On error nothing is returned.
func Import(path string) (*drawing.Drawing, error) {
	in, err := dxf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dxfio: open %s: %w", path, err)
	}
	d := drawing.New()
	for _, e := range in.Entities() {
		switch e := e.(type) {
		case *entity.Line:
			a, ok1 := point(e.Start)
			b, ok2 := point(e.End)
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("dxfio: %s: malformed line", path)
			}
			d.AddLine(a, b, drawing.DefaultThickness, false)
		case *entity.Circle:
			c, ok := point(e.Center)
			r := float32(e.Radius)
			if !ok || !(r >= 0) {
				return nil, fmt.Errorf("dxfio: %s: malformed circle", path)
			}
			d.AddCircle(c, r, drawing.DefaultThickness, false)
		}
	}
	return d, nil
}

func point(c []float64) (geom.Vec2, bool) {
	if len(c) < 2 {
		return geom.Vec2{}, false
	}
	p := geom.Vec2{X: float32(c[0]), Y: float32(c[1])}
	return p, p.Finite()
}

// Open loads path by extension: .dxf files are imported and .cad scripts are
// compiled.
func Open(path string) (*drawing.Drawing, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dxf":
		return Import(path)
	case ".cad":
		return script.CompileFile(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, filepath.Ext(path))
	}
}
