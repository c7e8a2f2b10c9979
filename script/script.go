// Package script compiles .cad files, a small line-oriented language for
// parametric drawings:
//
//	// comment
//	param width = 6000
//	point a 0 0
//	point b width 0
//	line bottom a b
//	circle hole a width / 10
//
// Expressions may refer to earlier params. Unknown keywords are ignored.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/example/draftcad/drawing"
	"github.com/example/draftcad/geom"
)

var (
	// ErrUsage reports a statement with missing operands.
	ErrUsage = errors.New("usage")
	// ErrUnknownPoint reports a reference to a point that was never declared.
	ErrUnknownPoint = errors.New("unknown point")
	// ErrExpression reports an expression that failed to evaluate to a finite number.
	ErrExpression = errors.New("invalid expression")
)

var usage = map[string]string{
	"param":  "param <name> = <expression>",
	"point":  "point <name> <expression> <expression>",
	"line":   "line <name> <point> <point>",
	"circle": "circle <name> <center point> <expression>",
}

// Compiler holds the params and points declared so far.
type Compiler struct {
	params map[string]any
	points map[string]geom.Vec2
	out    *drawing.Drawing
}

func NewCompiler() *Compiler {
	return &Compiler{
		params: make(map[string]any),
		points: make(map[string]geom.Vec2),
		out:    drawing.New(),
	}
}

// Drawing returns the entities compiled so far.
func (c *Compiler) Drawing() *drawing.Drawing { return c.out }

// ProcessLine compiles one source line. num is the 1-based line number used
// in errors.
func (c *Compiler) ProcessLine(line string, num int) error {
	parts := strings.Fields(line)
	if len(parts) == 0 || strings.HasPrefix(parts[0], "//") {
		return nil
	}
	kw := parts[0]
	if _, ok := usage[kw]; !ok {
		return nil
	}
	if len(parts) < 4 || (kw == "param" && parts[2] != "=") {
		return fmt.Errorf("line %d: %w: %s", num, ErrUsage, usage[kw])
	}

	switch kw {
	case "param":
		v, err := c.eval(strings.Join(parts[3:], " "))
		if err != nil {
			return fmt.Errorf("line %d: %w", num, err)
		}
		c.params[parts[1]] = v
	case "point":
		x, err := c.eval(parts[2])
		if err != nil {
			return fmt.Errorf("line %d: %w", num, err)
		}
		y, err := c.eval(strings.Join(parts[3:], " "))
		if err != nil {
			return fmt.Errorf("line %d: %w", num, err)
		}
		c.points[parts[1]] = geom.Vec2{X: float32(x), Y: float32(y)}
	case "line":
		a, err := c.point(parts[2])
		if err != nil {
			return fmt.Errorf("line %d: %w", num, err)
		}
		b, err := c.point(parts[3])
		if err != nil {
			return fmt.Errorf("line %d: %w", num, err)
		}
		c.out.AddLine(a, b, drawing.DefaultThickness, false)
	case "circle":
		center, err := c.point(parts[2])
		if err != nil {
			return fmt.Errorf("line %d: %w", num, err)
		}
		r, err := c.eval(strings.Join(parts[3:], " "))
		if err != nil {
			return fmt.Errorf("line %d: %w", num, err)
		}
		c.out.AddCircle(center, float32(r), drawing.DefaultThickness, false)
	}
	return nil
}

func (c *Compiler) point(name string) (geom.Vec2, error) {
	p, ok := c.points[name]
	if !ok {
		return geom.Vec2{}, fmt.Errorf("%w: %s", ErrUnknownPoint, name)
	}
	return p, nil
}

func (c *Compiler) eval(src string) (float64, error) {
	out, err := expr.Eval(src, c.params)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrExpression, src, err)
	}
	var v float64
	switch n := out.(type) {
	case int:
		v = float64(n)
	case int64:
		v = float64(n)
	case float64:
		v = n
	default:
		return 0, fmt.Errorf("%w %q: got %T, want a number", ErrExpression, src, out)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w %q: not finite", ErrExpression, src)
	}
	return v, nil
}

// Compile reads a whole script. Either every statement compiles and the
// resulting drawing is returned, or the first error is.
func Compile(r io.Reader) (*drawing.Drawing, error) {
	c := NewCompiler()
	sc := bufio.NewScanner(r)
	for num := 1; sc.Scan(); num++ {
		if err := c.ProcessLine(sc.Text(), num); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("script: read: %w", err)
	}
	return c.out, nil
}

// CompileFile compiles the script at path.
func CompileFile(path string) (*drawing.Drawing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	defer f.Close()
	d, err := Compile(f)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	return d, nil
}
