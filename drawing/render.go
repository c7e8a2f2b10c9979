package drawing

import "github.com/example/draftcad/geom"

// ColorScheme picks the foreground colour of unselected entities.
type ColorScheme int

const (
	Dark ColorScheme = iota
	Light
)

func (s ColorScheme) String() string {
	if s == Light {
		return "light"
	}
	return "dark"
}

// ParseColorScheme accepts "dark" or "light"; anything else is Dark.
func ParseColorScheme(s string) ColorScheme {
	if s == "light" {
		return Light
	}
	return Dark
}

// Foreground is the paint colour of unselected geometry.
func (s ColorScheme) Foreground() geom.RGB {
	if s == Light {
		return geom.Black
	}
	return geom.White
}

// Accent is the paint colour of selected geometry.
func (s ColorScheme) Accent() geom.RGB {
	return geom.Red
}

// LineInstance is the per-line record handed to a renderer.
type LineInstance struct {
	Start     [3]float32
	End       [3]float32
	Color     geom.RGB
	Thickness float32
}

// CircleInstance is the per-circle record handed to a renderer.
type CircleInstance struct {
	Center    [3]float32
	Radius    float32
	Color     geom.RGB
	Thickness float32
}

// FlattenLines builds renderer instances for lines, reusing dst.
func FlattenLines(dst []LineInstance, lines []Line, scheme ColorScheme) []LineInstance {
	dst = dst[:0]
	for i := range lines {
		l := &lines[i]
		clr := scheme.Foreground()
		if l.Selected {
			clr = scheme.Accent()
		}
		dst = append(dst, LineInstance{
			Start:     l.Vertices[0].XYZ(),
			End:       l.Vertices[1].XYZ(),
			Color:     clr,
			Thickness: l.Thickness,
		})
	}
	return dst
}

// FlattenCircles builds renderer instances for circles, reusing dst.
func FlattenCircles(dst []CircleInstance, circles []Circle, scheme ColorScheme) []CircleInstance {
	dst = dst[:0]
	for i := range circles {
		c := &circles[i]
		clr := scheme.Foreground()
		if c.Selected {
			clr = scheme.Accent()
		}
		dst = append(dst, CircleInstance{
			Center:    c.Center.XYZ(),
			Radius:    c.Radius,
			Color:     clr,
			Thickness: c.Thickness,
		})
	}
	return dst
}
