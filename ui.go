package main

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type slider struct {
	x, y   float64
	width  float64
	min    float64
	max    float64
	value  *float64
	active bool
}

// handleInput drags the knob and reports whether the value changed.
func (s *slider) handleInput(mx, my float64, pressed bool) bool {
	knobRadius := 10.0
	knobX := s.x + ((*s.value - s.min) / (s.max - s.min) * s.width)
	if !pressed {
		s.active = false
		return false
	}
	if !s.active && math.Hypot(mx-knobX, my-s.y) <= knobRadius*1.5 {
		s.active = true
	}
	if !s.active {
		return false
	}
	t := math.Min(math.Max((mx-s.x)/s.width, 0), 1)
	old := *s.value
	*s.value = s.min + t*(s.max-s.min)
	return *s.value != old
}

func (s *slider) draw(dst *ebiten.Image, label string) {
	x, y := int(s.x), int(s.y)
	fillRect(dst, image.Rect(x, y-3, x+int(s.width), y+3), color.RGBA{60, 60, 60, 255})
	knob := s.x + (*s.value-s.min)/(s.max-s.min)*s.width
	vector.DrawFilledCircle(dst, float32(knob), float32(s.y), 10, color.RGBA{200, 200, 200, 255}, false)
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("%s: %.1f", label, *s.value), x, y-24)
}

type button struct {
	rect    image.Rectangle
	label   string
	onClick func()
	// active highlights the button while its tool is selected.
	active func() bool
}

func (b *button) contains(x, y int) bool {
	return image.Pt(x, y).In(b.rect)
}

func (b *button) draw(dst *ebiten.Image) {
	bg := color.RGBA{70, 70, 70, 255}
	if b.active != nil && b.active() {
		bg = color.RGBA{70, 100, 140, 255}
	}
	fillRect(dst, b.rect, bg)
	ebitenutil.DebugPrintAt(dst, b.label, b.rect.Min.X+6, b.rect.Min.Y+8)
}

type confirmDialog struct {
	message   string
	visible   bool
	onConfirm func()
}

func (c *confirmDialog) rects(viewW, viewH int) (panel, yes, no image.Rectangle) {
	dialogW, dialogH := 400, 160
	x := (viewW - dialogW) / 2
	y := (viewH - dialogH) / 2
	panel = image.Rect(x, y, x+dialogW, y+dialogH)
	yes = image.Rect(x+40, y+90, x+140, y+130)
	no = image.Rect(x+dialogW-140, y+90, x+dialogW-40, y+130)
	return panel, yes, no
}

func (c *confirmDialog) draw(dst *ebiten.Image) {
	if !c.visible {
		return
	}
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	vector.DrawFilledRect(dst, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 120}, false)
	panel, yes, no := c.rects(w, h)
	fillRect(dst, panel, color.RGBA{30, 30, 30, 255})
	ebitenutil.DebugPrintAt(dst, c.message, panel.Min.X+20, panel.Min.Y+30)
	fillRect(dst, yes, color.RGBA{70, 120, 70, 255})
	fillRect(dst, no, color.RGBA{120, 70, 70, 255})
	ebitenutil.DebugPrintAt(dst, "Yes", yes.Min.X+38, yes.Min.Y+12)
	ebitenutil.DebugPrintAt(dst, "No", no.Min.X+42, no.Min.Y+12)
}

func (c *confirmDialog) handleInput(mx, my, viewW, viewH int, clicked bool) {
	if !c.visible || !clicked {
		return
	}
	_, yes, no := c.rects(viewW, viewH)
	switch p := image.Pt(mx, my); {
	case p.In(yes):
		c.visible = false
		if c.onConfirm != nil {
			c.onConfirm()
		}
	case p.In(no):
		c.visible = false
	}
}

func fillRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}
