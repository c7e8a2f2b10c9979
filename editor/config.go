package editor

import (
	"time"

	"github.com/example/draftcad/camera"
	"github.com/example/draftcad/drawing"
)

// Config tunes the editor. Zero fields take their DefaultConfig value.
type Config struct {
	// SnapThresholdPx is the snap box half-size in screen pixels.
	SnapThresholdPx float64
	// HitThresholdPx is the selection tolerance in screen pixels.
	HitThresholdPx float64
	// IndicatorPx is the arm length of the snap indicator in screen pixels.
	IndicatorPx float64

	MinZoom  float64
	MaxZoom  float64
	ZoomStep float64

	NotificationTTL time.Duration
	LineThickness   float32
	ColorScheme     drawing.ColorScheme

	// Clock returns the current time; tests replace it.
	Clock func() time.Time
}

// DefaultConfig returns the stock settings.
func DefaultConfig() Config {
	return Config{
		SnapThresholdPx: 5,
		HitThresholdPx:  5,
		IndicatorPx:     10,
		MinZoom:         camera.DefaultMinZoom,
		MaxZoom:         camera.DefaultMaxZoom,
		ZoomStep:        0.1,
		NotificationTTL: 5 * time.Second,
		LineThickness:   drawing.DefaultThickness,
		Clock:           time.Now,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.SnapThresholdPx <= 0 {
		c.SnapThresholdPx = def.SnapThresholdPx
	}
	if c.HitThresholdPx <= 0 {
		c.HitThresholdPx = def.HitThresholdPx
	}
	if c.IndicatorPx <= 0 {
		c.IndicatorPx = def.IndicatorPx
	}
	if c.MinZoom <= 0 {
		c.MinZoom = def.MinZoom
	}
	if c.MaxZoom < c.MinZoom {
		c.MaxZoom = def.MaxZoom
	}
	if c.ZoomStep <= 0 || c.ZoomStep >= 1 {
		c.ZoomStep = def.ZoomStep
	}
	if c.NotificationTTL <= 0 {
		c.NotificationTTL = def.NotificationTTL
	}
	if c.LineThickness <= 0 {
		c.LineThickness = def.LineThickness
	}
	if c.Clock == nil {
		c.Clock = def.Clock
	}
	return c
}
