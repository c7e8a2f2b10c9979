package editor

import (
	"fmt"

	"github.com/example/draftcad/geom"
)

// Mode is the active tool. It is a closed set of comparable struct types, so
// two modes can be compared with ==.
type Mode interface {
	isMode()
	String() string
}

// Step is how far a move or copy has progressed.
type Step int

const (
	// StepSelection collects entities by clicking on them.
	StepSelection Step = iota
	// StepSelectPoint waits for the click that nominates the anchor.
	StepSelectPoint
	// StepTransform drags the selection relative to the anchor.
	StepTransform
)

func (s Step) String() string {
	switch s {
	case StepSelection:
		return "selection"
	case StepSelectPoint:
		return "select point"
	case StepTransform:
		return "transform"
	default:
		return "unknown"
	}
}

type (
	Normal     struct{}
	Selection  struct{}
	DrawCircle struct{}
	CreateText struct{}
	Delete     struct{}

	// DrawLine draws segments; Ortho constrains them to 0/90/180/270 degrees.
	DrawLine struct {
		Ortho bool
	}

	// Move relocates the selection. Anchor is meaningful in StepTransform.
	Move struct {
		Step   Step
		Anchor geom.Vec2
	}

	// Copy duplicates the selection and drags the duplicates.
	Copy struct {
		Step   Step
		Anchor geom.Vec2
	}

	// Measure reports the distance between two clicks. First is meaningful
	// only when HasFirst is set.
	Measure struct {
		First    geom.Vec2
		HasFirst bool
	}
)

func (Normal) isMode()     {}
func (Selection) isMode()  {}
func (DrawLine) isMode()   {}
func (DrawCircle) isMode() {}
func (Move) isMode()       {}
func (Copy) isMode()       {}
func (Measure) isMode()    {}
func (CreateText) isMode() {}
func (Delete) isMode()     {}

func (Normal) String() string     { return "normal" }
func (Selection) String() string  { return "selection" }
func (DrawCircle) String() string { return "circle" }
func (CreateText) String() string { return "text" }
func (Delete) String() string     { return "delete" }

func (m DrawLine) String() string {
	if m.Ortho {
		return "line (ortho)"
	}
	return "line"
}

func (m Move) String() string { return "move: " + m.Step.String() }
func (m Copy) String() string { return "copy: " + m.Step.String() }

func (m Measure) String() string {
	if m.HasFirst {
		return fmt.Sprintf("measure from (%g, %g)", m.First.X, m.First.Y)
	}
	return "measure"
}

// DrawingState tracks a free-hand gesture independently of the tool.
type DrawingState interface {
	isDrawingState()
	String() string
}

type (
	Idle struct{}

	// WaitingForSecondPoint follows the cursor with a line's free endpoint.
	WaitingForSecondPoint struct {
		Anchor geom.Vec2
	}

	// WaitingForRadius follows the cursor with a circle's radius.
	WaitingForRadius struct {
		Anchor geom.Vec2
	}
)

func (Idle) isDrawingState()                  {}
func (WaitingForSecondPoint) isDrawingState() {}
func (WaitingForRadius) isDrawingState()      {}

func (Idle) String() string                  { return "idle" }
func (WaitingForSecondPoint) String() string { return "waiting for second point" }
func (WaitingForRadius) String() string      { return "waiting for radius" }

// waiting reports whether s is mid-gesture.
func waiting(s DrawingState) bool {
	switch s.(type) {
	case WaitingForSecondPoint, WaitingForRadius:
		return true
	}
	return false
}

// transformStep returns the move/copy progress of m, if m is one of them.
func transformStep(m Mode) (Step, bool) {
	switch m := m.(type) {
	case Move:
		return m.Step, true
	case Copy:
		return m.Step, true
	}
	return 0, false
}
