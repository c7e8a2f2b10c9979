package editor

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidLength is returned for numeric input that is not a positive number.
var ErrInvalidLength = errors.New("length must be a positive number")

// NumericInput buffers digits typed while a shape is being drawn.
type NumericInput struct {
	buf []rune
}

// Push appends r if it is a digit or a decimal point.
func (n *NumericInput) Push(r rune) bool {
	if (r < '0' || r > '9') && r != '.' {
		return false
	}
	n.buf = append(n.buf, r)
	return true
}

// Backspace drops the last character.
func (n *NumericInput) Backspace() {
	if len(n.buf) > 0 {
		n.buf = n.buf[:len(n.buf)-1]
	}
}

func (n *NumericInput) Clear() { n.buf = n.buf[:0] }

func (n *NumericInput) String() string { return string(n.buf) }

// Value parses the buffer as a positive number that fits in a float32.
func (n *NumericInput) Value() (float64, error) {
	return parseLength(string(n.buf))
}

func parseLength(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || v <= 0 || v > math.MaxFloat32 {
		return 0, ErrInvalidLength
	}
	return v, nil
}
