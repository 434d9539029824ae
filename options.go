// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package outpaint

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"

	"github.com/gogpu/outpaint/internal/geom"
)

// Percentage bounds accepted by NewOptions. The host widget offers the same
// range at PercentageStep granularity.
const (
	MinPercentage     = 0.1
	MaxPercentage     = 0.5
	DefaultPercentage = 0.2
	PercentageStep    = 0.01
)

// Direction is the edge of the image that is extended or overlaid.
type Direction uint8

const (
	// Top extends or overlays the top rows.
	Top Direction = iota
	// Bottom extends or overlays the bottom rows.
	Bottom
	// Left extends or overlays the left columns.
	Left
	// Right extends or overlays the right columns.
	Right
)

var directionNames = [...]string{"top", "bottom", "left", "right"}

// String returns the lower-case direction name.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// IsValid reports whether d is one of the four directions.
func (d Direction) IsValid() bool { return d <= Right }

// side maps the direction onto its axis and end.
func (d Direction) side() geom.Side {
	switch d {
	case Top:
		return geom.Side{Axis: geom.Rows, Leading: true}
	case Bottom:
		return geom.Side{Axis: geom.Rows, Leading: false}
	case Left:
		return geom.Side{Axis: geom.Cols, Leading: true}
	default:
		return geom.Side{Axis: geom.Cols, Leading: false}
	}
}

// Mode selects how new content is composed with the original.
type Mode uint8

const (
	// Outside grows the image: new content is appended beyond its bounds.
	Outside Mode = iota
	// Inside replaces content within the existing bounds.
	Inside
)

var modeNames = [...]string{"outside", "inside"}

// String returns the lower-case mode name.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// IsValid reports whether m is Outside or Inside.
func (m Mode) IsValid() bool { return m <= Inside }

var fold = cases.Fold()

// ParseDirection parses a direction name case-insensitively.
func ParseDirection(s string) (Direction, error) {
	name := fold.String(strings.TrimSpace(s))
	for i, n := range directionNames {
		if name == n {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown direction %q", ErrInvalidConfiguration, s)
}

// ParseMode parses a mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	name := fold.String(strings.TrimSpace(s))
	for i, n := range modeNames {
		if name == n {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfiguration, s)
}

// Options is the immutable expansion descriptor shared by Expand and Merge.
// The zero value is not valid; construct it with NewOptions.
type Options struct {
	direction  Direction
	mode       Mode
	percentage float64
}

// NewOptions validates and returns an option descriptor.
// percentage is the fraction of the height (top/bottom) or width (left/right)
// that is added or overlaid, and must lie in [MinPercentage, MaxPercentage].
func NewOptions(direction Direction, mode Mode, percentage float64) (Options, error) {
	if !direction.IsValid() {
		return Options{}, fmt.Errorf("%w: direction %s", ErrInvalidConfiguration, direction)
	}
	if !mode.IsValid() {
		return Options{}, fmt.Errorf("%w: mode %s", ErrInvalidConfiguration, mode)
	}
	if math.IsNaN(percentage) || percentage < MinPercentage || percentage > MaxPercentage {
		return Options{}, fmt.Errorf("%w: percentage %v outside [%v, %v]",
			ErrInvalidConfiguration, percentage, MinPercentage, MaxPercentage)
	}
	return Options{direction: direction, mode: mode, percentage: percentage}, nil
}

// MustOptions is like NewOptions but panics on invalid input.
// It is intended for constants in tests and examples.
func MustOptions(direction Direction, mode Mode, percentage float64) Options {
	o, err := NewOptions(direction, mode, percentage)
	if err != nil {
		panic(err)
	}
	return o
}

// Direction returns the expansion edge.
func (o Options) Direction() Direction { return o.direction }

// Mode returns the composition mode.
func (o Options) Mode() Mode { return o.mode }

// Percentage returns the expansion fraction.
func (o Options) Percentage() float64 { return o.percentage }

// validate rejects the zero value and anything built without NewOptions.
func (o Options) validate() error {
	_, err := NewOptions(o.direction, o.mode, o.percentage)
	return err
}

// Extent returns the image size along the axis the direction extends:
// the height for Top/Bottom, the width for Left/Right.
func (o Options) Extent(height, width int) int {
	if o.direction.side().Axis == geom.Rows {
		return height
	}
	return width
}

// ExpandSize returns the number of rows or columns reserved for new content
// on an axis of the given extent: ceil(extent*percentage), clamped to
// [1, extent-1]. An extent of 1 yields 1.
//
// The product is rounded to 1e-9 before ceil so that binary floating-point
// error (10*0.3 = 3.0000000000000004) does not claim an extra row.
func (o Options) ExpandSize(extent int) int {
	raw := float64(extent) * o.percentage
	n := int(math.Ceil(math.Round(raw*1e9) / 1e9))
	if n > extent-1 {
		n = extent - 1
	}
	return max(n, 1)
}

// String returns e.g. "top/outside/0.25".
func (o Options) String() string {
	return fmt.Sprintf("%s/%s/%g", o.direction, o.mode, o.percentage)
}
