package entity

import (
	"fmt"
	"strings"
)

// Axis selects how a panel is split.
type Axis string

const (
	// AxisHorizontal divides along rows: the halves are stacked top/bottom.
	AxisHorizontal Axis = "horizontal"
	// AxisVertical divides along columns: the halves sit side by side.
	AxisVertical Axis = "vertical"
)

// ParseAxis accepts "horizontal"/"vertical" and the menu aliases "hsplit"/"vsplit".
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "hsplit", "h":
		return AxisHorizontal, nil
	case "vertical", "vsplit", "v":
		return AxisVertical, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSplitAxis, s)
}

// Valid reports whether a is one of the two split axes.
func (a Axis) Valid() bool {
	return a == AxisHorizontal || a == AxisVertical
}

// Direction names a side of a panel.
type Direction string

const (
	// DirTop is the side facing row 0.
	DirTop Direction = "top"
	// DirRight is the side facing the last column.
	DirRight Direction = "right"
	// DirBottom is the side facing the last row.
	DirBottom Direction = "bottom"
	// DirLeft is the side facing column 0.
	DirLeft Direction = "left"
)

// Directions lists the sides in menu order.
var Directions = []Direction{DirTop, DirRight, DirBottom, DirLeft}

// ParseDirection accepts top/right/bottom/left and the up/down aliases.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top", "up":
		return DirTop, nil
	case "right":
		return DirRight, nil
	case "bottom", "down":
		return DirBottom, nil
	case "left":
		return DirLeft, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidExtendDirection, s)
}

// Opposite returns the facing side.
func (d Direction) Opposite() Direction {
	switch d {
	case DirTop:
		return DirBottom
	case DirBottom:
		return DirTop
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return d
}

func (d Direction) valid() bool {
	switch d {
	case DirTop, DirRight, DirBottom, DirLeft:
		return true
	}
	return false
}
