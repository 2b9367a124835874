package dock

import "strings"

// Side names an edge of a region. It is used both for header placement and
// for the edge a dragged dockable is dropped against. The zero value
// [SideNone] means "no split requested".
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

var sideNames = [...]string{"none", "top", "bottom", "left", "right"}

func (s Side) String() string {
	if s < SideNone || int(s) >= len(sideNames) {
		return "unknown"
	}
	return sideNames[s]
}

// ParseSide parses a case-insensitive side name. The empty string parses as
// [SideNone].
func ParseSide(name string) (Side, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return SideNone, true
	}
	for i, n := range sideNames {
		if n == name {
			return Side(i), true
		}
	}
	return SideNone, false
}

// Horizontal reports whether s is a horizontal edge (top or bottom).
func (s Side) Horizontal() bool { return s == SideTop || s == SideBottom }

// Vertical reports whether s is a vertical edge (left or right).
func (s Side) Vertical() bool { return s == SideLeft || s == SideRight }

// SameAxis reports whether s and o are both horizontal edges or both
// vertical edges.
func (s Side) SameAxis(o Side) bool {
	return (s.Horizontal() && o.Horizontal()) || (s.Vertical() && o.Vertical())
}

// Leading reports whether a sibling placed against s comes first in its
// split (top and left).
func (s Side) Leading() bool { return s == SideTop || s == SideLeft }

// Axis returns the split axis that places a sibling against s. Top and
// bottom stack vertically; everything else, including SideNone, lays out
// horizontally.
func (s Side) Axis() Axis {
	if s.Horizontal() {
		return AxisVertical
	}
	return AxisHorizontal
}

// Axis is the direction along which a [Split] lays out its children.
type Axis int

const (
	// AxisHorizontal places children left to right.
	AxisHorizontal Axis = iota
	// AxisVertical places children top to bottom.
	AxisVertical
)

func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}
