// Package geom maps an expansion edge onto spans of a row-major plane.
//
// All four expansion directions reduce to one Side: an Axis (rows for
// top/bottom, columns for left/right) and whether the edge is the leading
// (top, left) or trailing (bottom, right) end of that axis. Every slicing
// decision in the engines goes through Side so the bounds arithmetic exists
// exactly once.
package geom

// Axis selects the spatial dimension an edge lies on.
type Axis uint8

const (
	// Rows is the height axis (top and bottom edges).
	Rows Axis = iota
	// Cols is the width axis (left and right edges).
	Cols
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case Rows:
		return "rows"
	case Cols:
		return "cols"
	default:
		return "unknown"
	}
}

// Span is a half-open index range [Start, End) along an axis.
type Span struct {
	Start, End int
}

// Len returns the number of indices in the span.
func (s Span) Len() int { return s.End - s.Start }

// Side is an edge of the plane: an axis plus which end of it.
type Side struct {
	Axis    Axis
	Leading bool
}

// Extent returns the size of the plane along the side's axis.
func (s Side) Extent(p Plane) int {
	if s.Axis == Rows {
		return p.H
	}
	return p.W
}

// Band returns the n indices adjacent to the edge.
func (s Side) Band(extent, n int) Span {
	if s.Leading {
		return Span{0, n}
	}
	return Span{extent - n, extent}
}

// Rest returns the extent-n indices away from the edge.
func (s Side) Rest(extent, n int) Span {
	if s.Leading {
		return Span{n, extent}
	}
	return Span{0, extent - n}
}

// Shift returns where content lands when it is pushed n indices away from
// the edge: src is the part that stays visible, dst is where it goes.
// The n indices pushed past the far edge are dropped.
func (s Side) Shift(extent, n int) (src, dst Span) {
	if s.Leading {
		return Span{0, extent - n}, Span{n, extent}
	}
	return Span{n, extent}, Span{0, extent - n}
}

// Grow returns the layout of a plane grown by n along the edge: where the
// new strip goes and where the original extent goes.
func (s Side) Grow(extent, n int) (strip, body Span) {
	if s.Leading {
		return Span{0, n}, Span{n, extent + n}
	}
	return Span{extent, extent + n}, Span{0, extent}
}

// Grown returns p with its extent along the side's axis increased by n.
func (s Side) Grown(p Plane, n int) Plane {
	if s.Axis == Rows {
		p.H += n
	} else {
		p.W += n
	}
	return p
}
