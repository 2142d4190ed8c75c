package hover

import "math"

// Vector is a 2-tuple of pixel coordinates. It doubles as a position
// (pointer offset within the hovered rectangle) and as a per-cell scale
// (width and height of one matrix cell).
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Room is the pixel rectangle of the hovered block, the area being
// hit-tested. Both dimensions must be positive; degenerate rooms are
// rejected by [Engine.Hover] before any scale is computed.
type Room struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// IsDegenerate reports whether the room cannot produce a finite scale.
func (r Room) IsDegenerate() bool {
	return r.Width <= 0 || r.Height <= 0 ||
		math.IsNaN(r.Width) || math.IsNaN(r.Height) ||
		math.IsInf(r.Width, 0) || math.IsInf(r.Height, 0)
}

// MatrixIndex identifies one cell of a zone matrix. Row 0 is the top edge,
// cell 0 the left edge. Indexes produced by the engine are always clamped
// into the matrix bounds.
type MatrixIndex struct {
	Row  int `json:"row"`
	Cell int `json:"cell"`
}

// scaleFor maps the room onto the matrix grid: the width and height of a
// single matrix cell in pixels. The matrix validation guarantees non-zero
// dimensions, so the result is finite for non-degenerate rooms.
func scaleFor(room Room, m Matrix) Vector {
	return Vector{
		X: room.Width / float64(m.CellCount()),
		Y: room.Height / float64(m.RowCount()),
	}
}

// locate maps a pointer position to a matrix cell by floor division with
// the scale. Positions outside the room clamp to the nearest border cell;
// an out-of-range pointer is expected during fast drags, not an error.
func locate(mouse, scale Vector, m Matrix) MatrixIndex {
	row := int(math.Floor(mouse.Y / scale.Y))
	cell := int(math.Floor(mouse.X / scale.X))
	return MatrixIndex{
		Row:  clampInt(row, 0, m.RowCount()-1),
		Cell: clampInt(cell, 0, m.CellCount()-1),
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
