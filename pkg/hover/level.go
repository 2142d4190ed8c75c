package hover

import "math"

// margin is the fixed gap, in pixels, reserved between two adjacent level
// bands. The band scan below offsets every boundary by this gap so that
// neighbouring levels never touch.
const margin = 2

// levelAt converts a continuous offset along one axis into a discrete
// nesting level in [0, levels].
//
// For rooms too small to fit one margin per band (size <= (levels+1)*2) it
// degrades to a plain proportional split. Otherwise it scans a set of
// nested bands whose width halves at every deeper level: the outermost
// level 0 gets the widest strip, the innermost the narrowest. Boundary i
// sits at the running half-sum of the spare space, shifted inward by
// i*margin; a position past the final boundary clamps to the deepest
// level. The margin terms shift each band's half-open interval and are
// load-bearing: changing them moves every perceived drop zone.
func levelAt(size float64, levels int, position float64) int {
	if levels <= 0 {
		return 0
	}

	if size <= float64((levels+1)*margin) {
		at := int(math.Round(position / (size / float64(levels))))
		return clampInt(at, 0, levels)
	}

	spare := size - float64((levels+1)*margin)
	bounds := make([]float64, 1, levels+2)
	current := spare
	for i := 0; i <= levels; i++ {
		bounds = append(bounds, bounds[i]+current/2)
		current /= 2
		if position >= bounds[i]+float64(i*margin) && position < bounds[i+1]+float64((i+1)*margin) {
			return i
		}
	}
	return levels
}

// horizontalLevel resolves the nesting level along the x axis.
//
// inv flips the scan direction: left-side ancestor zones measure from the
// far (left) edge inward, so their raw band index must be inverted to make
// level 0 mean "nearest". Right-side zones count outward and stay as-is.
// The asymmetry mirrors how the zone matrices are laid out; do not "fix"
// it, mirrored zones are a visible bug.
//
// Two overrides apply after the geometric scan: a hovered row always
// yields the maximum level (rows have no inline nesting of their own), and
// an inline hovered cell bumps level 0 to 1, because "directly beside" is
// not selectable next to an inline cell.
func horizontalLevel(ctx *Context, hov Node, levels int, inv bool) int {
	at := levelAt(ctx.Room.Width, levels, ctx.Mouse.X)
	if inv {
		at = levels - at
	}
	return adjustLevel(at, hov, levels)
}

// verticalLevel resolves the nesting level along the y axis. See
// horizontalLevel for the inv convention and the post-scan overrides.
func verticalLevel(ctx *Context, hov Node, levels int, inv bool) int {
	at := levelAt(ctx.Room.Height, levels, ctx.Mouse.Y)
	if inv {
		at = levels - at
	}
	return adjustLevel(at, hov, levels)
}

func adjustLevel(at int, hov Node, levels int) int {
	if hov.IsRow() {
		return levels
	}
	if hov.IsInline() && at == 0 {
		return 1
	}
	return at
}
