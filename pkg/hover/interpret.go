package hover

// Interpreter turns a classified zone plus the positional context into at
// most one call on the Actions dispatch. Interpreters are pure decision
// functions; returning without dispatching is a valid terminal outcome,
// not a failure.
type Interpreter func(drag, hov Node, actions Actions, ctx *Context)

// inlineFallbackLevel is the fixed "deep" level used when an inline zone
// cannot inline-merge and falls back to a directional insert. The value is
// tuned to the ancestor-level scale of the built-in 10x10 matrix.
const inlineFallbackLevel = 2

// defaultInterpreters returns the built-in interpreter table, total over
// the built-in zone classes.
func defaultInterpreters() map[ZoneClass]Interpreter {
	return map[ZoneClass]Interpreter{
		ZoneNone:              interpretNone,
		ZoneCornerTopLeft:     interpretCornerTopLeft,
		ZoneCornerTopRight:    interpretCornerTopRight,
		ZoneCornerBottomRight: interpretCornerBottomRight,
		ZoneCornerBottomLeft:  interpretCornerBottomLeft,
		ZoneAboveHere:         interpretAboveHere,
		ZoneBelowHere:         interpretBelowHere,
		ZoneLeftHere:          interpretLeftHere,
		ZoneRightHere:         interpretRightHere,
		ZoneAboveAncestor:     interpretAboveAncestor,
		ZoneBelowAncestor:     interpretBelowAncestor,
		ZoneLeftAncestor:      interpretLeftAncestor,
		ZoneRightAncestor:     interpretRightAncestor,
		ZoneInlineLeft:        interpretInlineLeft,
		ZoneInlineRight:       interpretInlineRight,
	}
}

func interpretNone(_, _ Node, actions Actions, _ *Context) {
	actions.Clear()
}

// relativePosition returns the pointer offset within the located matrix
// cell. Corner interpreters split this cell along its diagonal.
func relativePosition(ctx *Context) Vector {
	return Vector{
		X: ctx.Mouse.X - float64(ctx.Index.Cell)*ctx.Scale.X,
		Y: ctx.Mouse.Y - float64(ctx.Index.Row)*ctx.Scale.Y,
	}
}

// hereLevel is the minimal level for edge and corner drops: 0, or 1 when
// the hovered cell is inline, since level 0 is not selectable there.
func hereLevel(hov Node) int {
	if hov.IsInline() {
		return 1
	}
	return 0
}

// Corner zones are ambiguous between two adjacent directions. The diagonal
// of the located cell decides: for the top-left corner, a pointer below
// the diagonal (x < y) is closer to the left edge and picks leftOf, above
// it picks above. The other corners mirror accordingly. Ties go to the
// vertical direction.

func interpretCornerTopLeft(drag, hov Node, actions Actions, ctx *Context) {
	rel := relativePosition(ctx)
	if rel.X < rel.Y {
		actions.LeftOf(drag, hov, hereLevel(hov))
		return
	}
	actions.Above(drag, hov, hereLevel(hov))
}

func interpretCornerTopRight(drag, hov Node, actions Actions, ctx *Context) {
	rel := relativePosition(ctx)
	if rel.X > rel.Y {
		actions.RightOf(drag, hov, hereLevel(hov))
		return
	}
	actions.Above(drag, hov, hereLevel(hov))
}

func interpretCornerBottomRight(drag, hov Node, actions Actions, ctx *Context) {
	rel := relativePosition(ctx)
	if rel.X > rel.Y {
		actions.RightOf(drag, hov, hereLevel(hov))
		return
	}
	actions.Below(drag, hov, hereLevel(hov))
}

func interpretCornerBottomLeft(drag, hov Node, actions Actions, ctx *Context) {
	rel := relativePosition(ctx)
	if rel.X < rel.Y {
		actions.LeftOf(drag, hov, hereLevel(hov))
		return
	}
	actions.Below(drag, hov, hereLevel(hov))
}

// "Here" zones need no positional math: the level is always minimal.

func interpretAboveHere(drag, hov Node, actions Actions, _ *Context) {
	actions.Above(drag, hov, hereLevel(hov))
}

func interpretBelowHere(drag, hov Node, actions Actions, _ *Context) {
	actions.Below(drag, hov, hereLevel(hov))
}

func interpretLeftHere(drag, hov Node, actions Actions, _ *Context) {
	actions.LeftOf(drag, hov, hereLevel(hov))
}

func interpretRightHere(drag, hov Node, actions Actions, _ *Context) {
	actions.RightOf(drag, hov, hereLevel(hov))
}

// Ancestor zones resolve the level from the pointer offset against the
// hovered node's per-direction maximum. Above and left invert the band
// scan; below and right do not. See horizontalLevel.

func interpretAboveAncestor(drag, hov Node, actions Actions, ctx *Context) {
	actions.Above(drag, hov, verticalLevel(ctx, hov, hov.Levels.Above, true))
}

func interpretBelowAncestor(drag, hov Node, actions Actions, ctx *Context) {
	actions.Below(drag, hov, verticalLevel(ctx, hov, hov.Levels.Below, false))
}

func interpretLeftAncestor(drag, hov Node, actions Actions, ctx *Context) {
	actions.LeftOf(drag, hov, horizontalLevel(ctx, hov, hov.Levels.Left, true))
}

func interpretRightAncestor(drag, hov Node, actions Actions, ctx *Context) {
	actions.RightOf(drag, hov, horizontalLevel(ctx, hov, hov.Levels.Right, false))
}

// canInline reports whether drag may merge inline with hov on the given
// side. Merging is off the table when hov is itself inline, when drag's
// content cannot float, or when hov already has an inline neighbour other
// than drag, or drag itself but on the opposite side.
func canInline(drag, hov Node, side Side) bool {
	if hov.IsInline() {
		return false
	}
	if !drag.Inlineable {
		return false
	}
	if hov.HasInlineNeighbour != "" {
		if hov.HasInlineNeighbour != drag.ID {
			return false
		}
		if drag.Inline != side {
			return false
		}
	}
	return true
}

// Inline zones: rows can never take part in inline placement, so either
// row silently ends the interpretation. A disqualified merge falls back to
// a directional insert at the fixed deep level instead, which places the
// dragged cell next to the hovered cell's inline group rather than inside
// it.

func interpretInlineLeft(drag, hov Node, actions Actions, _ *Context) {
	if drag.IsRow() || hov.IsRow() {
		return
	}
	if !canInline(drag, hov, SideLeft) {
		actions.LeftOf(drag, hov, inlineFallbackLevel)
		return
	}
	actions.InlineLeft(drag, hov)
}

func interpretInlineRight(drag, hov Node, actions Actions, _ *Context) {
	if drag.IsRow() || hov.IsRow() {
		return
	}
	if !canInline(drag, hov, SideRight) {
		actions.RightOf(drag, hov, inlineFallbackLevel)
		return
	}
	actions.InlineRight(drag, hov)
}
