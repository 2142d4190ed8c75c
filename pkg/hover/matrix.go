package hover

import (
	"fmt"

	"github.com/mklettner/dropzone/pkg/errors"
)

// ZoneClass is the symbolic category of one zone-matrix cell. The set is
// closed: every class an engine can encounter is listed here, and the
// default interpreter table is total over it.
type ZoneClass int

const (
	// ZoneNone is dead space in the middle of a block; hovering it clears
	// any pending drop intent.
	ZoneNone ZoneClass = iota

	// Corner zones are ambiguous between two directions and are split along
	// the cell diagonal at interpretation time. Numbering runs clockwise
	// from the top-left, matching the C1..C4 shorthand used in matrix
	// definitions.

	// ZoneCornerTopLeft disambiguates between leftOf and above.
	ZoneCornerTopLeft
	// ZoneCornerTopRight disambiguates between rightOf and above.
	ZoneCornerTopRight
	// ZoneCornerBottomRight disambiguates between rightOf and below.
	ZoneCornerBottomRight
	// ZoneCornerBottomLeft disambiguates between leftOf and below.
	ZoneCornerBottomLeft

	// "Here" zones insert immediately adjacent to the hovered block.

	// ZoneAboveHere inserts directly above the hovered block.
	ZoneAboveHere
	// ZoneBelowHere inserts directly below the hovered block.
	ZoneBelowHere
	// ZoneLeftHere inserts directly left of the hovered block.
	ZoneLeftHere
	// ZoneRightHere inserts directly right of the hovered block.
	ZoneRightHere

	// Ancestor zones insert next to the hovered block or one of its
	// ancestors; the pointer offset within the zone picks the level.

	// ZoneAboveAncestor inserts above the hovered block or an ancestor.
	ZoneAboveAncestor
	// ZoneBelowAncestor inserts below the hovered block or an ancestor.
	ZoneBelowAncestor
	// ZoneLeftAncestor inserts left of the hovered block or an ancestor.
	ZoneLeftAncestor
	// ZoneRightAncestor inserts right of the hovered block or an ancestor.
	ZoneRightAncestor

	// Inline zones merge the dragged cell inline with the hovered cell.
	// Only matrices for inline-capable targets contain them.

	// ZoneInlineLeft merges inline on the left.
	ZoneInlineLeft
	// ZoneInlineRight merges inline on the right.
	ZoneInlineRight
)

// zoneCodes maps classes to the two-letter shorthand used in matrix
// definitions, diagnostics and the TOML matrix file format.
var zoneCodes = map[ZoneClass]string{
	ZoneNone:              "NO",
	ZoneCornerTopLeft:     "C1",
	ZoneCornerTopRight:    "C2",
	ZoneCornerBottomRight: "C3",
	ZoneCornerBottomLeft:  "C4",
	ZoneAboveHere:         "AH",
	ZoneBelowHere:         "BH",
	ZoneLeftHere:          "LH",
	ZoneRightHere:         "RH",
	ZoneAboveAncestor:     "AA",
	ZoneBelowAncestor:     "BA",
	ZoneLeftAncestor:      "LA",
	ZoneRightAncestor:     "RA",
	ZoneInlineLeft:        "IL",
	ZoneInlineRight:       "IR",
}

// String returns the two-letter shorthand, or a numeric form for classes
// outside the built-in set.
func (z ZoneClass) String() string {
	if code, ok := zoneCodes[z]; ok {
		return code
	}
	return fmt.Sprintf("Z%d", int(z))
}

// ParseZoneClass converts a two-letter shorthand back to its class.
func ParseZoneClass(code string) (ZoneClass, error) {
	for z, c := range zoneCodes {
		if c == code {
			return z, nil
		}
	}
	return ZoneNone, errors.New(errors.ErrCodeInvalidMatrix, "unknown zone code %q", code)
}

// Matrix is an immutable rectangular grid of zone classes describing how a
// hovered block's rectangle is partitioned. Row 0 is the block's top edge,
// cell 0 its left edge. Matrices are pure data; all behavior lives in the
// interpreters.
type Matrix struct {
	rows  [][]ZoneClass
	cells int
}

// NewMatrix validates and copies the given grid. It fails with an
// INVALID_MATRIX error when the grid is empty, has an empty row, or rows of
// differing lengths. Zone classes are not checked here: the engine checks
// at construction time that an interpreter exists for every class reachable
// from its registered matrices.
func NewMatrix(rows [][]ZoneClass) (Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Matrix{}, errors.New(errors.ErrCodeInvalidMatrix, "matrix must have at least one row and one cell")
	}
	width := len(rows[0])
	copied := make([][]ZoneClass, len(rows))
	for i, r := range rows {
		if len(r) != width {
			return Matrix{}, errors.New(errors.ErrCodeInvalidMatrix,
				"matrix row %d has %d cells, want %d", i, len(r), width)
		}
		copied[i] = append([]ZoneClass(nil), r...)
	}
	return Matrix{rows: copied, cells: width}, nil
}

// MustMatrix is NewMatrix for statically known grids; it panics on error.
func MustMatrix(rows [][]ZoneClass) Matrix {
	m, err := NewMatrix(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// RowCount returns the number of grid rows.
func (m Matrix) RowCount() int { return len(m.rows) }

// CellCount returns the number of cells per row.
func (m Matrix) CellCount() int { return m.cells }

// At returns the zone class at the given index. The index must already be
// clamped into bounds; the engine's locate step guarantees that.
func (m Matrix) At(idx MatrixIndex) ZoneClass { return m.rows[idx.Row][idx.Cell] }

// classes returns the set of zone classes present in the matrix.
func (m Matrix) classes() map[ZoneClass]struct{} {
	set := make(map[ZoneClass]struct{})
	for _, row := range m.rows {
		for _, z := range row {
			set[z] = struct{}{}
		}
	}
	return set
}

// Built-in matrix names.
const (
	// MatrixDefault is the fine 10x10 grid with inline zones, used when a
	// request names no matrix.
	MatrixDefault = "10x10"
	// MatrixNoInline is the fine 10x10 grid without inline zones, for
	// targets that cannot host inline cells.
	MatrixNoInline = "10x10no-inline"
	// MatrixCoarse is the coarse symmetric 6x6 grid without inline zones
	// and without inner corners.
	MatrixCoarse = "6x6"
)

// Shorthand for readable matrix literals below.
const (
	no = ZoneNone
	c1 = ZoneCornerTopLeft
	c2 = ZoneCornerTopRight
	c3 = ZoneCornerBottomRight
	c4 = ZoneCornerBottomLeft
	ah = ZoneAboveHere
	bh = ZoneBelowHere
	lh = ZoneLeftHere
	rh = ZoneRightHere
	aa = ZoneAboveAncestor
	ba = ZoneBelowAncestor
	la = ZoneLeftAncestor
	ra = ZoneRightAncestor
	il = ZoneInlineLeft
	ir = ZoneInlineRight
)

// defaultMatrices returns the three built-in matrices. All share the same
// coordinate convention, so they are interchangeable per request.
func defaultMatrices() map[string]Matrix {
	return map[string]Matrix{
		MatrixDefault: MustMatrix([][]ZoneClass{
			{c1, aa, aa, aa, aa, aa, aa, aa, aa, c2},
			{la, c1, ah, ah, ah, ah, ah, ah, c2, ra},
			{la, lh, il, il, il, ir, ir, ir, rh, ra},
			{la, lh, il, il, il, ir, ir, ir, rh, ra},
			{la, lh, il, il, il, ir, ir, ir, rh, ra},
			{la, lh, il, il, il, ir, ir, ir, rh, ra},
			{la, lh, il, il, il, ir, ir, ir, rh, ra},
			{la, lh, il, il, il, ir, ir, ir, rh, ra},
			{la, c4, bh, bh, bh, bh, bh, bh, c3, ra},
			{c4, ba, ba, ba, ba, ba, ba, ba, ba, c3},
		}),
		MatrixNoInline: MustMatrix([][]ZoneClass{
			{c1, aa, aa, aa, aa, aa, aa, aa, aa, c2},
			{la, c1, ah, ah, ah, ah, ah, ah, c2, ra},
			{la, lh, no, no, no, no, no, no, rh, ra},
			{la, lh, no, no, no, no, no, no, rh, ra},
			{la, lh, no, no, no, no, no, no, rh, ra},
			{la, lh, no, no, no, no, no, no, rh, ra},
			{la, lh, no, no, no, no, no, no, rh, ra},
			{la, lh, no, no, no, no, no, no, rh, ra},
			{la, c4, bh, bh, bh, bh, bh, bh, c3, ra},
			{c4, ba, ba, ba, ba, ba, ba, ba, ba, c3},
		}),
		MatrixCoarse: MustMatrix([][]ZoneClass{
			{c1, aa, aa, aa, aa, c2},
			{la, ah, ah, ah, ah, ra},
			{la, lh, no, no, rh, ra},
			{la, lh, no, no, rh, ra},
			{la, bh, bh, bh, bh, ra},
			{c4, ba, ba, ba, ba, c3},
		}),
	}
}
