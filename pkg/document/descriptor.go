package document

import (
	"github.com/mklettner/dropzone/pkg/errors"
	"github.com/mklettner/dropzone/pkg/hover"
)

// direction enumerates the four drop directions for level climbing.
type direction int

const (
	dirAbove direction = iota
	dirBelow
	dirLeft
	dirRight
)

// Describe derives the read-only engine descriptor for the block with the
// given ID. The per-direction maximum levels come from climbing the tree
// (see levelsFor); the inline neighbour is the first inline sibling in the
// cell's row, if any.
func (d *Document) Describe(id string) (hover.Node, error) {
	if r, ok := d.rows[id]; ok {
		return hover.Node{
			ID:     r.ID,
			Kind:   hover.KindRow,
			Levels: d.levelsFor(id),
		}, nil
	}
	c, ok := d.cells[id]
	if !ok {
		return hover.Node{}, errors.New(errors.ErrCodeNodeNotFound, "block %s", id)
	}
	n := hover.Node{
		ID:         c.ID,
		Kind:       hover.KindCell,
		Inline:     c.Inline,
		Inlineable: c.Inlineable,
		Levels:     d.levelsFor(id),
	}
	if parent, ok := d.cellParent[c.ID]; ok {
		for _, sibling := range parent.Cells {
			if sibling != c && sibling.Inline != hover.SideNone {
				n.HasInlineNeighbour = sibling.ID
				break
			}
		}
	}
	return n, nil
}

// levelsFor computes how many ancestor boundaries a drop next to the block
// may cross, per direction. A boundary can be crossed only while the block
// chain stays on the matching edge of each container: rows span their
// cell's full width, so left/right climbing crosses them freely, but a row
// sits on its cell's top edge only when it is the first row (and on the
// bottom edge only when last); cells mirror this horizontally within their
// row. Horizontal climbs stop before the root cell; there is no "left of
// the document".
func (d *Document) levelsFor(id string) hover.Levels {
	return hover.Levels{
		Above: d.climb(id, dirAbove),
		Below: d.climb(id, dirBelow),
		Left:  d.climb(id, dirLeft),
		Right: d.climb(id, dirRight),
	}
}

func (d *Document) climb(id string, dir direction) int {
	level := 0
	for {
		rowID, cellID, ok := d.parentEdge(id, dir)
		if !ok {
			return level
		}
		// rowID/cellID: exactly one is set, naming the parent we crossed to.
		if cellID != "" {
			if c := d.cells[cellID]; c == d.root && (dir == dirLeft || dir == dirRight) {
				return level
			}
			id = cellID
		} else {
			id = rowID
		}
		level++
	}
}

// parentEdge reports the parent of the block with the given ID if the
// block sits on the dir-edge of that parent. It returns the parent's ID in
// the matching slot and ok=false when the block is not on the edge or has
// no parent.
func (d *Document) parentEdge(id string, dir direction) (rowID, cellID string, ok bool) {
	if r, isRow := d.rows[id]; isRow {
		parent := d.rowParent[id]
		idx := rowIndex(parent.Rows, r)
		switch dir {
		case dirAbove:
			if idx != 0 {
				return "", "", false
			}
		case dirBelow:
			if idx != len(parent.Rows)-1 {
				return "", "", false
			}
		}
		// Rows span their cell's width, so left/right climbs cross freely.
		return "", parent.ID, true
	}
	c, isCell := d.cells[id]
	if !isCell || c == d.root {
		return "", "", false
	}
	parent := d.cellParent[id]
	idx := cellIndex(parent.Cells, c)
	switch dir {
	case dirLeft:
		if idx != 0 {
			return "", "", false
		}
	case dirRight:
		if idx != len(parent.Cells)-1 {
			return "", "", false
		}
	}
	// Cells span their row's height, so above/below climbs cross freely.
	return parent.ID, "", true
}

func rowIndex(rows []*Row, target *Row) int {
	for i, r := range rows {
		if r == target {
			return i
		}
	}
	return -1
}

func cellIndex(cells []*Cell, target *Cell) int {
	for i, c := range cells {
		if c == target {
			return i
		}
	}
	return -1
}
