package document

import (
	"github.com/mklettner/dropzone/pkg/errors"
	"github.com/mklettner/dropzone/pkg/hover"
	"github.com/mklettner/dropzone/pkg/observability"
)

// Op names a drop operation signalled by the hover engine.
type Op string

// Drop operations.
const (
	OpAbove       Op = "above"
	OpBelow       Op = "below"
	OpLeftOf      Op = "leftOf"
	OpRightOf     Op = "rightOf"
	OpInlineLeft  Op = "inlineLeft"
	OpInlineRight Op = "inlineRight"
)

// Intent is one drop decision as signalled by the engine: which operation,
// between which blocks, at which nesting level. Level is -1 for inline
// operations, which have no depth.
type Intent struct {
	Op    Op
	Drag  hover.Node
	Hover hover.Node
	Level int
}

// Editor is the mutation layer: it implements [hover.Actions] by recording
// the engine's latest drop intent during a drag, and commits that intent
// to the document when the user releases the pointer.
//
// Like the engine, an Editor belongs to a single goroutine.
type Editor struct {
	doc     *Document
	pending *Intent
}

// NewEditor creates an editor over doc.
func NewEditor(doc *Document) *Editor {
	return &Editor{doc: doc}
}

// Document returns the edited document.
func (e *Editor) Document() *Document { return e.doc }

// Pending returns a copy of the current drop intent, if any.
func (e *Editor) Pending() (Intent, bool) {
	if e.pending == nil {
		return Intent{}, false
	}
	return *e.pending, true
}

// Clear implements hover.Actions by retracting the pending intent.
func (e *Editor) Clear() { e.pending = nil }

// Above implements hover.Actions.
func (e *Editor) Above(drag, hov hover.Node, level int) {
	e.signal(OpAbove, drag, hov, level)
}

// Below implements hover.Actions.
func (e *Editor) Below(drag, hov hover.Node, level int) {
	e.signal(OpBelow, drag, hov, level)
}

// LeftOf implements hover.Actions.
func (e *Editor) LeftOf(drag, hov hover.Node, level int) {
	e.signal(OpLeftOf, drag, hov, level)
}

// RightOf implements hover.Actions.
func (e *Editor) RightOf(drag, hov hover.Node, level int) {
	e.signal(OpRightOf, drag, hov, level)
}

// InlineLeft implements hover.Actions.
func (e *Editor) InlineLeft(drag, hov hover.Node) {
	e.signal(OpInlineLeft, drag, hov, -1)
}

// InlineRight implements hover.Actions.
func (e *Editor) InlineRight(drag, hov hover.Node) {
	e.signal(OpInlineRight, drag, hov, -1)
}

func (e *Editor) signal(op Op, drag, hov hover.Node, level int) {
	e.pending = &Intent{Op: op, Drag: drag, Hover: hov, Level: level}
	observability.Edit().OnIntent(string(op), drag.ID, hov.ID, level)
}

// Drop commits the pending intent: the dragged cell is detached from its
// current position and inserted relative to the hovered block's level-th
// ancestor. On success the pending intent is cleared.
//
// Row blocks cannot be dragged (UNSUPPORTED), a drop into the dragged
// subtree is rejected (INVALID_REQUEST), and a target that would disappear
// when detaching the dragged cell empties its old row is reported as
// NODE_NOT_FOUND. A rejected Drop leaves the document unchanged.
func (e *Editor) Drop() error {
	p := e.pending
	if p == nil {
		return errors.New(errors.ErrCodeInvalidRequest, "no pending drop intent")
	}

	if _, isRow := e.doc.RowByID(p.Drag.ID); isRow {
		return errors.New(errors.ErrCodeUnsupported, "dragging rows is not supported")
	}
	dragCell, ok := e.doc.CellByID(p.Drag.ID)
	if !ok {
		return errors.New(errors.ErrCodeNodeNotFound, "dragged cell %s", p.Drag.ID)
	}

	level := p.Level
	if level < 0 {
		level = 0 // inline ops target the hovered cell itself
	}
	targetID, err := e.doc.ancestorAt(p.Hover.ID, level)
	if err != nil {
		return err
	}
	if e.doc.contains(dragCell, targetID) {
		return errors.New(errors.ErrCodeInvalidRequest,
			"cannot drop %s into its own subtree", p.Drag.ID)
	}

	if e.doc.detachRemoves(p.Drag.ID)[targetID] {
		return errors.New(errors.ErrCodeNodeNotFound, "drop target %s would be pruned", targetID)
	}
	if _, err := e.doc.detachCell(p.Drag.ID); err != nil {
		return err
	}

	switch p.Op {
	case OpAbove:
		err = e.doc.insertVertical(dragCell, targetID, true)
	case OpBelow:
		err = e.doc.insertVertical(dragCell, targetID, false)
	case OpLeftOf:
		err = e.doc.insertHorizontal(dragCell, targetID, true)
	case OpRightOf:
		err = e.doc.insertHorizontal(dragCell, targetID, false)
	case OpInlineLeft:
		err = e.doc.insertInline(dragCell, targetID, hover.SideLeft)
	case OpInlineRight:
		err = e.doc.insertInline(dragCell, targetID, hover.SideRight)
	default:
		err = errors.New(errors.ErrCodeUnsupported, "unknown drop operation %q", p.Op)
	}
	if err != nil {
		return err
	}
	if err := e.doc.reindex(); err != nil {
		return err
	}

	observability.Edit().OnApply(string(p.Op), p.Drag.ID, p.Hover.ID, p.Level)
	e.pending = nil
	return nil
}

// exists reports whether a block with the given ID is still in the tree.
func (d *Document) exists(id string) bool {
	if _, ok := d.rows[id]; ok {
		return true
	}
	_, ok := d.cells[id]
	return ok
}

// ancestorAt climbs level steps up the parent chain from the block with
// the given ID and returns the ancestor's ID. Level 0 is the block itself.
func (d *Document) ancestorAt(id string, level int) (string, error) {
	for i := 0; i < level; i++ {
		if r, ok := d.rows[id]; ok {
			id = d.rowParent[r.ID].ID
			continue
		}
		c, ok := d.cells[id]
		if !ok {
			return "", errors.New(errors.ErrCodeNodeNotFound, "block %s", id)
		}
		if c == d.root {
			return "", errors.New(errors.ErrCodeInvalidLevel,
				"level %d exceeds the ancestry of %s", level, id)
		}
		id = d.cellParent[c.ID].ID
	}
	if !d.exists(id) {
		return "", errors.New(errors.ErrCodeNodeNotFound, "block %s", id)
	}
	return id, nil
}

// insertVertical places drag in a new row above or below the target
// block. Row targets get a sibling row; layout cells (including the root)
// get the new row as their first or last row; leaf cells are wrapped into
// a vertical split in place.
func (d *Document) insertVertical(drag *Cell, targetID string, before bool) error {
	drag.Inline = hover.SideNone
	if r, ok := d.rows[targetID]; ok {
		parent := d.rowParent[targetID]
		idx := rowIndex(parent.Rows, r)
		if !before {
			idx++
		}
		parent.Rows = insertRowAt(parent.Rows, idx, NewRow(drag))
		return nil
	}
	c, ok := d.cells[targetID]
	if !ok {
		return errors.New(errors.ErrCodeNodeNotFound, "block %s", targetID)
	}
	if c.IsLayout() || c == d.root {
		idx := 0
		if !before {
			idx = len(c.Rows)
		}
		c.Rows = insertRowAt(c.Rows, idx, NewRow(drag))
		return nil
	}
	parent := d.cellParent[targetID]
	idx := cellIndex(parent.Cells, c)
	rows := []*Row{NewRow(drag), NewRow(c)}
	if !before {
		rows[0], rows[1] = rows[1], rows[0]
	}
	parent.Cells[idx] = NewLayoutCell(rows...)
	return nil
}

// insertHorizontal places drag beside the target block. Cell targets get
// drag as a row sibling; row targets are wrapped into a layout cell that
// shares a new row with drag.
func (d *Document) insertHorizontal(drag *Cell, targetID string, before bool) error {
	drag.Inline = hover.SideNone
	if c, ok := d.cells[targetID]; ok {
		if c == d.root {
			return errors.New(errors.ErrCodeInvalidLevel, "cannot insert beside the document root")
		}
		parent := d.cellParent[targetID]
		idx := cellIndex(parent.Cells, c)
		if !before {
			idx++
		}
		parent.Cells = insertCellAt(parent.Cells, idx, drag)
		return nil
	}
	r, ok := d.rows[targetID]
	if !ok {
		return errors.New(errors.ErrCodeNodeNotFound, "block %s", targetID)
	}
	parent := d.rowParent[targetID]
	idx := rowIndex(parent.Rows, r)
	cells := []*Cell{drag, NewLayoutCell(r)}
	if !before {
		cells[0], cells[1] = cells[1], cells[0]
	}
	parent.Rows[idx] = NewRow(cells...)
	return nil
}

// insertInline floats drag next to the hovered cell. The inline cell
// leads its row; the renderer floats it to the marked side.
func (d *Document) insertInline(drag *Cell, hoverID string, side hover.Side) error {
	hov, ok := d.cells[hoverID]
	if !ok || hov == d.root {
		return errors.New(errors.ErrCodeNodeNotFound, "block %s", hoverID)
	}
	parent := d.cellParent[hoverID]
	drag.Inline = side
	idx := cellIndex(parent.Cells, hov)
	parent.Cells = insertCellAt(parent.Cells, idx, drag)
	return nil
}

func insertRowAt(rows []*Row, idx int, r *Row) []*Row {
	rows = append(rows, nil)
	copy(rows[idx+1:], rows[idx:])
	rows[idx] = r
	return rows
}

func insertCellAt(cells []*Cell, idx int, c *Cell) []*Cell {
	cells = append(cells, nil)
	copy(cells[idx+1:], cells[idx:])
	cells[idx] = c
	return cells
}
