package document

import (
	"github.com/google/uuid"

	"github.com/mklettner/dropzone/pkg/errors"
	"github.com/mklettner/dropzone/pkg/hover"
)

// Row is a horizontal container of cells. Cells in a row share the row's
// top and bottom edges; only the first and last cell touch its sides.
type Row struct {
	ID    string  `json:"id"`
	Cells []*Cell `json:"cells"`
}

// Cell is a block inside a row. A leaf cell carries content (the name of
// the plugin rendering it); a layout cell nests further rows instead.
// Exactly one of Content and Rows may be set.
type Cell struct {
	ID      string `json:"id"`
	Content string `json:"content,omitempty"`
	Rows    []*Row `json:"rows,omitempty"`

	// Inline floats the cell next to a sibling instead of stacking it.
	Inline hover.Side `json:"inline,omitempty"`

	// Inlineable reports whether the cell's content supports floating
	// inline next to another cell.
	Inlineable bool `json:"inlineable,omitempty"`
}

// IsLayout reports whether the cell nests rows rather than content.
func (c *Cell) IsLayout() bool { return len(c.Rows) > 0 }

// NewRow creates a row with a fresh ID.
func NewRow(cells ...*Cell) *Row {
	return &Row{ID: uuid.NewString(), Cells: cells}
}

// NewContentCell creates a leaf cell with a fresh ID.
func NewContentCell(content string) *Cell {
	return &Cell{ID: uuid.NewString(), Content: content}
}

// NewLayoutCell creates a layout cell with a fresh ID.
func NewLayoutCell(rows ...*Row) *Cell {
	return &Cell{ID: uuid.NewString(), Rows: rows}
}

// Document owns a block tree and the indexes needed to navigate it. The
// root is an implicit layout cell; its rows are the document's top-level
// rows.
//
// The zero value is not usable; use [New]. Documents are not safe for
// concurrent use.
type Document struct {
	root *Cell

	rows       map[string]*Row
	cells      map[string]*Cell
	rowParent  map[string]*Cell // row ID -> containing cell
	cellParent map[string]*Row  // cell ID -> containing row
}

// New creates a document from top-level rows. It fails with an
// INVALID_DOCUMENT error on duplicate IDs or on a cell carrying both
// content and nested rows.
func New(rows ...*Row) (*Document, error) {
	d := &Document{root: &Cell{ID: uuid.NewString(), Rows: rows}}
	if err := d.reindex(); err != nil {
		return nil, err
	}
	return d, nil
}

// Root returns the implicit root layout cell.
func (d *Document) Root() *Cell { return d.root }

// RowByID returns the row with the given ID, if present.
func (d *Document) RowByID(id string) (*Row, bool) {
	r, ok := d.rows[id]
	return r, ok
}

// CellByID returns the cell with the given ID, if present.
func (d *Document) CellByID(id string) (*Cell, bool) {
	c, ok := d.cells[id]
	return c, ok
}

// reindex rebuilds the lookup and parent maps from the tree and validates
// structural invariants. Mutations call it after every change; the tree is
// small (a visible page of blocks), so a full rebuild is cheaper than
// incremental bookkeeping is worth.
func (d *Document) reindex() error {
	d.rows = make(map[string]*Row)
	d.cells = make(map[string]*Cell)
	d.rowParent = make(map[string]*Cell)
	d.cellParent = make(map[string]*Row)
	return d.indexCell(d.root)
}

func (d *Document) indexCell(c *Cell) error {
	if c.ID == "" {
		return errors.New(errors.ErrCodeInvalidDocument, "cell without ID")
	}
	if _, dup := d.cells[c.ID]; dup {
		return errors.New(errors.ErrCodeInvalidDocument, "duplicate cell ID %s", c.ID)
	}
	if c.Content != "" && len(c.Rows) > 0 {
		return errors.New(errors.ErrCodeInvalidDocument, "cell %s has both content and rows", c.ID)
	}
	d.cells[c.ID] = c
	for _, r := range c.Rows {
		if r.ID == "" {
			return errors.New(errors.ErrCodeInvalidDocument, "row without ID in cell %s", c.ID)
		}
		if _, dup := d.rows[r.ID]; dup {
			return errors.New(errors.ErrCodeInvalidDocument, "duplicate row ID %s", r.ID)
		}
		d.rows[r.ID] = r
		d.rowParent[r.ID] = c
		for _, child := range r.Cells {
			d.cellParent[child.ID] = r
			if err := d.indexCell(child); err != nil {
				return err
			}
		}
	}
	return nil
}

// contains reports whether the subtree rooted at ancestorCell contains the
// block with the given ID.
func (d *Document) contains(ancestorCell *Cell, id string) bool {
	if ancestorCell.ID == id {
		return true
	}
	for _, r := range ancestorCell.Rows {
		if r.ID == id {
			return true
		}
		for _, c := range r.Cells {
			if d.contains(c, id) {
				return true
			}
		}
	}
	return false
}

// detachCell removes the cell from its parent row and prunes the tree:
// rows left empty disappear, and a layout cell reduced to a single row
// with a single cell collapses into that cell. Returns NODE_NOT_FOUND if
// the ID is unknown or names the root.
func (d *Document) detachCell(id string) (*Cell, error) {
	c, ok := d.cells[id]
	if !ok || c == d.root {
		return nil, errors.New(errors.ErrCodeNodeNotFound, "cell %s", id)
	}
	parent := d.cellParent[id]
	parent.Cells = removeCell(parent.Cells, c)
	d.prune()
	if err := d.reindex(); err != nil {
		return nil, err
	}
	return c, nil
}

func removeCell(cells []*Cell, target *Cell) []*Cell {
	out := cells[:0]
	for _, c := range cells {
		if c != target {
			out = append(out, c)
		}
	}
	return out
}

// detachRemoves returns the IDs that detaching the given cell would remove
// from the tree, without mutating it. It mirrors the pruning rules of
// [Document.prune]: the detached cell's row disappears when emptied, a
// layout cell without rows disappears with it, and a layout cell reduced
// to one row with one cell collapses, taking the row's ID with it. Because
// the tree is kept in normal form after every mutation, the fallout runs
// strictly up the detached cell's ancestor chain.
func (d *Document) detachRemoves(id string) map[string]bool {
	removed := map[string]bool{id: true}
	row := d.cellParent[id]
	left := len(row.Cells) - 1

	for {
		parent := d.rowParent[row.ID]
		if left > 0 {
			if parent != d.root && len(parent.Rows) == 1 && left == 1 {
				removed[parent.ID] = true
				removed[row.ID] = true
			}
			return removed
		}

		removed[row.ID] = true
		if parent == d.root {
			return removed
		}
		switch len(parent.Rows) - 1 {
		case 0:
			removed[parent.ID] = true
			row = d.cellParent[parent.ID]
			left = len(row.Cells) - 1
		case 1:
			for _, r := range parent.Rows {
				if r.ID != row.ID && len(r.Cells) == 1 {
					removed[parent.ID] = true
					removed[r.ID] = true
				}
			}
			return removed
		default:
			return removed
		}
	}
}

// prune drops empty rows and collapses trivial layout cells, bottom-up,
// keeping the tree in normal form after a detach. The root cell is never
// collapsed, even when it holds a single row.
func (d *Document) prune() {
	pruneCell(d.root)
}

func pruneCell(c *Cell) {
	rows := c.Rows[:0]
	for _, r := range c.Rows {
		cells := r.Cells[:0]
		for _, child := range r.Cells {
			pruneCell(child)
			// A layout cell reduced to one row with one cell collapses
			// into that cell.
			if len(child.Rows) == 1 && len(child.Rows[0].Cells) == 1 {
				child = child.Rows[0].Cells[0]
			}
			// A layout cell that lost all its rows disappears.
			if len(child.Rows) == 0 && child.Content == "" {
				continue
			}
			cells = append(cells, child)
		}
		r.Cells = cells
		if len(r.Cells) == 0 {
			continue
		}
		rows = append(rows, r)
	}
	c.Rows = rows
}
