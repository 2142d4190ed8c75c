package document

import (
	"testing"

	"github.com/mklettner/dropzone/pkg/errors"
	"github.com/mklettner/dropzone/pkg/hover"
)

func node(id string) hover.Node {
	return hover.Node{ID: id}
}

func TestEditorPending(t *testing.T) {
	e := NewEditor(nestedDoc(t))

	if _, ok := e.Pending(); ok {
		t.Fatal("fresh editor has a pending intent")
	}

	e.Above(node("a"), node("d"), 1)
	p, ok := e.Pending()
	if !ok || p.Op != OpAbove || p.Drag.ID != "a" || p.Hover.ID != "d" || p.Level != 1 {
		t.Fatalf("Pending() = %+v, %v", p, ok)
	}

	// A later signal replaces the earlier one; Clear retracts it.
	e.InlineRight(node("a"), node("d"))
	p, _ = e.Pending()
	if p.Op != OpInlineRight || p.Level != -1 {
		t.Fatalf("Pending() after inline = %+v", p)
	}
	e.Clear()
	if _, ok := e.Pending(); ok {
		t.Fatal("Clear() left a pending intent")
	}
}

func TestDropAboveLeafWrapsSplit(t *testing.T) {
	d := nestedDoc(t)
	e := NewEditor(d)

	e.Above(node("a"), node("d"), 0)
	if err := e.Drop(); err != nil {
		t.Fatal(err)
	}

	// d was a leaf, so it gets wrapped into a vertical split in place.
	r3, ok := d.RowByID("r3")
	if !ok {
		t.Fatal("r3 disappeared")
	}
	wrap := r3.Cells[0]
	if !wrap.IsLayout() || len(wrap.Rows) != 2 {
		t.Fatalf("r3 cell = %+v, want a two-row layout", wrap)
	}
	if wrap.Rows[0].Cells[0].ID != "a" || wrap.Rows[1].Cells[0].ID != "d" {
		t.Errorf("split order = [%s %s], want [a d]",
			wrap.Rows[0].Cells[0].ID, wrap.Rows[1].Cells[0].ID)
	}
	if _, ok := e.Pending(); ok {
		t.Error("successful Drop left a pending intent")
	}
}

func TestDropBelowRowTarget(t *testing.T) {
	d := nestedDoc(t)
	e := NewEditor(d)

	e.Below(node("a"), node("r2"), 0)
	if err := e.Drop(); err != nil {
		t.Fatal(err)
	}

	split, _ := d.CellByID("split")
	if len(split.Rows) != 3 {
		t.Fatalf("split has %d rows, want 3", len(split.Rows))
	}
	if split.Rows[0].ID != "r2" || split.Rows[2].ID != "r3" {
		t.Errorf("row order = [%s _ %s], want [r2 _ r3]", split.Rows[0].ID, split.Rows[2].ID)
	}
	if got := split.Rows[1].Cells[0].ID; got != "a" {
		t.Errorf("inserted row holds %s, want a", got)
	}
}

func TestDropLevelClimbsAncestry(t *testing.T) {
	d := nestedDoc(t)
	e := NewEditor(d)

	// Level 2 from b: b -> r2 -> split, so the drop lands above split's
	// rows rather than above b itself.
	e.Above(node("a"), node("b"), 2)
	if err := e.Drop(); err != nil {
		t.Fatal(err)
	}

	split, _ := d.CellByID("split")
	if len(split.Rows) != 3 {
		t.Fatalf("split has %d rows, want 3", len(split.Rows))
	}
	if got := split.Rows[0].Cells[0].ID; got != "a" {
		t.Errorf("first row holds %s, want a", got)
	}
	if split.Rows[1].ID != "r2" {
		t.Errorf("second row = %s, want r2", split.Rows[1].ID)
	}
}

func TestDropRightOfRowWrapsLayout(t *testing.T) {
	d := nestedDoc(t)
	e := NewEditor(d)

	e.RightOf(node("a"), node("r3"), 0)
	if err := e.Drop(); err != nil {
		t.Fatal(err)
	}

	split, _ := d.CellByID("split")
	if len(split.Rows) != 2 {
		t.Fatalf("split has %d rows, want 2", len(split.Rows))
	}
	host := split.Rows[1]
	if len(host.Cells) != 2 {
		t.Fatalf("host row has %d cells, want 2", len(host.Cells))
	}
	if !host.Cells[0].IsLayout() || host.Cells[0].Rows[0].ID != "r3" {
		t.Errorf("left cell = %+v, want a layout wrapping r3", host.Cells[0])
	}
	if host.Cells[1].ID != "a" {
		t.Errorf("right cell = %s, want a", host.Cells[1].ID)
	}
}

func TestDropInline(t *testing.T) {
	d, err := New(
		&Row{ID: "r1", Cells: []*Cell{leaf("host", "text")}},
		&Row{ID: "r2", Cells: []*Cell{{ID: "float", Content: "image", Inlineable: true}}},
	)
	if err != nil {
		t.Fatal(err)
	}
	e := NewEditor(d)

	e.InlineLeft(node("float"), node("host"))
	if err := e.Drop(); err != nil {
		t.Fatal(err)
	}

	r1, _ := d.RowByID("r1")
	if len(r1.Cells) != 2 || r1.Cells[0].ID != "float" || r1.Cells[1].ID != "host" {
		t.Fatalf("r1 cells = %+v, want [float host]", r1.Cells)
	}
	if r1.Cells[0].Inline != hover.SideLeft {
		t.Errorf("float.Inline = %v, want left", r1.Cells[0].Inline)
	}
	if _, ok := d.RowByID("r2"); ok {
		t.Error("r2 should have been pruned after losing its only cell")
	}
}

func TestDropRejections(t *testing.T) {
	tests := []struct {
		name     string
		signal   func(e *Editor)
		wantCode errors.Code
	}{
		{
			name:     "NoIntent",
			signal:   func(e *Editor) {},
			wantCode: errors.ErrCodeInvalidRequest,
		},
		{
			name:     "RowDrag",
			signal:   func(e *Editor) { e.Above(node("r2"), node("a"), 0) },
			wantCode: errors.ErrCodeUnsupported,
		},
		{
			name:     "UnknownDrag",
			signal:   func(e *Editor) { e.Above(node("zz"), node("a"), 0) },
			wantCode: errors.ErrCodeNodeNotFound,
		},
		{
			name:     "OwnSubtree",
			signal:   func(e *Editor) { e.Above(node("split"), node("b"), 0) },
			wantCode: errors.ErrCodeInvalidRequest,
		},
		{
			name:     "LevelPastRoot",
			signal:   func(e *Editor) { e.Above(node("a"), node("b"), 9) },
			wantCode: errors.ErrCodeInvalidLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := nestedDoc(t)
			e := NewEditor(d)
			tt.signal(e)
			err := e.Drop()
			if !errors.Is(err, tt.wantCode) {
				t.Fatalf("Drop() error = %v, want %s", err, tt.wantCode)
			}
			// Rejections must leave the tree intact.
			for _, id := range []string{"a", "b", "c", "d", "split"} {
				if _, ok := d.CellByID(id); !ok {
					t.Errorf("cell %s lost by a rejected drop", id)
				}
			}
		})
	}
}

func TestDropPrunedTarget(t *testing.T) {
	// Detaching x empties ra, which prunes ra away; split is then left
	// with one row holding one cell and collapses, taking rb with it. All
	// three are invalid targets, and the rejection must not detach x.
	for _, target := range []string{"ra", "rb", "split"} {
		t.Run(target, func(t *testing.T) {
			d, err := New(&Row{ID: "r1", Cells: []*Cell{
				{ID: "split", Rows: []*Row{
					{ID: "ra", Cells: []*Cell{leaf("x", "text")}},
					{ID: "rb", Cells: []*Cell{leaf("y", "image")}},
				}},
			}})
			if err != nil {
				t.Fatal(err)
			}
			e := NewEditor(d)

			e.Above(node("x"), node(target), 0)
			if err := e.Drop(); !errors.Is(err, errors.ErrCodeNodeNotFound) {
				t.Fatalf("Drop() error = %v, want NODE_NOT_FOUND", err)
			}

			// The rejected drop leaves the document unchanged.
			if _, ok := d.CellByID("x"); !ok {
				t.Error("dragged cell x lost by the rejected drop")
			}
			for _, id := range []string{"ra", "rb"} {
				if _, ok := d.RowByID(id); !ok {
					t.Errorf("row %s lost by the rejected drop", id)
				}
			}
			if _, ok := d.CellByID("split"); !ok {
				t.Error("cell split lost by the rejected drop")
			}
		})
	}
}

func TestDropSurvivingSiblingTarget(t *testing.T) {
	// Detaching x prunes ra and collapses split, but y survives the
	// collapse and remains a valid target.
	d, err := New(&Row{ID: "r1", Cells: []*Cell{
		{ID: "split", Rows: []*Row{
			{ID: "ra", Cells: []*Cell{leaf("x", "text")}},
			{ID: "rb", Cells: []*Cell{leaf("y", "image")}},
		}},
	}})
	if err != nil {
		t.Fatal(err)
	}
	e := NewEditor(d)

	e.Below(node("x"), node("y"), 0)
	if err := e.Drop(); err != nil {
		t.Fatal(err)
	}

	wrap, _ := d.RowByID("r1")
	host := wrap.Cells[0]
	if !host.IsLayout() || len(host.Rows) != 2 {
		t.Fatalf("r1 cell = %+v, want a two-row layout", host)
	}
	if host.Rows[0].Cells[0].ID != "y" || host.Rows[1].Cells[0].ID != "x" {
		t.Errorf("split order = [%s %s], want [y x]",
			host.Rows[0].Cells[0].ID, host.Rows[1].Cells[0].ID)
	}
}
