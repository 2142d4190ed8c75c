package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mklettner/dropzone/pkg/hover"
)

func newTestExploreModel(t *testing.T) exploreModel {
	t.Helper()
	engine, err := hover.New()
	if err != nil {
		t.Fatal(err)
	}
	names := engine.MatrixNames()
	idx := 0
	for i, n := range names {
		if n == hover.MatrixDefault {
			idx = i
		}
	}
	return newExploreModel(engine, names, idx, hover.Room{Width: 400, Height: 240})
}

func TestExploreMouseTracking(t *testing.T) {
	m := newTestExploreModel(t)

	// Terminal column gridLeft+6 is the first character of grid cell 2 on
	// row 0, an ancestor edge on the default matrix.
	next, _ := m.Update(tea.MouseMsg{
		X: gridLeft + 6, Y: gridTop, Action: tea.MouseActionMotion,
	})
	m = next.(exploreModel)

	if m.row != 0 || m.cell != 2 {
		t.Fatalf("cursor = (%d, %d), want (0, 2)", m.row, m.cell)
	}
	if m.pointer == nil {
		t.Fatal("mouse motion left no pointer position")
	}
	if m.zone != "AA" {
		t.Errorf("zone = %s, want AA", m.zone)
	}
	if !strings.HasPrefix(m.decision, "above") {
		t.Errorf("decision = %q, want an above action", m.decision)
	}

	// The classified position keeps the sub-cell offset instead of
	// snapping to the zone cell's center.
	want := (float64(6) + 0.5) / 30 * m.room.Width
	center := 2.5 / 10 * m.room.Width
	if m.pointer.X != want {
		t.Errorf("pointer.X = %v, want %v", m.pointer.X, want)
	}
	if m.pointer.X == center {
		t.Errorf("pointer.X = %v snapped to the cell center", m.pointer.X)
	}
}

func TestExploreMouseOutsideGrid(t *testing.T) {
	m := newTestExploreModel(t)
	m.row, m.cell = 4, 4
	m.classify()
	before := m.decision

	// Title line, left of the grid, below a 10-row grid, right of a
	// 10-cell grid.
	for _, pos := range [][2]int{
		{0, 0},
		{gridLeft - 1, gridTop},
		{gridLeft, gridTop + 10},
		{gridLeft + 30, gridTop},
	} {
		next, _ := m.Update(tea.MouseMsg{X: pos[0], Y: pos[1], Action: tea.MouseActionMotion})
		m = next.(exploreModel)
		if m.row != 4 || m.cell != 4 || m.decision != before {
			t.Fatalf("position (%d, %d) outside the grid moved the cursor", pos[0], pos[1])
		}
	}
}

func TestExploreKeyResetsPointer(t *testing.T) {
	m := newTestExploreModel(t)

	next, _ := m.Update(tea.MouseMsg{X: gridLeft, Y: gridTop, Action: tea.MouseActionMotion})
	m = next.(exploreModel)
	if m.pointer == nil {
		t.Fatal("mouse motion left no pointer position")
	}

	// A key move snaps the pointer back to cell centers.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(exploreModel)
	if m.pointer != nil {
		t.Error("key move kept the mouse pointer position")
	}
	if m.row != 0 || m.cell != 1 {
		t.Errorf("cursor = (%d, %d), want (0, 1)", m.row, m.cell)
	}
}
