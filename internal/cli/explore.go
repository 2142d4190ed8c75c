package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mklettner/dropzone/pkg/hover"
)

// Grid styles
var (
	gridCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Reverse(true)
	gridCornerStyle = lipgloss.NewStyle().Foreground(colorYellow)
	gridInlineStyle = lipgloss.NewStyle().Foreground(colorGreen)
	gridEdgeStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	gridDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// exploreCommand creates the explore command, an interactive walk over a
// zone matrix.
func (c *CLI) exploreCommand() *cobra.Command {
	var (
		matrixName   string
		matricesPath string
		roomStr      string
	)

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Interactive TUI for walking a zone matrix",
		Long: `Interactive TUI for walking a zone matrix.

The explore command renders the selected zone matrix as a grid and tracks
the pointer across it, by mouse or by key. For every position it shows the
zone class the pointer lands in and the action the engine would dispatch
for a pair of synthetic blocks whose properties can be toggled live.
Mouse positions map to continuous room coordinates, so moving within one
zone cell exercises the same sub-cell positions a real drag would.

Keys:

  mouse        move the pointer
  arrows/hjkl  step the pointer cell by cell
  tab          cycle through registered matrices
  r            toggle hovered block between cell and row
  i            toggle hovered block inline
  d            toggle dragged block inlineable
  n            toggle hovered block's inline neighbour
  [ / ]        decrease / increase the hovered block's nesting levels
  q            quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			room := hover.Room{Width: 400, Height: 240}
			if roomStr != "" {
				var err error
				if room, err = parseRoom(roomStr); err != nil {
					return err
				}
			}
			engine, err := c.newEngine(matricesPath)
			if err != nil {
				return err
			}
			names := engine.MatrixNames()
			idx := 0
			if matrixName != "" {
				found := false
				for i, n := range names {
					if n == matrixName {
						idx, found = i, true
						break
					}
				}
				if !found {
					return fmt.Errorf("unknown matrix %q (have %s)", matrixName, strings.Join(names, ", "))
				}
			}

			model := newExploreModel(engine, names, idx, room)
			p := tea.NewProgram(model, tea.WithMouseCellMotion())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&matrixName, "matrix", "", "zone matrix to start with (default 10x10)")
	cmd.Flags().StringVar(&matricesPath, "matrices", "", "TOML file with custom zone matrices")
	cmd.Flags().StringVar(&roomStr, "room", "", "simulated block rectangle as WIDTHxHEIGHT (default 400x240)")

	return cmd
}

// =============================================================================
// exploreModel - Interactive matrix walker
// =============================================================================

// Grid placement in the rendered view: the grid starts below the title,
// help line, and blank line, indented by two spaces, with each zone cell
// printed as a two-letter code plus a space.
const (
	gridTop       = 3
	gridLeft      = 2
	gridCellWidth = 3
)

// exploreModel is the bubbletea model for the explore command.
type exploreModel struct {
	engine    *hover.Engine
	names     []string
	matrixIdx int
	room      hover.Room

	row  int
	cell int

	// pointer is the mouse-derived room position; nil means the pointer
	// follows the key cursor at cell centers.
	pointer *hover.Vector

	hoverRow       bool
	hoverInline    bool
	dragInlineable bool
	hasNeighbour   bool
	levels         int

	decision string
	zone     string
}

func newExploreModel(engine *hover.Engine, names []string, idx int, room hover.Room) exploreModel {
	m := exploreModel{
		engine:         engine,
		names:          names,
		matrixIdx:      idx,
		room:           room,
		dragInlineable: true,
		levels:         2,
	}
	m.classify()
	return m
}

func (m exploreModel) matrix() hover.Matrix {
	mx, _ := m.engine.Matrix(m.names[m.matrixIdx])
	return mx
}

// classify runs one hover classification for the current pointer position
// and stores the decision for rendering. A fresh recorder per call keeps
// the engine's duplicate suppression out of the way.
func (m *exploreModel) classify() {
	mx := m.matrix()
	scale := hover.Vector{
		X: m.room.Width / float64(mx.CellCount()),
		Y: m.room.Height / float64(mx.RowCount()),
	}
	mouse := hover.Vector{
		X: (float64(m.cell) + 0.5) * scale.X,
		Y: (float64(m.row) + 0.5) * scale.Y,
	}
	if m.pointer != nil {
		mouse = *m.pointer
	}

	lv := hover.Levels{Above: m.levels, Below: m.levels, Left: m.levels, Right: m.levels}
	drag := hover.Node{ID: "drag", Inlineable: m.dragInlineable}
	hov := hover.Node{ID: "hover", Levels: lv, Inline: hover.SideNone}
	if m.hoverRow {
		hov.Kind = hover.KindRow
	}
	if m.hoverInline {
		hov.Inline = hover.SideLeft
	}
	if m.hasNeighbour {
		hov.HasInlineNeighbour = "neighbour"
	}

	rec := &recorder{}
	m.engine.Hover(drag, hov, rec, hover.Request{
		Room:   m.room,
		Mouse:  mouse,
		Matrix: m.names[m.matrixIdx],
	})

	m.zone = mx.At(hover.MatrixIndex{Row: m.row, Cell: m.cell}).String()
	if !rec.fired {
		m.decision = "none"
		return
	}
	if rec.level >= 0 {
		m.decision = fmt.Sprintf("%s (level %d)", rec.op, rec.level)
		return
	}
	m.decision = rec.op
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease {
			return m, nil
		}
		if m.trackPointer(msg.X, msg.Y) {
			m.classify()
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// trackPointer maps a terminal position onto the grid. The cursor snaps
// to the zone cell under the mouse while the classified position keeps
// the sub-cell horizontal offset, scaled into room coordinates.
func (m *exploreModel) trackPointer(x, y int) bool {
	mx := m.matrix()
	col := x - gridLeft
	row := y - gridTop
	if row < 0 || row >= mx.RowCount() || col < 0 || col >= mx.CellCount()*gridCellWidth {
		return false
	}
	m.row = row
	m.cell = col / gridCellWidth
	m.pointer = &hover.Vector{
		X: (float64(col) + 0.5) / float64(mx.CellCount()*gridCellWidth) * m.room.Width,
		Y: (float64(row) + 0.5) / float64(mx.RowCount()) * m.room.Height,
	}
	return true
}

func (m exploreModel) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.pointer = nil

	mx := m.matrix()
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.row > 0 {
			m.row--
		}
	case "down", "j":
		if m.row < mx.RowCount()-1 {
			m.row++
		}
	case "left", "h":
		if m.cell > 0 {
			m.cell--
		}
	case "right", "l":
		if m.cell < mx.CellCount()-1 {
			m.cell++
		}
	case "tab":
		m.matrixIdx = (m.matrixIdx + 1) % len(m.names)
		next := m.matrix()
		if m.row >= next.RowCount() {
			m.row = next.RowCount() - 1
		}
		if m.cell >= next.CellCount() {
			m.cell = next.CellCount() - 1
		}
	case "r":
		m.hoverRow = !m.hoverRow
	case "i":
		m.hoverInline = !m.hoverInline
	case "d":
		m.dragInlineable = !m.dragInlineable
	case "n":
		m.hasNeighbour = !m.hasNeighbour
	case "[":
		if m.levels > 0 {
			m.levels--
		}
	case "]":
		if m.levels < 6 {
			m.levels++
		}
	default:
		return m, nil
	}

	m.classify()
	return m, nil
}

func (m exploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Zone Matrix Explorer"))
	b.WriteString("\n")
	b.WriteString(gridDimStyle.Render("mouse/arrows move  tab matrix  r/i/d/n toggles  [/] levels  q quit"))
	b.WriteString("\n\n")

	mx := m.matrix()
	for row := 0; row < mx.RowCount(); row++ {
		b.WriteString("  ")
		for cell := 0; cell < mx.CellCount(); cell++ {
			z := mx.At(hover.MatrixIndex{Row: row, Cell: cell})
			code := z.String()
			if len(code) < 2 {
				code = " " + code
			}
			b.WriteString(m.styleFor(z, row, cell).Render(code))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderKV("matrix", m.names[m.matrixIdx]))
	b.WriteString(renderKV("zone", m.zone))
	b.WriteString(renderKV("action", StyleHighlight.Render(m.decision)))
	b.WriteString(renderKV("hover", m.hoverSummary()))
	b.WriteString(renderKV("drag", m.dragSummary()))

	return b.String()
}

func (m exploreModel) styleFor(z hover.ZoneClass, row, cell int) lipgloss.Style {
	if row == m.row && cell == m.cell {
		return gridCursorStyle
	}
	switch z {
	case hover.ZoneNone:
		return gridDimStyle
	case hover.ZoneCornerTopLeft, hover.ZoneCornerTopRight,
		hover.ZoneCornerBottomRight, hover.ZoneCornerBottomLeft:
		return gridCornerStyle
	case hover.ZoneInlineLeft, hover.ZoneInlineRight:
		return gridInlineStyle
	default:
		return gridEdgeStyle
	}
}

func (m exploreModel) hoverSummary() string {
	kind := "cell"
	if m.hoverRow {
		kind = "row"
	}
	parts := []string{kind, fmt.Sprintf("levels=%d", m.levels)}
	if m.hoverInline {
		parts = append(parts, "inline")
	}
	if m.hasNeighbour {
		parts = append(parts, "has-neighbour")
	}
	return strings.Join(parts, " ")
}

func (m exploreModel) dragSummary() string {
	if m.dragInlineable {
		return "cell inlineable"
	}
	return "cell"
}

func renderKV(key, value string) string {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(8)
	return keyStyle.Render(key) + " " + value + "\n"
}
