package hover

import (
	"maps"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/mklettner/dropzone/pkg/errors"
	"github.com/mklettner/dropzone/pkg/observability"
)

// Logger is the diagnostic surface the engine reports anomalies through.
// *github.com/charmbracelet/log.Logger satisfies it.
type Logger interface {
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

// Request carries the per-event input for one classification: the hovered
// block's rectangle, the pointer position relative to its top-left corner,
// and optionally the name of the zone matrix to classify against.
type Request struct {
	// Room is the hovered block's rectangle.
	Room Room `json:"room"`
	// Mouse is the pointer position relative to the room's top-left corner.
	Mouse Vector `json:"mouse"`
	// Matrix names the zone matrix to use; empty selects MatrixDefault.
	Matrix string `json:"matrix,omitempty"`
}

// Context is the resolved positional context handed to interpreters. It is
// recomputed per call and never retained beyond the dispatch.
type Context struct {
	Room   Room        // hovered rectangle
	Mouse  Vector      // pointer position within the room
	Matrix string      // resolved matrix name
	Index  MatrixIndex // located matrix cell, clamped into bounds
	Scale  Vector      // pixel size of one matrix cell
	Rows   int         // matrix row count
	Cells  int         // matrix cell count per row
}

// memoEntry snapshots the inputs of the previous dispatch for one matrix
// name. All fields are comparable; equality of two entries means the call
// would repeat the previous decision exactly.
type memoEntry struct {
	dragID  string
	hoverID string
	actions Actions
	room    Room
	mouse   Vector
}

// Engine classifies hover positions into drop actions. It owns its matrix
// and interpreter tables plus one memo slot per matrix name; construction
// validates the configuration so classification cannot fail structurally
// at event time.
//
// The zero value is not usable; use [New]. An Engine must be driven from a
// single goroutine, typically the UI event loop.
type Engine struct {
	matrices     map[string]Matrix
	interpreters map[ZoneClass]Interpreter
	logger       Logger
	memo         map[string]memoEntry
}

// Option configures an Engine during construction.
type Option func(*Engine)

// WithLogger replaces the default diagnostic logger.
func WithLogger(l Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMatrix registers m under name, replacing a built-in of the same
// name. The matrix must contain only classes covered by the engine's
// interpreter table; New checks that.
func WithMatrix(name string, m Matrix) Option {
	return func(e *Engine) { e.matrices[name] = m }
}

// WithMatrices registers every matrix in the map. See WithMatrix.
func WithMatrices(matrices map[string]Matrix) Option {
	return func(e *Engine) {
		for name, m := range matrices {
			e.matrices[name] = m
		}
	}
}

// WithInterpreter registers fn for the given zone class, replacing the
// built-in interpreter or extending the table for a custom class.
func WithInterpreter(z ZoneClass, fn Interpreter) Option {
	return func(e *Engine) { e.interpreters[z] = fn }
}

// New builds an Engine with the three built-in matrices and the default
// interpreter table, then applies opts and validates the result: every
// registered matrix must be non-empty and every zone class reachable from
// any registered matrix must have an interpreter. Configuration problems
// are reported here as eager INVALID_MATRIX errors, never mid-hover.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		matrices:     defaultMatrices(),
		interpreters: defaultInterpreters(),
		logger:       log.Default(),
		memo:         make(map[string]memoEntry),
	}
	for _, opt := range opts {
		opt(e)
	}
	for name, m := range e.matrices {
		if m.RowCount() == 0 || m.CellCount() == 0 {
			return nil, errors.New(errors.ErrCodeInvalidMatrix, "matrix %q has zero dimension", name)
		}
		for z := range m.classes() {
			if _, ok := e.interpreters[z]; !ok {
				return nil, errors.New(errors.ErrCodeInvalidMatrix,
					"matrix %q contains zone %s with no interpreter", name, z)
			}
		}
	}
	return e, nil
}

// MatrixNames returns the sorted names of all registered matrices.
func (e *Engine) MatrixNames() []string {
	return slices.Sorted(maps.Keys(e.matrices))
}

// Matrix returns the registered matrix for name, if present.
func (e *Engine) Matrix(name string) (Matrix, bool) {
	m, ok := e.matrices[name]
	return m, ok
}

// Hover classifies one pointer event and dispatches at most one call on
// actions. Events that repeat the previous decision for the same matrix
// name (same dragged and hovered IDs, same actions value, same room and
// mouse) are suppressed entirely, which keeps high-frequency drag-over
// streams idempotent.
//
// Anomalies never panic and never dispatch: an unknown matrix name or a
// degenerate room is logged at error level, a zone class without an
// interpreter (possible only with bypassed construction) at warn level
// with the full positional context.
func (e *Engine) Hover(drag, hov Node, actions Actions, req Request) {
	name := req.Matrix
	if name == "" {
		name = MatrixDefault
	}
	m, ok := e.matrices[name]
	if !ok {
		e.logger.Error("hover: unknown zone matrix", "matrix", name)
		return
	}
	if req.Room.IsDegenerate() {
		e.logger.Error("hover: degenerate room",
			"matrix", name, "width", req.Room.Width, "height", req.Room.Height)
		return
	}

	scale := scaleFor(req.Room, m)
	idx := locate(req.Mouse, scale, m)
	zone := m.At(idx)

	fn, ok := e.interpreters[zone]
	if !ok {
		observability.Hover().OnClassifyMiss(name, zone.String(), idx.Row, idx.Cell)
		e.logger.Warn("hover: no interpreter for zone",
			"zone", zone.String(), "matrix", name,
			"row", idx.Row, "cell", idx.Cell,
			"rows", m.RowCount(), "cells", m.CellCount(),
			"roomWidth", req.Room.Width, "roomHeight", req.Room.Height,
			"mouseX", req.Mouse.X, "mouseY", req.Mouse.Y,
			"scaleX", scale.X, "scaleY", scale.Y)
		return
	}

	entry := memoEntry{
		dragID:  drag.ID,
		hoverID: hov.ID,
		actions: actions,
		room:    req.Room,
		mouse:   req.Mouse,
	}
	if last, seen := e.memo[name]; seen && last == entry {
		observability.Hover().OnMemoHit(name)
		return
	}
	e.memo[name] = entry

	observability.Hover().OnClassify(name, zone.String(), idx.Row, idx.Cell)
	fn(drag, hov, actions, &Context{
		Room:   req.Room,
		Mouse:  req.Mouse,
		Matrix: name,
		Index:  idx,
		Scale:  scale,
		Rows:   m.RowCount(),
		Cells:  m.CellCount(),
	})
}
