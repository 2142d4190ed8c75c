package hover

import (
	"encoding/json"
	"fmt"
)

// Kind distinguishes the two block shapes in the document hierarchy.
// Rows stack their children vertically; cells sit side by side inside a row
// and may nest further rows.
type Kind int

const (
	// KindCell is a block that lives inside a row.
	KindCell Kind = iota
	// KindRow is a horizontal container of cells. Rows never carry inline
	// attributes.
	KindRow
)

// String returns "cell" or "row".
func (k Kind) String() string {
	if k == KindRow {
		return "row"
	}
	return "cell"
}

// MarshalJSON encodes the kind as its string form.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON accepts "cell", "row" or the empty string (cell).
func (k *Kind) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch v {
	case "", "cell":
		*k = KindCell
	case "row":
		*k = KindRow
	default:
		return fmt.Errorf("invalid block kind %q", v)
	}
	return nil
}

// Side marks whether a cell floats inline next to a sibling, and on which
// side. The zero value means the cell is a regular stacked block.
type Side int

const (
	// SideNone marks a regular, non-inline cell.
	SideNone Side = iota
	// SideLeft marks a cell floated to the left of its sibling.
	SideLeft
	// SideRight marks a cell floated to the right of its sibling.
	SideRight
)

// String returns "none", "left" or "right".
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// MarshalJSON encodes the side as its string form.
func (s Side) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts "none", "left", "right" or the empty string.
func (s *Side) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch v {
	case "", "none":
		*s = SideNone
	case "left":
		*s = SideLeft
	case "right":
		*s = SideRight
	default:
		return fmt.Errorf("invalid inline side %q", v)
	}
	return nil
}

// Levels holds the maximum nesting level per drop direction: how many
// ancestor boundaries a drop next to this node may cross. A level of 0 in a
// direction means only the immediately adjacent position is available.
// All values are non-negative.
type Levels struct {
	Above int `json:"above"`
	Below int `json:"below"`
	Left  int `json:"left"`
	Right int `json:"right"`
}

// Node is the read-only descriptor of a block as the engine sees it. The
// document model owns the actual tree; the drag transport hands the engine
// one Node for the dragged block and one for the hovered block per event.
//
// Invariants the descriptor source must uphold: a row never has Inline set
// or a HasInlineNeighbour, and Levels values are non-negative.
type Node struct {
	// ID uniquely identifies the block.
	ID string `json:"id"`

	// Kind says whether the block is a row or a cell.
	Kind Kind `json:"kind"`

	// Inline is the block's own inline marker, SideNone for stacked cells.
	Inline Side `json:"inline,omitempty"`

	// HasInlineNeighbour holds the ID of an adjacent inline sibling, if any.
	HasInlineNeighbour string `json:"hasInlineNeighbour,omitempty"`

	// Levels limits how deep ancestor drops next to this block may reach,
	// per direction.
	Levels Levels `json:"levels"`

	// Inlineable reports whether the block's content supports being placed
	// inline next to another cell.
	Inlineable bool `json:"inlineable,omitempty"`
}

// IsRow reports whether the node is a row.
func (n Node) IsRow() bool { return n.Kind == KindRow }

// IsInline reports whether the node itself floats inline.
func (n Node) IsInline() bool { return n.Inline != SideNone }

// Actions is the dispatch surface the engine drives. The mutation layer of
// the editor implements it; the engine calls at most one method per Hover
// invocation.
//
// The level argument is the nesting depth decided by the engine: 0 inserts
// immediately adjacent to hover, k inserts at the boundary of hover's k-th
// eligible ancestor. Inline placement has no depth.
//
// Implementations must be comparable (typically a pointer type), because
// the identity of the Actions value is part of the engine's memo key.
type Actions interface {
	// Clear retracts any previously signalled drop intent.
	Clear()
	// Above inserts drag above hover at the given level.
	Above(drag, hover Node, level int)
	// Below inserts drag below hover at the given level.
	Below(drag, hover Node, level int)
	// LeftOf inserts drag left of hover at the given level.
	LeftOf(drag, hover Node, level int)
	// RightOf inserts drag right of hover at the given level.
	RightOf(drag, hover Node, level int)
	// InlineLeft merges drag as an inline cell on hover's left.
	InlineLeft(drag, hover Node)
	// InlineRight merges drag as an inline cell on hover's right.
	InlineRight(drag, hover Node)
}
