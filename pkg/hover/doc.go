// Package hover classifies pointer positions over a block into drop intents.
//
// During a drag operation the editor needs to decide, for every pointer-move
// event, what the user means by hovering where they hover: insert the dragged
// block above, below, left or right of the hovered block, merge it inline to
// one side, or do nothing, and at which nesting level of the surrounding
// row/cell hierarchy the insert should happen.
//
// The engine answers that question in four steps:
//
//  1. A named zone matrix partitions the hovered block's rectangle into a
//     grid of symbolic zone classes (corners, edges, ancestor edges, inline
//     bands). See [Matrix] and the built-in matrices.
//  2. The pointer position is scaled and located to a matrix cell
//     ([MatrixIndex]), clamped so positions outside the rectangle still
//     resolve to a border cell.
//  3. The cell's zone class selects an interpreter that turns the raw
//     position into a single call on an [Actions] implementation, computing
//     a nesting level where the zone requires one.
//  4. A per-matrix memo slot suppresses duplicate dispatches while the
//     pointer stays inside the same decision, since drag-over events fire
//     far more often than decisions change.
//
// # Levels
//
// A level is a discrete nesting depth: 0 means "immediately adjacent to the
// hovered block", higher values target boundaries of successively further
// ancestors. Ancestor zones convert the continuous pointer offset into a
// level using a geometric subdivision where each deeper band is half as
// wide as the previous one, so the outermost ancestors get the widest
// strips near the block's edge. See [Engine.Hover].
//
// # Usage
//
//	engine, err := hover.New()
//	if err != nil {
//	    return err
//	}
//	engine.Hover(dragged, hovered, editor, hover.Request{
//	    Room:  hover.Room{Width: w, Height: h},
//	    Mouse: hover.Vector{X: x, Y: y},
//	})
//
// The engine is synchronous and single-threaded by contract: it is meant to
// be driven from the UI event loop, one call per pointer event. The memo
// slot is plain state; calling Hover concurrently requires external locking.
package hover
