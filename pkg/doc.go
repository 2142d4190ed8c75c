// Package pkg provides the core libraries for Dropzone drag-and-drop
// classification.
//
// # Overview
//
// Dropzone decides what should happen when a block is dragged over another
// block in a nested row/cell layout: snap above, below, left, right, merge
// inline, or nothing. The pkg directory is organized into three areas:
//
//  1. [hover] - Zone classification (matrices, levels, dispatch)
//  2. [document] - Block trees (descriptors, edits, serialization)
//  3. [treeviz] - Graphviz rendering of block trees
//
// # Architecture
//
// The typical data flow during a drag:
//
//	Pointer position + hovered block
//	         ↓
//	    [hover] package (zone matrix → zone class → level)
//	         ↓
//	    Actions callback (above/below/leftOf/rightOf/inline)
//	         ↓
//	    [document] package (commit the move on drop)
//
// # Quick Start
//
// Classify a hover and commit the resulting move:
//
//	import (
//	    "github.com/mklettner/dropzone/pkg/document"
//	    "github.com/mklettner/dropzone/pkg/hover"
//	)
//
//	// 1. Build descriptors from the document
//	drag, _ := doc.Describe("image-1")
//	hov, _ := doc.Describe("text-2")
//
//	// 2. Classify the pointer position
//	engine, _ := hover.New()
//	engine.Hover(drag, hov, editor, hover.Request{
//	    Room:  hover.Room{Width: 300, Height: 100},
//	    Mouse: hover.Vector{X: 150, Y: 15},
//	})
//
//	// 3. Commit on pointer release
//	err := editor.Drop()
//
// # Main Packages
//
// [hover] - The classification engine. Maps a pointer position to a cell of
// a zone matrix, derives the nesting level from halving bands, and dispatches
// exactly one action per decision with duplicate suppression. Ships three
// built-in matrices and loads custom ones from TOML.
//
// [document] - Block trees of rows and cells. Produces the descriptors the
// engine consumes (ancestor level counts, inline neighbours), implements the
// drop edit (detach, prune, insert with layout wrapping), and reads and
// writes the JSON document format.
//
// [treeviz] - Node-link diagrams of block trees via Graphviz (DOT, SVG, PNG).
//
// [errors] - Coded errors shared across packages (INVALID_MATRIX,
// NODE_NOT_FOUND, and friends) with user-facing messages.
//
// [observability] - Hook interfaces for instrumenting classification and
// edits without coupling the core packages to a metrics backend.
//
// [cache] - File-backed byte cache for rendered artifacts.
//
// [buildinfo] - Build-time version information set via ldflags.
package pkg
