// Package document implements the block-document tree the hover engine
// classifies against, plus the mutation layer that commits drop decisions.
//
// A document is a strictly alternating hierarchy: the root is a layout
// cell holding rows, rows hold cells side by side, and a cell either
// carries content (a leaf) or nests further rows (a layout cell). Cells
// may float inline next to a sibling, which is what the engine's inline
// zones target.
//
// The package plays two roles around [hover.Engine]:
//
//   - [Document.Describe] derives the read-only hover.Node descriptor for
//     any block: its per-direction maximum nesting levels from the tree
//     shape, its inline marker and neighbour, and its capability flags.
//   - [Editor] implements hover.Actions. The engine signals drop intents
//     against it during the drag; [Editor.Drop] commits the last intent by
//     actually moving the dragged cell, wrapping blocks in new rows or
//     cells as the nesting level requires.
//
// Documents are not safe for concurrent use; like the engine they are
// meant to be owned by the UI event loop.
package document
