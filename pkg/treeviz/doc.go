// Package treeviz renders block documents as node-link diagrams.
//
// The document tree (rows nesting cells nesting rows) is converted to
// Graphviz DOT and rendered to SVG via the goccy/go-graphviz bindings.
// Inline cells are drawn with dashed outlines so float relationships stay
// visible in the diagram.
package treeviz
