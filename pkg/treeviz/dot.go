package treeviz

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/mklettner/dropzone/pkg/document"
	"github.com/mklettner/dropzone/pkg/hover"
)

// Options configures diagram rendering.
type Options struct {
	// Detailed includes inline markers and capability flags in cell labels.
	// When false, only the content name (or "row"/"layout") is shown.
	Detailed bool
}

// ToDOT converts a document to Graphviz DOT format. Rows are boxes, leaf
// cells rounded boxes labelled with their content, layout cells plain
// containers. Inline cells get dashed outlines.
func ToDOT(d *document.Document, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph document {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	root := d.Root()
	fmt.Fprintf(&buf, "  %q [label=\"document\", shape=folder];\n", root.ID)
	for _, r := range root.Rows {
		writeRow(&buf, root.ID, r, opts)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeRow(buf *bytes.Buffer, parentID string, r *document.Row, opts Options) {
	fmt.Fprintf(buf, "  %q [label=%q, fillcolor=lightyellow];\n", r.ID, rowLabel(r, opts))
	fmt.Fprintf(buf, "  %q -> %q;\n", parentID, r.ID)
	for _, c := range r.Cells {
		writeCell(buf, r.ID, c, opts)
	}
}

func writeCell(buf *bytes.Buffer, parentID string, c *document.Cell, opts Options) {
	attrs := []string{fmt.Sprintf("label=%q", cellLabel(c, opts))}
	if c.Inline != hover.SideNone {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	}
	fmt.Fprintf(buf, "  %q [%s];\n", c.ID, strings.Join(attrs, ", "))
	fmt.Fprintf(buf, "  %q -> %q;\n", parentID, c.ID)
	for _, r := range c.Rows {
		writeRow(buf, c.ID, r, opts)
	}
}

func rowLabel(r *document.Row, opts Options) string {
	if !opts.Detailed {
		return "row"
	}
	return fmt.Sprintf("row\n%d cells", len(r.Cells))
}

func cellLabel(c *document.Cell, opts Options) string {
	label := c.Content
	if label == "" {
		label = "layout"
	}
	if !opts.Detailed {
		return label
	}
	parts := []string{label}
	if c.Inline != hover.SideNone {
		parts = append(parts, "inline: "+c.Inline.String())
	}
	if c.Inlineable {
		parts = append(parts, "inlineable")
	}
	return strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
