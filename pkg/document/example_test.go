package document_test

import (
	"fmt"
	"strings"

	"github.com/mklettner/dropzone/pkg/document"
	"github.com/mklettner/dropzone/pkg/hover"
)

func printTree(c *document.Cell, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, r := range c.Rows {
		fmt.Println(indent + "row")
		for _, child := range r.Cells {
			if child.IsLayout() {
				printTree(child, depth+1)
				continue
			}
			fmt.Println(indent + "  " + child.Content)
		}
	}
}

// Example moves an image block above a text block by driving the full
// chain: descriptors from the document, classification by the engine, and
// the commit on pointer release.
func Example() {
	doc, err := document.New(
		&document.Row{ID: "r1", Cells: []*document.Cell{{ID: "a", Content: "text"}}},
		&document.Row{ID: "r2", Cells: []*document.Cell{{ID: "b", Content: "image"}}},
	)
	if err != nil {
		panic(err)
	}
	editor := document.NewEditor(doc)

	engine, err := hover.New()
	if err != nil {
		panic(err)
	}

	drag, _ := doc.Describe("b")
	hov, _ := doc.Describe("a")

	// The pointer hovers near the top edge of the text block.
	engine.Hover(drag, hov, editor, hover.Request{
		Room:  hover.Room{Width: 300, Height: 100},
		Mouse: hover.Vector{X: 150, Y: 15},
	})
	if err := editor.Drop(); err != nil {
		panic(err)
	}

	printTree(doc.Root(), 0)

	// Output:
	// row
	//   row
	//     image
	//   row
	//     text
}
