package treeviz

import (
	"strings"
	"testing"

	"github.com/mklettner/dropzone/pkg/document"
	"github.com/mklettner/dropzone/pkg/hover"
)

func testDoc(t *testing.T) *document.Document {
	t.Helper()
	d, err := document.New(&document.Row{ID: "r1", Cells: []*document.Cell{
		{ID: "a", Content: "text"},
		{ID: "float", Content: "image", Inline: hover.SideLeft, Inlineable: true},
		{ID: "split", Rows: []*document.Row{
			{ID: "r2", Cells: []*document.Cell{{ID: "b", Content: "video"}}},
		}},
	}})
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestToDOT(t *testing.T) {
	d := testDoc(t)
	dot := ToDOT(d, Options{})

	if !strings.HasPrefix(dot, "digraph document {") {
		t.Fatalf("DOT output does not open a digraph:\n%s", dot)
	}
	if !strings.HasSuffix(strings.TrimSpace(dot), "}") {
		t.Fatal("DOT output is not closed")
	}

	wantFragments := []string{
		`label="document", shape=folder`,
		`"r1" [label="row", fillcolor=lightyellow];`,
		`"a" [label="text"];`,
		`"float" [label="image", style="rounded,filled,dashed", fillcolor=lightgrey];`,
		`"split" [label="layout"];`,
		`"r1" -> "a";`,
		`"split" -> "r2";`,
		`"r2" -> "b";`,
	}
	for _, frag := range wantFragments {
		if !strings.Contains(dot, frag) {
			t.Errorf("DOT output missing %q:\n%s", frag, dot)
		}
	}
}

func TestToDOTDetailed(t *testing.T) {
	d := testDoc(t)
	dot := ToDOT(d, Options{Detailed: true})

	wantFragments := []string{
		`"r1" [label="row\n3 cells", fillcolor=lightyellow];`,
		`inline: left`,
		`inlineable`,
	}
	for _, frag := range wantFragments {
		if !strings.Contains(dot, frag) {
			t.Errorf("detailed DOT output missing %q:\n%s", frag, dot)
		}
	}
}
