package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mklettner/dropzone/pkg/document"
	"github.com/mklettner/dropzone/pkg/hover"
)

// classifyCommand creates the classify command for one-shot classification.
func (c *CLI) classifyCommand() *cobra.Command {
	var (
		docPath      string
		dragID       string
		hoverID      string
		roomStr      string
		mouseStr     string
		matrixName   string
		matricesPath string
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Resolve one pointer position to a drop action",
		Long: `Resolve one pointer position to a drop action.

The classify command loads a document, derives the descriptors of the
dragged and hovered blocks, and runs a single hover classification against
the selected zone matrix. The decided action and nesting level are printed
without mutating the document.

Example:

  dropzone classify --doc page.json \
      --drag 7e33… --hover a91b… \
      --room 800x120 --mouse 40,12`,
		RunE: func(cmd *cobra.Command, args []string) error {
			room, err := parseRoom(roomStr)
			if err != nil {
				return err
			}
			mouse, err := parseMouse(mouseStr)
			if err != nil {
				return err
			}

			doc, err := document.ReadDocumentFile(docPath)
			if err != nil {
				return fmt.Errorf("load document %s: %w", docPath, err)
			}
			drag, err := doc.Describe(dragID)
			if err != nil {
				return err
			}
			hov, err := doc.Describe(hoverID)
			if err != nil {
				return err
			}

			engine, err := c.newEngine(matricesPath)
			if err != nil {
				return err
			}

			return c.runClassify(classifyParams{
				engine: engine, drag: drag, hover: hov,
				room: room, mouse: mouse, matrix: matrixName, asJSON: asJSON,
			})
		},
	}

	cmd.Flags().StringVar(&docPath, "doc", "", "document JSON file (required)")
	cmd.Flags().StringVar(&dragID, "drag", "", "ID of the dragged block (required)")
	cmd.Flags().StringVar(&hoverID, "hover", "", "ID of the hovered block (required)")
	cmd.Flags().StringVar(&roomStr, "room", "", "hovered block rectangle as WIDTHxHEIGHT (required)")
	cmd.Flags().StringVar(&mouseStr, "mouse", "", "pointer position as X,Y (required)")
	cmd.Flags().StringVar(&matrixName, "matrix", "", "zone matrix name (default 10x10)")
	cmd.Flags().StringVar(&matricesPath, "matrices", "", "TOML file with custom zone matrices")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the decision as JSON")
	_ = cmd.MarkFlagRequired("doc")
	_ = cmd.MarkFlagRequired("drag")
	_ = cmd.MarkFlagRequired("hover")
	_ = cmd.MarkFlagRequired("room")
	_ = cmd.MarkFlagRequired("mouse")

	return cmd
}

type classifyParams struct {
	engine      *hover.Engine
	drag, hover hover.Node
	room        hover.Room
	mouse       hover.Vector
	matrix      string
	asJSON      bool
}

// decision is the JSON shape of a classification result.
type decision struct {
	Action string `json:"action"`
	Level  *int   `json:"level,omitempty"`
}

func (c *CLI) runClassify(p classifyParams) error {
	rec := &recorder{}
	p.engine.Hover(p.drag, p.hover, rec, hover.Request{
		Room:   p.room,
		Mouse:  p.mouse,
		Matrix: p.matrix,
	})

	d := decision{Action: "none"}
	if rec.fired {
		d.Action = rec.op
		if rec.level >= 0 {
			d.Level = &rec.level
		}
	}

	if p.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}
	if d.Level != nil {
		fmt.Printf("%s (level %d)\n", d.Action, *d.Level)
		return nil
	}
	fmt.Println(d.Action)
	return nil
}
