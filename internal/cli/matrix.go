package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mklettner/dropzone/pkg/hover"
)

// matrixCommand creates the matrix command with its list/show/validate
// subcommands.
func (c *CLI) matrixCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "List, show, and validate zone matrices",
	}
	cmd.AddCommand(c.matrixListCommand())
	cmd.AddCommand(c.matrixShowCommand())
	cmd.AddCommand(c.matrixValidateCommand())
	return cmd
}

func (c *CLI) matrixListCommand() *cobra.Command {
	var matricesPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all registered zone matrices",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := c.newEngine(matricesPath)
			if err != nil {
				return err
			}
			for _, name := range engine.MatrixNames() {
				m, _ := engine.Matrix(name)
				marker := ""
				if name == hover.MatrixDefault {
					marker = StyleDim.Render("  (default)")
				}
				fmt.Printf("%-16s %dx%d%s\n", name, m.RowCount(), m.CellCount(), marker)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&matricesPath, "matrices", "", "TOML file with custom zone matrices")
	return cmd
}

func (c *CLI) matrixShowCommand() *cobra.Command {
	var matricesPath string

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a zone matrix as a grid of zone codes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := c.newEngine(matricesPath)
			if err != nil {
				return err
			}
			name := args[0]
			m, ok := engine.Matrix(name)
			if !ok {
				return fmt.Errorf("unknown matrix %q (have %s)",
					name, strings.Join(engine.MatrixNames(), ", "))
			}

			printKeyValue("matrix", name)
			printKeyValue("size", fmt.Sprintf("%d rows x %d cells", m.RowCount(), m.CellCount()))
			fmt.Println()
			for row := 0; row < m.RowCount(); row++ {
				var line []string
				for cell := 0; cell < m.CellCount(); cell++ {
					line = append(line, m.At(hover.MatrixIndex{Row: row, Cell: cell}).String())
				}
				fmt.Println("  " + strings.Join(line, " "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&matricesPath, "matrices", "", "TOML file with custom zone matrices")
	return cmd
}

func (c *CLI) matrixValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a TOML matrix definition file",
		Long: `Validate a TOML matrix definition file.

Validation runs the same checks the engine runs at construction time: the
grids must be rectangular and non-empty, every zone code must be known, and
every zone class must have an interpreter.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			custom, err := hover.LoadMatrixFile(path)
			if err != nil {
				printError("%v", err)
				return err
			}
			if _, err := hover.New(hover.WithLogger(c.Logger), hover.WithMatrices(custom)); err != nil {
				printError("%v", err)
				return err
			}
			for name, m := range custom {
				printSuccess("%s: %dx%d", name, m.RowCount(), m.CellCount())
			}
			printInfo("%d matrices valid", len(custom))
			return nil
		},
	}
}
