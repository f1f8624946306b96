package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/grid"
)

// checkCommand creates the check command for validating layout files.
func (c *CLI) checkCommand() *cobra.Command {
	var (
		name    string
		backend string
	)

	cmd := &cobra.Command{
		Use:   "check [layout.json]",
		Short: "Validate a layout",
		Long: `Validate a layout against the placement rules.

Reports duplicate cell ids, out-of-bounds placements and overlapping
footprints. Exits non-zero when any diagnostic is found.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			l, err := c.loadLayout(ctx, args, name, backend)
			if err != nil {
				return err
			}

			cfg, err := l.Config()
			if err != nil {
				return fmt.Errorf("invalid board: %w", err)
			}

			reg := grid.NewRegistry(cfg)
			diags := reg.SetCells(l.GridCells())

			occ := grid.ComputeOccupancy(cfg, reg.All(), "")
			free := 0
			for row := 1; row <= cfg.Rows; row++ {
				for col := 1; col <= cfg.Columns; col++ {
					if occ.Free(col, row) {
						free++
					}
				}
			}

			printKeyValue("layout", l.Name)
			printKeyValue("board", fmt.Sprintf("%dx%d", cfg.Columns, cfg.Rows))
			printKeyValue("cells", fmt.Sprintf("%d", reg.Len()))
			printKeyValue("free", fmt.Sprintf("%d of %d", free, cfg.Columns*cfg.Rows))

			if len(diags) == 0 {
				printSuccess("layout is valid")
				return nil
			}
			for _, d := range diags {
				printWarning("%s: cell %s: %s", d.Kind, d.CellID, d.Detail)
			}
			return fmt.Errorf("%d diagnostic(s) found", len(diags))
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "check a layout from the store instead of a file")
	cmd.Flags().StringVar(&backend, "store", "", "store backend (file, memory, redis, mongo)")

	return cmd
}
