package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/export"
)

// renderCommand creates the render command for static image output.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		name     string
		backend  string
		output   string
		format   string
		cellSize float64
		noLabels bool
	)

	cmd := &cobra.Command{
		Use:   "render [layout.json]",
		Short: "Render a layout to SVG or PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			l, err := c.loadLayout(ctx, args, name, backend)
			if err != nil {
				return err
			}

			if output == "" {
				output = l.Name + "." + format
			}

			opts := []export.Option{export.WithCellSize(cellSize)}
			if noLabels {
				opts = append(opts, export.WithoutLabels())
			}

			prog := newProgress(loggerFromContext(ctx))
			var data []byte
			switch strings.ToLower(format) {
			case "svg":
				data, err = export.RenderSVG(l, opts...)
			case "png":
				data, err = export.RenderPNG(l, opts...)
			default:
				return fmt.Errorf("unknown format %q (want svg or png)", format)
			}
			if err != nil {
				return err
			}

			if err := os.WriteFile(output, data, 0644); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Rendered %d cells", len(l.Cells)))

			printSuccess("layout rendered")
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "render a layout from the store instead of a file")
	cmd.Flags().StringVar(&backend, "store", "", "store backend (file, memory, redis, mongo)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <name>.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format (svg, png)")
	cmd.Flags().Float64Var(&cellSize, "cell-size", 96, "pixel size of a unit cell")
	cmd.Flags().BoolVar(&noLabels, "no-labels", false, "omit cell labels")

	return cmd
}
