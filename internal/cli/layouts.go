package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/layout"
	"github.com/matzehuels/gridboard/pkg/store"
)

// layoutsCommand creates the layouts command group for managing the store.
func (c *CLI) layoutsCommand() *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:   "layouts",
		Short: "Manage stored layouts",
		Long: `Manage the named layout store.

The default backend keeps layouts as JSON files under the user data
directory; Redis and MongoDB backends are available for shared setups via
--store or the config file.`,
	}

	cmd.PersistentFlags().StringVar(&backend, "store", "", "store backend (file, memory, redis, mongo)")

	cmd.AddCommand(c.layoutsListCommand(&backend))
	cmd.AddCommand(c.layoutsSaveCommand(&backend))
	cmd.AddCommand(c.layoutsShowCommand(&backend))
	cmd.AddCommand(c.layoutsDeleteCommand(&backend))

	return cmd
}

func (c *CLI) layoutsListCommand(backend *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored layouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.openStore(ctx, *backend)
			if err != nil {
				return err
			}
			defer st.Close()

			names, err := st.List(ctx)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				printInfo("no layouts stored")
				return nil
			}
			for _, n := range names {
				l, err := st.Get(ctx, n)
				if err != nil {
					printDetail("%s (unreadable: %v)", n, err)
					continue
				}
				fmt.Println(StyleValue.Render(n) + " " +
					StyleDim.Render(fmt.Sprintf("%dx%d, %d cells", l.Columns, l.Rows, len(l.Cells))))
			}
			return nil
		},
	}
}

func (c *CLI) layoutsSaveCommand(backend *string) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "save <layout.json>",
		Short: "Save a layout file to the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			l, err := layout.ReadLayoutFile(args[0])
			if err != nil {
				return err
			}
			if name != "" {
				l.Name = name
			}
			if !store.ValidName(l.Name) {
				return fmt.Errorf("layout name %q is not storable, rename it with --name", l.Name)
			}
			l.EnsureIDs()

			st, err := c.openStore(ctx, *backend)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Set(ctx, l); err != nil {
				return err
			}
			printSuccess("layout %q saved", l.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "store under this name instead of the layout's own")
	return cmd
}

func (c *CLI) layoutsShowCommand(backend *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a stored layout as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.openStore(ctx, *backend)
			if err != nil {
				return err
			}
			defer st.Close()

			l, err := st.Get(ctx, args[0])
			if err != nil {
				return err
			}
			data, err := l.Marshal()
			if err != nil {
				return err
			}
			data = append(data, '\n')
			_, err = os.Stdout.Write(data)
			return err
		},
	}
}

func (c *CLI) layoutsDeleteCommand(backend *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.openStore(ctx, *backend)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Delete(ctx, args[0]); err != nil {
				return err
			}
			printSuccess("layout %q deleted", args[0])
			return nil
		},
	}
}
