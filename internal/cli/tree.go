package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) treeCommand() *cobra.Command {
	var opts outlineOptions
	var list bool

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the sample workspace",
		Long: `Print the layout tree of the sample workspace, one block per window.

The selected dockable of each space is marked with "*". Use --list for a
table of every dockable and its path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := c.newSample()
			out := cmd.OutOrStdout()
			if list {
				fmt.Fprintln(out, renderDockableTable(s.ws.Roots()...))
				return nil
			}
			fmt.Fprintln(out, renderOutline(opts, s.ws.Roots()...))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.ids, "ids", false, "show layout ids")
	cmd.Flags().BoolVar(&opts.sizes, "sizes", false, "show laid out sizes")
	cmd.Flags().BoolVar(&list, "list", false, "list dockables instead of the tree")

	return cmd
}
