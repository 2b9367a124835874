package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dockyard/pkg/config"
)

func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration as TOML: the built-in defaults with the
config file applied on top. The output is a valid config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Config.Encode(cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the default config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			if _, err := os.Stat(path); err != nil {
				printWarning(cmd.ErrOrStderr(), "no file at this location, defaults apply")
			}
			return nil
		},
	})

	return cmd
}
