package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/dockyard/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Every command starts by loading the configuration (--config, or the file
// at config.DefaultPath if it exists), then attaches the logger to the
// command context and routes drag and tree events to it.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Dockyard arranges dockable panels into tabbed, split and floating layouts",
		Long:          `Dockyard is a docking layout engine: dockable panels live in tabbed spaces that are split, collapsed, rearranged by drag and drop, and torn out into floating windows. The CLI drives a sample workspace so the engine can be explored from a terminal.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			installHooks(c.Logger)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/dockyard/config.toml)")

	root.AddCommand(c.treeCommand())
	root.AddCommand(c.dragCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}
