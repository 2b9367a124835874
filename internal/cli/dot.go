package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dockyard/pkg/errors"
	"github.com/matzehuels/dockyard/pkg/render/dot"
)

func (c *CLI) dotCommand() *cobra.Command {
	var (
		opts   dot.Options
		svg    bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Export the sample workspace as a Graphviz graph",
		Long: `Export the layout tree of the sample workspace in DOT format, or as SVG
with --svg. Output goes to stdout unless --output is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := c.newSample()
			data := []byte(dot.ToDOT(opts, s.ws.Roots()...))

			if svg {
				prog := newProgress(loggerFromContext(cmd.Context()))
				rendered, err := dot.RenderSVG(cmd.Context(), string(data))
				if err != nil {
					return err
				}
				prog.done("Rendered SVG")
				data = rendered
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "write %s", output)
			}
			printSuccess(cmd.ErrOrStderr(), "Exported %s", formatName(svg))
			printFile(cmd.ErrOrStderr(), output)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "include ids, sizes and split fractions")
	cmd.Flags().BoolVar(&svg, "svg", false, "render SVG instead of DOT")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")

	return cmd
}

func formatName(svg bool) string {
	if svg {
		return "SVG"
	}
	return "DOT"
}
