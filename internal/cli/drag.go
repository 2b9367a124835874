package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dockyard/pkg/dock"
	"github.com/matzehuels/dockyard/pkg/dock/dnd"
	"github.com/matzehuels/dockyard/pkg/errors"
)

// dragOptions describes one gesture on the sample workspace.
type dragOptions struct {
	onto    string
	side    string
	index   int
	outside bool
}

func (c *CLI) dragCommand() *cobra.Command {
	opts := dragOptions{index: -1}

	cmd := &cobra.Command{
		Use:   "drag DOCKABLE",
		Short: "Drag a dockable in the sample workspace",
		Long: `Drag a dockable of the sample workspace and print the resulting tree.

Drop onto the space holding another dockable with --onto. Without --side the
dockable joins that space's tab row at --index (default: the end); with
--side top|bottom|left|right the space is split and the dockable gets its own
space against that edge. --outside releases the dockable outside every
window, which tears it out into a floating window.

Examples:
  dockyard drag outline --onto console
  dockyard drag files --onto main.go --side left
  dockyard drag console --outside`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := c.newSample()
			out := cmd.OutOrStdout()

			outcome, payload, err := c.drag(s, args[0], opts)
			if err != nil {
				return err
			}
			printSuccess(out, "%s %s", StyleValue.Render(args[0]), StyleDim.Render(iconArrow+" "+string(outcome)))
			printKeyValue(out, "payload", payload.String())
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderOutline(outlineOptions{}, s.ws.Roots()...))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.onto, "onto", "", "dockable whose space receives the drop")
	cmd.Flags().StringVar(&opts.side, "side", "", "edge to split against (top, bottom, left, right)")
	cmd.Flags().IntVar(&opts.index, "index", -1, "tab position for a tab row drop (-1 appends)")
	cmd.Flags().BoolVar(&opts.outside, "outside", false, "release outside every window")
	cmd.MarkFlagsMutuallyExclusive("onto", "outside")
	cmd.MarkFlagsOneRequired("onto", "outside")

	return cmd
}

// drag runs the gesture described by opts against s through a drag engine,
// the same way a platform drag would: begin, hover, drop, end.
func (c *CLI) drag(s *sample, id string, opts dragOptions) (dnd.Outcome, dnd.Payload, error) {
	d, err := s.dockable(id)
	if err != nil {
		return dnd.OutcomeNone, dnd.Payload{}, err
	}
	side, ok := dock.ParseSide(opts.side)
	if !ok {
		return dnd.OutcomeNone, dnd.Payload{}, errors.New(errors.ErrCodeInvalidInput, "unknown side %q", opts.side)
	}

	e := c.newEngine(s.ws)
	if _, ok := e.Begin(d); !ok {
		return dnd.OutcomeNone, dnd.Payload{}, errors.New(errors.ErrCodeUnsupported, "%s cannot be dragged", id)
	}

	var outcome dnd.Outcome
	if opts.outside {
		outcome, ok = e.Drop(nil, dnd.AtEnd, dock.SideNone)
	} else {
		var onto *dock.Dockable
		if onto, err = s.dockable(opts.onto); err != nil {
			e.Cancel()
			return dnd.OutcomeNone, dnd.Payload{}, err
		}
		target := e.Target(onto.Space())
		ev := dnd.DropEvent{Index: opts.index}
		if !e.Hover(target, ev, side) {
			c.Logger.Debug("hover refused", "dockable", id, "onto", opts.onto, "side", side)
		}
		outcome, ok = e.Drop(target, ev, side)
	}

	payload := e.End()
	if !ok {
		return dnd.OutcomeNone, payload, errors.New(errors.ErrCodeUnsupported, "drop of %s refused: %s", id, e.Session().Reason())
	}
	return outcome, payload, nil
}
