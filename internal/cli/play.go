package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dockyard/pkg/dock"
	"github.com/matzehuels/dockyard/pkg/dock/dnd"
	"github.com/matzehuels/dockyard/pkg/observability"
)

const playHelp = "j/k move  enter drag/drop  t/b/l/r/n side  a append  x tear out  esc cancel  c collapse  s select  w close  q quit"

func (c *CLI) playCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Rearrange the sample workspace interactively",
		Long: `Open an interactive playground on the sample workspace.

Move the cursor over dockables, press enter to pick one up, move to another
dockable and press enter again to drop it into that space's tab row in front
of the cursor. Choose t, b, l or r first to split against an edge instead,
or press x to tear the dockable out into a floating window.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Log lines would tear the alternate screen; events are shown in
			// the playground instead.
			c.Logger.SetOutput(io.Discard)

			m := c.newPlayModel()
			p := tea.NewProgram(m,
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen(),
			)
			_, err := p.Run()
			return err
		},
	}
}

// =============================================================================
// Hint canvas
// =============================================================================

// hintCanvas remembers the hint currently on screen.
type hintCanvas struct {
	target dnd.Destination
	side   dock.Side
}

func (h *hintCanvas) DrawHint(t dnd.Destination, side dock.Side) { h.target, h.side = t, side }

func (h *hintCanvas) Clear(t dnd.Destination) {
	if h.target == t {
		h.target = nil
	}
}

// =============================================================================
// Event log
// =============================================================================

// eventLog keeps the last few drag and tree events for display.
type eventLog struct {
	lines []string
	max   int
}

func (l *eventLog) add(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
	if len(l.lines) > l.max {
		l.lines = l.lines[len(l.lines)-l.max:]
	}
}

func (l *eventLog) OnDragStart(d string, group int) { l.add("drag %s (group %d)", d, group) }
func (l *eventLog) OnCancel(d, reason string)       { l.add("cancel %s: %s", d, reason) }
func (l *eventLog) OnPrune(layout, kind string)     { l.add("prune %s %s", kind, short(layout)) }

func (l *eventLog) OnDrop(d, outcome string, took time.Duration) {
	l.add("drop %s %s in %s", d, outcome, took.Round(time.Millisecond))
}

func (l *eventLog) OnExtract(d string, width, height int) {
	l.add("window for %s at %dx%d", d, width, height)
}

func (l *eventLog) OnCollapse(split, child string, collapsed bool) {
	verb := "expand"
	if collapsed {
		verb = "collapse"
	}
	l.add("%s %s", verb, short(child))
}

// =============================================================================
// PlayModel - Interactive playground
// =============================================================================

// PlayModel is the bubbletea model of the playground. The tree it edits is
// shared between copies of the model.
type PlayModel struct {
	sample *sample
	engine *dnd.Engine
	canvas *hintCanvas
	events *eventLog

	Cursor int
	Side   dock.Side
	Append bool
	Status string
}

func (c *CLI) newPlayModel() PlayModel {
	s := c.newSample()
	canvas := &hintCanvas{}
	events := &eventLog{max: 6}
	observability.SetDragHooks(events)
	observability.SetTreeHooks(events)
	return PlayModel{
		sample: s,
		engine: c.newEngine(s.ws, dnd.WithCanvas(canvas)),
		canvas: canvas,
		events: events,
	}
}

func (m PlayModel) dockables() []*dock.Dockable {
	var out []*dock.Dockable
	for _, r := range m.sample.ws.Roots() {
		out = append(out, r.Dockables()...)
	}
	return out
}

func (m PlayModel) current() *dock.Dockable {
	ds := m.dockables()
	if len(ds) == 0 {
		return nil
	}
	return ds[min(m.Cursor, len(ds)-1)]
}

func (m PlayModel) Init() tea.Cmd {
	return nil
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		if !m.engine.Session().Active() {
			return m, tea.Quit
		}
		m.engine.Cancel()
		m.engine.End()
		m.Status = "cancelled"
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		m.hover()
	case "down", "j":
		if m.Cursor < len(m.dockables())-1 {
			m.Cursor++
		}
		m.hover()
	case "t", "b", "l", "r", "n":
		m.Side = sideKeys[key.String()]
		m.hover()
	case "a":
		m.Append = !m.Append
		m.hover()
	case "enter", " ":
		m.pickOrDrop()
	case "x":
		m.tearOut()
	case "c":
		if d := m.current(); d != nil && d.Space().ToggleCollapsed() {
			m.Status = "toggled " + d.Title()
		} else {
			m.Status = "cannot collapse here"
		}
	case "s":
		if d := m.current(); d != nil && d.Space().SelectDockable(d) {
			m.Status = "selected " + d.Title()
		}
	case "w":
		if d := m.current(); d != nil && !m.engine.Session().Active() {
			title := d.Title()
			if d.Space().CloseDockable(d) {
				m.Status = "closed " + title
				m.clampCursor()
			} else {
				m.Status = title + " is not closable"
			}
		}
	}
	return m, nil
}

var sideKeys = map[string]dock.Side{
	"t": dock.SideTop,
	"b": dock.SideBottom,
	"l": dock.SideLeft,
	"r": dock.SideRight,
	"n": dock.SideNone,
}

// dropEvent places a tab row drop in front of the cursor, or at the end.
func (m PlayModel) dropEvent(d *dock.Dockable) dnd.DropEvent {
	if m.Append || d == nil {
		return dnd.AtEnd
	}
	return dnd.DropEvent{Index: d.Space().IndexOf(d)}
}

func (m *PlayModel) hover() {
	if !m.engine.Session().Active() {
		return
	}
	d := m.current()
	if d == nil {
		return
	}
	m.engine.Hover(m.engine.Target(d.Space()), m.dropEvent(d), m.Side)
}

func (m *PlayModel) pickOrDrop() {
	d := m.current()
	if d == nil {
		return
	}
	if !m.engine.Session().Active() {
		if _, ok := m.engine.Begin(d); ok {
			m.Status = "dragging " + d.Title()
			m.hover()
		} else {
			m.Status = d.Title() + " cannot be dragged"
		}
		return
	}

	dragged := m.engine.Session().Dockable()
	target := m.engine.Target(d.Space())
	outcome, ok := m.engine.Drop(target, m.dropEvent(d), m.Side)
	m.engine.End()
	if ok {
		m.Status = fmt.Sprintf("%s %s %s", dragged.Title(), iconArrow, outcome)
	} else {
		m.Status = "drop refused: " + m.engine.Session().Reason()
	}
	m.Side = dock.SideNone
	m.clampCursor()
}

func (m *PlayModel) tearOut() {
	if !m.engine.Session().Active() {
		m.Status = "pick a dockable up first"
		return
	}
	dragged := m.engine.Session().Dockable()
	_, ok := m.engine.Drop(nil, dnd.AtEnd, dock.SideNone)
	m.engine.End()
	if ok {
		m.Status = dragged.Title() + " " + iconArrow + " new window"
	} else {
		m.Status = "tear out refused: " + m.engine.Session().Reason()
	}
	m.clampCursor()
}

func (m *PlayModel) clampCursor() {
	if n := len(m.dockables()); m.Cursor >= n {
		m.Cursor = max(n-1, 0)
	}
}

func (m PlayModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Dockyard Playground"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(playHelp))
	b.WriteString("\n\n")

	cursor := m.current()
	session := m.engine.Session()
	opts := outlineOptions{mark: func(d *dock.Dockable, label string) string {
		if session.Active() && d == session.Dockable() {
			label += StyleDim.Render(" (dragging)")
		}
		if d == cursor {
			return styleCursor.Render("▸") + label
		}
		return label
	}}
	b.WriteString(renderOutline(opts, m.sample.ws.Roots()...))
	b.WriteString("\n\n")

	mode := "tab row"
	if m.Side != dock.SideNone {
		mode = "split " + m.Side.String()
	} else if m.Append {
		mode = "tab row, append"
	}
	b.WriteString(StyleDim.Render("drop: ") + StyleValue.Render(mode))
	if m.canvas.target != nil {
		b.WriteString("  " + styleHint.Render("hint "+m.canvas.side.String()))
	}
	b.WriteString("\n")
	if m.Status != "" {
		b.WriteString(StyleSuccess.Render(m.Status))
		b.WriteString("\n")
	}
	for _, line := range m.events.lines {
		b.WriteString(StyleDim.Render("  " + line))
		b.WriteString("\n")
	}
	return b.String()
}
