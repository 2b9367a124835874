package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/matzehuels/dockyard/pkg/dock"
)

// outlineOptions controls what renderOutline prints besides the shape.
type outlineOptions struct {
	ids   bool
	sizes bool
	// mark, if set, decorates the dockable under the playground cursor.
	mark func(d *dock.Dockable, label string) string
}

// renderOutline prints the trees under roots, one block per window.
//
//	window 0 (dockyard)
//	└── split horizontal
//	    ├── 33% tabbed: Files* Outline
//	    ...
//
// The selected dockable of each space carries a "*".
func renderOutline(opts outlineOptions, roots ...*dock.Root) string {
	blocks := make([]string, 0, len(roots))
	for i, r := range roots {
		t := tree.Root(StyleTitle.Render(windowTitle(i, r))).
			EnumeratorStyle(StyleDim).
			Child(outlineLayout(opts, r.Child(), nil))
		blocks = append(blocks, t.String())
	}
	return strings.Join(blocks, "\n\n")
}

func windowTitle(i int, r *dock.Root) string {
	name := appName
	if w, ok := r.Window().(*termWindow); ok && w.name != "" {
		name = w.name
	}
	if w := r.Window(); w != nil && w.Floating() {
		return fmt.Sprintf("window %d (%s, floating)", i, name)
	}
	return fmt.Sprintf("window %d (%s)", i, name)
}

func outlineLayout(opts outlineOptions, l dock.Layout, parent *dock.Split) any {
	var label strings.Builder
	if parent != nil {
		fmt.Fprintf(&label, "%.0f%% ", parent.ChildPercent(l))
	}

	switch n := l.(type) {
	case *dock.Split:
		label.WriteString("split " + n.Axis().String())
		label.WriteString(outlineDetail(opts, n.ID(), n))
		t := tree.Root(label.String())
		for _, c := range n.Children() {
			t.Child(outlineLayout(opts, c, n))
		}
		return t
	case *dock.Leaf:
		label.WriteString(outlineSpace(opts, n.Space()))
		if parent != nil && parent.IsChildCollapsed(n) {
			label.WriteString(" " + StyleDim.Render("(collapsed)"))
		}
		label.WriteString(outlineDetail(opts, n.Space().ID(), n))
		return label.String()
	}
	return label.String()
}

func outlineSpace(opts outlineOptions, s dock.Space) string {
	if s.Kind() == dock.SpaceEmpty {
		return StyleDim.Render("empty")
	}
	names := make([]string, 0, s.Len())
	for _, d := range s.Dockables() {
		name := d.Title()
		if d == s.Selected() {
			name = StyleHighlight.Render(name + "*")
		}
		if opts.mark != nil {
			name = opts.mark(d, name)
		}
		names = append(names, name)
	}
	return s.Kind().String() + ": " + strings.Join(names, " ")
}

func outlineDetail(opts outlineOptions, id dock.ID, l dock.Layout) string {
	var parts []string
	if opts.ids {
		parts = append(parts, short(id.String()))
	}
	if opts.sizes {
		w, h := l.Size()
		parts = append(parts, fmt.Sprintf("%dx%d", w, h))
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + StyleDim.Render("("+strings.Join(parts, ", ")+")")
}

// renderDockableTable lists every dockable with its path.
func renderDockableTable(roots ...*dock.Root) string {
	var rows [][]string
	for _, r := range roots {
		for _, d := range r.Dockables() {
			path := "-"
			if p, ok := d.Path(); ok {
				path = p.String()
			}
			kind := "-"
			if s := d.Space(); s != nil {
				kind = s.Kind().String()
			}
			rows = append(rows, []string{d.ID().String(), d.Title(), kind, fmt.Sprint(d.DragGroup()), path})
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("ID", "Title", "Space", "Group", "Path").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	return t.Render()
}
