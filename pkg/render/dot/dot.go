package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/dockyard/pkg/dock"
	"github.com/matzehuels/dockyard/pkg/errors"
)

// Options configures DOT export.
type Options struct {
	// Detailed adds ids, sizes and split fractions to labels.
	Detailed bool
}

// ToDOT converts the trees under roots to Graphviz DOT format. Each root
// becomes a cluster. Nodes are numbered in depth-first order so the output
// is stable for a given tree shape.
//
// Collapsed split children are drawn dashed and the selected dockable of a
// space is drawn bold.
func ToDOT(opts Options, roots ...*dock.Root) string {
	w := &writer{opts: opts}
	w.line("digraph G {")
	w.line(`  rankdir=TB;`)
	w.line(`  bgcolor="transparent";`)
	w.line(`  node [shape=box, style="rounded,filled", fillcolor=white, fontsize=14, margin="0.2,0.1"];`)
	w.line(`  ranksep=0.4;`)
	w.line(`  nodesep=0.3;`)

	for i, r := range roots {
		if r == nil {
			continue
		}
		w.line("")
		fmt.Fprintf(&w.buf, "  subgraph cluster_%d {\n", i)
		fmt.Fprintf(&w.buf, "    label=%q;\n", windowLabel(i, r))
		w.line(`    style="rounded,dashed";`)
		w.layout(r, nil)
		w.line("  }")
	}

	if len(w.edges) > 0 {
		w.line("")
		for _, e := range w.edges {
			w.line(e)
		}
	}
	w.line("}")
	return w.buf.String()
}

type writer struct {
	opts  Options
	buf   bytes.Buffer
	next  int
	edges []string
}

func (w *writer) line(s string) {
	w.buf.WriteString(s)
	w.buf.WriteByte('\n')
}

func (w *writer) node(label string, attrs ...string) string {
	name := "n" + strconv.Itoa(w.next)
	w.next++
	attrs = append([]string{fmt.Sprintf("label=%q", label)}, attrs...)
	fmt.Fprintf(&w.buf, "    %s [%s];\n", name, strings.Join(attrs, ", "))
	return name
}

func (w *writer) edge(from, to string, attrs ...string) {
	e := fmt.Sprintf("  %s -> %s", from, to)
	if len(attrs) > 0 {
		e += " [" + strings.Join(attrs, ", ") + "]"
	}
	w.edges = append(w.edges, e+";")
}

func (w *writer) layout(l dock.Layout, parent *dock.Split) string {
	label := dock.KindOf(l).String()
	var attrs []string
	if s, ok := l.(*dock.Split); ok {
		label += " " + s.Axis().String()
		attrs = append(attrs, "fillcolor=lightgrey")
	}
	if parent != nil && parent.IsChildCollapsed(l) {
		attrs = append(attrs, `style="rounded,filled,dashed"`)
	}
	name := w.node(w.detail(label, l.ID(), l), attrs...)

	switch n := l.(type) {
	case *dock.Root:
		w.edge(name, w.layout(n.Child(), nil))
	case *dock.Split:
		for _, c := range n.Children() {
			var edgeAttrs []string
			if w.opts.Detailed {
				edgeAttrs = append(edgeAttrs, fmt.Sprintf("label=\"%.0f%%\"", n.ChildPercent(c)))
			}
			w.edge(name, w.layout(c, n), edgeAttrs...)
		}
	case *dock.Leaf:
		w.edge(name, w.space(n.Space()))
	}
	return name
}

func (w *writer) space(s dock.Space) string {
	label := s.Kind().String()
	if s.Kind() != dock.SpaceEmpty {
		label += " [" + s.HeaderSide().String() + "]"
	}
	var attrs []string
	if s.IsCollapsed() {
		attrs = append(attrs, `style="rounded,filled,dashed"`)
	}
	name := w.node(w.detail(label, s.ID(), nil), attrs...)

	selected := s.Selected()
	for _, d := range s.Dockables() {
		attrs := []string{"shape=ellipse"}
		if d == selected {
			attrs = append(attrs, "penwidth=2", `fontname="bold"`)
		}
		w.edge(name, w.node(w.detail(dockableLabel(d), d.ID(), nil), attrs...))
	}
	return name
}

func (w *writer) detail(label string, id dock.ID, l dock.Layout) string {
	if !w.opts.Detailed {
		return label
	}
	parts := []string{label, "id: " + short(id)}
	if l != nil {
		width, height := l.Size()
		parts = append(parts, fmt.Sprintf("size: %dx%d", width, height))
	}
	return strings.Join(parts, "\n")
}

func dockableLabel(d *dock.Dockable) string {
	if d.Title() != "" {
		return d.Title()
	}
	return short(d.ID())
}

func windowLabel(i int, r *dock.Root) string {
	label := fmt.Sprintf("window %d", i)
	if win := r.Window(); win != nil && win.Floating() {
		label += " (floating)"
	}
	return label
}

func short(id dock.ID) string {
	if len(id) > 8 {
		return string(id[:8])
	}
	return string(id)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render SVG")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
