package dot

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dockyard/pkg/dock"
)

type floatingWindow struct{}

func (floatingWindow) Close()         {}
func (floatingWindow) Floating() bool { return true }

func twoPane(t *testing.T) (*dock.Workspace, *dock.Root, *dock.Split) {
	t.Helper()
	ws := dock.NewWorkspace(dock.WithLogger(log.New(io.Discard)))
	a := dock.MustDockable("a", dock.WithID("A"), dock.WithTitle("Files"))
	b := dock.MustDockable("b", dock.WithID("B"), dock.WithTitle("Outline"))
	c := dock.MustDockable("c", dock.WithID("C"), dock.WithTitle("Console"))
	split := ws.NewSplit(dock.AxisVertical,
		ws.NewLeaf(ws.NewTabbedSpace(a, b)),
		ws.NewLeaf(ws.NewTabbedSpace(c)),
	)
	root := ws.MustRoot(split)
	root.Resize(600, 600)
	return ws, root, split
}

func TestToDOT_Basic(t *testing.T) {
	_, root, _ := twoPane(t)

	out := ToDOT(Options{}, root)

	for _, want := range []string{
		"digraph G {",
		"subgraph cluster_0",
		`label="window 0"`,
		`n0 [label="root"]`,
		`n1 [label="split vertical", fillcolor=lightgrey]`,
		`[label="Files", shape=ellipse, penwidth=2, fontname="bold"]`,
		`[label="Outline", shape=ellipse]`,
		"n0 -> n1;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ToDOT() output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "id: ") {
		t.Error("ToDOT() without Detailed printed ids")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	_, root, _ := twoPane(t)

	out := ToDOT(Options{Detailed: true}, root)

	for _, want := range []string{
		`label="root\nid: `,
		`size: 600x600`,
		`size: 600x300`,
		`id: A`,
		`label="50%"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ToDOT(Detailed) output missing %q\n%s", want, out)
		}
	}
}

func TestToDOT_Collapsed(t *testing.T) {
	_, root, split := twoPane(t)
	if !split.SetChildCollapsed(split.Children()[1], true) {
		t.Fatal("SetChildCollapsed() = false")
	}

	out := ToDOT(Options{}, root)

	if n := strings.Count(out, "dashed"); n != 3 {
		// cluster style, collapsed leaf, collapsed space
		t.Errorf("ToDOT() has %d dashed items, want 3\n%s", n, out)
	}
}

func TestToDOT_MultipleWindows(t *testing.T) {
	ws, root, _ := twoPane(t)
	d := dock.MustDockable("d", dock.WithTitle("Preview"))
	floating := ws.MustRoot(ws.NewLeaf(ws.NewTabbedSpace(d)))
	floating.SetWindow(floatingWindow{})

	out := ToDOT(Options{}, root, nil, floating)

	if !strings.Contains(out, "subgraph cluster_0") || !strings.Contains(out, "subgraph cluster_2") {
		t.Errorf("ToDOT() clusters not numbered by position\n%s", out)
	}
	if strings.Contains(out, "cluster_1") {
		t.Error("ToDOT() emitted a cluster for a nil root")
	}
	if !strings.Contains(out, `label="window 2 (floating)"`) {
		t.Errorf("ToDOT() did not mark the floating window\n%s", out)
	}
}

func TestToDOT_EmptyLeaf(t *testing.T) {
	ws := dock.NewWorkspace(dock.WithLogger(log.New(io.Discard)))
	root := ws.MustRoot(nil)

	out := ToDOT(Options{}, root)

	if !strings.Contains(out, `[label="empty"]`) {
		t.Errorf("ToDOT() missing empty space node\n%s", out)
	}
}

func TestRenderSVG(t *testing.T) {
	_, root, _ := twoPane(t)

	svg, err := RenderSVG(context.Background(), ToDOT(Options{}, root))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(svg)), "<") || !strings.Contains(string(svg), "<svg") {
		t.Fatalf("RenderSVG() did not produce SVG: %.200s", svg)
	}
	if !strings.Contains(string(svg), `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `) {
		t.Errorf("RenderSVG() did not normalize the svg tag: %.400s", svg)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "rewrites tag",
			in:   `<svg width="10pt" height="20pt" viewBox="0.00 0.00 10.00 20.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10.00 20.00" width="10" height="20"><g/></svg>`,
		},
		{
			name: "no viewBox",
			in:   `<svg><g/></svg>`,
			want: `<svg><g/></svg>`,
		},
		{
			name: "zero size",
			in:   `<svg viewBox="0 0 0 20"></svg>`,
			want: `<svg viewBox="0 0 0 20"></svg>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(normalizeViewBox([]byte(tt.in))); got != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", got, tt.want)
			}
		})
	}
}
