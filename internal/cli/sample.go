package cli

import (
	"github.com/matzehuels/dockyard/pkg/dock"
	"github.com/matzehuels/dockyard/pkg/errors"
)

// termWindow is the stand-in for a platform window. Nothing is drawn; the
// CLI only reports which windows exist.
type termWindow struct {
	name     string
	floating bool
	closed   bool
}

func (w *termWindow) Close()         { w.closed = true }
func (w *termWindow) Floating() bool { return w.floating }

func newTermWindow(_ dock.Window, d *dock.Dockable, _, _ int) (dock.Window, error) {
	return &termWindow{name: d.Title(), floating: true}, nil
}

// sample is the demo workspace every command operates on:
//
//	root
//	└── split horizontal
//	    ├── tabbed [Files, Outline]
//	    ├── split vertical
//	    │   ├── tabbed [main.go, README.md]
//	    │   └── tabbed [Console, Problems]
//	    └── single [Preview]
type sample struct {
	ws     *dock.Workspace
	root   *dock.Root
	window *termWindow
}

type sampleDockable struct {
	id, title string
	group     int
	body      string
}

var (
	sampleSide = []sampleDockable{
		{"files", "Files", 0, "cmd/\ninternal/\npkg/"},
		{"outline", "Outline", 0, "func main()"},
	}
	sampleEditor = []sampleDockable{
		{"main.go", "main.go", 0, "package main"},
		{"readme", "README.md", 0, "# dockyard"},
	}
	sampleBottom = []sampleDockable{
		{"console", "Console", 0, "$ go test ./..."},
		{"problems", "Problems", 0, "no problems"},
	}
	samplePreview = sampleDockable{"preview", "Preview", 1, "<html/>"}
)

// newSample builds the demo workspace from c.Config, shows it and lays it out.
func (c *CLI) newSample() *sample {
	ws := c.newWorkspace()
	tabs := func(specs []sampleDockable) *dock.Leaf {
		return ws.NewLeaf(ws.NewTabbedSpace(c.newDockables(specs)...))
	}

	preview := ws.MustSingleSpace(c.newDockables([]sampleDockable{samplePreview})[0])
	split := ws.NewSplit(dock.AxisHorizontal,
		tabs(sampleSide),
		ws.NewSplit(dock.AxisVertical, tabs(sampleEditor), tabs(sampleBottom)),
		ws.NewLeaf(preview),
	)

	s := &sample{ws: ws, root: ws.MustRoot(split), window: &termWindow{name: appName}}
	s.root.SetWindow(s.window)
	s.root.Resize(sampleWidth, sampleHeight)
	s.root.Show()
	return s
}

func (c *CLI) newDockables(specs []sampleDockable) []*dock.Dockable {
	out := make([]*dock.Dockable, len(specs))
	for i, spec := range specs {
		opts := append(c.Config.DockableOptions(),
			dock.WithID(dock.ID(spec.id)),
			dock.WithTitle(spec.title),
			dock.WithDragGroup(spec.group),
		)
		out[i] = dock.MustDockable(spec.body, opts...)
	}
	return out
}

// dockable looks id up across every shown window.
func (s *sample) dockable(id string) (*dock.Dockable, error) {
	p, ok := s.ws.ResolveDockable(dock.ID(id))
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "no dockable %q", id)
	}
	return p.Dockable(), nil
}
