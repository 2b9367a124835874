// Package pkg provides the libraries behind dockyard, a docking layout engine.
//
// # Overview
//
// Dockyard arranges dockable panels into trees of splits and tabbed spaces
// and rearranges them by drag and drop. The pkg directory is organized as:
//
//  1. [dock] - The layout model: dockables, spaces, splits, roots, paths and
//     collapsing
//  2. [dock/dnd] - Drag-and-drop reconciliation: payloads, drag sessions,
//     drop rules and tearing dockables out into floating windows
//  3. [config] - TOML configuration mapped onto workspace and engine options
//  4. [render/dot] - Graphviz export of layout trees for debugging
//  5. [observability] - Hooks for drag and tree events
//  6. [errors] - Coded errors shared by every package
//
// # Architecture
//
// A [dock.Workspace] owns the shared state of one application: defaults for
// new spaces, event listeners and the set of shown roots, one per window.
//
//	dock.Workspace
//	   └── dock.Root (one per window)
//	        └── dock.Split / dock.Leaf
//	             └── dock.Space (empty, single or tabbed)
//	                  └── dock.Dockable
//
// Structural edits go through the layout nodes, which keep parent links and
// simplify the tree as children disappear. Drag gestures go through a
// [dnd.Engine], which asks a drop target whether it accepts the dockable,
// applies the move and drains any deferred cleanup.
//
// # Quick Start
//
//	ws := dock.NewWorkspace()
//	editor := dock.MustDockable(buffer, dock.WithTitle("main.go"))
//	console := dock.MustDockable(term, dock.WithTitle("Console"))
//
//	root := ws.MustRoot(ws.NewLeaf(ws.NewTabbedSpace(editor, console)))
//	root.Resize(1200, 800)
//	root.Show()
//
//	engine := dnd.NewEngine(ws)
//	engine.Begin(console)
//	target := engine.Target(editor.Space())
//	engine.Drop(target, dnd.AtEnd, dock.SideBottom) // console now sits below
//
// [dock]: https://pkg.go.dev/github.com/matzehuels/dockyard/pkg/dock
// [dock/dnd]: https://pkg.go.dev/github.com/matzehuels/dockyard/pkg/dock/dnd
// [config]: https://pkg.go.dev/github.com/matzehuels/dockyard/pkg/config
// [render/dot]: https://pkg.go.dev/github.com/matzehuels/dockyard/pkg/render/dot
// [observability]: https://pkg.go.dev/github.com/matzehuels/dockyard/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/dockyard/pkg/errors
package pkg
