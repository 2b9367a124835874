// Package dock implements docking layout trees: the recursive structure that
// arranges dockable panels inside the windows of a desktop application.
//
// # Overview
//
// A tree starts at a [Root], which owns exactly one child [Layout]. A
// [Split] arranges an ordered list of child layouts along an [Axis], and a
// [Leaf] owns exactly one [Space]. Spaces come in three variants:
//
//   - [EmptySpace] holds nothing and shows a placeholder
//   - [SingleSpace] holds exactly one [Dockable]
//   - [TabbedSpace] holds an ordered list of dockables, one of them selected
//
// A dockable is in at most one space at a time. Spaces own the membership;
// the dockable only observes which space it is in.
//
// # Workspace
//
// Every node is created through a [Workspace], which holds what the trees
// share: the registry of shown roots used for cross-window lookups, the
// notification [Sink], the placeholder [ContentFactory], the logger and the
// creation [Defaults].
//
//	ws := dock.NewWorkspace(dock.WithLogger(logger))
//	a := dock.MustDockable(editor, dock.WithTitle("main.go"))
//	b := dock.MustDockable(shell, dock.WithTitle("shell"))
//	root := ws.MustRoot(ws.NewSplit(dock.AxisHorizontal,
//	    ws.NewLeaf(ws.NewTabbedSpace(a)),
//	    ws.NewLeaf(ws.NewTabbedSpace(b)),
//	))
//	root.Show()
//	root.Resize(1280, 800)
//
// # Simplification
//
// Removing a child from a split cascades upward: a split left with one child
// is replaced by that child in its own parent, and a split left with none
// removes itself. A root that loses its child either closes its hosting
// [Window] or falls back to a leaf with an empty space. A tabbed space with
// AutoPruneWhenEmpty removes its leaf as soon as its last dockable leaves.
//
// When the last dockable leaves through [Space.DetachDockable], as during a
// drag, the prune is deferred until the next [Workspace.Drain] so that the
// emptied space remains a valid drop target while the drop is handled.
//
// # Paths
//
// [LayoutPath], [SpacePath] and [DockablePath] record a node's ancestry from
// its root. They are produced by the Find methods, which search depth-first
// in child order, by [Workspace.ResolveDockable] and its siblings across all
// shown roots, and by [PathOfDockable] and friends from the live parent
// chain. A path is a snapshot; check Stale before relying on an old one.
//
// # Collapse
//
// The first and last child of a split can collapse down to their header
// strip with [Split.SetChildCollapsed]. The split remembers the child's size
// and restores it on expand. Two adjacent children never collapse at once.
//
// # Threading
//
// Nothing in this package is safe for concurrent use. All calls are expected
// on the single UI event goroutine.
package dock
