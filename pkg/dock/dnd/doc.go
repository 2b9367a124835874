// Package dnd reconciles drag-and-drop gestures with docking trees.
//
// A gesture moves one [dock.Dockable]. It starts with [Engine.Begin] in the
// window the user pressed in, or with [Engine.BeginPayload] when a drop
// surface in another window only sees the platform drag payload. While the
// pointer moves, [Engine.Hover] asks the [Destination] under it whether it
// would accept the drop and shows a hint; [Engine.Exit] drops the hint.
// [Engine.Drop] ends the gesture with one of three outcomes:
//
//   - HEADER: the dockable joins the target's tab row, or moves within it
//   - REGION: the target's leaf is split and the dockable gets its own
//     tabbed space against the dropped edge
//   - EXTERNAL: the pointer was released outside every drop surface and the
//     dockable is torn out into a new floating window
//
// A refused or abandoned gesture never changes the tree.
//
// Spaces are made drop surfaces by wrapping them in a [SpaceTarget]:
//
//	engine := dnd.NewEngine(ws, dnd.WithStageFactory(stages))
//	payload, _ := engine.Begin(tab)
//	// ... platform drag carrying payload.String() ...
//	target := engine.Target(space)
//	if engine.Hover(target, dnd.AtEnd, dock.SideNone) {
//	    engine.Drop(target, dnd.AtEnd, dock.SideNone)
//	}
//
// Drag groups partition dockables: once a space holds dockables, it only
// accepts drops of dockables sharing a group with one of them. Direct calls
// to [dock.Space.AddDockable] are not restricted.
package dnd
