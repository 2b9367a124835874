// Package dot exports docking trees as Graphviz graphs for debugging.
//
// [ToDOT] walks every root given to it and emits one cluster per window,
// with the layouts, spaces and dockables of that window as nodes:
//
//	src := dot.ToDOT(dot.Options{Detailed: true}, ws.Roots()...)
//	svg, err := dot.RenderSVG(ctx, src)
//
// [RenderSVG] uses the WebAssembly build of Graphviz, so no system
// installation is needed.
package dot
