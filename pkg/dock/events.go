package dock

// EventKind identifies a structural change reported to the workspace sink.
type EventKind int

const (
	EventRootAdded EventKind = iota + 1
	EventRootRemoved
	EventChildAdded
	EventChildRemoved
	EventParentChanged
	EventDockableAdded
	EventDockableRemoved
	EventDockableSelected
	EventDockableClosing
	EventDockableParentChanged
)

var eventNames = map[EventKind]string{
	EventRootAdded:             "RootAdded",
	EventRootRemoved:           "RootRemoved",
	EventChildAdded:            "ChildAdded",
	EventChildRemoved:          "ChildRemoved",
	EventParentChanged:         "ParentChanged",
	EventDockableAdded:         "DockableAdded",
	EventDockableRemoved:       "DockableRemoved",
	EventDockableSelected:      "DockableSelected",
	EventDockableClosing:       "DockableClosing",
	EventDockableParentChanged: "DockableParentChanged",
}

func (k EventKind) String() string {
	if n, ok := eventNames[k]; ok {
		return n
	}
	return "Unknown"
}

// Event describes one completed mutation. Only the fields relevant to Kind
// are set:
//
//   - RootAdded/RootRemoved: Root
//   - ChildAdded/ChildRemoved: Layout (the container), Child, Index
//   - ParentChanged: Layout (the moved node), OldParent, NewParent
//   - DockableAdded/DockableRemoved: Space, Dockable, Index
//   - DockableSelected: Space, Dockable (nil when the selection is cleared)
//   - DockableClosing: Space, Dockable, Path (captured before removal)
//   - DockableParentChanged: Dockable, OldSpace, Space
type Event struct {
	Kind      EventKind
	Root      *Root
	Layout    Layout
	Child     Layout
	OldParent Layout
	NewParent Layout
	Space     Space
	OldSpace  Space
	Dockable  *Dockable
	Path      *DockablePath
	Index     int
}

// Sink receives events synchronously after each mutation completes.
type Sink interface {
	Notify(Event)
}

// SinkFunc adapts a function to [Sink].
type SinkFunc func(Event)

// Notify calls f(e).
func (f SinkFunc) Notify(e Event) { f(e) }
