package dock

// SpaceKind identifies a [Space] variant.
type SpaceKind int

const (
	SpaceEmpty SpaceKind = iota
	SpaceSingle
	SpaceTabbed
)

func (k SpaceKind) String() string {
	switch k {
	case SpaceEmpty:
		return "empty"
	case SpaceSingle:
		return "single"
	case SpaceTabbed:
		return "tabbed"
	}
	return "unknown"
}

// Space is the leaf-level container that actually holds dockables. The set
// of variants is closed: [EmptySpace], [SingleSpace] and [TabbedSpace].
//
// Mutators report "precondition not met" with false and leave the space
// unchanged. AddDockable and InsertDockable ignore drag groups; group
// compatibility is enforced only by the drag-and-drop path.
type Space interface {
	ID() ID
	Kind() SpaceKind
	Workspace() *Workspace
	// Leaf returns the owning leaf, or nil for a space not yet installed.
	Leaf() *Leaf

	Dockables() []*Dockable
	Len() int
	Contains(d *Dockable) bool
	IndexOf(d *Dockable) int
	Selected() *Dockable

	// CanReceiveDragGroup reports whether the space is empty or holds at
	// least one dockable of group.
	CanReceiveDragGroup(group int) bool
	CanSplit() bool

	HeaderSide() Side
	SetHeaderSide(side Side)
	HeaderExtent() int
	SetHeaderExtent(px int)

	AddDockable(d *Dockable) bool
	InsertDockable(index int, d *Dockable) bool
	// RemoveDockable removes d regardless of its closable flag.
	RemoveDockable(d *Dockable) bool
	// DetachDockable removes d as part of a move. It never closes d, and an
	// auto-prune it triggers waits for the next [Workspace.Drain].
	DetachDockable(d *Dockable) bool
	// CloseDockable closes d if it is closable, notifying listeners before
	// removal.
	CloseDockable(d *Dockable) bool
	SelectDockable(d *Dockable) bool

	IsCollapsed() bool
	// ToggleCollapsed collapses or expands the owning leaf within its split.
	ToggleCollapsed() bool

	// Content returns the selected dockable's payload, or the workspace's
	// empty-content placeholder when nothing is selected.
	Content() any

	base() *spaceBase
	setCollapsed(collapsed bool)
}

type spaceBase struct {
	id           ID
	ws           *Workspace
	leaf         *Leaf
	side         Side
	headerExtent int
	collapsed    bool
}

func newSpaceBase(ws *Workspace) spaceBase {
	d := DefaultDefaults()
	if ws != nil {
		d = ws.defaults
	}
	return spaceBase{id: NewID(), ws: ws, side: d.HeaderSide, headerExtent: d.HeaderExtent}
}

func (b *spaceBase) ID() ID                  { return b.id }
func (b *spaceBase) Workspace() *Workspace   { return b.ws }
func (b *spaceBase) Leaf() *Leaf             { return b.leaf }
func (b *spaceBase) HeaderSide() Side        { return b.side }
func (b *spaceBase) SetHeaderSide(side Side) { b.side = side }
func (b *spaceBase) HeaderExtent() int       { return b.headerExtent }
func (b *spaceBase) IsCollapsed() bool       { return b.collapsed }
func (b *spaceBase) base() *spaceBase        { return b }

func (b *spaceBase) SetHeaderExtent(px int) {
	if px >= 0 {
		b.headerExtent = px
	}
}

// ToggleCollapsed flips the owning leaf's collapsed state in its parent
// split. It fails when the leaf is not a collapsible split child.
func (b *spaceBase) ToggleCollapsed() bool {
	if b.leaf == nil {
		return false
	}
	split, ok := b.leaf.parent.(*Split)
	if !ok {
		return false
	}
	return split.SetChildCollapsed(b.leaf, !b.collapsed)
}

func (b *spaceBase) placeholder() any {
	var parent Layout
	if b.leaf != nil {
		parent = b.leaf
	}
	return b.ws.buildContent(parent)
}

func canReceiveDragGroup(dockables []*Dockable, group int) bool {
	if len(dockables) == 0 {
		return true
	}
	for _, d := range dockables {
		if d.dragGroup == group {
			return true
		}
	}
	return false
}

// closeIn implements CloseDockable for every non-empty variant.
func closeIn(s Space, d *Dockable) bool {
	if d == nil || !s.Contains(d) || !d.closable || d.closed {
		return false
	}
	path, _ := PathOfDockable(d)
	s.Workspace().emit(Event{Kind: EventDockableClosing, Space: s, Dockable: d, Path: path})
	if !s.RemoveDockable(d) {
		return false
	}
	d.destroy()
	s.Workspace().debug("dockable closed", "dockable", d.id, "title", d.title)
	return true
}
