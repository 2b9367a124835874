package dock

import "fmt"

// Layout is a structural node of a docking tree. The set of variants is
// closed: [Root], [Split] and [Leaf].
//
// A Root owns exactly one child layout, a Split owns an ordered list of
// child layouts, and a Leaf owns exactly one [Space]. Every non-root node
// keeps a non-owning reference to its parent; the parent's child list is
// authoritative and the reference is updated by the same mutator that
// changes the list.
type Layout interface {
	ID() ID
	Workspace() *Workspace
	// Parent returns the containing Split or Root, or nil when detached.
	Parent() Layout
	// Root returns the root at the top of the live parent chain, or nil.
	Root() *Root

	// Dockables lists every dockable in the subtree, depth first.
	Dockables() []*Dockable

	FindLayout(id ID) (*LayoutPath, bool)
	FindSpace(id ID) (*SpacePath, bool)
	FindDockable(id ID) (*DockablePath, bool)

	// RemoveDockable removes d from whichever leaf in the subtree holds it,
	// ignoring its closable flag.
	RemoveDockable(d *Dockable) bool
	// CloseDockable closes d if it is closable; see [Space.CloseDockable].
	CloseDockable(d *Dockable) bool

	// ReplaceChildLayout puts replacement at child's index. A Split hands
	// child's allocated size to the replacement.
	ReplaceChildLayout(child, replacement Layout) bool
	// RemoveChildLayout removes child and simplifies the tree upward: a
	// Split left with one child is replaced by it, and a Split left with none
	// removes itself.
	RemoveChildLayout(child Layout) bool
	// RemoveFromParent detaches the node from its parent with the same
	// cascade as RemoveChildLayout.
	RemoveFromParent() bool

	// AsSplitWith wraps the node and other into a new Split along side's
	// axis. Top and left place other first; bottom, right and SideNone place
	// it last. other must be detached. The caller splices the returned split
	// into the former parent with ReplaceChildLayout; a Root does this
	// itself.
	AsSplitWith(other Layout, side Side) *Split
	// AsSplitWithSpace is AsSplitWith with space wrapped in a new Leaf.
	AsSplitWithSpace(space Space, side Side) *Split

	// Size returns the last size given to Resize.
	Size() (width, height int)
	// Resize lays the subtree out in a region of the given pixel size.
	Resize(width, height int)

	setParent(parent Layout)
	findLayout(id ID, b *PathBuilder) (*LayoutPath, bool)
	findSpace(id ID, b *PathBuilder) (*SpacePath, bool)
	findDockable(id ID, b *PathBuilder) (*DockablePath, bool)
}

// LayoutKind identifies a [Layout] variant.
type LayoutKind int

const (
	LayoutLeaf LayoutKind = iota
	LayoutSplit
	LayoutRoot
)

func (k LayoutKind) String() string {
	switch k {
	case LayoutLeaf:
		return "leaf"
	case LayoutSplit:
		return "split"
	case LayoutRoot:
		return "root"
	}
	return "unknown"
}

// KindOf returns l's variant. It panics on a variant this package does not
// define.
func KindOf(l Layout) LayoutKind {
	switch l.(type) {
	case *Leaf:
		return LayoutLeaf
	case *Split:
		return LayoutSplit
	case *Root:
		return LayoutRoot
	}
	panic(fmt.Sprintf("dock: unreachable layout variant %T", l))
}

// node holds the fields shared by every layout variant.
type node struct {
	id            ID
	ws            *Workspace
	parent        Layout
	width, height int
}

func newNode(ws *Workspace) node { return node{id: NewID(), ws: ws} }

func (n *node) ID() ID                    { return n.id }
func (n *node) Workspace() *Workspace     { return n.ws }
func (n *node) Parent() Layout            { return n.parent }
func (n *node) Size() (width, height int) { return n.width, n.height }

// reparent updates self's parent reference and reports the change.
func (n *node) reparent(self, parent Layout) {
	old := n.parent
	if old == parent {
		return
	}
	n.parent = parent
	n.ws.emit(Event{Kind: EventParentChanged, Layout: self, OldParent: old, NewParent: parent})
}

func rootOf(l Layout) *Root {
	for l != nil {
		if r, ok := l.(*Root); ok {
			return r
		}
		l = l.Parent()
	}
	return nil
}

// detachFrom clears child's parent reference if it still points at parent.
// A node that was re-parented before its old parent let go keeps its new
// parent.
func detachFrom(child, parent Layout) {
	if child.Parent() == parent {
		child.setParent(nil)
	}
}

func asSplitWith(self, other Layout, side Side) *Split {
	if other == nil || other == self || other.Parent() != nil {
		return nil
	}
	if _, ok := other.(*Root); ok {
		return nil
	}
	first, second := self, other
	if side.Leading() {
		first, second = other, self
	}
	s := &Split{node: newNode(self.Workspace()), axis: side.Axis()}
	s.children = []*splitChild{
		{layout: first, fraction: 0.5, resizable: true},
		{layout: second, fraction: 0.5, resizable: true},
	}
	first.setParent(s)
	second.setParent(s)
	s.node.width, s.node.height = self.Size()
	s.relayout()
	s.ws.debug("split created", "split", s.id, "axis", s.axis, "side", side)
	return s
}
