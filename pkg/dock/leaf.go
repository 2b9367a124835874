package dock

// Leaf is a layout node that owns exactly one [Space]. The space is never
// nil: an [EmptySpace] stands in when there is nothing else.
type Leaf struct {
	node
	space Space
}

// NewLeaf creates a leaf owning space. A nil space is replaced by a new
// [EmptySpace]. A space already owned by another leaf is moved, and that
// leaf falls back to an empty space.
func (w *Workspace) NewLeaf(space Space) *Leaf {
	l := &Leaf{node: newNode(w)}
	l.install(space)
	return l
}

// Space returns the owned space.
func (l *Leaf) Space() Space { return l.space }

// SetSpace installs space, releasing the previous one. A nil space installs
// a new [EmptySpace]. When the leaf is collapsed in its split, the new space
// is collapsed too, or the leaf is expanded if the new space is empty.
func (l *Leaf) SetSpace(space Space) {
	if space == l.space && space != nil {
		return
	}
	old := l.space
	l.install(space)
	if old != nil && old.Leaf() == l {
		old.base().leaf = nil
		old.setCollapsed(false)
	}
	l.ws.debug("leaf space changed", "leaf", l.id, "space", l.space.ID(), "kind", l.space.Kind())
	l.syncCollapsed()
}

func (l *Leaf) syncCollapsed() {
	split, ok := l.parent.(*Split)
	if !ok {
		return
	}
	i := split.IndexOf(l)
	if i < 0 || !split.children[i].collapsed {
		return
	}
	if l.space.Kind() == SpaceEmpty {
		split.expand(i)
		return
	}
	l.space.setCollapsed(true)
	split.pinCollapsed()
	split.relayout()
}

func (l *Leaf) install(space Space) {
	if space == nil {
		space = l.ws.NewEmptySpace()
	}
	if prev := space.Leaf(); prev != nil && prev != l {
		prev.space = prev.ws.NewEmptySpace()
		prev.space.base().leaf = prev
		space.setCollapsed(false)
		prev.syncCollapsed()
	}
	space.base().leaf = l
	l.space = space
}

func (l *Leaf) Root() *Root { return rootOf(l) }

func (l *Leaf) Dockables() []*Dockable { return l.space.Dockables() }

// Content returns what the leaf displays: its space's content.
func (l *Leaf) Content() any { return l.space.Content() }

func (l *Leaf) RemoveDockable(d *Dockable) bool {
	if !l.space.Contains(d) {
		return false
	}
	return l.space.RemoveDockable(d)
}

func (l *Leaf) CloseDockable(d *Dockable) bool {
	if !l.space.Contains(d) {
		return false
	}
	return l.space.CloseDockable(d)
}

// ReplaceChildLayout always fails: a leaf has no child layouts.
func (l *Leaf) ReplaceChildLayout(Layout, Layout) bool { return false }

// RemoveChildLayout always fails: a leaf has no child layouts.
func (l *Leaf) RemoveChildLayout(Layout) bool { return false }

func (l *Leaf) RemoveFromParent() bool {
	if l.parent == nil {
		return false
	}
	return l.parent.RemoveChildLayout(l)
}

func (l *Leaf) AsSplitWith(other Layout, side Side) *Split {
	return asSplitWith(l, other, side)
}

func (l *Leaf) AsSplitWithSpace(space Space, side Side) *Split {
	return asSplitWith(l, l.ws.NewLeaf(space), side)
}

func (l *Leaf) Resize(width, height int) {
	l.width, l.height = width, height
}

func (l *Leaf) setParent(parent Layout) { l.reparent(l, parent) }
