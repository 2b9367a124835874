package dock

// Resolution is a depth-first search in child order; the first match wins.
// The public Find methods start from the node's live ancestors so that a
// path found from inside a subtree still records the whole chain.

func (r *Root) FindLayout(id ID) (*LayoutPath, bool) { return r.findLayout(id, NewPathBuilder(r)) }
func (r *Root) FindSpace(id ID) (*SpacePath, bool)   { return r.findSpace(id, NewPathBuilder(r)) }
func (r *Root) FindDockable(id ID) (*DockablePath, bool) {
	return r.findDockable(id, NewPathBuilder(r))
}

func (r *Root) findLayout(id ID, b *PathBuilder) (*LayoutPath, bool) {
	if r.id == id {
		return b.Layout(), true
	}
	return r.child.findLayout(id, b)
}

func (r *Root) findSpace(id ID, b *PathBuilder) (*SpacePath, bool) {
	return r.child.findSpace(id, b)
}

func (r *Root) findDockable(id ID, b *PathBuilder) (*DockablePath, bool) {
	return r.child.findDockable(id, b)
}

func (s *Split) FindLayout(id ID) (*LayoutPath, bool) { return s.findLayout(id, builderAbove(s)) }
func (s *Split) FindSpace(id ID) (*SpacePath, bool)   { return s.findSpace(id, builderAbove(s)) }
func (s *Split) FindDockable(id ID) (*DockablePath, bool) {
	return s.findDockable(id, builderAbove(s))
}

func (s *Split) findLayout(id ID, b *PathBuilder) (*LayoutPath, bool) {
	b.Push(s)
	defer b.Pop()
	if s.id == id {
		return b.Layout(), true
	}
	for _, c := range s.children {
		if p, ok := c.layout.findLayout(id, b); ok {
			return p, true
		}
	}
	return nil, false
}

func (s *Split) findSpace(id ID, b *PathBuilder) (*SpacePath, bool) {
	b.Push(s)
	defer b.Pop()
	for _, c := range s.children {
		if p, ok := c.layout.findSpace(id, b); ok {
			return p, true
		}
	}
	return nil, false
}

func (s *Split) findDockable(id ID, b *PathBuilder) (*DockablePath, bool) {
	b.Push(s)
	defer b.Pop()
	for _, c := range s.children {
		if p, ok := c.layout.findDockable(id, b); ok {
			return p, true
		}
	}
	return nil, false
}

func (l *Leaf) FindLayout(id ID) (*LayoutPath, bool) { return l.findLayout(id, builderAbove(l)) }
func (l *Leaf) FindSpace(id ID) (*SpacePath, bool)   { return l.findSpace(id, builderAbove(l)) }
func (l *Leaf) FindDockable(id ID) (*DockablePath, bool) {
	return l.findDockable(id, builderAbove(l))
}

func (l *Leaf) findLayout(id ID, b *PathBuilder) (*LayoutPath, bool) {
	if l.id != id {
		return nil, false
	}
	b.Push(l)
	defer b.Pop()
	return b.Layout(), true
}

func (l *Leaf) findSpace(id ID, b *PathBuilder) (*SpacePath, bool) {
	if l.space.ID() != id {
		return nil, false
	}
	b.Push(l)
	defer b.Pop()
	return b.Space(l.space), true
}

func (l *Leaf) findDockable(id ID, b *PathBuilder) (*DockablePath, bool) {
	for _, d := range l.space.Dockables() {
		if d.id == id {
			b.Push(l)
			defer b.Pop()
			return b.Dockable(l.space, d), true
		}
	}
	return nil, false
}

// ResolveLayout searches every shown root, in registration order.
func (w *Workspace) ResolveLayout(id ID) (*LayoutPath, bool) {
	return resolve(w.roots, func(r *Root) (*LayoutPath, bool) { return r.FindLayout(id) })
}

// ResolveSpace searches every shown root, in registration order.
func (w *Workspace) ResolveSpace(id ID) (*SpacePath, bool) {
	return resolve(w.roots, func(r *Root) (*SpacePath, bool) { return r.FindSpace(id) })
}

// ResolveDockable searches every shown root, in registration order. It is
// how a drop target recovers a dockable dragged in from another window.
func (w *Workspace) ResolveDockable(id ID) (*DockablePath, bool) {
	return resolve(w.roots, func(r *Root) (*DockablePath, bool) { return r.FindDockable(id) })
}

func resolve[P any](roots []*Root, find func(*Root) (*P, bool)) (*P, bool) {
	for _, r := range roots {
		if p, ok := find(r); ok {
			return p, true
		}
	}
	return nil, false
}
