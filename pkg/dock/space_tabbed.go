package dock

import "slices"

// TabbedSpace holds an ordered list of dockables; insertion order is tab
// order. Selected is an element of the list, or nil iff the list is empty.
// While the space is collapsed the selection is parked and Selected returns
// nil; expanding restores it.
type TabbedSpace struct {
	spaceBase
	dockables []*Dockable
	selected  *Dockable
	parked    *Dockable
	autoPrune bool
	canSplit  bool
}

// NewTabbedSpace creates a tabbed space holding ds in order, using the
// workspace defaults for header side, auto-prune and splitting.
func (w *Workspace) NewTabbedSpace(ds ...*Dockable) *TabbedSpace {
	d := DefaultDefaults()
	if w != nil {
		d = w.defaults
	}
	s := &TabbedSpace{
		spaceBase: newSpaceBase(w),
		autoPrune: d.AutoPruneWhenEmpty,
		canSplit:  d.CanSplit,
	}
	for _, dk := range ds {
		s.AddDockable(dk)
	}
	return s
}

func (s *TabbedSpace) Kind() SpaceKind { return SpaceTabbed }

func (s *TabbedSpace) Dockables() []*Dockable    { return slices.Clone(s.dockables) }
func (s *TabbedSpace) Len() int                  { return len(s.dockables) }
func (s *TabbedSpace) Contains(d *Dockable) bool { return d != nil && slices.Contains(s.dockables, d) }
func (s *TabbedSpace) IndexOf(d *Dockable) int   { return slices.Index(s.dockables, d) }

// Selected returns the selected dockable, or nil when the space is empty or
// collapsed.
func (s *TabbedSpace) Selected() *Dockable { return s.selected }

func (s *TabbedSpace) AutoPruneWhenEmpty() bool     { return s.autoPrune }
func (s *TabbedSpace) SetAutoPruneWhenEmpty(v bool) { s.autoPrune = v }
func (s *TabbedSpace) CanSplit() bool               { return s.canSplit }
func (s *TabbedSpace) SetCanSplit(v bool)           { s.canSplit = v }

func (s *TabbedSpace) CanReceiveDragGroup(group int) bool {
	return canReceiveDragGroup(s.dockables, group)
}

// AddDockable appends d. See [TabbedSpace.InsertDockable].
func (s *TabbedSpace) AddDockable(d *Dockable) bool {
	return s.InsertDockable(len(s.dockables), d)
}

// InsertDockable inserts d at index, clamped to the list bounds. It fails if
// d is nil, closed, or already held by any space. The first dockable added
// becomes selected; later insertions leave the selection alone.
func (s *TabbedSpace) InsertDockable(index int, d *Dockable) bool {
	if d == nil || !d.attachable() {
		return false
	}
	if index < 0 || index > len(s.dockables) {
		index = len(s.dockables)
	}
	s.dockables = slices.Insert(s.dockables, index, d)
	d.setSpace(s)
	s.ws.emit(Event{Kind: EventDockableAdded, Space: s, Dockable: d, Index: index})
	switch {
	case len(s.dockables) > 1:
	case s.collapsed:
		s.parked = d
	default:
		s.setSelected(d)
	}
	return true
}

// RemoveDockable removes d. If the space empties and auto-prune is set, the
// owning leaf removes itself from its parent immediately.
func (s *TabbedSpace) RemoveDockable(d *Dockable) bool { return s.remove(d, false) }

// DetachDockable removes d as part of a move; see [Space].
func (s *TabbedSpace) DetachDockable(d *Dockable) bool { return s.remove(d, true) }

func (s *TabbedSpace) CloseDockable(d *Dockable) bool { return closeIn(s, d) }

func (s *TabbedSpace) remove(d *Dockable, moving bool) bool {
	i := s.IndexOf(d)
	if i < 0 {
		return false
	}
	s.dockables = slices.Delete(s.dockables, i, i+1)
	d.setSpace(nil)
	s.ws.emit(Event{Kind: EventDockableRemoved, Space: s, Dockable: d, Index: i})

	next := func() *Dockable {
		if len(s.dockables) == 0 {
			return nil
		}
		return s.dockables[min(i, len(s.dockables)-1)]
	}
	if s.collapsed {
		if s.parked == d || s.parked == nil {
			s.parked = next()
		}
	} else if s.selected == d || s.selected == nil {
		s.setSelected(next())
	}

	if len(s.dockables) == 0 && s.autoPrune {
		if moving && s.ws != nil {
			s.ws.deferPrune(s.prune)
		} else {
			s.prune()
		}
	}
	return true
}

// prune removes the owning leaf if the space is still empty and installed.
func (s *TabbedSpace) prune() {
	if len(s.dockables) > 0 || s.leaf == nil || s.leaf.space != s {
		return
	}
	leaf := s.leaf
	if leaf.parent == nil {
		return
	}
	s.ws.debug("pruning empty space", "space", s.id, "leaf", leaf.id)
	hooksPrune(leaf)
	leaf.RemoveFromParent()
}

// SelectDockable selects d, expanding the space first if it is collapsed.
func (s *TabbedSpace) SelectDockable(d *Dockable) bool {
	if !s.Contains(d) {
		return false
	}
	if s.collapsed {
		s.parked = d
		return s.ToggleCollapsed()
	}
	s.setSelected(d)
	return true
}

func (s *TabbedSpace) setSelected(d *Dockable) {
	if s.selected == d {
		return
	}
	s.selected = d
	s.ws.emit(Event{Kind: EventDockableSelected, Space: s, Dockable: d})
}

func (s *TabbedSpace) Content() any {
	if s.selected != nil {
		return s.selected.payload
	}
	return s.placeholder()
}

func (s *TabbedSpace) setCollapsed(collapsed bool) {
	if s.collapsed == collapsed {
		return
	}
	s.collapsed = collapsed
	if collapsed {
		s.parked = s.selected
		s.setSelected(nil)
		return
	}
	restore := s.parked
	s.parked = nil
	if restore == nil || !s.Contains(restore) {
		restore = nil
		if len(s.dockables) > 0 {
			restore = s.dockables[0]
		}
	}
	s.setSelected(restore)
}
