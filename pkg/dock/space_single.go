package dock

import "github.com/matzehuels/dockyard/pkg/errors"

// SingleSpace holds exactly one dockable, fixed at construction. Removing it
// degrades the owning leaf to an [EmptySpace].
type SingleSpace struct {
	spaceBase
	dockable *Dockable
}

// NewSingleSpace creates a space showing d. A nil, closed or already
// attached dockable is a programmer error reported as ErrCodeInvalidSpace.
func (w *Workspace) NewSingleSpace(d *Dockable) (*SingleSpace, error) {
	if d == nil {
		return nil, errors.New(errors.ErrCodeInvalidSpace, "single space requires a dockable")
	}
	if !d.attachable() {
		return nil, errors.New(errors.ErrCodeInvalidSpace, "dockable %s is closed or already attached", d.id)
	}
	s := &SingleSpace{spaceBase: newSpaceBase(w), dockable: d}
	d.setSpace(s)
	w.emit(Event{Kind: EventDockableAdded, Space: s, Dockable: d, Index: 0})
	return s, nil
}

// MustSingleSpace is like [Workspace.NewSingleSpace] but panics on error.
func (w *Workspace) MustSingleSpace(d *Dockable) *SingleSpace {
	s, err := w.NewSingleSpace(d)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *SingleSpace) Kind() SpaceKind { return SpaceSingle }

// Dockable returns the held dockable, or nil after it was removed.
func (s *SingleSpace) Dockable() *Dockable { return s.dockable }

func (s *SingleSpace) Dockables() []*Dockable {
	if s.dockable == nil {
		return nil
	}
	return []*Dockable{s.dockable}
}

func (s *SingleSpace) Len() int {
	if s.dockable == nil {
		return 0
	}
	return 1
}

func (s *SingleSpace) Contains(d *Dockable) bool { return d != nil && d == s.dockable }

func (s *SingleSpace) IndexOf(d *Dockable) int {
	if s.Contains(d) {
		return 0
	}
	return -1
}

// Selected returns the held dockable unless the space is collapsed.
func (s *SingleSpace) Selected() *Dockable {
	if s.collapsed {
		return nil
	}
	return s.dockable
}

func (s *SingleSpace) CanReceiveDragGroup(group int) bool {
	return canReceiveDragGroup(s.Dockables(), group)
}

func (s *SingleSpace) CanSplit() bool { return true }

func (s *SingleSpace) AddDockable(*Dockable) bool         { return false }
func (s *SingleSpace) InsertDockable(int, *Dockable) bool { return false }

func (s *SingleSpace) RemoveDockable(d *Dockable) bool { return s.remove(d) }
func (s *SingleSpace) DetachDockable(d *Dockable) bool { return s.remove(d) }
func (s *SingleSpace) CloseDockable(d *Dockable) bool  { return closeIn(s, d) }

func (s *SingleSpace) remove(d *Dockable) bool {
	if !s.Contains(d) {
		return false
	}
	s.dockable = nil
	d.setSpace(nil)
	s.ws.emit(Event{Kind: EventDockableRemoved, Space: s, Dockable: d, Index: 0})
	if s.leaf != nil {
		s.leaf.SetSpace(s.ws.NewEmptySpace())
	}
	return true
}

// SelectDockable selects the held dockable, expanding a collapsed space.
func (s *SingleSpace) SelectDockable(d *Dockable) bool {
	if !s.Contains(d) {
		return false
	}
	if s.collapsed && !s.ToggleCollapsed() {
		return false
	}
	s.ws.emit(Event{Kind: EventDockableSelected, Space: s, Dockable: d})
	return true
}

func (s *SingleSpace) Content() any {
	if sel := s.Selected(); sel != nil {
		return sel.payload
	}
	return s.placeholder()
}

func (s *SingleSpace) setCollapsed(collapsed bool) {
	if s.collapsed == collapsed {
		return
	}
	s.collapsed = collapsed
	s.ws.emit(Event{Kind: EventDockableSelected, Space: s, Dockable: s.Selected()})
}
