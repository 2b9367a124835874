package dock

// EmptySpace holds no dockables. It exists so that a [Leaf] always has a
// space; every mutator is a no-op returning false.
type EmptySpace struct {
	spaceBase
}

// NewEmptySpace creates an empty space.
func (w *Workspace) NewEmptySpace() *EmptySpace {
	s := &EmptySpace{spaceBase: newSpaceBase(w)}
	s.headerExtent = 0
	return s
}

func (s *EmptySpace) Kind() SpaceKind                    { return SpaceEmpty }
func (s *EmptySpace) Dockables() []*Dockable             { return nil }
func (s *EmptySpace) Len() int                           { return 0 }
func (s *EmptySpace) Contains(*Dockable) bool            { return false }
func (s *EmptySpace) IndexOf(*Dockable) int              { return -1 }
func (s *EmptySpace) Selected() *Dockable                { return nil }
func (s *EmptySpace) CanReceiveDragGroup(int) bool       { return true }
func (s *EmptySpace) CanSplit() bool                     { return false }
func (s *EmptySpace) AddDockable(*Dockable) bool         { return false }
func (s *EmptySpace) InsertDockable(int, *Dockable) bool { return false }
func (s *EmptySpace) RemoveDockable(*Dockable) bool      { return false }
func (s *EmptySpace) DetachDockable(*Dockable) bool      { return false }
func (s *EmptySpace) CloseDockable(*Dockable) bool       { return false }
func (s *EmptySpace) SelectDockable(*Dockable) bool      { return false }
func (s *EmptySpace) ToggleCollapsed() bool              { return false }
func (s *EmptySpace) Content() any                       { return s.placeholder() }
func (s *EmptySpace) setCollapsed(bool)                  {}
