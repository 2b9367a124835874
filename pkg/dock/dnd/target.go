package dnd

import (
	"fmt"

	"github.com/matzehuels/dockyard/pkg/dock"
)

// DropEvent locates a hover or drop within a destination's tab row.
type DropEvent struct {
	// Index is the tab position the dockable would be inserted at. A
	// negative or out of range index appends.
	Index int
}

// AtEnd is a DropEvent that appends to the tab row.
var AtEnd = DropEvent{Index: -1}

// Destination is the capability set of a drop surface.
type Destination interface {
	Dockables() []*dock.Dockable
	Selected() *dock.Dockable
	CanReceiveDragGroup(group int) bool
	CanSplit() bool

	// CanReceiveHeader reports whether dropping d at ev with side would
	// change the tree. SideNone asks for a merge or reorder in the tab row;
	// any other side asks for a split against that edge.
	CanReceiveHeader(ev DropEvent, side dock.Side, d *dock.Dockable) bool
	// ReceiveDroppedHeader commits the drop. It either applies the whole
	// move or leaves the tree untouched and returns false.
	ReceiveDroppedHeader(ev DropEvent, side dock.Side, d *dock.Dockable) bool

	AddDockable(d *dock.Dockable) bool
	InsertDockable(index int, d *dock.Dockable) bool
	RemoveDockable(d *dock.Dockable) bool
	SelectDockable(d *dock.Dockable) bool
	ToggleCollapsed() bool
	IsCollapsed() bool

	// DrawCanvasHint shows where a drop with side would land.
	DrawCanvasHint(side dock.Side)
	// ClearCanvas removes any hint.
	ClearCanvas()
}

// Canvas draws drop hints. Drawing itself lives outside this package.
type Canvas interface {
	DrawHint(target Destination, side dock.Side)
	Clear(target Destination)
}

// NopCanvas draws nothing.
type NopCanvas struct{}

func (NopCanvas) DrawHint(Destination, dock.Side) {}
func (NopCanvas) Clear(Destination)               {}

// SpaceTarget makes a [dock.Space] a drop surface.
type SpaceTarget struct {
	dock.Space
	canvas Canvas
}

// NewSpaceTarget wraps s. A nil canvas draws nothing.
func NewSpaceTarget(s dock.Space, c Canvas) *SpaceTarget {
	if c == nil {
		c = NopCanvas{}
	}
	return &SpaceTarget{Space: s, canvas: c}
}

func (t *SpaceTarget) DrawCanvasHint(side dock.Side) { t.canvas.DrawHint(t, side) }
func (t *SpaceTarget) ClearCanvas()                  { t.canvas.Clear(t) }

// CanReceiveHeader implements the drop rules. A space refuses dockables of a
// foreign drag group unless it is empty. A split needs a splittable space
// with a parent to splice into, and at least one other dockable to stay
// behind. A tab-row drop needs a tab row (a single space has none) and must
// move the dockable somewhere new.
func (t *SpaceTarget) CanReceiveHeader(ev DropEvent, side dock.Side, d *dock.Dockable) bool {
	if d == nil || d.Closed() || !t.CanReceiveDragGroup(d.DragGroup()) {
		return false
	}
	leaf := t.Leaf()
	if side != dock.SideNone {
		if !t.CanSplit() || leaf == nil || leaf.Parent() == nil {
			return false
		}
		for _, r := range t.Dockables() {
			if r != d {
				return true
			}
		}
		return false
	}
	switch t.Space.(type) {
	case *dock.TabbedSpace:
		if t.Contains(d) {
			from := t.IndexOf(d)
			to := t.insertIndex(ev)
			return to != from && to != from+1
		}
		return true
	case *dock.EmptySpace:
		return leaf != nil
	case *dock.SingleSpace:
		return false
	}
	panic(fmt.Sprintf("dnd: unreachable space variant %T", t.Space))
}

func (t *SpaceTarget) insertIndex(ev DropEvent) int {
	if ev.Index < 0 || ev.Index > t.Len() {
		return t.Len()
	}
	return ev.Index
}

// ReceiveDroppedHeader moves d here. With SideNone, d joins the tab row at
// ev (an empty space is first replaced by a tabbed one). With any other
// side, d goes into a new tabbed space that is split against that edge of
// this space's leaf.
func (t *SpaceTarget) ReceiveDroppedHeader(ev DropEvent, side dock.Side, d *dock.Dockable) bool {
	if !t.CanReceiveHeader(ev, side, d) {
		return false
	}
	if side != dock.SideNone {
		return t.split(side, d)
	}
	switch s := t.Space.(type) {
	case *dock.TabbedSpace:
		index := t.insertIndex(ev)
		if from := s.IndexOf(d); from >= 0 && index >= from {
			index--
		}
		detach(d)
		s.InsertDockable(index, d)
		s.SelectDockable(d)
		return true
	case *dock.EmptySpace:
		leaf := s.Leaf()
		detach(d)
		ts := leaf.Workspace().NewTabbedSpace(d)
		ts.SetHeaderSide(dock.SideTop)
		leaf.SetSpace(ts)
		return true
	}
	return false
}

func (t *SpaceTarget) split(side dock.Side, d *dock.Dockable) bool {
	leaf := t.Leaf()
	parent := leaf.Parent()
	header := t.HeaderSide()
	if header.SameAxis(side) || header == dock.SideNone {
		header = dock.SideTop
	}

	detach(d)
	ts := leaf.Workspace().NewTabbedSpace(d)
	ts.SetHeaderSide(header)
	if root, ok := parent.(*dock.Root); ok {
		return root.AsSplitWithSpace(ts, side) != nil
	}
	s := leaf.AsSplitWithSpace(ts, side)
	return parent.ReplaceChildLayout(leaf, s)
}

// detach takes d out of its space as part of a move.
func detach(d *dock.Dockable) {
	if s := d.Space(); s != nil {
		s.DetachDockable(d)
	}
}
