package dock

import (
	"math"
	"slices"
)

// splitChild is a Split's bookkeeping for one child. Fractions of all
// children sum to 1; divider i sits at the sum of the first i+1 fractions.
type splitChild struct {
	layout    Layout
	fraction  float64
	resizable bool
	collapsed bool

	// Size memory recorded when the child collapses.
	lastSize     int
	lastFraction float64
}

// Split lays out an ordered list of child layouts along one axis. Each child
// has its own share of the split's extent, a resizable flag for the divider
// it drags, and a collapsed flag; see [Split.SetChildCollapsed].
type Split struct {
	node
	axis     Axis
	children []*splitChild
}

// NewSplit creates a split along axis holding children in order, with the
// extent shared evenly. Children that already have a parent are skipped.
func (w *Workspace) NewSplit(axis Axis, children ...Layout) *Split {
	s := &Split{node: newNode(w), axis: axis}
	for _, c := range children {
		s.AddChildLayout(len(s.children), c)
	}
	s.Distribute()
	return s
}

// Axis returns the layout axis.
func (s *Split) Axis() Axis { return s.axis }

// Children returns the child layouts in order.
func (s *Split) Children() []Layout {
	out := make([]Layout, len(s.children))
	for i, c := range s.children {
		out[i] = c.layout
	}
	return out
}

// Len returns the number of children.
func (s *Split) Len() int { return len(s.children) }

// IndexOf returns child's index, or -1.
func (s *Split) IndexOf(child Layout) int {
	return slices.IndexFunc(s.children, func(c *splitChild) bool { return c.layout == child })
}

func (s *Split) child(l Layout) *splitChild {
	if i := s.IndexOf(l); i >= 0 {
		return s.children[i]
	}
	return nil
}

func (s *Split) Root() *Root { return rootOf(s) }

func (s *Split) Dockables() []*Dockable {
	var out []*Dockable
	for _, c := range s.children {
		out = append(out, c.layout.Dockables()...)
	}
	return out
}

// AddChildLayout inserts a detached child at index (clamped). The new child
// takes half of the slot it is inserted into: the slot of the child it
// displaces, or of the last child when appending. A collapsed child never
// donates; its neighbor does. A collapsed edge child pushed into the interior
// is expanded first.
func (s *Split) AddChildLayout(index int, child Layout) bool {
	if child == nil || child.Parent() != nil || child == Layout(s) {
		return false
	}
	if _, ok := child.(*Root); ok {
		return false
	}
	n := len(s.children)
	if index < 0 || index > n {
		index = n
	}
	if n > 1 {
		switch {
		case index == 0 && s.children[0].collapsed:
			s.expand(0)
		case index == n && s.children[n-1].collapsed:
			s.expand(n - 1)
		}
	}
	sc := &splitChild{layout: child, fraction: 1, resizable: true}
	if n > 0 {
		j := min(index, n-1)
		if s.children[j].collapsed {
			j = s.neighbor(j)
		}
		donor := s.children[j]
		sc.fraction = donor.fraction / 2
		donor.fraction -= sc.fraction
	}
	s.children = slices.Insert(s.children, index, sc)
	child.setParent(s)
	s.ws.emit(Event{Kind: EventChildAdded, Layout: s, Child: child, Index: index})
	s.relayout()
	return true
}

// Distribute shares the extent evenly between all children and expands any
// collapsed child.
func (s *Split) Distribute() {
	for i, c := range s.children {
		if c.collapsed {
			s.expand(i)
		}
	}
	for _, c := range s.children {
		c.fraction = 1 / float64(len(s.children))
	}
	s.relayout()
}

// Dividers returns the normalized divider positions, one fewer than the
// number of children.
func (s *Split) Dividers() []float64 {
	if len(s.children) < 2 {
		return nil
	}
	out := make([]float64, 0, len(s.children)-1)
	sum := 0.0
	for _, c := range s.children[:len(s.children)-1] {
		sum += c.fraction
		out = append(out, sum)
	}
	return out
}

func (s *Split) extent() int {
	if s.axis == AxisVertical {
		return s.height
	}
	return s.width
}

// bounds returns the pixel offsets of each child's edges along the axis.
// Rounding cumulative positions keeps the sizes summing to the extent.
func (s *Split) bounds() []int {
	ext := float64(s.extent())
	out := make([]int, len(s.children)+1)
	sum := 0.0
	for i, c := range s.children {
		sum += c.fraction
		out[i+1] = int(math.Round(sum * ext))
	}
	if n := len(s.children); n > 0 {
		out[n] = s.extent()
	}
	return out
}

// ChildFraction returns child's share of the extent in [0, 1], or -1 when
// child is not a child of s.
func (s *Split) ChildFraction(child Layout) float64 {
	if c := s.child(child); c != nil {
		return c.fraction
	}
	return -1
}

// ChildPercent returns child's share of the extent in percent, or -1.
func (s *Split) ChildPercent(child Layout) float64 {
	f := s.ChildFraction(child)
	if f < 0 {
		return f
	}
	return f * 100
}

// ChildSize returns child's size in pixels along the axis, or -1.
func (s *Split) ChildSize(child Layout) int {
	i := s.IndexOf(child)
	if i < 0 {
		return -1
	}
	b := s.bounds()
	return b[i+1] - b[i]
}

// SetChildFraction gives child fraction of the extent, moving the divider
// it shares with its next sibling (the previous one for the last child).
// It fails for a single child, a non-resizable child, or a collapsed
// neighbor.
func (s *Split) SetChildFraction(child Layout, fraction float64) bool {
	i := s.IndexOf(child)
	if i < 0 || len(s.children) < 2 || math.IsNaN(fraction) {
		return false
	}
	j := s.neighbor(i)
	if !s.children[i].resizable || s.children[j].collapsed {
		return false
	}
	s.moveDivider(i, j, fraction)
	return true
}

// SetChildPercent is SetChildFraction with a percentage.
func (s *Split) SetChildPercent(child Layout, percent float64) bool {
	return s.SetChildFraction(child, percent/100)
}

// SetChildSize is SetChildFraction with a pixel size. It fails before the
// split has been laid out.
func (s *Split) SetChildSize(child Layout, px int) bool {
	ext := s.extent()
	if ext <= 0 {
		return false
	}
	return s.SetChildFraction(child, float64(px)/float64(ext))
}

// neighbor returns the sibling that gives or takes space when child i is
// resized.
func (s *Split) neighbor(i int) int {
	if i < len(s.children)-1 {
		return i + 1
	}
	return i - 1
}

func (s *Split) moveDivider(i, j int, fraction float64) {
	ci, cj := s.children[i], s.children[j]
	total := ci.fraction + cj.fraction
	fraction = math.Max(0, math.Min(total, fraction))
	ci.fraction = fraction
	cj.fraction = total - fraction
	s.relayout()
}

// IsChildResizable reports child's resizable flag.
func (s *Split) IsChildResizable(child Layout) bool {
	c := s.child(child)
	return c != nil && c.resizable
}

// SetChildResizable sets child's resizable flag. A collapsed child stays
// non-resizable until expanded.
func (s *Split) SetChildResizable(child Layout, resizable bool) bool {
	c := s.child(child)
	if c == nil || (c.collapsed && resizable) {
		return false
	}
	c.resizable = resizable
	return true
}

func (s *Split) RemoveDockable(d *Dockable) bool {
	for _, c := range s.Children() {
		if c.RemoveDockable(d) {
			return true
		}
	}
	return false
}

func (s *Split) CloseDockable(d *Dockable) bool {
	for _, c := range s.Children() {
		if c.CloseDockable(d) {
			return true
		}
	}
	return false
}

// ReplaceChildLayout puts replacement in child's slot with child's share of
// the extent. replacement must be detached or a child of child (as when a
// split is simplified into its sole remaining child).
func (s *Split) ReplaceChildLayout(child, replacement Layout) bool {
	i := s.IndexOf(child)
	if i < 0 || replacement == nil || replacement == child || replacement == Layout(s) {
		return false
	}
	if p := replacement.Parent(); p != nil && p != child {
		return false
	}
	if _, ok := replacement.(*Root); ok {
		return false
	}
	old := s.children[i]
	if old.collapsed {
		setLeafCollapsed(old.layout, false)
	}
	s.children[i] = &splitChild{layout: replacement, fraction: old.fraction, resizable: true}
	detachFrom(child, s)
	s.ws.emit(Event{Kind: EventChildRemoved, Layout: s, Child: child, Index: i})
	replacement.setParent(s)
	s.ws.emit(Event{Kind: EventChildAdded, Layout: s, Child: replacement, Index: i})
	s.relayout()
	return true
}

// RemoveChildLayout removes child; its share goes to the next sibling, or
// to the previous one when child was last. A split left with one child is
// replaced by that child in its own parent, and a split left empty removes
// itself, so the simplification cascades upward.
func (s *Split) RemoveChildLayout(child Layout) bool {
	i := s.IndexOf(child)
	if i < 0 {
		return false
	}
	removed := s.children[i]
	if removed.collapsed {
		setLeafCollapsed(removed.layout, false)
	}
	s.children = slices.Delete(s.children, i, i+1)
	if n := len(s.children); n > 0 {
		s.children[min(i, n-1)].fraction += removed.fraction
	}
	detachFrom(child, s)
	s.ws.emit(Event{Kind: EventChildRemoved, Layout: s, Child: child, Index: i})
	s.normalizeCollapsed()

	switch len(s.children) {
	case 0:
		s.ws.debug("split emptied", "split", s.id)
		s.RemoveFromParent()
	case 1:
		s.simplify()
	default:
		s.relayout()
	}
	return true
}

// simplify replaces a single-child split with its child in the parent.
func (s *Split) simplify() {
	if s.parent == nil || len(s.children) != 1 {
		s.relayout()
		return
	}
	sole := s.children[0].layout
	s.ws.debug("split simplified", "split", s.id, "child", sole.ID())
	hooksPrune(s)
	parent := s.parent
	if parent.ReplaceChildLayout(s, sole) {
		s.children = nil
	}
}

// normalizeCollapsed expands children that may no longer be collapsed after
// a removal: interior children, a sole child, and the second of two
// adjacent collapsed children.
func (s *Split) normalizeCollapsed() {
	n := len(s.children)
	for i, c := range s.children {
		if !c.collapsed {
			continue
		}
		edge := i == 0 || i == n-1
		if n < 2 || !edge || (i == n-1 && s.children[s.neighbor(i)].collapsed) {
			s.expand(i)
		}
	}
}

func (s *Split) RemoveFromParent() bool {
	if s.parent == nil {
		return false
	}
	return s.parent.RemoveChildLayout(s)
}

func (s *Split) AsSplitWith(other Layout, side Side) *Split {
	return asSplitWith(s, other, side)
}

func (s *Split) AsSplitWithSpace(space Space, side Side) *Split {
	return asSplitWith(s, s.ws.NewLeaf(space), side)
}

func (s *Split) Resize(width, height int) {
	s.width, s.height = width, height
	s.pinCollapsed()
	s.relayout()
}

func (s *Split) relayout() {
	b := s.bounds()
	for i, c := range s.children {
		size := b[i+1] - b[i]
		if s.axis == AxisVertical {
			c.layout.Resize(s.width, size)
		} else {
			c.layout.Resize(size, s.height)
		}
	}
}

func (s *Split) setParent(parent Layout) { s.reparent(s, parent) }
