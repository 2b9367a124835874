package dock

import "github.com/matzehuels/dockyard/pkg/observability"

// IsChildCollapsed reports whether child is collapsed.
func (s *Split) IsChildCollapsed(child Layout) bool {
	c := s.child(child)
	return c != nil && c.collapsed
}

// CanCollapseChild reports whether child may collapse now. Only the first
// and last child of a split with at least two children are collapsible, and
// only when they are leaves with a header strip. A child cannot collapse
// while its adjacent sibling is collapsed.
func (s *Split) CanCollapseChild(child Layout) bool {
	i := s.IndexOf(child)
	n := len(s.children)
	if i < 0 || n < 2 || (i != 0 && i != n-1) {
		return false
	}
	leaf, ok := child.(*Leaf)
	if !ok || leaf.space.Kind() == SpaceEmpty {
		return false
	}
	return !s.children[s.neighbor(i)].collapsed
}

// SetChildCollapsed collapses or expands child. Collapsing records child's
// current size, shrinks it to its header strip, locks its divider and clears
// its space's selection; expanding undoes all of that. Requesting the state
// child is already in succeeds without changes.
func (s *Split) SetChildCollapsed(child Layout, collapsed bool) bool {
	i := s.IndexOf(child)
	if i < 0 {
		return false
	}
	if s.children[i].collapsed == collapsed {
		return true
	}
	if !collapsed {
		s.expand(i)
		return true
	}
	if !s.CanCollapseChild(child) {
		return false
	}
	s.collapse(i)
	return true
}

func (s *Split) collapse(i int) {
	c := s.children[i]
	c.lastSize = s.ChildSize(c.layout)
	c.lastFraction = c.fraction

	target := 0.0
	if ext := s.extent(); ext > 0 {
		target = float64(headerExtentOf(c.layout)) / float64(ext)
	}
	s.moveDivider(i, s.neighbor(i), target)
	c.resizable = false
	c.collapsed = true
	setLeafCollapsed(c.layout, true)

	s.ws.debug("child collapsed", "split", s.id, "child", c.layout.ID(), "last_size", c.lastSize)
	observability.Tree().OnCollapse(string(s.id), string(c.layout.ID()), true)
}

func (s *Split) expand(i int) {
	c := s.children[i]
	if !c.collapsed {
		return
	}
	c.collapsed = false
	c.resizable = true
	if len(s.children) > 1 {
		target := c.lastFraction
		if ext := s.extent(); ext > 0 && c.lastSize > 0 {
			target = float64(c.lastSize) / float64(ext)
		}
		s.moveDivider(i, s.neighbor(i), target)
	}
	setLeafCollapsed(c.layout, false)

	s.ws.debug("child expanded", "split", s.id, "child", c.layout.ID(), "size", s.ChildSize(c.layout))
	observability.Tree().OnCollapse(string(s.id), string(c.layout.ID()), false)
}

// pinCollapsed keeps collapsed children at exactly their header extent when
// the split is resized.
func (s *Split) pinCollapsed() {
	ext := s.extent()
	if ext <= 0 || len(s.children) < 2 {
		return
	}
	for i, c := range s.children {
		if !c.collapsed {
			continue
		}
		n := s.children[s.neighbor(i)]
		total := c.fraction + n.fraction
		target := min(float64(headerExtentOf(c.layout))/float64(ext), total)
		c.fraction = target
		n.fraction = total - target
	}
}

func headerExtentOf(l Layout) int {
	if leaf, ok := l.(*Leaf); ok {
		return leaf.space.HeaderExtent()
	}
	return 0
}

func setLeafCollapsed(l Layout, collapsed bool) {
	if leaf, ok := l.(*Leaf); ok {
		leaf.space.setCollapsed(collapsed)
	}
}

func hooksPrune(l Layout) {
	observability.Tree().OnPrune(string(l.ID()), KindOf(l).String())
}
