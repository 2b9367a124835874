package dock

import (
	"fmt"
	"slices"
	"strings"
)

// LayoutPath records where a layout sits: its root and the chain of layouts
// from the root's child down to the layout itself. When the layout is the
// root, the chain is empty.
//
// A path is a snapshot. Once the tree changes it may no longer describe the
// live tree; callers holding a path across mutations check [LayoutPath.Stale]
// or resolve again.
type LayoutPath struct {
	root    *Root
	layouts []Layout
}

// Root returns the tree's root. It is nil for a path through a detached
// subtree.
func (p *LayoutPath) Root() *Root { return p.root }

// Layouts returns the layout chain, outermost first.
func (p *LayoutPath) Layouts() []Layout { return slices.Clone(p.layouts) }

// Layout returns the layout the path leads to.
func (p *LayoutPath) Layout() Layout {
	if n := len(p.layouts); n > 0 {
		return p.layouts[n-1]
	}
	if p.root == nil {
		return nil
	}
	return p.root
}

// Depth is the number of layouts below the root.
func (p *LayoutPath) Depth() int { return len(p.layouts) }

// Stale reports whether the live parent chain differs from the recorded one.
func (p *LayoutPath) Stale() bool {
	var parent Layout
	if p.root != nil {
		parent = p.root
	}
	for i, l := range p.layouts {
		if i == 0 && p.root == nil {
			parent = l.Parent()
		}
		if l.Parent() != parent {
			return true
		}
		parent = l
	}
	return false
}

func (p *LayoutPath) String() string {
	var b strings.Builder
	if p.root != nil {
		fmt.Fprintf(&b, "root(%s)", short(p.root.id))
	}
	for _, l := range p.layouts {
		if b.Len() > 0 {
			b.WriteString(" > ")
		}
		fmt.Fprintf(&b, "%s(%s)", KindOf(l), short(l.ID()))
	}
	return b.String()
}

// SpacePath is the path of a space: the path of its leaf plus the space.
type SpacePath struct {
	LayoutPath
	space Space
}

func (p *SpacePath) Space() Space { return p.space }

// Leaf returns the leaf owning the space.
func (p *SpacePath) Leaf() *Leaf {
	l, _ := p.Layout().(*Leaf)
	return l
}

// Stale reports whether the space moved or its leaf's chain changed.
func (p *SpacePath) Stale() bool {
	leaf := p.Leaf()
	return leaf == nil || leaf.space != p.space || p.LayoutPath.Stale()
}

func (p *SpacePath) String() string {
	return fmt.Sprintf("%s > %s(%s)", p.LayoutPath.String(), p.space.Kind(), short(p.space.ID()))
}

// DockablePath is the path of a dockable: the path of its space plus the
// dockable.
type DockablePath struct {
	SpacePath
	dockable *Dockable
}

func (p *DockablePath) Dockable() *Dockable { return p.dockable }

// Stale reports whether the dockable left the space or the space's path
// changed.
func (p *DockablePath) Stale() bool {
	return p.dockable.space != p.space || p.SpacePath.Stale()
}

func (p *DockablePath) String() string {
	return fmt.Sprintf("%s > %q", p.SpacePath.String(), p.dockable.title)
}

// PathBuilder accumulates the layouts passed on the way down from a root.
// Resolvers push a layout before searching it and pop it afterwards, and
// materialize a path only on a match.
type PathBuilder struct {
	root    *Root
	layouts []Layout
}

// NewPathBuilder starts a builder at root. root may be nil when searching a
// detached subtree.
func NewPathBuilder(root *Root) *PathBuilder { return &PathBuilder{root: root} }

// builderAbove returns a builder holding l's live ancestors, excluding l.
func builderAbove(l Layout) *PathBuilder {
	var chain []Layout
	var root *Root
	for p := l.Parent(); p != nil; p = p.Parent() {
		if r, ok := p.(*Root); ok {
			root = r
			break
		}
		chain = append(chain, p)
	}
	slices.Reverse(chain)
	return &PathBuilder{root: root, layouts: chain}
}

func (b *PathBuilder) Push(l Layout) { b.layouts = append(b.layouts, l) }

func (b *PathBuilder) Pop() {
	if n := len(b.layouts); n > 0 {
		b.layouts = b.layouts[:n-1]
	}
}

// Layout materializes the current chain.
func (b *PathBuilder) Layout() *LayoutPath {
	return &LayoutPath{root: b.root, layouts: slices.Clone(b.layouts)}
}

// Space materializes the current chain plus s.
func (b *PathBuilder) Space(s Space) *SpacePath {
	return &SpacePath{LayoutPath: *b.Layout(), space: s}
}

// Dockable materializes the current chain plus s and d.
func (b *PathBuilder) Dockable(s Space, d *Dockable) *DockablePath {
	return &DockablePath{SpacePath: *b.Space(s), dockable: d}
}

// PathOfLayout builds l's path by walking its live parent chain. It fails
// when l is not under a root.
func PathOfLayout(l Layout) (*LayoutPath, bool) {
	if l == nil {
		return nil, false
	}
	if r, ok := l.(*Root); ok {
		return NewPathBuilder(r).Layout(), true
	}
	b := builderAbove(l)
	if b.root == nil {
		return nil, false
	}
	b.Push(l)
	return b.Layout(), true
}

// PathOfSpace builds s's path from the live tree.
func PathOfSpace(s Space) (*SpacePath, bool) {
	if s == nil || s.Leaf() == nil {
		return nil, false
	}
	b := builderAbove(s.Leaf())
	if b.root == nil {
		return nil, false
	}
	b.Push(s.Leaf())
	return b.Space(s), true
}

// PathOfDockable builds d's path from the live tree.
func PathOfDockable(d *Dockable) (*DockablePath, bool) {
	if d == nil || d.space == nil {
		return nil, false
	}
	sp, ok := PathOfSpace(d.space)
	if !ok {
		return nil, false
	}
	return &DockablePath{SpacePath: *sp, dockable: d}, true
}

func short(id ID) string {
	if len(id) > 8 {
		return string(id[:8])
	}
	return string(id)
}
