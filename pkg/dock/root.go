package dock

import (
	"slices"

	"github.com/matzehuels/dockyard/pkg/errors"
)

// Root is the entry point of one docking tree. It owns exactly one child
// layout and is usually the content of a hosting [Window]. A root takes part
// in cross-window lookups only while shown; see [Root.Show].
type Root struct {
	node
	child     Layout
	window    Window
	autoClose bool
}

// NewRoot creates a root owning child. A nil child installs a leaf with an
// empty space. Passing a layout that already has a parent, or another root,
// is reported as ErrCodeInvalidLayout.
func (w *Workspace) NewRoot(child Layout) (*Root, error) {
	r := &Root{node: newNode(w), autoClose: w.defaults.AutoCloseWhenEmpty}
	if child == nil {
		child = w.NewLeaf(nil)
	}
	if _, ok := child.(*Root); ok {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "root %s cannot own another root", r.id)
	}
	if child.Parent() != nil {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "layout %s already has a parent", child.ID())
	}
	r.child = child
	child.setParent(r)
	r.ws.emit(Event{Kind: EventChildAdded, Layout: r, Child: child})
	return r, nil
}

// MustRoot is like [Workspace.NewRoot] but panics on error.
func (w *Workspace) MustRoot(child Layout) *Root {
	r, err := w.NewRoot(child)
	if err != nil {
		panic(err)
	}
	return r
}

// Child returns the owned layout. It is never nil.
func (r *Root) Child() Layout { return r.child }

// SetChild replaces the owned layout with a detached one. The previous child
// is detached, not destroyed.
func (r *Root) SetChild(child Layout) bool {
	if child == nil || child == r.child || child.Parent() != nil {
		return false
	}
	if _, ok := child.(*Root); ok {
		return false
	}
	r.swap(child)
	return true
}

func (r *Root) swap(child Layout) {
	old := r.child
	r.child = child
	if old != nil {
		detachFrom(old, r)
		r.ws.emit(Event{Kind: EventChildRemoved, Layout: r, Child: old})
	}
	child.setParent(r)
	r.ws.emit(Event{Kind: EventChildAdded, Layout: r, Child: child})
	child.Resize(r.width, r.height)
}

// Window returns the hosting window, or nil.
func (r *Root) Window() Window { return r.window }

// SetWindow sets the hosting window.
func (r *Root) SetWindow(w Window) { r.window = w }

// AutoCloseWhenEmpty reports whether emptying the tree closes the hosting
// window.
func (r *Root) AutoCloseWhenEmpty() bool { return r.autoClose }

func (r *Root) SetAutoCloseWhenEmpty(v bool) { r.autoClose = v }

// Show registers the root in the workspace registry so cross-window lookups
// can reach it. Hosts call it when the root becomes visible.
func (r *Root) Show() bool { return r.ws.register(r) }

// Hide unregisters the root.
func (r *Root) Hide() bool { return r.ws.unregister(r) }

// IsShowing reports whether the root is registered.
func (r *Root) IsShowing() bool { return slices.Contains(r.ws.roots, r) }

// Parent always returns nil.
func (r *Root) Parent() Layout { return nil }

func (r *Root) Root() *Root { return r }

func (r *Root) Dockables() []*Dockable { return r.child.Dockables() }

func (r *Root) RemoveDockable(d *Dockable) bool { return r.child.RemoveDockable(d) }

func (r *Root) CloseDockable(d *Dockable) bool { return r.child.CloseDockable(d) }

// ReplaceChildLayout replaces the owned layout. replacement must be detached
// or a child of the current child.
func (r *Root) ReplaceChildLayout(child, replacement Layout) bool {
	if child != r.child || replacement == nil || replacement == child {
		return false
	}
	if p := replacement.Parent(); p != nil && p != child {
		return false
	}
	if _, ok := replacement.(*Root); ok {
		return false
	}
	r.swap(replacement)
	return true
}

// RemoveChildLayout empties the tree; see [Root.RemoveFromParent].
func (r *Root) RemoveChildLayout(child Layout) bool {
	if child != r.child {
		return false
	}
	return r.RemoveFromParent()
}

// RemoveFromParent empties the tree. The child is replaced by a leaf with an
// empty space; when the root hosts a window and AutoCloseWhenEmpty is set,
// the window is closed and the root hidden as well.
func (r *Root) RemoveFromParent() bool {
	r.swap(r.ws.NewLeaf(nil))
	if r.window != nil && r.autoClose {
		r.ws.debug("closing empty window", "root", r.id)
		r.Hide()
		r.window.Close()
		return true
	}
	r.ws.debug("root emptied", "root", r.id)
	return true
}

// AsSplitWith wraps the current child and other into a new split and
// installs it as the child.
func (r *Root) AsSplitWith(other Layout, side Side) *Split {
	s := asSplitWith(r.child, other, side)
	if s == nil {
		return nil
	}
	r.swap(s)
	return s
}

func (r *Root) AsSplitWithSpace(space Space, side Side) *Split {
	return r.AsSplitWith(r.ws.NewLeaf(space), side)
}

func (r *Root) Resize(width, height int) {
	r.width, r.height = width, height
	r.child.Resize(width, height)
}

// setParent is a no-op: a root never has a parent.
func (r *Root) setParent(Layout) {}
