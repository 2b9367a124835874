package dock

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestWorkspace(t *testing.T, opts ...Option) *Workspace {
	t.Helper()
	return NewWorkspace(append([]Option{WithLogger(log.New(io.Discard))}, opts...)...)
}

// dk creates a dockable whose ID and title are both name.
func dk(name string, opts ...DockableOption) *Dockable {
	return MustDockable(name, append([]DockableOption{WithID(ID(name)), WithTitle(name)}, opts...)...)
}

func titles(ds []*Dockable) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Title()
	}
	return out
}

type fakeWindow struct {
	closed   bool
	floating bool
}

func (w *fakeWindow) Close()         { w.closed = true }
func (w *fakeWindow) Floating() bool { return w.floating }

// twoPane builds Root→Split(H)[Leaf(Tabbed[A,B]), Leaf(Tabbed[C])].
type twoPane struct {
	root        *Root
	split       *Split
	left, right *Leaf
	ls, rs      *TabbedSpace
	a, b, c     *Dockable
}

func newTwoPane(t *testing.T, ws *Workspace) *twoPane {
	t.Helper()
	p := &twoPane{a: dk("A"), b: dk("B"), c: dk("C")}
	p.ls = ws.NewTabbedSpace(p.a, p.b)
	p.rs = ws.NewTabbedSpace(p.c)
	p.left = ws.NewLeaf(p.ls)
	p.right = ws.NewLeaf(p.rs)
	p.split = ws.NewSplit(AxisHorizontal, p.left, p.right)
	p.root = ws.MustRoot(p.split)
	p.root.Resize(800, 600)
	return p
}
