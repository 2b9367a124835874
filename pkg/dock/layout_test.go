package dock

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/dockyard/pkg/errors"
)

func TestNewLeaf_NeverNilSpace(t *testing.T) {
	ws := newTestWorkspace(t)
	leaf := ws.NewLeaf(nil)
	if leaf.Space() == nil || leaf.Space().Kind() != SpaceEmpty {
		t.Fatalf("Space() = %v, want empty space", leaf.Space())
	}
	leaf.SetSpace(nil)
	if leaf.Space() == nil {
		t.Fatal("SetSpace(nil) left the leaf without a space")
	}
}

func TestNewLeaf_MovesSpace(t *testing.T) {
	ws := newTestWorkspace(t)
	s := ws.NewTabbedSpace(dk("A"))
	first := ws.NewLeaf(s)
	second := ws.NewLeaf(s)

	if s.Leaf() != second || second.Space() != s {
		t.Error("space was not moved to the second leaf")
	}
	if first.Space().Kind() != SpaceEmpty {
		t.Errorf("first leaf space = %s, want empty", first.Space().Kind())
	}
}

func TestNewRoot_Errors(t *testing.T) {
	ws := newTestWorkspace(t)
	leaf := ws.NewLeaf(nil)
	ws.NewSplit(AxisHorizontal, leaf)
	if _, err := ws.NewRoot(leaf); !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Errorf("NewRoot(parented) error = %v", err)
	}
	r := ws.MustRoot(nil)
	if _, err := ws.NewRoot(r); !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Errorf("NewRoot(root) error = %v", err)
	}
	if KindOf(r.Child()) != LayoutLeaf {
		t.Errorf("MustRoot(nil) child = %s, want leaf", KindOf(r.Child()))
	}
}

func TestAsSplitWith_Placement(t *testing.T) {
	tests := []struct {
		side       Side
		axis       Axis
		otherFirst bool
	}{
		{SideTop, AxisVertical, true},
		{SideBottom, AxisVertical, false},
		{SideLeft, AxisHorizontal, true},
		{SideRight, AxisHorizontal, false},
		{SideNone, AxisHorizontal, false},
	}
	for _, tt := range tests {
		t.Run(tt.side.String(), func(t *testing.T) {
			ws := newTestWorkspace(t)
			self := ws.NewLeaf(nil)
			other := ws.NewLeaf(nil)
			s := self.AsSplitWith(other, tt.side)
			if s == nil {
				t.Fatal("AsSplitWith() = nil")
			}
			if s.Axis() != tt.axis {
				t.Errorf("Axis() = %s, want %s", s.Axis(), tt.axis)
			}
			want := []Layout{self, other}
			if tt.otherFirst {
				want = []Layout{other, self}
			}
			got := s.Children()
			if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
				t.Errorf("children in wrong order for %s", tt.side)
			}
			if self.Parent() != s || other.Parent() != s {
				t.Error("children do not point at the new split")
			}
		})
	}
}

func TestAsSplitWith_RejectsParentedOther(t *testing.T) {
	ws := newTestWorkspace(t)
	p := newTwoPane(t, ws)
	if s := p.left.AsSplitWith(p.right, SideRight); s != nil {
		t.Error("AsSplitWith accepted a layout that already has a parent")
	}
}

func TestRoot_AsSplitWithSpace(t *testing.T) {
	ws := newTestWorkspace(t)
	leaf := ws.NewLeaf(ws.NewTabbedSpace(dk("A")))
	root := ws.MustRoot(leaf)
	root.Resize(1000, 500)

	s := root.AsSplitWithSpace(ws.NewTabbedSpace(dk("B")), SideRight)
	if s == nil || root.Child() != s || s.Parent() != root {
		t.Fatal("split was not installed under the root")
	}
	if w, h := s.Size(); w != 1000 || h != 500 {
		t.Errorf("split size = %dx%d, want 1000x500", w, h)
	}
	if got := s.ChildSize(leaf); got != 500 {
		t.Errorf("ChildSize(leaf) = %d, want 500", got)
	}
	if diff := cmp.Diff([]string{"A", "B"}, titles(root.Dockables())); diff != "" {
		t.Errorf("Dockables() mismatch (-want +got):\n%s", diff)
	}
}

func TestSplit_ReplaceChildLayoutKeepsSize(t *testing.T) {
	ws := newTestWorkspace(t)
	p := newTwoPane(t, ws)
	p.split.SetChildPercent(p.left, 25)

	repl := ws.NewLeaf(nil)
	if !p.split.ReplaceChildLayout(p.left, repl) {
		t.Fatal("ReplaceChildLayout() = false")
	}
	if got := p.split.ChildSize(repl); got != 200 {
		t.Errorf("replacement size = %d, want 200", got)
	}
	if p.left.Parent() != nil || repl.Parent() != p.split {
		t.Error("parent references not updated")
	}
	if p.split.ReplaceChildLayout(p.left, ws.NewLeaf(nil)) {
		t.Error("replaced a layout that is no longer a child")
	}
}

func TestSplit_Sizing(t *testing.T) {
	ws := newTestWorkspace(t)
	a, b, c := ws.NewLeaf(nil), ws.NewLeaf(nil), ws.NewLeaf(nil)
	s := ws.NewSplit(AxisHorizontal, a, b, c)
	s.Resize(900, 400)

	for _, l := range []Layout{a, b, c} {
		if got := s.ChildSize(l); got != 300 {
			t.Errorf("ChildSize() = %d, want 300", got)
		}
	}
	if !s.SetChildPercent(a, 50) {
		t.Fatal("SetChildPercent() = false")
	}
	if got := []int{s.ChildSize(a), s.ChildSize(b), s.ChildSize(c)}; !cmp.Equal(got, []int{450, 150, 300}) {
		t.Errorf("sizes = %v, want [450 150 300]", got)
	}
	if w, h := b.Size(); w != 150 || h != 400 {
		t.Errorf("b size = %dx%d, want 150x400", w, h)
	}
	if !s.SetChildSize(c, 200) {
		t.Fatal("SetChildSize() = false")
	}
	if got := s.ChildSize(b); got != 250 {
		t.Errorf("ChildSize(b) = %d, want 250", got)
	}

	s.SetChildResizable(a, false)
	if s.SetChildPercent(a, 10) {
		t.Error("resized a non-resizable child")
	}
	if s.ChildFraction(ws.NewLeaf(nil)) != -1 {
		t.Error("ChildFraction of a stranger should be -1")
	}
}

func TestSplit_AddChildLayout(t *testing.T) {
	ws := newTestWorkspace(t)
	a, b, c := ws.NewLeaf(nil), ws.NewLeaf(nil), ws.NewLeaf(nil)
	s := ws.NewSplit(AxisVertical, a, b)

	if !s.AddChildLayout(1, c) {
		t.Fatal("AddChildLayout() = false")
	}
	if s.IndexOf(c) != 1 || s.Len() != 3 {
		t.Errorf("IndexOf(c) = %d, Len() = %d", s.IndexOf(c), s.Len())
	}
	if diff := cmp.Diff([]float64{0.5, 0.75}, s.Dividers()); diff != "" {
		t.Errorf("Dividers() mismatch (-want +got):\n%s", diff)
	}
	if s.AddChildLayout(0, c) {
		t.Error("added a child twice")
	}
}

func TestRemoveChildLayout_Cascade(t *testing.T) {
	ws := newTestWorkspace(t)
	x, c, d := dk("X"), dk("C"), dk("D")
	leafX := ws.NewLeaf(ws.NewTabbedSpace(x))
	leafC := ws.NewLeaf(ws.NewTabbedSpace(c))
	leafD := ws.NewLeaf(ws.NewTabbedSpace(d))
	inner := ws.NewSplit(AxisVertical, leafC, leafD)
	outer := ws.NewSplit(AxisHorizontal, leafX, inner)
	root := ws.MustRoot(outer)
	root.Resize(800, 600)

	// Emptying D's space prunes its leaf; inner is left with one child and
	// is replaced by it.
	if !root.RemoveDockable(d) {
		t.Fatal("RemoveDockable(D) = false")
	}
	got := outer.Children()
	if len(got) != 2 || got[0] != leafX || got[1] != leafC {
		t.Fatalf("outer children = %v, want [leafX leafC]", got)
	}
	if leafC.Parent() != outer || inner.Parent() != nil || leafD.Parent() != nil {
		t.Error("parent references not updated by the simplification")
	}
	if w, h := leafC.Size(); w != 400 || h != 600 {
		t.Errorf("leafC size = %dx%d, want 400x600", w, h)
	}

	// Emptying C collapses outer into leafX at the root.
	if !root.RemoveDockable(c) {
		t.Fatal("RemoveDockable(C) = false")
	}
	if root.Child() != leafX || leafX.Parent() != root {
		t.Fatalf("root child = %v, want leafX", root.Child())
	}
	if w, h := leafX.Size(); w != 800 || h != 600 {
		t.Errorf("leafX size = %dx%d, want 800x600", w, h)
	}
}

func TestCloseLastDockable_PrunesLeaf(t *testing.T) {
	ws := newTestWorkspace(t)
	p := newTwoPane(t, ws)

	if !p.rs.CloseDockable(p.c) {
		t.Fatal("CloseDockable(C) = false")
	}
	if p.c.Space() != nil || !p.c.Closed() {
		t.Error("C was not closed")
	}
	if p.right.Parent() != nil {
		t.Error("emptied leaf is still attached")
	}
	if p.root.Child() != p.left {
		t.Errorf("root child = %v, want the left leaf", p.root.Child())
	}
}

func TestRoot_RemoveFromParent(t *testing.T) {
	t.Run("without window installs empty leaf", func(t *testing.T) {
		ws := newTestWorkspace(t)
		a := dk("A")
		root := ws.MustRoot(ws.NewLeaf(ws.NewTabbedSpace(a)))
		root.CloseDockable(a)

		leaf, ok := root.Child().(*Leaf)
		if !ok || leaf.Space().Kind() != SpaceEmpty {
			t.Fatalf("root child = %v, want empty leaf", root.Child())
		}
	})

	t.Run("auto close closes window", func(t *testing.T) {
		ws := newTestWorkspace(t)
		a := dk("A")
		root := ws.MustRoot(ws.NewLeaf(ws.NewTabbedSpace(a)))
		win := &fakeWindow{}
		root.SetWindow(win)
		root.Show()

		root.CloseDockable(a)
		if !win.closed {
			t.Error("window was not closed")
		}
		if root.IsShowing() || len(ws.Roots()) != 0 {
			t.Error("root is still registered")
		}
	})

	t.Run("auto close disabled keeps window", func(t *testing.T) {
		ws := newTestWorkspace(t)
		a := dk("A")
		root := ws.MustRoot(ws.NewLeaf(ws.NewTabbedSpace(a)))
		win := &fakeWindow{}
		root.SetWindow(win)
		root.SetAutoCloseWhenEmpty(false)

		root.CloseDockable(a)
		if win.closed {
			t.Error("window closed with auto close disabled")
		}
	})
}

func TestDetachDockable_DefersPrune(t *testing.T) {
	ws := newTestWorkspace(t)
	p := newTwoPane(t, ws)

	if !p.rs.DetachDockable(p.c) {
		t.Fatal("DetachDockable(C) = false")
	}
	if p.right.Parent() != p.split {
		t.Fatal("leaf pruned before the deferred cycle")
	}
	if !ws.Pending() {
		t.Fatal("no deferred prune scheduled")
	}
	if !ws.Drain() {
		t.Fatal("Drain() = false")
	}
	if p.root.Child() != p.left {
		t.Error("deferred prune did not simplify the split")
	}
	if ws.Drain() {
		t.Error("second Drain() ran a task")
	}
}

func TestDeferredPrune_SkippedWhenRefilled(t *testing.T) {
	ws := newTestWorkspace(t)
	p := newTwoPane(t, ws)

	p.rs.DetachDockable(p.c)
	p.rs.AddDockable(p.c)
	ws.Drain()
	if p.right.Parent() != p.split {
		t.Error("refilled space was pruned")
	}
}

func TestWorkspace_SubscribeCancel(t *testing.T) {
	var sunk, heard int
	ws := newTestWorkspace(t, WithSink(SinkFunc(func(Event) { sunk++ })))
	cancel := ws.Subscribe(func(Event) { heard++ })

	ws.NewTabbedSpace(dk("A"))
	cancel()
	ws.NewTabbedSpace(dk("B"))

	if heard == 0 || sunk <= heard {
		t.Errorf("heard = %d, sunk = %d; want listener to stop after cancel", heard, sunk)
	}
}
