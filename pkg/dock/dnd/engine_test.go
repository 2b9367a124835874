package dnd

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/dockyard/pkg/dock"
	"github.com/matzehuels/dockyard/pkg/observability"
)

type fakeWindow struct {
	closed   bool
	floating bool
}

func (w *fakeWindow) Close()         { w.closed = true }
func (w *fakeWindow) Floating() bool { return w.floating }

type stageCall struct {
	source        dock.Window
	dockable      *dock.Dockable
	width, height int
}

type fakeStages struct {
	calls []stageCall
}

func (f *fakeStages) NewWindowForDockable(source dock.Window, d *dock.Dockable, width, height int) (dock.Window, error) {
	f.calls = append(f.calls, stageCall{source, d, width, height})
	return &fakeWindow{floating: true}, nil
}

type recordingCanvas struct {
	hints  []dock.Side
	clears int
}

func (c *recordingCanvas) DrawHint(_ Destination, side dock.Side) { c.hints = append(c.hints, side) }
func (c *recordingCanvas) Clear(Destination)                      { c.clears++ }

func dk(name string, opts ...dock.DockableOption) *dock.Dockable {
	return dock.MustDockable(name, append([]dock.DockableOption{dock.WithID(dock.ID(name)), dock.WithTitle(name)}, opts...)...)
}

func titles(ds []*dock.Dockable) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Title()
	}
	return out
}

// fixture is Root→Split(H)[Leaf(Tabbed[A,B]), Leaf(Tabbed[C])], shown at
// 800x600.
type fixture struct {
	ws          *dock.Workspace
	root        *dock.Root
	split       *dock.Split
	left, right *dock.Leaf
	ls, rs      *dock.TabbedSpace
	a, b, c     *dock.Dockable
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		ws: dock.NewWorkspace(dock.WithLogger(log.New(io.Discard))),
		a:  dk("A"),
		b:  dk("B"),
		c:  dk("C"),
	}
	f.ls = f.ws.NewTabbedSpace(f.a, f.b)
	f.rs = f.ws.NewTabbedSpace(f.c)
	f.left = f.ws.NewLeaf(f.ls)
	f.right = f.ws.NewLeaf(f.rs)
	f.split = f.ws.NewSplit(dock.AxisHorizontal, f.left, f.right)
	f.root = f.ws.MustRoot(f.split)
	f.root.Resize(800, 600)
	f.root.Show()
	return f
}

func TestDrop_MergeIntoTabRow(t *testing.T) {
	f := newFixture(t)
	e := NewEngine(f.ws)

	_, ok := e.Begin(f.a)
	require.True(t, ok)
	target := e.Target(f.rs)
	require.True(t, e.Hover(target, AtEnd, dock.SideNone))
	assert.Equal(t, StateHovering, e.Session().State())

	outcome, ok := e.Drop(target, AtEnd, dock.SideNone)
	require.True(t, ok)
	assert.Equal(t, OutcomeHeader, outcome)

	assert.Equal(t, []string{"B"}, titles(f.ls.Dockables()))
	assert.Equal(t, []string{"C", "A"}, titles(f.rs.Dockables()))
	assert.Same(t, f.a, f.rs.Selected())
	assert.Same(t, f.b, f.ls.Selected())
	assert.Equal(t, StateCommitted, e.Session().State())
	assert.Equal(t, "dockyard:0:A:HEADER", e.End().String())
}

func TestDrop_SplitAgainstEdge(t *testing.T) {
	f := newFixture(t)
	e := NewEngine(f.ws)

	_, ok := e.Begin(f.a)
	require.True(t, ok)
	outcome, ok := e.Drop(e.Target(f.rs), AtEnd, dock.SideRight)
	require.True(t, ok)
	assert.Equal(t, OutcomeRegion, outcome)

	assert.Equal(t, []string{"B"}, titles(f.ls.Dockables()))
	children := f.split.Children()
	require.Len(t, children, 2)
	assert.Same(t, f.left, children[0])

	nested, ok := children[1].(*dock.Split)
	require.True(t, ok, "right side should be a split, got %T", children[1])
	assert.Equal(t, dock.AxisHorizontal, nested.Axis())
	inner := nested.Children()
	require.Len(t, inner, 2)
	assert.Same(t, f.right, inner[0])

	newLeaf, ok := inner[1].(*dock.Leaf)
	require.True(t, ok)
	assert.Equal(t, []string{"A"}, titles(newLeaf.Dockables()))
	assert.Equal(t, dock.SideTop, newLeaf.Space().HeaderSide())
	assert.Equal(t, 200, nested.ChildSize(f.right))
}

func TestDrop_SplitHeaderSide(t *testing.T) {
	tests := []struct {
		name   string
		header dock.Side
		drop   dock.Side
		want   dock.Side
	}{
		{"same axis defaults to top", dock.SideBottom, dock.SideTop, dock.SideTop},
		{"same vertical axis defaults to top", dock.SideLeft, dock.SideRight, dock.SideTop},
		{"cross axis keeps target side", dock.SideLeft, dock.SideBottom, dock.SideLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.rs.SetHeaderSide(tt.header)
			e := NewEngine(f.ws)
			e.Begin(f.a)

			_, ok := e.Drop(e.Target(f.rs), AtEnd, tt.drop)
			require.True(t, ok)
			path, ok := f.a.Path()
			require.True(t, ok)
			assert.Equal(t, tt.want, path.Space().HeaderSide())
		})
	}
}

func TestDrop_Reorder(t *testing.T) {
	tests := []struct {
		name  string
		move  string
		index int
		want  []string
	}{
		{"first to end", "A", 3, []string{"B", "C", "A"}},
		{"first past next", "A", 2, []string{"B", "A", "C"}},
		{"last to front", "C", 0, []string{"C", "A", "B"}},
		{"append", "A", -1, []string{"B", "C", "A"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			d := dk("X")
			f.ls.AddDockable(d)
			d.SetTitle("C")
			byName := map[string]*dock.Dockable{"A": f.a, "B": f.b, "C": d}

			e := NewEngine(f.ws)
			e.Begin(byName[tt.move])
			outcome, ok := e.Drop(e.Target(f.ls), DropEvent{Index: tt.index}, dock.SideNone)
			require.True(t, ok)
			assert.Equal(t, OutcomeHeader, outcome)
			assert.Equal(t, tt.want, titles(f.ls.Dockables()))
			assert.Same(t, byName[tt.move], f.ls.Selected())
		})
	}
}

func TestHover_NoPositionChange(t *testing.T) {
	f := newFixture(t)
	e := NewEngine(f.ws)
	e.Begin(f.a)
	target := e.Target(f.ls)

	assert.False(t, e.Hover(target, DropEvent{Index: 0}, dock.SideNone), "same index")
	assert.False(t, e.Hover(target, DropEvent{Index: 1}, dock.SideNone), "right after itself")
	assert.True(t, e.Hover(target, AtEnd, dock.SideNone))

	_, ok := e.Drop(target, DropEvent{Index: 1}, dock.SideNone)
	assert.False(t, ok)
	assert.Equal(t, StateCancelled, e.Session().State())
	assert.Equal(t, []string{"A", "B"}, titles(f.ls.Dockables()))
}

func TestHover_SplitOwnSoleSpaceRefused(t *testing.T) {
	f := newFixture(t)
	e := NewEngine(f.ws)
	e.Begin(f.c)

	for _, side := range []dock.Side{dock.SideTop, dock.SideBottom, dock.SideLeft, dock.SideRight} {
		assert.False(t, e.Hover(e.Target(f.rs), AtEnd, side), side.String())
	}
	assert.True(t, e.Hover(e.Target(f.ls), AtEnd, dock.SideRight))
}

func TestDrop_GroupEnforcement(t *testing.T) {
	f := newFixture(t)
	x := dk("X", dock.WithDragGroup(1))
	y := dk("Y", dock.WithDragGroup(2))
	groupOne := f.ws.NewTabbedSpace(x)
	groupTwo := f.ws.NewTabbedSpace(y)
	f.root.AsSplitWithSpace(groupOne, dock.SideBottom)
	f.root.AsSplitWithSpace(groupTwo, dock.SideBottom)

	e := NewEngine(f.ws)
	_, ok := e.Begin(y)
	require.True(t, ok)
	assert.False(t, e.Hover(e.Target(groupOne), AtEnd, dock.SideNone))
	assert.False(t, e.Hover(e.Target(groupOne), AtEnd, dock.SideLeft))
	_, ok = e.Drop(e.Target(groupOne), AtEnd, dock.SideNone)
	assert.False(t, ok)
	assert.Equal(t, []string{"X"}, titles(groupOne.Dockables()))
	assert.Same(t, groupTwo, y.Space())

	// Direct insertion ignores groups.
	z := dk("Z", dock.WithDragGroup(2))
	assert.True(t, groupOne.AddDockable(z))
}

func TestDrop_SoleDockablePrunesSource(t *testing.T) {
	f := newFixture(t)
	e := NewEngine(f.ws)
	e.Begin(f.c)

	_, ok := e.Drop(e.Target(f.ls), AtEnd, dock.SideNone)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "C"}, titles(f.ls.Dockables()))
	assert.False(t, f.ws.Pending(), "commit should drain the deferred prune")
	assert.Same(t, f.left, f.root.Child())
	assert.Nil(t, f.right.Parent())
}

func TestDrop_SoleDockableSplitsSibling(t *testing.T) {
	f := newFixture(t)
	e := NewEngine(f.ws)
	e.Begin(f.c)

	_, ok := e.Drop(e.Target(f.ls), AtEnd, dock.SideTop)
	require.True(t, ok)

	s, ok := f.root.Child().(*dock.Split)
	require.True(t, ok, "root child = %T", f.root.Child())
	assert.Equal(t, dock.AxisVertical, s.Axis())
	children := s.Children()
	require.Len(t, children, 2)
	assert.Equal(t, []string{"C"}, titles(children[0].Dockables()))
	assert.Same(t, f.left, children[1])
}

func TestDrop_OntoEmptyLeaf(t *testing.T) {
	f := newFixture(t)
	empty := f.ws.NewLeaf(nil)
	f.split.AddChildLayout(2, empty)

	e := NewEngine(f.ws)
	e.Begin(f.a)
	outcome, ok := e.Drop(e.Target(empty.Space()), AtEnd, dock.SideNone)
	require.True(t, ok)
	assert.Equal(t, OutcomeHeader, outcome)

	ts, ok := empty.Space().(*dock.TabbedSpace)
	require.True(t, ok, "empty leaf should now hold a tabbed space")
	assert.Equal(t, []string{"A"}, titles(ts.Dockables()))
	assert.Same(t, f.a, ts.Selected())
	assert.Equal(t, dock.SideTop, ts.HeaderSide())
}

func TestDrop_SingleSpaceHasNoTabRow(t *testing.T) {
	f := newFixture(t)
	s := f.ws.MustSingleSpace(dk("S"))
	f.root.AsSplitWithSpace(s, dock.SideBottom)

	e := NewEngine(f.ws)
	e.Begin(f.a)
	assert.False(t, e.Hover(e.Target(s), AtEnd, dock.SideNone))
	assert.True(t, e.Hover(e.Target(s), AtEnd, dock.SideLeft))
}

func TestDrop_External(t *testing.T) {
	f := newFixture(t)
	stages := &fakeStages{}
	e := NewEngine(f.ws, WithStageFactory(stages))
	e.Begin(f.b)

	outcome, ok := e.Drop(nil, DropEvent{}, dock.SideNone)
	require.True(t, ok)
	assert.Equal(t, OutcomeExternal, outcome)

	require.Len(t, stages.calls, 1)
	call := stages.calls[0]
	assert.Same(t, f.b, call.dockable)
	assert.Nil(t, call.source)
	assert.Equal(t, 400, call.width)
	assert.Equal(t, 600, call.height)

	assert.Equal(t, []string{"A"}, titles(f.ls.Dockables()))
	roots := f.ws.Roots()
	require.Len(t, roots, 2)
	floating := roots[1]
	assert.True(t, floating.Window().Floating())
	assert.Equal(t, []string{"B"}, titles(floating.Dockables()))
	path, ok := f.ws.ResolveDockable("B")
	require.True(t, ok)
	assert.Same(t, floating, path.Root())
	assert.Equal(t, dock.SideTop, path.Space().HeaderSide())
	assert.Equal(t, "dockyard:0:B:EXTERNAL", e.End().String())
}

func TestDrop_ExternalSkippedForSoleFloatingDockable(t *testing.T) {
	f := newFixture(t)
	g := dk("G")
	floating := f.ws.MustRoot(f.ws.NewLeaf(f.ws.NewTabbedSpace(g)))
	floating.SetWindow(&fakeWindow{floating: true})
	floating.Show()

	stages := &fakeStages{}
	e := NewEngine(f.ws, WithStageFactory(stages))
	e.Begin(g)

	_, ok := e.Drop(nil, DropEvent{}, dock.SideNone)
	assert.False(t, ok)
	assert.Empty(t, stages.calls)
	assert.Equal(t, StateCancelled, e.Session().State())
	assert.Same(t, floating, g.Leaf().Root())
}

func TestDrop_ExternalRequiresExternalizable(t *testing.T) {
	f := newFixture(t)
	f.a.SetExternalizable(false)
	stages := &fakeStages{}
	e := NewEngine(f.ws, WithStageFactory(stages))
	e.Begin(f.a)

	_, ok := e.Drop(nil, DropEvent{}, dock.SideNone)
	assert.False(t, ok)
	assert.Empty(t, stages.calls)
	assert.Same(t, f.ls, f.a.Space())
}

func TestBeginPayload_CrossWindow(t *testing.T) {
	f := newFixture(t)
	g := dk("G", dock.WithDragGroup(4))
	floating := f.ws.MustRoot(f.ws.NewLeaf(f.ws.NewTabbedSpace(g)))
	floating.Show()

	e := NewEngine(f.ws)
	assert.False(t, e.BeginPayload("text/plain:hello"))
	assert.False(t, e.BeginPayload("dockyard:0:G"), "group mismatch")
	assert.False(t, e.BeginPayload("dockyard:4:G:HEADER"), "already committed")
	assert.False(t, e.BeginPayload("dockyard:0:missing"))
	assert.Equal(t, StateIdle, e.Session().State())

	require.True(t, e.BeginPayload("dockyard:4:G"))
	assert.Same(t, g, e.Session().Dockable())
	assert.True(t, e.BeginPayload("dockyard:4:G"), "same gesture seen again")
	assert.False(t, e.BeginPayload("dockyard:0:A"), "another gesture is active")
}

func TestBegin_Refused(t *testing.T) {
	f := newFixture(t)
	e := NewEngine(f.ws)

	f.a.SetDraggable(false)
	_, ok := e.Begin(f.a)
	assert.False(t, ok, "not draggable")
	_, ok = e.Begin(dk("loose"))
	assert.False(t, ok, "not in a space")

	_, ok = e.Begin(f.b)
	require.True(t, ok)
	_, ok = e.Begin(f.c)
	assert.False(t, ok, "gesture already active")
}

func TestExitAndCancel_LeaveTreeAlone(t *testing.T) {
	f := newFixture(t)
	canvas := &recordingCanvas{}
	e := NewEngine(f.ws, WithCanvas(canvas))
	e.Begin(f.a)

	require.True(t, e.Hover(e.Target(f.rs), AtEnd, dock.SideBottom))
	assert.Equal(t, []dock.Side{dock.SideBottom}, canvas.hints)
	e.Exit()
	assert.Equal(t, StateDragging, e.Session().State())
	assert.Nil(t, e.Session().Target())
	assert.Positive(t, canvas.clears)

	e.Hover(e.Target(f.rs), AtEnd, dock.SideNone)
	e.Cancel()
	assert.Equal(t, StateCancelled, e.Session().State())
	assert.Equal(t, "cancelled", e.Session().Reason())
	assert.Equal(t, []string{"A", "B"}, titles(f.ls.Dockables()))
	assert.Equal(t, []string{"C"}, titles(f.rs.Dockables()))
	assert.Equal(t, "dockyard:0:A", e.End().String())
}

type recordingDragHooks struct {
	observability.NoopDragHooks
	outcomes []string
	elapsed  time.Duration
}

func (h *recordingDragHooks) OnDrop(_ string, outcome string, d time.Duration) {
	h.outcomes = append(h.outcomes, outcome)
	h.elapsed = d
}

func TestDrop_ReportsHooks(t *testing.T) {
	hooks := &recordingDragHooks{}
	observability.SetDragHooks(hooks)
	defer observability.Reset()

	f := newFixture(t)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := start
	e := NewEngine(f.ws, WithClock(func() time.Time { return clock }))
	e.Begin(f.a)
	clock = start.Add(250 * time.Millisecond)
	e.Drop(e.Target(f.rs), AtEnd, dock.SideNone)

	assert.Equal(t, []string{"HEADER"}, hooks.outcomes)
	assert.Equal(t, 250*time.Millisecond, hooks.elapsed)
}
