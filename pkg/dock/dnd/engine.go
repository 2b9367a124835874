package dnd

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dockyard/pkg/dock"
	"github.com/matzehuels/dockyard/pkg/observability"
)

// StageFactory opens the floating windows that dockables are torn out into.
type StageFactory interface {
	// NewWindowForDockable opens a floating window of the given size next to
	// source, the window the gesture started in (nil if unknown).
	NewWindowForDockable(source dock.Window, d *dock.Dockable, width, height int) (dock.Window, error)
}

// StageFactoryFunc adapts a function to [StageFactory].
type StageFactoryFunc func(source dock.Window, d *dock.Dockable, width, height int) (dock.Window, error)

func (f StageFactoryFunc) NewWindowForDockable(source dock.Window, d *dock.Dockable, width, height int) (dock.Window, error) {
	return f(source, d, width, height)
}

// Engine runs drag gestures against the trees of one workspace. There is at
// most one gesture at a time; its state is the current [Session].
type Engine struct {
	ws      *dock.Workspace
	logger  *log.Logger
	canvas  Canvas
	stages  StageFactory
	width   int
	height  int
	now     func() time.Time
	session Session
}

// Option configures an [Engine].
type Option func(*Engine)

// WithLogger sets the logger. By default the workspace logger is used.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithCanvas sets the canvas used by targets created with [Engine.Target].
func WithCanvas(c Canvas) Option {
	return func(e *Engine) {
		if c != nil {
			e.canvas = c
		}
	}
}

// WithStageFactory enables tearing dockables out into new windows.
func WithStageFactory(f StageFactory) Option {
	return func(e *Engine) { e.stages = f }
}

// WithExtractionSize sets the size of torn-out windows when the source leaf
// has not been laid out.
func WithExtractionSize(width, height int) Option {
	return func(e *Engine) {
		if width > 0 && height > 0 {
			e.width, e.height = width, height
		}
	}
}

// WithClock overrides the time source used for gesture durations.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an idle engine for ws.
func NewEngine(ws *dock.Workspace, opts ...Option) *Engine {
	e := &Engine{
		ws:     ws,
		logger: ws.Logger(),
		canvas: NopCanvas{},
		width:  640,
		height: 480,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Session returns the current gesture state.
func (e *Engine) Session() Session { return e.session }

// Target wraps s as a drop surface drawing on the engine's canvas.
func (e *Engine) Target(s dock.Space) *SpaceTarget { return NewSpaceTarget(s, e.canvas) }

// Begin starts dragging d and returns the payload to hand to the platform.
// It fails while another gesture is active and for dockables that are not
// draggable or not in a space.
func (e *Engine) Begin(d *dock.Dockable) (Payload, bool) {
	if d == nil || !d.Draggable() || d.Closed() || d.Space() == nil {
		return Payload{}, false
	}
	next, ok := e.session.start(d, e.now())
	if !ok {
		return Payload{}, false
	}
	e.session = next
	e.logger.Debug("drag started", "dockable", d.ID(), "title", d.Title(), "group", d.DragGroup())
	observability.Drag().OnDragStart(string(d.ID()), d.DragGroup())
	return PayloadOf(d), true
}

// BeginPayload recovers a gesture from a raw platform payload, as seen by a
// drop surface in a window other than the one the drag started in. The
// dockable is resolved across every shown root. Payloads that are not ours,
// are already committed, or name an unknown dockable are ignored.
func (e *Engine) BeginPayload(raw string) bool {
	p, err := ParsePayload(raw)
	if err != nil || p.Outcome != OutcomeNone {
		return false
	}
	if e.session.Active() {
		return e.session.Dockable().ID() == p.ID
	}
	path, ok := e.ws.ResolveDockable(p.ID)
	if !ok || path.Dockable().DragGroup() != p.Group {
		e.logger.Debug("ignoring drag payload", "payload", raw)
		return false
	}
	_, ok = e.Begin(path.Dockable())
	return ok
}

// Hover reports whether dropping at ev with side on t would be accepted,
// and shows the hint if so. Hovering an illegal spot keeps the gesture but
// drops any previous hint.
func (e *Engine) Hover(t Destination, ev DropEvent, side dock.Side) bool {
	if !e.session.Active() || t == nil {
		return false
	}
	if prev := e.session.Target(); prev != nil && prev != t {
		prev.ClearCanvas()
	}
	if !t.CanReceiveHeader(ev, side, e.session.Dockable()) {
		t.ClearCanvas()
		e.session, _ = e.session.exit()
		return false
	}
	e.session, _ = e.session.hover(t, side, ev)
	t.DrawCanvasHint(side)
	return true
}

// Exit is called when the pointer leaves the hovered target.
func (e *Engine) Exit() {
	if t := e.session.Target(); t != nil {
		t.ClearCanvas()
	}
	e.session, _ = e.session.exit()
}

// Drop ends the gesture on t. A nil t means the pointer was released outside
// every drop surface, which tears the dockable out into a new window when
// possible. A refused drop cancels the gesture without touching the tree.
func (e *Engine) Drop(t Destination, ev DropEvent, side dock.Side) (Outcome, bool) {
	if !e.session.Active() {
		return OutcomeNone, false
	}
	if prev := e.session.Target(); prev != nil {
		prev.ClearCanvas()
	}
	if t == nil {
		return e.extract()
	}
	t.ClearCanvas()
	d := e.session.Dockable()
	if !t.ReceiveDroppedHeader(ev, side, d) {
		e.cancel("refused")
		return OutcomeNone, false
	}
	outcome := OutcomeHeader
	if side != dock.SideNone {
		outcome = OutcomeRegion
	}
	e.commit(t, side, ev, outcome)
	return outcome, true
}

// Cancel abandons the gesture. The tree is not touched.
func (e *Engine) Cancel() { e.cancel("cancelled") }

// End finishes the platform side of the gesture and returns the final wire
// payload. A gesture still active at this point is cancelled.
func (e *Engine) End() Payload {
	if e.session.Active() {
		e.cancel("ended")
	}
	return e.session.Payload()
}

func (e *Engine) extract() (Outcome, bool) {
	d := e.session.Dockable()
	src := d.Space()
	if !d.Externalizable() || src == nil || !src.Contains(d) || e.stages == nil {
		e.cancel("not externalizable")
		return OutcomeNone, false
	}

	var srcWindow dock.Window
	var srcRoot *dock.Root
	if leaf := src.Leaf(); leaf != nil {
		srcRoot = leaf.Root()
	}
	if srcRoot != nil {
		srcWindow = srcRoot.Window()
		if srcWindow != nil && srcWindow.Floating() && len(srcRoot.Dockables()) == 1 {
			e.cancel("sole dockable of a floating window")
			return OutcomeNone, false
		}
	}

	width, height := e.width, e.height
	if leaf := src.Leaf(); leaf != nil {
		if w, h := leaf.Size(); w > 0 && h > 0 {
			width, height = w, h
		}
	}
	win, err := e.stages.NewWindowForDockable(srcWindow, d, width, height)
	if err != nil || win == nil {
		e.logger.Warn("could not open window for dockable", "dockable", d.ID(), "err", err)
		e.cancel("no window")
		return OutcomeNone, false
	}

	detach(d)
	ts := e.ws.NewTabbedSpace(d)
	ts.SetHeaderSide(dock.SideTop)
	root := e.ws.MustRoot(e.ws.NewLeaf(ts))
	root.SetWindow(win)
	root.Resize(width, height)
	root.Show()

	observability.Drag().OnExtract(string(d.ID()), width, height)
	e.commit(nil, dock.SideNone, DropEvent{}, OutcomeExternal)
	return OutcomeExternal, true
}

func (e *Engine) commit(t Destination, side dock.Side, ev DropEvent, o Outcome) {
	e.session, _ = e.session.commit(t, side, ev, o)
	d := e.session.Dockable()
	elapsed := e.now().Sub(e.session.Started())
	e.logger.Debug("drag committed", "dockable", d.ID(), "outcome", o, "side", side, "elapsed", elapsed)
	observability.Drag().OnDrop(string(d.ID()), string(o), elapsed)
	e.ws.Drain()
}

func (e *Engine) cancel(reason string) {
	if t := e.session.Target(); t != nil {
		t.ClearCanvas()
	}
	next, ok := e.session.cancel(reason)
	if !ok {
		return
	}
	e.session = next
	d := next.Dockable()
	e.logger.Debug("drag cancelled", "dockable", d.ID(), "reason", reason)
	observability.Drag().OnCancel(string(d.ID()), reason)
}
