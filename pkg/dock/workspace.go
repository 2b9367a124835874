package dock

import (
	"slices"

	"github.com/charmbracelet/log"
)

// Defaults holds the values new spaces and roots are created with.
type Defaults struct {
	// HeaderSide is the header placement of new tabbed spaces.
	HeaderSide Side
	// AutoPruneWhenEmpty removes a tabbed space's leaf once its last
	// dockable leaves.
	AutoPruneWhenEmpty bool
	// CanSplit allows drops against a tabbed space's edges.
	CanSplit bool
	// HeaderExtent is the header strip size in pixels, the extent a
	// collapsed split child shrinks to.
	HeaderExtent int
	// AutoCloseWhenEmpty closes a root's hosting window when its tree
	// empties instead of showing an empty leaf.
	AutoCloseWhenEmpty bool
}

// DefaultDefaults returns the defaults used when no [WithDefaults] option is
// given.
func DefaultDefaults() Defaults {
	return Defaults{
		HeaderSide:         SideTop,
		AutoPruneWhenEmpty: true,
		CanSplit:           true,
		HeaderExtent:       28,
		AutoCloseWhenEmpty: true,
	}
}

// ContentFactory builds the placeholder shown by a leaf or tabbed space that
// has nothing to display. The returned handle is opaque to this package.
type ContentFactory interface {
	Build(parent Layout) any
}

// ContentFactoryFunc adapts a function to [ContentFactory].
type ContentFactoryFunc func(parent Layout) any

// Build calls f(parent).
func (f ContentFactoryFunc) Build(parent Layout) any { return f(parent) }

// Window is the hosting top-level unit of a [Root]. Window creation and
// drawing live outside this package.
type Window interface {
	// Close closes the window.
	Close()
	// Floating reports whether the window was torn out of another one.
	Floating() bool
}

type listener struct {
	id int
	fn func(Event)
}

// Workspace owns the process-wide state shared by every tree it creates:
// the registry of displayed roots, the notification sink, the deferred prune
// slot and creation defaults. All methods must be called from the single UI
// event goroutine.
type Workspace struct {
	logger    *log.Logger
	sink      Sink
	listeners []listener
	nextID    int
	roots     []*Root
	content   ContentFactory
	defaults  Defaults
	pending   deferred
}

// Option configures a [Workspace].
type Option func(*Workspace)

// WithLogger sets the logger. A nil logger leaves log.Default in place.
func WithLogger(l *log.Logger) Option {
	return func(w *Workspace) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithSink sets the primary notification sink.
func WithSink(s Sink) Option {
	return func(w *Workspace) { w.sink = s }
}

// WithContentFactory sets the empty-content factory.
func WithContentFactory(f ContentFactory) Option {
	return func(w *Workspace) { w.content = f }
}

// WithDefaults replaces the creation defaults.
func WithDefaults(d Defaults) Option {
	return func(w *Workspace) { w.defaults = d }
}

// NewWorkspace creates an empty workspace.
func NewWorkspace(opts ...Option) *Workspace {
	w := &Workspace{
		logger:   log.Default(),
		defaults: DefaultDefaults(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Logger returns the workspace logger.
func (w *Workspace) Logger() *log.Logger { return w.logger }

// Defaults returns the creation defaults.
func (w *Workspace) Defaults() Defaults { return w.defaults }

// Subscribe registers fn for every event and returns a function that
// removes it again.
func (w *Workspace) Subscribe(fn func(Event)) (cancel func()) {
	w.nextID++
	id := w.nextID
	w.listeners = append(w.listeners, listener{id: id, fn: fn})
	return func() {
		w.listeners = slices.DeleteFunc(w.listeners, func(l listener) bool { return l.id == id })
	}
}

func (w *Workspace) emit(e Event) {
	if w == nil {
		return
	}
	if w.sink != nil {
		w.sink.Notify(e)
	}
	for _, l := range slices.Clone(w.listeners) {
		l.fn(e)
	}
}

func (w *Workspace) buildContent(parent Layout) any {
	if w == nil || w.content == nil {
		return nil
	}
	return w.content.Build(parent)
}

// Roots returns the roots currently being displayed, in registration order.
func (w *Workspace) Roots() []*Root { return slices.Clone(w.roots) }

func (w *Workspace) register(r *Root) bool {
	if slices.Contains(w.roots, r) {
		return false
	}
	w.roots = append(w.roots, r)
	w.debug("root registered", "root", r.id, "roots", len(w.roots))
	w.emit(Event{Kind: EventRootAdded, Root: r})
	return true
}

func (w *Workspace) unregister(r *Root) bool {
	i := slices.Index(w.roots, r)
	if i < 0 {
		return false
	}
	w.roots = slices.Delete(w.roots, i, i+1)
	w.debug("root unregistered", "root", r.id, "roots", len(w.roots))
	w.emit(Event{Kind: EventRootRemoved, Root: r})
	return true
}

// Drain runs the deferred prune, if one is pending. Hosts call it once per
// event-processing cycle. It reports whether a task ran.
func (w *Workspace) Drain() bool { return w.pending.drain() }

// Pending reports whether a deferred prune is waiting for the next cycle.
func (w *Workspace) Pending() bool { return w.pending.task != nil }

func (w *Workspace) deferPrune(fn func()) { w.pending.schedule(fn) }

// deferred is a single-slot queue. It exists only so that a tabbed space
// emptied by an in-flight drag stays a valid drop target until the drop
// handler returns; its prune then runs on the next cycle.
type deferred struct {
	task func()
}

// schedule holds fn until the next drain. A task already waiting runs first.
func (q *deferred) schedule(fn func()) {
	if prev := q.task; prev != nil {
		q.task = nil
		prev()
	}
	q.task = fn
}

func (q *deferred) drain() bool {
	t := q.task
	q.task = nil
	if t == nil {
		return false
	}
	t()
	return true
}

func (w *Workspace) debug(msg string, keyvals ...any) {
	if w != nil {
		w.logger.Debug(msg, keyvals...)
	}
}
