package dock

import (
	"slices"
	"strings"

	"github.com/matzehuels/dockyard/pkg/errors"
)

// Dockable is a user-visible unit of content that lives in at most one
// [Space] at a time. The space owns the membership; the dockable only keeps
// a non-owning reference to it, maintained by the space's mutators.
//
// A dockable can be detached and attached elsewhere any number of times. It
// is destroyed only by an explicit close, which fires its close listeners and
// releases the payload.
type Dockable struct {
	id             ID
	title          string
	icon           string
	tooltip        string
	dragGroup      int
	closable       bool
	draggable      bool
	externalizable bool

	payload any
	space   Space
	closed  bool
	onClose []func(*Dockable)
}

// DockableOption configures a [Dockable] at construction.
type DockableOption func(*Dockable)

// WithID overrides the generated identifier.
func WithID(id ID) DockableOption { return func(d *Dockable) { d.id = id } }

// WithTitle sets the tab title.
func WithTitle(title string) DockableOption { return func(d *Dockable) { d.title = title } }

// WithIcon sets the icon name.
func WithIcon(icon string) DockableOption { return func(d *Dockable) { d.icon = icon } }

// WithTooltip sets the tooltip text.
func WithTooltip(tip string) DockableOption { return func(d *Dockable) { d.tooltip = tip } }

// WithDragGroup sets the drag group.
func WithDragGroup(group int) DockableOption { return func(d *Dockable) { d.dragGroup = group } }

// WithClosable sets whether the dockable may be closed.
func WithClosable(v bool) DockableOption { return func(d *Dockable) { d.closable = v } }

// WithDraggable sets whether the dockable may start a drag gesture.
func WithDraggable(v bool) DockableOption { return func(d *Dockable) { d.draggable = v } }

// WithExternalizable sets whether the dockable may be torn out into its own
// window.
func WithExternalizable(v bool) DockableOption {
	return func(d *Dockable) { d.externalizable = v }
}

// NewDockable creates a detached dockable owning payload. A nil payload, an
// empty id or an id containing ':' (the drag payload separator) is a
// programmer error and is reported as ErrCodeInvalidDockable.
func NewDockable(payload any, opts ...DockableOption) (*Dockable, error) {
	if payload == nil {
		return nil, errors.New(errors.ErrCodeInvalidDockable, "dockable requires a payload")
	}
	d := &Dockable{
		id:             NewID(),
		closable:       true,
		draggable:      true,
		externalizable: true,
		payload:        payload,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.id == "" {
		return nil, errors.New(errors.ErrCodeInvalidDockable, "dockable %q has an empty id", d.title)
	}
	if strings.Contains(string(d.id), ":") {
		return nil, errors.New(errors.ErrCodeInvalidDockable, "dockable id %q must not contain ':'", d.id)
	}
	return d, nil
}

// MustDockable is like [NewDockable] but panics on error.
func MustDockable(payload any, opts ...DockableOption) *Dockable {
	d, err := NewDockable(payload, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// ID returns the identifier carried in drag payloads.
func (d *Dockable) ID() ID { return d.id }

func (d *Dockable) Title() string   { return d.title }
func (d *Dockable) Icon() string    { return d.icon }
func (d *Dockable) Tooltip() string { return d.tooltip }

// DragGroup returns the group d may share a non-empty space with.
func (d *Dockable) DragGroup() int { return d.dragGroup }

func (d *Dockable) Closable() bool  { return d.closable }
func (d *Dockable) Draggable() bool { return d.draggable }

// Externalizable reports whether d may be torn out into its own window.
func (d *Dockable) Externalizable() bool { return d.externalizable }

// Payload returns the owned UI payload, or nil once closed.
func (d *Dockable) Payload() any { return d.payload }

// Setters change the property in place. SetDragGroup does not move d out
// of a space whose residents belong to another group.
func (d *Dockable) SetTitle(title string)    { d.title = title }
func (d *Dockable) SetIcon(icon string)      { d.icon = icon }
func (d *Dockable) SetTooltip(tip string)    { d.tooltip = tip }
func (d *Dockable) SetDragGroup(group int)   { d.dragGroup = group }
func (d *Dockable) SetClosable(v bool)       { d.closable = v }
func (d *Dockable) SetDraggable(v bool)      { d.draggable = v }
func (d *Dockable) SetExternalizable(v bool) { d.externalizable = v }

// Space returns the space currently holding d, or nil when detached.
func (d *Dockable) Space() Space { return d.space }

// Leaf returns the leaf owning d's space, or nil.
func (d *Dockable) Leaf() *Leaf {
	if d.space == nil {
		return nil
	}
	return d.space.Leaf()
}

// Closed reports whether d has been destroyed.
func (d *Dockable) Closed() bool { return d.closed }

// Path returns d's path built from the live parent chain.
func (d *Dockable) Path() (*DockablePath, bool) { return PathOfDockable(d) }

// OnClose registers fn to run when d is closed.
func (d *Dockable) OnClose(fn func(*Dockable)) { d.onClose = append(d.onClose, fn) }

// Close closes d. An attached dockable is closed through its space, which
// fires the closing notification first; a detached one is destroyed
// directly. Close fails for non-closable or already closed dockables.
func (d *Dockable) Close() bool {
	if d.closed || !d.closable {
		return false
	}
	if d.space != nil {
		return d.space.CloseDockable(d)
	}
	d.destroy()
	return true
}

func (d *Dockable) attachable() bool { return !d.closed && d.space == nil }

func (d *Dockable) setSpace(s Space) {
	old := d.space
	d.space = s
	if old == s {
		return
	}
	ws := workspaceOf(s, old)
	ws.emit(Event{Kind: EventDockableParentChanged, Dockable: d, OldSpace: old, Space: s})
}

func (d *Dockable) destroy() {
	if d.closed {
		return
	}
	d.closed = true
	for _, fn := range slices.Clone(d.onClose) {
		fn(d)
	}
	d.onClose = nil
	d.payload = nil
}

func workspaceOf(spaces ...Space) *Workspace {
	for _, s := range spaces {
		if s != nil {
			return s.Workspace()
		}
	}
	return nil
}
