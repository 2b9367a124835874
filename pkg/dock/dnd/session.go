package dnd

import (
	"time"

	"github.com/matzehuels/dockyard/pkg/dock"
)

// State is the phase of a drag gesture.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateHovering
	StateCommitted
	StateCancelled
)

var stateNames = [...]string{"idle", "dragging", "hovering", "committed", "cancelled"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Session is the state of one drag gesture. It is an immutable value: every
// transition returns a new Session and reports whether the transition was
// allowed from the current state. The zero value is an idle session.
//
//	Idle → Dragging ⇄ Hovering → Committed
//	          └─────────┴──────→ Cancelled
type Session struct {
	state    State
	dockable *dock.Dockable
	source   dock.Space
	target   Destination
	side     dock.Side
	event    DropEvent
	outcome  Outcome
	started  time.Time
	reason   string
}

// State returns the gesture's current state.
func (s Session) State() State { return s.state }

// Dockable returns the dragged dockable, or nil when idle.
func (s Session) Dockable() *dock.Dockable { return s.dockable }

// Source returns the space the dockable was in when the gesture started.
func (s Session) Source() dock.Space { return s.source }

// Target returns the hovered destination while hovering, or the one that
// received the drop once committed.
func (s Session) Target() Destination { return s.target }

// Side returns the hovered or dropped edge; SideNone is a tab row.
func (s Session) Side() dock.Side { return s.side }

// Event returns the drop position last hovered or dropped at.
func (s Session) Event() DropEvent { return s.event }

// Outcome returns how a committed gesture was applied, or OutcomeNone.
func (s Session) Outcome() Outcome { return s.outcome }

// Started returns when the gesture began, by the engine's clock.
func (s Session) Started() time.Time { return s.started }

// Reason says why a cancelled gesture was cancelled.
func (s Session) Reason() string { return s.reason }

// Active reports whether a gesture is in progress.
func (s Session) Active() bool {
	return s.state == StateDragging || s.state == StateHovering
}

// Payload returns the wire payload of the gesture, with the outcome once
// committed.
func (s Session) Payload() Payload {
	if s.dockable == nil {
		return Payload{}
	}
	p := PayloadOf(s.dockable)
	p.Outcome = s.outcome
	return p
}

func (s Session) start(d *dock.Dockable, now time.Time) (Session, bool) {
	if s.Active() || d == nil {
		return s, false
	}
	return Session{state: StateDragging, dockable: d, source: d.Space(), started: now}, true
}

func (s Session) hover(t Destination, side dock.Side, ev DropEvent) (Session, bool) {
	if !s.Active() || t == nil {
		return s, false
	}
	s.state = StateHovering
	s.target, s.side, s.event = t, side, ev
	return s, true
}

// exit drops the hover hint but keeps the gesture alive.
func (s Session) exit() (Session, bool) {
	if s.state != StateHovering {
		return s, false
	}
	s.state = StateDragging
	s.target, s.side, s.event = nil, dock.SideNone, DropEvent{}
	return s, true
}

func (s Session) commit(t Destination, side dock.Side, ev DropEvent, o Outcome) (Session, bool) {
	if !s.Active() || !o.valid() {
		return s, false
	}
	s.state = StateCommitted
	s.target, s.side, s.event, s.outcome = t, side, ev, o
	return s, true
}

func (s Session) cancel(reason string) (Session, bool) {
	if !s.Active() {
		return s, false
	}
	s.state = StateCancelled
	s.target, s.side, s.event = nil, dock.SideNone, DropEvent{}
	s.reason = reason
	return s, true
}
