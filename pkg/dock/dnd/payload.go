package dnd

import (
	"strconv"
	"strings"

	"github.com/matzehuels/dockyard/pkg/dock"
	"github.com/matzehuels/dockyard/pkg/errors"
)

// Prefix marks a platform drag payload as one of ours.
const Prefix = "dockyard"

// Outcome is how a committed gesture ended. It is appended to the wire
// payload only after the commit.
type Outcome string

const (
	// OutcomeNone means the gesture is in progress or was cancelled.
	OutcomeNone Outcome = ""
	// OutcomeHeader is a drop into a tab row: a merge or reorder.
	OutcomeHeader Outcome = "HEADER"
	// OutcomeRegion is a drop against an edge that split the target.
	OutcomeRegion Outcome = "REGION"
	// OutcomeExternal is a release outside every drop surface that tore the
	// dockable out into a new window.
	OutcomeExternal Outcome = "EXTERNAL"
)

func (o Outcome) valid() bool {
	switch o {
	case OutcomeHeader, OutcomeRegion, OutcomeExternal:
		return true
	}
	return false
}

// Payload is the data carried by a platform drag-and-drop gesture. It is
// all a drop surface in another window gets to see of the gesture.
//
// The wire form is "dockyard:<group>:<id>[:<outcome>]".
type Payload struct {
	Group   int
	ID      dock.ID
	Outcome Outcome
}

// PayloadOf returns the in-progress payload for dragging d.
func PayloadOf(d *dock.Dockable) Payload {
	return Payload{Group: d.DragGroup(), ID: d.ID()}
}

func (p Payload) String() string {
	s := Prefix + ":" + strconv.Itoa(p.Group) + ":" + string(p.ID)
	if p.Outcome != OutcomeNone {
		s += ":" + string(p.Outcome)
	}
	return s
}

// WithOutcome returns a copy of p carrying o.
func (p Payload) WithOutcome(o Outcome) Payload {
	p.Outcome = o
	return p
}

// ParsePayload decodes the wire form. Anything that is not a payload of ours
// is reported as ErrCodeInvalidPayload; callers treat that as "not a drag we
// understand" and ignore the gesture.
func ParsePayload(raw string) (Payload, error) {
	parts := strings.Split(raw, ":")
	if parts[0] != Prefix {
		return Payload{}, errors.New(errors.ErrCodeInvalidPayload, "unknown drag payload prefix %q", parts[0])
	}
	fields := parts[1:]
	if len(fields) < 2 || len(fields) > 3 {
		return Payload{}, errors.New(errors.ErrCodeInvalidPayload, "drag payload %q has %d fields", raw, len(fields))
	}
	group, err := strconv.Atoi(fields[0])
	if err != nil {
		return Payload{}, errors.Wrap(errors.ErrCodeInvalidPayload, err, "drag group %q", fields[0])
	}
	if fields[1] == "" {
		return Payload{}, errors.New(errors.ErrCodeInvalidPayload, "drag payload %q has an empty id", raw)
	}
	p := Payload{Group: group, ID: dock.ID(fields[1])}
	if len(fields) == 3 {
		p.Outcome = Outcome(fields[2])
		if !p.Outcome.valid() {
			return Payload{}, errors.New(errors.ErrCodeInvalidPayload, "unknown drop outcome %q", fields[2])
		}
	}
	return p, nil
}
