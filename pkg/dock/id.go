package dock

import "github.com/google/uuid"

// ID is an opaque, stable identifier carried by every dockable, space and
// layout node. IDs survive moves between spaces and windows, which is what
// lets a drag gesture find its dockable again from a serialized payload.
type ID string

// NewID returns a fresh random identifier.
func NewID() ID { return ID(uuid.NewString()) }

// String returns the identifier text.
func (id ID) String() string { return string(id) }
