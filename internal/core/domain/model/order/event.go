package order

import (
	"fmt"

	"orderlifecycle/internal/pkg/errs"
)

// Event is a named action submitted against an order.
type Event int

const (
	// UnknownEvent catches uninitialized Event values.
	UnknownEvent Event = iota
	Confirm
	StartPreparing
	MarkReady
	PickUp
	Deliver
	Cancel
)

func getEventStrings() map[Event]string {
	//nolint:exhaustive // UnknownEvent has no wire name
	return map[Event]string{
		Confirm:        "CONFIRM",
		StartPreparing: "START_PREPARING",
		MarkReady:      "MARK_READY",
		PickUp:         "PICK_UP",
		Deliver:        "DELIVER",
		Cancel:         "CANCEL",
	}
}

// Events returns every declared event.
func Events() []Event {
	return []Event{Confirm, StartPreparing, MarkReady, PickUp, Deliver, Cancel}
}

// ParseEvent maps a wire name such as "MARK_READY" to an Event. Names are case-sensitive,
// so "confirm" is rejected with an EventIsInvalidError.
func ParseEvent(s string) (Event, error) {
	for event, name := range getEventStrings() {
		if name == s {
			return event, nil
		}
	}
	return UnknownEvent, errs.NewEventIsInvalidError(s)
}

// String returns the wire name of the event.
func (e Event) String() string {
	if s, ok := getEventStrings()[e]; ok {
		return s
	}
	return fmt.Sprintf("UNKNOWN_EVENT(%d)", int(e))
}

// IsDeclared reports whether e is part of the topology's event set.
func (e Event) IsDeclared() bool {
	_, ok := getEventStrings()[e]
	return ok
}
