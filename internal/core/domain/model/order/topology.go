package order

import (
	"errors"
	"fmt"

	"orderlifecycle/internal/pkg/errs"
)

// Transition is one declared edge of the lifecycle: applying Event in From yields To.
type Transition struct {
	From  Status
	Event Event
	To    Status
}

type transitionKey struct {
	from  Status
	event Event
}

// Topology is the immutable set of declared transitions.
type Topology struct {
	initial     Status
	transitions []Transition
	index       map[transitionKey]Status
}

// NewTopology builds a topology and checks that every edge leaves a non-terminal state,
// moves to a strictly higher rank and is declared at most once.
func NewTopology(initial Status, transitions []Transition) (*Topology, error) {
	if err := initial.Validate(); err != nil {
		return nil, err
	}
	if initial.IsTerminal() {
		return nil, errs.NewValueIsInvalidErrorWithCause("initial status",
			fmt.Errorf("%s is terminal", initial))
	}

	t := &Topology{
		initial:     initial,
		transitions: make([]Transition, 0, len(transitions)),
		index:       make(map[transitionKey]Status, len(transitions)),
	}

	var errList []error
	for _, tr := range transitions {
		if err := t.add(tr); err != nil {
			errList = append(errList, err)
		}
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Topology) add(tr Transition) error {
	if err := errors.Join(tr.From.Validate(), tr.To.Validate()); err != nil {
		return err
	}
	if !tr.Event.IsDeclared() {
		return errs.NewEventIsInvalidError(tr.Event.String())
	}
	if tr.From.IsTerminal() {
		return errs.NewTransitionIsInvalidErrorWithCause(tr.From.String(), tr.Event.String(),
			errors.New("terminal states have no outgoing transitions"))
	}
	if !tr.From.Precedes(tr.To) {
		return errs.NewTransitionIsInvalidErrorWithCause(tr.From.String(), tr.Event.String(),
			fmt.Errorf("%s does not rank above %s", tr.To, tr.From))
	}

	key := transitionKey{from: tr.From, event: tr.Event}
	if _, exists := t.index[key]; exists {
		return errs.NewTransitionIsInvalidErrorWithCause(tr.From.String(), tr.Event.String(),
			errors.New("declared twice"))
	}

	t.index[key] = tr.To
	t.transitions = append(t.transitions, tr)
	return nil
}

var defaultTopology = mustDefaultTopology()

func mustDefaultTopology() *Topology {
	transitions := []Transition{
		{From: Placed, Event: Confirm, To: Confirmed},
		{From: Confirmed, Event: StartPreparing, To: Preparing},
		{From: Preparing, Event: MarkReady, To: Ready},
		{From: Ready, Event: PickUp, To: PickedUp},
		{From: PickedUp, Event: Deliver, To: Delivered},
	}
	for _, s := range Statuses() {
		if !s.IsTerminal() {
			transitions = append(transitions, Transition{From: s, Event: Cancel, To: Cancelled})
		}
	}

	t, err := NewTopology(InitialStatus, transitions)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultTopology returns the food order lifecycle:
// the happy path PLACED to DELIVERED plus CANCEL from every non-terminal state.
func DefaultTopology() *Topology {
	return defaultTopology
}

// Initial returns the status new orders start in.
func (t *Topology) Initial() Status {
	return t.initial
}

// Next resolves the target of applying event in from.
// Undeclared pairs, including anything applied to a terminal state, yield a TransitionIsInvalidError.
func (t *Topology) Next(from Status, event Event) (Status, error) {
	to, ok := t.index[transitionKey{from: from, event: event}]
	if !ok {
		return Unknown, errs.NewTransitionIsInvalidError(from.String(), event.String())
	}
	return to, nil
}

// Transitions returns a copy of the declared edges in declaration order.
func (t *Topology) Transitions() []Transition {
	out := make([]Transition, len(t.transitions))
	copy(out, t.transitions)
	return out
}
