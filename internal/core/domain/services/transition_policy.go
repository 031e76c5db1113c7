package services

import (
	"errors"
	"time"

	"orderlifecycle/internal/core/domain/model/actor"
	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/pkg/errs"
)

// eventAuthorizer decides whether a role may submit an event.
type eventAuthorizer interface {
	Authorize(role actor.Role, event order.Event) error
}

// Resolution is the outcome of an accepted event.
type Resolution struct {
	Event order.Event
	From  order.Status
	To    order.Status
}

// TransitionPolicy decides whether an event may move an order and where to.
//
// Checks run in a fixed order, and the first failure wins:
//   - a terminal order rejects everything (StateIsInvalidError)
//   - an undeclared event name is rejected (EventIsInvalidError)
//   - the actor must hold a grant for the event (ActionIsForbiddenError)
//   - the (status, event) pair must be declared in the topology (TransitionIsInvalidError)
//   - the target must rank above the current status (TransitionIsInvalidError)
//
// Authorization runs before the topology, so a role without a grant learns nothing
// about which transitions exist.
//
// Example usage:
//
//	policy, err := services.NewTransitionPolicy(order.DefaultTopology(), order.DefaultAuthorizationMatrix())
//	if err != nil {
//	    return err
//	}
//	res, err := policy.Apply(o, actor.RestaurantOwner, "CONFIRM", time.Now())
//	if err != nil {
//	    return err
//	}
//	// o.Status() == res.To
type TransitionPolicy struct {
	topology   *order.Topology
	authorizer eventAuthorizer
}

// NewTransitionPolicy binds a topology to an authorizer.
func NewTransitionPolicy(topology *order.Topology, authorizer eventAuthorizer) (*TransitionPolicy, error) {
	if topology == nil {
		return nil, errs.NewValueIsRequiredError("topology")
	}
	if authorizer == nil {
		return nil, errs.NewValueIsRequiredError("authorizer")
	}
	return &TransitionPolicy{
		topology:   topology,
		authorizer: authorizer,
	}, nil
}

// Resolve runs every check without touching the order.
//
// The authorizer is only asked about declared events. An undeclared name never reaches it
// and fails with EventIsInvalidError whatever the role, so a caller without any grant still
// gets InvalidEvent for a misspelled event rather than ActionIsForbiddenError.
func (p *TransitionPolicy) Resolve(o *order.Order, role actor.Role, eventName string) (Resolution, error) {
	if err := o.Validate(); err != nil {
		return Resolution{}, err
	}

	from := o.Status()
	if from.IsTerminal() {
		return Resolution{}, errs.NewStateIsInvalidError("order", from.String())
	}

	event, err := order.ParseEvent(eventName)
	if err != nil {
		return Resolution{}, err
	}

	if err = p.authorizer.Authorize(role, event); err != nil {
		return Resolution{}, err
	}

	to, err := p.topology.Next(from, event)
	if err != nil {
		return Resolution{}, err
	}

	if !from.Precedes(to) {
		return Resolution{}, errs.NewTransitionIsInvalidErrorWithCause(from.String(), event.String(),
			errors.New("transition would not advance the order"))
	}

	return Resolution{Event: event, From: from, To: to}, nil
}

// Apply resolves the event and advances the order.
func (p *TransitionPolicy) Apply(o *order.Order, role actor.Role, eventName string, at time.Time) (Resolution, error) {
	res, err := p.Resolve(o, role, eventName)
	if err != nil {
		return Resolution{}, err
	}
	if err = o.AdvanceTo(res.Event, res.To, at); err != nil {
		return Resolution{}, err
	}
	return res, nil
}
