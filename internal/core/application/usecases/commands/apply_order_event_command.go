package commands

import (
	"errors"
	"fmt"
	"strings"

	"orderlifecycle/internal/core/domain/model/actor"
	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/pkg/errs"
	"orderlifecycle/internal/pkg/guard"
)

var ErrApplyOrderEventCommandIsNotConstructed = errors.New(
	"ApplyOrderEventCommand must be created via NewApplyOrderEventCommand constructor",
)

// ApplyOrderEventCommand asks to move an order by submitting a named event.
// The event name is kept raw; whether it is declared is decided by the handler.
//
// Example:
//
//	cmd, err := NewApplyOrderEventCommand(orderID, actor.RestaurantOwner, "CONFIRM", 42, "accepted")
//	if err != nil {
//	    return err
//	}
//	status, err := handler.Handle(ctx, cmd)
type ApplyOrderEventCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorRole actor.Role
	eventName string
	actorID   int64
	remark    string

	guard guard.ConstructorGuard
}

func NewApplyOrderEventCommand(
	orderID kernel.UUID,
	role actor.Role,
	eventName string,
	actorID int64,
	remark string,
) (ApplyOrderEventCommand, error) {
	cmd := ApplyOrderEventCommand{
		eventName: eventName,
		remark:    strings.TrimSpace(remark),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorRole(role),
		cmd.setActorID(actorID),
	); err != nil {
		return ApplyOrderEventCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyOrderEventCommand) Validate() error {
	return c.guard.Validate(ErrApplyOrderEventCommandIsNotConstructed)
}

func (c ApplyOrderEventCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ApplyOrderEventCommand) ActorRole() actor.Role {
	return c.actorRole
}

func (c ApplyOrderEventCommand) EventName() string {
	return c.eventName
}

func (c ApplyOrderEventCommand) ActorID() int64 {
	return c.actorID
}

func (c ApplyOrderEventCommand) Remark() string {
	return c.remark
}

func (c *ApplyOrderEventCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ApplyOrderEventCommand) setActorRole(role actor.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.actorRole = role
	return nil
}

func (c *ApplyOrderEventCommand) setActorID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("actor id", fmt.Errorf("%d is not greater than 0", id))
	}

	c.actorID = id
	return nil
}
