package commands

import (
	"errors"
	"fmt"

	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/pkg/errs"
	"orderlifecycle/internal/pkg/guard"
)

var ErrAssignDeliveryAgentCommandIsNotConstructed = errors.New(
	"AssignDeliveryAgentCommand must be created via NewAssignDeliveryAgentCommand constructor",
)

// AssignDeliveryAgentCommand attaches a delivery agent to a READY order.
type AssignDeliveryAgentCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	deliveryAgentID int64

	guard guard.ConstructorGuard
}

func NewAssignDeliveryAgentCommand(orderID kernel.UUID, deliveryAgentID int64) (AssignDeliveryAgentCommand, error) {
	cmd := AssignDeliveryAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDeliveryAgentID(deliveryAgentID),
	); err != nil {
		return AssignDeliveryAgentCommand{}, err
	}

	return cmd, nil
}

func (c AssignDeliveryAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryAgentCommandIsNotConstructed)
}

func (c AssignDeliveryAgentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignDeliveryAgentCommand) DeliveryAgentID() int64 {
	return c.deliveryAgentID
}

func (c *AssignDeliveryAgentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDeliveryAgentCommand) setDeliveryAgentID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivery agent id", fmt.Errorf("%d is not greater than 0", id))
	}

	c.deliveryAgentID = id
	return nil
}
