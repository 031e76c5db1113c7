package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"orderlifecycle/internal/core/domain/model/delivery"
	"orderlifecycle/internal/pkg/errs"
)

// AssignDeliveryAgentCommandHandler attaches an agent to a READY order, or replaces the
// agent already attached. Order status is not changed; the agent moves it on with PICK_UP.
//
// Example:
//
//	cmd, _ := NewAssignDeliveryAgentCommand(orderID, 9)
//	mapping, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrStateIsInvalid) {
//	    // order is not READY
//	}
type AssignDeliveryAgentCommandHandler struct {
	uowFactory AssignmentUoWFactory
	logger     *slog.Logger
}

func NewAssignDeliveryAgentCommandHandler(
	uowFactory AssignmentUoWFactory,
	logger *slog.Logger,
) AssignDeliveryAgentCommandHandler {
	return AssignDeliveryAgentCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "assign_delivery_agent"),
	}
}

// Handle looks the mapping up by order: an existing one is rewritten in place,
// otherwise a new one is created. Both happen in one transaction.
func (h *AssignDeliveryAgentCommandHandler) Handle(
	ctx context.Context,
	cmd AssignDeliveryAgentCommand,
) (*delivery.Mapping, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.ValidateAssignable(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	mappingRepo := uow.DeliveryMappingRepository()
	mapping, err := mappingRepo.GetByOrder(ctx, o.ID())
	switch {
	case err == nil:
		previousAgent := mapping.DeliveryAgentID()
		if err = mapping.ReassignTo(cmd.DeliveryAgentID(), now); err != nil {
			return nil, err
		}
		if err = mappingRepo.Update(ctx, mapping); err != nil {
			return nil, err
		}
		h.logger.InfoContext(ctx, "Delivery agent reassigned",
			"order_id", o.ID().String(),
			"previous_agent_id", previousAgent,
			"agent_id", cmd.DeliveryAgentID(),
		)
	case errors.Is(err, errs.ErrObjectNotFound):
		mapping, err = delivery.NewMapping(o.ID(), cmd.DeliveryAgentID(), now)
		if err != nil {
			return nil, err
		}
		if err = mappingRepo.Add(ctx, mapping); err != nil {
			return nil, err
		}
		h.logger.InfoContext(ctx, "Delivery agent assigned",
			"order_id", o.ID().String(),
			"agent_id", cmd.DeliveryAgentID(),
		)
	default:
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return mapping, nil
}
