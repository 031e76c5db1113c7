package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"orderlifecycle/internal/core/domain/model/actor"
	"orderlifecycle/internal/core/domain/model/audit"
	"orderlifecycle/internal/core/domain/model/lifecycle"
	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/core/domain/services"
	"orderlifecycle/internal/core/ports"
	"orderlifecycle/internal/pkg/errs"
)

type transitionPolicy interface {
	Apply(o *order.Order, role actor.Role, eventName string, at time.Time) (services.Resolution, error)
}

// ApplyOrderEventCommandHandler is the only writer of order status and audit history.
//
// One call runs in one transaction:
//   - load the order
//   - let the transition policy accept or reject the event
//   - update the order under its version, append the audit entry, save the lifecycle context
//   - commit, then re-read the order
//
// A rejected event rolls back before anything is written. After a commit the change is
// handed to the publisher, if one is configured; publishing failures are logged only.
type ApplyOrderEventCommandHandler struct {
	uowFactory LifecycleUoWFactory
	policy     transitionPolicy
	publisher  ports.StatusPublisher
	logger     *slog.Logger
}

// NewApplyOrderEventCommandHandler wires the executor. publisher may be nil.
func NewApplyOrderEventCommandHandler(
	uowFactory LifecycleUoWFactory,
	policy transitionPolicy,
	publisher ports.StatusPublisher,
	logger *slog.Logger,
) ApplyOrderEventCommandHandler {
	return ApplyOrderEventCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		publisher:  publisher,
		logger:     logger.With("component", "apply_order_event"),
	}
}

// Handle applies the event and returns the status stored after commit.
func (h *ApplyOrderEventCommandHandler) Handle(ctx context.Context, cmd ApplyOrderEventCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Unknown, err
	}

	contextRepo := uow.LifecycleContextRepository()
	previous, err := contextRepo.Get(ctx, o.ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return order.Unknown, err
	}
	if previous != nil && !previous.AgreesWith(o) {
		h.logger.WarnContext(ctx, "Lifecycle context disagrees with order, using order status",
			"order_id", o.ID().String(),
			"context_status", previous.LastStatus().String(),
			"order_status", o.Status().String(),
		)
	}

	now := time.Now().UTC()
	res, err := h.policy.Apply(o, cmd.ActorRole(), cmd.EventName(), now)
	if err != nil {
		h.logger.InfoContext(ctx, "Order event rejected",
			"order_id", o.ID().String(),
			"event", cmd.EventName(),
			"role", cmd.ActorRole().String(),
			"status", o.Status().String(),
			"error", err,
		)
		return order.Unknown, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.Unknown, err
	}

	entry, err := audit.NewEntry(o.ID(), res.To, cmd.Remark(), cmd.ActorRole(), cmd.ActorID(), now)
	if err != nil {
		return order.Unknown, err
	}
	if err = uow.AuditRepository().Append(ctx, entry); err != nil {
		return order.Unknown, err
	}

	lc, err := lifecycle.NewContext(o.ID(), res.To, res.Event, now)
	if err != nil {
		return order.Unknown, err
	}
	if err = contextRepo.Save(ctx, lc); err != nil {
		return order.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Unknown, err
	}

	h.logger.InfoContext(ctx, "Order status changed",
		"order_id", o.ID().String(),
		"from", res.From.String(),
		"to", res.To.String(),
		"event", res.Event.String(),
		"role", cmd.ActorRole().String(),
	)

	h.publish(ctx, ports.StatusChanged{
		OrderID:   o.ID(),
		From:      res.From,
		Status:    res.To,
		Event:     res.Event,
		ActorRole: cmd.ActorRole(),
		ActorID:   cmd.ActorID(),
		ChangedAt: now,
	})

	stored, err := uow.OrderRepository().Get(ctx, o.ID())
	if err != nil {
		h.logger.WarnContext(ctx, "Failed to re-read order after commit",
			"order_id", o.ID().String(), "error", err)
		return res.To, nil
	}

	return stored.Status(), nil
}

func (h *ApplyOrderEventCommandHandler) publish(ctx context.Context, change ports.StatusChanged) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.Publish(ctx, change); err != nil {
		h.logger.ErrorContext(ctx, "Failed to publish status change",
			"order_id", change.OrderID.String(),
			"status", change.Status.String(),
			"error", err,
		)
	}
}
