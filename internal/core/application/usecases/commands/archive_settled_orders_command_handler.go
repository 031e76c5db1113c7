package commands

import (
	"context"
	"time"
)

// ArchiveSettledOrdersResult counts what one run flagged as archived.
type ArchiveSettledOrdersResult struct {
	Orders   int
	Entries  int64
	Mappings int64
}

// ArchiveSettledOrdersCommandHandler flags delivered and cancelled orders, their audit
// entries and their delivery mappings as archived. Status is never touched, so archived
// orders stay readable and keep absorbing events.
type ArchiveSettledOrdersCommandHandler struct {
	uowFactory UoWFactory
}

func NewArchiveSettledOrdersCommandHandler(uowFactory UoWFactory) ArchiveSettledOrdersCommandHandler {
	return ArchiveSettledOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ArchiveSettledOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd ArchiveSettledOrdersCommand,
) (ArchiveSettledOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return ArchiveSettledOrdersResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ArchiveSettledOrdersResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.Retention())
	orderIDs, err := uow.OrderRepository().ArchiveSettledBefore(ctx, cutoff)
	if err != nil {
		return ArchiveSettledOrdersResult{}, err
	}
	if len(orderIDs) == 0 {
		return ArchiveSettledOrdersResult{}, nil
	}

	entries, err := uow.AuditRepository().ArchiveByOrders(ctx, orderIDs)
	if err != nil {
		return ArchiveSettledOrdersResult{}, err
	}

	mappings, err := uow.DeliveryMappingRepository().ArchiveByOrders(ctx, orderIDs)
	if err != nil {
		return ArchiveSettledOrdersResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ArchiveSettledOrdersResult{}, err
	}

	return ArchiveSettledOrdersResult{
		Orders:   len(orderIDs),
		Entries:  entries,
		Mappings: mappings,
	}, nil
}
