package commands_test

import (
	"errors"
	"testing"
	"time"

	"orderlifecycle/internal/core/application/usecases/commands"
	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewArchiveSettledOrdersCommand(t *testing.T) {
	_, err := commands.NewArchiveSettledOrdersCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	cmd, err := commands.NewArchiveSettledOrdersCommand(time.Hour)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cmd.Retention())
}

func TestArchiveSettledOrdersCommandHandler_Handle(t *testing.T) {
	retention := 24 * time.Hour
	cmd, err := commands.NewArchiveSettledOrdersCommand(retention)
	require.NoError(t, err)

	cutoffIsRetentionAgo := mock.MatchedBy(func(cutoff time.Time) bool {
		expected := time.Now().UTC().Add(-retention)
		return cutoff.Sub(expected).Abs() < time.Minute
	})

	t.Run("should archive orders, entries and mappings together", func(t *testing.T) {
		ctx := t.Context()
		ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

		orderRepo := new(MockOrderRepository)
		auditRepo := new(MockAuditRepository)
		mappingRepo := new(MockDeliveryMappingRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("ArchiveSettledBefore", ctx, cutoffIsRetentionAgo).Return(ids, nil).Once(),
			uow.On("AuditRepository").Return(auditRepo).Once(),
			auditRepo.On("ArchiveByOrders", ctx, ids).Return(int64(7), nil).Once(),
			uow.On("DeliveryMappingRepository").Return(mappingRepo).Once(),
			mappingRepo.On("ArchiveByOrders", ctx, ids).Return(int64(1), nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewArchiveSettledOrdersCommandHandler(factory)
		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, commands.ArchiveSettledOrdersResult{Orders: 2, Entries: 7, Mappings: 1}, result)
		uow.AssertExpectations(t)
	})

	t.Run("should stop early when nothing is settled", func(t *testing.T) {
		ctx := t.Context()

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		orderRepo.On("ArchiveSettledBefore", ctx, mock.Anything).Return([]kernel.UUID{}, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewArchiveSettledOrdersCommandHandler(factory)
		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Zero(t, result)
		uow.AssertNotCalled(t, "AuditRepository")
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should roll back when audit archiving fails", func(t *testing.T) {
		ctx := t.Context()
		ids := []kernel.UUID{kernel.NewUUID()}

		orderRepo := new(MockOrderRepository)
		auditRepo := new(MockAuditRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		orderRepo.On("ArchiveSettledBefore", ctx, mock.Anything).Return(ids, nil).Once()
		uow.On("AuditRepository").Return(auditRepo).Once()
		auditRepo.On("ArchiveByOrders", ctx, ids).Return(int64(0), errors.New("boom")).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewArchiveSettledOrdersCommandHandler(factory)
		_, err := h.Handle(ctx, cmd)

		require.Error(t, err)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
		uow.AssertExpectations(t)
	})
}
