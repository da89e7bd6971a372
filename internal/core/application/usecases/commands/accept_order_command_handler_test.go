package commands_test

import (
	"testing"

	"efood/internal/core/application/usecases/commands"
	"efood/internal/core/domain/model/driver"
	"efood/internal/core/domain/model/kernel"
	"efood/internal/core/domain/model/order"
	"efood/internal/core/ports"
	"efood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	claimant := testOnlineDriver(t)
	driverID := claimant.ID()
	claimed := testOrderAt(t, order.StatusDelivering, order.DeliveryStatusAccepted, &driverID)
	cmd, err := commands.NewAcceptOrderCommand(claimed.ID(), driverID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	outboxRepo := new(MockOutboxRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("AssignDriver", mock.Anything, claimed.ID(), driverID, mock.AnythingOfType("time.Time")).
			Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", mock.Anything, driverID).Return(claimant, nil).Once(),
		driverRepo.On("Update", mock.Anything, claimant).Return(nil).Once(),
		orderRepo.On("Get", mock.Anything, claimed.ID()).Return(claimed, nil).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		outboxRepo.On("Add", mock.Anything, mock.MatchedBy(func(messages []ports.OutboxMessage) bool {
			return len(messages) == 1 && messages[0].EventType == order.EventOrderAssigned
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMarketplaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, claimant.ActiveOrderID())
	assert.True(t, claimant.ActiveOrderID().IsEqual(claimed.ID()))
	assert.Equal(t, 1, claimant.TotalDeliveries())
	orderRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	outboxRepo.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_LosesRace(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	cmd, err := commands.NewAcceptOrderCommand(orderID, driverID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("AssignDriver", mock.Anything, orderID, driverID, mock.AnythingOfType("time.Time")).
			Return(errs.NewAlreadyAssignedError("order", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMarketplaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAlreadyAssigned)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertNotCalled(t, "DriverRepository")
}

func TestAcceptOrderCommandHandler_Handle_BusyDriverRollsBackClaim(t *testing.T) {
	ctx := t.Context()
	carrying := kernel.NewUUID()
	busy, err := driver.RestoreDriver(
		kernel.NewUUID(), "Yusniel", driver.VehicleMotorcycle, true, 10, 1, &carrying, 2,
	)
	require.NoError(t, err)

	orderID := kernel.NewUUID()
	cmd, err := commands.NewAcceptOrderCommand(orderID, busy.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("AssignDriver", mock.Anything, orderID, busy.ID(), mock.AnythingOfType("time.Time")).
			Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", mock.Anything, busy.ID()).Return(busy, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMarketplaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, driver.ErrDriverIsBusy)
	uow.AssertNotCalled(t, "Commit", ctx)
	driverRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestIgnoreOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	skipper := testOnlineDriver(t)
	cmd, err := commands.NewIgnoreOrderCommand(skipper.ID())
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", mock.Anything, skipper.ID()).Return(skipper, nil).Once(),
		driverRepo.On("Update", mock.Anything, skipper).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewIgnoreOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, -1, skipper.Score())
	// The skip is global: no order is read or written, the pool is unchanged.
	uow.AssertNotCalled(t, "OrderRepository")
	driverRepo.AssertExpectations(t)
}

func TestIgnoreOrderCommandHandler_Handle_DriverNotFound(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	cmd, err := commands.NewIgnoreOrderCommand(driverID)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", mock.Anything, driverID).
			Return(nil, errs.NewObjectNotFoundError("driver", driverID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewIgnoreOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	driverRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
