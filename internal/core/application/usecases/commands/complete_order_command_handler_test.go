package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docdispatch/internal/core/application/usecases/commands"
	"docdispatch/internal/core/domain/model/delegate"
	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/core/domain/model/order"
)

// deliveredOrder walks a fresh order through the full lifecycle up to Delivered.
func deliveredOrder(t *testing.T, assignedDelegate *delegate.Delegate) *order.Order {
	t.Helper()

	ord := fixtureNewOrder(t)
	require.NoError(t, ord.Assign(assignedDelegate.ID()))
	require.NoError(t, ord.StartProcessing(assignedDelegate.ID()))

	info, err := order.NewDeliveryInfo("Amina", "", "12 Rue des Orangers", "4321")
	require.NoError(t, err)
	require.NoError(t, ord.SetDeliveryInfo(info))
	require.NoError(t, ord.MarkReady(assignedDelegate.ID()))

	proof, err := order.NewShipmentProof("CTM", "TRK-99", "")
	require.NoError(t, err)
	courierID := kernel.NewUUID()
	require.NoError(t, ord.AssignCourier(courierID))
	require.NoError(t, ord.Ship(assignedDelegate.ID(), proof))
	require.NoError(t, ord.ConfirmDelivery(courierID, "4321"))

	return ord
}

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	assignedDelegate := fixtureDelegate(t)
	ord := deliveredOrder(t, assignedDelegate)

	cmd, err := commands.NewCompleteOrderCommand(ord.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	delegateRepo := new(MockDelegateRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DelegateRepository").Return(delegateRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		delegateRepo.On("Get", ctx, assignedDelegate.ID()).Return(assignedDelegate, nil).Once(),
		orderRepo.On("Update", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.StatusCompleted
		})).Return(nil).Once(),
		delegateRepo.On("Update", ctx, mock.AnythingOfType("*delegate.Delegate")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusCompleted, ord.Status())
	assert.Equal(t, 1, assignedDelegate.CompletedOrders())
	// 1500*2 + roundHalfUp(2000/2) + 1000 from the fixture billing.
	assert.Equal(t, int64(5000), assignedDelegate.Earnings())
	orderRepo.AssertExpectations(t)
	delegateRepo.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_AlreadyCompleted(t *testing.T) {
	ctx := t.Context()

	assignedDelegate := fixtureDelegate(t)
	ord := deliveredOrder(t, assignedDelegate)
	require.NoError(t, ord.Complete())

	cmd, err := commands.NewCompleteOrderCommand(ord.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	delegateRepo := new(MockDelegateRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DelegateRepository").Return(delegateRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, assignedDelegate.CompletedOrders(), "no double crediting")
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	delegateRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCompleteOrderCommandHandler_Handle_NotDelivered(t *testing.T) {
	ctx := t.Context()

	ord := fixtureNewOrder(t)

	cmd, err := commands.NewCompleteOrderCommand(ord.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	delegateRepo := new(MockDelegateRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DelegateRepository").Return(delegateRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.Equal(t, order.StatusNew, ord.Status())
}
