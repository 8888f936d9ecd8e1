package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docdispatch/internal/core/application/usecases/commands"
	"docdispatch/internal/core/domain/model/order"
	"docdispatch/internal/core/ports"
)

func TestMarkReadyCommandHandler_Handle_MissingDeliveryInfo(t *testing.T) {
	ctx := t.Context()

	assignedDelegate := fixtureDelegate(t)
	ord := fixtureNewOrder(t)
	require.NoError(t, ord.Assign(assignedDelegate.ID()))
	require.NoError(t, ord.StartProcessing(assignedDelegate.ID()))

	cmd, err := commands.NewMarkReadyCommand(ord.ID(), assignedDelegate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkReadyCommandHandler(factory, notifier, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrMissingDeliveryInfo)
	assert.Equal(t, order.StatusInProgress, ord.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestMarkReadyCommandHandler_Handle_SucceedsAfterInfoProvided(t *testing.T) {
	ctx := t.Context()

	assignedDelegate := fixtureDelegate(t)
	ord := fixtureNewOrder(t)
	require.NoError(t, ord.Assign(assignedDelegate.ID()))
	require.NoError(t, ord.StartProcessing(assignedDelegate.ID()))

	info, err := order.NewDeliveryInfo("Amina", "", "12 Rue des Orangers", "4321")
	require.NoError(t, err)
	require.NoError(t, ord.SetDeliveryInfo(info))

	cmd, err := commands.NewMarkReadyCommand(ord.ID(), assignedDelegate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Notify", ctx, mock.MatchedBy(func(n ports.Notification) bool {
			return n.Event == ports.EventDocumentReady
		})).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkReadyCommandHandler(factory, notifier, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusReady, ord.Status())
	notifier.AssertExpectations(t)
}

func TestMarkReadyCommandHandler_Handle_WrongActor(t *testing.T) {
	ctx := t.Context()

	assignedDelegate := fixtureDelegate(t)
	stranger := fixtureDelegate(t)
	ord := fixtureNewOrder(t)
	require.NoError(t, ord.Assign(assignedDelegate.ID()))
	require.NoError(t, ord.StartProcessing(assignedDelegate.ID()))

	info, err := order.NewDeliveryInfo("Amina", "", "12 Rue des Orangers", "4321")
	require.NoError(t, err)
	require.NoError(t, ord.SetDeliveryInfo(info))

	cmd, err := commands.NewMarkReadyCommand(ord.ID(), stranger.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkReadyCommandHandler(factory, new(MockNotifier), discardLogger())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrUnauthorizedActor)
	assert.Equal(t, order.StatusInProgress, ord.Status())
}
