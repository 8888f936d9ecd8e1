package commands_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docdispatch/internal/core/application/usecases/commands"
	"docdispatch/internal/core/domain/model/delegate"
	"docdispatch/internal/core/ports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAssignDelegateCommandHandler_Handle_Assigned(t *testing.T) {
	ctx := t.Context()

	testOrder := fixtureNewOrder(t)
	testDelegate := fixtureDelegate(t)

	cmd, err := commands.NewAssignDelegateCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	delegateRepo := new(MockDelegateRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DelegateRepository").Return(delegateRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		delegateRepo.On("FindByTerritory", ctx, testOrder.City(), testOrder.Service()).
			Return([]*delegate.Delegate{testDelegate}, nil).Once(),
		orderRepo.On("AssignDelegate", ctx, testOrder.ID(), testDelegate.ID()).
			Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Notify", ctx, mock.MatchedBy(func(n ports.Notification) bool {
			return n.Event == ports.EventDelegateAssigned
		})).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDelegateCommandHandler(factory, notifier, discardLogger())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.DispatchAssigned, result.Outcome)
	require.NotNil(t, result.DelegateID)
	assert.Equal(t, testDelegate.ID(), *result.DelegateID)
	orderRepo.AssertExpectations(t)
	delegateRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestAssignDelegateCommandHandler_Handle_AlreadyAssigned(t *testing.T) {
	ctx := t.Context()

	testOrder := fixtureNewOrder(t)
	existingDelegate := fixtureDelegate(t)
	require.NoError(t, testOrder.Assign(existingDelegate.ID()))

	cmd, err := commands.NewAssignDelegateCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	delegateRepo := new(MockDelegateRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DelegateRepository").Return(delegateRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDelegateCommandHandler(factory, notifier, discardLogger())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.DispatchAlreadyAssigned, result.Outcome)
	require.NotNil(t, result.DelegateID)
	assert.Equal(t, existingDelegate.ID(), *result.DelegateID)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "AssignDelegate", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssignDelegateCommandHandler_Handle_LostGuardedWrite(t *testing.T) {
	ctx := t.Context()

	testOrder := fixtureNewOrder(t)
	testDelegate := fixtureDelegate(t)

	// The re-read after the failed guard sees the concurrent winner.
	winner := fixtureDelegate(t)
	rereadOrder := fixtureNewOrder(t)
	require.NoError(t, rereadOrder.Assign(winner.ID()))

	cmd, err := commands.NewAssignDelegateCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	delegateRepo := new(MockDelegateRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DelegateRepository").Return(delegateRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		delegateRepo.On("FindByTerritory", ctx, testOrder.City(), testOrder.Service()).
			Return([]*delegate.Delegate{testDelegate}, nil).Once(),
		orderRepo.On("AssignDelegate", ctx, testOrder.ID(), testDelegate.ID()).
			Return(false, nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(rereadOrder, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDelegateCommandHandler(factory, notifier, discardLogger())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.DispatchAlreadyAssigned, result.Outcome)
	require.NotNil(t, result.DelegateID)
	assert.Equal(t, winner.ID(), *result.DelegateID)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestAssignDelegateCommandHandler_Handle_NoDelegateAvailable(t *testing.T) {
	ctx := t.Context()

	testOrder := fixtureNewOrder(t)

	cmd, err := commands.NewAssignDelegateCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	delegateRepo := new(MockDelegateRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DelegateRepository").Return(delegateRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		delegateRepo.On("FindByTerritory", ctx, testOrder.City(), testOrder.Service()).
			Return([]*delegate.Delegate{}, nil).Once(),
		notifier.On("Notify", ctx, mock.MatchedBy(func(n ports.Notification) bool {
			return n.Event == ports.EventDispatchFailed && n.OrderID.IsEqual(testOrder.ID())
		})).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDelegateCommandHandler(factory, notifier, discardLogger())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.DispatchNoDelegateAvailable, result.Outcome)
	assert.Nil(t, result.DelegateID)
	notifier.AssertNumberOfCalls(t, "Notify", 1)
	orderRepo.AssertNotCalled(t, "AssignDelegate", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssignDelegateCommandHandler_Handle_SkipsUnavailableDelegate(t *testing.T) {
	ctx := t.Context()

	testOrder := fixtureNewOrder(t)
	offDuty := fixtureDelegate(t)
	offDuty.SetAvailable(false)

	cmd, err := commands.NewAssignDelegateCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	delegateRepo := new(MockDelegateRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DelegateRepository").Return(delegateRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		delegateRepo.On("FindByTerritory", ctx, testOrder.City(), testOrder.Service()).
			Return([]*delegate.Delegate{offDuty}, nil).Once(),
		notifier.On("Notify", ctx, mock.Anything).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDelegateCommandHandler(factory, notifier, discardLogger())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.DispatchNoDelegateAvailable, result.Outcome)
}

func TestAssignDelegateCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignDelegateCommand{} // not constructed properly

	factory := new(MockDispatchUoWFactory)
	handler := commands.NewAssignDelegateCommandHandler(factory, new(MockNotifier), discardLogger())
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAssignDelegateCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
