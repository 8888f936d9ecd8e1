package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docdispatch/internal/core/application/usecases/commands"
	"docdispatch/internal/core/domain/model/invoice"
)

func TestExpireInvoicesCommandHandler_Handle_ExpiresPendingInvoices(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Now().UTC().Add(-30 * time.Minute)

	first := fixtureInvoice(t)
	second := fixtureInvoice(t)

	cmd, err := commands.NewExpireInvoicesCommand(cutoff)
	require.NoError(t, err)

	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("GetAllExpiredPending", ctx, cutoff).
			Return([]*invoice.Invoice{first, second}, nil).Once(),
		invoiceRepo.On("Update", ctx, first).Return(nil).Once(),
		invoiceRepo.On("Update", ctx, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewExpireInvoicesCommandHandler(factory, discardLogger())
	expired, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, expired)
	assert.Equal(t, invoice.StatusExpired, first.Status())
	assert.Equal(t, invoice.StatusExpired, second.Status())
	invoiceRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestExpireInvoicesCommandHandler_Handle_SkipsNonPendingInvoice(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Now().UTC().Add(-30 * time.Minute)

	alreadyPaid := fixtureInvoice(t)
	require.NoError(t, alreadyPaid.MarkPaid(fixtureNewOrder(t).ID()))
	stillPending := fixtureInvoice(t)

	cmd, err := commands.NewExpireInvoicesCommand(cutoff)
	require.NoError(t, err)

	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("GetAllExpiredPending", ctx, cutoff).
			Return([]*invoice.Invoice{alreadyPaid, stillPending}, nil).Once(),
		invoiceRepo.On("Update", ctx, stillPending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewExpireInvoicesCommandHandler(factory, discardLogger())
	expired, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, expired)
	assert.Equal(t, invoice.StatusPaid, alreadyPaid.Status())
	invoiceRepo.AssertNotCalled(t, "Update", mock.Anything, alreadyPaid)
	uow.AssertExpectations(t)
}

func TestExpireInvoicesCommand_RejectsZeroCutoff(t *testing.T) {
	_, err := commands.NewExpireInvoicesCommand(time.Time{})
	require.Error(t, err)
}
