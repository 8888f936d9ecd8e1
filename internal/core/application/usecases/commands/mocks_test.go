package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docdispatch/internal/core/application/usecases/commands"
	"docdispatch/internal/core/domain/model/delegate"
	"docdispatch/internal/core/domain/model/invoice"
	"docdispatch/internal/core/domain/model/kernel"
	"docdispatch/internal/core/domain/model/order"
	"docdispatch/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) AssignDelegate(
	ctx context.Context, orderID, delegateID kernel.UUID,
) (bool, error) {
	args := m.Called(ctx, orderID, delegateID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) GetAllUnassigned(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActiveByDelegate(
	ctx context.Context, delegateID kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, delegateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDelegateRepository struct{ mock.Mock }

func (m *MockDelegateRepository) Add(ctx context.Context, d *delegate.Delegate) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDelegateRepository) Update(ctx context.Context, d *delegate.Delegate) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDelegateRepository) Get(ctx context.Context, id kernel.UUID) (*delegate.Delegate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delegate.Delegate), args.Error(1)
}

func (m *MockDelegateRepository) GetByAccount(
	ctx context.Context, accountID kernel.UUID,
) (*delegate.Delegate, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delegate.Delegate), args.Error(1)
}

func (m *MockDelegateRepository) FindByTerritory(
	ctx context.Context, city kernel.City, service kernel.ServiceCategory,
) ([]*delegate.Delegate, error) {
	args := m.Called(ctx, city, service)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delegate.Delegate), args.Error(1)
}

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, i *invoice.Invoice) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, i *invoice.Invoice) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) GetByReference(
	ctx context.Context, reference string,
) (*invoice.Invoice, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) MarkPaid(
	ctx context.Context, invoiceID, orderID kernel.UUID, paidAt time.Time,
) (bool, error) {
	args := m.Called(ctx, invoiceID, orderID, paidAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockInvoiceRepository) GetAllExpiredPending(
	ctx context.Context, cutoff time.Time,
) ([]*invoice.Invoice, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*invoice.Invoice), args.Error(1)
}

// MockUoW satisfies every narrow unit-of-work interface the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DelegateRepository() ports.DelegateRepository {
	args := m.Called()
	return args.Get(0).(ports.DelegateRepository)
}

func (m *MockUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockInvoiceUoWFactory struct{ mock.Mock }

func (m *MockInvoiceUoWFactory) Create() commands.InvoiceUoW {
	args := m.Called()
	return args.Get(0).(commands.InvoiceUoW)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, n ports.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// Test fixtures shared by the handler tests.

func fixtureCity(t *testing.T) kernel.City {
	t.Helper()
	city, err := kernel.NewCity("Casablanca")
	require.NoError(t, err)
	return city
}

func fixtureBilling(t *testing.T) order.BillingBreakdown {
	t.Helper()
	billing, err := order.NewBillingBreakdown(
		[]order.DocumentLine{{UnitPrice: 1500, Copies: 2}}, 2000, 1000)
	require.NoError(t, err)
	return billing
}

func fixtureNewOrder(t *testing.T) *order.Order {
	t.Helper()
	ord, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "birth_certificate",
		kernel.ServiceMunicipalOffice, fixtureCity(t), 2, 7500, 0, fixtureBilling(t))
	require.NoError(t, err)
	return ord
}

func fixtureDelegate(t *testing.T) *delegate.Delegate {
	t.Helper()
	d, err := delegate.NewDelegate(
		kernel.NewUUID(), kernel.NewUUID(), "Hassan", fixtureCity(t), kernel.ServiceMunicipalOffice)
	require.NoError(t, err)
	return d
}

func fixtureInvoice(t *testing.T) *invoice.Invoice {
	t.Helper()

	payload, err := invoice.NewOrderPayload(
		"birth_certificate", kernel.ServiceMunicipalOffice, fixtureCity(t),
		2, 7500, 5000, fixtureBilling(t))
	require.NoError(t, err)

	inv, err := invoice.NewInvoice(
		kernel.NewUUID(), "INV-2024-000451", kernel.NewUUID(), 7500, payload)
	require.NoError(t, err)

	return inv
}
