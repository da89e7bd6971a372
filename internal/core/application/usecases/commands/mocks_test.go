package commands_test

import (
	"context"
	"testing"
	"time"

	"efood/internal/core/application/usecases/commands"
	"efood/internal/core/domain/model/driver"
	"efood/internal/core/domain/model/kernel"
	"efood/internal/core/domain/model/order"
	"efood/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateGuarded(
	ctx context.Context, aggregate *order.Order, expected order.Status, expectedDelivery order.DeliveryStatus,
) error {
	args := m.Called(ctx, aggregate, expected, expectedDelivery)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) AssignDriver(
	ctx context.Context, orderID, driverID kernel.UUID, acceptedAt time.Time,
) error {
	args := m.Called(ctx, orderID, driverID, acceptedAt)
	return args.Error(0)
}

func (m *MockOrderRepository) GetWaitingSince(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, messages []ports.OutboxMessage) error {
	args := m.Called(ctx, messages)
	return args.Error(0)
}

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, seqs []int64, publishedAt time.Time) error {
	args := m.Called(ctx, seqs, publishedAt)
	return args.Error(0)
}

// MockUoW satisfies OrderUoW, DriverUoW and MarketplaceUoW.
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

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}

type MockMarketplaceUoWFactory struct{ mock.Mock }

func (m *MockMarketplaceUoWFactory) Create() commands.MarketplaceUoW {
	args := m.Called()
	return args.Get(0).(commands.MarketplaceUoW)
}

// Aggregate builders shared by the handler tests.

func testMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromFloat(amount)
	require.NoError(t, err)
	return m
}

func testItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem("Ropa vieja", testMoney(t, 20.00), 2)
	require.NoError(t, err)
	return []order.Item{item}
}

func testAddress(t *testing.T) order.Address {
	t.Helper()
	address, err := order.NewAddress("Calle 23", "512", "", "Vedado", "La Habana", "La Habana", "")
	require.NoError(t, err)
	return address
}

func testPayment(t *testing.T, method order.PaymentMethod) order.PaymentInfo {
	t.Helper()
	payment, err := order.NewPaymentInfo(method, "", "")
	require.NoError(t, err)
	return payment
}

func testSplit(t *testing.T) order.RevenueSplit {
	t.Helper()
	return order.NewRevenueSplit(testMoney(t, 38.00), testMoney(t, 5.00), testMoney(t, 2.00))
}

func testOrderAt(
	t *testing.T, status order.Status, deliveryStatus order.DeliveryStatus, driverID *kernel.UUID,
) *order.Order {
	t.Helper()
	requiresApproval := status == order.StatusPendingAdminApproval
	method := order.PaymentMethodCard
	if requiresApproval {
		method = order.PaymentMethodDelivery
	}

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), nil, kernel.NewUUID(), driverID,
		testItems(t), testAddress(t), testPayment(t, method),
		testMoney(t, 40.00), testMoney(t, 5.00), testMoney(t, 45.00), testSplit(t),
		status, requiresApproval, deliveryStatus,
		order.Timestamps{CreatedAt: time.Now().Add(-time.Hour)}, nil, "", nil,
	)
	require.NoError(t, err)
	return aggregate
}

func testOnlineDriver(t *testing.T) *driver.Driver {
	t.Helper()
	d, err := driver.RestoreDriver(
		kernel.NewUUID(), "Yusniel", driver.VehicleMotorcycle, true, 0, 0, nil, 1,
	)
	require.NoError(t, err)
	return d
}
