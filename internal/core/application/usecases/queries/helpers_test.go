package queries_test

import (
	"testing"
	"time"

	"efood/internal/core/domain/model/kernel"
	"efood/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func testMoney(t *testing.T, amount string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(amount)
	require.NoError(t, err)
	return m
}

func testItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem("Ropa vieja", testMoney(t, "15.00"), 2)
	require.NoError(t, err)
	return []order.Item{item}
}

func testAddress(t *testing.T) order.Address {
	t.Helper()
	address, err := order.NewAddress(
		"Calle Obispo", "305", "", "Habana Vieja", "Habana Vieja", "La Habana", "",
	)
	require.NoError(t, err)
	return address
}

// restoreOrderInState rebuilds an unclaimed order in the given lifecycle
// state, as persistence would hand it back.
func restoreOrderInState(
	t *testing.T,
	status order.Status,
	requiresApproval bool,
	deliveryStatus order.DeliveryStatus,
	customerID *kernel.UUID,
	createdAt time.Time,
) *order.Order {
	t.Helper()

	payment, err := order.NewPaymentInfo(order.PaymentMethodCash, "", "")
	require.NoError(t, err)
	if requiresApproval {
		payment, err = order.NewPaymentInfo(order.PaymentMethodDelivery, "", "")
		require.NoError(t, err)
	}

	restored, err := order.RestoreOrder(
		kernel.NewUUID(), customerID, kernel.NewUUID(), nil,
		testItems(t), testAddress(t), payment,
		testMoney(t, "30.00"), testMoney(t, "5.00"), testMoney(t, "35.00"),
		order.NewRevenueSplit(testMoney(t, "28.50"), testMoney(t, "5.00"), testMoney(t, "1.50")),
		status, requiresApproval, deliveryStatus,
		order.Timestamps{CreatedAt: createdAt},
		nil, "", nil,
	)
	require.NoError(t, err)
	return restored
}

// restorePoolOrder rebuilds an order sitting in the marketplace pool:
// delivering, waiting, unclaimed.
func restorePoolOrder(t *testing.T, createdAt time.Time, escalatedAt *time.Time) *order.Order {
	t.Helper()

	payment, err := order.NewPaymentInfo(order.PaymentMethodCard, "visa", "****4242")
	require.NoError(t, err)

	restored, err := order.RestoreOrder(
		kernel.NewUUID(), nil, kernel.NewUUID(), nil,
		testItems(t), testAddress(t), payment,
		testMoney(t, "30.00"), testMoney(t, "5.00"), testMoney(t, "35.00"),
		order.NewRevenueSplit(testMoney(t, "28.50"), testMoney(t, "5.00"), testMoney(t, "1.50")),
		order.StatusDelivering, false, order.DeliveryStatusWaiting,
		order.Timestamps{CreatedAt: createdAt, EscalatedAt: escalatedAt},
		nil, "", nil,
	)
	require.NoError(t, err)
	return restored
}

// restoreClaimedOrderFor rebuilds an order a specific driver has accepted.
func restoreClaimedOrderFor(t *testing.T, driverID kernel.UUID, createdAt time.Time) *order.Order {
	t.Helper()

	payment, err := order.NewPaymentInfo(order.PaymentMethodCash, "", "")
	require.NoError(t, err)

	acceptedAt := createdAt.Add(time.Minute)
	restored, err := order.RestoreOrder(
		kernel.NewUUID(), nil, kernel.NewUUID(), &driverID,
		testItems(t), testAddress(t), payment,
		testMoney(t, "30.00"), testMoney(t, "5.00"), testMoney(t, "35.00"),
		order.NewRevenueSplit(testMoney(t, "28.50"), testMoney(t, "5.00"), testMoney(t, "1.50")),
		order.StatusDelivering, false, order.DeliveryStatusAccepted,
		order.Timestamps{CreatedAt: createdAt, DeliveryAcceptedAt: &acceptedAt},
		nil, "", nil,
	)
	require.NoError(t, err)
	return restored
}

func restoreClaimedOrder(t *testing.T, createdAt time.Time) *order.Order {
	t.Helper()
	return restoreClaimedOrderFor(t, kernel.NewUUID(), createdAt)
}

// restoreCompletedOrderFor rebuilds an order a specific driver delivered.
func restoreCompletedOrderFor(t *testing.T, driverID kernel.UUID, createdAt time.Time) *order.Order {
	t.Helper()

	payment, err := order.NewPaymentInfo(order.PaymentMethodCard, "visa", "****4242")
	require.NoError(t, err)

	acceptedAt := createdAt.Add(time.Minute)
	pickedUpAt := createdAt.Add(5 * time.Minute)
	completedAt := createdAt.Add(20 * time.Minute)
	restored, err := order.RestoreOrder(
		kernel.NewUUID(), nil, kernel.NewUUID(), &driverID,
		testItems(t), testAddress(t), payment,
		testMoney(t, "30.00"), testMoney(t, "5.00"), testMoney(t, "35.00"),
		order.NewRevenueSplit(testMoney(t, "28.50"), testMoney(t, "5.00"), testMoney(t, "1.50")),
		order.StatusCompleted, false, order.DeliveryStatusDelivered,
		order.Timestamps{
			CreatedAt:           createdAt,
			DeliveryAcceptedAt:  &acceptedAt,
			DeliveryPickedUpAt:  &pickedUpAt,
			DeliveryCompletedAt: &completedAt,
		},
		nil, "", nil,
	)
	require.NoError(t, err)
	return restored
}

func restoreCompletedOrder(t *testing.T, createdAt time.Time) *order.Order {
	t.Helper()
	return restoreCompletedOrderFor(t, kernel.NewUUID(), createdAt)
}
