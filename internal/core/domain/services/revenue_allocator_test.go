package services_test

import (
	"testing"

	"efood/internal/core/domain/model/kernel"
	"efood/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromFloat(amount)
	require.NoError(t, err)
	return m
}

func TestRevenueAllocatorComputeSplit(t *testing.T) {
	allocator := services.NewRevenueAllocator()

	t.Run("should split 95/5 on the subtotal and pass the fee through", func(t *testing.T) {
		split, err := allocator.ComputeSplit(money(t, 4000.00), money(t, 500.00))

		require.NoError(t, err)
		assert.Equal(t, "3800.00", split.RestaurantAmount().String())
		assert.Equal(t, "200.00", split.PlatformFee().String())
		assert.Equal(t, "500.00", split.DeliveryAmount().String())
	})

	t.Run("should round the platform fee half-up", func(t *testing.T) {
		// 10.10 * 0.05 = 0.505 -> 0.51
		split, err := allocator.ComputeSplit(money(t, 10.10), money(t, 1.00))

		require.NoError(t, err)
		assert.Equal(t, "0.51", split.PlatformFee().String())
		assert.Equal(t, "9.59", split.RestaurantAmount().String())
	})

	t.Run("should reconcile exactly against the subtotal", func(t *testing.T) {
		subtotals := []float64{0.01, 0.99, 10.10, 33.33, 4000.00, 123456.78}

		for _, amount := range subtotals {
			subtotal := money(t, amount)
			split, err := allocator.ComputeSplit(subtotal, money(t, 2.50))

			require.NoError(t, err)
			sum := split.RestaurantAmount().Add(split.PlatformFee())
			assert.True(t, sum.IsEqual(subtotal), "subtotal %.2f: %s + %s != %s",
				amount, split.RestaurantAmount(), split.PlatformFee(), subtotal)
			require.NoError(t, split.Reconcile(subtotal, money(t, 2.50)))
		}
	})

	t.Run("should handle zero amounts", func(t *testing.T) {
		split, err := allocator.ComputeSplit(kernel.ZeroMoney(), kernel.ZeroMoney())

		require.NoError(t, err)
		assert.True(t, split.RestaurantAmount().IsZero())
		assert.True(t, split.PlatformFee().IsZero())
		assert.True(t, split.DeliveryAmount().IsZero())
	})

	t.Run("should honor a custom rate", func(t *testing.T) {
		custom := services.NewRevenueAllocatorWithRate(decimal.NewFromFloat(0.10))

		split, err := custom.ComputeSplit(money(t, 100.00), money(t, 5.00))

		require.NoError(t, err)
		assert.Equal(t, "10.00", split.PlatformFee().String())
		assert.Equal(t, "90.00", split.RestaurantAmount().String())
	})
}
