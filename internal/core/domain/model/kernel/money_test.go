package kernel_test

import (
	"testing"

	"efood/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from positive decimal", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromFloat(4000.00))

		require.NoError(t, err)
		assert.Equal(t, "4000.00", m.String())
	})

	t.Run("should round to two decimal places half-up", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromFloat(10.005))

		require.NoError(t, err)
		assert.Equal(t, "10.01", m.String())
	})

	t.Run("should fail on negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromFloat(-0.01))

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrMoneyIsNegative)
	})

	t.Run("zero value is a valid zero amount", func(t *testing.T) {
		var m kernel.Money

		require.NoError(t, m.Validate())
		assert.True(t, m.IsZero())
		assert.Equal(t, "0.00", m.String())
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("should parse persisted numeric representation", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("3800.00")

		require.NoError(t, err)
		assert.Equal(t, 3800.00, m.Float64())
	})

	t.Run("should fail on malformed string", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("not-a-number")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "money amount")
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	subtotal, _ := kernel.NewMoneyFromFloat(4000.00)
	fee, _ := kernel.NewMoneyFromFloat(500.00)

	t.Run("Add", func(t *testing.T) {
		total := subtotal.Add(fee)
		assert.Equal(t, "4500.00", total.String())
	})

	t.Run("Sub", func(t *testing.T) {
		rest, err := subtotal.Sub(fee)
		require.NoError(t, err)
		assert.Equal(t, "3500.00", rest.String())
	})

	t.Run("Sub fails when result would be negative", func(t *testing.T) {
		_, err := fee.Sub(subtotal)
		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrMoneyIsNegative)
	})

	t.Run("MulRate rounds half-up", func(t *testing.T) {
		m, _ := kernel.NewMoneyFromFloat(10.10)
		// 10.10 * 0.05 = 0.505 -> 0.51
		got := m.MulRate(decimal.NewFromFloat(0.05))
		assert.Equal(t, "0.51", got.String())
	})
}

func TestMoney_Comparisons(t *testing.T) {
	t.Run("IsEqual is exact", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromFloat(100.00)
		b, _ := kernel.NewMoneyFromFloat(100.00)
		c, _ := kernel.NewMoneyFromFloat(100.01)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})

	t.Run("EqualsApprox tolerates one cent", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromFloat(100.00)
		b, _ := kernel.NewMoneyFromFloat(100.01)
		c, _ := kernel.NewMoneyFromFloat(100.02)

		assert.True(t, a.EqualsApprox(b))
		assert.False(t, a.EqualsApprox(c))
	})
}
