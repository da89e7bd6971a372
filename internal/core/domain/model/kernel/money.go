package kernel

import (
	"fmt"

	"efood/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of decimal places every monetary amount is kept at.
const moneyScale = 2

// MoneyTolerance is the maximum absolute difference under which two amounts
// are considered reconciled. Used when checking that split components add up
// to the amounts they were derived from.
var MoneyTolerance = decimal.New(1, -moneyScale) // 0.01

// ErrMoneyIsNegative indicates an attempt to construct a negative amount.
// Amounts in the order domain (prices, fees, split components) are never negative.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("money amount must not be negative")

// Money is a value object representing a non-negative monetary amount.
// It wraps shopspring/decimal to avoid binary floating point drift and keeps
// every amount rounded to 2 decimal places with a single fixed policy:
// half-up (decimal.Round rounds half away from zero, which is half-up for
// the non-negative amounts permitted here).
//
// The zero value is a valid 0.00 amount. Money is immutable; arithmetic
// methods return new values.
//
// Example usage:
//
//	subtotal, _ := kernel.NewMoneyFromFloat(4000.00)
//	fee, _ := kernel.NewMoneyFromFloat(500.00)
//	total := subtotal.Add(fee) // 4500.00
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount.
// The amount is rounded to 2 decimal places half-up.
// Returns ErrMoneyIsNegative for negative amounts.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{amount: amount.Round(moneyScale)}, nil
}

// NewMoneyFromFloat creates a Money from a float64 amount.
// This is the entry point for amounts arriving from JSON payloads.
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// NewMoneyFromString parses a Money from its decimal string representation.
// Used when reconstructing amounts from persistence, where they are stored
// as NUMERIC columns scanned into strings.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return NewMoney(d)
}

// ZeroMoney returns a 0.00 amount.
func ZeroMoney() Money {
	return Money{}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts.
// Returns ErrMoneyIsNegative if the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{amount: result}, nil
}

// MulRate multiplies the amount by a rate and rounds the result to
// 2 decimal places half-up. Used by the revenue allocator.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate).Round(moneyScale)}
}

// MulInt multiplies the amount by an integer factor. Used for order line totals.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// IsEqual reports whether two amounts are exactly equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// EqualsApprox reports whether two amounts differ by at most MoneyTolerance.
// Reconciliation checks (total vs. subtotal + fee, split vs. subtotal) use
// this instead of exact equality so independently rounded components compare
// as intended.
func (m Money) EqualsApprox(other Money) bool {
	return m.amount.Sub(other.amount).Abs().LessThanOrEqual(MoneyTolerance)
}

// IsZero reports whether the amount is 0.00.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float64. Intended for response payloads
// only; domain logic stays on the decimal representation.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String returns the amount formatted with exactly 2 decimal places.
//
// Example:
//
//	m, _ := kernel.NewMoneyFromFloat(3800)
//	fmt.Println(m) // "3800.00"
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}

// Validate reports whether the amount satisfies the Money invariants.
// The zero value is valid (0.00); only negative amounts are rejected,
// which can occur when a Money was built around the constructors.
func (m Money) Validate() error {
	if m.amount.IsNegative() {
		return fmt.Errorf("%w: %s", errs.ErrValueIsInvalid, m.amount.String())
	}
	return nil
}
