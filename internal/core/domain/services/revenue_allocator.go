package services

import (
	"efood/internal/core/domain/model/kernel"
	"efood/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// DefaultPlatformFeeRate is the platform's share of the item subtotal.
// The delivery fee is never touched by the rate; it belongs to the driver
// in full.
var DefaultPlatformFeeRate = decimal.NewFromFloat(0.05)

// RevenueAllocator is a domain service that computes the three-way revenue
// split for an order, exactly once, at order creation. The resulting split
// is frozen into the order and never recomputed, so later changes to the
// rate cannot retroactively alter settled orders.
//
// Split rules:
//   - platformFee = subtotal * rate, rounded half-up to 2 decimal places
//   - restaurantAmount = subtotal - platformFee, so the two shares add up
//     to the subtotal exactly
//   - deliveryAmount = deliveryFee, in full
type RevenueAllocator struct {
	platformFeeRate decimal.Decimal
}

// NewRevenueAllocator creates an allocator with the default platform fee rate.
func NewRevenueAllocator() RevenueAllocator {
	return RevenueAllocator{platformFeeRate: DefaultPlatformFeeRate}
}

// NewRevenueAllocatorWithRate creates an allocator with a custom rate.
// Used by deployments that negotiate a non-standard commission.
func NewRevenueAllocatorWithRate(rate decimal.Decimal) RevenueAllocator {
	return RevenueAllocator{platformFeeRate: rate}
}

// PlatformFeeRate returns the rate the allocator splits with.
func (a RevenueAllocator) PlatformFeeRate() decimal.Decimal {
	return a.platformFeeRate
}

// ComputeSplit partitions an order's money between the restaurant, the
// platform and the driver. The platform fee is rounded first and the
// restaurant share is derived by subtraction, so the split always
// reconciles exactly against the subtotal.
func (a RevenueAllocator) ComputeSplit(subtotal, deliveryFee kernel.Money) (order.RevenueSplit, error) {
	platformFee := subtotal.MulRate(a.platformFeeRate)

	restaurantAmount, err := subtotal.Sub(platformFee)
	if err != nil {
		return order.RevenueSplit{}, err
	}

	return order.NewRevenueSplit(restaurantAmount, deliveryFee, platformFee), nil
}
