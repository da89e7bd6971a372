package order

import (
	"efood/internal/core/domain/model/kernel"
	"efood/internal/pkg/errs"
)

// RevenueSplit is the three-way partition of an order's money, frozen into
// the order at creation and never recomputed afterwards:
//
//   - restaurantAmount: the restaurant's share of the item subtotal
//   - platformFee: the platform's share of the item subtotal
//   - deliveryAmount: the full delivery fee, owed to the driver
//
// Invariants (rounding-tolerant, see kernel.MoneyTolerance):
//
//	restaurantAmount + platformFee == subtotal
//	deliveryAmount == deliveryFee
type RevenueSplit struct {
	restaurantAmount kernel.Money
	deliveryAmount   kernel.Money
	platformFee      kernel.Money
}

// NewRevenueSplit creates a split from its three components.
// The components are produced by the revenue allocator; this constructor
// only carries them, reconciliation against the order's subtotal and fee
// happens in the Order constructor.
func NewRevenueSplit(restaurantAmount, deliveryAmount, platformFee kernel.Money) RevenueSplit {
	return RevenueSplit{
		restaurantAmount: restaurantAmount,
		deliveryAmount:   deliveryAmount,
		platformFee:      platformFee,
	}
}

// RestaurantAmount returns the restaurant's share of the subtotal.
func (r RevenueSplit) RestaurantAmount() kernel.Money { return r.restaurantAmount }

// DeliveryAmount returns the driver's share (the full delivery fee).
func (r RevenueSplit) DeliveryAmount() kernel.Money { return r.deliveryAmount }

// PlatformFee returns the platform's share of the subtotal.
func (r RevenueSplit) PlatformFee() kernel.Money { return r.platformFee }

// Reconcile verifies the split invariants against the amounts the split was
// derived from. Comparison is tolerant to one cent of rounding.
func (r RevenueSplit) Reconcile(subtotal, deliveryFee kernel.Money) error {
	if !r.restaurantAmount.Add(r.platformFee).EqualsApprox(subtotal) {
		return errs.NewValueIsInvalidError("revenue split does not reconcile against subtotal")
	}
	if !r.deliveryAmount.IsEqual(deliveryFee) {
		return errs.NewValueIsInvalidError("delivery amount does not equal delivery fee")
	}
	return nil
}
