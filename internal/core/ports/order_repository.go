// Package ports defines the contracts between the application core and
// infrastructure adapters, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"efood/internal/core/domain/model/kernel"
	"efood/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// The contested lifecycle points are settled here, at the storage layer,
// with conditional updates rather than in-memory checks:
//   - AssignDriver is the marketplace compare-and-swap
//   - UpdateGuarded settles concurrent approve/reject/advance races
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate
	// unconditionally. Use UpdateGuarded for transitions that can race.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateGuarded persists the aggregate only if the stored row still
	// holds the expected status and delivery status. When another writer
	// got there first the update matches zero rows and UpdateGuarded
	// returns AlreadyProcessedError, leaving the row untouched.
	UpdateGuarded(
		ctx context.Context,
		aggregate *order.Order,
		expected order.Status,
		expectedDelivery order.DeliveryStatus,
	) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// AssignDriver atomically claims a marketplace order for a driver with
	// a single conditional update: the row is claimed only if it still has
	// no driver, is in delivering status and waiting delivery status. At
	// most one concurrent caller succeeds; every other caller gets
	// AlreadyAssignedError, or ObjectNotFoundError if the order does not
	// exist at all.
	AssignDriver(ctx context.Context, orderID, driverID kernel.UUID, acceptedAt time.Time) error

	// GetWaitingSince retrieves marketplace orders that have been waiting
	// for a driver since before the cutoff and have not been escalated
	// yet, ordered oldest first. Used by the stale-order escalation job.
	GetWaitingSince(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
