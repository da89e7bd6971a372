package ports

import (
	"context"

	"efood/internal/core/domain/model/kernel"
)

// RestaurantRepository is the read-only contract against the restaurant
// reference data. Restaurant aggregates are owned by another service; order
// placement only needs to know that the referenced restaurant resolves.
type RestaurantRepository interface {
	// Exists reports whether a restaurant with the given id is registered.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
