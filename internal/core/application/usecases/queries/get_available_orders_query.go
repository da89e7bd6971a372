// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the aggregate layer and read projection rows with
// raw SQL for efficiency.
package queries

import (
	"errors"
	"time"

	"efood/internal/core/domain/model/kernel"
	"efood/internal/pkg/guard"
)

var ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
	"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
)

// GetAvailableOrdersQuery retrieves the delivery marketplace pool: orders
// ready for delivery that no driver has claimed yet, oldest first.
//
// Example:
//
//	query := NewGetAvailableOrdersQuery()
//	handler := NewGetAvailableOrdersQueryHandler(db)
//
//	pool, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load marketplace pool: %w", err)
//	}
type GetAvailableOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a query for the marketplace pool.
func NewGetAvailableOrdersQuery() GetAvailableOrdersQuery {
	return GetAvailableOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// GetAvailableOrdersQueryResponse is one marketplace pool entry, carrying
// what a driver needs to decide whether to accept: destination, payout and
// how long the order has been waiting.
type GetAvailableOrdersQueryResponse struct {
	ID             kernel.UUID
	RestaurantID   kernel.UUID
	Street         string
	Municipality   string
	DeliveryAmount kernel.Money
	Total          kernel.Money
	CreatedAt      time.Time
	EscalatedAt    *time.Time
}
