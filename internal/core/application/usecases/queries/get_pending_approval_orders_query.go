package queries

import (
	"errors"
	"time"

	"efood/internal/core/domain/model/kernel"
	"efood/internal/pkg/guard"
)

var ErrGetPendingApprovalOrdersQueryIsNotConstructed = errors.New(
	"GetPendingApprovalOrdersQuery must be created via NewGetPendingApprovalOrdersQuery constructor",
)

// GetPendingApprovalOrdersQuery retrieves the admin console worklist:
// pay-on-delivery orders waiting behind the approval gate, oldest first.
type GetPendingApprovalOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingApprovalOrdersQuery creates a query for the approval worklist.
func NewGetPendingApprovalOrdersQuery() GetPendingApprovalOrdersQuery {
	return GetPendingApprovalOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingApprovalOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingApprovalOrdersQueryIsNotConstructed)
}

// GetPendingApprovalOrdersQueryResponse is one approval worklist entry.
type GetPendingApprovalOrdersQueryResponse struct {
	ID           kernel.UUID
	CustomerID   *kernel.UUID
	RestaurantID kernel.UUID
	Street       string
	Municipality string
	Total        kernel.Money
	CreatedAt    time.Time
}
