package queries

import (
	"errors"
	"time"

	"efood/internal/core/domain/model/kernel"
	"efood/internal/pkg/guard"
)

var ErrGetDriverOrdersQueryIsNotConstructed = errors.New(
	"GetDriverOrdersQuery must be created via NewGetDriverOrdersQuery constructor",
)

// GetDriverOrdersQuery retrieves the orders assigned to one driver: the
// active delivery and, when includeCompleted is set, the delivery history.
type GetDriverOrdersQuery struct { //nolint:recvcheck //using for validation
	driverID         kernel.UUID
	includeCompleted bool

	guard guard.ConstructorGuard
}

// NewGetDriverOrdersQuery creates a query for a driver's orders.
func NewGetDriverOrdersQuery(driverID kernel.UUID, includeCompleted bool) (GetDriverOrdersQuery, error) {
	query := GetDriverOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := driverID.Validate(); err != nil {
		return GetDriverOrdersQuery{}, err
	}
	query.driverID = driverID
	query.includeCompleted = includeCompleted

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverOrdersQueryIsNotConstructed)
}

// DriverID returns the driver whose orders are requested.
func (q GetDriverOrdersQuery) DriverID() kernel.UUID { return q.driverID }

// IncludeCompleted reports whether completed deliveries are included.
func (q GetDriverOrdersQuery) IncludeCompleted() bool { return q.includeCompleted }

// GetDriverOrdersQueryResponse is one of the driver's orders.
type GetDriverOrdersQueryResponse struct {
	ID             kernel.UUID
	Status         string
	DeliveryStatus string
	Street         string
	Municipality   string
	DeliveryAmount kernel.Money
	CreatedAt      time.Time
}
