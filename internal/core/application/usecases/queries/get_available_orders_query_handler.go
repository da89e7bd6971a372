package queries

import (
	"context"
	"time"

	"efood/internal/core/domain/model/kernel"
	"efood/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableOrdersQueryHandler reads the marketplace pool from the
// database. The predicate mirrors the acceptance compare-and-swap: status
// delivering, delivery status waiting, no driver. Ordered oldest first so
// drivers see the longest-waiting orders at the top.
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for pool queries.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle executes the pool query.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]GetAvailableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pool := make([]GetAvailableOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			street,
			municipality,
			delivery_amount,
			total,
			created_at,
			escalated_at
		FROM orders
		WHERE status = ?
		  AND delivery_status = ?
		  AND driver_id IS NULL
		ORDER BY created_at ASC
	`, order.StatusDelivering.String(), order.DeliveryStatusWaiting.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetAvailableOrdersQueryResponse
		var id, restaurantID uuid.UUID
		var deliveryAmount, total string
		var createdAt time.Time
		var escalatedAt *time.Time

		err = rows.Scan(
			&id,
			&restaurantID,
			&entry.Street,
			&entry.Municipality,
			&deliveryAmount,
			&total,
			&createdAt,
			&escalatedAt,
		)
		if err != nil {
			return nil, err
		}

		entry.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		entry.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:])
		if err != nil {
			return nil, err
		}
		entry.DeliveryAmount, err = kernel.NewMoneyFromString(deliveryAmount)
		if err != nil {
			return nil, err
		}
		entry.Total, err = kernel.NewMoneyFromString(total)
		if err != nil {
			return nil, err
		}
		entry.CreatedAt = createdAt
		entry.EscalatedAt = escalatedAt

		pool = append(pool, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pool, nil
}
