package queries

import (
	"context"
	"time"

	"efood/internal/core/domain/model/kernel"
	"efood/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriverOrdersQueryHandler reads one driver's assigned orders from the
// database, most recent first.
type GetDriverOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverOrdersQueryHandler creates a handler for driver order queries.
func NewGetDriverOrdersQueryHandler(db *gorm.DB) GetDriverOrdersQueryHandler {
	return GetDriverOrdersQueryHandler{db: db}
}

// Handle executes the driver orders query.
func (h GetDriverOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDriverOrdersQuery,
) ([]GetDriverOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			status,
			delivery_status,
			street,
			municipality,
			delivery_amount,
			created_at
		FROM orders
		WHERE driver_id = ?
	`
	args := []any{query.DriverID().String()}
	if !query.IncludeCompleted() {
		sql += " AND status != ?"
		args = append(args, order.StatusCompleted.String())
	}
	sql += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetDriverOrdersQueryResponse, 0)
	for rows.Next() {
		var entry GetDriverOrdersQueryResponse
		var id uuid.UUID
		var deliveryAmount string
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&entry.Status,
			&entry.DeliveryStatus,
			&entry.Street,
			&entry.Municipality,
			&deliveryAmount,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		entry.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		entry.DeliveryAmount, err = kernel.NewMoneyFromString(deliveryAmount)
		if err != nil {
			return nil, err
		}
		entry.CreatedAt = createdAt

		orders = append(orders, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
