package queries

import (
	"context"
	"time"

	"efood/internal/core/domain/model/kernel"
	"efood/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingApprovalOrdersQueryHandler reads the admin approval worklist
// from the database.
type GetPendingApprovalOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingApprovalOrdersQueryHandler creates a handler for the worklist.
func NewGetPendingApprovalOrdersQueryHandler(db *gorm.DB) GetPendingApprovalOrdersQueryHandler {
	return GetPendingApprovalOrdersQueryHandler{db: db}
}

// Handle executes the worklist query.
func (h GetPendingApprovalOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingApprovalOrdersQuery,
) ([]GetPendingApprovalOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	worklist := make([]GetPendingApprovalOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			restaurant_id,
			street,
			municipality,
			total,
			created_at
		FROM orders
		WHERE status = ?
		ORDER BY created_at ASC
	`, order.StatusPendingAdminApproval.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetPendingApprovalOrdersQueryResponse
		var id, restaurantID uuid.UUID
		var customerID *uuid.UUID
		var total string
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&customerID,
			&restaurantID,
			&entry.Street,
			&entry.Municipality,
			&total,
			&createdAt,
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
		if customerID != nil {
			parsed, idErr := kernel.UUIDFromBytes(customerID[:])
			if idErr != nil {
				return nil, idErr
			}
			entry.CustomerID = &parsed
		}
		entry.Total, err = kernel.NewMoneyFromString(total)
		if err != nil {
			return nil, err
		}
		entry.CreatedAt = createdAt

		worklist = append(worklist, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return worklist, nil
}
