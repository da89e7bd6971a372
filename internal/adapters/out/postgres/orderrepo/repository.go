package orderrepo

import (
	"context"
	"errors"
	"time"

	"efood/internal/core/domain/model/kernel"
	"efood/internal/core/domain/model/order"
	"efood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
//
// The contested transitions are settled here with conditional single-row
// updates: the WHERE clause carries the expected state and RowsAffected
// decides who won.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order unconditionally.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateGuarded saves an existing order only if the stored row still holds
// the expected status and delivery status. A concurrent writer that moved
// the row first makes the update match zero rows; the caller then gets
// AlreadyProcessedError and must treat its in-memory transition as lost.
func (r *GormOrderRepository) UpdateGuarded(
	ctx context.Context,
	aggregate *order.Order,
	expected order.Status,
	expectedDelivery order.DeliveryStatus,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ? AND delivery_status = ?",
			dto.ID, expected.String(), expectedDelivery.String()).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewAlreadyProcessedError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AssignDriver atomically claims a marketplace order for a driver.
//
// The claim is one conditional UPDATE whose WHERE clause is the pool
// predicate; under any isolation level at most one concurrent caller
// matches the row. RowsAffected==0 means the caller lost: either another
// driver owns the order (AlreadyAssignedError) or the order does not
// exist (ObjectNotFoundError).
func (r *GormOrderRepository) AssignDriver(
	ctx context.Context, orderID, driverID kernel.UUID, acceptedAt time.Time,
) error {
	raw := driverID.Bytes()
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND driver_id IS NULL AND status = ? AND delivery_status = ?",
			orderID.Bytes(), order.StatusDelivering.String(), order.DeliveryStatusWaiting.String()).
		Updates(map[string]any{
			"driver_id":            raw,
			"delivery_status":      order.DeliveryStatusAccepted.String(),
			"delivery_accepted_at": acceptedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", orderID.Bytes()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", orderID.String())
		}
		return errs.NewAlreadyAssignedError("order", orderID.String())
	}

	return nil
}

// GetWaitingSince retrieves unescalated marketplace orders waiting since
// before the cutoff, oldest first.
func (r *GormOrderRepository) GetWaitingSince(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND delivery_status = ? AND driver_id IS NULL",
			order.StatusDelivering.String(), order.DeliveryStatusWaiting.String()).
		Where("created_at < ? AND escalated_at IS NULL", cutoff).
		Order("created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
