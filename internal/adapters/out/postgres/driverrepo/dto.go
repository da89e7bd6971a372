// Package driverrepo provides data transfer objects and mapping functions
// for driver persistence.
package driverrepo

import (
	"efood/internal/core/domain/model/driver"
	"efood/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver
// aggregates. Version backs the optimistic locking guard in Update.
type DriverDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	Vehicle         string `gorm:"type:varchar(16)"`
	IsOnline        bool   `gorm:"index"`
	Score           int
	TotalDeliveries int
	ActiveOrderID   *uuid.UUID `gorm:"type:uuid;index"`
	Version         int
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	dto := DriverDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		Vehicle:         string(aggregate.Vehicle()),
		IsOnline:        aggregate.IsOnline(),
		Score:           aggregate.Score(),
		TotalDeliveries: aggregate.TotalDeliveries(),
		Version:         aggregate.Version(),
	}

	if id := aggregate.ActiveOrderID(); id != nil {
		raw := id.Bytes()
		dto.ActiveOrderID = &raw
	}

	return dto
}

// toDomain converts a database row to a driver aggregate via RestoreDriver.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var activeOrderID *kernel.UUID
	if dto.ActiveOrderID != nil {
		parsed, orderErr := kernel.UUIDFromBytes((*dto.ActiveOrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		activeOrderID = &parsed
	}

	return driver.RestoreDriver(
		id, dto.Name, driver.Vehicle(dto.Vehicle),
		dto.IsOnline, dto.Score, dto.TotalDeliveries,
		activeOrderID, dto.Version,
	)
}
