// Package restaurantrepo provides read-only access to the restaurant
// reference table used to validate order placement.
package restaurantrepo

import (
	"time"

	"github.com/google/uuid"
)

// RestaurantDTO represents the restaurant reference row. The rows are
// written by the service owning the restaurant domain; this module only
// reads them.
type RestaurantDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	CreatedAt time.Time
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}
