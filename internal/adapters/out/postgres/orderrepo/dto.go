// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"efood/internal/core/domain/model/kernel"
	"efood/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored as their wire names so the rows stay readable and the
// conditional updates can be expressed directly on the columns.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID   *uuid.UUID `gorm:"type:uuid;index"`
	RestaurantID uuid.UUID  `gorm:"type:uuid;index"`
	DriverID     *uuid.UUID `gorm:"type:uuid;index"`

	Status           string `gorm:"type:varchar(32);index"`
	RequiresApproval bool
	DeliveryStatus   string `gorm:"type:varchar(32);index"`

	Subtotal         string `gorm:"type:numeric(12,2)"`
	DeliveryFee      string `gorm:"type:numeric(12,2)"`
	Total            string `gorm:"type:numeric(12,2)"`
	RestaurantAmount string `gorm:"type:numeric(12,2)"`
	DeliveryAmount   string `gorm:"type:numeric(12,2)"`
	PlatformFee      string `gorm:"type:numeric(12,2)"`

	PaymentMethod string `gorm:"type:varchar(16)"`
	CardBrand     string
	CardNumber    string

	Items ItemsJSON `gorm:"type:jsonb"`

	Street       string
	Number       string
	Complement   string
	Neighborhood string
	Municipality string
	Province     string
	Reference    string

	RejectionReason string
	RatingStars     *int
	RatingComment   string
	RatedAt         *time.Time

	CreatedAt           time.Time `gorm:"index"`
	AdminApprovedAt     *time.Time
	AdminApprovedBy     *uuid.UUID `gorm:"type:uuid"`
	DeliveryAcceptedAt  *time.Time
	DeliveryPickedUpAt  *time.Time
	DeliveryCompletedAt *time.Time
	EscalatedAt         *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one order line inside the items JSONB column.
type ItemDTO struct {
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

// ItemsJSON stores the immutable items snapshot as a single JSONB value.
// The snapshot is never queried per line, so a child table would only add
// join cost.
type ItemsJSON []ItemDTO

// Value implements driver.Valuer for JSONB serialization.
func (items ItemsJSON) Value() (driver.Value, error) {
	return json.Marshal(items)
}

// Scan implements sql.Scanner for JSONB deserialization.
func (items *ItemsJSON) Scan(value any) error {
	if value == nil {
		*items = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	default:
		return errors.New("unsupported type for items column")
	}
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make(ItemsJSON, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			Name:      item.Name(),
			UnitPrice: item.UnitPrice().String(),
			Quantity:  item.Quantity(),
		})
	}

	dto := OrderDTO{
		ID:           aggregate.ID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),

		Status:           aggregate.Status().String(),
		RequiresApproval: aggregate.RequiresApproval(),
		DeliveryStatus:   aggregate.DeliveryStatus().String(),

		Subtotal:         aggregate.Subtotal().String(),
		DeliveryFee:      aggregate.DeliveryFee().String(),
		Total:            aggregate.Total().String(),
		RestaurantAmount: aggregate.RevenueSplit().RestaurantAmount().String(),
		DeliveryAmount:   aggregate.RevenueSplit().DeliveryAmount().String(),
		PlatformFee:      aggregate.RevenueSplit().PlatformFee().String(),

		PaymentMethod: string(aggregate.Payment().Method()),
		CardBrand:     aggregate.Payment().CardBrand(),
		CardNumber:    aggregate.Payment().CardNumber(),

		Items: items,

		Street:       aggregate.Address().Street(),
		Number:       aggregate.Address().Number(),
		Complement:   aggregate.Address().Complement(),
		Neighborhood: aggregate.Address().Neighborhood(),
		Municipality: aggregate.Address().Municipality(),
		Province:     aggregate.Address().Province(),
		Reference:    aggregate.Address().Reference(),

		RejectionReason: aggregate.RejectionReason(),

		CreatedAt:           aggregate.CreatedAt(),
		AdminApprovedAt:     aggregate.AdminApprovedAt(),
		DeliveryAcceptedAt:  aggregate.DeliveryAcceptedAt(),
		DeliveryPickedUpAt:  aggregate.DeliveryPickedUpAt(),
		DeliveryCompletedAt: aggregate.DeliveryCompletedAt(),
		EscalatedAt:         aggregate.EscalatedAt(),
	}

	if id := aggregate.CustomerID(); id != nil {
		raw := id.Bytes()
		dto.CustomerID = &raw
	}
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		dto.DriverID = &raw
	}
	if id := aggregate.AdminApprovedBy(); id != nil {
		raw := id.Bytes()
		dto.AdminApprovedBy = &raw
	}
	if rating := aggregate.Rating(); rating != nil {
		stars := rating.Stars
		ratedAt := rating.RatedAt
		dto.RatingStars = &stars
		dto.RatingComment = rating.Comment
		dto.RatedAt = &ratedAt
	}

	return dto
}

// toDomain converts a database row to an order aggregate via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := optionalUUID(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	driverID, err := optionalUUID(dto.DriverID)
	if err != nil {
		return nil, err
	}
	adminApprovedBy, err := optionalUUID(dto.AdminApprovedBy)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		unitPrice, priceErr := kernel.NewMoneyFromString(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.NewItem(itemDTO.Name, unitPrice, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	address, err := order.NewAddress(
		dto.Street, dto.Number, dto.Complement, dto.Neighborhood,
		dto.Municipality, dto.Province, dto.Reference,
	)
	if err != nil {
		return nil, err
	}

	payment, err := order.NewPaymentInfo(order.PaymentMethod(dto.PaymentMethod), dto.CardBrand, dto.CardNumber)
	if err != nil {
		return nil, err
	}

	subtotal, err := kernel.NewMoneyFromString(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	deliveryFee, err := kernel.NewMoneyFromString(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoneyFromString(dto.Total)
	if err != nil {
		return nil, err
	}
	restaurantAmount, err := kernel.NewMoneyFromString(dto.RestaurantAmount)
	if err != nil {
		return nil, err
	}
	deliveryAmount, err := kernel.NewMoneyFromString(dto.DeliveryAmount)
	if err != nil {
		return nil, err
	}
	platformFee, err := kernel.NewMoneyFromString(dto.PlatformFee)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	deliveryStatus, err := order.DeliveryStatusFromString(dto.DeliveryStatus)
	if err != nil {
		return nil, err
	}

	var rating *order.Rating
	if dto.RatingStars != nil && dto.RatedAt != nil {
		rating = &order.Rating{
			Stars:   *dto.RatingStars,
			Comment: dto.RatingComment,
			RatedAt: *dto.RatedAt,
		}
	}

	return order.RestoreOrder(
		id, customerID, restaurantID, driverID,
		items, address, payment,
		subtotal, deliveryFee, total,
		order.NewRevenueSplit(restaurantAmount, deliveryAmount, platformFee),
		status, dto.RequiresApproval, deliveryStatus,
		order.Timestamps{
			CreatedAt:           dto.CreatedAt,
			AdminApprovedAt:     dto.AdminApprovedAt,
			DeliveryAcceptedAt:  dto.DeliveryAcceptedAt,
			DeliveryPickedUpAt:  dto.DeliveryPickedUpAt,
			DeliveryCompletedAt: dto.DeliveryCompletedAt,
			EscalatedAt:         dto.EscalatedAt,
		},
		adminApprovedBy, dto.RejectionReason, rating,
	)
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	parsed, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
