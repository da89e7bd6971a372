package order

import (
	"time"
)

// Domain event types emitted by the order aggregate, one per transition.
// The values are also the routing keys used by the notification publisher.
const (
	// EventOrderCreated fans out to the owning restaurant for orders that
	// skip the approval gate.
	EventOrderCreated = "order.created"

	// EventOrderCreatedPendingApproval fans out to administrators for
	// deferred-payment orders awaiting sign-off.
	EventOrderCreatedPendingApproval = "order.created_pending_approval"

	// EventOrderApproved fans out to the owning restaurant once an admin
	// lets a gated order through.
	EventOrderApproved = "order.approved"

	// EventOrderRejected fans out to the customer with the rejection reason.
	EventOrderRejected = "order.rejected"

	// EventOrderReadyForDelivery fans out to the driver pool when the order
	// enters the delivery marketplace.
	EventOrderReadyForDelivery = "order.ready_for_delivery"

	// EventOrderAssigned fans out to the winning driver and the customer.
	EventOrderAssigned = "order.assigned"

	// EventOrderCompleted fans out to the customer and the restaurant.
	EventOrderCompleted = "order.completed"

	// EventOrderEscalated fans out to administrators for orders that sat
	// unclaimed in the marketplace longer than the configured TTL.
	EventOrderEscalated = "order.escalated"
)

// Snapshot is the order state carried by every domain event.
// It is a plain serializable copy; consumers must treat it as read-only.
type Snapshot struct {
	ID               string     `json:"id"`
	CustomerID       *string    `json:"customerId,omitempty"`
	RestaurantID     string     `json:"restaurantId"`
	DriverID         *string    `json:"driverId,omitempty"`
	Status           string     `json:"status"`
	DeliveryStatus   string     `json:"deliveryStatus"`
	Subtotal         string     `json:"subtotal"`
	DeliveryFee      string     `json:"deliveryFee"`
	Total            string     `json:"total"`
	RestaurantAmount string     `json:"restaurantAmount"`
	DeliveryAmount   string     `json:"deliveryAmount"`
	PlatformFee      string     `json:"platformFee"`
	PaymentMethod    string     `json:"paymentMethod"`
	Items            []ItemView `json:"items"`
	Street           string     `json:"street"`
	Municipality     string     `json:"municipality"`
	RejectionReason  string     `json:"rejectionReason,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// ItemView is the serializable form of one order line inside a Snapshot.
type ItemView struct {
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

// DomainEvent is one order lifecycle transition, recorded by the aggregate
// at the moment the transition happens and drained by command handlers into
// the transactional outbox. Exactly one event is recorded per transition.
type DomainEvent struct {
	Type       string
	OccurredAt time.Time
	Order      Snapshot
}

// OrderID returns the id of the order the event belongs to.
func (e DomainEvent) OrderID() string {
	return e.Order.ID
}

// newDomainEvent builds an event carrying the order's current snapshot.
func newDomainEvent(eventType string, o *Order, occurredAt time.Time) DomainEvent {
	return DomainEvent{
		Type:       eventType,
		OccurredAt: occurredAt,
		Order:      o.TakeSnapshot(),
	}
}

// TakeSnapshot copies the order's externally visible state into a Snapshot.
func (o *Order) TakeSnapshot() Snapshot {
	items := make([]ItemView, 0, len(o.items))
	for _, item := range o.items {
		items = append(items, ItemView{
			Name:      item.Name(),
			UnitPrice: item.UnitPrice().String(),
			Quantity:  item.Quantity(),
		})
	}

	var customerID *string
	if o.customerID != nil {
		s := o.customerID.String()
		customerID = &s
	}

	var driverID *string
	if o.driverID != nil {
		s := o.driverID.String()
		driverID = &s
	}

	return Snapshot{
		ID:               o.id.String(),
		CustomerID:       customerID,
		RestaurantID:     o.restaurantID.String(),
		DriverID:         driverID,
		Status:           o.status.String(),
		DeliveryStatus:   o.deliveryStatus.String(),
		Subtotal:         o.subtotal.String(),
		DeliveryFee:      o.deliveryFee.String(),
		Total:            o.total.String(),
		RestaurantAmount: o.split.RestaurantAmount().String(),
		DeliveryAmount:   o.split.DeliveryAmount().String(),
		PlatformFee:      o.split.PlatformFee().String(),
		PaymentMethod:    string(o.payment.Method()),
		Items:            items,
		Street:           o.address.Street(),
		Municipality:     o.address.Municipality(),
		RejectionReason:  o.rejectionReason,
		CreatedAt:        o.createdAt,
	}
}

// DomainEvents returns the events recorded since the aggregate was loaded.
func (o *Order) DomainEvents() []DomainEvent {
	return o.events
}

// ClearDomainEvents drops recorded events after they have been persisted to
// the outbox.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) recordEvent(eventType string, occurredAt time.Time) {
	o.events = append(o.events, newDomainEvent(eventType, o, occurredAt))
}
