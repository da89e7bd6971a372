package order

import (
	"errors"
	"time"

	"efood/internal/core/domain/model/kernel"
	"efood/internal/pkg/errs"
	"efood/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
	// ErrItemsAreRequired is returned when an order is created with no items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
	// ErrTotalDoesNotReconcile is returned when total != subtotal + deliveryFee.
	ErrTotalDoesNotReconcile = errs.NewValueIsInvalidError("total must equal subtotal plus delivery fee")
	// ErrRejectionReasonIsRequired is returned when an admin rejects without a reason.
	ErrRejectionReasonIsRequired = errs.NewValueIsRequiredError("rejection reason")
)

// Rating is the post-completion customer rating attached by the rating
// collaborator. It is the one field that stays mutable after the order
// reaches its terminal state, and it can be set exactly once.
type Rating struct {
	Stars   int
	Comment string
	RatedAt time.Time
}

// Order is the central aggregate of the marketplace. It owns the order's
// status and deliveryStatus and rejects every transition outside the legal
// tables in status.go and delivery_status.go.
//
// Order follows these invariants:
//   - items, address and payment are immutable snapshots taken at creation
//   - total == subtotal + deliveryFee (tolerance one cent)
//   - the revenue split reconciles against subtotal and deliveryFee
//   - requiresApproval is fixed at creation by the payment method
//   - a driver reference implies deliveryStatus != waiting
//   - completed and cancelled are terminal
//
// Every legal transition records exactly one domain event; command handlers
// drain the events into the transactional outbox alongside the state change.
type Order struct {
	id           kernel.UUID
	customerID   *kernel.UUID
	restaurantID kernel.UUID
	driverID     *kernel.UUID

	items   []Item
	address Address
	payment PaymentInfo

	subtotal    kernel.Money
	deliveryFee kernel.Money
	total       kernel.Money
	split       RevenueSplit

	status           Status
	requiresApproval bool
	deliveryStatus   DeliveryStatus

	createdAt           time.Time
	adminApprovedAt     *time.Time
	adminApprovedBy     *kernel.UUID
	deliveryAcceptedAt  *time.Time
	deliveryPickedUpAt  *time.Time
	deliveryCompletedAt *time.Time
	escalatedAt         *time.Time

	rejectionReason string
	rating          *Rating

	events []DomainEvent
	guard  guard.ConstructorGuard
}

// NewOrder creates a new Order from a checkout draft. This is the single
// constructor call the external checkout collaborator makes into the core.
//
// The constructor:
//   - validates that the items snapshot is non-empty and every line is valid
//   - revalidates total == subtotal + deliveryFee instead of trusting the caller
//   - reconciles the revenue split (already computed, exactly once, by the
//     revenue allocator) against subtotal and deliveryFee
//   - derives requiresApproval and the initial status from the payment
//     method: the deferred method enters at PendingAdminApproval, everything
//     else at Pending
//   - records the corresponding creation event
//
// Restaurant existence is checked by the creating command handler, which has
// repository access; the aggregate only requires a valid reference.
func NewOrder(
	id kernel.UUID,
	customerID *kernel.UUID,
	restaurantID kernel.UUID,
	items []Item,
	address Address,
	payment PaymentInfo,
	subtotal kernel.Money,
	deliveryFee kernel.Money,
	total kernel.Money,
	split RevenueSplit,
	now time.Time,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setAddress(address),
		o.setPayment(payment),
		o.setAmounts(subtotal, deliveryFee, total),
		o.setSplit(split, subtotal, deliveryFee),
	); err != nil {
		return nil, err
	}

	o.requiresApproval = payment.Method().RequiresApproval()
	o.deliveryStatus = DeliveryStatusWaiting
	o.createdAt = now

	if o.requiresApproval {
		o.status = StatusPendingAdminApproval
		o.recordEvent(EventOrderCreatedPendingApproval, now)
	} else {
		o.status = StatusPending
		o.recordEvent(EventOrderCreated, now)
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it performs no lifecycle decisions and records no events;
// it restores the order to its persisted state, including timestamps,
// assignment and rating.
func RestoreOrder(
	id kernel.UUID,
	customerID *kernel.UUID,
	restaurantID kernel.UUID,
	driverID *kernel.UUID,
	items []Item,
	address Address,
	payment PaymentInfo,
	subtotal kernel.Money,
	deliveryFee kernel.Money,
	total kernel.Money,
	split RevenueSplit,
	status Status,
	requiresApproval bool,
	deliveryStatus DeliveryStatus,
	timestamps Timestamps,
	adminApprovedBy *kernel.UUID,
	rejectionReason string,
	rating *Rating,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setAddress(address),
		o.setPayment(payment),
		o.setAmounts(subtotal, deliveryFee, total),
		o.setSplit(split, subtotal, deliveryFee),
		status.Validate(),
		deliveryStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		// A driver reference implies the order left the waiting state.
		if deliveryStatus == DeliveryStatusWaiting {
			return nil, errs.NewValueIsInvalidError("order with a driver cannot be in waiting delivery status")
		}
		o.driverID = driverID
	}

	o.status = status
	o.requiresApproval = requiresApproval
	o.deliveryStatus = deliveryStatus
	o.createdAt = timestamps.CreatedAt
	o.adminApprovedAt = timestamps.AdminApprovedAt
	o.deliveryAcceptedAt = timestamps.DeliveryAcceptedAt
	o.deliveryPickedUpAt = timestamps.DeliveryPickedUpAt
	o.deliveryCompletedAt = timestamps.DeliveryCompletedAt
	o.escalatedAt = timestamps.EscalatedAt
	o.adminApprovedBy = adminApprovedBy
	o.rejectionReason = rejectionReason
	o.rating = rating

	return o, nil
}

// Timestamps groups the lifecycle timestamps for RestoreOrder.
type Timestamps struct {
	CreatedAt           time.Time
	AdminApprovedAt     *time.Time
	DeliveryAcceptedAt  *time.Time
	DeliveryPickedUpAt  *time.Time
	DeliveryCompletedAt *time.Time
	EscalatedAt         *time.Time
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerID returns the customer reference, nil for guest checkouts.
func (o *Order) CustomerID() *kernel.UUID { return o.customerID }

// RestaurantID returns the owning restaurant reference.
func (o *Order) RestaurantID() kernel.UUID { return o.restaurantID }

// DriverID returns the assigned driver reference, nil until accepted.
func (o *Order) DriverID() *kernel.UUID { return o.driverID }

// Items returns the immutable items snapshot.
func (o *Order) Items() []Item { return o.items }

// Address returns the immutable address snapshot.
func (o *Order) Address() Address { return o.address }

// Payment returns the immutable payment snapshot.
func (o *Order) Payment() PaymentInfo { return o.payment }

// Subtotal returns the items subtotal.
func (o *Order) Subtotal() kernel.Money { return o.subtotal }

// DeliveryFee returns the delivery fee.
func (o *Order) DeliveryFee() kernel.Money { return o.deliveryFee }

// Total returns subtotal + deliveryFee.
func (o *Order) Total() kernel.Money { return o.total }

// RevenueSplit returns the frozen three-way split.
func (o *Order) RevenueSplit() RevenueSplit { return o.split }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// RequiresApproval reports whether the order is (still) gated behind admin
// approval. Fixed true at creation for deferred payment, cleared on approval.
func (o *Order) RequiresApproval() bool { return o.requiresApproval }

// DeliveryStatus returns the current delivery sub-status.
func (o *Order) DeliveryStatus() DeliveryStatus { return o.deliveryStatus }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// AdminApprovedAt returns when the approval gate let the order through.
func (o *Order) AdminApprovedAt() *time.Time { return o.adminApprovedAt }

// AdminApprovedBy returns the admin who approved or rejected the order.
func (o *Order) AdminApprovedBy() *kernel.UUID { return o.adminApprovedBy }

// DeliveryAcceptedAt returns when a driver won the acceptance race.
func (o *Order) DeliveryAcceptedAt() *time.Time { return o.deliveryAcceptedAt }

// DeliveryPickedUpAt returns when the driver collected the order.
func (o *Order) DeliveryPickedUpAt() *time.Time { return o.deliveryPickedUpAt }

// DeliveryCompletedAt returns when the order was delivered.
func (o *Order) DeliveryCompletedAt() *time.Time { return o.deliveryCompletedAt }

// EscalatedAt returns when the stale-order escalation fired, if ever.
func (o *Order) EscalatedAt() *time.Time { return o.escalatedAt }

// RejectionReason returns the admin's rejection reason, empty unless rejected.
func (o *Order) RejectionReason() string { return o.rejectionReason }

// Rating returns the customer rating, nil until rated.
func (o *Order) Rating() *Rating { return o.rating }

// IsAvailableForDelivery reports whether the order belongs in the
// marketplace pool: ready for delivery, still waiting, and unowned.
func (o *Order) IsAvailableForDelivery() bool {
	return o.status == StatusDelivering &&
		o.deliveryStatus == DeliveryStatusWaiting &&
		o.driverID == nil
}

// Approve lets a gated order through the approval gate.
//
// Legal only from PendingAdminApproval; moves the order to Pending, clears
// requiresApproval, records the approver and timestamp, and records the
// OrderApproved event. The concurrent double-approval race is settled at
// the storage layer: the repository's guarded update makes the loser fail
// with AlreadyProcessedError.
func (o *Order) Approve(adminID kernel.UUID, now time.Time) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Transition(StatusPending)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.requiresApproval = false
	o.adminApprovedAt = &now
	o.adminApprovedBy = &adminID
	o.recordEvent(EventOrderApproved, now)
	return nil
}

// Reject cancels a gated order. The reason is mandatory and surfaced
// verbatim to the customer; it is never defaulted. Terminal.
func (o *Order) Reject(adminID kernel.UUID, reason string, now time.Time) error {
	if err := adminID.Validate(); err != nil {
		return err
	}
	if reason == "" {
		return ErrRejectionReasonIsRequired
	}
	if o.status != StatusPendingAdminApproval {
		if o.status.IsTerminal() {
			return errs.NewAlreadyProcessedError("order", o.id.String())
		}
		return errs.NewInvalidTransitionError("order", o.status.String(), StatusCancelled.String())
	}

	newStatus, err := o.status.Transition(StatusCancelled)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.requiresApproval = false
	o.rejectionReason = reason
	o.adminApprovedBy = &adminID
	o.recordEvent(EventOrderRejected, now)
	return nil
}

// Advance moves the order through the restaurant-driven part of the
// lifecycle: pending -> preparing, pending -> cancelled, and
// preparing -> delivering. Entering Delivering publishes the order to the
// delivery marketplace and records OrderReadyForDelivery.
//
// Completion is not reachable through Advance: StatusCompleted is owned by
// dispatch and set only via AdvanceDelivery reaching Delivered.
func (o *Order) Advance(next Status, now time.Time) error {
	if next == StatusCompleted {
		return errs.NewInvalidTransitionError("order", o.status.String(), next.String())
	}
	// Approval gate transitions go through Approve/Reject, not Advance.
	if o.status == StatusPendingAdminApproval {
		return errs.NewInvalidTransitionError("order", o.status.String(), next.String())
	}

	newStatus, err := o.status.Transition(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	if newStatus == StatusDelivering {
		o.recordEvent(EventOrderReadyForDelivery, now)
	}
	return nil
}

// RecordDriverAssigned appends the OrderAssigned event after the repository
// compare-and-swap claimed the order for a driver. The aggregate must
// already reflect the assignment; this method never performs it.
func (o *Order) RecordDriverAssigned(now time.Time) error {
	if o.driverID == nil || o.deliveryStatus != DeliveryStatusAccepted {
		return errs.NewValueIsInvalidError("order is not in a freshly accepted state")
	}
	o.recordEvent(EventOrderAssigned, now)
	return nil
}

// AdvanceDelivery moves the delivery sub-status along its linear sequence.
// Only the assigned driver may call it; any other caller fails with
// ObjectNotFoundError so a stranger cannot even probe the assignment.
//
// Reaching Delivered additionally completes the order: status becomes
// Completed, deliveryCompletedAt is set and OrderCompleted is recorded.
// The caller is responsible for crediting the driver's score.
func (o *Order) AdvanceDelivery(driverID kernel.UUID, next DeliveryStatus, now time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.driverID == nil || !o.driverID.IsEqual(driverID) {
		return errs.NewObjectNotFoundError("order for driver", o.id.String())
	}

	newDeliveryStatus, err := o.deliveryStatus.Transition(next)
	if err != nil {
		return err
	}

	if newDeliveryStatus == DeliveryStatusDelivered {
		// Validate the main status transition before committing either field,
		// so a failure leaves the order untouched.
		newStatus, statusErr := o.status.Transition(StatusCompleted)
		if statusErr != nil {
			return statusErr
		}
		o.deliveryStatus = newDeliveryStatus
		o.deliveryCompletedAt = &now
		o.status = newStatus
		o.recordEvent(EventOrderCompleted, now)
		return nil
	}

	o.deliveryStatus = newDeliveryStatus
	if newDeliveryStatus == DeliveryStatusPickedUp {
		o.deliveryPickedUpAt = &now
	}
	return nil
}

// Rate attaches the post-completion customer rating. Legal only on a
// completed order, exactly once, with stars in [1, 5].
func (o *Order) Rate(stars int, comment string, now time.Time) error {
	if stars < 1 || stars > 5 {
		return errs.NewValueIsOutOfRangeError("rating", stars, 1, 5)
	}
	if o.status != StatusCompleted {
		return errs.NewInvalidTransitionError("order", o.status.String(), "rated")
	}
	if o.rating != nil {
		return errs.NewAlreadyProcessedError("order rating", o.id.String())
	}

	o.rating = &Rating{Stars: stars, Comment: comment, RatedAt: now}
	return nil
}

// Escalate marks a stale marketplace order as escalated and records the
// OrderEscalated event. It never changes status or deliveryStatus; the
// order remains in the pool. Escalation fires at most once per order.
func (o *Order) Escalate(now time.Time) error {
	if !o.IsAvailableForDelivery() {
		return errs.NewValueIsInvalidError("only waiting marketplace orders can be escalated")
	}
	if o.escalatedAt != nil {
		return errs.NewAlreadyProcessedError("order escalation", o.id.String())
	}

	o.escalatedAt = &now
	o.recordEvent(EventOrderEscalated, now)
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID *kernel.UUID) error {
	if customerID == nil {
		return nil
	}
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	// Copy so later mutation of the caller's slice cannot leak in.
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setPayment(payment PaymentInfo) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	o.payment = payment
	return nil
}

func (o *Order) setAmounts(subtotal, deliveryFee, total kernel.Money) error {
	if err := errors.Join(subtotal.Validate(), deliveryFee.Validate(), total.Validate()); err != nil {
		return err
	}
	if !subtotal.Add(deliveryFee).EqualsApprox(total) {
		return ErrTotalDoesNotReconcile
	}
	o.subtotal = subtotal
	o.deliveryFee = deliveryFee
	o.total = total
	return nil
}

func (o *Order) setSplit(split RevenueSplit, subtotal, deliveryFee kernel.Money) error {
	if err := split.Reconcile(subtotal, deliveryFee); err != nil {
		return err
	}
	o.split = split
	return nil
}
