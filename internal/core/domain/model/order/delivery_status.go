package order

import (
	"efood/internal/pkg/errs"
)

// DeliveryStatus represents the delivery sub-state of an order while it is
// owned by the dispatch marketplace.
//
// The legal sequence is strictly linear:
//
//	Waiting ──> Accepted ──> PickedUp ──> OnWay ──> Delivered
//
// Waiting means the order sits in the marketplace pool with no owner;
// Accepted and onward require an assigned driver. Delivered is terminal
// and also completes the order's main status.
type DeliveryStatus int

const (
	// DeliveryStatusUnknown represents an invalid or undefined delivery status.
	DeliveryStatusUnknown DeliveryStatus = iota

	// DeliveryStatusWaiting means no driver owns the order yet.
	DeliveryStatusWaiting

	// DeliveryStatusAccepted means a driver won the acceptance race.
	DeliveryStatusAccepted

	// DeliveryStatusPickedUp means the driver collected the order from the restaurant.
	DeliveryStatusPickedUp

	// DeliveryStatusOnWay means the driver is en route to the customer.
	DeliveryStatusOnWay

	// DeliveryStatusDelivered means the order reached the customer. Terminal.
	DeliveryStatusDelivered
)

func deliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		DeliveryStatusUnknown:   "unknown",
		DeliveryStatusWaiting:   "waiting",
		DeliveryStatusAccepted:  "accepted",
		DeliveryStatusPickedUp:  "picked_up",
		DeliveryStatusOnWay:     "on_way",
		DeliveryStatusDelivered: "delivered",
	}
}

// deliveryStatusTransitions is the legal transition table for the delivery
// sub-state. Waiting -> Accepted is performed only through the storage-level
// compare-and-swap in the repository; the remaining steps are driver calls.
func deliveryStatusTransitions() map[DeliveryStatus][]DeliveryStatus {
	return map[DeliveryStatus][]DeliveryStatus{
		DeliveryStatusWaiting:  {DeliveryStatusAccepted},
		DeliveryStatusAccepted: {DeliveryStatusPickedUp},
		DeliveryStatusPickedUp: {DeliveryStatusOnWay},
		DeliveryStatusOnWay:    {DeliveryStatusDelivered},
	}
}

// Validate checks if the DeliveryStatus value is a member of the closed enumeration.
func (s DeliveryStatus) Validate() error {
	if s == DeliveryStatusUnknown {
		return errs.NewValueIsInvalidError("delivery status is unknown")
	}
	if _, ok := deliveryStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("delivery status is not a valid status")
	}
	return nil
}

// String returns the wire name of the delivery status.
func (s DeliveryStatus) String() string {
	if str, ok := deliveryStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the delivery status admits no further transitions.
func (s DeliveryStatus) IsTerminal() bool {
	return s == DeliveryStatusDelivered
}

// Transition returns the next delivery status if moving from s to next is
// legal, classifying failures the same way Status.Transition does.
func (s DeliveryStatus) Transition(next DeliveryStatus) (DeliveryStatus, error) {
	if err := next.Validate(); err != nil {
		return DeliveryStatusUnknown, err
	}
	if s.IsTerminal() {
		return DeliveryStatusUnknown, errs.NewAlreadyProcessedError("delivery status", s.String())
	}
	for _, allowed := range deliveryStatusTransitions()[s] {
		if allowed == next {
			return next, nil
		}
	}
	return DeliveryStatusUnknown, errs.NewInvalidTransitionError("deliveryStatus", s.String(), next.String())
}

// DeliveryStatusFromString parses a wire name back into a DeliveryStatus.
func DeliveryStatusFromString(s string) (DeliveryStatus, error) {
	for status, name := range deliveryStatusStrings() {
		if name == s && status != DeliveryStatusUnknown {
			return status, nil
		}
	}
	return DeliveryStatusUnknown, errs.NewValueIsInvalidError("delivery status: " + s)
}
