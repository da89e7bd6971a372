package order

import (
	"efood/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with the transitions expressed as data,
// so auditing or extending the lifecycle is a single-table change.
//
// State transitions:
//
//	PendingAdminApproval ──┬──> Pending ──┬──> Preparing ──> Delivering ──> Completed
//	                       │              │
//	                       └──> Cancelled <┘
//
// PendingAdminApproval is the entry state for orders paid with the deferred
// ("pay on delivery") method; every other order enters at Pending.
// Completed and Cancelled are terminal: once reached, the status never
// changes again.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPendingAdminApproval gates deferred-payment orders behind
	// administrator sign-off before the restaurant sees them.
	StatusPendingAdminApproval

	// StatusPending means the order is visible to the restaurant and
	// waiting to be taken into preparation.
	StatusPending

	// StatusPreparing means the restaurant is preparing the order.
	StatusPreparing

	// StatusDelivering means the order is ready for delivery and flows
	// through the delivery marketplace until a driver completes it.
	StatusDelivering

	// StatusCompleted is the successful terminal state, reached only
	// through deliveryStatus=Delivered.
	StatusCompleted

	// StatusCancelled is the unsuccessful terminal state, reached by
	// admin rejection or restaurant cancellation.
	StatusCancelled
)

// statusStrings maps Status values to their wire/persistence names.
// The names are the closed enumeration used by the legacy data model.
func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:              "unknown",
		StatusPendingAdminApproval: "pending_admin_approval",
		StatusPending:              "pending",
		StatusPreparing:            "preparing",
		StatusDelivering:           "delivering",
		StatusCompleted:            "completed",
		StatusCancelled:            "cancelled",
	}
}

// statusTransitions is the legal transition table.
// A transition not present here is illegal; attempts from a terminal
// status fail with AlreadyProcessedError, all other illegal attempts
// fail with InvalidTransitionError.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPendingAdminApproval: {StatusPending, StatusCancelled},
		StatusPending:              {StatusPreparing, StatusCancelled},
		StatusPreparing:            {StatusDelivering},
		StatusDelivering:           {StatusCompleted},
	}
}

// Validate checks if the Status value is a member of the closed enumeration.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidError("status is unknown")
	}
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status is not a valid status")
	}
	return nil
}

// String returns the wire name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Transition returns the next status if moving from s to next is legal.
//
// Error classification follows the order core's failure taxonomy:
//   - AlreadyProcessedError when s is terminal (Completed/Cancelled)
//   - InvalidTransitionError for any move not present in the table
//
// The receiver is never mutated; callers assign the returned value only
// on success, so a failed transition leaves the order unchanged.
func (s Status) Transition(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return StatusUnknown, err
	}
	if s.IsTerminal() {
		return StatusUnknown, errs.NewAlreadyProcessedError("order status", s.String())
	}
	for _, allowed := range statusTransitions()[s] {
		if allowed == next {
			return next, nil
		}
	}
	return StatusUnknown, errs.NewInvalidTransitionError("order", s.String(), next.String())
}

// StatusFromString parses a wire name back into a Status.
// Returns an error for names outside the closed enumeration.
func StatusFromString(s string) (Status, error) {
	for status, name := range statusStrings() {
		if name == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status: " + s)
}
