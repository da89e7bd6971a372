// Package errs provides standardized error types for the efood order core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure kinds the order lifecycle
// can produce:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: input validation failures
//   - ObjectNotFoundError: an order or driver cannot be resolved
//   - InvalidTransitionError: an illegal status or delivery-status transition
//   - AlreadyAssignedError: the caller lost the delivery acceptance race
//   - AlreadyProcessedError: an operation against a terminal order, or the
//     losing side of a concurrent double approval
//   - VersionIsInvalidError: an optimistic concurrency conflict on a driver row
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrAlreadyAssigned)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify by sentinel
//
// Every failure in the core is a typed, synchronous error returned to the
// caller; the core performs no retries and no silent recovery.
package errs
