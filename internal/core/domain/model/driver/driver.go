package driver

import (
	"errors"

	"efood/internal/core/domain/model/kernel"
	"efood/internal/pkg/errs"
	"efood/internal/pkg/guard"
)

const (
	// ScoreCompletedDelivery is credited to a driver's score for each
	// completed delivery.
	ScoreCompletedDelivery = 10
	// ScoreIgnorePenalty is applied when a driver explicitly ignores a
	// marketplace order. The score has no floor and may go negative.
	ScoreIgnorePenalty = -1
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	// ErrDriverIsBusy is returned when a driver tries to accept an order while
	// already carrying one.
	ErrDriverIsBusy = errs.NewValueIsInvalidError("driver already has an active order")
	// ErrDriverIsOffline is returned when an offline driver tries to accept an order.
	ErrDriverIsOffline = errs.NewValueIsInvalidError("driver is offline")
	// ErrNoActiveOrder is returned when completing a delivery the driver does not carry.
	ErrNoActiveOrder = errs.NewValueIsInvalidError("driver has no active order")
)

// Vehicle is the closed enumeration of vehicles a driver registers with.
type Vehicle string

const (
	// VehicleMotorcycle is the most common vehicle in the fleet.
	VehicleMotorcycle Vehicle = "motorcycle"
	// VehicleBicycle covers short-range city deliveries.
	VehicleBicycle Vehicle = "bicycle"
	// VehicleCar covers large or long-range deliveries.
	VehicleCar Vehicle = "car"
)

// Validate checks the vehicle against the closed enumeration.
func (v Vehicle) Validate() error {
	switch v {
	case VehicleMotorcycle, VehicleBicycle, VehicleCar:
		return nil
	default:
		return errs.NewValueIsInvalidError("vehicle: " + string(v))
	}
}

// Driver represents a delivery driver in the marketplace.
// It is an aggregate root that owns the driver's availability, the single
// order the driver may carry at a time, and the driver's reliability score.
//
// Business rules:
//   - A driver carries at most one active order at a time
//   - Only online drivers can accept orders
//   - Completing a delivery credits ScoreCompletedDelivery
//   - Ignoring a marketplace order applies ScoreIgnorePenalty; the score
//     has no floor and is allowed to go negative
//
// Concurrency: the acceptance race between drivers is settled at the storage
// layer with a conditional update on the order row, and concurrent updates to
// the same driver are guarded with the version field (optimistic locking).
// The aggregate itself stays single-threaded.
type Driver struct {
	id              kernel.UUID
	name            string
	vehicle         Vehicle
	isOnline        bool
	score           int
	totalDeliveries int
	activeOrderID   *kernel.UUID
	version         int
	guard           guard.ConstructorGuard
}

// NewDriver creates a new Driver with the specified parameters.
// New drivers start offline with a zero score and no active order.
func NewDriver(id kernel.UUID, name string, vehicle Vehicle) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setVehicle(vehicle),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage,
// including its score, availability, active order and row version.
func RestoreDriver(
	id kernel.UUID,
	name string,
	vehicle Vehicle,
	isOnline bool,
	score int,
	totalDeliveries int,
	activeOrderID *kernel.UUID,
	version int,
) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setVehicle(vehicle),
	); err != nil {
		return nil, err
	}

	if activeOrderID != nil {
		if err := activeOrderID.Validate(); err != nil {
			return nil, err
		}
		d.activeOrderID = activeOrderID
	}

	d.isOnline = isOnline
	d.score = score
	d.totalDeliveries = totalDeliveries
	d.version = version

	return d, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID { return d.id }

// Name returns the driver's display name.
func (d *Driver) Name() string { return d.name }

// Vehicle returns the registered vehicle.
func (d *Driver) Vehicle() Vehicle { return d.vehicle }

// IsOnline reports whether the driver currently sees the marketplace.
func (d *Driver) IsOnline() bool { return d.isOnline }

// Score returns the reliability score. It may be negative.
func (d *Driver) Score() int { return d.score }

// TotalDeliveries returns the lifetime count of accepted deliveries.
func (d *Driver) TotalDeliveries() int { return d.totalDeliveries }

// ActiveOrderID returns the order the driver currently carries, nil if none.
func (d *Driver) ActiveOrderID() *kernel.UUID { return d.activeOrderID }

// Version returns the optimistic locking version loaded from storage.
func (d *Driver) Version() int { return d.version }

// SetOnline toggles the driver's marketplace visibility.
// Going offline does not release an active order: the driver still owes
// the delivery in progress.
func (d *Driver) SetOnline(online bool) {
	d.isOnline = online
}

// RegisterAcceptance records that the driver won the acceptance race for the
// given order and bumps the lifetime delivery count. Called only after the
// storage-level compare-and-swap claimed the order; it fails if the driver is
// offline or already carrying one.
func (d *Driver) RegisterAcceptance(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if !d.isOnline {
		return ErrDriverIsOffline
	}
	if d.activeOrderID != nil {
		return ErrDriverIsBusy
	}

	d.activeOrderID = &orderID
	d.totalDeliveries++
	return nil
}

// ApplyIgnorePenalty applies ScoreIgnorePenalty for explicitly ignoring a
// marketplace order. There is no floor: repeated ignoring drives the score
// below zero.
func (d *Driver) ApplyIgnorePenalty() {
	d.score += ScoreIgnorePenalty
}

// CompleteDelivery releases the active order and credits
// ScoreCompletedDelivery. The delivery count was already bumped at
// acceptance. It fails if the driver does not carry the given order.
func (d *Driver) CompleteDelivery(orderID kernel.UUID) error {
	if d.activeOrderID == nil || !d.activeOrderID.IsEqual(orderID) {
		return ErrNoActiveOrder
	}

	d.activeOrderID = nil
	d.score += ScoreCompletedDelivery
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setVehicle(vehicle Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	d.vehicle = vehicle
	return nil
}
