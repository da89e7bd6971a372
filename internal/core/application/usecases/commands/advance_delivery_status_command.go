package commands

import (
	"errors"

	"efood/internal/core/domain/model/kernel"
	"efood/internal/core/domain/model/order"
	"efood/internal/pkg/guard"
)

var ErrAdvanceDeliveryStatusCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryStatusCommand must be created via NewAdvanceDeliveryStatusCommand constructor",
)

// AdvanceDeliveryStatusCommand represents the assigned driver moving the
// delivery along its linear sequence: picked_up, on_way, delivered.
type AdvanceDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID
	next     order.DeliveryStatus

	guard guard.ConstructorGuard
}

// NewAdvanceDeliveryStatusCommand creates a command to advance a delivery.
func NewAdvanceDeliveryStatusCommand(
	orderID, driverID kernel.UUID, next order.DeliveryStatus,
) (AdvanceDeliveryStatusCommand, error) {
	cmd := AdvanceDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
		cmd.setNext(next),
	); err != nil {
		return AdvanceDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryStatusCommandIsNotConstructed)
}

// OrderID returns the order being delivered.
func (c AdvanceDeliveryStatusCommand) OrderID() kernel.UUID { return c.orderID }

// DriverID returns the reporting driver.
func (c AdvanceDeliveryStatusCommand) DriverID() kernel.UUID { return c.driverID }

// Next returns the requested target delivery status.
func (c AdvanceDeliveryStatusCommand) Next() order.DeliveryStatus { return c.next }

func (c *AdvanceDeliveryStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AdvanceDeliveryStatusCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *AdvanceDeliveryStatusCommand) setNext(next order.DeliveryStatus) error {
	if err := next.Validate(); err != nil {
		return err
	}
	c.next = next
	return nil
}
