package commands

import (
	"errors"

	"efood/internal/core/domain/model/kernel"
	"efood/internal/pkg/guard"
)

var ErrIgnoreOrderCommandIsNotConstructed = errors.New(
	"IgnoreOrderCommand must be created via NewIgnoreOrderCommand constructor",
)

// IgnoreOrderCommand represents a driver explicitly skipping the marketplace
// pool. Ignoring is global, not tied to a particular order: every pool order
// stays visible to every driver, including the one who ignored; only the
// driver's score changes.
type IgnoreOrderCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewIgnoreOrderCommand creates a command for a driver to skip the pool.
func NewIgnoreOrderCommand(driverID kernel.UUID) (IgnoreOrderCommand, error) {
	cmd := IgnoreOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDriverID(driverID); err != nil {
		return IgnoreOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c IgnoreOrderCommand) Validate() error {
	return c.guard.Validate(ErrIgnoreOrderCommandIsNotConstructed)
}

// DriverID returns the skipping driver.
func (c IgnoreOrderCommand) DriverID() kernel.UUID { return c.driverID }

func (c *IgnoreOrderCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
