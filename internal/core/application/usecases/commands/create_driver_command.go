package commands

import (
	"errors"

	"efood/internal/core/domain/model/driver"
	"efood/internal/core/domain/model/kernel"
	"efood/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand represents registering a new driver in the fleet.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	name     string
	vehicle  driver.Vehicle

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a driver.
func NewCreateDriverCommand(driverID kernel.UUID, name string, vehicle driver.Vehicle) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setName(name),
		cmd.setVehicle(vehicle),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the new driver's identifier.
func (c CreateDriverCommand) DriverID() kernel.UUID { return c.driverID }

// Name returns the driver's display name.
func (c CreateDriverCommand) Name() string { return c.name }

// Vehicle returns the registered vehicle.
func (c CreateDriverCommand) Vehicle() driver.Vehicle { return c.vehicle }

func (c *CreateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *CreateDriverCommand) setName(name string) error {
	if name == "" {
		return driver.ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateDriverCommand) setVehicle(vehicle driver.Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	c.vehicle = vehicle
	return nil
}
