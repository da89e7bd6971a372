package commands

import (
	"errors"

	"efood/internal/core/domain/model/kernel"
	"efood/internal/pkg/errs"
	"efood/internal/pkg/guard"
)

var (
	ErrRejectOrderCommandIsNotConstructed = errors.New(
		"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
	)
	ErrRejectionReasonIsRequired = errs.NewValueIsRequiredError("reason")
)

// RejectOrderCommand represents an administrator rejecting a gated
// pay-on-delivery order. The reason is mandatory and is surfaced verbatim
// to the customer.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	adminID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command to reject a gated order.
func NewRejectOrderCommand(orderID, adminID kernel.UUID, reason string) (RejectOrderCommand, error) {
	cmd := RejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAdminID(adminID),
		cmd.setReason(reason),
	); err != nil {
		return RejectOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// OrderID returns the order to reject.
func (c RejectOrderCommand) OrderID() kernel.UUID { return c.orderID }

// AdminID returns the rejecting administrator.
func (c RejectOrderCommand) AdminID() kernel.UUID { return c.adminID }

// Reason returns the rejection reason shown to the customer.
func (c RejectOrderCommand) Reason() string { return c.reason }

func (c *RejectOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RejectOrderCommand) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}
	c.adminID = adminID
	return nil
}

func (c *RejectOrderCommand) setReason(reason string) error {
	if reason == "" {
		return ErrRejectionReasonIsRequired
	}
	c.reason = reason
	return nil
}
