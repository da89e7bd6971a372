package commands

import (
	"errors"

	"efood/internal/core/domain/model/kernel"
	"efood/internal/pkg/errs"
	"efood/internal/pkg/guard"
)

var ErrRateOrderCommandIsNotConstructed = errors.New(
	"RateOrderCommand must be created via NewRateOrderCommand constructor",
)

// RateOrderCommand represents a customer rating a completed order.
type RateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	stars   int
	comment string

	guard guard.ConstructorGuard
}

// NewRateOrderCommand creates a command to rate a completed order.
// Stars must be in [1, 5]; the comment is optional.
func NewRateOrderCommand(orderID kernel.UUID, stars int, comment string) (RateOrderCommand, error) {
	cmd := RateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStars(stars),
	); err != nil {
		return RateOrderCommand{}, err
	}

	cmd.comment = comment
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RateOrderCommand) Validate() error {
	return c.guard.Validate(ErrRateOrderCommandIsNotConstructed)
}

// OrderID returns the rated order.
func (c RateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Stars returns the star rating in [1, 5].
func (c RateOrderCommand) Stars() int { return c.stars }

// Comment returns the optional free-text comment.
func (c RateOrderCommand) Comment() string { return c.comment }

func (c *RateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RateOrderCommand) setStars(stars int) error {
	if stars < 1 || stars > 5 {
		return errs.NewValueIsOutOfRangeError("stars", stars, 1, 5)
	}
	c.stars = stars
	return nil
}
