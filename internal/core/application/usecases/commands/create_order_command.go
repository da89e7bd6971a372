package commands

import (
	"errors"

	"efood/internal/core/domain/model/kernel"
	"efood/internal/core/domain/model/order"
	"efood/internal/pkg/errs"
	"efood/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// CreateOrderCommand represents a request to place a new order.
// It carries the validated checkout snapshot: items, delivery address,
// payment choice, the delivery fee and the total the customer saw.
//
// The subtotal is derived from the item lines rather than trusted from the
// caller; the declared total is validated against subtotal + deliveryFee
// when the order aggregate is constructed.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), &customerID, restaurantID,
//	    items, address, payment, deliveryFee, declaredTotal,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, allocator)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerID    *kernel.UUID
	restaurantID  kernel.UUID
	items         []order.Item
	address       order.Address
	payment       order.PaymentInfo
	deliveryFee   kernel.Money
	declaredTotal kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// customerID is nil for guest checkouts.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID *kernel.UUID,
	restaurantID kernel.UUID,
	items []order.Item,
	address order.Address,
	payment order.PaymentInfo,
	deliveryFee kernel.Money,
	declaredTotal kernel.Money,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setItems(items),
		cmd.setAddress(address),
		cmd.setPayment(payment),
		cmd.setAmounts(deliveryFee, declaredTotal),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerID returns the customer reference, nil for guest checkouts.
func (c CreateOrderCommand) CustomerID() *kernel.UUID { return c.customerID }

// RestaurantID returns the owning restaurant reference.
func (c CreateOrderCommand) RestaurantID() kernel.UUID { return c.restaurantID }

// Items returns the validated order lines.
func (c CreateOrderCommand) Items() []order.Item { return c.items }

// Address returns the delivery address snapshot.
func (c CreateOrderCommand) Address() order.Address { return c.address }

// Payment returns the payment snapshot.
func (c CreateOrderCommand) Payment() order.PaymentInfo { return c.payment }

// DeliveryFee returns the delivery fee.
func (c CreateOrderCommand) DeliveryFee() kernel.Money { return c.deliveryFee }

// DeclaredTotal returns the total the customer confirmed at checkout.
func (c CreateOrderCommand) DeclaredTotal() kernel.Money { return c.declaredTotal }

// Subtotal returns the sum of the item line totals.
func (c CreateOrderCommand) Subtotal() kernel.Money {
	subtotal := kernel.ZeroMoney()
	for _, item := range c.items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	return subtotal
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID *kernel.UUID) error {
	if customerID == nil {
		return nil
	}
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = items
	return nil
}

func (c *CreateOrderCommand) setAddress(address order.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}

func (c *CreateOrderCommand) setPayment(payment order.PaymentInfo) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	c.payment = payment
	return nil
}

func (c *CreateOrderCommand) setAmounts(deliveryFee, declaredTotal kernel.Money) error {
	if err := errors.Join(deliveryFee.Validate(), declaredTotal.Validate()); err != nil {
		return err
	}
	c.deliveryFee = deliveryFee
	c.declaredTotal = declaredTotal
	return nil
}
