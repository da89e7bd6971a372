package commands

import (
	"context"
	"time"

	"efood/internal/core/domain/model/order"
	"efood/internal/core/domain/services"
	"efood/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// It computes the revenue split exactly once, constructs the aggregate (which
// decides the entry status from the payment method), resolves the restaurant
// reference and persists the order together with its creation event.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	allocator  services.RevenueAllocator
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory, allocator services.RevenueAllocator,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
	}
}

// Handle processes the order placement command.
// The split is frozen into the order at creation; the declared total is
// validated against subtotal + deliveryFee by the aggregate constructor.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	subtotal := cmd.Subtotal()
	split, err := h.allocator.ComputeSplit(subtotal, cmd.DeliveryFee())
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.RestaurantID(),
		cmd.Items(),
		cmd.Address(),
		cmd.Payment(),
		subtotal,
		cmd.DeliveryFee(),
		cmd.DeclaredTotal(),
		split,
		time.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exists, err := uow.RestaurantRepository().Exists(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewValueIsInvalidError("restaurant does not exist: " + cmd.RestaurantID().String())
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = stageEvents(ctx, uow.OutboxRepository(), aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
