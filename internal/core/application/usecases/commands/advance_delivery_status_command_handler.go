package commands

import (
	"context"
	"time"

	"efood/internal/core/domain/model/order"
)

// AdvanceDeliveryStatusCommandHandler handles delivery progress reports
// from the assigned driver.
//
// Reaching delivered completes the order and credits the driver exactly
// once: the guarded order update (keyed on the delivery status the order
// was loaded with) makes a duplicate delivered report fail with
// AlreadyProcessedError before the driver row is touched.
type AdvanceDeliveryStatusCommandHandler struct {
	uowFactory MarketplaceUoWFactory
}

// NewAdvanceDeliveryStatusCommandHandler creates a handler for delivery progress.
func NewAdvanceDeliveryStatusCommandHandler(uowFactory MarketplaceUoWFactory) AdvanceDeliveryStatusCommandHandler {
	return AdvanceDeliveryStatusCommandHandler{uowFactory: uowFactory}
}

// Handle processes the delivery progress command.
func (h *AdvanceDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveryStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	loadedStatus := aggregate.Status()
	loadedDeliveryStatus := aggregate.DeliveryStatus()

	if err = aggregate.AdvanceDelivery(cmd.DriverID(), cmd.Next(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.UpdateGuarded(ctx, aggregate, loadedStatus, loadedDeliveryStatus); err != nil {
		return err
	}

	if aggregate.DeliveryStatus() == order.DeliveryStatusDelivered {
		driverRepo := uow.DriverRepository()
		assigned, err := driverRepo.Get(ctx, cmd.DriverID())
		if err != nil {
			return err
		}

		if err = assigned.CompleteDelivery(cmd.OrderID()); err != nil {
			return err
		}

		if err = driverRepo.Update(ctx, assigned); err != nil {
			return err
		}
	}

	if err = stageEvents(ctx, uow.OutboxRepository(), aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
