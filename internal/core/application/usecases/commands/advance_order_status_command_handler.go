package commands

import (
	"context"
	"time"
)

// AdvanceOrderStatusCommandHandler handles restaurant lifecycle transitions.
// The transition is validated against the status table in memory, then
// persisted with a guarded update keyed on the status the order was loaded
// with, so two concurrent transitions cannot both apply.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceOrderStatusCommandHandler creates a handler for status advancement.
func NewAdvanceOrderStatusCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{uowFactory: uowFactory}
}

// Handle processes the advancement command.
func (h *AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
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

	if err = aggregate.Advance(cmd.Next(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.UpdateGuarded(ctx, aggregate, loadedStatus, loadedDeliveryStatus); err != nil {
		return err
	}

	if err = stageEvents(ctx, uow.OutboxRepository(), aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
