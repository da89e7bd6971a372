package commands

import (
	"context"
)

// IgnoreOrderCommandHandler handles a driver explicitly skipping the pool.
// No order is touched: the pool stays identical for every driver. The
// driver row update is guarded by its version, which settles concurrent
// score changes for the same driver.
type IgnoreOrderCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewIgnoreOrderCommandHandler creates a handler for ignoring the pool.
func NewIgnoreOrderCommandHandler(uowFactory DriverUoWFactory) IgnoreOrderCommandHandler {
	return IgnoreOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the ignore command.
func (h *IgnoreOrderCommandHandler) Handle(ctx context.Context, cmd IgnoreOrderCommand) error {
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

	driverRepo := uow.DriverRepository()
	skipper, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	skipper.ApplyIgnorePenalty()

	if err = driverRepo.Update(ctx, skipper); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
