package commands

import (
	"context"
	"time"
)

// AcceptOrderCommandHandler handles the contested marketplace acceptance.
//
// The race is settled by AssignDriver, a single conditional update that
// claims the order row only while it is still unowned: at most one
// concurrent driver succeeds, every other one gets AlreadyAssignedError.
// The driver's own state change and the OrderAssigned event ride in the
// same transaction, so a busy or offline driver rolls the claim back.
type AcceptOrderCommandHandler struct {
	uowFactory MarketplaceUoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(uowFactory MarketplaceUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the acceptance command.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	if err := orderRepo.AssignDriver(ctx, cmd.OrderID(), cmd.DriverID(), now); err != nil {
		return err
	}

	driverRepo := uow.DriverRepository()
	claimant, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = claimant.RegisterAcceptance(cmd.OrderID()); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, claimant); err != nil {
		return err
	}

	// Reload inside the transaction so the snapshot carries the assignment.
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.RecordDriverAssigned(now); err != nil {
		return err
	}

	if err = stageEvents(ctx, uow.OutboxRepository(), aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
