package commands

import (
	"context"
	"time"

	"efood/internal/core/domain/model/order"
)

// ApproveOrderCommandHandler handles administrator approval of gated orders.
//
// Two admins approving the same order concurrently both pass the in-memory
// transition check; the guarded repository update settles the race, failing
// the loser with AlreadyProcessedError.
type ApproveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewApproveOrderCommandHandler creates a handler for order approval.
func NewApproveOrderCommandHandler(uowFactory OrderUoWFactory) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the approval command.
func (h *ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) error {
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

	if err = aggregate.Approve(cmd.AdminID(), time.Now()); err != nil {
		return err
	}

	err = orderRepo.UpdateGuarded(ctx, aggregate, order.StatusPendingAdminApproval, order.DeliveryStatusWaiting)
	if err != nil {
		return err
	}

	if err = stageEvents(ctx, uow.OutboxRepository(), aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
