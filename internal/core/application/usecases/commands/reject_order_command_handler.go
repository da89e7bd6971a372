package commands

import (
	"context"
	"time"

	"efood/internal/core/domain/model/order"
)

// RejectOrderCommandHandler handles administrator rejection of gated orders.
// Like approval, the concurrent double-decision race is settled by the
// guarded repository update.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRejectOrderCommandHandler creates a handler for order rejection.
func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the rejection command.
func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
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

	if err = aggregate.Reject(cmd.AdminID(), cmd.Reason(), time.Now()); err != nil {
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
