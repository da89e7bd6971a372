package commands

import (
	"context"
	"errors"
	"time"

	"efood/internal/core/domain/model/order"
	"efood/internal/pkg/errs"
)

// EscalateStaleOrdersCommandHandler sweeps the marketplace pool and records
// an escalation event for every order that has waited longer than the TTL.
//
// The sweep races with drivers: an order can be claimed between the pool
// read and the escalation write. Such orders are skipped silently, the
// guarded update keyed on the waiting state settles it.
type EscalateStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewEscalateStaleOrdersCommandHandler creates a handler for the stale sweep.
func NewEscalateStaleOrdersCommandHandler(uowFactory OrderUoWFactory) EscalateStaleOrdersCommandHandler {
	return EscalateStaleOrdersCommandHandler{uowFactory: uowFactory}
}

// Handle processes the sweep command.
func (h *EscalateStaleOrdersCommandHandler) Handle(ctx context.Context, cmd EscalateStaleOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()
	cutoff := now.Add(-cmd.WaitingTTL())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	stale, err := orderRepo.GetWaitingSince(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, aggregate := range stale {
		if err = aggregate.Escalate(now); err != nil {
			return err
		}

		err = orderRepo.UpdateGuarded(ctx, aggregate, order.StatusDelivering, order.DeliveryStatusWaiting)
		if err != nil {
			// Claimed by a driver since the pool read. Skip it.
			if errors.Is(err, errs.ErrAlreadyProcessed) || errors.Is(err, errs.ErrAlreadyAssigned) {
				aggregate.ClearDomainEvents()
				continue
			}
			return err
		}

		if err = stageEvents(ctx, uow.OutboxRepository(), aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
