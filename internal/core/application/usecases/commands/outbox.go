package commands

import (
	"context"
	"encoding/json"

	"efood/internal/core/domain/model/order"
	"efood/internal/core/ports"
)

// stageEvents marshals the aggregate's recorded events into outbox messages
// within the current transaction and clears them from the aggregate. Staged
// messages commit or roll back together with the state change that produced
// them, so exactly one message exists per committed transition.
func stageEvents(ctx context.Context, outboxRepo ports.OutboxRepository, aggregate *order.Order) error {
	events := aggregate.DomainEvents()
	if len(events) == 0 {
		return nil
	}

	messages := make([]ports.OutboxMessage, 0, len(events))
	for _, event := range events {
		payload, err := json.Marshal(event.Order)
		if err != nil {
			return err
		}
		messages = append(messages, ports.OutboxMessage{
			EventType: event.Type,
			OrderID:   event.OrderID(),
			Payload:   payload,
			CreatedAt: event.OccurredAt,
		})
	}

	if err := outboxRepo.Add(ctx, messages); err != nil {
		return err
	}

	aggregate.ClearDomainEvents()
	return nil
}
