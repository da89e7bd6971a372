// Package outboxrepo persists staged domain events for the transactional
// outbox. Messages are written in the same transaction as the aggregate
// change and relayed to the broker by a background job.
package outboxrepo

import (
	"time"

	"efood/internal/core/ports"
)

// OutboxMessageDTO represents one staged event row. Seq is a bigserial
// assigned by the database on insert, which gives the relay a monotonic
// cursor ordered by commit.
type OutboxMessageDTO struct {
	Seq         int64  `gorm:"primaryKey;autoIncrement"`
	EventType   string `gorm:"type:varchar(64);index"`
	OrderID     string `gorm:"type:uuid;index"`
	Payload     []byte `gorm:"type:jsonb"`
	CreatedAt   time.Time
	PublishedAt *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox messages.
func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

func fromPort(message ports.OutboxMessage) OutboxMessageDTO {
	return OutboxMessageDTO{
		Seq:         message.Seq,
		EventType:   message.EventType,
		OrderID:     message.OrderID,
		Payload:     message.Payload,
		CreatedAt:   message.CreatedAt,
		PublishedAt: message.PublishedAt,
	}
}

func toPort(dto OutboxMessageDTO) ports.OutboxMessage {
	return ports.OutboxMessage{
		Seq:         dto.Seq,
		EventType:   dto.EventType,
		OrderID:     dto.OrderID,
		Payload:     dto.Payload,
		CreatedAt:   dto.CreatedAt,
		PublishedAt: dto.PublishedAt,
	}
}
